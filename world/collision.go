package world

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"
)

// Collision cells within one world unit per axis count as the same cell, so
// repeated clicks on a snapped spot never stack duplicates.
const cellMatchTolerance = 1.0

// Cells is the collision cell collection, in insertion order.
type Cells struct {
	pts []cp.Vector
}

func NewCells(pts []cp.Vector) *Cells {
	return &Cells{pts: pts}
}

// Points exposes the backing slice for rendering and saving. Callers must
// not mutate it.
func (c *Cells) Points() []cp.Vector {
	return c.pts
}

func (c *Cells) Len() int {
	return len(c.pts)
}

// Contains reports whether a cell within tolerance of p is already stored.
func (c *Cells) Contains(p cp.Vector) bool {
	return c.indexOf(p) >= 0
}

// Add appends p unless a matching cell exists. Reports whether it was added.
func (c *Cells) Add(p cp.Vector) bool {
	if c.indexOf(p) >= 0 {
		return false
	}
	c.pts = append(c.pts, p)
	return true
}

// Remove deletes the first cell matching p. Reports whether one was removed.
func (c *Cells) Remove(p cp.Vector) bool {
	i := c.indexOf(p)
	if i < 0 {
		return false
	}
	c.pts = append(c.pts[:i], c.pts[i+1:]...)
	return true
}

func (c *Cells) indexOf(p cp.Vector) int {
	for i, q := range c.pts {
		if math.Abs(q.X-p.X) < cellMatchTolerance && math.Abs(q.Y-p.Y) < cellMatchTolerance {
			return i
		}
	}
	return -1
}

// CollisionStore persists the whole cell collection at once. Save replaces
// the stored set; there is no incremental update.
type CollisionStore interface {
	Load() ([]cp.Vector, error)
	Save(pts []cp.Vector) error
}

// CollisionFile stores cells as a YAML document next to the level file.
type CollisionFile struct {
	Path string
}

type collisionDoc struct {
	Cells []cp.Vector `yaml:"cells"`
}

// Load reads every stored cell. A missing file is an empty collection, not
// an error, so fresh levels work without setup.
func (f CollisionFile) Load() ([]cp.Vector, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("world: read collision %s: %w", f.Path, err)
	}
	var doc collisionDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("world: unmarshal collision %s: %w", f.Path, err)
	}
	return doc.Cells, nil
}

func (f CollisionFile) Save(pts []cp.Vector) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(collisionDoc{Cells: pts})
	if err != nil {
		return fmt.Errorf("world: marshal collision: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0644); err != nil {
		return fmt.Errorf("world: write collision %s: %w", f.Path, err)
	}
	return nil
}

// CollisionPathFor derives the collision file path for a level file.
func CollisionPathFor(levelPath string) string {
	ext := filepath.Ext(levelPath)
	return levelPath[:len(levelPath)-len(ext)] + ".collision.yaml"
}
