package world

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Level is one editable document: the terrain grid plus every placed
// entity. Collision cells live in their own file, see CollisionFile.
type Level struct {
	Name     string
	Map      *Map
	Entities *Entities
}

func NewLevel(width, height int) *Level {
	return &Level{
		Map:      NewMap(width, height),
		Entities: &Entities{},
	}
}

// levelDoc is the on-disk shape. Tiles are row-major terrain values,
// y*width+x, zero for empty.
type levelDoc struct {
	Name     string   `yaml:"name,omitempty"`
	Width    int      `yaml:"width"`
	Height   int      `yaml:"height"`
	Tiles    []int    `yaml:"tiles"`
	Entities Entities `yaml:"entities"`
}

// LoadLevel reads a level document, filling defaults for anything a
// hand-edited file left out.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("world: read level %s: %w", path, err)
	}
	var doc levelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("world: unmarshal level %s: %w", path, err)
	}

	lvl := NewLevel(doc.Width, doc.Height)
	lvl.Name = doc.Name
	for i, v := range doc.Tiles {
		if i >= len(lvl.Map.tiles) {
			break
		}
		if t := TerrainType(v); t.Valid() {
			lvl.Map.tiles[i] = t
		}
	}
	ents := doc.Entities
	ents.normalize()
	lvl.Entities = &ents
	return lvl, nil
}

// Save writes the level document, creating the directory if needed.
func (l *Level) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	doc := levelDoc{
		Name:   l.Name,
		Width:  l.Map.Width,
		Height: l.Map.Height,
		Tiles:  make([]int, len(l.Map.tiles)),
	}
	for i, t := range l.Map.tiles {
		doc.Tiles[i] = int(t)
	}
	if l.Entities != nil {
		doc.Entities = *l.Entities
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("world: encode level %s: %w", path, err)
	}
	return enc.Close()
}
