package world

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// EntityKind tags every placeable entity class. Code that needs per-class
// behavior switches on the kind instead of sniffing concrete types.
type EntityKind uint8

const (
	KindPlayer EntityKind = iota
	KindEnemy
	KindSentryCam
	KindWeapon
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindSentryCam:
		return "camera"
	case KindWeapon:
		return "weapon"
	}
	return "unknown"
}

// SpansCells reports whether the class uses the wide 2x2-cell footprint and
// therefore snaps to grid intersections instead of cell centers.
func (k EntityKind) SpansCells() bool {
	return k != KindWeapon
}

// WeaponKind is the weapon subtype payload.
type WeaponKind uint8

const (
	WeaponPistol WeaponKind = iota
	WeaponRifle
	WeaponLauncher
)

func (k WeaponKind) String() string {
	switch k {
	case WeaponPistol:
		return "pistol"
	case WeaponRifle:
		return "rifle"
	case WeaponLauncher:
		return "launcher"
	}
	return "unknown"
}

// Footprint is the diamond an entity occupies on the ground plus its
// vertical extent for the wireframe box.
type Footprint struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
	Z float64 `yaml:"z"`
}

// Detection is the sensing parameters shared by enemies and sentry cameras.
// Angles are degrees, rotation 0 faces +X. ConeLen overrides the drawn cone
// length when positive; otherwise the cone is a fraction of Range.
type Detection struct {
	Range    float64 `yaml:"range"`
	FOV      float64 `yaml:"fov"`
	Rotation float64 `yaml:"rotation"`
	ConeLen  float64 `yaml:"cone_len,omitempty"`
}

type Player struct {
	Pos       cp.Vector `yaml:"pos"`
	Footprint `yaml:",inline"`
}

type Enemy struct {
	Name      string    `yaml:"name,omitempty"`
	Pos       cp.Vector `yaml:"pos"`
	Footprint `yaml:",inline"`
	Detection `yaml:",inline"`
}

type SentryCam struct {
	Pos       cp.Vector `yaml:"pos"`
	Footprint `yaml:",inline"`
	Detection `yaml:",inline"`
}

type Weapon struct {
	Kind      WeaponKind `yaml:"kind"`
	Pos       cp.Vector  `yaml:"pos"`
	Footprint `yaml:",inline"`
}

// EntityRef addresses one entity: a kind plus its slice index. The index is
// ignored for the player.
type EntityRef struct {
	Kind  EntityKind
	Index int
}

// Entities holds every placed entity. Slice order is creation order and is
// what the renderer's z-pass and the hit tester iterate.
type Entities struct {
	Player  *Player     `yaml:"player,omitempty"`
	Enemies []Enemy     `yaml:"enemies,omitempty"`
	Cams    []SentryCam `yaml:"cameras,omitempty"`
	Weapons []Weapon    `yaml:"weapons,omitempty"`
}

// Pos returns the position of the referenced entity, false if the reference
// does not resolve.
func (e *Entities) Pos(ref EntityRef) (cp.Vector, bool) {
	switch ref.Kind {
	case KindPlayer:
		if e.Player == nil {
			return cp.Vector{}, false
		}
		return e.Player.Pos, true
	case KindEnemy:
		if ref.Index < 0 || ref.Index >= len(e.Enemies) {
			return cp.Vector{}, false
		}
		return e.Enemies[ref.Index].Pos, true
	case KindSentryCam:
		if ref.Index < 0 || ref.Index >= len(e.Cams) {
			return cp.Vector{}, false
		}
		return e.Cams[ref.Index].Pos, true
	case KindWeapon:
		if ref.Index < 0 || ref.Index >= len(e.Weapons) {
			return cp.Vector{}, false
		}
		return e.Weapons[ref.Index].Pos, true
	}
	return cp.Vector{}, false
}

// SetPos moves the referenced entity and reports whether it resolved.
func (e *Entities) SetPos(ref EntityRef, p cp.Vector) bool {
	switch ref.Kind {
	case KindPlayer:
		if e.Player == nil {
			return false
		}
		e.Player.Pos = p
	case KindEnemy:
		if ref.Index < 0 || ref.Index >= len(e.Enemies) {
			return false
		}
		e.Enemies[ref.Index].Pos = p
	case KindSentryCam:
		if ref.Index < 0 || ref.Index >= len(e.Cams) {
			return false
		}
		e.Cams[ref.Index].Pos = p
	case KindWeapon:
		if ref.Index < 0 || ref.Index >= len(e.Weapons) {
			return false
		}
		e.Weapons[ref.Index].Pos = p
	default:
		return false
	}
	return true
}

// FootprintOf returns the referenced entity's footprint.
func (e *Entities) FootprintOf(ref EntityRef) (Footprint, bool) {
	switch ref.Kind {
	case KindPlayer:
		if e.Player == nil {
			return Footprint{}, false
		}
		return e.Player.Footprint, true
	case KindEnemy:
		if ref.Index < 0 || ref.Index >= len(e.Enemies) {
			return Footprint{}, false
		}
		return e.Enemies[ref.Index].Footprint, true
	case KindSentryCam:
		if ref.Index < 0 || ref.Index >= len(e.Cams) {
			return Footprint{}, false
		}
		return e.Cams[ref.Index].Footprint, true
	case KindWeapon:
		if ref.Index < 0 || ref.Index >= len(e.Weapons) {
			return Footprint{}, false
		}
		return e.Weapons[ref.Index].Footprint, true
	}
	return Footprint{}, false
}

// Label names the referenced entity for the renderer's plates and the status
// bar: the entity's own name when it has one, otherwise kind plus index.
func (e *Entities) Label(ref EntityRef) string {
	if ref.Kind == KindEnemy && ref.Index >= 0 && ref.Index < len(e.Enemies) {
		if n := e.Enemies[ref.Index].Name; n != "" {
			return n
		}
	}
	if ref.Kind == KindPlayer {
		return "player"
	}
	return fmt.Sprintf("%s %d", ref.Kind, ref.Index)
}

// Default footprints per class. Weapons are the only single-cell class.
var defaultFootprints = map[EntityKind]Footprint{
	KindPlayer:    {W: 128, H: 64, Z: 180},
	KindEnemy:     {W: 128, H: 64, Z: 180},
	KindSentryCam: {W: 128, H: 64, Z: 260},
	KindWeapon:    {W: 64, H: 32, Z: 48},
}

var defaultDetection = Detection{Range: 900, FOV: 60, Rotation: 0}

// normalize backfills zero-valued footprints and detection parameters after
// a load, so hand-edited files can omit them.
func (e *Entities) normalize() {
	fill := func(f *Footprint, k EntityKind) {
		if f.W <= 0 || f.H <= 0 {
			f.W = defaultFootprints[k].W
			f.H = defaultFootprints[k].H
		}
		if f.Z <= 0 {
			f.Z = defaultFootprints[k].Z
		}
	}
	if e.Player != nil {
		fill(&e.Player.Footprint, KindPlayer)
	}
	for i := range e.Enemies {
		fill(&e.Enemies[i].Footprint, KindEnemy)
		if e.Enemies[i].Range <= 0 {
			e.Enemies[i].Detection = defaultDetection
		}
	}
	for i := range e.Cams {
		fill(&e.Cams[i].Footprint, KindSentryCam)
		if e.Cams[i].Range <= 0 {
			e.Cams[i].Detection = defaultDetection
		}
	}
	for i := range e.Weapons {
		fill(&e.Weapons[i].Footprint, KindWeapon)
	}
}
