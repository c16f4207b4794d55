package world

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func testEntities() *Entities {
	return &Entities{
		Player: &Player{Pos: cp.Vector{X: 10, Y: 20}, Footprint: defaultFootprints[KindPlayer]},
		Enemies: []Enemy{
			{Name: "guard", Pos: cp.Vector{X: 100, Y: 100}, Footprint: defaultFootprints[KindEnemy], Detection: defaultDetection},
			{Pos: cp.Vector{X: 300, Y: 50}, Footprint: defaultFootprints[KindEnemy], Detection: defaultDetection},
		},
		Cams:    []SentryCam{{Pos: cp.Vector{X: -40, Y: 7}, Footprint: defaultFootprints[KindSentryCam], Detection: defaultDetection}},
		Weapons: []Weapon{{Kind: WeaponRifle, Pos: cp.Vector{X: 5, Y: 5}, Footprint: defaultFootprints[KindWeapon]}},
	}
}

func TestEntities_RefResolution(t *testing.T) {
	e := testEntities()
	cases := []struct {
		ref  EntityRef
		want cp.Vector
	}{
		{EntityRef{KindPlayer, 0}, cp.Vector{X: 10, Y: 20}},
		{EntityRef{KindEnemy, 1}, cp.Vector{X: 300, Y: 50}},
		{EntityRef{KindSentryCam, 0}, cp.Vector{X: -40, Y: 7}},
		{EntityRef{KindWeapon, 0}, cp.Vector{X: 5, Y: 5}},
	}
	for _, c := range cases {
		got, ok := e.Pos(c.ref)
		if !ok || got != c.want {
			t.Fatalf("Pos(%v) = %v,%v, want %v", c.ref, got, ok, c.want)
		}
	}
	if _, ok := e.Pos(EntityRef{KindEnemy, 5}); ok {
		t.Fatal("out-of-range enemy index should not resolve")
	}
	if _, ok := e.Pos(EntityRef{KindEnemy, -1}); ok {
		t.Fatal("negative index should not resolve")
	}
}

func TestEntities_SetPos(t *testing.T) {
	e := testEntities()
	ref := EntityRef{KindWeapon, 0}
	if !e.SetPos(ref, cp.Vector{X: 77, Y: -3}) {
		t.Fatal("SetPos should resolve")
	}
	if got, _ := e.Pos(ref); got != (cp.Vector{X: 77, Y: -3}) {
		t.Fatalf("position after SetPos = %v", got)
	}
	if e.SetPos(EntityRef{KindSentryCam, 9}, cp.Vector{}) {
		t.Fatal("SetPos on a bad ref should report failure")
	}
}

func TestEntities_Labels(t *testing.T) {
	e := testEntities()
	if got := e.Label(EntityRef{KindEnemy, 0}); got != "guard" {
		t.Fatalf("named enemy label = %q", got)
	}
	if got := e.Label(EntityRef{KindEnemy, 1}); got != "enemy 1" {
		t.Fatalf("unnamed enemy label = %q", got)
	}
	if got := e.Label(EntityRef{KindPlayer, 0}); got != "player" {
		t.Fatalf("player label = %q", got)
	}
	if got := e.Label(EntityRef{KindWeapon, 0}); got != "weapon 0" {
		t.Fatalf("weapon label = %q", got)
	}
}

func TestEntities_NormalizeFillsDefaults(t *testing.T) {
	e := &Entities{
		Enemies: []Enemy{{Pos: cp.Vector{X: 1, Y: 2}}},
		Weapons: []Weapon{{Kind: WeaponPistol}},
	}
	e.normalize()
	en := e.Enemies[0]
	if en.W != 128 || en.H != 64 || en.Z <= 0 {
		t.Fatalf("enemy footprint not defaulted: %+v", en.Footprint)
	}
	if en.Range <= 0 || en.FOV <= 0 {
		t.Fatalf("enemy detection not defaulted: %+v", en.Detection)
	}
	if w := e.Weapons[0]; w.W != 64 || w.H != 32 {
		t.Fatalf("weapon footprint not defaulted: %+v", w.Footprint)
	}
}

func TestEntityKind_SnapClass(t *testing.T) {
	if KindWeapon.SpansCells() {
		t.Fatal("weapons are single-cell")
	}
	for _, k := range []EntityKind{KindPlayer, KindEnemy, KindSentryCam} {
		if !k.SpansCells() {
			t.Fatalf("%v should span cells", k)
		}
	}
}
