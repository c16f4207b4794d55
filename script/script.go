// Package script runs tengo terrain generators against a level's map.
// Scripts are plain tengo sources that see the map size and terrain names as
// globals and paint through set/fill/clear. The editor re-runs them on a
// hotkey and when the watcher reports a script edit.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/worldbuilder/world"
)

// Run executes one generator over m. The script mutates the map directly;
// on error the tiles already written stay written, the caller decides
// whether to reload.
func Run(src []byte, m *world.Map) error {
	s := tengo.NewScript(src)
	_ = s.Add("width", m.Width)
	_ = s.Add("height", m.Height)
	_ = s.Add("none", int(world.TerrainNone))
	for _, t := range world.PaintableTerrains() {
		_ = s.Add(t.String(), int(t))
	}

	_ = s.Add("set", &tengo.UserFunction{Name: "set", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 3 {
			return tengo.FalseValue, nil
		}
		x, ok1 := tengo.ToInt(args[0])
		y, ok2 := tengo.ToInt(args[1])
		t, ok3 := tengo.ToInt(args[2])
		if !ok1 || !ok2 || !ok3 || t < 0 || t > 255 {
			return tengo.FalseValue, nil
		}
		if m.SetTile(x, y, world.TerrainType(t)) {
			return tengo.TrueValue, nil
		}
		return tengo.FalseValue, nil
	}})

	_ = s.Add("get", &tengo.UserFunction{Name: "get", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 2 {
			return &tengo.Int{Value: 0}, nil
		}
		x, ok1 := tengo.ToInt(args[0])
		y, ok2 := tengo.ToInt(args[1])
		if !ok1 || !ok2 {
			return &tengo.Int{Value: 0}, nil
		}
		t, _ := m.TileAt(x, y)
		return &tengo.Int{Value: int64(t)}, nil
	}})

	_ = s.Add("fill", &tengo.UserFunction{Name: "fill", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 5 {
			return tengo.FalseValue, nil
		}
		v := make([]int, 5)
		for i, a := range args {
			n, ok := tengo.ToInt(a)
			if !ok {
				return tengo.FalseValue, nil
			}
			v[i] = n
		}
		if v[4] < 0 || v[4] > 255 || !world.TerrainType(v[4]).Valid() {
			return tengo.FalseValue, nil
		}
		m.Fill(v[0], v[1], v[2], v[3], world.TerrainType(v[4]))
		return tengo.TrueValue, nil
	}})

	_ = s.Add("clear", &tengo.UserFunction{Name: "clear", Value: func(args ...tengo.Object) (tengo.Object, error) {
		m.Clear()
		return tengo.TrueValue, nil
	}})

	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("script: compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

// RunFile loads and runs a generator by name, disk first, embedded samples
// as fallback.
func RunFile(name string, m *world.Map) error {
	src, err := Load(name)
	if err != nil {
		return fmt.Errorf("script: load %s: %w", name, err)
	}
	return Run(src, m)
}
