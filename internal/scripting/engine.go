package scripting

import (
	"fmt"
	"math"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/gridsim/gridsim/internal/component"
	"github.com/gridsim/gridsim/internal/world"
)

// Engine wraps a single gopher-lua VM used to seed the world.
// Single-goroutine access only.
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine with only the base, table, string and math libs.
func NewEngine(log *zap.Logger) *Engine {
	vm := lua.NewState(lua.Options{SkipOpenLibs: true})
	for _, lib := range []struct {
		name string
		fn   lua.LGFunction
	}{
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		vm.Push(vm.NewFunction(lib.fn))
		vm.Push(lua.LString(lib.name))
		vm.Call(1, 0)
	}
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Engine{vm: vm, log: log}
}

// SeedFile runs a population script against w and returns how many entities
// it spawned.
func (e *Engine) SeedFile(w *world.World, path string) (int, error) {
	n := e.bind(w)
	if err := e.vm.DoFile(path); err != nil {
		return *n, fmt.Errorf("seed script %s: %w", path, err)
	}
	e.log.Debug("seed script done", zap.String("file", path), zap.Int("spawned", *n))
	return *n, nil
}

// SeedString is SeedFile for inline source.
func (e *Engine) SeedString(w *world.World, src string) (int, error) {
	n := e.bind(w)
	if err := e.vm.DoString(src); err != nil {
		return *n, fmt.Errorf("seed script: %w", err)
	}
	return *n, nil
}

// bind exposes the world to scripts:
//
//	spawn{ x=0, y=0, vx=1, vy=1, counter=0 } -> entity id
//	grid_width, grid_height, capacity
func (e *Engine) bind(w *world.World) *int {
	spawned := 0
	e.vm.SetGlobal("grid_width", lua.LNumber(w.Grid.Width))
	e.vm.SetGlobal("grid_height", lua.LNumber(w.Grid.Height))
	e.vm.SetGlobal("capacity", lua.LNumber(w.Pool().Capacity()))
	e.vm.SetGlobal("spawn", e.vm.NewFunction(func(L *lua.LState) int {
		t := L.CheckTable(1)
		bp, err := blueprintFromTable(t)
		if err != nil {
			L.ArgError(1, err.Error())
			return 0
		}
		id, err := w.Spawn(bp)
		if err != nil {
			L.RaiseError("spawn: %s", err.Error())
			return 0
		}
		spawned++
		L.Push(lua.LNumber(uint32(id)))
		return 1
	}))
	return &spawned
}

func blueprintFromTable(t *lua.LTable) (world.Blueprint, error) {
	var bp world.Blueprint
	var xy, v [2]int32
	var hasXY, hasV bool
	for i, key := range [...]string{"x", "y", "vx", "vy"} {
		n, ok := lInt(t, key)
		if !ok {
			continue
		}
		if n < math.MinInt32 || n > math.MaxInt32 {
			return bp, fmt.Errorf("%s out of int32 range, got %d", key, n)
		}
		if i < 2 {
			xy[i], hasXY = int32(n), true
		} else {
			v[i-2], hasV = int32(n), true
		}
	}
	if hasXY {
		bp.Position = &component.Position{X: xy[0], Y: xy[1]}
	}
	if hasV {
		bp.Velocity = &component.Velocity{VX: v[0], VY: v[1]}
	}
	if c, ok := lInt(t, "counter"); ok {
		if c < 0 || c > math.MaxUint32 {
			return bp, fmt.Errorf("counter out of uint32 range, got %d", c)
		}
		bp.Counter = &component.Counter{Value: uint32(c)}
	}
	if bp == (world.Blueprint{}) {
		return bp, fmt.Errorf("entity needs at least one of x, y, vx, vy, counter")
	}
	return bp, nil
}

// lInt reads an integer field from a Lua table. Values past the int64 range
// saturate so the caller's range check still rejects them.
func lInt(t *lua.LTable, key string) (int64, bool) {
	v := t.RawGetString(key)
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, false
	}
	switch f := float64(n); {
	case f >= math.MaxInt64:
		return math.MaxInt64, true
	case f <= math.MinInt64:
		return math.MinInt64, true
	}
	return int64(n), true
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
