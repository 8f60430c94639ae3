package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/arcade/prefabs"
)

// scriptInputs are the globals a movement script can read. It writes its
// displacement for the tick into dx and dy.
var scriptInputs = []string{"t", "dt", "x", "y", "speed", "phase", "initial_y", "canvas_w", "canvas_h"}

// ScriptInput is the state handed to a movement script for one actor.
type ScriptInput struct {
	T, DT            float64
	X, Y             float64
	Speed, Phase     float64
	InitialY         float64
	CanvasW, CanvasH float64
}

func (in ScriptInput) values() []float64 {
	return []float64{in.T, in.DT, in.X, in.Y, in.Speed, in.Phase, in.InitialY, in.CanvasW, in.CanvasH}
}

// LoadFunc reads a script source by name.
type LoadFunc func(name string) ([]byte, error)

// ScriptRunner compiles movement scripts once per name and runs them per
// actor per tick. A script that fails to load or compile keeps failing
// with the same error until Reset.
type ScriptRunner struct {
	load   LoadFunc
	cache  map[string]*tengo.Compiled
	failed map[string]error
}

func NewScriptRunner(load LoadFunc) *ScriptRunner {
	if load == nil {
		load = prefabs.LoadScript
	}
	r := &ScriptRunner{load: load}
	r.Reset()
	return r
}

// Reset drops every compiled script and remembered failure so edited
// sources are picked up.
func (r *ScriptRunner) Reset() {
	r.cache = map[string]*tengo.Compiled{}
	r.failed = map[string]error{}
}

func (r *ScriptRunner) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := r.cache[name]; ok {
		return c, nil
	}
	if err, ok := r.failed[name]; ok {
		return nil, err
	}
	c, err := r.compile(name)
	if err != nil {
		r.failed[name] = err
		return nil, err
	}
	r.cache[name] = c
	return c, nil
}

func (r *ScriptRunner) compile(name string) (*tengo.Compiled, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("script: empty name")
	}
	src, err := r.load(name)
	if err != nil {
		return nil, fmt.Errorf("script %s: load: %w", name, err)
	}

	script := tengo.NewScript(src)
	for _, v := range scriptInputs {
		_ = script.Add(v, 0.0)
	}
	_ = script.Add("dx", 0.0)
	_ = script.Add("dy", 0.0)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	c, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script %s: compile: %w", name, err)
	}
	return c, nil
}

// Move runs the named script and returns the displacement it computed.
func (r *ScriptRunner) Move(name string, in ScriptInput) (float64, float64, error) {
	c, err := r.compiled(name)
	if err != nil {
		return 0, 0, err
	}
	for i, v := range in.values() {
		if err := c.Set(scriptInputs[i], v); err != nil {
			return 0, 0, fmt.Errorf("script %s: set %s: %w", name, scriptInputs[i], err)
		}
	}
	if err := c.Set("dx", 0.0); err != nil {
		return 0, 0, err
	}
	if err := c.Set("dy", 0.0); err != nil {
		return 0, 0, err
	}
	if err := c.Run(); err != nil {
		return 0, 0, fmt.Errorf("script %s: run: %w", name, err)
	}
	return c.Get("dx").Float(), c.Get("dy").Float(), nil
}
