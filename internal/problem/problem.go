// Package problem supplies concrete euler.Problem implementations: a
// capability record installed at startup rather than an inheritance
// hierarchy. Each type here implements one end-to-end test scenario for
// the solver.
package problem

import (
	"fmt"

	"github.com/bryanceoyang/euler2d/internal/euler"
)

// Factory builds a Problem from a run config's free-form params map,
// the same "name selects a constructor, constructor reads its own
// params" shape inmaputil uses to dispatch named emissions processors.
type Factory func(params map[string]interface{}) (euler.Problem, error)

var registry = map[string]Factory{
	"sod":          newSod,
	"uniform":      newUniform,
	"advection":    newAdvection,
	"riemann4":     newRiemann4,
	"gaussian_box": newGaussianBox,
}

// Lookup resolves a problem by name, returning an error (never a panic)
// on an unknown name so the CLI can report it and exit non-zero.
func Lookup(name string, params map[string]interface{}) (euler.Problem, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("problem: unknown problem %q", name)
	}
	return factory(params)
}

// Names lists every registered problem name, for --help text and error
// messages.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	return names
}

func floatParam(params map[string]interface{}, key string, def float64) float64 {
	if params == nil {
		return def
	}
	v, ok := params[key]
	if !ok {
		return def
	}
	switch f := v.(type) {
	case float64:
		return f
	case int:
		return float64(f)
	default:
		return def
	}
}

func intParam(params map[string]interface{}, key string, def int) int {
	if params == nil {
		return def
	}
	v, ok := params[key]
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	default:
		return def
	}
}
