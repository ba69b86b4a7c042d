package signal

import (
	"math"
	"sort"
)

var registry = map[string]Func{
	// sin(x) + 0.5 is the reference signal, positive on [0, π).
	"sin+0.5": func(x float64) float64 { return math.Sin(x) + 0.5 },
	"sin":     math.Sin,
	"cos":     math.Cos,
	"ramp":    func(x float64) float64 { return x },
	"parabola": func(x float64) float64 {
		return x * x
	},
	// step jumps from 0 to 1 at π/2, the middle of the reference domain.
	"step": func(x float64) float64 {
		if x < math.Pi/2 {
			return 0
		}
		return 1
	},
}

// Lookup returns the named source function.
func Lookup(name string) (Func, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names returns the registered function names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
