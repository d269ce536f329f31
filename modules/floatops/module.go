package floatops

import (
	"fmt"
	"math"

	"github.com/vk/delegatego/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnHalve is the handler for the 'halve' action.
func OnHalve(x float64) float64 {
	return x / 2
}

// OnSqrt is the handler for the 'sqrt' action.
func OnSqrt(x float64) float64 {
	return math.Sqrt(x)
}

// OnPrintFloat is the handler for the 'print_float' action.
func OnPrintFloat(x float64) {
	fmt.Printf("      value = %g\n", x)
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAction("OnHalve", &registry.RegisteredAction{Fn: OnHalve})
	r.RegisterAction("OnSqrt", &registry.RegisteredAction{Fn: OnSqrt})
	r.RegisterAction("OnPrintFloat", &registry.RegisteredAction{Fn: OnPrintFloat})
}
