package mathops

import (
	"fmt"

	"github.com/vk/delegatego/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnSquare is the handler for the 'square' action.
func OnSquare(n int) int {
	return n * n
}

// OnNegate is the handler for the 'negate' action.
func OnNegate(n int) int {
	return -n
}

// OnDouble is the handler for the 'double' action.
func OnDouble(n int) int {
	return 2 * n
}

// OnPrintInt is the handler for the 'print_int' action.
func OnPrintInt(n int) {
	fmt.Printf("      value = %d\n", n)
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAction("OnSquare", &registry.RegisteredAction{Fn: OnSquare})
	r.RegisterAction("OnNegate", &registry.RegisteredAction{Fn: OnNegate})
	r.RegisterAction("OnDouble", &registry.RegisteredAction{Fn: OnDouble})
	r.RegisterAction("OnPrintInt", &registry.RegisteredAction{Fn: OnPrintInt})
}
