package registry

import (
	"fmt"
	"log/slog"
)

// RegisteredAction holds the compiled Go side of a manifest action: a
// function whose signature matches the action's declared params and returns
// kinds, e.g. func(int) int for an int action returning int.
type RegisteredAction struct {
	Fn any
}

// RegisterAction registers a Go function under a handler name. Registering
// the same name twice is a programmer error.
func (r *Registry) RegisterAction(name string, handler *RegisteredAction) {
	if _, exists := r.HandlerRegistry[name]; exists {
		panic(fmt.Sprintf("action handler with name '%s' already registered", name))
	}
	slog.Debug("Registering action handler.", "name", name)
	r.HandlerRegistry[name] = handler
}
