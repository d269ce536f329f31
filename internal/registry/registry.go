package registry

import (
	"github.com/vk/delegatego/internal/config"
)

// Module is the interface that all core modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered handlers and action definitions for a
// single application instance.
type Registry struct {
	HandlerRegistry map[string]*RegisteredAction
	ActionRegistry  map[string]*config.ActionDefinition
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		HandlerRegistry: make(map[string]*RegisteredAction),
		ActionRegistry:  make(map[string]*config.ActionDefinition),
	}
}

// PopulateDefinitionsFromModel copies the loaded action definitions from the
// config model into the registry for easy access during execution.
func (r *Registry) PopulateDefinitionsFromModel(model *config.Model) {
	for key, val := range model.Actions {
		r.ActionRegistry[key] = val
	}
}
