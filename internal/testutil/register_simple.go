package testutil

import "github.com/vk/delegatego/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single action handler.
type SimpleModule struct {
	HandlerName string
	Handler     *registry.RegisteredAction
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.HandlerName != "" && m.Handler != nil {
		r.RegisterAction(m.HandlerName, m.Handler)
	}
}
