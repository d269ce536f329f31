package testutil

import "github.com/vk/delegatego/internal/registry"

// NoOpModule is a helper that satisfies the registry.Module interface and
// registers handlers that do nothing for each supported kind. It's useful
// for tests that should fail before or during execution but still need
// manifests that can pass registry validation.
type NoOpModule struct{}

// Register registers one do-nothing handler per kind plus an int handler
// that returns its argument unchanged.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterAction("NoOpInt", &registry.RegisteredAction{Fn: func(int) {}})
	r.RegisterAction("NoOpFloat", &registry.RegisteredAction{Fn: func(float64) {}})
	r.RegisterAction("NoOpString", &registry.RegisteredAction{Fn: func(string) {}})
	r.RegisterAction("IdentityInt", &registry.RegisteredAction{Fn: func(n int) int { return n }})
}
