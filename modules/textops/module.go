package textops

import (
	"fmt"
	"os"
	"strings"

	"github.com/vk/delegatego/internal/registry"
)

// Module implements the registry.Module interface for this package.
type Module struct{}

// OnUpper is the handler for the 'upper' action.
func OnUpper(s string) string {
	return strings.ToUpper(s)
}

// OnReverse is the handler for the 'reverse' action.
func OnReverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// OnExpandEnv is the handler for the 'expand_env' action. References like
// $HOME or ${HOME} are replaced with the values of the current environment.
func OnExpandEnv(s string) string {
	return os.ExpandEnv(s)
}

// OnEcho is the handler for the 'echo' action.
func OnEcho(s string) {
	fmt.Printf("      value = %q\n", s)
}

// Register registers the handlers with the registry.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterAction("OnUpper", &registry.RegisteredAction{Fn: OnUpper})
	r.RegisterAction("OnReverse", &registry.RegisteredAction{Fn: OnReverse})
	r.RegisterAction("OnExpandEnv", &registry.RegisteredAction{Fn: OnExpandEnv})
	r.RegisterAction("OnEcho", &registry.RegisteredAction{Fn: OnEcho})
}
