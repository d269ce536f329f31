package registry

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/vk/delegatego/internal/config"
	"github.com/vk/delegatego/internal/ctxlog"
)

// GoParamType maps an argument kind onto the Go type delegates of that kind
// carry: int, float64, or string.
func GoParamType(kind config.Kind) reflect.Type {
	switch kind {
	case config.KindInt:
		return reflect.TypeOf(int(0))
	case config.KindFloat:
		return reflect.TypeOf(float64(0))
	case config.KindString:
		return reflect.TypeOf("")
	default:
		panic(fmt.Sprintf("kind %s has no Go argument type", kind))
	}
}

// ExpectedSignature builds the Go function type a handler must have to back
// the given action definition.
func ExpectedSignature(def *config.ActionDefinition) reflect.Type {
	in := []reflect.Type{GoParamType(def.Params)}
	if def.Returns == config.KindVoid {
		return reflect.FuncOf(in, nil, false)
	}
	return reflect.FuncOf(in, []reflect.Type{GoParamType(def.Returns)}, false)
}

// ValidateRegistry performs a strict parity check between manifests and Go
// code: every action's handler must be registered, and the handler's
// signature must match the action's declared params and returns kinds. All
// mismatches are collected and reported together.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	names := make([]string, 0, len(r.ActionRegistry))
	for name := range r.ActionRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def := r.ActionRegistry[name]

		handler, ok := r.HandlerRegistry[def.Handler]
		if !ok {
			errs = append(errs, fmt.Sprintf("action '%s': manifest names handler '%s', but no such handler is registered", name, def.Handler))
			continue
		}
		if handler.Fn == nil {
			errs = append(errs, fmt.Sprintf("action '%s': handler '%s' has no function", name, def.Handler))
			continue
		}

		want := ExpectedSignature(def)
		got := reflect.TypeOf(handler.Fn)
		if got != want {
			errs = append(errs, fmt.Sprintf("action '%s': handler '%s' has signature %s, manifest requires %s", name, def.Handler, got, want))
			continue
		}

		logger.Debug("Action handler validated.", "action", name, "handler", def.Handler)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
