package runner

import (
	"fmt"
	"io"

	"github.com/vk/delegatego/delegate"
	"github.com/vk/delegatego/delegate/visualizer"
	"github.com/vk/delegatego/internal/config"
)

// instance adapts one typed delegate behind a kind-agnostic interface the
// step loop can drive. The concrete types below are the bridge between the
// runtime kinds found in configuration and the compile-time type parameters
// of the delegate library.
type instance interface {
	decl() *config.DelegateDecl
	subscribe(fn any) error
	subscribeWith(args any, fn any) error
	subscribeSeries(fn any, series []any) error
	invokeAll(args any) (sum any, hasSum bool, err error)
	invokeDeferred() (sum any, hasSum bool, err error)
	report(w io.Writer, args any, view visualizer.View) error
	counts() (subscribers, deferred int)
}

// newInstance builds the concrete delegate for a declaration. Declarations
// arrive validated (params is never void, returns is void or equals params),
// so the switch is exhaustive over the supported kinds.
func newInstance(decl *config.DelegateDecl) (instance, error) {
	switch decl.Params {
	case config.KindInt:
		if decl.Returns == config.KindVoid {
			return &voidInstance[int]{d: delegate.New[int](), dd: decl}, nil
		}
		return &valueInstance[int]{d: delegate.NewValue[int, int](), dd: decl}, nil
	case config.KindFloat:
		if decl.Returns == config.KindVoid {
			return &voidInstance[float64]{d: delegate.New[float64](), dd: decl}, nil
		}
		return &valueInstance[float64]{d: delegate.NewValue[float64, float64](), dd: decl}, nil
	case config.KindString:
		if decl.Returns == config.KindVoid {
			return &voidInstance[string]{d: delegate.New[string](), dd: decl}, nil
		}
		return &valueInstance[string]{d: delegate.NewValue[string, string](), dd: decl}, nil
	default:
		return nil, fmt.Errorf("delegate %q: unsupported params kind %s", decl.Name, decl.Params)
	}
}

// voidInstance drives a delegate.Delegate[A] for steps of a void-returning
// declaration.
type voidInstance[A any] struct {
	d  *delegate.Delegate[A]
	dd *config.DelegateDecl
}

func (i *voidInstance[A]) decl() *config.DelegateDecl { return i.dd }

func (i *voidInstance[A]) subscribe(fn any) error {
	f, err := asFunc[func(A)](i.dd, fn)
	if err != nil {
		return err
	}
	i.d.Subscribe(f)
	return nil
}

func (i *voidInstance[A]) subscribeWith(args any, fn any) error {
	f, err := asFunc[func(A)](i.dd, fn)
	if err != nil {
		return err
	}
	a, err := asArgs[A](i.dd, args)
	if err != nil {
		return err
	}
	i.d.SubscribeWith(a, f)
	return nil
}

func (i *voidInstance[A]) subscribeSeries(fn any, series []any) error {
	f, err := asFunc[func(A)](i.dd, fn)
	if err != nil {
		return err
	}
	typed, err := asSeries[A](i.dd, series)
	if err != nil {
		return err
	}
	i.d.SubscribeSeries(f, typed...)
	return nil
}

func (i *voidInstance[A]) invokeAll(args any) (any, bool, error) {
	a, err := asArgs[A](i.dd, args)
	if err != nil {
		return nil, false, err
	}
	i.d.InvokeAll(a)
	return nil, false, nil
}

func (i *voidInstance[A]) invokeDeferred() (any, bool, error) {
	return nil, false, i.d.InvokeDeferred()
}

func (i *voidInstance[A]) report(w io.Writer, args any, view visualizer.View) error {
	a, err := asArgs[A](i.dd, args)
	if err != nil {
		return err
	}
	return visualizer.Render(w, i.d, a, view)
}

func (i *voidInstance[A]) counts() (int, int) {
	return i.d.Len(), i.d.DeferredLen()
}

// valueInstance drives a delegate.ValueDelegate[A, A] for declarations whose
// returns kind equals their params kind.
type valueInstance[A delegate.Addable] struct {
	d  *delegate.ValueDelegate[A, A]
	dd *config.DelegateDecl
}

func (i *valueInstance[A]) decl() *config.DelegateDecl { return i.dd }

func (i *valueInstance[A]) subscribe(fn any) error {
	f, err := asFunc[func(A) A](i.dd, fn)
	if err != nil {
		return err
	}
	i.d.Subscribe(f)
	return nil
}

func (i *valueInstance[A]) subscribeWith(args any, fn any) error {
	f, err := asFunc[func(A) A](i.dd, fn)
	if err != nil {
		return err
	}
	a, err := asArgs[A](i.dd, args)
	if err != nil {
		return err
	}
	i.d.SubscribeWith(a, f)
	return nil
}

func (i *valueInstance[A]) subscribeSeries(fn any, series []any) error {
	f, err := asFunc[func(A) A](i.dd, fn)
	if err != nil {
		return err
	}
	typed, err := asSeries[A](i.dd, series)
	if err != nil {
		return err
	}
	i.d.SubscribeSeries(f, typed...)
	return nil
}

func (i *valueInstance[A]) invokeAll(args any) (any, bool, error) {
	a, err := asArgs[A](i.dd, args)
	if err != nil {
		return nil, false, err
	}
	return i.d.InvokeAll(a), true, nil
}

func (i *valueInstance[A]) invokeDeferred() (any, bool, error) {
	sum, err := i.d.InvokeDeferred()
	if err != nil {
		return nil, false, err
	}
	return sum, true, nil
}

func (i *valueInstance[A]) report(w io.Writer, args any, view visualizer.View) error {
	a, err := asArgs[A](i.dd, args)
	if err != nil {
		return err
	}
	return visualizer.RenderValue(w, i.d, a, view)
}

func (i *valueInstance[A]) counts() (int, int) {
	return i.d.Len(), i.d.DeferredLen()
}

// asFunc asserts a registered handler onto the function type the delegate
// needs. Startup validation guarantees the match; a failure here means the
// runner was handed an unvalidated registry.
func asFunc[F any](decl *config.DelegateDecl, fn any) (F, error) {
	f, ok := fn.(F)
	if !ok {
		var zero F
		return zero, fmt.Errorf("delegate %q: handler has type %T, need %T", decl.Name, fn, zero)
	}
	return f, nil
}

// asArgs asserts a converted argument value onto the delegate's parameter type.
func asArgs[A any](decl *config.DelegateDecl, args any) (A, error) {
	a, ok := args.(A)
	if !ok {
		var zero A
		return zero, fmt.Errorf("delegate %q: argument has type %T, need %T", decl.Name, args, zero)
	}
	return a, nil
}

// asSeries asserts every element of a converted series.
func asSeries[A any](decl *config.DelegateDecl, series []any) ([]A, error) {
	typed := make([]A, len(series))
	for idx, elem := range series {
		a, err := asArgs[A](decl, elem)
		if err != nil {
			return nil, fmt.Errorf("series element %d: %w", idx, err)
		}
		typed[idx] = a
	}
	return typed, nil
}
