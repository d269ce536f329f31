// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl

import (
	"context"
	"fmt"

	"github.com/vk/delegatego/internal/config"
	"github.com/vk/delegatego/internal/schema"
)

// translateActionDefinition converts the HCL-specific action schema into the
// agnostic model, parsing the params and returns type keywords.
func (l *Loader) translateActionDefinition(ctx context.Context, s *schema.ActionDefinition) (*config.ActionDefinition, error) {
	params, err := kindExprToKind(ctx, s.Params)
	if err != nil {
		return nil, fmt.Errorf("in action %q, attribute 'params': %w", s.Name, err)
	}
	if params == config.KindVoid {
		return nil, fmt.Errorf("in action %q: params cannot be 'void'", s.Name)
	}

	returns := config.KindVoid
	if isExprDefined(ctx, s.Returns, "returns") {
		returns, err = kindExprToKind(ctx, s.Returns)
		if err != nil {
			return nil, fmt.Errorf("in action %q, attribute 'returns': %w", s.Name, err)
		}
	}
	if returns != config.KindVoid && returns != params {
		return nil, fmt.Errorf("in action %q: returns must be 'void' or match params (%s), got %s", s.Name, params, returns)
	}

	if s.Handler == "" {
		return nil, fmt.Errorf("in action %q: handler must not be empty", s.Name)
	}

	return &config.ActionDefinition{
		Name:        s.Name,
		Description: s.Description,
		Params:      params,
		Returns:     returns,
		Handler:     s.Handler,
	}, nil
}

// translateDelegateDecl converts the HCL-specific delegate declaration into
// the agnostic model. The params label is a type keyword; returns defaults
// to void.
func (l *Loader) translateDelegateDecl(ctx context.Context, s *schema.DelegateDecl) (*config.DelegateDecl, error) {
	params, err := config.ParseKind(s.Params)
	if err != nil {
		return nil, fmt.Errorf("in delegate %q, params label: %w", s.Name, err)
	}
	if params == config.KindVoid {
		return nil, fmt.Errorf("in delegate %q: params cannot be 'void'", s.Name)
	}

	returns := config.KindVoid
	if isExprDefined(ctx, s.Returns, "returns") {
		returns, err = kindExprToKind(ctx, s.Returns)
		if err != nil {
			return nil, fmt.Errorf("in delegate %q, attribute 'returns': %w", s.Name, err)
		}
	}
	if returns != config.KindVoid && returns != params {
		return nil, fmt.Errorf("in delegate %q: returns must be 'void' or match params (%s), got %s", s.Name, params, returns)
	}

	return &config.DelegateDecl{
		Params:  params,
		Name:    s.Name,
		Returns: returns,
	}, nil
}

// translateStep converts the HCL-specific step schema into the agnostic
// model, validating the verb and the verb-specific attributes.
func (l *Loader) translateStep(ctx context.Context, s *schema.Step) (*config.Step, error) {
	step := &config.Step{
		Verb:     s.Verb,
		Delegate: s.Delegate,
		Action:   s.Action,
		Mode:     s.Mode,
		Report:   s.Report,
	}
	if isExprDefined(ctx, s.Args, "args") {
		step.Args = s.Args
	}
	if isExprDefined(ctx, s.Series, "series") {
		step.Series = s.Series
	}

	switch s.Verb {
	case "subscribe":
		if s.Action == "" {
			return nil, fmt.Errorf("subscribe step for delegate %q: action must be set", s.Delegate)
		}
		if s.Mode != "" || s.Report != "" {
			return nil, fmt.Errorf("subscribe step for delegate %q: mode and report only apply to invoke steps", s.Delegate)
		}
		if step.Args != nil && step.Series != nil {
			return nil, fmt.Errorf("subscribe step for delegate %q: args and series are mutually exclusive", s.Delegate)
		}
	case "invoke":
		if s.Action != "" {
			return nil, fmt.Errorf("invoke step for delegate %q: action only applies to subscribe steps", s.Delegate)
		}
		if step.Series != nil {
			return nil, fmt.Errorf("invoke step for delegate %q: series only applies to subscribe steps", s.Delegate)
		}
		switch s.Mode {
		case "", "all", "deferred":
			// valid; empty defaults to "all" in the model
		default:
			return nil, fmt.Errorf("invoke step for delegate %q: invalid mode %q, must be 'all' or 'deferred'", s.Delegate, s.Mode)
		}
		if step.Mode == "" {
			step.Mode = "all"
		}
		switch s.Report {
		case "", "none", "list", "table":
			// valid
		default:
			return nil, fmt.Errorf("invoke step for delegate %q: invalid report %q, must be 'none', 'list', or 'table'", s.Delegate, s.Report)
		}
		if step.Report == "" {
			step.Report = "none"
		}
		if step.Mode == "all" && step.Args == nil {
			return nil, fmt.Errorf("invoke step for delegate %q: mode 'all' requires args", s.Delegate)
		}
		if step.Mode == "deferred" && step.Args != nil {
			return nil, fmt.Errorf("invoke step for delegate %q: mode 'deferred' replays stored arguments and takes no args", s.Delegate)
		}
		if step.Mode == "deferred" && step.Report != "none" {
			return nil, fmt.Errorf("invoke step for delegate %q: report only applies to mode 'all'", s.Delegate)
		}
	default:
		return nil, fmt.Errorf("unknown step verb %q for delegate %q: must be 'subscribe' or 'invoke'", s.Verb, s.Delegate)
	}

	return step, nil
}
