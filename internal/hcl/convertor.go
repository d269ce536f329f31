package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/delegatego/internal/config"
	"github.com/vk/delegatego/internal/ctxlog"
)

// Converter is the HCL-specific implementation of the config.Converter
// interface. It evaluates argument expressions and binds them to the native
// Go types the delegate kinds are built on.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// ScalarValue evaluates a single argument expression into the Go value for
// kind: int, float64, or string.
func (c *Converter) ScalarValue(ctx context.Context, expr hcl.Expression, kind config.Kind) (any, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate argument: %w", diags)
	}
	return c.toGo(ctx, val, kind)
}

// SeriesValues evaluates a list expression into one Go value per element,
// each converted for kind.
func (c *Converter) SeriesValues(ctx context.Context, expr hcl.Expression, kind config.Kind) ([]any, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate series: %w", diags)
	}
	if val.IsNull() {
		return nil, fmt.Errorf("series must not be null")
	}
	if !val.Type().IsTupleType() && !val.Type().IsListType() {
		return nil, fmt.Errorf("series must be a list, got %s", val.Type().FriendlyName())
	}

	var out []any
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		goVal, err := c.toGo(ctx, elem, kind)
		if err != nil {
			return nil, fmt.Errorf("series element %d: %w", len(out), err)
		}
		out = append(out, goVal)
	}
	return out, nil
}

// toGo converts a single cty value into the Go representation of kind.
func (c *Converter) toGo(ctx context.Context, val cty.Value, kind config.Kind) (any, error) {
	logger := ctxlog.FromContext(ctx)

	if val.IsNull() {
		return nil, fmt.Errorf("argument must not be null")
	}

	var target cty.Type
	switch kind {
	case config.KindInt, config.KindFloat:
		target = cty.Number
	case config.KindString:
		target = cty.String
	default:
		return nil, fmt.Errorf("kind %s carries no argument values", kind)
	}

	converted, err := convert.Convert(val, target)
	if err != nil {
		return nil, fmt.Errorf("cannot convert %s to %s: %w", val.Type().FriendlyName(), kind, err)
	}
	if !val.Type().Equals(converted.Type()) {
		logger.Debug("Implicitly converted argument type.",
			"from", val.Type().FriendlyName(),
			"to", converted.Type().FriendlyName(),
		)
	}

	switch kind {
	case config.KindInt:
		var n int
		if err := gocty.FromCtyValue(converted, &n); err != nil {
			return nil, fmt.Errorf("argument is not a valid int: %w", err)
		}
		return n, nil
	case config.KindFloat:
		var f float64
		if err := gocty.FromCtyValue(converted, &f); err != nil {
			return nil, fmt.Errorf("argument is not a valid float: %w", err)
		}
		return f, nil
	default:
		var s string
		if err := gocty.FromCtyValue(converted, &s); err != nil {
			return nil, fmt.Errorf("argument is not a valid string: %w", err)
		}
		return s, nil
	}
}
