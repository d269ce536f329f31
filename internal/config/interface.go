package config

import (
	"context"

	"github.com/hashicorp/hcl/v2"
)

// Loader is the interface for a format-specific configuration loader.
type Loader interface {
	// Load reads configuration from the given paths, translates it into the
	// format-agnostic model, and returns a matching Converter.
	Load(ctx context.Context, paths ...string) (*Model, Converter, error)
}

// Converter is the interface for a format-specific data binding
// implementation. It bridges raw argument expressions held in the model to
// the native Go values a delegate of a given kind accepts.
type Converter interface {
	// ScalarValue evaluates an argument expression into the Go value for
	// kind: int, float64, or string.
	ScalarValue(ctx context.Context, expr hcl.Expression, kind Kind) (any, error)

	// SeriesValues evaluates a list expression into one Go value per
	// element, each converted for kind.
	SeriesValues(ctx context.Context, expr hcl.Expression, kind Kind) ([]any, error)
}
