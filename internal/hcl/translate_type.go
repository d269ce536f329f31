// This file contains the logic for parsing HCL type keywords (e.g. `int`,
// `string`) into their corresponding config kinds.

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/vk/delegatego/internal/config"
	"github.com/vk/delegatego/internal/ctxlog"
)

// kindExprToKind converts a bare HCL type keyword expression into its
// config.Kind equivalent.
func kindExprToKind(ctx context.Context, expr hcl.Expression) (config.Kind, error) {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return config.KindVoid, fmt.Errorf("missing type keyword")
	}

	// Bare keywords like `int` decode as scope traversals; anything more
	// structured is not a type keyword.
	trav, ok := expr.(*hclsyntax.ScopeTraversalExpr)
	if !ok {
		return config.KindVoid, fmt.Errorf("expected a bare type keyword such as int, float, or string")
	}
	if len(trav.Traversal) != 1 {
		return config.KindVoid, fmt.Errorf("invalid type keyword: traversal path is not a single identifier")
	}

	kind, err := config.ParseKind(trav.Traversal.RootName())
	if err != nil {
		return config.KindVoid, err
	}
	logger.Debug("Parsed type keyword.", "kind", kind.String())
	return kind, nil
}

// isExprDefined checks if an HCL expression was actually present in the
// source code. The HCL decoder often populates optional fields with non-nil,
// zero-width expression objects, so a simple nil check is insufficient.
func isExprDefined(ctx context.Context, expr hcl.Expression, attrName string) bool {
	logger := ctxlog.FromContext(ctx)

	if expr == nil {
		return false
	}

	// A real attribute occupies bytes in the file, while a placeholder for
	// an omitted optional attribute has a zero-width source range.
	exprRange := expr.Range()
	isDefined := exprRange.End.Byte > exprRange.Start.Byte

	logger.Debug("Checking if HCL attribute was explicitly defined.",
		"attribute", attrName,
		"is_defined", isDefined,
	)
	return isDefined
}
