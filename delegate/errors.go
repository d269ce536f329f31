package delegate

import "fmt"

// InvalidIndexError reports a deferred entry whose stored subscriber index no
// longer maps to a live subscriber. It aborts the operation before any
// out-of-range access happens.
type InvalidIndexError struct {
	Op    string
	Index int
	Len   int
}

// Error implements the error interface for InvalidIndexError.
func (e *InvalidIndexError) Error() string {
	return fmt.Sprintf("delegate: %s: deferred entry references subscriber %d, registry holds %d", e.Op, e.Index, e.Len)
}
