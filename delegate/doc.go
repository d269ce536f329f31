// Package delegate provides an ordered, multi-subscriber callback registry
// for a fixed call signature.
//
// A delegate holds a sequence of subscribers (functions, or method/receiver
// pairs) that are invoked together. Invocation comes in two forms: InvokeAll
// calls every subscriber immediately with one shared argument value, while
// InvokeDeferred replays argument values that were cached at subscription
// time, one call per cached entry. The value-returning flavors accumulate
// every result into a single value using the + operator.
//
// Delegates are not safe for concurrent use. Callers that share a delegate
// across goroutines must serialize access themselves.
package delegate
