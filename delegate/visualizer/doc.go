// Package visualizer renders a per-subscriber invocation report for a
// delegate. It invokes every subscriber individually with one shared
// argument value and writes one row per subscriber to an io.Writer, either
// as plain lines or as an aligned table.
//
// The visualizer is a read-only consumer of the delegate API. It never
// modifies the registry it reports on.
package visualizer
