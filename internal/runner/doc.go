// Package runner executes a loaded scenario against the delegate library.
// It instantiates one typed delegate per declaration, applies the scenario's
// subscribe and invoke steps in source order, and writes invocation reports
// to the run's output writer.
package runner
