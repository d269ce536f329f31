package config

import (
	"github.com/hashicorp/hcl/v2"
)

// Model is the unified, format-agnostic representation of the entire
// application configuration: every action manifest plus the user's scenario.
type Model struct {
	Actions  map[string]*ActionDefinition
	Scenario *Scenario
}

// Scenario represents the user's delegate wiring: the declared delegate
// instances and the ordered steps that populate and invoke them. Step order
// is source order and is observable in the run's output.
type Scenario struct {
	Delegates []*DelegateDecl
	Steps     []*Step
}

// DelegateDecl is the format-agnostic representation of a `delegate` block.
type DelegateDecl struct {
	Params  Kind
	Name    string
	Returns Kind
}

// Step is the format-agnostic representation of a `step` block. Which
// fields are meaningful depends on Verb.
type Step struct {
	Verb     string
	Delegate string

	// Subscribe fields.
	Action string

	// Args carries a single argument value: the cached tuple for a
	// subscribe step, or the shared arguments for an invoke step.
	Args hcl.Expression

	// Series carries the list of argument values for a series subscription.
	Series hcl.Expression

	// Invoke fields.
	Mode   string
	Report string
}

// --- Module Manifest Models ---

// ActionDefinition is the format-agnostic representation of an action's
// manifest entry: a named callable that scenario steps can subscribe to a
// delegate.
type ActionDefinition struct {
	Name        string
	Description string
	Params      Kind
	Returns     Kind
	Handler     string
}
