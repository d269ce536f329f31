package schema

import (
	"github.com/hashicorp/hcl/v2"
)

// --- Primary Scenario Structures ---

// DelegateDecl represents a `delegate` block from a user's scenario file. It
// declares a named delegate instance with a parameter type and an optional
// result type.
type DelegateDecl struct {
	Params  string         `hcl:"params,label"`
	Name    string         `hcl:"instance_name,label"`
	Returns hcl.Expression `hcl:"returns,optional"`
}

// Step represents a `step` block from a user's scenario file. The verb label
// selects the operation ("subscribe" or "invoke"), the second label names
// the target delegate instance.
type Step struct {
	Verb     string         `hcl:"verb,label"`
	Delegate string         `hcl:"delegate_name,label"`
	Action   string         `hcl:"action,optional"`
	Args     hcl.Expression `hcl:"args,optional"`
	Series   hcl.Expression `hcl:"series,optional"`
	Mode     string         `hcl:"mode,optional"`
	Report   string         `hcl:"report,optional"`
}

// ScenarioConfig represents the top-level structure of a user's scenario
// file, containing all declared delegates and the ordered steps that drive
// them.
type ScenarioConfig struct {
	Delegates []*DelegateDecl `hcl:"delegate,block"`
	Steps     []*Step         `hcl:"step,block"`
	Body      hcl.Body        `hcl:",remain"`
}

// --- Module Manifest Schemas ---

// ActionDefinition represents the HCL manifest for a subscribable `action`
// type. The params and returns attributes are bare type keywords (int,
// float, string, void) and are parsed into config kinds at translate time.
type ActionDefinition struct {
	Name        string         `hcl:"name,label"`
	Description string         `hcl:"description,optional"`
	Params      hcl.Expression `hcl:"params"`
	Returns     hcl.Expression `hcl:"returns,optional"`
	Handler     string         `hcl:"handler"`
}

// ManifestConfig represents the top-level structure of a module manifest file.
type ManifestConfig struct {
	Actions []*ActionDefinition `hcl:"action,block"`
	Body    hcl.Body            `hcl:",remain"`
}
