package testutil

import (
	"testing"

	"github.com/vk/delegatego/internal/config"
)

// standardManifest declares one action per NoOpModule handler so scenario
// parsing tests can reference well-known action names without shipping their
// own manifests.
const standardManifest = `
	action "noop" {
		params  = int
		handler = "NoOpInt"
	}
	action "noop_float" {
		params  = float
		handler = "NoOpFloat"
	}
	action "noop_string" {
		params  = string
		handler = "NoOpString"
	}
	action "identity" {
		params  = int
		returns = int
		handler = "IdentityInt"
	}
`

// RunScenarioHCLTest provides a simplified harness for testing the parsing of
// a single scenario HCL string. It wraps the main integration test harness,
// providing a stock manifest and no-op handlers that satisfy validation.
func RunScenarioHCLTest(t *testing.T, scenarioHCL string) (*HarnessResult, *config.Scenario) {
	t.Helper()

	files := map[string]string{
		"scenario/main.hcl":         scenarioHCL,
		"modules/noop/manifest.hcl": standardManifest,
	}

	result := RunIntegrationTest(t, files, &NoOpModule{})

	if result.App != nil && result.App.Model() != nil {
		return result, result.App.Model().Scenario
	}

	return result, nil
}
