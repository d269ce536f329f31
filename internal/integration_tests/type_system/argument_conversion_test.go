package integration_tests

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/delegatego/internal/registry"
	"github.com/vk/delegatego/internal/testutil"
)

type intProbeModule struct {
	calls *[]string
}

func (m *intProbeModule) Register(r *registry.Registry) {
	r.RegisterAction("probe", &registry.RegisteredAction{Fn: func(n int) {
		*m.calls = append(*m.calls, fmt.Sprintf("probe(%d)", n))
	}})
}

const probeManifest = `
	action "probe" {
		params  = int
		handler = "probe"
	}
`

// TestTypeSystem_ArgumentConversionFailures validates that argument values
// incompatible with the delegate's kind fail the step with a conversion error.
func TestTypeSystem_ArgumentConversionFailures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		scenario string
		wantErr  string
	}{
		{
			name: "fractional number for int kind",
			scenario: `
				delegate "int" "events" {}
				step "subscribe" "events" {
					action = "probe"
					args   = 3.5
				}
			`,
			wantErr: "argument is not a valid int",
		},
		{
			name: "non-numeric string for int kind",
			scenario: `
				delegate "int" "events" {}
				step "subscribe" "events" {
					action = "probe"
					args   = "abc"
				}
			`,
			wantErr: "cannot convert string to int",
		},
		{
			name: "null argument",
			scenario: `
				delegate "int" "events" {}
				step "subscribe" "events" {
					action = "probe"
					args   = null
				}
			`,
			wantErr: "argument must not be null",
		},
		{
			name: "scalar series",
			scenario: `
				delegate "int" "events" {}
				step "subscribe" "events" {
					action = "probe"
					series = 5
				}
			`,
			wantErr: "series must be a list",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			files := map[string]string{
				"modules/probe/manifest.hcl": probeManifest,
				"scenario/main.hcl":          tc.scenario,
			}
			var calls []string

			// --- Act ---
			result := testutil.RunIntegrationTest(t, files, &intProbeModule{calls: &calls})

			// --- Assert ---
			require.Error(t, result.Err)
			assert.Contains(t, result.Err.Error(), tc.wantErr)
			assert.Empty(t, calls, "no handler should run when conversion fails")
		})
	}
}

// TestTypeSystem_NumericStringConvertsToInt validates the lenient conversion
// path: a string holding a whole number is accepted for an int delegate.
func TestTypeSystem_NumericStringConvertsToInt(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		delegate "int" "events" {}
		step "subscribe" "events" {
			action = "probe"
			args   = "42"
		}
		step "invoke" "events" {
			mode = "deferred"
		}
	`
	files := map[string]string{
		"modules/probe/manifest.hcl": probeManifest,
		"scenario/main.hcl":          scenarioHCL,
	}
	var calls []string

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &intProbeModule{calls: &calls})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, []string{"probe(42)"}, calls)
}
