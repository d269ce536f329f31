package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/delegatego/internal/testutil"
)

// TestParsing_ManifestAndScenarioShareAFile validates that action, delegate,
// and step blocks may live in the same file: the loader accepts any mix.
func TestParsing_ManifestAndScenarioShareAFile(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	combinedHCL := `
		action "identity" {
			params  = int
			returns = int
			handler = "IdentityInt"
		}
		delegate "int" "calc" {
			returns = int
		}
		step "subscribe" "calc" {
			action = "identity"
		}
		step "invoke" "calc" {
			args   = 5
			report = "list"
		}
	`
	files := map[string]string{
		"scenario/main.hcl": combinedHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.NoOpModule{})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "[0] Function returned 5\n", result.ReportOutput)
}
