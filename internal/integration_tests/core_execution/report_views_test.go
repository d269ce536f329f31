package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/delegatego/internal/registry"
	"github.com/vk/delegatego/internal/testutil"
)

type squareModule struct{}

func (m *squareModule) Register(r *registry.Registry) {
	r.RegisterAction("OnSquare", &registry.RegisteredAction{Fn: func(n int) int {
		return n * n
	}})
}

const reportManifest = `
	action "identity" {
		params  = int
		returns = int
		handler = "IdentityInt"
	}
	action "square" {
		params  = int
		returns = int
		handler = "OnSquare"
	}
`

// TestCoreExecution_ListReportShowsEachResult validates the line-per-result
// report view.
func TestCoreExecution_ListReportShowsEachResult(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		delegate "int" "calc" {
			returns = int
		}
		step "subscribe" "calc" {
			action = "identity"
		}
		step "subscribe" "calc" {
			action = "square"
		}
		step "invoke" "calc" {
			args   = 4
			report = "list"
		}
	`
	files := map[string]string{
		"modules/calc/manifest.hcl": reportManifest,
		"scenario/main.hcl":         scenarioHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.NoOpModule{}, &squareModule{})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "[0] Function returned 4\n[1] Function returned 16\n", result.ReportOutput)
}

// TestCoreExecution_TableReportAlignsColumns validates the table report view.
func TestCoreExecution_TableReportAlignsColumns(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	scenarioHCL := `
		delegate "int" "calc" {
			returns = int
		}
		step "subscribe" "calc" {
			action = "square"
		}
		step "subscribe" "calc" {
			action = "identity"
		}
		step "invoke" "calc" {
			args   = 12
			report = "table"
		}
	`
	files := map[string]string{
		"modules/calc/manifest.hcl": reportManifest,
		"scenario/main.hcl":         scenarioHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.NoOpModule{}, &squareModule{})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "INDEX  RESULT\n0      144\n1      12\n", result.ReportOutput)
}

// TestCoreExecution_VoidReportMarksEachCall validates that reports for
// non-returning delegates still list every subscriber.
func TestCoreExecution_VoidReportMarksEachCall(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifestHCL := `
		action "noop" {
			params  = int
			handler = "NoOpInt"
		}
	`
	scenarioHCL := `
		delegate "int" "events" {}
		step "subscribe" "events" {
			action = "noop"
		}
		step "invoke" "events" {
			args   = 9
			report = "list"
		}
	`
	files := map[string]string{
		"modules/noop/manifest.hcl": manifestHCL,
		"scenario/main.hcl":         scenarioHCL,
	}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, &testutil.NoOpModule{})

	// --- Assert ---
	require.NoError(t, result.Err)
	assert.Equal(t, "[0] Function returned (void)\n", result.ReportOutput)
}
