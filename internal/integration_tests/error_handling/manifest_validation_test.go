package integration_tests

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/delegatego/internal/testutil"
)

// TestStartup_ManifestValidation_Fails walks the manifest-level validation
// rules: every case must abort startup with a named reason.
func TestStartup_ManifestValidation_Fails(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name: "void params rejected",
			manifest: `
				action "bad" {
					params  = void
					handler = "NoOpInt"
				}
			`,
			wantErr: "params cannot be 'void'",
		},
		{
			name: "returns must match params",
			manifest: `
				action "bad" {
					params  = int
					returns = string
					handler = "NoOpInt"
				}
			`,
			wantErr: "returns must be 'void' or match params",
		},
		{
			name: "empty handler rejected",
			manifest: `
				action "bad" {
					params  = int
					handler = ""
				}
			`,
			wantErr: "handler must not be empty",
		},
		{
			name: "unknown type keyword rejected",
			manifest: `
				action "bad" {
					params  = number
					handler = "NoOpInt"
				}
			`,
			wantErr: "unknown type keyword",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			files := map[string]string{
				"modules/bad/manifest.hcl": tc.manifest,
			}

			// --- Act ---
			result := testutil.RunIntegrationTest(t, files, &testutil.NoOpModule{})

			// --- Assert ---
			require.Error(t, result.Err)
			require.Contains(t, result.Err.Error(), "application startup panicked")
			require.Contains(t, result.Err.Error(), tc.wantErr)
		})
	}
}

// TestStartup_DuplicateDefinitions_Fail validates that the loader rejects a
// configuration defining the same action or delegate twice.
func TestStartup_DuplicateDefinitions_Fail(t *testing.T) {
	t.Parallel()

	t.Run("duplicate action", func(t *testing.T) {
		t.Parallel()

		// --- Arrange ---
		manifest := `
			action "noop" {
				params  = int
				handler = "NoOpInt"
			}
		`
		files := map[string]string{
			"modules/first/manifest.hcl":  manifest,
			"modules/second/manifest.hcl": manifest,
		}

		// --- Act ---
		result := testutil.RunIntegrationTest(t, files, &testutil.NoOpModule{})

		// --- Assert ---
		require.Error(t, result.Err)
		require.Contains(t, result.Err.Error(), `action "noop" is defined more than once`)
	})

	t.Run("duplicate delegate", func(t *testing.T) {
		t.Parallel()

		// --- Arrange ---
		scenario := `
			delegate "int" "events" {}
			delegate "int" "events" {}
		`
		files := map[string]string{
			"scenario/main.hcl": scenario,
		}

		// --- Act ---
		result := testutil.RunIntegrationTest(t, files, &testutil.NoOpModule{})

		// --- Assert ---
		require.Error(t, result.Err)
		require.Contains(t, result.Err.Error(), `delegate "events" is declared more than once`)
	})
}
