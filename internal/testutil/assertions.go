package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertSubscribed checks the log output within a HarnessResult to confirm
// that an action was attached to a delegate. It abstracts the underlying log
// format, making tests more resilient to internal refactoring.
func AssertSubscribed(t *testing.T, result *HarnessResult, delegate, action string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, "Action subscribed.") &&
			strings.Contains(result.LogOutput, "delegate="+delegate) &&
			strings.Contains(result.LogOutput, "action="+action),
		"expected log output for subscribing action '%s' to delegate '%s' was not found in logs", action, delegate,
	)
}

// AssertInvoked checks the log output within a HarnessResult to confirm that
// a delegate's invocation finished.
func AssertInvoked(t *testing.T, result *HarnessResult, delegate string) {
	t.Helper()

	require.True(t,
		strings.Contains(result.LogOutput, "Invocation") &&
			strings.Contains(result.LogOutput, "delegate="+delegate),
		"expected log output for invoking delegate '%s' was not found in logs", delegate,
	)
}
