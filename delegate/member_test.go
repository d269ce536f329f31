package delegate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter is a minimal receiver type for method subscription tests.
type counter struct {
	name string
	log  *[]string
}

func (c *counter) Record(v int) {
	*c.log = append(*c.log, c.name+":record")
	_ = v
}

func (c *counter) RecordValue(v int) int {
	*c.log = append(*c.log, c.name)
	return v
}

func TestMemberInvokeAll_UsesCallerReceiver(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var log []string
	alpha := &counter{name: "alpha", log: &log}
	beta := &counter{name: "beta", log: &log}

	d := NewMember[*counter, int]()
	d.Subscribe(alpha, (*counter).Record)
	d.Subscribe(alpha, (*counter).Record)

	// --- Act ---
	// The captured receivers are ignored; every method runs against beta.
	d.InvokeAll(beta, 1)

	// --- Assert ---
	require.Equal(t, []string{"beta:record", "beta:record"}, log)
}

func TestMemberInvokeDeferred_UsesCapturedReceivers(t *testing.T) {
	t.Parallel()

	var log []string
	alpha := &counter{name: "alpha", log: &log}
	beta := &counter{name: "beta", log: &log}

	d := NewMemberValue[*counter, int, int]()
	d.SubscribeSeries(alpha, (*counter).RecordValue, 1, 2)
	d.SubscribeWith(beta, 10, (*counter).RecordValue)

	sum, err := d.InvokeDeferred()

	require.NoError(t, err)
	assert.Equal(t, 13, sum)
	assert.Equal(t, []string{"alpha", "alpha", "beta"}, log,
		"each entry replays against the receiver captured at subscribe time")
}

func TestMemberIdentity_IncludesReceiver(t *testing.T) {
	t.Parallel()

	var log []string
	alpha := &counter{name: "alpha", log: &log}
	beta := &counter{name: "beta", log: &log}

	d := NewMember[*counter, int]()
	d.Subscribe(alpha, (*counter).Record)
	d.Subscribe(beta, (*counter).Record)
	d.Subscribe(alpha, (*counter).Record)

	removed := d.Unsubscribe(alpha, (*counter).Record)

	assert.Equal(t, 2, removed, "only slots bound to the given receiver match")
	assert.Equal(t, 1, d.Len())

	d.InvokeAll(beta, 0)
	assert.Equal(t, []string{"beta:record"}, log)
}

func TestMemberEqual_DistinguishesReceivers(t *testing.T) {
	t.Parallel()

	var log []string
	alpha := &counter{name: "alpha", log: &log}
	beta := &counter{name: "beta", log: &log}

	a := NewMember[*counter, int]()
	a.Subscribe(alpha, (*counter).Record)
	b := NewMember[*counter, int]()
	b.Subscribe(beta, (*counter).Record)

	assert.Equal(t, 0, a.Compare(b), "counts match")
	assert.False(t, a.Equal(b), "same method on different receivers is a different subscriber")

	c := NewMember[*counter, int]()
	c.Subscribe(alpha, (*counter).Record)
	assert.True(t, a.Equal(c))
}

func TestMemberValueInvokeAll_SumsAgainstCallerReceiver(t *testing.T) {
	t.Parallel()

	var log []string
	alpha := &counter{name: "alpha", log: &log}
	beta := &counter{name: "beta", log: &log}

	d := NewMemberValue[*counter, int, int]()
	d.Subscribe(alpha, (*counter).RecordValue)
	d.Subscribe(alpha, (*counter).RecordValue)

	sum := d.InvokeAll(beta, 21)

	assert.Equal(t, 42, sum)
	assert.Equal(t, []string{"beta", "beta"}, log)
}

func TestMemberRemoveLast_DropsCapturedEntries(t *testing.T) {
	t.Parallel()

	var log []string
	alpha := &counter{name: "alpha", log: &log}

	d := NewMember[*counter, int]()
	d.SubscribeSeries(alpha, (*counter).Record, 1, 2, 3)

	require.Equal(t, 1, d.RemoveLast(1))
	require.Equal(t, 2, d.Len())
	require.Equal(t, 2, d.DeferredLen())

	require.NoError(t, d.InvokeDeferred())
	assert.Len(t, log, 2)
}
