package visualizer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/delegatego/delegate"
)

func TestRenderValue_ListsEachResult(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	square := func(v int) int { return v * v }
	double := func(v int) int { return v * 2 }

	d := delegate.NewValue[int, int]()
	d.Subscribe(square, double)

	var out bytes.Buffer

	// --- Act ---
	err := RenderValue(&out, d, 4, List)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "[0] Function returned 16\n[1] Function returned 8\n", out.String(),
		"one line per subscriber, individual results, not the sum")
}

func TestRender_VoidSubscribersReportVoid(t *testing.T) {
	t.Parallel()

	var calls int
	d := delegate.New[string]()
	d.Subscribe(func(string) { calls++ }, func(string) { calls++ })

	var out bytes.Buffer
	err := Render(&out, d, "x", Default)

	require.NoError(t, err)
	assert.Equal(t, 2, calls, "rendering invokes every subscriber once")
	assert.Equal(t, "[0] Function returned (void)\n[1] Function returned (void)\n", out.String())
}

func TestRender_EmptyDelegateWritesNothing(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	require.NoError(t, Render(&out, delegate.New[int](), 0, List))
	assert.Empty(t, out.String())
}

func TestRenderValue_TableAlignsColumns(t *testing.T) {
	t.Parallel()

	identity := func(v int) int { return v }
	square := func(v int) int { return v * v }

	d := delegate.NewValue[int, int]()
	d.Subscribe(identity, square)

	var out bytes.Buffer
	require.NoError(t, RenderValue(&out, d, 12, Table))

	expected := "" +
		"INDEX  RESULT\n" +
		"0      12\n" +
		"1      144\n"
	assert.Equal(t, expected, out.String())
}

func TestRenderValue_FloatAndStringResults(t *testing.T) {
	t.Parallel()

	t.Run("floats render in their shortest form", func(t *testing.T) {
		t.Parallel()

		half := func(v float64) float64 { return v / 2 }
		d := delegate.NewValue[float64, float64]()
		d.Subscribe(half)

		var out bytes.Buffer
		require.NoError(t, RenderValue(&out, d, 5, List))
		assert.Equal(t, "[0] Function returned 2.5\n", out.String())
	})

	t.Run("strings render verbatim", func(t *testing.T) {
		t.Parallel()

		shout := func(v string) string { return v + "!" }
		d := delegate.NewValue[string, string]()
		d.Subscribe(shout)

		var out bytes.Buffer
		require.NoError(t, RenderValue(&out, d, "go", List))
		assert.Equal(t, "[0] Function returned go!\n", out.String())
	})
}

func TestFormatValue_RejectsUnsupportedKinds(t *testing.T) {
	t.Parallel()

	_, err := formatValue(3, struct{ x int }{x: 1})

	var nrErr *NotRepresentableError
	require.ErrorAs(t, err, &nrErr)
	assert.Equal(t, 3, nrErr.Index, "the error names the subscriber that produced the value")
	assert.Contains(t, err.Error(), "no text form")
}

func TestParseView(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    View
		wantErr bool
	}{
		{in: "", want: Default},
		{in: "default", want: Default},
		{in: "list", want: List},
		{in: "table", want: Table},
		{in: "grid", wantErr: true},
	}

	for _, tc := range cases {
		t.Run("input "+tc.in, func(t *testing.T) {
			t.Parallel()

			got, err := ParseView(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
