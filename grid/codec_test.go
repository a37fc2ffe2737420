package grid_test

import (
	"testing"

	"github.com/katalvlaran/vec2d/grid"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestYAMLEncode checks the flow-style document layout.
func TestYAMLEncode(t *testing.T) {
	g := grid.FromFlat(3, []int{1, 2, 3, 4, 5, 6})
	out, err := yaml.Marshal(g)
	require.NoError(t, err)
	require.Equal(t, "width: 3\nrows: [[1, 2, 3], [4, 5, 6]]\n", string(out))
}

// TestYAMLRoundTrip decodes what was encoded, including zero-row grids.
func TestYAMLRoundTrip(t *testing.T) {
	inputs := []*grid.Grid[int]{
		grid.New[int](),
		grid.NewDefault[int](0, 4),
		grid.FromFlat(1, []int{7, 8, 9}),
		grid.FromFunc(3, 4, func(r, c int) int { return 10*r + c }),
	}
	for _, in := range inputs {
		out, err := yaml.Marshal(in)
		require.NoError(t, err)

		got := grid.New[int]()
		require.NoError(t, yaml.Unmarshal(out, got))
		require.True(t, grid.Equal(in, got), "round trip of\n%s", out)
	}
}

// TestYAMLDecodeInfersWidth accepts documents without an explicit width.
func TestYAMLDecodeInfersWidth(t *testing.T) {
	src := "rows:\n  - [a, b]\n  - [c, d]\n  - [e, f]\n"
	g := grid.New[string]()
	require.NoError(t, yaml.Unmarshal([]byte(src), g))
	requireRows(t, g, [][]string{{"a", "b"}, {"c", "d"}, {"e", "f"}})
}

// TestYAMLDecodeErrors verifies malformed documents return sentinels and
// leave the target untouched.
func TestYAMLDecodeErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		{"Ragged", "rows: [[1, 2], [3]]\n", grid.ErrNonRectangular},
		{"WidthMismatch", "width: 3\nrows: [[1, 2], [3, 4]]\n", grid.ErrBadWidth},
		{"NegativeWidth", "width: -1\nrows: []\n", grid.ErrBadWidth},
		{"EmptyRow", "rows: [[], []]\n", grid.ErrBadWidth},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := grid.FromFlat(1, []int{42})
			err := yaml.Unmarshal([]byte(tc.src), g)
			require.ErrorIs(t, err, tc.err)
			require.Equal(t, []int{42}, g.Data())
		})
	}
}

// TestYAMLDecodeTypeError surfaces yaml's own decoding errors.
func TestYAMLDecodeTypeError(t *testing.T) {
	g := grid.New[int]()
	err := yaml.Unmarshal([]byte("rows: [[x]]\n"), g)
	require.Error(t, err)
	require.True(t, g.IsEmpty())
}
