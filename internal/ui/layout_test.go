package ui

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karnaugh/pkg/kmap"
)

func groupFor(t *testing.T, n int, ones []int, term string) (kmap.Layout, kmap.Implicant) {
	t.Helper()
	l, err := kmap.NewLayout(n)
	require.NoError(t, err)
	for _, p := range kmap.FindPrimeImplicants(l, ones, nil) {
		if p.Term == term {
			return l, p
		}
	}
	t.Fatalf("no prime %q for %v", term, ones)
	return l, kmap.Implicant{}
}

func TestGroupEdgesSingleBlock(t *testing.T) {
	// A'B' is the whole top row of a 4-variable map.
	l, p := groupFor(t, 4, []int{0, 1, 2, 3}, "A'B'")
	edges := groupEdges(l, p)

	count := map[side]int{}
	for _, e := range edges {
		assert.Equal(t, 0, e.Row)
		count[e.Side]++
	}
	want := map[side]int{sideTop: 4, sideBottom: 4, sideLeft: 1, sideRight: 1}
	if diff := cmp.Diff(want, count); diff != "" {
		t.Fatalf("edge counts (-want +got):\n%s", diff)
	}
}

func TestGroupEdgesWrappedCorners(t *testing.T) {
	// B'D' occupies the four corners: four separate one-cell blocks.
	l, p := groupFor(t, 4, []int{0, 2, 8, 10}, "B'D'")
	assert.Len(t, groupEdges(l, p), 16)
}

func TestWrapExpression(t *testing.T) {
	cases := []struct {
		name  string
		expr  string
		width int
		want  []string
	}{
		{name: "empty", expr: "", width: 10, want: nil},
		{name: "fits", expr: "A'B + AB'", width: 20, want: []string{"A'B + AB'"}},
		{name: "split", expr: "A'B + AB' + CD", width: 12, want: []string{"A'B + AB' +", "CD"}},
		{name: "long term", expr: "A'B'C'D'E'F' + A", width: 4, want: []string{"A'B'C'D'E'F' +", "A"}},
		{name: "no limit", expr: "A + B + C", width: 0, want: []string{"A + B + C"}},
	}
	for _, tc := range cases {
		if diff := cmp.Diff(tc.want, wrapExpression(tc.expr, tc.width)); diff != "" {
			t.Errorf("%s: (-want +got):\n%s", tc.name, diff)
		}
	}
}
