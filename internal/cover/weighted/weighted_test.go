package weighted

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karnaugh/pkg/core"
	"karnaugh/pkg/kmap"
)

func TestRegistered(t *testing.T) {
	assert.Contains(t, kmap.CovererNames(), Name)
}

func TestScenarios(t *testing.T) {
	for _, tt := range []struct {
		Name string
		Vars int
		Ones []int
		DCs  []int
		Want string
	}{
		{Name: "xor", Vars: 2, Ones: []int{1, 2}, Want: "A'B + AB'"},
		{Name: "dont cares", Vars: 3, Ones: []int{0, 2}, DCs: []int{1, 3}, Want: "A'"},
		{Name: "corners and centre", Vars: 4, Ones: []int{0, 2, 5, 7, 8, 10, 13, 15}, Want: "B'D' + BD"},
		{Name: "full", Vars: 6, Ones: []int{0}, DCs: seq(64), Want: "1"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			l, err := kmap.NewLayout(tt.Vars)
			require.NoError(t, err)
			res, err := kmap.Simplify(l, tt.Ones, tt.DCs, New())
			require.NoError(t, err)
			assert.Equal(t, tt.Want, res.Expression)
		})
	}
}

func TestCostNeverAboveGreedy(t *testing.T) {
	for n := kmap.MinVars; n <= 5; n++ {
		for seed := int64(0); seed < 8; seed++ {
			ones, dcs := core.NewRNG(seed*13+int64(n)).Table(n, 0.5, 0.1)
			l, err := kmap.NewLayout(n)
			require.NoError(t, err)

			greedy, err := kmap.Simplify(l, ones, dcs, kmap.Greedy())
			require.NoError(t, err)
			best, err := kmap.Simplify(l, ones, dcs, New())
			require.NoError(t, err)
			assert.LessOrEqual(t, Cost(l, best.Cover), Cost(l, greedy.Cover), "n=%d seed=%d", n, seed)
			for _, m := range ones {
				found := false
				for _, p := range best.Cover {
					found = found || p.Covers(m)
				}
				assert.True(t, found, "n=%d seed=%d minterm %d uncovered", n, seed, m)
			}
		}
	}
}

func TestCost(t *testing.T) {
	l, _ := kmap.NewLayout(4)
	res, err := kmap.Simplify(l, []int{0, 1, 2, 3}, nil, New())
	require.NoError(t, err)
	// One term of two literals on a 4-variable map.
	assert.Equal(t, 7, Cost(l, res.Cover))
}

func TestUncoverableMinterm(t *testing.T) {
	l, _ := kmap.NewLayout(2)
	primes := kmap.FindPrimeImplicants(l, []int{1}, nil)
	_, err := New().Cover(l, primes, []int{1, 2})
	assert.Equal(t, kmap.ErrIncompleteCover, errors.Cause(err))
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
