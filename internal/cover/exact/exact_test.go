package exact

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karnaugh/pkg/core"
	"karnaugh/pkg/kmap"
)

func TestRegistered(t *testing.T) {
	c, err := kmap.LookupCoverer(Name)
	require.NoError(t, err)
	assert.Equal(t, Name, c.Name())
}

func TestCyclicCoverIsMinimum(t *testing.T) {
	l, err := kmap.NewLayout(3)
	require.NoError(t, err)

	res, err := kmap.Simplify(l, []int{0, 1, 2, 5, 6, 7}, nil, New())
	require.NoError(t, err)
	assert.Len(t, res.Cover, 3, res.Expression)
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
		{Name: "half map", Vars: 4, Ones: []int{0, 1, 2, 3, 8, 9, 10, 11}, Want: "B'"},
		{Name: "full", Vars: 2, Ones: []int{0, 1, 2, 3}, Want: "1"},
		{Name: "empty", Vars: 5, Want: "0"},
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

func TestNeverLargerThanGreedy(t *testing.T) {
	for n := kmap.MinVars; n <= kmap.MaxVars; n++ {
		for seed := int64(0); seed < 10; seed++ {
			ones, dcs := core.NewRNG(seed*7+int64(n)).Table(n, 0.5, 0.1)
			l, err := kmap.NewLayout(n)
			require.NoError(t, err)

			greedy, err := kmap.Simplify(l, ones, dcs, kmap.Greedy())
			require.NoError(t, err)
			best, err := kmap.Simplify(l, ones, dcs, New())
			require.NoError(t, err)
			assert.LessOrEqual(t, len(best.Cover), len(greedy.Cover), "n=%d seed=%d", n, seed)
			assert.Empty(t, kmap.Uncovered(best.PrimeImplicants, indices(best), ones))
		}
	}
}

func TestEssentialsLeadTheCover(t *testing.T) {
	l, _ := kmap.NewLayout(4)
	ones := []int{0, 2, 8, 10, 5, 7, 13, 15}
	primes := kmap.FindPrimeImplicants(l, ones, nil)
	idx, err := New().Cover(l, primes, []int{0, 2, 5, 7, 8, 10, 13, 15})
	require.NoError(t, err)
	assert.Equal(t, kmap.Essentials(primes, []int{0, 2, 5, 7, 8, 10, 13, 15}), idx)
}

func TestUncoverableMinterm(t *testing.T) {
	l, _ := kmap.NewLayout(2)
	primes := kmap.FindPrimeImplicants(l, []int{1}, nil)
	_, err := New().Cover(l, primes, []int{1, 2})
	assert.Equal(t, kmap.ErrIncompleteCover, errors.Cause(err))
}

func indices(res kmap.Result) []int {
	var out []int
	for _, c := range res.Cover {
		for i, p := range res.PrimeImplicants {
			if p.Key() == c.Key() {
				out = append(out, i)
			}
		}
	}
	return out
}
