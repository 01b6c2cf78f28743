package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ghodss/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSimplify(t *testing.T) {
	for _, tt := range []struct {
		Name string
		Args []string
		Want string
	}{
		{Name: "half map", Args: []string{"simplify", "-n", "4", "-m", "0,1,2,3,8,9,10,11"}, Want: "B'\n"},
		{Name: "xor", Args: []string{"simplify", "-n", "2", "-m", "1,2"}, Want: "A'B + AB'\n"},
		{Name: "dont cares", Args: []string{"simplify", "-n", "3", "-m", "0,2", "-d", "1,3", "--verify"}, Want: "A'\n"},
		{Name: "exact", Args: []string{"simplify", "-n", "3", "-m", "0,1,2,5,6,7", "--cover", "exact", "--verify"}},
		{Name: "weighted", Args: []string{"simplify", "-n", "4", "-m", "0,2,8,10,5,7,13,15", "--cover", "weighted"}, Want: "B'D' + BD\n"},
		{Name: "empty", Args: []string{"simplify", "-n", "5"}, Want: "0\n"},
		{Name: "out of range ignored", Args: []string{"simplify", "-n", "2", "-m", "0,1,2,3,9"}, Want: "1\n"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			out, err := execute(t, tt.Args...)
			require.NoError(t, err)
			if tt.Want != "" {
				assert.Equal(t, tt.Want, out)
			} else {
				assert.Equal(t, 3, strings.Count(out, "+")+1, out)
			}
		})
	}
}

func TestSimplifyImplicants(t *testing.T) {
	out, err := execute(t, "simplify", "-n", "2", "-m", "1,2", "--implicants")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "* A'B"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "* AB'"), lines[2])
}

func TestSimplifyRejectsBadInput(t *testing.T) {
	_, err := execute(t, "simplify", "-n", "7", "-m", "1")
	assert.Error(t, err)
	_, err = execute(t, "simplify", "-n", "3", "--cover", "magic")
	assert.Error(t, err)
	_, err = execute(t, "simplify", "-n", "3", "-o", "xml")
	assert.Error(t, err)
	_, err = execute(t, "simplify", "-n", "3", "-m", "x")
	assert.Error(t, err)
}

func TestSimplifyJSON(t *testing.T) {
	out, err := execute(t, "simplify", "-n", "3", "-m", "0,2", "-d", "1,3", "-o", "json", "--verify")
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "A'", doc["expression"])
	assert.Equal(t, "greedy", doc["coverer"])
	assert.Equal(t, true, doc["verified"])
	assert.Len(t, doc["cover"], 1)
}

func TestSimplifyYAML(t *testing.T) {
	out, err := execute(t, "simplify", "-n", "2", "-m", "1,2", "-o", "yaml")
	require.NoError(t, err)

	var doc simplifyReport
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "A'B + AB'", doc.Expression)
	assert.Equal(t, []int{1, 2}, doc.Minterms)
	require.Len(t, doc.PrimeImplicants, 2)
	assert.True(t, doc.PrimeImplicants[0].Essential)
}

func TestCanonical(t *testing.T) {
	out, err := execute(t, "canonical", "-n", "2", "-m", "2,1")
	require.NoError(t, err)
	assert.Equal(t, "A'B + AB'\n", out)

	out, err = execute(t, "canonical", "-n", "3")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestGray(t *testing.T) {
	out, err := execute(t, "gray", "--bits", "2")
	require.NoError(t, err)
	assert.Equal(t, "0\t00\n1\t01\n2\t11\n3\t10\n", out)

	out, err = execute(t, "gray", "-b", "3", "-o", "json")
	require.NoError(t, err)
	var doc grayReport
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, []string{"000", "001", "011", "010", "110", "111", "101", "100"}, doc.Codes)

	_, err = execute(t, "gray", "--bits", "4")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, err := execute(t, "sweep", "-n", "4", "--trials", "24", "--workers", "3", "--seed", "5", "-o", "json")
	require.NoError(t, err)

	var report sweepReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 24, report.Trials)
	assert.LessOrEqual(t, report.MeanExactTerms, report.MeanGreedyTerms)
	assert.LessOrEqual(t, len(report.Worst), 5)
	for _, w := range report.Worst {
		assert.Greater(t, w.GreedyTerms, w.ExactTerms)
	}

	again, err := execute(t, "sweep", "-n", "4", "--trials", "24", "--workers", "1", "--seed", "5", "-o", "json")
	require.NoError(t, err)
	assert.JSONEq(t, out, again, "worker count must not change the report")
}

func TestSweepText(t *testing.T) {
	out, err := execute(t, "sweep", "-n", "3", "--trials", "4", "--top", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "4 trials over 3 variables (seed 1)")
	assert.Contains(t, out, "mean terms: greedy")
}
