package app

import (
	"flag"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karnaugh/pkg/kmap"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("kmap", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse(args))
	return cfg
}

func TestConfigBind(t *testing.T) {
	cfg := parse(t, "-vars", "6", "-cover", "exact", "-scale", "16", "-seed", "7", "-dc", "0")

	assert.Equal(t, 6, cfg.Vars)
	assert.Equal(t, "exact", cfg.Cover)
	assert.Equal(t, 16, cfg.Scale)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 0.0, cfg.DontCare)
	assert.Equal(t, 0.5, cfg.Density)
}

func TestConfigParams(t *testing.T) {
	got, err := kmap.FromMap(NewConfig().Params())
	require.NoError(t, err)
	assert.Equal(t, kmap.DefaultConfig(), got)
}

func TestNewMinimizer(t *testing.T) {
	z, err := parse(t, "-vars", "5").NewMinimizer()
	require.NoError(t, err)
	assert.Equal(t, 5, z.Layout().Vars)
	assert.Equal(t, kmap.GreedyName, z.Coverer().Name())
}

func TestNewMinimizerRejectsInvalidFlags(t *testing.T) {
	_, err := parse(t, "-vars", "9").NewMinimizer()
	assert.Equal(t, kmap.ErrInvalidVariableCount, errors.Cause(err))

	_, err = parse(t, "-vars", "1").NewMinimizer()
	assert.Equal(t, kmap.ErrInvalidVariableCount, errors.Cause(err))

	_, err = parse(t, "-cover", "magic").NewMinimizer()
	assert.Equal(t, kmap.ErrUnknownCoverer, errors.Cause(err))
}
