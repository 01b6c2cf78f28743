package kmap

import (
	"strconv"

	"github.com/pkg/errors"
)

// Config controls how a Minimizer is set up.
type Config struct {
	Vars  int
	Cover string
}

// DefaultConfig returns the standard configuration: a 4-variable map
// minimized greedily.
func DefaultConfig() Config {
	return Config{Vars: 4, Cover: GreedyName}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Missing keys keep their defaults. A vars value that does not parse or lies
// outside MinVars..MaxVars is an error; it is never replaced by the default.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["vars"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(ErrInvalidVariableCount, "vars %q is not a number", v)
		}
		if parsed < MinVars || parsed > MaxVars {
			return c, errors.Wrapf(ErrInvalidVariableCount, "got %d, want %d..%d", parsed, MinVars, MaxVars)
		}
		c.Vars = parsed
	}
	if v, ok := cfg["cover"]; ok && v != "" {
		c.Cover = v
	}
	return c, nil
}
