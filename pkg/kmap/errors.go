package kmap

import "github.com/pkg/errors"

var (
	// ErrInvalidVariableCount is returned when a map is configured outside
	// MinVars..MaxVars.
	ErrInvalidVariableCount = errors.New("variable count out of range")
	// ErrIncompleteCover signals that a coverer ran out of implicants while
	// true minterms were still uncovered. It always indicates a bug in the
	// implicant finder or the coverer.
	ErrIncompleteCover = errors.New("prime implicants do not cover all minterms")
	// ErrUnknownCoverer is returned when no coverer is registered under a name.
	ErrUnknownCoverer = errors.New("unknown coverer")
	// ErrInvalidState is returned when a serialized State does not describe a
	// well-formed map.
	ErrInvalidState = errors.New("invalid map state")
)
