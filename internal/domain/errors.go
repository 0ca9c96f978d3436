package domain

import "errors"

// Sentinel errors surfaced at the engine boundary. Callers match with
// errors.Is; everything else in this package is a total function over its
// valid domain and cannot fail.
var (
	// ErrInvalidIndicator marks malformed input data, e.g. a negative
	// population density.
	ErrInvalidIndicator = errors.New("invalid district indicator")

	// ErrInvalidArgument marks an out-of-range caller argument, e.g. a batch
	// size below one.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownSolutionType marks a caller-specified solution outside the
	// fixed five-type catalog.
	ErrUnknownSolutionType = errors.New("unknown solution type")

	// ErrProviderUnavailable marks an indicator-source failure. Providers
	// configured with fallback translate this into synthetic data instead of
	// propagating it.
	ErrProviderUnavailable = errors.New("indicator provider unavailable")
)
