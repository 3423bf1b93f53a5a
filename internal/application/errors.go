package application

import "errors"

// Error categories surfaced to driving adapters. Causes are wrapped with %w so
// callers match with errors.Is.
var (
	// ErrMissingInput means a required user input was blank or unknown.
	ErrMissingInput = errors.New("missing input")
	// ErrAuth means no usable credential was available, or the provider refused it.
	ErrAuth = errors.New("authentication required")
	// ErrProvider means the provider call failed in transport or on the remote side.
	ErrProvider = errors.New("provider error")
	// ErrInvalidFormat means the provider answered with an unusable payload.
	ErrInvalidFormat = errors.New("invalid response format")
	// ErrSuperseded means a newer request of the same kind replaced this one.
	ErrSuperseded = errors.New("request superseded")
)
