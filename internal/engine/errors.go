package engine

import "errors"

var (
	// ErrInputUnreadable indicates an input file could not be read.
	ErrInputUnreadable = errors.New("input unreadable")

	// ErrPreflightFailed indicates an input failed structural validation.
	ErrPreflightFailed = errors.New("preflight validation failed")

	// ErrArtifactCheckFailed indicates a generated artifact failed its
	// post-generation checks.
	ErrArtifactCheckFailed = errors.New("artifact check failed")
)
