package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	// ErrDependencyUnavailable marks a required collaborator that is not
	// wired or not reachable.
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	// ErrUpstreamRead marks failures reading the outcome or game day sources.
	// A rebuild that fails with it is safe to retry: recomputation is
	// idempotent per scope.
	ErrUpstreamRead = errors.New("upstream read failed")
)
