package quest

import (
	"errors"
	"fmt"
	"strings"
)

// SelectError represents an error detected during item selection.
//
// Selection errors include:
//   - Unknown pool: requested pool name is not registered
//   - Empty candidates: tag filter matches zero items in the pool
//
// Pool exhaustion (every candidate already used) is NOT an error; Pick
// degrades to a repeated item and reports it via Selection.Repeat.
type SelectError struct {
	// Code identifies the error category.
	Code SelectErrorCode

	// Message is a human-readable description.
	Message string

	// Pool is the pool name the caller requested.
	Pool string

	// Tags holds the tag filter in effect, if any.
	Tags []string
}

// SelectErrorCode categorizes selection errors.
type SelectErrorCode string

const (
	// ErrCodeUnknownPool indicates the requested pool is not registered.
	ErrCodeUnknownPool SelectErrorCode = "UNKNOWN_POOL"

	// ErrCodeEmptyCandidates indicates the tag filter matched no items at all.
	ErrCodeEmptyCandidates SelectErrorCode = "EMPTY_CANDIDATES"
)

// Error implements the error interface.
func (e *SelectError) Error() string {
	if len(e.Tags) > 0 {
		return fmt.Sprintf("%s: %s (pool=%s, tags=%s)", e.Code, e.Message, e.Pool, strings.Join(e.Tags, ","))
	}
	if e.Pool != "" {
		return fmt.Sprintf("%s: %s (pool=%s)", e.Code, e.Message, e.Pool)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsUnknownPool returns true if the error is an unknown-pool error.
// Uses errors.As to handle wrapped errors.
func IsUnknownPool(err error) bool {
	var se *SelectError
	if errors.As(err, &se) {
		return se.Code == ErrCodeUnknownPool
	}
	return false
}

// IsEmptyCandidates returns true if the error is an empty-candidates error.
// Uses errors.As to handle wrapped errors.
func IsEmptyCandidates(err error) bool {
	var se *SelectError
	if errors.As(err, &se) {
		return se.Code == ErrCodeEmptyCandidates
	}
	return false
}

// NewUnknownPoolError creates a SelectError for an unregistered pool name.
// The message enumerates the valid pool names so callers can correct
// the misconfiguration without consulting the docs.
func NewUnknownPoolError(pool string, valid []string) *SelectError {
	return &SelectError{
		Code:    ErrCodeUnknownPool,
		Message: fmt.Sprintf("no pool named %q (valid pools: %s)", pool, strings.Join(valid, ", ")),
		Pool:    pool,
	}
}

// NewEmptyCandidatesError creates a SelectError for a tag filter that
// matched zero items in the pool. This is distinct from "all used",
// which degrades to a repeat instead of erroring.
func NewEmptyCandidatesError(pool string, tags []string) *SelectError {
	return &SelectError{
		Code:    ErrCodeEmptyCandidates,
		Message: "tag filter matches no items in pool",
		Pool:    pool,
		Tags:    tags,
	}
}
