package domain

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound means the channel or playlist does not exist upstream (or in the store).
	ErrNotFound = errors.New("not found")
	// ErrUpstreamUnavailable wraps any failed catalog call.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	// ErrStoreWrite wraps any failed repository write during a pass.
	ErrStoreWrite = errors.New("store write failed")
	// ErrSyncInProgress is returned when a pass for the same target is already running.
	ErrSyncInProgress = errors.New("sync already in progress")
)

// BatchError reports every failed target of a batch individually.
type BatchError struct {
	Failures []TargetFailure
}

func (e *BatchError) Error() string {
	parts := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		parts[i] = f.Target + ": " + f.Err.Error()
	}
	return "sync failed for " + strings.Join(parts, "; ")
}

func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return errs
}
