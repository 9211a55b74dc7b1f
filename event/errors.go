package event

import "github.com/pkg/errors"

// Sentinel errors for misuse of the engine. Both are detected before
// any state mutation, so a failed call leaves the event untouched.
var (
	// ErrAlreadyDispatching is returned when Dispatch is called on an
	// event that is already mid-dispatch.
	ErrAlreadyDispatching = errors.New("event is already being dispatched")

	// ErrInitEventUnsupported is returned by the legacy InitEvent
	// operation; construct a new Event instead.
	ErrInitEventUnsupported = errors.New("initEvent is not supported; construct a new Event")
)
