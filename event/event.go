// Package event implements synchronous DOM-style event dispatch:
// capture, at-target and bubble phases over an externally supplied
// parent relation, with cooperative cancellation.
package event

import (
	"time"

	"github.com/google/uuid"
)

type EventPhase uint

const (
	NonePhase EventPhase = iota
	CapturingPhase
	AtTargetPhase
	BubblingPhase
)

// propagationState tracks cooperative cancellation of the traversal.
type propagationState uint

const (
	propagationResume propagationState = iota
	propagationStop
	propagationStopImmediate
)

// https://dom.spec.whatwg.org/#interface-event
//
// An Event is owned by its caller and reusable: all per-dispatch state
// (phase, target, currentTarget, propagation, defaultPrevented) is
// reset on every exit from Dispatch. It holds only non-owning
// references to targets while a dispatch is in flight.
type Event struct {
	id               uuid.UUID
	eventType        string
	bubbles          bool
	cancelable       bool
	composed         bool
	detail           any
	timeStamp        time.Time
	target           Target
	currentTarget    Target
	eventPhase       EventPhase
	propagationState propagationState
	defaultPrevented bool
}

// Option configures an Event at construction. The resulting fields are
// immutable for the lifetime of the event.
type Option func(*Event)

func WithBubbles() Option {
	return func(e *Event) { e.bubbles = true }
}

func WithCancelable() Option {
	return func(e *Event) { e.cancelable = true }
}

func WithComposed() Option {
	return func(e *Event) { e.composed = true }
}

// WithDetail attaches an opaque caller payload. The engine never
// inspects it.
func WithDetail(detail any) Option {
	return func(e *Event) { e.detail = detail }
}

func New(eventType string, opts ...Option) *Event {
	e := &Event{
		id:        uuid.New(),
		eventType: eventType,
		timeStamp: time.Now(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Event) ID() uuid.UUID        { return e.id }
func (e *Event) Type() string         { return e.eventType }
func (e *Event) Bubbles() bool        { return e.bubbles }
func (e *Event) Cancelable() bool     { return e.cancelable }
func (e *Event) Composed() bool       { return e.composed }
func (e *Event) Detail() any          { return e.detail }
func (e *Event) TimeStamp() time.Time { return e.timeStamp }
func (e *Event) Phase() EventPhase    { return e.eventPhase }
func (e *Event) Target() Target       { return e.target }

// CurrentTarget is the node whose listeners are being invoked right
// now; nil outside dispatch and while global hook listeners run.
func (e *Event) CurrentTarget() Target { return e.currentTarget }

func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// IsTrusted is always false: every event here is synthesized by
// program code, never by a user agent.
// https://dom.spec.whatwg.org/#dom-event-istrusted
func (e *Event) IsTrusted() bool { return false }

// https://dom.spec.whatwg.org/#dom-event-preventdefault
func (e *Event) PreventDefault() {
	if e.cancelable {
		e.defaultPrevented = true
	}
}

// https://dom.spec.whatwg.org/#dom-event-stoppropagation
//
// Listeners already queued for the current target's pass still run;
// no further targets are visited.
func (e *Event) StopPropagation() {
	if e.propagationState != propagationStopImmediate {
		e.propagationState = propagationStop
	}
}

// https://dom.spec.whatwg.org/#dom-event-stopimmediatepropagation
func (e *Event) StopImmediatePropagation() {
	e.propagationState = propagationStopImmediate
}

// ComposedPath returns the capture-order path the event traverses,
// recomputed from the current target. Empty outside dispatch.
// https://dom.spec.whatwg.org/#dom-event-composedpath
func (e *Event) ComposedPath() []Target {
	if e.target == nil {
		return []Target{}
	}
	return buildPath(e.target, directionCapture)
}

// InitEvent is the legacy re-initialization entry point. It is not
// supported: construct a new Event instead.
// https://dom.spec.whatwg.org/#dom-event-initevent
func (e *Event) InitEvent(eventType string, options ...bool) error {
	return ErrInitEventUnsupported
}

// resetForRedispatch clears all transient dispatch state so the same
// instance can be dispatched again later. Every exit path of Dispatch
// funnels through this, including listener panics.
func (e *Event) resetForRedispatch() {
	e.target = nil
	e.currentTarget = nil
	e.eventPhase = NonePhase
	e.propagationState = propagationResume
}
