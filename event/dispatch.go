package event

import "github.com/pkg/errors"

// DispatchOption configures a single Dispatch call.
type DispatchOption func(*dispatchConfig)

type dispatchConfig struct {
	preHook  HookProvider
	postHook HookProvider
}

// WithPreHook installs a provider of phase-exempt listeners invoked
// before the capture traversal, with a nil current target.
func WithPreHook(p HookProvider) DispatchOption {
	return func(c *dispatchConfig) { c.preHook = p }
}

// WithPostHook installs a provider of phase-exempt listeners invoked
// after the bubble traversal completes. It is skipped when propagation
// was stopped.
func WithPostHook(p HookProvider) DispatchOption {
	return func(c *dispatchConfig) { c.postHook = p }
}

// Dispatch delivers the event at target, visiting ancestors in capture
// order (root to target, capture-flagged listeners), then in bubble
// order (target to root, non-capture listeners). The target itself
// receives both passes at AtTargetPhase. data is handed to every
// callback unchanged.
//
// The returned bool reports whether the default action should proceed:
// false iff the event is cancelable and some listener called
// PreventDefault. ErrAlreadyDispatching is returned, with no state
// touched, if this event is already mid-dispatch. A panicking listener
// aborts the dispatch; transient state is still reset on the way out.
//
// https://dom.spec.whatwg.org/#concept-event-dispatch
func (e *Event) Dispatch(target Target, data any, opts ...DispatchOption) (bool, error) {
	if e.eventPhase != NonePhase {
		return false, errors.Wrapf(ErrAlreadyDispatching, "type %q", e.eventType)
	}

	var cfg dispatchConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	e.eventPhase = CapturingPhase
	e.target = target
	e.defaultPrevented = false
	e.propagationState = propagationResume

	// Single exit-cleanup routine: normal completion, stopped
	// propagation, the non-bubbling short-circuit and listener panics
	// all funnel through here. Safe to run twice.
	defer e.resetForRedispatch()

	if cfg.preHook != nil {
		e.invokeHookListeners(cfg.preHook, directionCapture, data)
	}

	for _, node := range e.eventPath(target, directionCapture) {
		e.currentTarget = node
		if node == target {
			e.eventPhase = AtTargetPhase
		} else {
			e.eventPhase = CapturingPhase
		}
		e.invokeTargetListeners(node, directionCapture, data)
		if e.propagationState != propagationResume {
			return e.result(), nil
		}
	}

	for i, node := range e.eventPath(target, directionBubble) {
		e.currentTarget = node
		if node == target {
			e.eventPhase = AtTargetPhase
		} else {
			e.eventPhase = BubblingPhase
		}
		e.invokeTargetListeners(node, directionBubble, data)
		if e.propagationState != propagationResume {
			return e.result(), nil
		}

		// A non-bubbling event still gets both passes at the target
		// (the first node of this loop) but never reaches ancestors.
		if !e.bubbles && i == 0 {
			e.resetForRedispatch()
			break
		}

		// A listener on the target observed AtTargetPhase; the loop's
		// own bookkeeping must not leak that into the next iteration.
		e.eventPhase = BubblingPhase
	}

	if cfg.postHook != nil {
		e.invokeHookListeners(cfg.postHook, directionBubble, data)
	}

	return e.result(), nil
}

func (e *Event) result() bool {
	return !(e.cancelable && e.defaultPrevented)
}

func (e *Event) invokeTargetListeners(node Target, dir direction, data any) {
	e.invokeListeners(
		func() []*Listener { return node.Listeners(e.eventType) },
		func(l *Listener) { node.RemoveListener(e.eventType, l) },
		dir, false, data,
	)
}

// invokeHookListeners runs a phase-exempt global pass. Hook providers
// expose no removal operation, so once entries are the provider's
// concern.
func (e *Event) invokeHookListeners(hook HookProvider, dir direction, data any) {
	e.invokeListeners(func() []*Listener { return hook() }, nil, dir, true, data)
}

// invokeListeners runs one pass over a single listener list. It
// iterates an immutable snapshot from last-registered to first (this
// ordering is load-bearing), re-checking each entry against the live
// list so removals by earlier callbacks in the same pass are honored
// and additions are not picked up mid-pass.
func (e *Event) invokeListeners(live func() []*Listener, remove func(*Listener), dir direction, phaseExempt bool, data any) {
	snapshot := append([]*Listener(nil), live()...)

	for i := len(snapshot) - 1; i >= 0; i-- {
		l := snapshot[i]

		if !containsListener(live(), l) {
			continue
		}

		if !phaseExempt {
			if (dir == directionCapture && !l.Capture) || (dir == directionBubble && l.Capture) {
				continue
			}
		}

		// Remove once entries before invoking, so a panicking
		// callback cannot leave them registered.
		if l.Once && remove != nil {
			remove(l)
		}

		result := l.Callback(l.Context, e, data)
		if result != nil {
			observeResult(e, result)
		}

		if l.Passive && e.defaultPrevented {
			warnPassivePreventDefault(e)
		}

		if e.propagationState == propagationStopImmediate {
			return
		}
	}
}

func containsListener(list []*Listener, l *Listener) bool {
	for _, entry := range list {
		if entry == l {
			return true
		}
	}
	return false
}
