package event

// Callback is invoked synchronously for each matching listener. ctx is
// the listener's bound context object (nil when none was declared),
// data is the payload passed to Dispatch. A callback may return a
// pending result as a chan error / <-chan error; the engine observes
// its failure on the side without waiting (see sink.go). Any other
// return value is ignored.
type Callback func(ctx any, ev *Event, data any) any

// Listener is one registry entry. Entries are owned by the registry
// that produced them and are read-only to the engine; the *Listener
// pointer itself is the removal identity, since Go function values
// cannot be compared.
type Listener struct {
	Callback Callback
	Context  any
	Capture  bool
	Once     bool
	Passive  bool
}

// Target is the collaborator surface the engine consumes. Listeners
// must return the live ordered list for the given type (registration
// order, oldest first); the engine snapshots it and re-checks
// membership against fresh queries during the pass.
type Target interface {
	Listeners(eventType string) []*Listener
	RemoveListener(eventType string, l *Listener)
}

// Parenter is the optional parent-lookup capability of a Target.
// Targets without it (or returning nil) dispatch over a single-element
// path. A cyclic parent relation is a caller invariant violation; the
// walk does not defend against it.
type Parenter interface {
	Parent() Target
}

// HookProvider supplies phase-exempt global listeners for the pre- and
// post-dispatch hooks. It serves as the live-list query for its pass
// and may be called several times while the pass runs; entries that
// remain registered must keep their identity across calls.
type HookProvider func() []*Listener
