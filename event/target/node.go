// Package target provides the reference event target: a tree node
// with parent links and a per-type listener registry. The engine in
// package event consumes it only through the event.Target and
// event.Parenter interfaces, so frameworks with their own node types
// can ignore this package entirely.
package target

import (
	"github.com/heathj/uievents/event"
)

// Node is a tree target. It is single-threaded by contract, like the
// dispatch engine itself; registration, removal and dispatch must all
// happen on the same goroutine.
type Node struct {
	Name string

	parent    *Node
	children  []*Node
	listeners map[string][]*event.Listener
}

func (n *Node) String() string { return n.Name }

func NewNode(name string) *Node {
	return &Node{
		Name:      name,
		listeners: map[string][]*event.Listener{},
	}
}

// Parent implements event.Parenter. It returns an untyped nil for the
// root so the engine's nil check holds.
func (n *Node) Parent() event.Target {
	if n.parent == nil {
		return nil
	}
	return n.parent
}

func (n *Node) ParentNode() *Node { return n.parent }

func (n *Node) ChildNodes() []*Node { return n.children }

func (n *Node) AppendChild(child *Node) *Node {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return child
}

func (n *Node) RemoveChild(child *Node) *Node {
	for i := range n.children {
		if n.children[i] == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			child.parent = nil
			return child
		}
	}
	return nil
}

func (n *Node) Root() *Node {
	root := n
	for root.parent != nil {
		root = root.parent
	}
	return root
}

// ListenerOption configures a listener registration.
type ListenerOption func(*event.Listener)

// WithCapture registers the listener for the capturing pass instead of
// the bubbling pass.
func WithCapture() ListenerOption {
	return func(l *event.Listener) { l.Capture = true }
}

// WithOnce deregisters the listener before its first invocation
// completes.
func WithOnce() ListenerOption {
	return func(l *event.Listener) { l.Once = true }
}

// WithPassive declares that the listener will not call PreventDefault;
// a violation is diagnosed, not blocked.
func WithPassive() ListenerOption {
	return func(l *event.Listener) { l.Passive = true }
}

// WithContext binds a context object forwarded as the callback's first
// argument.
func WithContext(ctx any) ListenerOption {
	return func(l *event.Listener) { l.Context = ctx }
}

// On registers a listener for eventType and returns the entry, which
// is the handle for Off. Registration order is preserved; the engine
// invokes entries last-registered-first within a pass.
func (n *Node) On(eventType string, cb event.Callback, opts ...ListenerOption) *event.Listener {
	l := &event.Listener{Callback: cb}
	for _, opt := range opts {
		opt(l)
	}
	n.listeners[eventType] = append(n.listeners[eventType], l)
	return l
}

// Off removes a previously registered entry. Unknown entries are
// ignored.
func (n *Node) Off(eventType string, l *event.Listener) {
	n.RemoveListener(eventType, l)
}

// Listeners implements event.Target. The returned slice is the live
// backing list; the engine snapshots it before iterating.
func (n *Node) Listeners(eventType string) []*event.Listener {
	return n.listeners[eventType]
}

// RemoveListener implements event.Target.
func (n *Node) RemoveListener(eventType string, l *event.Listener) {
	entries := n.listeners[eventType]
	for i := range entries {
		if entries[i] == l {
			n.listeners[eventType] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

func (n *Node) ListenerCount(eventType string) int {
	return len(n.listeners[eventType])
}

// RemoveAllListeners drops every listener for eventType; an empty
// eventType clears the whole registry.
func (n *Node) RemoveAllListeners(eventType string) {
	if eventType == "" {
		n.listeners = map[string][]*event.Listener{}
		return
	}
	delete(n.listeners, eventType)
}
