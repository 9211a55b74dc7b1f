package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubTarget exposes a parent relation; listener queries are unused by
// the path builder.
type stubTarget struct {
	name   string
	parent Target
}

func (s *stubTarget) Listeners(eventType string) []*Listener       { return nil }
func (s *stubTarget) RemoveListener(eventType string, l *Listener) {}
func (s *stubTarget) Parent() Target                               { return s.parent }

// flatTarget has no parent-lookup capability at all.
type flatTarget struct{}

func (f *flatTarget) Listeners(eventType string) []*Listener       { return nil }
func (f *flatTarget) RemoveListener(eventType string, l *Listener) {}

func TestBuildPathCaptureOrder(t *testing.T) {
	root := &stubTarget{name: "root"}
	mid := &stubTarget{name: "mid", parent: root}
	leaf := &stubTarget{name: "leaf", parent: mid}

	assert.Equal(t, []Target{root, mid, leaf}, buildPath(leaf, directionCapture))
	assert.Equal(t, []Target{leaf, mid, root}, buildPath(leaf, directionBubble))
}

func TestBuildPathRootOnly(t *testing.T) {
	root := &stubTarget{name: "root"}
	assert.Equal(t, []Target{root}, buildPath(root, directionCapture))
	assert.Equal(t, []Target{root}, buildPath(root, directionBubble))
}

func TestBuildPathWithoutParentCapability(t *testing.T) {
	f := &flatTarget{}
	assert.Equal(t, []Target{f}, buildPath(f, directionCapture))
}

func TestEventPathDegeneratesWhenNotBubbling(t *testing.T) {
	root := &stubTarget{name: "root"}
	leaf := &stubTarget{name: "leaf", parent: root}

	bubbling := New("tap", WithBubbles())
	assert.Equal(t, []Target{root, leaf}, bubbling.eventPath(leaf, directionCapture))

	plain := New("tap")
	assert.Equal(t, []Target{leaf}, plain.eventPath(leaf, directionCapture))
	assert.Equal(t, []Target{leaf}, plain.eventPath(leaf, directionBubble))
}
