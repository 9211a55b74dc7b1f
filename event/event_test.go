package event_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heathj/uievents/event"
	"github.com/heathj/uievents/event/target"
)

func TestNewEventDefaults(t *testing.T) {
	ev := event.New("pan")

	assert.Equal(t, "pan", ev.Type())
	assert.False(t, ev.Bubbles())
	assert.False(t, ev.Cancelable())
	assert.False(t, ev.Composed())
	assert.Nil(t, ev.Detail())
	assert.False(t, ev.DefaultPrevented())
	assert.False(t, ev.IsTrusted())
	assert.Equal(t, event.NonePhase, ev.Phase())
	assert.Nil(t, ev.Target())
	assert.Nil(t, ev.CurrentTarget())
	assert.False(t, ev.TimeStamp().IsZero())
	assert.NotEqual(t, ev.ID(), event.New("pan").ID())
}

func TestNewEventOptions(t *testing.T) {
	detail := map[string]int{"dx": 4}
	ev := event.New("pinch",
		event.WithBubbles(),
		event.WithCancelable(),
		event.WithComposed(),
		event.WithDetail(detail),
	)

	assert.True(t, ev.Bubbles())
	assert.True(t, ev.Cancelable())
	assert.True(t, ev.Composed())
	assert.Equal(t, detail, ev.Detail())
}

func TestPreventDefaultRequiresCancelable(t *testing.T) {
	ev := event.New("swipe")
	ev.PreventDefault()
	assert.False(t, ev.DefaultPrevented())

	ev = event.New("swipe", event.WithCancelable())
	ev.PreventDefault()
	assert.True(t, ev.DefaultPrevented())
}

func TestStopPropagationDoesNotDowngradeStopImmediate(t *testing.T) {
	_, _, leaf := newChain()
	ran := 0
	leaf.On("tap", func(ctx any, ev *event.Event, data any) any {
		ran++
		return nil
	})
	leaf.On("tap", func(ctx any, ev *event.Event, data any) any {
		ev.StopImmediatePropagation()
		// A later StopPropagation must not weaken the immediate stop.
		ev.StopPropagation()
		return nil
	})

	_, err := event.New("tap").Dispatch(leaf, nil)
	require.NoError(t, err)
	assert.Zero(t, ran)
}

func TestComposedPathDuringDispatch(t *testing.T) {
	root, mid, leaf := newChain()
	var got []event.Target
	leaf.On("tap", func(ctx any, ev *event.Event, data any) any {
		got = ev.ComposedPath()
		return nil
	})

	_, err := event.New("tap", event.WithBubbles()).Dispatch(leaf, nil)
	require.NoError(t, err)
	assert.Equal(t, []event.Target{root, mid, leaf}, got)
}

func TestComposedPathIsFullForNonBubblingEvent(t *testing.T) {
	root, mid, leaf := newChain()
	var got []event.Target
	leaf.On("tap", func(ctx any, ev *event.Event, data any) any {
		got = ev.ComposedPath()
		return nil
	})

	// Traversal degenerates to the target, the inspectable path does not.
	_, err := event.New("tap").Dispatch(leaf, nil)
	require.NoError(t, err)
	assert.Equal(t, []event.Target{root, mid, leaf}, got)
}

func TestComposedPathEmptyOutsideDispatch(t *testing.T) {
	assert.Empty(t, event.New("tap").ComposedPath())
}

func TestInitEventAlwaysFails(t *testing.T) {
	ev := event.New("tap")
	err := ev.InitEvent("doubleTap")
	assert.True(t, errors.Is(err, event.ErrInitEventUnsupported))
	assert.Equal(t, "tap", ev.Type())
}

var _ event.Target = (*target.Node)(nil)
var _ event.Parenter = (*target.Node)(nil)
