package event

import (
	"github.com/sirupsen/logrus"
)

// logger receives the engine's only two diagnostics: failures of
// listener-returned pending results, and preventDefault misuse inside
// passive listeners. Neither alters dispatch control flow.
var logger = logrus.StandardLogger()

// SetLogger swaps the diagnostic logger. Not safe to call while a
// dispatch is in flight.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		logger = l
	}
}

// observeResult watches a pending listener result without blocking the
// dispatch. Only failures are reported; the engine never sequences on
// completion.
func observeResult(e *Event, result any) {
	var ch <-chan error
	switch r := result.(type) {
	case <-chan error:
		ch = r
	case chan error:
		ch = r
	default:
		return
	}
	if ch == nil {
		return
	}

	go func() {
		if err, ok := <-ch; ok && err != nil {
			logger.WithFields(logrus.Fields{
				"event":    e.eventType,
				"event_id": e.id,
			}).WithError(err).Error("listener async result failed")
		}
	}()
}

// warnPassivePreventDefault reports a passive listener that called
// preventDefault. The cancellation itself already took effect; this is
// diagnostic only.
func warnPassivePreventDefault(e *Event) {
	fields := logrus.Fields{
		"event":    e.eventType,
		"event_id": e.id,
	}
	if e.currentTarget != nil {
		fields["target"] = e.currentTarget
	}
	logger.WithFields(fields).Warn("preventDefault called from a passive listener")
}
