package audit

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memWriter struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (w *memWriter) Write(ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("boom")
	}
	w.events = append(w.events, ev)
	return nil
}

func TestDispatcher_DeliversAndDrains(t *testing.T) {
	w := &memWriter{}
	d := NewDispatcher(w, zap.NewNop())

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "lesson.reschedule", Entity: "lesson"})
	}
	d.Close()

	require.Len(t, w.events, 10)
	assert.Equal(t, "lesson.reschedule", w.events[0].Action)
}

func TestDispatcher_WriterErrorsAreSwallowed(t *testing.T) {
	w := &memWriter{fail: true}
	d := NewDispatcher(w, zap.NewNop())

	d.Dispatch(Event{Action: "blockout.create"})
	d.Close()

	assert.Empty(t, w.events)
}

func TestDispatcher_DropsAfterClose(t *testing.T) {
	w := &memWriter{}
	d := NewDispatcher(w, zap.NewNop())

	d.Dispatch(Event{Action: "lesson.status"})
	d.Close()

	assert.NotPanics(t, func() {
		d.Dispatch(Event{Action: "lesson.reschedule"})
	})
	d.Close()

	require.Len(t, w.events, 1)
	assert.Equal(t, "lesson.status", w.events[0].Action)
}
