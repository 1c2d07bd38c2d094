package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memWriter struct {
	mu     sync.Mutex
	events []Event
	fail   bool
}

func (w *memWriter) Write(_ context.Context, ev Event) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.fail {
		return errors.New("db down")
	}
	w.events = append(w.events, ev)
	return nil
}

func TestDispatcher_DrainsOnClose(t *testing.T) {
	w := &memWriter{}
	d := NewDispatcher(w, zap.NewNop())

	for i := 0; i < 10; i++ {
		d.Dispatch(Event{BarbershopID: 1, Action: "appointment_created"})
	}
	d.Close()

	assert.Len(t, w.events, 10)
}

func TestDispatcher_LogsWriteFailure(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	d := NewDispatcher(&memWriter{fail: true}, zap.New(core))

	d.Dispatch(Event{BarbershopID: 2, Action: "appointment_cancelled"})
	d.Close()

	entries := logs.FilterMessage("audit write failed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "appointment_cancelled", entries[0].ContextMap()["action"])
	}
}
