package service

import (
	"context"
	"sync"

	"talent_bridge_backend/internal/engine"
)

// SaveTask is the pending outcome of the one background save made for a
// finished session.
type SaveTask struct {
	SessionID string

	done   chan struct{}
	mu     sync.Mutex
	status engine.SaveStatus
	err    error
}

func newSaveTask(sessionID string) *SaveTask {
	return &SaveTask{
		SessionID: sessionID,
		done:      make(chan struct{}),
		status:    engine.SavePending,
	}
}

// Done is closed once the save has resolved.
func (t *SaveTask) Done() <-chan struct{} {
	return t.done
}

func (t *SaveTask) Status() engine.SaveStatus {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Err is the save error, nil while pending or after success.
func (t *SaveTask) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Wait blocks until the save resolves or ctx is done. On ctx expiry it
// returns the pending status with the context error.
func (t *SaveTask) Wait(ctx context.Context) (engine.SaveStatus, error) {
	select {
	case <-t.done:
		return t.Status(), nil
	case <-ctx.Done():
		return t.Status(), ctx.Err()
	}
}

func (t *SaveTask) resolve(err error) {
	t.mu.Lock()
	if err != nil {
		t.status = engine.SaveFailed
		t.err = err
	} else {
		t.status = engine.SaveSaved
	}
	t.mu.Unlock()
	close(t.done)
}
