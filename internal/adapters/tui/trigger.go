package tui

import (
	"context"
	"errors"
	"sync/atomic"

	"promptbuilder/internal/ports"
)

// ErrGenerationRunning is returned while a previous generation is still running
var ErrGenerationRunning = errors.New("generation already running")

// BackgroundTrigger runs another trigger off the UI goroutine. The outcome
// is passed to report once the run finishes.
type BackgroundTrigger struct {
	next    ports.GenerationTrigger
	report  func(error)
	running atomic.Bool
}

// Ensure BackgroundTrigger implements GenerationTrigger
var _ ports.GenerationTrigger = (*BackgroundTrigger)(nil)

// NewBackgroundTrigger wraps next
func NewBackgroundTrigger(next ports.GenerationTrigger, report func(error)) *BackgroundTrigger {
	return &BackgroundTrigger{next: next, report: report}
}

// SetReport replaces the completion callback
func (t *BackgroundTrigger) SetReport(report func(error)) {
	t.report = report
}

// Trigger starts a run and returns without waiting for it
func (t *BackgroundTrigger) Trigger(ctx context.Context) error {
	if !t.running.CompareAndSwap(false, true) {
		return ErrGenerationRunning
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		defer t.running.Store(false)
		err := t.next.Trigger(ctx)
		if t.report != nil {
			t.report(err)
		}
	}()
	return nil
}
