package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// TickSchedule fires once per elapsed second
const TickSchedule = "@every 1s"

// LocalTimeLabel formats now shifted by offsetSeconds. The offset is applied
// to the instant and the result read back as UTC, so the viewer's own zone
// never leaks in.
func LocalTimeLabel(now time.Time, offsetSeconds int) string {
	local := now.UTC().Add(time.Duration(offsetSeconds) * time.Second)
	return "Local Time: " + local.Format("15:04:05")
}

// TickerHandle is one running local-time clock
type TickerHandle struct {
	mu      sync.Mutex
	stopped bool
	cron    *cron.Cron
}

// Stopped reports whether the handle has been stopped
func (h *TickerHandle) Stopped() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopped
}

func (h *TickerHandle) tick(render func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		return
	}
	render()
}

// stop blocks until no render can run any more
func (h *TickerHandle) stop() {
	h.mu.Lock()
	if h.stopped {
		h.mu.Unlock()
		return
	}
	h.stopped = true
	h.mu.Unlock()

	<-h.cron.Stop().Done()
}

// ClockTicker keeps at most one local-time clock running
type ClockTicker struct {
	mu       sync.Mutex
	active   *TickerHandle
	now      func() time.Time
	schedule string
}

// NewClockTicker creates a ticker using the wall clock
func NewClockTicker() *ClockTicker {
	return &ClockTicker{
		now:      time.Now,
		schedule: TickSchedule,
	}
}

// Start renders the local time immediately and then once per second.
// Any previously active clock is stopped first.
func (t *ClockTicker) Start(offsetSeconds int, render func(label string)) (*TickerHandle, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active != nil {
		t.active.stop()
		t.active = nil
	}

	h := &TickerHandle{
		cron: cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
	}
	update := func() { render(LocalTimeLabel(t.now(), offsetSeconds)) }

	if _, err := h.cron.AddFunc(t.schedule, func() { h.tick(update) }); err != nil {
		return nil, fmt.Errorf("clock: failed to schedule ticker: %w", err)
	}

	h.tick(update)
	h.cron.Start()
	t.active = h
	return h, nil
}

// Stop cancels h. After it returns no further renders happen.
func (t *ClockTicker) Stop(h *TickerHandle) {
	if h == nil {
		return
	}

	t.mu.Lock()
	if t.active == h {
		t.active = nil
	}
	t.mu.Unlock()

	h.stop()
}

// Active returns the running handle, if any
func (t *ClockTicker) Active() *TickerHandle {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}
