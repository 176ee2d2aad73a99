package service

import (
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestLocalTimeLabel(t *testing.T) {
	now := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)

	tests := []struct {
		name   string
		now    time.Time
		offset int
		want   string
	}{
		{"utc", now, 0, "Local Time: 22:13:20"},
		{"positive half-hour offset", now, 19800, "Local Time: 03:43:20"},
		{"negative offset", now, -5 * 3600, "Local Time: 17:13:20"},
		{"viewer zone is ignored", now.In(time.FixedZone("viewer", -8*3600)), 19800, "Local Time: 03:43:20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LocalTimeLabel(tt.now, tt.offset); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestClockTickerRendersImmediately(t *testing.T) {
	ticker := NewClockTicker()
	ticker.now = func() time.Time { return time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC) }

	var label atomic.Value
	h, err := ticker.Start(19800, func(l string) { label.Store(l) })
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer ticker.Stop(h)

	if got, _ := label.Load().(string); got != "Local Time: 03:43:20" {
		t.Errorf("Expected immediate render, got %q", got)
	}
}

func TestClockTickerTicksEverySecond(t *testing.T) {
	ticker := NewClockTicker()

	var ticks int32
	h, err := ticker.Start(0, func(string) { atomic.AddInt32(&ticks, 1) })
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer ticker.Stop(h)

	time.Sleep(2500 * time.Millisecond)

	if n := atomic.LoadInt32(&ticks); n < 2 {
		t.Errorf("Expected at least 2 renders after 2.5s, got %d", n)
	}
}

func TestClockTickerReplacesActive(t *testing.T) {
	ticker := NewClockTicker()

	var firstTicks, secondTicks int32
	first, err := ticker.Start(0, func(string) { atomic.AddInt32(&firstTicks, 1) })
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	second, err := ticker.Start(3600, func(string) { atomic.AddInt32(&secondTicks, 1) })
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer ticker.Stop(second)

	if !first.Stopped() {
		t.Error("Expected first ticker to be stopped")
	}
	if second.Stopped() {
		t.Error("Expected second ticker to be running")
	}
	if ticker.Active() != second {
		t.Error("Expected second ticker to be the only active one")
	}

	before := atomic.LoadInt32(&firstTicks)
	time.Sleep(1500 * time.Millisecond)
	if after := atomic.LoadInt32(&firstTicks); after != before {
		t.Errorf("Replaced ticker kept rendering: %d -> %d", before, after)
	}
	if atomic.LoadInt32(&secondTicks) < 2 {
		t.Error("Expected the replacement ticker to keep rendering")
	}
}

func TestClockTickerStopIsSynchronous(t *testing.T) {
	ticker := NewClockTicker()

	var ticks int32
	h, err := ticker.Start(0, func(string) { atomic.AddInt32(&ticks, 1) })
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}

	ticker.Stop(h)
	stoppedAt := atomic.LoadInt32(&ticks)

	time.Sleep(1500 * time.Millisecond)

	if n := atomic.LoadInt32(&ticks); n != stoppedAt {
		t.Errorf("Expected no renders after Stop, got %d more", n-stoppedAt)
	}
	if ticker.Active() != nil {
		t.Error("Expected no active ticker after Stop")
	}

	// stopping again, or stopping nil, is harmless
	ticker.Stop(h)
	ticker.Stop(nil)
}

func TestClockTickerStopStaleHandleKeepsActive(t *testing.T) {
	ticker := NewClockTicker()

	first, _ := ticker.Start(0, func(string) {})
	second, _ := ticker.Start(0, func(string) {})
	defer ticker.Stop(second)

	ticker.Stop(first)
	if ticker.Active() != second {
		t.Error("Stopping a replaced handle must not clear the active one")
	}
}

func TestClockTickerBadSchedule(t *testing.T) {
	ticker := NewClockTicker()
	ticker.schedule = "not a schedule"

	_, err := ticker.Start(0, func(string) {})
	if err == nil || !strings.Contains(err.Error(), "clock:") {
		t.Errorf("Expected schedule error, got %v", err)
	}
	if ticker.Active() != nil {
		t.Error("Expected no active ticker after failed start")
	}
}
