package app

import (
	"testing"
	"time"
)

func TestUntilNextRun(t *testing.T) {
	t.Run("later_today", func(t *testing.T) {
		now := time.Date(2026, 3, 18, 1, 30, 0, 0, time.UTC)
		if got := untilNextRun(now, 2); got != 30*time.Minute {
			t.Errorf("expected 30m, got %v", got)
		}
	})

	t.Run("already_passed_runs_tomorrow", func(t *testing.T) {
		now := time.Date(2026, 3, 18, 3, 0, 0, 0, time.UTC)
		if got := untilNextRun(now, 2); got != 23*time.Hour {
			t.Errorf("expected 23h, got %v", got)
		}
	})

	t.Run("exactly_at_hour_waits_a_day", func(t *testing.T) {
		now := time.Date(2026, 3, 18, 2, 0, 0, 0, time.UTC)
		if got := untilNextRun(now, 2); got != 24*time.Hour {
			t.Errorf("expected 24h, got %v", got)
		}
	})
}
