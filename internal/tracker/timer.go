package tracker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// FlushFunc persists the accumulated minutes for a habit's current day.
// It receives the total accumulated minutes, not a delta.
type FlushFunc func(ctx context.Context, habitID uuid.UUID, minutes int) error

// TimerSession accumulates elapsed minutes for an active time-based
// habit. Ticks arrive once per elapsed minute; each tick flushes the
// running total through the progress-update path, and Stop performs a
// mandatory final flush so a session halted mid-minute never loses the
// progress recorded since the last flush.
type TimerSession struct {
	habitID uuid.UUID
	flush   FlushFunc

	mu      sync.Mutex
	minutes int
	stopped bool
}

// NewTimerSession starts an accumulator at the habit's current minutes
// for today so ticks extend recorded progress rather than restart it.
func NewTimerSession(habitID uuid.UUID, startMinutes int, flush FlushFunc) *TimerSession {
	if startMinutes < 0 {
		startMinutes = 0
	}
	return &TimerSession{habitID: habitID, flush: flush, minutes: startMinutes}
}

// Minutes returns the current accumulated total.
func (s *TimerSession) Minutes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.minutes
}

// Tick records one elapsed minute and flushes the new total.
func (s *TimerSession) Tick(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return fmt.Errorf("timer session already stopped")
	}
	s.minutes++
	total := s.minutes
	s.mu.Unlock()

	return s.flush(ctx, s.habitID, total)
}

// Stop ends the session with a final flush. It is idempotent; only the
// first call flushes.
func (s *TimerSession) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.stopped = true
	total := s.minutes
	s.mu.Unlock()

	if err := s.flush(ctx, s.habitID, total); err != nil {
		return fmt.Errorf("final timer flush: %w", err)
	}
	return nil
}

// Run drives the session from a ticker until the context is cancelled,
// then performs the mandatory stop flush. Interval is once per minute
// in production; tests pass something shorter.
func (s *TimerSession) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// Flush with a fresh context; the session's own context is
			// already cancelled.
			stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return s.Stop(stopCtx)
		case <-ticker.C:
			if err := s.Tick(ctx); err != nil {
				return err
			}
		}
	}
}
