package teststubs

import (
	"context"
	"sync"
	"sync/atomic"
)

// StubRefresher is a test double for poller.Refresher. Warm and Refresh share
// the recorded sports; WarmCalls counts only Warm.
type StubRefresher struct {
	Count     int
	Err       error
	Calls     atomic.Int32
	WarmCalls atomic.Int32
	Notify    chan struct{}

	mu     sync.Mutex
	sports []string
}

// Warm records the sport and returns the configured count and error.
func (s *StubRefresher) Warm(ctx context.Context, sport string) (int, error) {
	s.WarmCalls.Add(1)
	return s.Refresh(ctx, sport)
}

// Refresh records the sport and returns the configured count and error.
func (s *StubRefresher) Refresh(ctx context.Context, sport string) (int, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.mu.Lock()
	s.sports = append(s.sports, sport)
	s.mu.Unlock()
	s.Calls.Add(1)
	return s.Count, s.Err
}

// Sports returns the sports refreshed so far, in call order.
func (s *StubRefresher) Sports() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sports...)
}
