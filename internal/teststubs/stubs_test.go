package teststubs

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestStubRefresherTracksCalls(t *testing.T) {
	err := errors.New("boom")
	r := &StubRefresher{Count: 3, Err: err, Notify: make(chan struct{})}

	n, got := r.Refresh(context.Background(), "nfl")
	if n != 3 || !errors.Is(got, err) {
		t.Fatalf("expected configured result, got %d %v", n, got)
	}
	_, _ = r.Warm(context.Background(), "nba")

	if r.WarmCalls.Load() != 1 {
		t.Fatalf("expected one warm call, got %d", r.WarmCalls.Load())
	}
	if r.Calls.Load() != 2 {
		t.Fatalf("expected call count 2, got %d", r.Calls.Load())
	}
	if !reflect.DeepEqual(r.Sports(), []string{"nfl", "nba"}) {
		t.Fatalf("unexpected sports %v", r.Sports())
	}
	select {
	case <-r.Notify:
	default:
		t.Fatalf("expected notify channel to be closed")
	}
}
