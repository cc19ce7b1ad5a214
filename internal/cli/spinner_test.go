package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinner_StopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "working")
	s.Start()
	s.Stop()
	s.Stop() // second call must not panic or block
}

func TestSpinner_StopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s := newSpinner(ctx, "working")
	s.Start()
	cancel()

	select {
	case <-s.stopped:
	case <-time.After(time.Second):
		t.Fatal("spinner did not stop on context cancellation")
	}
	s.Stop()
}
