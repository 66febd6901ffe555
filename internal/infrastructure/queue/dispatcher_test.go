package queue

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

// chanNotifier forwards every delivered notification to a channel so the test
// can observe background delivery.
type chanNotifier struct {
	delivered chan ports.Notification
	result    bool
}

func (n *chanNotifier) Send(to string, vars ports.MessageVars, override string) bool {
	n.delivered <- ports.Notification{To: to, Vars: vars, Override: override}
	return n.result
}

func TestDispatcher_DeliversInBackground(t *testing.T) {
	notifier := &chanNotifier{delivered: make(chan ports.Notification, 1), result: true}
	d := NewDispatcher(2, notifier, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	d.Enqueue(ports.Notification{To: "+919876543210", Override: "hello"})

	select {
	case n := <-notifier.delivered:
		if n.To != "+919876543210" || n.Override != "hello" {
			t.Fatalf("unexpected delivery: %+v", n)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification was not delivered")
	}
}

func TestDispatcher_EnqueueNeverBlocksWhenFull(t *testing.T) {
	// No workers started: the buffer fills and further enqueues must drop
	// rather than block the caller.
	notifier := &chanNotifier{delivered: make(chan ports.Notification)}
	d := NewDispatcher(1, notifier, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(ports.Notification{To: "+910000000000"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}
