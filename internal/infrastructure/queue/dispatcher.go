package queue

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/towingbuddy/towtrack-api/internal/api/metrics"
	"github.com/towingbuddy/towtrack-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher delivers queued notifications through a fixed pool of workers.
// Enqueue never blocks and never reports delivery outcome to the caller:
// notification dispatch is fire-and-forget, observable only via logs and
// metrics.
type Dispatcher struct {
	queue    chan ports.Notification
	notifier ports.Notifier
	log      zerolog.Logger
	workers  int
}

// NewDispatcher creates a Dispatcher with numWorkers delivery workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		queue:    make(chan ports.Notification, channelBuffer),
		notifier: notifier,
		log:      log,
		workers:  numWorkers,
	}
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.workers; i++ {
		go d.runWorker(ctx, i)
	}
}

// Enqueue submits a notification for background delivery. When the buffer is
// full the notification is dropped and logged; the HTTP request that
// triggered it has already succeeded and must not be held up.
func (d *Dispatcher) Enqueue(n ports.Notification) {
	select {
	case d.queue <- n:
	default:
		metrics.SmsDispatchTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Str("to", n.To).Msg("notification queue full, message dropped")
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.queue:
			if !ok {
				return
			}
			if d.notifier.Send(n.To, n.Vars, n.Override) {
				metrics.SmsDispatchTotal.WithLabelValues("sent").Inc()
			} else {
				metrics.SmsDispatchTotal.WithLabelValues("failed").Inc()
				d.log.Warn().Str("to", n.To).Int("worker_id", id).Msg("notification delivery failed")
			}
		}
	}
}
