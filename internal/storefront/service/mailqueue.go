package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/storefront/pkg/mailx"
)

var (
	ErrMailQueueFull    = errors.New("mail_queue_full")
	ErrMailQueueStopped = errors.New("mail_queue_stopped")
)

// Mailer accepts messages for later delivery.
type Mailer interface {
	Enqueue(m mailx.Message) error
}

// MailQueue delivers mail on a background worker so request handlers never
// wait on the SMTP relay. Failures are logged, not retried.
type MailQueue struct {
	Sender  mailx.Sender
	Logger  *slog.Logger
	Timeout time.Duration

	mu      sync.RWMutex
	started bool
	stopped bool

	queue  chan mailx.Message
	doneCh chan struct{}
}

// NewMailQueue creates a queue holding up to size pending messages. A
// non-positive size defaults to 64 and timeout to 30s.
func NewMailQueue(sender mailx.Sender, logger *slog.Logger, size int, timeout time.Duration) *MailQueue {
	if size <= 0 {
		size = 64
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &MailQueue{
		Sender:  sender,
		Logger:  logger,
		Timeout: timeout,
		queue:   make(chan mailx.Message, size),
		doneCh:  make(chan struct{}),
	}
}

// Start launches the worker. Call Stop to drain and shut it down.
func (q *MailQueue) Start() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.started || q.stopped {
		return
	}
	q.started = true

	go q.run()
	q.Logger.Info("mail queue started", "capacity", cap(q.queue))
}

// Stop refuses new messages, delivers everything already queued and returns
// once the worker has exited. On a queue that was never started, pending
// messages are dropped.
func (q *MailQueue) Stop() {
	q.mu.Lock()
	if q.stopped {
		q.mu.Unlock()
		<-q.doneCh
		return
	}
	q.stopped = true
	close(q.queue)
	if !q.started {
		dropped := len(q.queue)
		close(q.doneCh)
		q.mu.Unlock()
		q.Logger.Warn("mail queue stopped before start", "dropped", dropped)
		return
	}
	q.mu.Unlock()

	<-q.doneCh
	q.Logger.Info("mail queue stopped")
}

// Enqueue schedules m without blocking.
func (q *MailQueue) Enqueue(m mailx.Message) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.stopped {
		return ErrMailQueueStopped
	}
	select {
	case q.queue <- m:
		return nil
	default:
		return ErrMailQueueFull
	}
}

func (q *MailQueue) run() {
	defer close(q.doneCh)
	for m := range q.queue {
		q.deliver(m)
	}
}

func (q *MailQueue) deliver(m mailx.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), q.Timeout)
	defer cancel()

	start := time.Now()
	if err := q.Sender.Send(ctx, m); err != nil {
		q.Logger.Error("mail delivery failed",
			"to", strings.Join(m.To, ","),
			"subject", m.Subject,
			"error", err,
		)
		return
	}
	q.Logger.Debug("mail delivered",
		"to", strings.Join(m.To, ","),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
