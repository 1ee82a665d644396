// Package notify dispatches post-conversion enrollment events. Delivery is
// best effort: the conversion has already committed by the time an event is
// emitted, so a failed or dropped notification never affects the outcome.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"touchline/internal/admission/models"
	"touchline/internal/admission/ports"
)

// ErrBufferFull is returned by async Emit when the event buffer is full and
// the event was dropped.
var ErrBufferFull = errors.New("notification buffer full")

// Sink receives enrollment events. The Kafka sink is the production
// implementation; the memory sink backs development mode and tests.
type Sink interface {
	Publish(ctx context.Context, event models.EnrollmentCompleted) error
}

// Publisher fans enrollment events into a Sink, either synchronously or
// through a bounded async buffer. Async mode drops events rather than block
// the request path; Close drains whatever is buffered.
type Publisher struct {
	sink   Sink
	logger *slog.Logger

	buffer    chan models.EnrollmentCompleted
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type PublisherOption func(*Publisher)

// WithAsyncBuffer makes Emit enqueue into a buffer of the given size and
// return immediately. A background goroutine delivers to the sink.
func WithAsyncBuffer(size int) PublisherOption {
	return func(p *Publisher) {
		if size > 0 {
			p.buffer = make(chan models.EnrollmentCompleted, size)
		}
	}
}

func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func NewPublisher(sink Sink, opts ...PublisherOption) *Publisher {
	p := &Publisher{sink: sink}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer != nil {
		p.wg.Add(1)
		go p.run()
	}
	return p
}

var _ ports.Notifier = (*Publisher)(nil)

// EnrollmentCompleted implements ports.Notifier.
func (p *Publisher) EnrollmentCompleted(ctx context.Context, event models.EnrollmentCompleted) error {
	return p.Emit(ctx, event)
}

func (p *Publisher) Emit(ctx context.Context, event models.EnrollmentCompleted) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if p.buffer == nil {
		return p.sink.Publish(ctx, event)
	}

	select {
	case p.buffer <- event:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		if p.logger != nil {
			p.logger.Warn("dropping enrollment event",
				"applicant_id", event.ApplicantID.String(),
				"reason", "buffer full")
		}
		return ErrBufferFull
	}
}

func (p *Publisher) run() {
	defer p.wg.Done()
	for event := range p.buffer {
		p.deliver(event)
	}
}

func (p *Publisher) deliver(event models.EnrollmentCompleted) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.sink.Publish(ctx, event); err != nil && p.logger != nil {
		p.logger.Error("failed to publish enrollment event",
			"applicant_id", event.ApplicantID.String(),
			"error", err)
	}
}

// Close stops accepting events and drains the async buffer. Callers must
// stop emitting before closing; Emit after Close panics.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() {
		if p.buffer != nil {
			close(p.buffer)
			p.wg.Wait()
		}
	})
}
