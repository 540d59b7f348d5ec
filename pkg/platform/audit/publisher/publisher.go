package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	audit "partnerplan/pkg/platform/audit"
)

// DefaultAppendTimeout bounds one background write to the sink.
const DefaultAppendTimeout = 5 * time.Second

// ErrClosed is returned by Emit after Close.
var ErrClosed = errors.New("audit publisher closed")

// Publisher stamps events and hands them to a sink, either inline or through
// a bounded buffer drained by one background goroutine.
type Publisher struct {
	sink   audit.Sink
	logger *slog.Logger
	now    func() time.Time

	bufferSize    int
	appendTimeout time.Duration
	inbox         chan audit.Event
	done          chan struct{}
	drainCtx      context.Context
	stopDrain     context.CancelFunc

	mu      sync.RWMutex
	closed  bool
	dropped atomic.Int64
}

type Option func(*Publisher)

// WithAsyncBuffer makes Emit non-blocking. Events that do not fit in the
// buffer are dropped and counted.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		p.bufferSize = size
	}
}

// WithAppendTimeout bounds each background write. Non-positive values keep
// DefaultAppendTimeout.
func WithAppendTimeout(d time.Duration) Option {
	return func(p *Publisher) {
		if d > 0 {
			p.appendTimeout = d
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(sink audit.Sink, opts ...Option) *Publisher {
	p := &Publisher{
		sink:          sink,
		logger:        slog.New(slog.DiscardHandler),
		now:           time.Now,
		appendTimeout: DefaultAppendTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.bufferSize > 0 {
		p.inbox = make(chan audit.Event, p.bufferSize)
		p.done = make(chan struct{})
		p.drainCtx, p.stopDrain = context.WithCancel(context.Background())
		go p.drain()
	}
	return p
}

// Emit fills in ID and Timestamp when unset and forwards the event.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = p.now()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	if p.inbox == nil {
		return p.sink.Append(ctx, event)
	}

	select {
	case p.inbox <- event:
	default:
		p.dropped.Add(1)
		p.logger.Warn("audit buffer full, dropping event",
			"event_id", event.ID,
			"run_id", event.RunID,
			"action", event.Action,
		)
	}
	return nil
}

// Dropped reports how many events the async buffer discarded.
func (p *Publisher) Dropped() int64 {
	return p.dropped.Load()
}

// Close stops accepting events and, in async mode, waits until the buffer
// has been written to the sink or ctx ends. When ctx ends first the write in
// flight is cancelled, the rest of the buffer is abandoned and ctx.Err() is
// returned.
func (p *Publisher) Close(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	p.mu.Unlock()

	if p.inbox == nil {
		return nil
	}
	close(p.inbox)
	select {
	case <-p.done:
		p.stopDrain()
		return nil
	case <-ctx.Done():
		p.stopDrain()
		<-p.done
		return ctx.Err()
	}
}

func (p *Publisher) drain() {
	defer close(p.done)
	for event := range p.inbox {
		if p.drainCtx.Err() != nil {
			p.dropped.Add(1)
			continue
		}
		p.append(event)
	}
}

func (p *Publisher) append(event audit.Event) {
	ctx, cancel := context.WithTimeout(p.drainCtx, p.appendTimeout)
	defer cancel()
	if err := p.sink.Append(ctx, event); err != nil {
		p.logger.Error("failed to write audit event",
			"event_id", event.ID,
			"run_id", event.RunID,
			"error", err,
		)
	}
}
