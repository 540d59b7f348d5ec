package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"partnerplan/internal/planning"
	"partnerplan/internal/platform/metrics"
	dErrors "partnerplan/pkg/domain-errors"
	"partnerplan/pkg/platform/audit"
)

const tracerName = "partnerplan/internal/planning/service"

// PartnerSource supplies the partners for a run.
type PartnerSource interface {
	FetchPartners(ctx context.Context) ([]planning.Partner, error)
}

// ReportSink receives the computed results.
type ReportSink interface {
	Submit(ctx context.Context, results planning.ResultSet) error
}

// RunPublisher records a summary of every run.
type RunPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// RunSummary describes one completed batch run.
type RunSummary struct {
	RunID       uuid.UUID
	Partners    int
	Countries   int
	Scheduled   int
	Unscheduled int
	Results     planning.ResultSet
	StartedAt   time.Time
	FinishedAt  time.Time
}

// Service runs the planner between a partner source and a report sink.
type Service struct {
	source    PartnerSource
	sink      ReportSink
	publisher RunPublisher
	logger    *slog.Logger
	metrics   *metrics.Metrics
	tracer    trace.Tracer
	now       func() time.Time
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithRunPublisher(publisher RunPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New constructs a Service. Source and sink are required; a planner used
// only through Plan (serve mode) can pass NopSource and NopSink.
func New(source PartnerSource, sink ReportSink, opts ...Option) (*Service, error) {
	if source == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "partner source is required")
	}
	if sink == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "report sink is required")
	}
	s := &Service{
		source: source,
		sink:   sink,
		logger: slog.New(slog.DiscardHandler),
		tracer: otel.Tracer(tracerName),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Run fetches partners, plans every country and submits the result.
func (s *Service) Run(ctx context.Context) (*RunSummary, error) {
	runID := uuid.New()
	started := s.now()
	ctx, span := s.tracer.Start(ctx, "planning.Run", trace.WithAttributes(attribute.String("run_id", runID.String())))
	defer span.End()

	logger := s.logger.With("run_id", runID)
	logger.InfoContext(ctx, "planning run started")

	partners, err := s.fetch(ctx)
	if err != nil {
		return nil, s.fail(ctx, span, logger, runID, 0, dErrors.Wrap(err, dErrors.CodeUnavailable, "fetch partners"))
	}

	results := s.Plan(ctx, partners)

	if err := s.submit(ctx, results); err != nil {
		return nil, s.fail(ctx, span, logger, runID, len(partners), dErrors.Wrap(err, dErrors.CodeUnavailable, "submit results"))
	}

	summary := &RunSummary{
		RunID:       runID,
		Partners:    len(partners),
		Countries:   len(results),
		Scheduled:   results.Scheduled(),
		Unscheduled: len(results) - results.Scheduled(),
		Results:     results,
		StartedAt:   started,
		FinishedAt:  s.now(),
	}

	logger.InfoContext(ctx, "planning run completed",
		"partners", summary.Partners,
		"countries", summary.Countries,
		"scheduled", summary.Scheduled,
		"unscheduled", summary.Unscheduled,
		"duration_ms", summary.FinishedAt.Sub(started).Milliseconds(),
	)
	if s.metrics != nil {
		s.metrics.IncrementRuns("success", summary.FinishedAt)
	}
	s.emit(ctx, logger, audit.Event{
		Action:      audit.ActionRunCompleted,
		RunID:       runID,
		Partners:    summary.Partners,
		Countries:   summary.Countries,
		Scheduled:   summary.Scheduled,
		Unscheduled: summary.Unscheduled,
	})
	span.SetStatus(codes.Ok, "")
	return summary, nil
}

// Plan runs the pure planner and records metrics for the pass.
func (s *Service) Plan(ctx context.Context, partners []planning.Partner) planning.ResultSet {
	_, span := s.tracer.Start(ctx, "planning.Plan", trace.WithAttributes(attribute.Int("partners", len(partners))))
	defer span.End()

	start := s.now()
	results := planning.Plan(partners)
	took := s.now().Sub(start)

	scheduled := results.Scheduled()
	span.SetAttributes(
		attribute.Int("countries", len(results)),
		attribute.Int("scheduled", scheduled),
	)
	for _, r := range results {
		if !r.HasStartDate() {
			s.logger.DebugContext(ctx, "no start date for country", "country", r.Name)
		}
	}
	if s.metrics != nil {
		s.metrics.ObservePlan(len(partners), scheduled, len(results)-scheduled, took)
	}
	return results
}

func (s *Service) fetch(ctx context.Context) ([]planning.Partner, error) {
	ctx, span := s.tracer.Start(ctx, "planning.FetchPartners")
	defer span.End()

	partners, err := s.source.FetchPartners(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("partners", len(partners)))
	return partners, nil
}

func (s *Service) submit(ctx context.Context, results planning.ResultSet) error {
	ctx, span := s.tracer.Start(ctx, "planning.SubmitResults", trace.WithAttributes(attribute.Int("countries", len(results))))
	defer span.End()

	if err := s.sink.Submit(ctx, results); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

func (s *Service) fail(ctx context.Context, span trace.Span, logger *slog.Logger, runID uuid.UUID, partners int, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	logger.ErrorContext(ctx, "planning run failed", "error", err)
	if s.metrics != nil {
		s.metrics.IncrementRuns("failure", s.now())
	}
	s.emit(ctx, logger, audit.Event{
		Action:   audit.ActionRunFailed,
		RunID:    runID,
		Partners: partners,
		Reason:   err.Error(),
	})
	return err
}

// emit is best effort: a failed audit write never fails the run.
func (s *Service) emit(ctx context.Context, logger *slog.Logger, event audit.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Emit(ctx, event); err != nil {
		logger.WarnContext(ctx, "failed to publish run event", "action", event.Action, "error", err)
	}
}
