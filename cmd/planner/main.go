package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"partnerplan/internal/partners/source"
	"partnerplan/internal/planning/handler"
	"partnerplan/internal/planning/service"
	"partnerplan/internal/platform/config"
	"partnerplan/internal/platform/httpserver"
	"partnerplan/internal/platform/kafka/producer"
	"partnerplan/internal/platform/logger"
	"partnerplan/internal/platform/metrics"
	"partnerplan/internal/report/sink"
	httptransport "partnerplan/internal/transport/http"
	"partnerplan/pkg/platform/audit"
	"partnerplan/pkg/platform/audit/publisher"
	kafkasink "partnerplan/pkg/platform/audit/publishers/kafka"
	logsink "partnerplan/pkg/platform/audit/publishers/logging"
)

const eventFlushTimeout = 15 * time.Second

// main wires config, logging, metrics and the adapters around the planning
// service, then runs either one batch pass or the HTTP API.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}
	log := logger.New(cfg.Logger.Level, cfg.Logger.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("planner exited with error", "mode", cfg.Mode, "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	switch cfg.Mode {
	case config.ModeServe:
		svc, err := service.New(service.NopSource{}, service.NopSink{},
			service.WithLogger(log),
			service.WithMetrics(m),
		)
		if err != nil {
			return err
		}
		router := httptransport.NewRouter(log, reg, handler.New(svc, log))
		return httpserver.Run(ctx, log, httpserver.New(cfg.Addr, router))
	default:
		src, err := buildSource(cfg)
		if err != nil {
			return err
		}
		dst, err := buildSink(cfg)
		if err != nil {
			return err
		}
		events, closeEvents, err := buildPublisher(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer closeEvents()

		svc, err := service.New(src, dst,
			service.WithLogger(log),
			service.WithMetrics(m),
			service.WithRunPublisher(events),
		)
		if err != nil {
			return err
		}
		return runBatch(ctx, cfg, log, svc, reg)
	}
}

func runBatch(ctx context.Context, cfg config.Config, log *slog.Logger, svc *service.Service, gatherer prometheus.Gatherer) error {
	if cfg.MetricsAddr == "" {
		_, err := svc.Run(ctx)
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	// The metrics listener is optional; losing it must not cost the run.
	g.Go(func() error {
		srv := httpserver.New(cfg.MetricsAddr, httptransport.NewMetricsRouter(gatherer))
		if err := httpserver.Run(gctx, log, srv); err != nil {
			log.Warn("metrics listener unavailable, continuing without it", "addr", cfg.MetricsAddr, "error", err)
		}
		return nil
	})
	g.Go(func() error {
		defer cancel()
		summary, err := svc.Run(gctx)
		if err != nil {
			return err
		}
		log.Info("results submitted",
			"run_id", summary.RunID,
			"countries", summary.Countries,
			"scheduled", summary.Scheduled,
		)
		return nil
	})
	return g.Wait()
}

func buildSource(cfg config.Config) (service.PartnerSource, error) {
	if cfg.Input.File != "" {
		return source.NewFileSource(cfg.Input.File), nil
	}
	return source.NewHTTPSource(cfg.API.BaseURL, cfg.API.APIKey, cfg.API.Timeout)
}

func buildSink(cfg config.Config) (service.ReportSink, error) {
	if cfg.Input.DryRun {
		return sink.NewWriterSink(os.Stdout), nil
	}
	return sink.NewHTTPSink(cfg.API.BaseURL, cfg.API.APIKey, cfg.API.Timeout)
}

// buildPublisher sends run events to Kafka when brokers are configured and
// to the log otherwise. The returned func flushes buffered events, bounded by
// eventFlushTimeout, and releases the producer.
func buildPublisher(ctx context.Context, cfg config.Config, log *slog.Logger) (*publisher.Publisher, func(), error) {
	var (
		target  audit.Sink = logsink.NewSink(log)
		release            = func() {}
	)
	if cfg.Kafka.Enabled() {
		p, err := producer.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic,
			producer.WithClientID(cfg.Kafka.ClientID),
			producer.WithLinger(cfg.Kafka.Linger),
			producer.WithDeliveryTimeout(cfg.Kafka.DeliveryTimeout),
		)
		if err != nil {
			return nil, nil, err
		}
		if err := p.EnsureTopic(ctx, 1, 1); err != nil {
			log.Warn("could not ensure run event topic", "topic", p.Topic(), "error", err)
		}
		target = kafkasink.NewSink(p)
		release = p.Close
	}

	pub := publisher.NewPublisher(target,
		publisher.WithAsyncBuffer(64),
		publisher.WithAppendTimeout(cfg.Kafka.DeliveryTimeout),
		publisher.WithLogger(log),
	)
	return pub, func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), eventFlushTimeout)
		defer cancel()
		if err := pub.Close(flushCtx); err != nil {
			log.Warn("run events not fully flushed", "dropped", pub.Dropped(), "error", err)
		}
		release()
	}, nil
}
