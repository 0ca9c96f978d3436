package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/greenseoul/urban-cooling-engine/internal/domain"
	"github.com/greenseoul/urban-cooling-engine/internal/observability"
)

// MissionSink publishes a batch of generated missions downstream.
type MissionSink interface {
	PublishBatch(ctx context.Context, missions []domain.GeneratedMission) error
}

// Pipeline runs the batch generation loop on a fixed interval.
type Pipeline struct {
	analyzer *Analyzer
	sink     MissionSink
	logger   *slog.Logger
	metrics  *observability.Metrics
	ready    atomic.Bool
	topN     int
	interval time.Duration
}

// New creates a Pipeline. Pass a nil sink to log missions without
// publishing them.
func New(a *Analyzer, sink MissionSink, logger *slog.Logger, metrics *observability.Metrics, topN int, interval time.Duration) *Pipeline {
	return &Pipeline{
		analyzer: a,
		sink:     sink,
		logger:   logger,
		metrics:  metrics,
		topN:     topN,
		interval: interval,
	}
}

// CheckReadiness returns nil once the pipeline has completed at least one
// batch cycle, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no batch cycle has completed yet")
	}
	return nil
}

// Run executes batch cycles until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "top_n", p.topN, "interval", p.interval)
	p.metrics.EngineRunning.Set(1)
	defer p.metrics.EngineRunning.Set(0)

	// Exponential backoff: start at 200ms, double each retry, cap at 5s.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if err := p.runCycle(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.logger.Error("batch cycle failed", "error", err)
			if !sleepWithContext(ctx, backoff) {
				return nil
			}
			backoff = nextBackoff(backoff, maxBackoff)
			continue
		}

		backoff = 200 * time.Millisecond
		p.ready.Store(true)
		if !sleepWithContext(ctx, p.interval) {
			return nil
		}
	}
}

// runCycle generates one batch and publishes it.
func (p *Pipeline) runCycle(ctx context.Context) error {
	start := time.Now()

	missions, err := p.analyzer.GenerateBatch(ctx, p.topN)
	if err != nil {
		return err
	}

	if p.sink != nil {
		if err := p.sink.PublishBatch(ctx, missions); err != nil {
			return err
		}
	}

	p.metrics.BatchSize.Observe(float64(len(missions)))
	p.metrics.BatchDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("batch cycle complete", "missions", len(missions), "duration", time.Since(start))
	return nil
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
