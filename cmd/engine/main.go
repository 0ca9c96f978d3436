// Command engine runs the urban cooling analysis service: it periodically
// estimates heat-island severity for every Gyeonggi district, generates
// mitigation missions for the hottest ones, and publishes them to the
// configured Kafka sink topic.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	httpadapter "github.com/greenseoul/urban-cooling-engine/internal/adapter/http"
	kafkaadapter "github.com/greenseoul/urban-cooling-engine/internal/adapter/kafka"
	"github.com/greenseoul/urban-cooling-engine/internal/adapter/wfs"
	"github.com/greenseoul/urban-cooling-engine/internal/config"
	"github.com/greenseoul/urban-cooling-engine/internal/domain"
	"github.com/greenseoul/urban-cooling-engine/internal/observability"
	"github.com/greenseoul/urban-cooling-engine/internal/pipeline"
	"github.com/greenseoul/urban-cooling-engine/internal/provider"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	if err := domain.ValidateTemplates(); err != nil {
		logger.Error("mission template validation failed", "error", err)
		os.Exit(1)
	}

	prov := buildProvider(cfg, metrics, logger)
	analyzer := pipeline.NewAnalyzer(prov, logger, metrics)

	var sink pipeline.MissionSink
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		sink = writer
		logger.Info("kafka sink enabled", "topic", cfg.KafkaSinkTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("kafka sink disabled, missions are logged only")
	}

	p := pipeline.New(analyzer, sink, logger, metrics, cfg.BatchTopN, cfg.BatchInterval)

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Start HTTP server.
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	// Start the batch generation loop.
	go func() {
		if err := p.Run(ctx); err != nil {
			logger.Error("pipeline error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}

// buildProvider wires the indicator provider: synthetic in mock mode, the
// live climate platform (with cached park lookups and optional synthetic
// fallback) otherwise.
func buildProvider(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) domain.IndicatorProvider {
	clock := clockwork.NewRealClock()

	if cfg.UseMockData {
		logger.Info("using synthetic indicator data", "seed", cfg.MockSeed)
		return provider.NewSynthetic(cfg.MockSeed, clock)
	}

	client := wfs.NewClient(cfg.ClimateBaseURL, cfg.ClimateAPIKey, cfg.ClimateTimeout, logger)
	cached := wfs.NewCachedParkSource(client, cfg.ClimateCacheLen, cfg.ClimateCacheTTL, clock, metrics.ParkCacheLookups)

	var fallback *provider.Synthetic
	if cfg.ClimateFallback {
		fallback = provider.NewSynthetic(cfg.MockSeed, clock)
	}

	logger.Info("using live climate platform",
		"base_url", cfg.ClimateBaseURL,
		"cache_size", cfg.ClimateCacheLen,
		"cache_ttl", cfg.ClimateCacheTTL,
		"fallback", cfg.ClimateFallback,
	)
	return provider.NewClimate(cached, fallback, logger).
		WithMetrics(metrics.ProviderRequests, metrics.ProviderFallbacks)
}
