// Package config loads engine settings from environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all engine settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Kafka mission sink configuration.
	KafkaBrokers   []string
	KafkaSinkTopic string
	KafkaEnabled   bool

	// Climate platform (WFS) configuration.
	ClimateBaseURL  string
	ClimateAPIKey   string
	ClimateTimeout  time.Duration
	ClimateCacheLen int
	ClimateCacheTTL time.Duration
	ClimateFallback bool

	// Synthetic provider configuration.
	UseMockData bool
	MockSeed    int64

	// Batch cycle configuration.
	BatchTopN     int
	BatchInterval time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	climateTimeout, err := parseDuration("CLIMATE_TIMEOUT", "5s")
	if err != nil {
		return nil, err
	}

	cacheTTL, err := parseDuration("CLIMATE_CACHE_TTL", "10m")
	if err != nil {
		return nil, err
	}

	batchInterval, err := parseDuration("BATCH_INTERVAL", "1h")
	if err != nil {
		return nil, err
	}

	topN, err := parsePositiveInt("BATCH_TOP_N", 3)
	if err != nil {
		return nil, err
	}

	cacheLen, err := parsePositiveInt("CLIMATE_CACHE_SIZE", 100)
	if err != nil {
		return nil, err
	}

	mockSeed, err := parseInt64("MOCK_SEED", 42)
	if err != nil {
		return nil, err
	}

	climateKey := os.Getenv("CLIMATE_API_KEY")
	useMock := climateKey == ""
	if v := os.Getenv("USE_MOCK_DATA"); v != "" {
		useMock = v == "true"
	}

	cfg := &Config{
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		KafkaBrokers:   splitBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic: envOrDefault("KAFKA_SINK_TOPIC", "cooling-missions"),
		KafkaEnabled:   os.Getenv("KAFKA_ENABLED") == "true",

		ClimateBaseURL:  envOrDefault("CLIMATE_API_BASE_URL", "https://gg.climate.go.kr/wfs"),
		ClimateAPIKey:   climateKey,
		ClimateTimeout:  climateTimeout,
		ClimateCacheLen: cacheLen,
		ClimateCacheTTL: cacheTTL,
		ClimateFallback: envOrDefault("CLIMATE_FALLBACK", "true") == "true",

		UseMockData: useMock,
		MockSeed:    mockSeed,

		BatchTopN:     topN,
		BatchInterval: batchInterval,
	}

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is empty")
	}
	if !cfg.UseMockData && cfg.ClimateAPIKey == "" {
		return nil, errors.New("USE_MOCK_DATA is false but CLIMATE_API_KEY is not set")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		if b := strings.TrimSpace(p); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}

func parseInt64(key string, fallback int64) (int64, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return n, nil
}
