package processing

import (
	"log/slog"

	"onboard/internal/processing/metrics"
)

type strategyConfig struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// StrategyOption configures optional collaborators on a strategy.
type StrategyOption func(*strategyConfig)

func WithStrategyLogger(logger *slog.Logger) StrategyOption {
	return func(c *strategyConfig) {
		c.logger = logger
	}
}

func WithStrategyMetrics(m *metrics.Metrics) StrategyOption {
	return func(c *strategyConfig) {
		c.metrics = m
	}
}

func applyStrategyOptions(opts []StrategyOption) *strategyConfig {
	cfg := &strategyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
