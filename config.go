package timeit

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Config holds the configuration for a timing run.
type Config struct {
	threshold    time.Duration
	growthFactor int
	initialLoops int
	maxLoops     int
	output       io.Writer
	logger       *slog.Logger
	clock        Clock
}

// Option is a functional option for configuring timing runs.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() *Config {
	return &Config{
		threshold:    10 * time.Millisecond,
		growthFactor: 10,
		initialLoops: 1,
		output:       os.Stdout,
		logger:       nullLogger(),
		clock:        MonotonicClock(),
	}
}

// newConfig applies opts over the defaults and validates the result.
func newConfig(opts []Option) (*Config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.threshold <= 0:
		return fmt.Errorf("%w: threshold %v must be positive", ErrInvalidConfig, c.threshold)
	case c.growthFactor < 2:
		return fmt.Errorf("%w: growth factor %d must be at least 2", ErrInvalidConfig, c.growthFactor)
	case c.initialLoops < 1:
		return fmt.Errorf("%w: initial loops %d must be at least 1", ErrInvalidConfig, c.initialLoops)
	case c.maxLoops < 0:
		return fmt.Errorf("%w: max loops %d must not be negative", ErrInvalidConfig, c.maxLoops)
	case c.maxLoops > 0 && c.maxLoops < c.initialLoops:
		return fmt.Errorf("%w: max loops %d is below initial loops %d", ErrInvalidConfig, c.maxLoops, c.initialLoops)
	case c.output == nil:
		return fmt.Errorf("%w: nil output", ErrInvalidConfig)
	case c.clock == nil:
		return fmt.Errorf("%w: nil clock", ErrInvalidConfig)
	}
	return nil
}

// nullLogger returns a logger that discards all output.
func nullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// WithThreshold sets the minimum elapsed time a calibration trial must reach
// before its measurement is accepted.
// Default is 10ms.
func WithThreshold(d time.Duration) Option {
	return func(c *Config) {
		c.threshold = d
	}
}

// WithGrowthFactor sets the loop count multiplier applied after a trial that
// finished below the threshold.
// Default is 10.
func WithGrowthFactor(k int) Option {
	return func(c *Config) {
		c.growthFactor = k
	}
}

// WithInitialLoops sets the loop count of the first calibration trial.
// Default is 1.
func WithInitialLoops(n int) Option {
	return func(c *Config) {
		c.initialLoops = n
	}
}

// WithMaxLoops caps the loop count reached during calibration. When the next
// count would exceed n, the count is clamped to n and that trial is final
// even if it stays below the threshold.
// Default (0) leaves calibration unbounded.
func WithMaxLoops(n int) Option {
	return func(c *Config) {
		c.maxLoops = n
	}
}

// WithOutput sets where Timeit writes its report.
// Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(c *Config) {
		c.output = w
	}
}

// WithLogger sets the logger used for calibration debug output.
// A nil logger keeps the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces the monotonic clock. Intended for tests.
func WithClock(clk Clock) Option {
	return func(c *Config) {
		c.clock = clk
	}
}
