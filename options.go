package sfload

import "go.uber.org/zap"

// Config holds the loader configuration.
type Config struct {
	// Clock is the time source for protocol delays and the DONE
	// deadline.
	Clock Clock

	// Logger receives progress and failure diagnostics (optional).
	Logger *zap.Logger
}

func defaultConfig() Config {
	return Config{
		Clock:  systemClock{},
		Logger: zap.NewNop(),
	}
}

// Option is a functional option for configuring the Loader.
type Option func(*Config)

// WithClock substitutes the time source, letting tests drive the
// protocol under simulated time.
func WithClock(clk Clock) Option {
	return func(c *Config) {
		if clk != nil {
			c.Clock = clk
		}
	}
}

// WithLogger sets a logger for load diagnostics.
//
// Example:
//
//	l := sfload.New(port, sfload.WithLogger(logger))
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		if logger != nil {
			c.Logger = logger
		}
	}
}
