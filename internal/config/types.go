// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	// minTimeoutSeconds is the lowest accepted fetch timeout.
	minTimeoutSeconds = 1
	// maxTimeoutSeconds is the highest accepted fetch timeout (one hour).
	maxTimeoutSeconds = 3600
)

// ErrInvalidTimeout is the sentinel error wrapped by InvalidTimeoutError.
var ErrInvalidTimeout = errors.New("invalid fetch timeout")

type (
	// Config is the full omniboot configuration.
	Config struct {
		Network     NetworkConfig     `mapstructure:"network"`
		Interpreter InterpreterConfig `mapstructure:"interpreter"`
		UI          UIConfig          `mapstructure:"ui"`
	}

	// NetworkConfig controls the launcher fetch.
	NetworkConfig struct {
		// TimeoutSeconds bounds the single launcher GET end to end.
		TimeoutSeconds int `mapstructure:"timeout_seconds"`
	}

	// InterpreterConfig controls how the launcher is executed.
	InterpreterConfig struct {
		// Path overrides the platform interpreter lookup when non-empty.
		Path string `mapstructure:"path"`
	}

	// UIConfig holds output settings.
	UIConfig struct {
		Verbose bool `mapstructure:"verbose"`
	}

	// InvalidTimeoutError is returned when TimeoutSeconds is outside the
	// accepted range. It wraps ErrInvalidTimeout for errors.Is compatibility.
	InvalidTimeoutError struct {
		Value int
	}
)

// Error implements the error interface.
func (e *InvalidTimeoutError) Error() string {
	return fmt.Sprintf("invalid fetch timeout %d: must be between %d and %d seconds",
		e.Value, minTimeoutSeconds, maxTimeoutSeconds)
}

// Unwrap returns ErrInvalidTimeout so callers can use errors.Is for
// programmatic detection.
func (e *InvalidTimeoutError) Unwrap() error { return ErrInvalidTimeout }

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Network: NetworkConfig{
			TimeoutSeconds: 60,
		},
	}
}

// Timeout returns the fetch timeout as a time.Duration.
func (n NetworkConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// Validate checks constraints the CUE schema also expresses, covering values
// that arrive without passing through a config file.
func (c *Config) Validate() error {
	if c.Network.TimeoutSeconds < minTimeoutSeconds || c.Network.TimeoutSeconds > maxTimeoutSeconds {
		return &InvalidTimeoutError{Value: c.Network.TimeoutSeconds}
	}
	return nil
}
