package config

import (
	"regexp"
	"strings"
	"time"
)

var (
	// Session duration constraints.
	minSessionDuration = 1 * time.Second
	maxSessionDuration = 720 * time.Minute // 12 hours

	// Lambda bounds. The upper bound keeps the average prompt interval
	// above a usable floor; anything at or below zero would yield an
	// undefined delay.
	minLambda = 0.01
	maxLambda = 10.0

	// Prompt timeout constraints.
	minPromptTimeout = 5 * time.Second
	maxPromptTimeout = 5 * time.Minute

	hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)
)

// Validate performs validation checks on the Config struct and its
// fields.
func (c *Config) Validate() error {
	if err := c.validateSessionConfig(c.Focus, "focus"); err != nil {
		return err
	}

	if err := c.validateSessionConfig(c.Rest, "rest"); err != nil {
		return err
	}

	return c.validateMonitor()
}

// validateSessionConfig validates an individual SessionConfig.
func (c *Config) validateSessionConfig(
	sc SessionConfig,
	kind string,
) error {
	if sc.Duration < minSessionDuration || sc.Duration > maxSessionDuration {
		return errInvalidDuration.Fmt(
			kind,
			minSessionDuration,
			maxSessionDuration,
		)
	}

	if strings.TrimSpace(sc.Message) == "" {
		return errEmptyMsg.Fmt(kind)
	}

	if !hexColorRegex.MatchString(sc.Color) {
		return errInvalidColor.Fmt(kind, sc.Color)
	}

	return nil
}

// validateMonitor validates the attention-monitoring settings. A lambda
// outside its bounds is rejected here so the scheduler can never be
// asked to sample from a degenerate distribution.
func (c *Config) validateMonitor() error {
	if !c.Monitor.Enabled {
		return nil
	}

	if c.Monitor.Lambda < minLambda || c.Monitor.Lambda > maxLambda {
		return errInvalidLambda.Fmt(c.Monitor.Lambda, minLambda, maxLambda)
	}

	if c.Monitor.PromptTimeout < minPromptTimeout ||
		c.Monitor.PromptTimeout > maxPromptTimeout {
		return errInvalidPromptTimeout.Fmt(
			c.Monitor.PromptTimeout,
			minPromptTimeout,
			maxPromptTimeout,
		)
	}

	return nil
}
