package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration options.
type CLIOptions struct {
	Focus          string
	Rest           string
	Lambda         string
	PromptTimeout  string
	Tags           string
	Notes          string
	AmbientSound   string
	SessionCmd     string
	DisableNotify  bool
	DisableMonitor bool
	SoundOnBreak   bool
}

// WithCLIConfig returns an Option that overlays configuration from CLI
// flags onto values already loaded from the config file.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			Focus:          ctx.String("focus"),
			Rest:           ctx.String("rest"),
			Lambda:         ctx.String("lambda"),
			PromptTimeout:  ctx.String("prompt-timeout"),
			Tags:           ctx.String("tag"),
			Notes:          ctx.String("note"),
			AmbientSound:   ctx.String("sound"),
			SessionCmd:     ctx.String("session-cmd"),
			DisableNotify:  ctx.Bool("disable-notification"),
			DisableMonitor: ctx.Bool("disable-monitor"),
			SoundOnBreak:   ctx.Bool("sound-on-break"),
		}

		return applyCLIOptions(c, opts)
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) error {
	if err := applyCLIDurations(c, opts); err != nil {
		return err
	}

	if opts.Lambda != "" {
		lambda, err := strconv.ParseFloat(opts.Lambda, 64)
		if err != nil {
			return errInvalidLambdaValue.Fmt(opts.Lambda)
		}

		c.Monitor.Lambda = lambda
	}

	if opts.Tags != "" {
		c.CLI.Tags = splitAndTrimTags(opts.Tags)
	}

	c.CLI.Notes = opts.Notes

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.DisableMonitor {
		c.Monitor.Enabled = false
	}

	if opts.SoundOnBreak {
		c.Settings.SoundOnBreak = true
	}

	if opts.AmbientSound != "" {
		if opts.AmbientSound == SoundOff {
			c.Settings.AmbientSound = ""
		} else {
			c.Settings.AmbientSound = opts.AmbientSound
		}
	}

	if opts.SessionCmd != "" {
		c.Settings.Cmd = opts.SessionCmd
	}

	return nil
}

// applyCLIDurations handles parsing and applying duration settings from
// the CLI.
func applyCLIDurations(c *Config, opts CLIOptions) error {
	if opts.Focus != "" {
		dur, err := time.ParseDuration(opts.Focus)
		if err != nil {
			return errInvalidCLIDuration.Fmt("focus", err)
		}

		c.Focus.Duration = dur
	}

	if opts.Rest != "" {
		dur, err := time.ParseDuration(opts.Rest)
		if err != nil {
			return errInvalidCLIDuration.Fmt("rest", err)
		}

		c.Rest.Duration = dur
	}

	if opts.PromptTimeout != "" {
		dur, err := time.ParseDuration(opts.PromptTimeout)
		if err != nil {
			return errInvalidCLIDuration.Fmt("prompt-timeout", err)
		}

		c.Monitor.PromptTimeout = dur
	}

	return nil
}

// splitAndTrimTags splits a comma-separated tag string and trims
// whitespace.
func splitAndTrimTags(tags string) []string {
	split := strings.Split(tags, ",")

	trimmed := make([]string, len(split))

	for i, tag := range split {
		trimmed[i] = strings.TrimSpace(tag)
	}

	return trimmed
}
