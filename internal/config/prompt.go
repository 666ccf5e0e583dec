package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
)

const asciiLogo = `
██╗   ██╗██╗ ██████╗ ██╗██╗
██║   ██║██║██╔════╝ ██║██║
██║   ██║██║██║  ███╗██║██║
╚██╗ ██╔╝██║██║   ██║██║██║
 ╚████╔╝ ██║╚██████╔╝██║███████╗
  ╚═══╝  ╚═╝ ╚═════╝ ╚═╝╚══════╝`

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	FocusMinutes     int
	RestMinutes      int
	MonitorEnabled   bool
	MonitorFrequency float64
}

// WithPromptConfig returns an Option that configures the most important
// settings interactively. It runs only when the config file does not
// exist yet, and never in the testing environment.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		if os.Getenv("VIGIL_ENV") == "testing" {
			return nil
		}

		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		applyPromptOptions(c, opts)

		return nil
	}
}

// promptUser handles the interactive first-run configuration.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		FocusMinutes:     int(defaultFocusDuration.Minutes()),
		RestMinutes:      int(defaultRestDuration.Minutes()),
		MonitorEnabled:   true,
		MonitorFrequency: defaultLambda,
	}

	pterm.Println(asciiLogo)

	_ = putils.BulletListFromString(`Follow the prompts below to configure Vigil for the first time.
Select your preferred value, or press ENTER to accept the defaults.
Edit the config file with 'vigil edit-config' to change any settings.`, " ").
		Render()

	focusStr := strconv.Itoa(opts.FocusMinutes)
	restStr := strconv.Itoa(opts.RestMinutes)

	validatePositiveInt := func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return errors.New("expected an integer greater than zero")
		}

		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Focus length in minutes").
				Value(&focusStr).
				Validate(validatePositiveInt),
			huh.NewInput().
				Title("Rest length in minutes").
				Value(&restStr).
				Validate(validatePositiveInt),
			huh.NewConfirm().
				Title("Enable random attention check-ins during focus sessions?").
				Value(&opts.MonitorEnabled),
		),
	)

	if err := form.Run(); err != nil {
		return opts, err
	}

	opts.FocusMinutes, _ = strconv.Atoi(focusStr)
	opts.RestMinutes, _ = strconv.Atoi(restStr)

	return opts, nil
}

func applyPromptOptions(c *Config, opts PromptOptions) {
	c.Focus.Duration = time.Duration(opts.FocusMinutes) * time.Minute
	c.Rest.Duration = time.Duration(opts.RestMinutes) * time.Minute
	c.Monitor.Enabled = opts.MonitorEnabled

	if opts.MonitorFrequency > 0 {
		c.Monitor.Lambda = opts.MonitorFrequency
	}
}
