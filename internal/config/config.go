// Package config is responsible for assembling the program configuration
// from the config file, interactive prompts, and command-line arguments
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

type (
	// Config holds all configuration settings.
	Config struct {
		Focus         SessionConfig      `mapstructure:"focus"`
		Rest          SessionConfig      `mapstructure:"rest"`
		Monitor       MonitorConfig      `mapstructure:"monitor"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// SessionConfig holds the settings for one session kind.
	SessionConfig struct {
		Message  string        `mapstructure:"message"`
		Color    string        `mapstructure:"color"`
		Sound    string        `mapstructure:"sound"`
		Duration time.Duration `mapstructure:"duration"`
	}

	// MonitorConfig holds attention-monitoring settings. Lambda is the
	// rate parameter for prompt interval sampling; larger values mean
	// shorter average intervals.
	MonitorConfig struct {
		Sound         string        `mapstructure:"sound"`
		Lambda        float64       `mapstructure:"lambda"`
		PromptTimeout time.Duration `mapstructure:"prompt_timeout"`
		Enabled       bool          `mapstructure:"enabled"`
	}

	// SettingsConfig holds general behaviour settings.
	SettingsConfig struct {
		AmbientSound   string `mapstructure:"ambient_sound"`
		Cmd            string `mapstructure:"cmd"`
		AutoStartRest  bool   `mapstructure:"auto_start_rest"`
		AutoStartFocus bool   `mapstructure:"auto_start_focus"`
		SoundOnBreak   bool   `mapstructure:"sound_on_break"`
		TwentyFourHour bool   `mapstructure:"24hr_clock"`
	}

	// NotificationConfig holds desktop notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
	}

	// DisplayConfig holds display-related settings.
	DisplayConfig struct {
		DarkTheme bool `mapstructure:"dark_theme"`
	}

	// CLIConfig holds per-invocation values that never come from the
	// config file.
	CLIConfig struct {
		Tags  []string
		Notes string
	}

	// Option is a function that modifies Config.
	Option func(*Config) error
)

const Version = "v0.3.1"

// SoundOff disables a sound when used as its configured value.
const SoundOff = "off"

var (
	configDir      = "vigil"
	configFileName = "config.yml"
	dbFileName     = "vigil.db"
	statusFileName = "status.json"
	logFileName    = "vigil.log"
	dbFilePath     string
	configFilePath string
	statusFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func StatusFilePath() string {
	return statusFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// SoundPath returns the directory that holds sound files.
func SoundPath() string {
	return filepath.Join(xdg.DataHome, configDir, "sounds")
}

// InitializePaths computes the absolute paths for the config file, the
// database, the status file, and the log file. A non-empty VIGIL_ENV
// suffixes every file name so that tests and development runs never
// touch real data.
func InitializePaths() {
	env := strings.TrimSpace(os.Getenv("VIGIL_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("vigil_%s.db", env)
		statusFileName = fmt.Sprintf("status_%s.json", env)
		logFileName = fmt.Sprintf("vigil_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	statusFilePath = filepath.Join(dataDir, statusFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// Duration returns the configured planned duration for a session kind.
func (c *Config) Duration(kind session.Kind) time.Duration {
	if kind == session.Focus {
		return c.Focus.Duration
	}

	return c.Rest.Duration
}

// Message returns the configured message for a session kind.
func (c *Config) Message(kind session.Kind) string {
	if kind == session.Focus {
		return c.Focus.Message
	}

	return c.Rest.Message
}

// New creates a new Config with the provided options applied in order,
// then validates the result.
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
