package config

import (
	"errors"
	"os"
	"time"

	"github.com/spf13/viper"
)

// viper keys and their defaults.
const (
	keyFocusDuration  = "focus.duration"
	keyFocusMessage   = "focus.message"
	keyFocusSound     = "focus.sound"
	keyFocusColor     = "focus.color"
	keyRestDuration   = "rest.duration"
	keyRestMessage    = "rest.message"
	keyRestSound      = "rest.sound"
	keyRestColor      = "rest.color"
	keyMonitorEnabled = "monitor.enabled"
	keyMonitorLambda  = "monitor.lambda"
	keyMonitorTimeout = "monitor.prompt_timeout"
	keyMonitorSound   = "monitor.sound"
	keyAutoStartRest  = "settings.auto_start_rest"
	keyAutoStartFocus = "settings.auto_start_focus"
	keySoundOnBreak   = "settings.sound_on_break"
	keyAmbientSound   = "settings.ambient_sound"
	keySessionCmd     = "settings.cmd"
	keyTwentyFourHour = "settings.24hr_clock"
	keyNotifyEnabled  = "notifications.enabled"
	keyDarkTheme      = "display.dark_theme"
)

const (
	defaultFocusDuration = 25 * time.Minute
	defaultRestDuration  = 5 * time.Minute
	defaultLambda        = 0.5
	defaultPromptTimeout = 15 * time.Second
)

// WithViperConfig returns an Option that loads configuration from the
// YAML file at configPath, writing a default file first if none exists.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setViperDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return loadViperConfig(v, c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		// carry values gathered by an earlier option (the first-run
		// prompt) into the file about to be written
		if c.Focus.Duration != 0 {
			v.Set(keyFocusDuration, c.Focus.Duration.String())
		}

		if c.Rest.Duration != 0 {
			v.Set(keyRestDuration, c.Rest.Duration.String())
		}

		if c.Monitor.Lambda != 0 {
			v.Set(keyMonitorLambda, c.Monitor.Lambda)
			v.Set(keyMonitorEnabled, c.Monitor.Enabled)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return loadViperConfig(v, c)
	}
}

func setViperDefaults(v *viper.Viper) {
	v.SetDefault(keyFocusDuration, defaultFocusDuration.String())
	v.SetDefault(keyFocusMessage, "Focus on your task")
	v.SetDefault(keyFocusColor, "#B0DB43")
	v.SetDefault(keyFocusSound, "loud_bell")
	v.SetDefault(keyRestDuration, defaultRestDuration.String())
	v.SetDefault(keyRestMessage, "Take a breather")
	v.SetDefault(keyRestColor, "#12EAEA")
	v.SetDefault(keyRestSound, "bell")
	v.SetDefault(keyMonitorEnabled, true)
	v.SetDefault(keyMonitorLambda, defaultLambda)
	v.SetDefault(keyMonitorTimeout, defaultPromptTimeout.String())
	v.SetDefault(keyMonitorSound, "bell")
	v.SetDefault(keyAutoStartRest, true)
	v.SetDefault(keyAutoStartFocus, false)
	v.SetDefault(keySoundOnBreak, false)
	v.SetDefault(keyAmbientSound, "")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyTwentyFourHour, false)
	v.SetDefault(keyNotifyEnabled, true)
	v.SetDefault(keyDarkTheme, true)
}

// loadViperConfig copies values out of Viper into the Config struct.
// Durations are parsed explicitly so that plain numbers in the config
// file are interpreted as minutes.
func loadViperConfig(v *viper.Viper, c *Config) error {
	focusDur, err := parseDuration(v.GetString(keyFocusDuration))
	if err != nil {
		return errInvalidDurationValue.Fmt(v.GetString(keyFocusDuration))
	}

	restDur, err := parseDuration(v.GetString(keyRestDuration))
	if err != nil {
		return errInvalidDurationValue.Fmt(v.GetString(keyRestDuration))
	}

	promptTimeout, err := parseDuration(v.GetString(keyMonitorTimeout))
	if err != nil {
		return errInvalidDurationValue.Fmt(v.GetString(keyMonitorTimeout))
	}

	c.Focus = SessionConfig{
		Duration: focusDur,
		Message:  v.GetString(keyFocusMessage),
		Color:    v.GetString(keyFocusColor),
		Sound:    v.GetString(keyFocusSound),
	}

	c.Rest = SessionConfig{
		Duration: restDur,
		Message:  v.GetString(keyRestMessage),
		Color:    v.GetString(keyRestColor),
		Sound:    v.GetString(keyRestSound),
	}

	c.Monitor = MonitorConfig{
		Enabled:       v.GetBool(keyMonitorEnabled),
		Lambda:        v.GetFloat64(keyMonitorLambda),
		PromptTimeout: promptTimeout,
		Sound:         v.GetString(keyMonitorSound),
	}

	c.Settings = SettingsConfig{
		AutoStartRest:  v.GetBool(keyAutoStartRest),
		AutoStartFocus: v.GetBool(keyAutoStartFocus),
		SoundOnBreak:   v.GetBool(keySoundOnBreak),
		AmbientSound:   v.GetString(keyAmbientSound),
		Cmd:            v.GetString(keySessionCmd),
		TwentyFourHour: v.GetBool(keyTwentyFourHour),
	}

	c.Notifications = NotificationConfig{
		Enabled: v.GetBool(keyNotifyEnabled),
	}

	c.Display = DisplayConfig{
		DarkTheme: v.GetBool(keyDarkTheme),
	}

	return nil
}

// parseDuration accepts either a Go duration string or a bare number of
// minutes.
func parseDuration(s string) (time.Duration, error) {
	dur, err := time.ParseDuration(s)
	if err == nil {
		return dur, nil
	}

	mins, err := time.ParseDuration(s + "m")
	if err != nil {
		return 0, err
	}

	return mins, nil
}
