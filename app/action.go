package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/logger"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/ui"
	"github.com/xuxu777xu/random-prompt-focus-app/stats"
	"github.com/xuxu777xu/random-prompt-focus-app/store"
	"github.com/xuxu777xu/random-prompt-focus-app/timer"
)

const (
	envNoColor      = "NO_COLOR"
	envVigilNoColor = "VIGIL_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if
// all arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// timerConfig assembles the timer configuration from the config file,
// the first-run prompt, and command-line flags.
func timerConfig(ctx *cli.Context) (*config.Config, error) {
	return config.New(
		config.WithPromptConfig(config.ConfigFilePath()),
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)
}

// sessionHelper retrieves the sessions matching the filter flags.
func sessionHelper(
	ctx *cli.Context,
) ([]session.Session, *store.Client, error) {
	conf, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	sessions, err := db.GetSessions(conf.StartTime, conf.EndTime, conf.Tags)
	if err != nil {
		return nil, nil, err
	}

	return sessions, db, nil
}

// deleteAction handles the delete command which deletes one or more
// sessions.
func deleteAction(ctx *cli.Context) error {
	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	return delSessions(db, sessions)
}

// editConfigAction handles the edit-config command which opens the
// config file in the user's default text editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

// listAction handles the list command and prints a table of all the
// sessions started within a time period.
func listAction(ctx *cli.Context) error {
	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	if ctx.Bool("json") {
		b, err := json.Marshal(sessions)
		if err != nil {
			return err
		}

		pterm.Println(string(b))

		return nil
	}

	return listSessions(sessions)
}

// statsAction computes the stats for the specified time period.
func statsAction(ctx *cli.Context) error {
	sessions, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer db.Close()

	opts, err := config.Filter(ctx)
	if err != nil {
		return err
	}

	s := &stats.Stats{
		Opts: opts,
	}

	s.Compute(sessions)

	if ctx.Bool("json") {
		b, err := s.ToJSON()
		if err != nil {
			return err
		}

		fmt.Println(string(b))

		return nil
	}

	s.Print()

	return nil
}

// statusAction handles the status command and prints the status of the
// currently running timer.
func statusAction(_ *cli.Context) error {
	return timer.ReportStatus()
}

// defaultAction starts the timer.
func defaultAction(ctx *cli.Context) error {
	cfg, err := timerConfig(ctx)
	if err != nil {
		return err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	dbClient, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return err
	}

	defer dbClient.Close()

	t, err := timer.New(dbClient, cfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(t)

	_, err = p.Run()

	return err
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	logger.Init(config.LogFilePath())

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if VIGIL_NO_COLOR is set
	if _, exists := os.LookupEnv(envVigilNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting vigil")

	return nil
}
