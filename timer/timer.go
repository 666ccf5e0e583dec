// Package timer operates the countdown for focus and rest sessions and
// schedules the randomized attention checks that interrupt them
package timer

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
	"go.etcd.io/bbolt"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
	"github.com/xuxu777xu/random-prompt-focus-app/store"
)

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	yes        key.Binding
	no         key.Binding
	enter      key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "play/pause"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "focused"),
	),
	no: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "distracted"),
	),
	enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "continue"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Timer is the bubbletea model that hosts the session controller and
// the attention monitor, translating timer and key messages into
// controller calls.
type Timer struct {
	db          store.DB
	ctrl        *Controller
	Opts        *config.Config
	SoundStream beep.Streamer

	clock    btimer.Model
	progress progress.Model
	help     help.Model

	waitForNextSession bool
}

// Status is the snapshot written to the status file while a timer is
// running, for consumption by the status command and external tools
// like status bars.
type Status struct {
	EndTime          time.Time      `json:"end_time"`
	Kind             session.Kind   `json:"kind"`
	Status           session.Status `json:"status"`
	Tags             []string       `json:"tags"`
	Remaining        string         `json:"remaining"`
	DistractionCount int            `json:"distraction_count"`
	Prompting        bool           `json:"prompting"`
}

// promptDueMsg fires when the randomized delay before the next
// attention check elapses.
type promptDueMsg struct {
	gen int
}

// promptTimeoutMsg fires when a raised prompt goes unanswered for the
// configured timeout.
type promptTimeoutMsg struct {
	gen int
}

// New creates a new timer.
func New(dbClient store.DB, cfg *config.Config) (*Timer, error) {
	t := &Timer{
		db:   dbClient,
		Opts: cfg,
		ctrl: NewController(
			dbClient,
			func() *config.Config { return cfg },
			nil,
			nil,
		),
		clock: btimer.New(cfg.Focus.Duration),
		help:  help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
		),
	}

	err := t.setAmbientSound()

	return t, err
}

// Init starts the first session.
func (t *Timer) Init() tea.Cmd {
	return t.initSession(t.ctrl.NextKind())
}

// initSession starts a session through the controller and arms the
// countdown clock and any monitor timer.
func (t *Timer) initSession(kind session.Kind) tea.Cmd {
	err := t.ctrl.Start(kind)
	if err != nil {
		return t.reportFatal(err)
	}

	t.clock = btimer.New(t.ctrl.Remaining())

	cmds := []tea.Cmd{t.clock.Init()}

	t.processEvents()

	if cmd := t.armMonitorTimer(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

func (t *Timer) reportFatal(err error) tea.Cmd {
	return func() tea.Msg {
		pterm.Error.Println(err)
		return tea.QuitMsg{}
	}
}

// armMonitorTimer converts the monitor's pending one-shot into a
// bubbletea command.
func (t *Timer) armMonitorTimer() tea.Cmd {
	pt, ok := t.ctrl.Monitor().NextTimer()
	if !ok {
		return nil
	}

	return tea.Tick(pt.Delay, func(_ time.Time) tea.Msg {
		if pt.Timeout() {
			return promptTimeoutMsg{gen: pt.Gen}
		}

		return promptDueMsg{gen: pt.Gen}
	})
}

// processEvents drains the controller's notifications and performs
// their side effects.
func (t *Timer) processEvents() {
	for _, ev := range t.ctrl.DrainEvents() {
		switch ev.Type {
		case EventSessionStarted:
			_ = t.writeStatusFile()

			t.playSessionSound(ev.Kind)

		case EventSessionCompleted:
			t.notify(ev.Kind)

			go func() {
				_ = t.runSessionCmd(t.Opts.Settings.Cmd)
			}()

		case EventPromptRaised:
			t.playPromptSound()

		case EventStateChanged:
			_ = t.writeStatusFile()
		}
	}
}

// postSession decides what happens after a session ends naturally:
// auto-start rolls straight into the next session, otherwise the timer
// waits for the user.
func (t *Timer) postSession() tea.Cmd {
	if t.ctrl.Status() == session.Running {
		// the controller auto-started the next session
		t.clock = btimer.New(t.ctrl.Remaining())

		cmds := []tea.Cmd{t.clock.Init()}

		if cmd := t.armMonitorTimer(); cmd != nil {
			cmds = append(cmds, cmd)
		}

		return tea.Batch(cmds...)
	}

	t.waitForNextSession = true

	_ = os.Remove(config.StatusFilePath())

	return nil
}

// notify sends a desktop notification when a session ends.
func (t *Timer) notify(ended session.Kind) {
	if !t.Opts.Notifications.Enabled {
		return
	}

	title := string(ended) + " is over"
	msg := t.Opts.Message(ended.Next())

	// pathToIcon will be an empty string if the file is not found
	pathToIcon, _ := xdg.SearchDataFile(
		filepath.Join(config.Dir(), "static", "icon.png"),
	)

	err := beeep.Notify(title, msg, pathToIcon)
	if err != nil {
		pterm.Error.Printfln("unable to display notification: %v", err)
	}
}

// runSessionCmd executes the configured command after a session ends.
func (t *Timer) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return fmt.Errorf("unable to parse session cmd option: %w", err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	cmd := exec.Command(name, args...)

	return cmd.Run()
}

func (t *Timer) writeStatusFile() error {
	sess := t.ctrl.Current()
	if sess == nil {
		return nil
	}

	s := Status{
		Kind:             sess.Kind,
		Status:           t.ctrl.Status(),
		Tags:             sess.Tags,
		EndTime:          time.Now().Add(t.ctrl.Remaining()),
		Remaining:        t.ctrl.FormatRemaining(),
		DistractionCount: sess.DistractionCount,
		Prompting:        t.ctrl.Monitor().Prompting(),
	}

	statusFilePath := config.StatusFilePath()

	statusFile, err := os.Create(statusFilePath)
	if err != nil {
		return err
	}

	defer func() {
		ferr := statusFile.Close()
		if ferr != nil {
			err = ferr
		}
	}()

	b, err := json.Marshal(s)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(statusFile)

	_, err = writer.Write(b)
	if err != nil {
		return err
	}

	return writer.Flush()
}

// ReportStatus reports the status of the currently running timer.
func ReportStatus() error {
	dbFilePath := config.DBFilePath()
	statusFilePath := config.StatusFilePath()

	var fileMode fs.FileMode = 0o600

	db, err := bbolt.Open(dbFilePath, fileMode, &bbolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// this means the timer is not running, so there is no status to
	// report
	if err == nil {
		return db.Close()
	}

	if !errors.Is(err, bbolt.ErrDatabaseOpen) &&
		!errors.Is(err, bbolt.ErrTimeout) {
		return err
	}

	fileBytes, err := os.ReadFile(statusFilePath)
	if err != nil {
		// a missing file should not return an error
		return nil
	}

	var s Status

	err = json.Unmarshal(fileBytes, &s)
	if err != nil {
		return err
	}

	if time.Until(s.EndTime) < 0 {
		return nil
	}

	text := fmt.Sprintf("[%s]", s.Kind)
	if s.Prompting {
		text += " (awaiting attention check)"
	}

	pterm.Printfln("%s: %s", text, s.Remaining)

	return nil
}
