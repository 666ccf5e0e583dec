package timer

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	btimer "github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/davecgh/go-spew/spew"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

// handleTimerTick processes the clock's one-second ticks, advancing the
// countdown by the same amount.
func (t *Timer) handleTimerTick(msg btimer.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	_ = t.ctrl.Tick()

	t.processEvents()

	if t.ctrl.Status() == session.Stopped {
		// the session completed naturally on this tick
		return t, tea.Batch(cmd, t.postSession())
	}

	if t.ctrl.Status() == session.Running && t.ctrl.Current() != nil &&
		t.clock.Timedout() {
		// auto-start rolled straight into the next session
		return t, tea.Batch(cmd, t.postSession())
	}

	return t, cmd
}

// handleTimerStartStop keeps the clock and the ambient sound in step
// with pause and resume.
func (t *Timer) handleTimerStartStop(
	msg btimer.StartStopMsg,
) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	t.clock, cmd = t.clock.Update(msg)

	if t.SoundStream != nil {
		if !t.clock.Running() {
			_ = speaker.Suspend()
		} else {
			_ = speaker.Resume()
		}
	}

	return t, cmd
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, defaultKeymap.enter):
		if t.waitForNextSession {
			t.waitForNextSession = false

			return t, t.initSession(t.ctrl.NextKind())
		}

		return t, nil

	case key.Matches(msg, defaultKeymap.yes):
		t.ctrl.RespondToPrompt(true)

		t.processEvents()

		return t, t.armMonitorTimer()

	case key.Matches(msg, defaultKeymap.no):
		t.ctrl.RespondToPrompt(false)

		t.processEvents()

		return t, t.armMonitorTimer()

	case key.Matches(msg, defaultKeymap.togglePlay):
		if t.ctrl.Status() == session.Running {
			_ = t.ctrl.Pause()
		} else if t.ctrl.Status() == session.Paused {
			_ = t.ctrl.Resume()

			cmd = t.armMonitorTimer()
		}

		t.processEvents()

		return t, tea.Batch(t.clock.Toggle(), cmd)

	case key.Matches(msg, defaultKeymap.skip):
		if t.ctrl.Status() != session.Running &&
			t.ctrl.Status() != session.Paused {
			return t, nil
		}

		_ = t.ctrl.Skip()

		t.processEvents()

		return t, tea.Batch(t.clock.Stop(), t.postSession())

	case key.Matches(msg, defaultKeymap.quit):
		_ = t.ctrl.Stop()

		t.processEvents()

		return t, tea.Batch(tea.ClearScreen, tea.Quit)
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case promptDueMsg, promptTimeoutMsg, tea.KeyMsg:
		slog.Debug(spew.Sdump(msg))
	}

	switch msg := msg.(type) {
	case btimer.TickMsg:
		return t.handleTimerTick(msg)

	case btimer.StartStopMsg:
		return t.handleTimerStartStop(msg)

	case promptDueMsg:
		t.ctrl.HandlePromptDue(msg.gen)

		t.processEvents()

		return t, t.armMonitorTimer()

	case promptTimeoutMsg:
		t.ctrl.HandlePromptTimeout(msg.gen)

		t.processEvents()

		return t, t.armMonitorTimer()

	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = msg.Width - padding*2 - 4
		if t.progress.Width > maxWidth {
			t.progress.Width = maxWidth
		}

		return t, nil

		// FrameMsg is sent when the progress bar wants to animate
		// itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
