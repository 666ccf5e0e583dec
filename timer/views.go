package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

const (
	padding  = 2
	maxWidth = 80
)

var (
	baseStyle = lipgloss.NewStyle().Padding(1, padding)

	mainStyle = lipgloss.NewStyle().Bold(true)

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	restStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("75")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

func (t *Timer) kindView() string {
	sess := t.ctrl.Current()

	if sess.Kind == session.Focus {
		return focusStyle.Render("[Focus]") + " " + t.Opts.Focus.Message
	}

	return restStyle.Render("[Rest]") + " " + t.Opts.Rest.Message
}

// promptView renders a pending attention check.
func (t *Timer) promptView() string {
	var s strings.Builder

	s.WriteString(promptStyle.Render("Are you still focused?"))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{
		defaultKeymap.yes,
		defaultKeymap.no,
	}))

	return s.String()
}

func (t *Timer) sessionPromptView() string {
	var s strings.Builder

	title := "Your focus session is complete"
	msg := "It's time to take a well-deserved break!"

	if t.ctrl.NextKind() == session.Focus {
		title = "Your break is over"
		msg = "It's time to refocus and get back to work!"
	}

	s.WriteString(mainStyle.Render(title))
	s.WriteString("\n\n" + hintStyle.Render(msg))
	s.WriteString("\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.enter,
		defaultKeymap.quit,
	}),
	)

	return s.String()
}

func (t *Timer) timerView() string {
	var s strings.Builder

	sess := t.ctrl.Current()

	s.WriteString(t.kindView())

	var timeFormat string
	if t.Opts.Settings.TwentyFourHour {
		timeFormat = "15:04:05"
	} else {
		timeFormat = "03:04:05 PM"
	}

	if t.ctrl.Status() == session.Paused {
		s.WriteString(" " + hintStyle.Render("[Paused]"))
	} else {
		until := t.ctrl.Current().StartTime.Add(sess.PlannedDuration)

		s.WriteString(
			" " + hintStyle.Render("until "+until.Format(timeFormat)),
		)
	}

	if sess.Kind == session.Focus && sess.DistractionCount > 0 {
		s.WriteString(
			" " + hintStyle.Render(
				fmt.Sprintf("(%d distractions)", sess.DistractionCount),
			),
		)
	}

	s.WriteString("\n\n")
	s.WriteString(mainStyle.Render(t.ctrl.FormatRemaining()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(t.ctrl.Progress()))

	if t.ctrl.Monitor().Prompting() {
		s.WriteString("\n\n")
		s.WriteString(t.promptView())

		return s.String()
	}

	s.WriteString(t.sessionHelpView())

	return s.String()
}

func (t *Timer) sessionHelpView() string {
	return "\n\n" + t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.quit,
	})
}

func (t *Timer) View() string {
	if t.waitForNextSession {
		return baseStyle.Render(t.sessionPromptView())
	}

	if t.ctrl.Current() == nil || t.ctrl.Current().Finalized() {
		return ""
	}

	return baseStyle.Render(t.timerView())
}
