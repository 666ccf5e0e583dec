package app

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/ui"
)

const noSessionsMsg = "No sessions found for the specified time range"

func statusText(status session.Status) string {
	switch status {
	case session.Completed:
		return ui.Green(status)
	case session.Interrupted:
		return ui.Red(status)
	case session.Cancelled:
		return ui.Yellow(status)
	default:
		return string(status)
	}
}

// printSessionsTable prints a session table to the command-line.
func printSessionsTable(w io.Writer, sessions []session.Session) {
	tableBody := make([][]string, len(sessions))

	for i := range sessions {
		sess := &sessions[i]

		endDate := sess.EndTime.Format("Jan 02, 2006 03:04 PM")
		if sess.EndTime.IsZero() {
			endDate = ""
		}

		tags := strings.Join(sess.Tags, " · ")

		kind := "focus"
		if sess.Kind == session.Rest {
			kind = "rest"
		}

		row := []string{
			fmt.Sprintf("%d", sess.ID),
			sess.StartTime.Format("Jan 02, 2006 03:04 PM"),
			endDate,
			kind,
			fmt.Sprintf("%d", sess.DistractionCount),
			tags,
			statusText(sess.Status),
		}

		tableBody[i] = row
	}

	tableBody = append([][]string{
		{
			"#",
			"START DATE",
			"END DATE",
			"KIND",
			"DISTRACTIONS",
			"TAGS",
			"STATUS",
		},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// listSessions prints out a table of sessions.
func listSessions(sessions []session.Session) error {
	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(os.Stdout, sessions)

	return nil
}
