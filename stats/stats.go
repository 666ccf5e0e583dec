// Package stats reports focus session statistics
package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/maruel/natural"
	"github.com/pterm/pterm"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/timeutil"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/ui"
)

const noSessionsMsg = "No sessions found for the specified time range"

// Summary holds the aggregated numbers for a reporting period.
type Summary struct {
	Tags                map[string]time.Duration `json:"tags"`
	StartTime           time.Time                `json:"start_time"`
	EndTime             time.Time                `json:"end_time"`
	FocusTime           time.Duration            `json:"focus_time"`
	RestTime            time.Duration            `json:"rest_time"`
	Completed           int                      `json:"completed"`
	Interrupted         int                      `json:"interrupted"`
	Cancelled           int                      `json:"cancelled"`
	Distractions        int                      `json:"distractions"`
	DistractionsPerHour float64                  `json:"distractions_per_hour"`
	TotalSessions       int                      `json:"total_sessions"`
}

// Stats computes and renders session statistics.
type Stats struct {
	Opts    *config.FilterConfig
	Summary Summary
}

// Compute folds the given sessions into a summary. Only focus sessions
// contribute to focus time and distraction figures.
func (s *Stats) Compute(sessions []session.Session) {
	summary := Summary{
		Tags:      make(map[string]time.Duration),
		StartTime: s.Opts.StartTime,
		EndTime:   s.Opts.EndTime,
	}

	for i := range sessions {
		sess := &sessions[i]

		summary.TotalSessions++

		switch sess.Status {
		case session.Completed:
			summary.Completed++
		case session.Interrupted:
			summary.Interrupted++
		case session.Cancelled:
			summary.Cancelled++
		}

		if sess.Kind == session.Focus {
			summary.FocusTime += sess.ActualDuration
			summary.Distractions += sess.DistractionCount

			for _, tag := range sess.Tags {
				summary.Tags[tag] += sess.ActualDuration
			}
		} else {
			summary.RestTime += sess.ActualDuration
		}
	}

	hours := summary.FocusTime.Hours()
	if hours > 0 {
		summary.DistractionsPerHour = float64(summary.Distractions) / hours
	}

	s.Summary = summary
}

// ToJSON renders the computed summary as JSON.
func (s *Stats) ToJSON() ([]byte, error) {
	return json.Marshal(s.Summary)
}

func formatDuration(d time.Duration) string {
	mins, _ := timeutil.SecsToMinsAndSecs(d.Seconds())

	hours := mins / 60
	mins %= 60

	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}

	return fmt.Sprintf("%dh %dm", hours, mins)
}

// sortedTags returns the tag names in natural order so that numbered
// tags like task2 and task10 sort the way a human expects.
func (s *Stats) sortedTags() []string {
	tags := make([]string, 0, len(s.Summary.Tags))
	for tag := range s.Summary.Tags {
		tags = append(tags, tag)
	}

	slices.SortFunc(tags, func(a, b string) int {
		if natural.Less(a, b) {
			return -1
		}

		if natural.Less(b, a) {
			return 1
		}

		return 0
	})

	return tags
}

// Print writes the summary tables to stdout.
func (s *Stats) Print() {
	if s.Summary.TotalSessions == 0 {
		pterm.Info.Println(noSessionsMsg)
		return
	}

	pterm.Printfln(
		"%s to %s",
		ui.Highlight(s.Summary.StartTime.Format("Jan 02, 2006")),
		ui.Highlight(s.Summary.EndTime.Format("Jan 02, 2006")),
	)

	data := [][]string{
		{"METRIC", "VALUE"},
		{"Total sessions", strconv.Itoa(s.Summary.TotalSessions)},
		{"Completed", ui.Green(s.Summary.Completed)},
		{"Interrupted", ui.Red(s.Summary.Interrupted)},
		{"Cancelled", ui.Yellow(s.Summary.Cancelled)},
		{"Focus time", formatDuration(s.Summary.FocusTime)},
		{"Rest time", formatDuration(s.Summary.RestTime)},
		{"Distractions", strconv.Itoa(s.Summary.Distractions)},
		{
			"Distractions per hour",
			fmt.Sprintf("%.1f", s.Summary.DistractionsPerHour),
		},
	}

	ui.PrintTable(data, os.Stdout)

	if len(s.Summary.Tags) == 0 {
		return
	}

	tagData := [][]string{{"TAG", "FOCUS TIME"}}

	for _, tag := range s.sortedTags() {
		tagData = append(tagData, []string{
			tag,
			formatDuration(s.Summary.Tags[tag]),
		})
	}

	ui.PrintTable(tagData, os.Stdout)
}
