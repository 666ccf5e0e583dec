// Package app defines the command-line interface
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the vigil app instance.
func Get() *cli.App {
	vigilApp := &cli.App{
		Name: "vigil",
		Usage: `
		Vigil is a focus timer for the command-line that alternates focus
		sessions and rest breaks, and checks in at random intervals to ask
		whether you are still focused. Unanswered or negative check-ins are
		recorded as distractions so you can track how well you hold your
		attention over time.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
			{
				Name: "list",
				Usage: `
				List sessions started within a time period. Defaults to a
				reporting period of 7 days`,
				Action: listAction,
				Flags: []cli.Flag{
					jsonFlag,
					periodFlag,
					startTimeFlag,
					endTimeFlag,
					tagFlag,
				},
			},
			{
				Name: "stats",
				Usage: `
				Track your focus and distractions with statistics reporting.
				Defaults to a reporting period of 7 days`,
				Action: statsAction,
				Flags: []cli.Flag{
					jsonFlag,
					periodFlag,
					startTimeFlag,
					endTimeFlag,
					tagFlag,
				},
			},
			{
				Name:   "delete",
				Usage:  "Delete one or more sessions",
				Action: deleteAction,
				Flags: []cli.Flag{
					periodFlag,
					startTimeFlag,
					endTimeFlag,
					tagFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
		},
		Flags: []cli.Flag{
			focusFlag,
			restFlag,
			lambdaFlag,
			promptTimeoutFlag,
			disableMonitorFlag,
			disableNotificationFlag,
			soundFlag,
			soundOnBreakFlag,
			sessionCmdFlag,
			tagFlag,
			noteFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
		After:  afterAction,
	}

	return vigilApp
}
