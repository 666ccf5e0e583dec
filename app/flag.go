package app

import "github.com/urfave/cli/v2"

var (
	focusFlag = &cli.StringFlag{
		Name:    "focus",
		Aliases: []string{"f"},
		Usage:   "Focus session duration (e.g. '25m', or a bare number of minutes)",
	}

	restFlag = &cli.StringFlag{
		Name:    "rest",
		Aliases: []string{"r"},
		Usage:   "Rest break duration (e.g. '5m', or a bare number of minutes)",
	}

	lambdaFlag = &cli.StringFlag{
		Name:  "lambda",
		Usage: "Rate parameter for attention checks. Higher values mean more frequent prompts",
	}

	promptTimeoutFlag = &cli.StringFlag{
		Name:  "prompt-timeout",
		Usage: "How long an attention check waits for an answer before recording a distraction (e.g. '15s')",
	}

	disableMonitorFlag = &cli.BoolFlag{
		Name:  "disable-monitor",
		Usage: "Disable attention checks for this session",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears after a session is completed",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Play ambient sounds continuously during a session. Disable sound by setting to 'off'",
	}

	soundOnBreakFlag = &cli.BoolFlag{
		Name:    "sound-on-break",
		Aliases: []string{"sob"},
		Usage:   "Enable ambient sound in rest breaks",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:    "session-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command after each session",
	}

	tagFlag = &cli.StringFlag{
		Name:    "tag",
		Aliases: []string{"t"},
		Usage:   "Add comma-delimited tags to a session, or filter sessions by tag",
	}

	noteFlag = &cli.StringFlag{
		Name:    "note",
		Aliases: []string{"n"},
		Usage:   "Attach a note to a session",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Output in JSON format",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Specify a time period (default: 7days). Possible values: today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days, all-time",
	}

	startTimeFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Specify a start date or time expression (e.g. '2021-08-06', '3 days ago')",
	}

	endTimeFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "Specify an end date or time expression. Defaults to the current time",
	}
)
