package config

import (
	"slices"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/timeutil"
)

// FilterConfig represents a configuration to filter stored sessions by
// their start time, end time, and assigned tags.
type FilterConfig struct {
	StartTime time.Time
	EndTime   time.Time
	Tags      []string
}

// timeRange returns the start and end time for the specified period.
func timeRange(period timeutil.Period) (start, end time.Time) {
	now := time.Now()

	start = timeutil.RoundToStart(now)

	end = timeutil.RoundToEnd(now)

	switch period {
	case timeutil.PeriodToday:
		return
	case timeutil.PeriodYesterday:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
		end = timeutil.RoundToEnd(start)

		return
	case timeutil.PeriodAllTime:
		start = time.Time{}
		return
	default:
		start = now.AddDate(0, 0, timeutil.Range[period])
		start = timeutil.RoundToStart(start)
	}

	return
}

// Filter builds a FilterConfig from command-line arguments. An explicit
// --start/--end pair takes precedence over --period.
func Filter(ctx *cli.Context) (*FilterConfig, error) {
	filterCfg := &FilterConfig{}

	if ctx.String("tag") != "" {
		filterCfg.Tags = splitAndTrimTags(ctx.String("tag"))
	}

	period := timeutil.Period(strings.TrimSpace(ctx.String("period")))

	if period != "" && !slices.Contains(timeutil.PeriodCollection, period) {
		return nil, errInvalidPeriod
	}

	if period == "" {
		period = timeutil.Period7Days
	}

	filterCfg.StartTime, filterCfg.EndTime = timeRange(period)

	if ctx.String("start") != "" {
		start, err := timeutil.FromStr(ctx.String("start"))
		if err != nil {
			return nil, err
		}

		filterCfg.StartTime = start
	}

	if ctx.String("end") != "" {
		end, err := timeutil.FromStr(ctx.String("end"))
		if err != nil {
			return nil, err
		}

		filterCfg.EndTime = end
	}

	if filterCfg.StartTime.After(filterCfg.EndTime) {
		return nil, errInvalidDateRange
	}

	return filterCfg, nil
}
