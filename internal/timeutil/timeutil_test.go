package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		secs     float64
		wantMins int
		wantSecs int
	}{
		{secs: 0, wantMins: 0, wantSecs: 0},
		{secs: 59, wantMins: 0, wantSecs: 59},
		{secs: 60, wantMins: 1, wantSecs: 0},
		{secs: 1500, wantMins: 25, wantSecs: 0},
		{secs: 3661, wantMins: 61, wantSecs: 1},
		{secs: 90.4, wantMins: 1, wantSecs: 30},
		{secs: -5, wantMins: 0, wantSecs: 0},
	}

	for _, tc := range cases {
		mins, secs := SecsToMinsAndSecs(tc.secs)

		assert.Equal(t, tc.wantMins, mins)
		assert.Equal(t, tc.wantSecs, secs)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 2, Round(1.5))
	assert.Equal(t, 1, Round(1.4))
	assert.Equal(t, -2, Round(-1.5))
}

func TestFromStr(t *testing.T) {
	got, err := FromStr("2021-08-06")
	require.NoError(t, err)

	assert.Equal(t, 2021, got.Year())
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 6, got.Day())

	_, err = FromStr("not a date")
	assert.Error(t, err)
}

func TestRoundToStartAndEnd(t *testing.T) {
	at := time.Date(2024, 3, 1, 13, 45, 12, 500, time.UTC)

	start := RoundToStart(at)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 0, start.Minute())
	assert.Equal(t, 0, start.Second())

	end := RoundToEnd(at)
	assert.Equal(t, 23, end.Hour())
	assert.Equal(t, 59, end.Minute())
	assert.Equal(t, 59, end.Second())
}

func TestRangeCoversEveryPeriod(t *testing.T) {
	for _, period := range PeriodCollection {
		_, ok := Range[period]
		assert.True(t, ok, string(period))
	}
}
