package stats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

func sampleSessions(base time.Time) []session.Session {
	focusDone := *session.New(session.Focus, base, 25*time.Minute)
	focusDone.Tags = []string{"task10"}
	focusDone.RecordDistraction(base.Add(5 * time.Minute))
	focusDone.RecordDistraction(base.Add(15 * time.Minute))
	focusDone.Finalize(session.Completed, base.Add(25*time.Minute), 0)

	focusCut := *session.New(
		session.Focus, base.Add(time.Hour), 25*time.Minute,
	)
	focusCut.Tags = []string{"task2"}
	focusCut.Finalize(
		session.Interrupted,
		base.Add(time.Hour+5*time.Minute),
		20*time.Minute,
	)

	rest := *session.New(session.Rest, base.Add(2*time.Hour), 5*time.Minute)
	rest.Finalize(session.Cancelled, base.Add(2*time.Hour), 2*time.Minute)

	return []session.Session{focusDone, focusCut, rest}
}

func TestCompute(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	s := &Stats{
		Opts: &config.FilterConfig{
			StartTime: base.Add(-time.Hour),
			EndTime:   base.Add(6 * time.Hour),
		},
	}

	s.Compute(sampleSessions(base))

	assert.Equal(t, 3, s.Summary.TotalSessions)
	assert.Equal(t, 1, s.Summary.Completed)
	assert.Equal(t, 1, s.Summary.Interrupted)
	assert.Equal(t, 1, s.Summary.Cancelled)

	assert.Equal(t, 30*time.Minute, s.Summary.FocusTime)
	assert.Equal(t, 3*time.Minute, s.Summary.RestTime)

	assert.Equal(t, 2, s.Summary.Distractions)
	assert.InDelta(t, 4.0, s.Summary.DistractionsPerHour, 0.001)

	assert.Equal(t, 25*time.Minute, s.Summary.Tags["task10"])
	assert.Equal(t, 5*time.Minute, s.Summary.Tags["task2"])
}

func TestCompute_Empty(t *testing.T) {
	s := &Stats{Opts: &config.FilterConfig{}}

	s.Compute(nil)

	assert.Equal(t, 0, s.Summary.TotalSessions)
	assert.Equal(t, float64(0), s.Summary.DistractionsPerHour)
}

func TestSortedTags_NaturalOrder(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	s := &Stats{
		Opts: &config.FilterConfig{},
	}

	s.Compute(sampleSessions(base))

	assert.Equal(t, []string{"task2", "task10"}, s.sortedTags())
}

func TestToJSON(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	s := &Stats{Opts: &config.FilterConfig{}}

	s.Compute(sampleSessions(base))

	b, err := s.ToJSON()
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(b, &decoded))

	assert.EqualValues(t, 3, decoded["total_sessions"])
	assert.EqualValues(t, 2, decoded["distractions"])
}
