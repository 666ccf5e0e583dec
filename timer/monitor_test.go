package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuxu777xu/random-prompt-focus-app/internal/config"
	"github.com/xuxu777xu/random-prompt-focus-app/internal/session"
)

func monitorOpts() config.MonitorConfig {
	return config.MonitorConfig{
		Enabled:       true,
		Lambda:        0.5,
		PromptTimeout: 15 * time.Second,
	}
}

// fixedRand returns the given samples in order, then repeats the last
// one.
func fixedRand(samples ...float64) func() float64 {
	i := 0

	return func() float64 {
		if i < len(samples)-1 {
			defer func() { i++ }()
		}

		return samples[i]
	}
}

func TestMonitor_IntervalClamping(t *testing.T) {
	cases := []struct {
		name   string
		lambda float64
		sample float64
		want   time.Duration
	}{
		{
			name:   "small sample clamps to lower bound",
			lambda: 0.5,
			sample: 0.0001,
			want:   time.Minute,
		},
		{
			name:   "large sample clamps to upper bound",
			lambda: 0.5,
			sample: 0.9999999,
			want:   30 * time.Minute,
		},
		{
			name:   "high rate clamps to lower bound",
			lambda: 10.0,
			sample: 0.5,
			want:   time.Minute,
		},
		{
			name:   "low rate clamps to upper bound",
			lambda: 0.01,
			sample: 0.5,
			want:   30 * time.Minute,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMonitor(nil, fixedRand(tc.sample))

			opts := monitorOpts()
			opts.Lambda = tc.lambda

			m.Begin(session.Focus, opts)

			pt, ok := m.NextTimer()
			require.True(t, ok)
			assert.Equal(t, tc.want, pt.Delay)
			assert.False(t, pt.Timeout())
		})
	}
}

func TestMonitor_IntervalWithinWindow(t *testing.T) {
	// lambda = 0.5, u = 0.8 gives -ln(0.2)/0.5 minutes, roughly 3m13s
	m := NewMonitor(nil, fixedRand(0.8))

	m.Begin(session.Focus, monitorOpts())

	pt, ok := m.NextTimer()
	require.True(t, ok)
	assert.Greater(t, pt.Delay, 3*time.Minute)
	assert.Less(t, pt.Delay, 4*time.Minute)
}

func TestMonitor_ZeroLambdaFallsBack(t *testing.T) {
	m := NewMonitor(nil, fixedRand(0.5))

	opts := monitorOpts()
	opts.Lambda = 0

	m.Begin(session.Focus, opts)

	pt, ok := m.NextTimer()
	require.True(t, ok)
	assert.GreaterOrEqual(t, pt.Delay, time.Minute)
	assert.LessOrEqual(t, pt.Delay, 30*time.Minute)
}

func TestMonitor_InactiveForRestOrDisabled(t *testing.T) {
	m := NewMonitor(nil, fixedRand(0.5))

	m.Begin(session.Rest, monitorOpts())

	_, ok := m.NextTimer()
	assert.False(t, ok)

	opts := monitorOpts()
	opts.Enabled = false

	m.Begin(session.Focus, opts)

	_, ok = m.NextTimer()
	assert.False(t, ok)
}

func TestMonitor_TimeoutRecordsDistraction(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	m := NewMonitor(func() time.Time { return now }, fixedRand(0.5))

	m.Begin(session.Focus, monitorOpts())

	pt, ok := m.NextTimer()
	require.True(t, ok)

	require.True(t, m.PromptDue(pt.Gen))
	assert.True(t, m.Prompting())

	timeout, ok := m.NextTimer()
	require.True(t, ok)
	assert.True(t, timeout.Timeout())
	assert.Equal(t, 15*time.Second, timeout.Delay)

	// no response arrives before the timeout fires
	require.True(t, m.TimeoutExpired(timeout.Gen))

	assert.False(t, m.Prompting())
	require.Len(t, m.Distractions(), 1)
	assert.Equal(t, now, m.Distractions()[0])

	// a new interval is scheduled afterwards
	next, ok := m.NextTimer()
	require.True(t, ok)
	assert.False(t, next.Timeout())
}

func TestMonitor_AttentiveResponseRecordsNothing(t *testing.T) {
	m := NewMonitor(nil, fixedRand(0.5))

	m.Begin(session.Focus, monitorOpts())

	pt, _ := m.NextTimer()
	require.True(t, m.PromptDue(pt.Gen))

	m.Respond(true)

	assert.False(t, m.Prompting())
	assert.Empty(t, m.Distractions())

	next, ok := m.NextTimer()
	require.True(t, ok)
	assert.False(t, next.Timeout())
}

func TestMonitor_LateResponseIgnored(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	m := NewMonitor(func() time.Time { return now }, fixedRand(0.5))

	m.Begin(session.Focus, monitorOpts())

	pt, _ := m.NextTimer()
	require.True(t, m.PromptDue(pt.Gen))

	timeout, _ := m.NextTimer()
	require.True(t, m.TimeoutExpired(timeout.Gen))

	// the user answers after the timeout already resolved the prompt
	m.Respond(false)

	assert.Len(t, m.Distractions(), 1)
}

func TestMonitor_StaleGenerationIgnored(t *testing.T) {
	m := NewMonitor(nil, fixedRand(0.5))

	m.Begin(session.Focus, monitorOpts())

	pt, _ := m.NextTimer()

	m.Suspend()

	// the callback was already queued when the timer was cancelled
	assert.False(t, m.PromptDue(pt.Gen))
	assert.False(t, m.Prompting())
}

func TestMonitor_SuspendPreservesState(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	m := NewMonitor(func() time.Time { return now }, fixedRand(0.5))

	m.Begin(session.Focus, monitorOpts())

	pt, _ := m.NextTimer()
	require.True(t, m.PromptDue(pt.Gen))

	timeout, _ := m.NextTimer()
	require.True(t, m.TimeoutExpired(timeout.Gen))

	m.Suspend()

	assert.Len(t, m.Distractions(), 1)

	_, ok := m.NextTimer()
	assert.False(t, ok)

	m.Resume()

	next, ok := m.NextTimer()
	require.True(t, ok)
	assert.False(t, next.Timeout())
	assert.Len(t, m.Distractions(), 1)
}

func TestMonitor_ResumeRestoresPendingPrompt(t *testing.T) {
	m := NewMonitor(nil, fixedRand(0.5))

	m.Begin(session.Focus, monitorOpts())

	pt, _ := m.NextTimer()
	require.True(t, m.PromptDue(pt.Gen))

	m.Suspend()

	assert.True(t, m.Prompting())

	m.Resume()

	timeout, ok := m.NextTimer()
	require.True(t, ok)
	assert.True(t, timeout.Timeout())
	assert.Equal(t, 15*time.Second, timeout.Delay)
}

func TestMonitor_EndCancelsEverything(t *testing.T) {
	m := NewMonitor(nil, fixedRand(0.5))

	m.Begin(session.Focus, monitorOpts())

	pt, _ := m.NextTimer()

	m.End()

	assert.False(t, m.PromptDue(pt.Gen))

	m.Resume()

	_, ok := m.NextTimer()
	assert.False(t, ok)
}
