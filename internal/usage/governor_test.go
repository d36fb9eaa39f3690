package usage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGovernor(t *testing.T) *Governor {
	t.Helper()

	g, err := NewGovernor(nil, nil)
	require.NoError(t, err)

	return g
}

func recordAt(now time.Time, count int, last time.Time) *Record {
	return &Record{
		DayKey:               DayKey(now),
		DailyCount:           count,
		LastTransformationAt: last,
		FirstUsageAt:         now.Add(-time.Hour),
	}
}

func TestEvaluate_UnthrottledPhaseAdmits(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	// count 5 is still in the unthrottled phase, even with a recent success
	decision := g.Evaluate(recordAt(now, 5, now.Add(-time.Second)), now)

	assert.True(t, decision.Admitted)
	assert.Equal(t, ReasonNone, decision.Reason)
	assert.Zero(t, decision.RemainingCooldownSeconds)
}

func TestEvaluate_CooldownBlocksWithRemainingSeconds(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	// count 6 sits in the 15s phase; last success 5s ago leaves 10s
	decision := g.Evaluate(recordAt(now, 6, now.Add(-5*time.Second)), now)

	assert.False(t, decision.Admitted)
	assert.Equal(t, ReasonCooldownActive, decision.Reason)
	assert.Equal(t, 10, decision.RemainingCooldownSeconds)
	assert.NotEmpty(t, decision.Message)
}

func TestEvaluate_ElapsedCooldownNeverBlocks(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	for _, count := range []int{0, 3, 6, 7, 9, 11} {
		phase := g.PhaseFor(count)
		last := now.Add(-phase.Cooldown)

		decision := g.Evaluate(recordAt(now, count, last), now)

		assert.Truef(t, decision.Admitted, "count %d should admit once cooldown elapsed", count)
		assert.NotEqualf(t, ReasonCooldownActive, decision.Reason, "count %d", count)
	}
}

func TestEvaluate_DailyCapBlocksRegardlessOfLastTime(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	// far in the past: cap still wins
	decision := g.Evaluate(recordAt(now, 12, now.Add(-6*time.Hour)), now)

	assert.False(t, decision.Admitted)
	assert.Equal(t, ReasonDailyLimitReached, decision.Reason)
	assert.Zero(t, decision.RemainingCooldownSeconds)
	assert.NotEmpty(t, decision.Message)
}

func TestEvaluate_DailyCapTakesPrecedenceOverCooldown(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	// both conditions hold; the cap must win
	decision := g.Evaluate(recordAt(now, 15, now.Add(-time.Second)), now)

	assert.Equal(t, ReasonDailyLimitReached, decision.Reason)
}

func TestEvaluate_ReminderBandAdmitsWithMessage(t *testing.T) {
	affirmations := []string{"one", "two", "three"}
	g, err := NewGovernor(nil, func(count int) string {
		return affirmations[count%len(affirmations)]
	})
	require.NoError(t, err)

	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	decision := g.Evaluate(recordAt(now, 10, now.Add(-time.Minute)), now)

	assert.True(t, decision.Admitted)
	assert.Equal(t, ReasonWellbeingReminder, decision.Reason)
	assert.Equal(t, affirmations[10%3], decision.Message)
}

func TestEvaluate_StaleDayTreatedAsFresh(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	stale := &Record{
		DayKey:               DayKey(now.AddDate(0, 0, -1)),
		DailyCount:           12,
		LastTransformationAt: now.Add(-25 * time.Hour),
		FirstUsageAt:         now.Add(-26 * time.Hour),
	}

	decision := g.Evaluate(stale, now)

	assert.True(t, decision.Admitted)
	assert.Equal(t, ReasonNone, decision.Reason)
}

func TestEvaluate_NilRecordAdmits(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	decision := g.Evaluate(nil, now)

	assert.True(t, decision.Admitted)
	assert.Equal(t, ReasonNone, decision.Reason)
}

func TestEvaluate_IsPure(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	record := recordAt(now, 6, now.Add(-5*time.Second))
	before := *record

	first := g.Evaluate(record, now)
	second := g.Evaluate(record, now)

	assert.Equal(t, first, second, "same inputs must produce identical decisions")
	assert.Equal(t, before, *record, "evaluate must not mutate the record")
}

func TestEvaluate_NoLastTransformationNeverCoolsDown(t *testing.T) {
	g := newTestGovernor(t)
	now := time.Date(2026, 8, 31, 14, 0, 0, 0, time.UTC)

	// count inside a throttled phase but no success recorded today
	decision := g.Evaluate(recordAt(now, 6, time.Time{}), now)

	assert.True(t, decision.Admitted)
}

func TestCeilSeconds(t *testing.T) {
	assert.Equal(t, 10, ceilSeconds(10*time.Second))
	assert.Equal(t, 10, ceilSeconds(9*time.Second+time.Millisecond))
	assert.Equal(t, 1, ceilSeconds(time.Millisecond))
	assert.Equal(t, 0, ceilSeconds(0))
}
