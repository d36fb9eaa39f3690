package usage

import (
	"context"
	"time"
)

// Record tracks one owner's transformation activity for the current day.
// Exactly one record is live per owner; a day rollover replaces it wholesale.
type Record struct {
	DayKey               string    `json:"day_key"`
	DailyCount           int       `json:"daily_count"`
	LastTransformationAt time.Time `json:"last_transformation_at"` // zero means none yet today
	FirstUsageAt         time.Time `json:"first_usage_at"`
}

// Reason explains a governor decision
type Reason string

const (
	ReasonNone              Reason = "none"
	ReasonCooldownActive    Reason = "cooldown_active"
	ReasonDailyLimitReached Reason = "daily_limit_reached"
	ReasonWellbeingReminder Reason = "wellbeing_reminder" // advisory only, never blocks
)

// Decision is the result of evaluating a proposed transformation
type Decision struct {
	Admitted                 bool
	Reason                   Reason
	RemainingCooldownSeconds int // 0 unless Reason is ReasonCooldownActive
	Message                  string
}

// Store is the boundary to wherever usage records live. Read performs the
// day-rollover reset; RecordSuccess is the sole mutator of the counters.
type Store interface {
	Read(ctx context.Context, ownerID string, now time.Time) (*Record, error)
	RecordSuccess(ctx context.Context, ownerID string, now time.Time) error
}

// returns the calendar-day identifier for a point in time, in its location
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// reports whether the record belongs to the same calendar day as now
func (r *Record) SameDay(now time.Time) bool {
	return r.DayKey == DayKey(now)
}
