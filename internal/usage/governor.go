package usage

import (
	"fmt"
	"time"
)

// Governor evaluates proposed transformations against the phase policy.
// Evaluate is pure: it never mutates the record or touches storage, so the
// same inputs always produce the same decision.
type Governor struct {
	phases      []Phase
	reminderMin int                // counts in [reminderMin, cap) admit with a wellbeing reminder
	affirm      func(count int) string
}

// the count from which wellbeing reminders accompany admissions
const defaultReminderMin = 8

// creates a governor over the given phases; nil phases means DefaultPhases
func NewGovernor(phases []Phase, affirm func(count int) string) (*Governor, error) {
	if phases == nil {
		phases = DefaultPhases
	}

	if err := validatePhases(phases); err != nil {
		return nil, fmt.Errorf("invalid phase table: %w", err)
	}

	return &Governor{
		phases:      phases,
		reminderMin: defaultReminderMin,
		affirm:      affirm,
	}, nil
}

// returns the daily cap: the count at which the terminal phase begins
func (g *Governor) CapThreshold() int {
	return g.phases[len(g.phases)-1].MinCount
}

// returns the phase governing the given daily count
func (g *Governor) PhaseFor(count int) Phase {
	return phaseFor(g.phases, count)
}

// evaluates a proposed transformation against the record at the given time.
// The daily cap takes precedence over cooldown when both would apply.
func (g *Governor) Evaluate(record *Record, now time.Time) Decision {
	count := 0
	last := time.Time{}

	// a record from another day counts as fresh; resetting storage is the
	// store's job on read, not ours
	if record != nil && record.SameDay(now) {
		count = record.DailyCount
		last = record.LastTransformationAt
	}

	phase := g.PhaseFor(count)

	if count >= g.CapThreshold() {
		return Decision{
			Admitted: false,
			Reason:   ReasonDailyLimitReached,
			Message:  phase.Advisory,
		}
	}

	if phase.Cooldown > 0 && !last.IsZero() {
		elapsed := now.Sub(last)
		if elapsed < phase.Cooldown {
			remaining := phase.Cooldown - elapsed
			return Decision{
				Admitted:                 false,
				Reason:                   ReasonCooldownActive,
				RemainingCooldownSeconds: ceilSeconds(remaining),
				Message:                  phase.Advisory,
			}
		}
	}

	if count >= g.reminderMin && count < g.CapThreshold() {
		msg := "Having fun exploring? Remember to stay confident in your natural beauty too!"
		if g.affirm != nil {
			msg = g.affirm(count)
		}

		return Decision{
			Admitted: true,
			Reason:   ReasonWellbeingReminder,
			Message:  msg,
		}
	}

	return Decision{Admitted: true, Reason: ReasonNone}
}

// rounds a duration up to whole seconds
func ceilSeconds(d time.Duration) int {
	secs := int(d / time.Second)
	if d%time.Second != 0 {
		secs++
	}

	return secs
}
