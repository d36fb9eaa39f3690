package usage

import (
	"fmt"
	"math"
	"time"
)

// Phase governs a contiguous range of daily transformation counts. Ranges are
// inclusive on both ends; the topmost phase has MaxCount = math.MaxInt and is
// the "done for today" terminal phase once the daily cap is reached.
type Phase struct {
	MinCount int
	MaxCount int
	Cooldown time.Duration // minimum spacing between transformations; 0 means unthrottled
	Advisory string        // shown when the phase is active or blocks a request
}

// the progressive limits shipped with the product: the first five looks are
// free-flowing, then spacing grows gently until the daily cap at twelve
var DefaultPhases = []Phase{
	{MinCount: 0, MaxCount: 5, Cooldown: 0, Advisory: ""},
	{MinCount: 6, MaxCount: 8, Cooldown: 15 * time.Second,
		Advisory: "Taking a quick moment between styles helps you appreciate each one!"},
	{MinCount: 9, MaxCount: 11, Cooldown: 30 * time.Second,
		Advisory: "You're exploring so many looks! Remember, you're beautiful in every style."},
	{MinCount: 12, MaxCount: math.MaxInt, Cooldown: 0,
		Advisory: "You've had quite the styling session! How about taking a break and appreciating your natural beauty?"},
}

// verifies that the phases partition the non-negative integers with no gaps
// and no overlaps, in strictly increasing order, ending in an unbounded phase
func validatePhases(phases []Phase) error {
	if len(phases) == 0 {
		return fmt.Errorf("at least one phase is required")
	}

	if phases[0].MinCount != 0 {
		return fmt.Errorf("first phase must start at count 0, starts at %d", phases[0].MinCount)
	}

	for i, p := range phases {
		if p.MaxCount < p.MinCount {
			return fmt.Errorf("phase %d has max %d below min %d", i, p.MaxCount, p.MinCount)
		}

		if i > 0 && p.MinCount != phases[i-1].MaxCount+1 {
			return fmt.Errorf("phase %d starts at %d, expected %d", i, p.MinCount, phases[i-1].MaxCount+1)
		}
	}

	if phases[len(phases)-1].MaxCount != math.MaxInt {
		return fmt.Errorf("last phase must be unbounded")
	}

	return nil
}

// returns the phase governing the given daily count
func phaseFor(phases []Phase, count int) Phase {
	for _, p := range phases {
		if count >= p.MinCount && count <= p.MaxCount {
			return p
		}
	}

	// unreachable for validated phases; the last phase is unbounded
	return phases[len(phases)-1]
}
