package usage

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glamai/server/internal/auth"
	"github.com/glamai/server/internal/cooldown"
	"github.com/glamai/server/internal/errors"
	"github.com/glamai/server/internal/usage"
	"github.com/glamai/server/internal/wellbeing"
)

// GetUsageHandler previews the governor decision for the authenticated user
// without consuming anything
func GetUsageHandler(store usage.Store, governor *usage.Governor, tracker *cooldown.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		now := time.Now()

		record, err := store.Read(c.Request.Context(), userID, now)
		if err != nil {
			errors.InternalError(c, "failed to load usage record", err)
			return
		}

		decision := governor.Evaluate(record, now)

		// the live countdown also gates submissions, so the preview reports it
		// whenever it outlasts the timestamp math
		if live := tracker.Remaining(userID); live > decision.RemainingCooldownSeconds {
			decision.Admitted = false
			decision.Reason = usage.ReasonCooldownActive
			decision.RemainingCooldownSeconds = live
		}

		c.JSON(http.StatusOK, Response{
			DayKey:                   record.DayKey,
			DailyCount:               record.DailyCount,
			DailyLimit:               governor.CapThreshold(),
			Admitted:                 decision.Admitted,
			Reason:                   string(decision.Reason),
			RemainingCooldownSeconds: decision.RemainingCooldownSeconds,
			Message:                  decision.Message,
		})
	}
}

// ListResourcesHandler returns the wellbeing support resources; no auth so
// they stay reachable even when everything else is locked down
func ListResourcesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"resources": wellbeing.Resources()})
}
