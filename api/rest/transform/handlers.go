package transform

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glamai/server/glamai/styles"
	"github.com/glamai/server/internal/auth"
	"github.com/glamai/server/internal/cooldown"
	"github.com/glamai/server/internal/errors"
	"github.com/glamai/server/internal/pipeline"
	"github.com/glamai/server/internal/usage"
	"github.com/glamai/server/internal/wellbeing"
)

// TransformHandler runs the full flow: governor check, pipeline run, cooldown
// start. Only admitted requests reach the provider.
func TransformHandler(p *pipeline.Pipeline, store usage.Store, governor *usage.Governor, tracker *cooldown.Tracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req Request
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			errors.BadRequest(c, "image must be base64 encoded", err)
			return
		}

		if !styles.AllowedFor(req.Style, styles.Audience(req.Audience)) {
			errors.BadRequest(c, fmt.Sprintf("unknown or unavailable hairstyle %q", req.Style), nil)
			return
		}

		// a live countdown refuses the retry before any store round trip
		if seconds := tracker.Remaining(userID); seconds > 0 {
			c.JSON(http.StatusTooManyRequests, DenialResponse{
				Error:            errors.CodeCooldownActive,
				Message:          "please wait for the cooldown to finish before your next transformation",
				RemainingSeconds: seconds,
			})
			return
		}

		now := time.Now()

		record, err := store.Read(c.Request.Context(), userID, now)
		if err != nil {
			errors.InternalError(c, "failed to load usage record", err)
			return
		}

		decision := governor.Evaluate(record, now)
		if !decision.Admitted {
			denied(c, tracker, userID, decision)
			return
		}

		outcome, err := p.Transform(c.Request.Context(), userID, pipeline.TransformRequest{
			Image:    image,
			MIMEType: req.MIMEType,
			Style:    req.Style,
			Color:    req.Color,
			Audience: req.Audience,
			Enhance:  req.Enhance,
		})
		if err != nil {
			respondPipelineError(c, err)
			return
		}

		if outcome.Status != pipeline.StatusSuccess {
			respondFailedOutcome(c, outcome)
			return
		}

		// the attempt was committed; arm the countdown for the new count so
		// the client can show a live timer
		count := record.DailyCount + 1
		if seconds := int(governor.PhaseFor(count).Cooldown / time.Second); seconds > 0 {
			tracker.Begin(userID, seconds)
		}

		c.JSON(http.StatusOK, Response{
			Status:     string(outcome.Status),
			Image:      base64.StdEncoding.EncodeToString(outcome.Image.Data),
			MIMEType:   outcome.Image.MIMEType,
			Message:    decision.Message,
			Disclosure: wellbeing.Disclosure,
			DailyCount: count,
		})
	}
}

// RecolorHandler re-colors an existing look; it bypasses the governor and
// never consumes a daily attempt.
func RecolorHandler(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req RecolorRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			errors.BadRequest(c, "image must be base64 encoded", err)
			return
		}

		outcome, err := p.Recolor(c.Request.Context(), userID, pipeline.RecolorRequest{
			Image:    image,
			MIMEType: req.MIMEType,
			Color:    req.Color,
		})
		if err != nil {
			respondPipelineError(c, err)
			return
		}

		if outcome.Status != pipeline.StatusSuccess {
			respondFailedOutcome(c, outcome)
			return
		}

		c.JSON(http.StatusOK, Response{
			Status:   string(outcome.Status),
			Image:    base64.StdEncoding.EncodeToString(outcome.Image.Data),
			MIMEType: outcome.Image.MIMEType,
		})
	}
}

// EnhanceHandler runs the technical photo optimization standalone.
func EnhanceHandler(p *pipeline.Pipeline) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := auth.GetUserID(c)
		if !exists {
			errors.Unauthorized(c, "")
			return
		}

		var req EnhanceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			errors.BadRequest(c, "image must be base64 encoded", err)
			return
		}

		outcome, err := p.Enhance(c.Request.Context(), userID, image, req.MIMEType)
		if err != nil {
			respondPipelineError(c, err)
			return
		}

		if outcome.Status != pipeline.StatusSuccess {
			respondFailedOutcome(c, outcome)
			return
		}

		c.JSON(http.StatusOK, Response{
			Status:   string(outcome.Status),
			Image:    base64.StdEncoding.EncodeToString(outcome.Image.Data),
			MIMEType: outcome.Image.MIMEType,
		})
	}
}

func denied(c *gin.Context, tracker *cooldown.Tracker, userID string, decision usage.Decision) {
	switch decision.Reason {
	case usage.ReasonDailyLimitReached:
		report := wellbeing.DailyCapReport()
		c.JSON(http.StatusTooManyRequests, DenialResponse{
			Error:   errors.CodeDailyLimitReached,
			Message: decision.Message,
			Care:    &report,
		})
	default:
		// keep the live countdown aligned with the authoritative decision
		tracker.Begin(userID, decision.RemainingCooldownSeconds)

		c.JSON(http.StatusTooManyRequests, DenialResponse{
			Error:            errors.CodeCooldownActive,
			Message:          decision.Message,
			RemainingSeconds: decision.RemainingCooldownSeconds,
		})
	}
}

func respondPipelineError(c *gin.Context, err error) {
	if err == pipeline.ErrBusy {
		c.JSON(http.StatusConflict, errors.ErrorResponse{
			Error:   errors.CodeGenerationBusy,
			Message: "a transformation is already in progress, please wait for it to finish",
		})
		return
	}

	errors.InternalError(c, "transformation failed", err)
}

func respondFailedOutcome(c *gin.Context, outcome *pipeline.Outcome) {
	switch outcome.Status {
	case pipeline.StatusNoUsableOutput:
		c.JSON(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Error:   errors.CodeNoUsableOutput,
			Message: outcome.Detail,
		})
	case pipeline.StatusTransientError:
		c.JSON(http.StatusBadGateway, errors.ErrorResponse{
			Error:   errors.CodeProviderError,
			Message: outcome.Detail,
		})
	default:
		errors.BadRequest(c, outcome.Detail, nil)
	}
}
