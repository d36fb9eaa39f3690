package transform

import (
	"github.com/glamai/server/internal/wellbeing"
)

// Request submits a photo for a full hairstyle transformation. Image is
// base64-encoded.
type Request struct {
	Image    string `json:"image" binding:"required"`
	MIMEType string `json:"mime_type" binding:"required"`
	Style    string `json:"style" binding:"required"`
	Color    string `json:"color"`
	Audience string `json:"audience"`
	Enhance  bool   `json:"enhance"`
}

// RecolorRequest re-colors a previously generated look; an empty color asks
// for a restore to a natural shade.
type RecolorRequest struct {
	Image    string `json:"image" binding:"required"`
	MIMEType string `json:"mime_type" binding:"required"`
	Color    string `json:"color"`
}

// EnhanceRequest runs the technical photo optimization on its own.
type EnhanceRequest struct {
	Image    string `json:"image" binding:"required"`
	MIMEType string `json:"mime_type" binding:"required"`
}

// Response carries a produced image back to the client.
type Response struct {
	Status     string `json:"status"`
	Image      string `json:"image"`
	MIMEType   string `json:"mime_type"`
	Message    string `json:"message,omitempty"`
	Disclosure string `json:"disclosure,omitempty"`
	DailyCount int    `json:"daily_count"`
}

// DenialResponse explains a governor block. RemainingSeconds is set for
// cooldowns; Care accompanies a daily-cap block.
type DenialResponse struct {
	Error            string                `json:"error"`
	Message          string                `json:"message"`
	RemainingSeconds int                   `json:"remaining_seconds,omitempty"`
	Care             *wellbeing.CareReport `json:"care,omitempty"`
}
