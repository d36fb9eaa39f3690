package styles

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/glamai/server/glamai/styles"
	"github.com/glamai/server/internal/errors"
	"github.com/glamai/server/internal/logger"
)

const maxRecommendations = 4

// Analyzer is the slice of the model client recommendations need.
type Analyzer interface {
	GenerateJSONWithImage(ctx context.Context, prompt string, image []byte, mimeType string) (string, error)
}

// ListStylesHandler returns the hairstyle catalog, optionally narrowed to an
// audience via ?audience=woman|man
func ListStylesHandler(c *gin.Context) {
	if audience, ok := c.GetQuery("audience"); ok {
		switch styles.Audience(audience) {
		case styles.AudienceWoman, styles.AudienceMan:
			c.JSON(http.StatusOK, gin.H{"styles": styles.ForAudience(styles.Audience(audience))})
		default:
			errors.BadRequest(c, fmt.Sprintf("unknown audience %q", audience), nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"styles": styles.Catalog()})
}

// ListColorsHandler returns the hair color palette
func ListColorsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"colors": styles.Colors()})
}

// GetCulturalContextHandler returns the cultural background of a style
func GetCulturalContextHandler(c *gin.Context) {
	name := c.Param("name")

	if _, ok := styles.Find(name); !ok {
		errors.NotFound(c, "style")
		return
	}

	c.JSON(http.StatusOK, styles.ContextFor(name))
}

// RecommendHandler asks the model which catalog styles flatter the person in
// the photo. Names the model invents are dropped rather than surfaced.
func RecommendHandler(analyzer Analyzer) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RecommendRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.ValidationError(c, err)
			return
		}

		audience := styles.Audience(req.Audience)
		if audience != styles.AudienceWoman && audience != styles.AudienceMan {
			errors.BadRequest(c, fmt.Sprintf("unknown audience %q", req.Audience), nil)
			return
		}

		image, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			errors.BadRequest(c, "image must be base64 encoded", err)
			return
		}

		raw, err := analyzer.GenerateJSONWithImage(
			c.Request.Context(),
			buildRecommendationPrompt(styles.Names(audience)),
			image,
			req.MIMEType,
		)
		if err != nil {
			errors.UpstreamError(c, "failed to analyze the photo", err)
			return
		}

		var payload recommendationPayload
		if err := json.Unmarshal([]byte(raw), &payload); err != nil {
			errors.UpstreamError(c, "the analysis could not be read", err)
			return
		}

		recommendations := make([]Recommendation, 0, maxRecommendations)

		for _, rec := range payload.Recommendations {
			// the model occasionally invents style names
			if _, ok := styles.Find(rec.Name); !ok {
				logger.Debug("dropping recommendation for unknown style", "name", rec.Name)
				continue
			}

			recommendations = append(recommendations, rec)

			if len(recommendations) == maxRecommendations {
				break
			}
		}

		c.JSON(http.StatusOK, gin.H{"recommendations": recommendations})
	}
}

func buildRecommendationPrompt(available []string) string {
	return fmt.Sprintf(`You are an expert virtual hairstylist. Analyze the person in this image.
Based on their apparent face shape, features, and overall look, recommend up to %d flattering hairstyles from the provided list.
For each recommendation, provide a brief, one-sentence reason explaining why it would be a good fit.
Your response MUST be a JSON object of the form {"recommendations": [{"name": "...", "reason": "..."}]}.
Only use hairstyle names from the list, exactly as written.

Available hairstyles:
%s`, maxRecommendations, strings.Join(available, ", "))
}
