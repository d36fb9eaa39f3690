package styles

// RecommendRequest asks for hairstyle suggestions based on a photo. Image is
// base64-encoded.
type RecommendRequest struct {
	Image    string `json:"image" binding:"required"`
	MIMEType string `json:"mime_type" binding:"required"`
	Audience string `json:"audience" binding:"required"`
}

// Recommendation pairs a catalog style with the model's reasoning.
type Recommendation struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

// the shape the model is instructed to return
type recommendationPayload struct {
	Recommendations []Recommendation `json:"recommendations"`
}
