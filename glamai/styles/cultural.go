package styles

import "fmt"

// CulturalContext explains the origins of a traditional style so it can be
// presented with proper attribution.
type CulturalContext struct {
	HasContext       bool   `json:"has_context"`
	Origin           string `json:"origin,omitempty"`
	RespectfulUsage  string `json:"respectful_usage,omitempty"`
	LearningResource string `json:"learning_resource,omitempty"`
	Message          string `json:"message,omitempty"`
}

// styles with documented cultural roots; everything else is contemporary
var culturalNotes = map[string]string{
	"Box Braids":  "Originated in Africa over 3,000 years ago. A protective style with deep cultural roots.",
	"Bantu Knots": "Traditional African hairstyle with spiritual significance in many cultures.",
	"Dreadlocks":  "Found in many cultures worldwide, with particular significance in Rastafarian culture.",
	"Cornrows":    "Ancient African braiding technique with over 3,000 years of history.",
	"Top Knot":    "Found in many Asian cultures, often with spiritual or social significance.",
}

// returns the cultural context for a style name
func ContextFor(name string) CulturalContext {
	origin, ok := culturalNotes[name]
	if !ok {
		return CulturalContext{
			Message: fmt.Sprintf("%s is a contemporary or universal style with no specific cultural restrictions.", name),
		}
	}

	return CulturalContext{
		HasContext:       true,
		Origin:           origin,
		RespectfulUsage:  fmt.Sprintf("When wearing %s, it's important to understand and respect its cultural origins.", name),
		LearningResource: fmt.Sprintf("Learn more about the history and significance of %s in its cultural context.", name),
	}
}
