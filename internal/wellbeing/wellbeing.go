package wellbeing

// positive messaging and support resources surfaced alongside heavy usage.
// The tone is deliberately encouraging: limits here nudge, they never scold.

var affirmations = []string{
	"Your natural beauty radiates from within!",
	"You're exploring styles, not fixing anything - you're already perfect!",
	"Every hairstyle looks amazing because YOU wear it with confidence!",
	"Your unique features make every style special",
	"Remember: this is just for fun - you're beautiful as you are!",
	"Confidence is your best accessory, and you've got plenty!",
	"Your smile makes any hairstyle look perfect!",
	"Beauty isn't about perfection - it's about authenticity, and you shine!",
	"Every person has their own unique beauty signature - yours is amazing!",
	"These styles are inspiration, not pressure - you're already complete!",
}

// Resource points at an external support organization.
type Resource struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Phone       string `json:"phone,omitempty"`
	Description string `json:"description"`
}

var resources = []Resource{
	{
		Name:        "Crisis Text Line",
		URL:         "https://www.crisistextline.org",
		Phone:       "Text HOME to 741741",
		Description: "24/7 crisis support via text message",
	},
	{
		Name:        "National Eating Disorders Association",
		URL:         "https://www.nationaleatingdisorders.org",
		Phone:       "1-800-931-2237",
		Description: "Support for eating disorders and body image issues",
	},
	{
		Name:        "Mental Health America",
		URL:         "https://www.mhanational.org",
		Description: "Mental health resources and screening tools",
	},
	{
		Name:        "Body Positive Movement",
		URL:         "https://www.bodypositive.com",
		Description: "Resources for body acceptance and self-love",
	},
}

// returns a deterministic affirmation for the given usage count, rotating
// through the list so repeated reminders vary
func Affirmation(count int) string {
	if count < 0 {
		count = -count
	}

	return affirmations[count%len(affirmations)]
}

// returns the full support resource list
func Resources() []Resource {
	out := make([]Resource, len(resources))
	copy(out, resources)

	return out
}

// shown with every generated image so nobody mistakes it for a photograph
const Disclosure = "This image has been created using artificial intelligence. Results are approximations and may not reflect exact real-life outcomes. Always consult with a professional stylist for accurate expectations."

// CareReport accompanies a daily-cap block: an encouraging sign-off plus a
// single support resource, kept small on purpose.
type CareReport struct {
	Message  string     `json:"message"`
	Resource []Resource `json:"resources"`
}

// builds the report shown when the daily cap is reached
func DailyCapReport() CareReport {
	return CareReport{
		Message:  "What a styling adventure! Come back tomorrow for more inspiration",
		Resource: Resources()[:1],
	}
}
