// Package styles holds the hairstyle and hair color catalog along with the
// cultural context notes attached to traditional styles.
package styles

// Audience narrows a style to who it is presented for; unisex styles show up
// for everyone.
type Audience string

const (
	AudienceWoman  Audience = "woman"
	AudienceMan    Audience = "man"
	AudienceUnisex Audience = "unisex"
)

// Style is one entry of the hairstyle catalog.
type Style struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Audience Audience `json:"audience"`
	Cultural string   `json:"cultural"`
}

var catalog = []Style{
	{Name: "Natural Curls", Category: "Natural", Audience: AudienceWoman, Cultural: "universal"},
	{Name: "Afro Puff", Category: "Natural", Audience: AudienceWoman, Cultural: "african"},
	{Name: "Bantu Knots", Category: "Protective", Audience: AudienceWoman, Cultural: "african"},
	{Name: "Box Braids", Category: "Protective", Audience: AudienceWoman, Cultural: "african"},
	{Name: "Cornrows", Category: "Protective", Audience: AudienceWoman, Cultural: "african"},
	{Name: "Italian Bob", Category: "Short", Audience: AudienceWoman, Cultural: "universal"},
	{Name: "Pixie Cut", Category: "Short", Audience: AudienceWoman, Cultural: "universal"},
	{Name: "Wolf Cut", Category: "Layered", Audience: AudienceWoman, Cultural: "universal"},
	{Name: "Butterfly Cut", Category: "Layered", Audience: AudienceWoman, Cultural: "universal"},
	{Name: "Beach Waves", Category: "Long", Audience: AudienceWoman, Cultural: "universal"},
	{Name: "Curtain Bangs", Category: "Long", Audience: AudienceWoman, Cultural: "universal"},

	{Name: "Fade Cut", Category: "Short", Audience: AudienceMan, Cultural: "universal"},
	{Name: "Afro Fade", Category: "Natural", Audience: AudienceMan, Cultural: "african"},
	{Name: "Dreadlocks", Category: "Long", Audience: AudienceMan, Cultural: "rastafarian"},
	{Name: "Undercut", Category: "Long", Audience: AudienceMan, Cultural: "universal"},
	{Name: "Pompadour", Category: "Long", Audience: AudienceMan, Cultural: "universal"},
	{Name: "Top Knot", Category: "Long", Audience: AudienceMan, Cultural: "asian"},

	{Name: "Buzz Cut", Category: "Short", Audience: AudienceUnisex, Cultural: "universal"},
	{Name: "Long Straight", Category: "Long", Audience: AudienceUnisex, Cultural: "universal"},
}

// returns the full catalog
func Catalog() []Style {
	out := make([]Style, len(catalog))
	copy(out, catalog)

	return out
}

// returns the styles presented to the given audience, unisex included
func ForAudience(audience Audience) []Style {
	var out []Style

	for _, s := range catalog {
		if s.Audience == audience || s.Audience == AudienceUnisex {
			out = append(out, s)
		}
	}

	return out
}

// looks a style up by its exact name
func Find(name string) (Style, bool) {
	for _, s := range catalog {
		if s.Name == name {
			return s, true
		}
	}

	return Style{}, false
}

// reports whether the named style exists and is presented to the audience;
// an empty audience only checks existence
func AllowedFor(name string, audience Audience) bool {
	style, ok := Find(name)
	if !ok {
		return false
	}

	if audience == "" || style.Audience == AudienceUnisex {
		return true
	}

	return style.Audience == audience
}

// returns just the names of the styles presented to the given audience,
// used to constrain model recommendations to real catalog entries
func Names(audience Audience) []string {
	filtered := ForAudience(audience)
	out := make([]string, len(filtered))

	for i, s := range filtered {
		out[i] = s.Name
	}

	return out
}
