package styles

// Color is a hair color option; natural shades are listed first in the UI.
type Color struct {
	Name    string `json:"name"`
	Natural bool   `json:"natural"`
}

var colors = []Color{
	{Name: "Natural Black", Natural: true},
	{Name: "Natural Brown", Natural: true},
	{Name: "Natural Blonde", Natural: true},
	{Name: "Auburn Red", Natural: false},
	{Name: "Platinum Blonde", Natural: false},
}

// returns the hair color palette
func Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)

	return out
}

// looks a color up by its exact name
func FindColor(name string) (Color, bool) {
	for _, c := range colors {
		if c.Name == name {
			return c, true
		}
	}

	return Color{}, false
}
