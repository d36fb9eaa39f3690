package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForAudience_IncludesUnisex(t *testing.T) {
	for _, audience := range []Audience{AudienceWoman, AudienceMan} {
		names := Names(audience)

		assert.Contains(t, names, "Buzz Cut", "unisex styles show for %s", audience)
		assert.Contains(t, names, "Long Straight")
	}

	assert.Contains(t, Names(AudienceWoman), "Box Braids")
	assert.NotContains(t, Names(AudienceWoman), "Pompadour")
	assert.NotContains(t, Names(AudienceMan), "Pixie Cut")
}

func TestFind_ExactNameOnly(t *testing.T) {
	style, ok := Find("Dreadlocks")

	require.True(t, ok)
	assert.Equal(t, AudienceMan, style.Audience)
	assert.Equal(t, "rastafarian", style.Cultural)

	_, ok = Find("dreadlocks")
	assert.False(t, ok, "lookups are case sensitive")

	_, ok = Find("Mohawk")
	assert.False(t, ok)
}

func TestAllowedFor(t *testing.T) {
	assert.True(t, AllowedFor("Pixie Cut", AudienceWoman))
	assert.True(t, AllowedFor("Buzz Cut", AudienceMan), "unisex styles suit everyone")
	assert.True(t, AllowedFor("Pompadour", ""), "empty audience only checks existence")

	assert.False(t, AllowedFor("Pompadour", AudienceWoman))
	assert.False(t, AllowedFor("Mullet", AudienceMan), "unknown style")
}

func TestCatalog_ReturnsCopy(t *testing.T) {
	c := Catalog()
	require.NotEmpty(t, c)

	c[0].Name = "mutated"

	assert.NotEqual(t, "mutated", Catalog()[0].Name)
}

func TestColors_NaturalShadesFlagged(t *testing.T) {
	var naturals int

	for _, c := range Colors() {
		if c.Natural {
			naturals++
		}
	}

	assert.Equal(t, 3, naturals)

	color, ok := FindColor("Platinum Blonde")
	require.True(t, ok)
	assert.False(t, color.Natural)
}

func TestCulturalNotes_EveryNotedStyleIsInCatalog(t *testing.T) {
	for name := range culturalNotes {
		_, ok := Find(name)
		assert.True(t, ok, "%s carries cultural notes but has no catalog entry", name)
	}
}

func TestContextFor_TraditionalStylesCarryOrigins(t *testing.T) {
	ctx := ContextFor("Box Braids")

	assert.True(t, ctx.HasContext)
	assert.Contains(t, ctx.Origin, "Africa")
	assert.Contains(t, ctx.RespectfulUsage, "Box Braids")

	ctx = ContextFor("Pixie Cut")

	assert.False(t, ctx.HasContext)
	assert.Contains(t, ctx.Message, "Pixie Cut")
}
