package wellbeing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffirmation_RotatesDeterministically(t *testing.T) {
	assert.Equal(t, Affirmation(8), Affirmation(8))
	assert.Equal(t, Affirmation(3), Affirmation(3+len(affirmations)))
	assert.NotEqual(t, Affirmation(8), Affirmation(9))
}

func TestAffirmation_NegativeCountDoesNotPanic(t *testing.T) {
	assert.NotEmpty(t, Affirmation(-5))
}

func TestResources_ReturnsCopy(t *testing.T) {
	rs := Resources()
	require.NotEmpty(t, rs)

	rs[0].Name = "mutated"

	assert.NotEqual(t, "mutated", Resources()[0].Name)
}

func TestDailyCapReport_CarriesOneResource(t *testing.T) {
	report := DailyCapReport()

	assert.NotEmpty(t, report.Message)
	require.Len(t, report.Resource, 1)
	assert.Equal(t, "Crisis Text Line", report.Resource[0].Name)
}
