package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorsDistinctPerMode(t *testing.T) {
	light := Colors(Light)
	dark := Colors(Dark)

	assert.NotEqual(t, light.Background, dark.Background)
	assert.NotEqual(t, light.Text.Primary, dark.Text.Primary)
	assert.Equal(t, "#FAF9F6", light.Background)
	assert.Equal(t, "#121212", dark.Background)
}

// Both palettes are values of the same struct type, so the key sets are
// identical by construction. Pin the individual fields anyway so a palette
// edit that zeroes one out fails loudly.
func TestPalettesFullyPopulated(t *testing.T) {
	for _, mode := range []Mode{Light, Dark} {
		c := Colors(mode)
		assert.NotEmpty(t, c.Background, string(mode))
		assert.NotEmpty(t, c.Surface, string(mode))
		assert.NotEmpty(t, c.Text.Primary, string(mode))
		assert.NotEmpty(t, c.Text.Secondary, string(mode))
		assert.NotEmpty(t, c.Text.Tertiary, string(mode))
		assert.NotEmpty(t, c.Border.Light, string(mode))
		assert.NotEmpty(t, c.Border.Medium, string(mode))
	}
}

// Accents are mode-independent.
func TestAccentsSharedAcrossModes(t *testing.T) {
	light := Colors(Light)
	dark := Colors(Dark)

	assert.Equal(t, light.Accents, dark.Accents)
	assert.Equal(t, "#B11226", light.SolidarityRed)
	assert.Equal(t, "#2F5D3A", light.EarthGreen)
	assert.Equal(t, "#E0B400", light.SunYellow)
}

// Colors is total: anything that is not Dark resolves to the light palette.
func TestColorsFallsBackToLight(t *testing.T) {
	assert.Equal(t, Colors(Light), Colors(Mode("midnight")))
	assert.Equal(t, Colors(Light), Colors(""))
}

func TestParseMode(t *testing.T) {
	mode, ok := ParseMode("dark")
	assert.True(t, ok)
	assert.Equal(t, Dark, mode)

	_, ok = ParseMode("sepia")
	assert.False(t, ok)
}
