package theme

// Mode is the binary theme selection.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// ParseMode returns the mode for a stored string and whether it was valid.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return "", false
}

// TextColors are the three text emphasis levels.
type TextColors struct {
	Primary   string
	Secondary string
	Tertiary  string
}

// BorderColors are the two border weights.
type BorderColors struct {
	Light  string
	Medium string
}

// Palette is the mode-dependent token set. Light and dark are values of the
// same struct type, so the two palettes always carry identical key sets.
type Palette struct {
	Background string
	Surface    string
	Text       TextColors
	Border     BorderColors
}

// Accents are the three fixed accent colors shared across modes. Use
// sparingly, one accent max per screen.
type Accents struct {
	SolidarityRed string
	EarthGreen    string
	SunYellow     string
}

// ColorTokens is the complete token set a renderer consumes.
type ColorTokens struct {
	Palette
	Accents
}

// Light mode: reading, browsing, daytime use.
var lightMode = Palette{
	Background: "#FAF9F6", // Paper White
	Surface:    "#FFFFFF",
	Text: TextColors{
		Primary:   "#1C1C1C", // Charcoal Black
		Secondary: "#5F5F5F", // Muted Gray
		Tertiary:  "rgba(28, 28, 28, 0.5)",
	},
	Border: BorderColors{
		Light:  "rgba(28, 28, 28, 0.1)",
		Medium: "rgba(28, 28, 28, 0.2)",
	},
}

// Dark mode: night use, long sessions, reduced eye strain.
var darkMode = Palette{
	Background: "#121212", // Charcoal Dark
	Surface:    "#1E1E1E", // Soft Charcoal
	Text: TextColors{
		Primary:   "#EDEBE7", // Paper Off-White
		Secondary: "#A0A0A0", // Muted Light Gray
		Tertiary:  "rgba(237, 235, 231, 0.5)",
	},
	Border: BorderColors{
		Light:  "rgba(237, 235, 231, 0.1)",
		Medium: "rgba(237, 235, 231, 0.2)",
	},
}

var accents = Accents{
	SolidarityRed: "#B11226",
	EarthGreen:    "#2F5D3A",
	SunYellow:     "#E0B400",
}

// Colors maps a mode to its complete token set. Pure, deterministic, and
// total: any value other than Dark falls back to the light palette.
func Colors(mode Mode) ColorTokens {
	palette := lightMode
	if mode == Dark {
		palette = darkMode
	}
	return ColorTokens{Palette: palette, Accents: accents}
}
