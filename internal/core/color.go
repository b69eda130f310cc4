package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkRed
)

// Skin is a cosmetic player style. It never affects simulation.
type Skin string

const (
	SkinDefault  Skin = "skin-default"
	SkinNeonBlue Skin = "skin-neon-blue"
	SkinGold     Skin = "skin-gold"
	SkinMatrix   Skin = "skin-matrix"
	SkinPlasma   Skin = "skin-plasma"
)

// Skins lists every selectable skin in menu order.
var Skins = []Skin{SkinDefault, SkinNeonBlue, SkinGold, SkinMatrix, SkinPlasma}

// ParseSkin accepts either the stored id ("skin-gold") or the short name ("gold").
func ParseSkin(s string) (Skin, bool) {
	for _, sk := range Skins {
		if string(sk) == s || sk.Name() == s {
			return sk, true
		}
	}
	return SkinDefault, false
}

// Name returns the short display name.
func (s Skin) Name() string {
	const prefix = "skin-"
	if len(s) > len(prefix) && string(s[:len(prefix)]) == prefix {
		return string(s[len(prefix):])
	}
	return string(s)
}

// PlayerColor returns the body color for a player wearing this skin.
// Player 2 keeps its own hue on the default skin so lanes stay distinguishable.
func (s Skin) PlayerColor(id PlayerID) Color {
	switch s {
	case SkinNeonBlue:
		return ColorBrightCyan
	case SkinGold:
		return ColorBrightYellow
	case SkinMatrix:
		return ColorBrightGreen
	case SkinPlasma:
		return ColorBrightMagenta
	}
	if id == Player2 {
		return ColorBrightBlue
	}
	return ColorBrightRed
}
