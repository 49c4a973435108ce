package theme

import (
	"image/color"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/fonts"
)

func rgb(hex uint32) color.NRGBA {
	return color.NRGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xFF}
}

// Catalog is the fixed set of typography, background and name choices.
type Catalog struct {
	typography  []card.Typography
	backgrounds []card.Background
	names       []string
}

// DefaultCatalog returns a fresh copy of the built-in catalog.
func DefaultCatalog() *Catalog {
	return &Catalog{
		typography: []card.Typography{
			{ID: "bold-classic", TitleFont: fonts.FamilyDisplay, BodyFont: fonts.FamilyBody, TitleSize: 96, BodySize: 52},
			{ID: "elegant-script", TitleFont: fonts.FamilyElegant, BodyFont: fonts.FamilyBody, TitleSize: 92, BodySize: 50},
			{ID: "modern-medium", TitleFont: fonts.FamilyModern, BodyFont: fonts.FamilyBody, TitleSize: 88, BodySize: 50},
			{ID: "smallcaps-formal", TitleFont: fonts.FamilyClassic, BodyFont: fonts.FamilyElegant, TitleSize: 84, BodySize: 48},
			{ID: "heavy-pop", TitleFont: fonts.FamilyHeavy, BodyFont: fonts.FamilyModern, TitleSize: 100, BodySize: 52},
			{ID: "typewriter", TitleFont: fonts.FamilyMono, BodyFont: fonts.FamilyMono, TitleSize: 80, BodySize: 44},
		},
		backgrounds: []card.Background{
			{
				ID:         "midnight-gold",
				Gradient:   [2]color.NRGBA{rgb(0x0F0C29), rgb(0x302B63)},
				Texture:    "gold-foil",
				Overlay:    0.35,
				Glow:       card.GlowSpec{Color: rgb(0xFFD700), Radius: 12},
				TextColor:  rgb(0xFFF8E7),
				Accent:     rgb(0xFFD700),
				Decoration: card.DecorationSparkle,
			},
			{
				ID:         "sunset-party",
				Gradient:   [2]color.NRGBA{rgb(0xFF512F), rgb(0xDD2476)},
				Overlay:    0.25,
				Glow:       card.GlowSpec{Color: rgb(0xFFE29F), Radius: 10},
				TextColor:  rgb(0xFFFFFF),
				Accent:     rgb(0xFFE29F),
				Decoration: card.DecorationConfetti,
			},
			{
				ID:         "paper-minimal",
				Gradient:   [2]color.NRGBA{rgb(0xFDFBF7), rgb(0xE8E2D6)},
				Overlay:    0.2,
				Glow:       card.GlowSpec{Color: rgb(0xC9B79C), Radius: 6},
				TextColor:  rgb(0x2B2B2B),
				Accent:     rgb(0x8C7B62),
				Decoration: card.DecorationMinimal,
			},
			{
				ID:         "rose-garden",
				Gradient:   [2]color.NRGBA{rgb(0xFBD3E9), rgb(0xBB377D)},
				Texture:    "rose-petals",
				Overlay:    0.3,
				Glow:       card.GlowSpec{Color: rgb(0xFFFFFF), Radius: 10},
				TextColor:  rgb(0xFFFFFF),
				Accent:     rgb(0xFFE4F2),
				Decoration: card.DecorationBokeh,
			},
			{
				ID:         "ocean-breeze",
				Gradient:   [2]color.NRGBA{rgb(0x2193B0), rgb(0x6DD5ED)},
				Overlay:    0.25,
				Glow:       card.GlowSpec{Color: rgb(0xE0F7FF), Radius: 8},
				TextColor:  rgb(0xFFFFFF),
				Accent:     rgb(0xE0F7FF),
				Decoration: card.DecorationBokeh,
			},
			{
				ID:         "neon-night",
				Gradient:   [2]color.NRGBA{rgb(0x000000), rgb(0x1F1C2C)},
				Texture:    "city-lights",
				Overlay:    0.4,
				Glow:       card.GlowSpec{Color: rgb(0x39FF14), Radius: 14},
				TextColor:  rgb(0xF5F5F5),
				Accent:     rgb(0xFF00E6),
				Decoration: card.DecorationSparkle,
			},
			{
				ID:         "forest-calm",
				Gradient:   [2]color.NRGBA{rgb(0x134E5E), rgb(0x71B280)},
				Overlay:    0.3,
				Glow:       card.GlowSpec{Color: rgb(0xD4F5C4), Radius: 8},
				TextColor:  rgb(0xFFFFFF),
				Accent:     rgb(0xD4F5C4),
				Decoration: card.DecorationNone,
			},
			{
				ID:         "candy-pop",
				Gradient:   [2]color.NRGBA{rgb(0xF9D423), rgb(0xFF4E50)},
				Overlay:    0.2,
				Glow:       card.GlowSpec{Color: rgb(0xFFFFFF), Radius: 10},
				TextColor:  rgb(0xFFFFFF),
				Accent:     rgb(0x4ECDC4),
				Decoration: card.DecorationConfetti,
			},
		},
		names: []string{
			"Golden Hour",
			"Party Pop",
			"Quiet Paper",
			"Rose Whisper",
			"Sea Breeze",
			"Neon Dreams",
			"Evergreen",
			"Sugar Rush",
		},
	}
}

// Typographies returns the number of typography entries.
func (c *Catalog) Typographies() int { return len(c.typography) }

// Backgrounds returns the number of background entries.
func (c *Catalog) Backgrounds() int { return len(c.backgrounds) }

// Names returns the card-level theme names in catalog order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Typography returns the typography entry at i.
func (c *Catalog) Typography(i int) card.Typography { return c.typography[i] }

// Background returns the background entry at i.
func (c *Catalog) Background(i int) card.Background { return c.backgrounds[i] }

// IDs lists background ids in catalog order. Background ids double as the
// ids accepted by Lookup for manual theme selection.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.backgrounds))
	for _, bg := range c.backgrounds {
		ids = append(ids, bg.ID)
	}
	return ids
}

// Lookup returns the theme addressed by a background id, paired with the
// typography and name at the same catalog position.
func (c *Catalog) Lookup(id string) (card.Theme, bool) {
	for i, bg := range c.backgrounds {
		if bg.ID == id {
			return card.Theme{
				Name:       c.names[i%len(c.names)],
				Typography: c.typography[i%len(c.typography)],
				Background: bg,
			}, true
		}
	}
	return card.Theme{}, false
}

// ForVisual returns the background id that best matches a prompt's visual theme.
func ForVisual(v card.VisualTheme) string {
	switch v {
	case card.VisualLuxury:
		return "midnight-gold"
	case card.VisualFloral:
		return "rose-garden"
	case card.VisualMinimal, card.VisualVintage:
		return "paper-minimal"
	case card.VisualPlayful:
		return "candy-pop"
	case card.VisualDark:
		return "neon-night"
	case card.VisualNature:
		return "forest-calm"
	default:
		return ""
	}
}
