package card

import "image/color"

// DecorationStyle selects the decoration layer drawn over the background.
type DecorationStyle string

const (
	DecorationSparkle  DecorationStyle = "sparkle"  // Rotated 4-point stars along the edges
	DecorationConfetti DecorationStyle = "confetti" // Small rotated rectangles along the edges
	DecorationMinimal  DecorationStyle = "minimal"  // Four corner brackets
	DecorationBokeh    DecorationStyle = "bokeh"    // Soft translucent circles
	DecorationNone     DecorationStyle = "none"
)

// Typography is the font choice of a theme.
type Typography struct {
	ID        string  `yaml:"id" json:"id"`
	TitleFont string  `yaml:"title_font" json:"titleFont"` // Font family name registered in fonts.Registry
	BodyFont  string  `yaml:"body_font" json:"bodyFont"`
	TitleSize float64 `yaml:"title_size" json:"titleSize"` // Pixels at 1080px width
	BodySize  float64 `yaml:"body_size" json:"bodySize"`
}

// GlowSpec describes the blurred pass drawn behind the title.
type GlowSpec struct {
	Color  color.NRGBA `yaml:"-" json:"-"`
	Radius float64     `yaml:"radius" json:"radius"`
}

// Background is the backdrop of a theme.
type Background struct {
	ID         string          `yaml:"id" json:"id"`
	Gradient   [2]color.NRGBA  `yaml:"-" json:"-"`
	Texture    string          `yaml:"texture,omitempty" json:"texture,omitempty"` // Asset id of a background image, optional
	Overlay    float64         `yaml:"overlay" json:"overlay"`                     // Alpha of the dark overlay applied over images
	Glow       GlowSpec        `yaml:"glow" json:"glow"`
	TextColor  color.NRGBA     `yaml:"-" json:"-"`
	Accent     color.NRGBA     `yaml:"-" json:"-"`
	Decoration DecorationStyle `yaml:"decoration" json:"decoration"`
}

// Theme is one resolved catalog entry: typography plus background plus a name.
type Theme struct {
	Name       string     `yaml:"name" json:"name"`
	Typography Typography `yaml:"typography" json:"typography"`
	Background Background `yaml:"background" json:"background"`
}

// DecorationStyle returns the decoration style of the theme's background.
func (t Theme) DecorationStyle() DecorationStyle {
	if t.Background.Decoration == "" {
		return DecorationNone
	}
	return t.Background.Decoration
}

// LayoutVariant is the vertical text arrangement of a variation.
type LayoutVariant string

const (
	LayoutCentered LayoutVariant = "centered"
	LayoutTopHeavy LayoutVariant = "top-heavy"
	LayoutBalanced LayoutVariant = "balanced"
)

// VariationParams are the non-text parameters that make renders distinct.
type VariationParams struct {
	Index             int           `yaml:"index" json:"index"`
	DecorationOffset  float64       `yaml:"decoration_offset" json:"decorationOffset"`
	VignetteIntensity float64       `yaml:"vignette_intensity" json:"vignetteIntensity"` // [0,1]
	GlowIntensity     float64       `yaml:"glow_intensity" json:"glowIntensity"`
	DecorationCount   int           `yaml:"decoration_count" json:"decorationCount"`
	LayoutVariant     LayoutVariant `yaml:"layout_variant" json:"layoutVariant"`
}

// FittedText is the result of fitting text into a box.
type FittedText struct {
	FontSize    float64  `json:"fontSize"`
	LineHeight  float64  `json:"lineHeight"` // Multiplier applied to FontSize
	Lines       []string `json:"lines"`
	TotalHeight float64  `json:"totalHeight"`
}

// LinePitch returns the distance in pixels between consecutive baselines.
func (f FittedText) LinePitch() float64 {
	return f.FontSize * f.LineHeight
}
