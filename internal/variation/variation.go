// Package variation holds the fixed set of non-text render parameters that
// make renders of identical content look distinct.
package variation

import "github.com/f3rmion/wishcard/internal/card"

var presets = [...]card.VariationParams{
	{
		Index:             0,
		DecorationOffset:  0,
		VignetteIntensity: 0.35,
		GlowIntensity:     0.6,
		DecorationCount:   12,
		LayoutVariant:     card.LayoutCentered,
	},
	{
		Index:             1,
		DecorationOffset:  28,
		VignetteIntensity: 0.5,
		GlowIntensity:     0.8,
		DecorationCount:   18,
		LayoutVariant:     card.LayoutBalanced,
	},
	{
		Index:             2,
		DecorationOffset:  56,
		VignetteIntensity: 0.65,
		GlowIntensity:     1.0,
		DecorationCount:   24,
		LayoutVariant:     card.LayoutTopHeavy,
	},
}

// Count returns the number of variations.
func Count() int {
	return len(presets)
}

// ParamsFor returns the preset for index mod Count. Negative indexes wrap.
func ParamsFor(index int) card.VariationParams {
	n := len(presets)
	return presets[((index%n)+n)%n]
}

// All returns a copy of every preset in order.
func All() []card.VariationParams {
	out := make([]card.VariationParams, len(presets))
	copy(out, presets[:])
	return out
}
