package compose

import (
	"image"

	"github.com/disintegration/imaging"
)

// Enhancement strengths.
const (
	contrastBoost  = 8.0
	sharpenSigma   = 1.0
	sharpenOpacity = 0.25
	finalVignette  = 0.35
)

// enhance returns a contrast-lifted, lightly sharpened copy of img with a
// second vignette scaled by intensity. img itself is not modified.
func enhance(img *image.NRGBA, intensity float64) *image.NRGBA {
	out := imaging.AdjustContrast(img, contrastBoost)
	sharp := imaging.Sharpen(out, sharpenSigma)
	out = imaging.Overlay(out, sharp, image.Point{}, sharpenOpacity)
	vignette(out, intensity*finalVignette)
	return out
}
