package compose

import (
	"context"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/f3rmion/wishcard/internal/card"
)

// drawBackground paints the theme backdrop and reports whether an image
// texture was used. A texture that cannot be loaded falls back to the
// gradient without surfacing an error.
func (c *Compositor) drawBackground(ctx context.Context, s *Surface, bg card.Background) bool {
	if bg.Texture != "" && c.assets != nil {
		tex, err := c.assets.Load(ctx, bg.Texture)
		if err == nil {
			filled := imaging.Fill(tex, s.Width(), s.Height(), imaging.Center, imaging.Lanczos)
			draw.Draw(s.img, s.img.Bounds(), filled, image.Point{}, draw.Src)
			fillAlpha(s.img, color.NRGBA{A: 255}, clamp01(bg.Overlay))
			return true
		}
		c.logger.Warn("background texture unavailable, using gradient",
			"texture", bg.Texture, "error", err)
	}

	drawGradient(s.img, bg.Gradient[0], bg.Gradient[1])

	w, h := float64(s.Width()), float64(s.Height())
	soft := bg.Accent
	softCircle(s.img, w*0.18, h*0.22, w*0.38, soft, 0.22)
	softCircle(s.img, w*0.85, h*0.82, w*0.45, soft, 0.16)
	return false
}

// drawGradient fills img with a vertical two-stop gradient.
func drawGradient(img *image.NRGBA, top, bottom color.NRGBA) {
	b := img.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		row := lerpColor(top, bottom, t)
		off := img.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < b.Dx(); x++ {
			i := off + x*4
			img.Pix[i+0] = row.R
			img.Pix[i+1] = row.G
			img.Pix[i+2] = row.B
			img.Pix[i+3] = 255
		}
	}
}

// softCircle blends c into img with alpha falling off linearly from the
// centre to radius r.
func softCircle(img *image.NRGBA, cx, cy, r float64, c color.NRGBA, strength float64) {
	if r <= 0 {
		return
	}
	b := img.Bounds()
	x0 := max(b.Min.X, int(cx-r))
	x1 := min(b.Max.X, int(cx+r)+1)
	y0 := max(b.Min.Y, int(cy-r))
	y1 := min(b.Max.Y, int(cy+r)+1)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy) / r
			if d >= 1 {
				continue
			}
			blendPixel(img, x, y, c, strength*(1-d))
		}
	}
}

// vignette darkens img toward its corners by intensity in [0,1].
func vignette(img *image.NRGBA, intensity float64) {
	intensity = clamp01(intensity)
	if intensity == 0 {
		return
	}
	b := img.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	maxD := math.Hypot(cx, cy)
	black := color.NRGBA{A: 255}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			d := math.Hypot(float64(x-b.Min.X)-cx, float64(y-b.Min.Y)-cy) / maxD
			if d < 0.45 {
				continue
			}
			t := (d - 0.45) / 0.55
			blendPixel(img, x, y, black, intensity*t*t)
		}
	}
}

// fillAlpha blends c over the whole image at alpha a.
func fillAlpha(img *image.NRGBA, c color.NRGBA, a float64) {
	if a <= 0 {
		return
	}
	c.A = uint8(math.Round(255 * clamp01(a)))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Over)
}

func blendPixel(img *image.NRGBA, x, y int, c color.NRGBA, a float64) {
	a = clamp01(a)
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	p[0] = uint8(float64(p[0])*(1-a) + float64(c.R)*a)
	p[1] = uint8(float64(p[1])*(1-a) + float64(c.G)*a)
	p[2] = uint8(float64(p[2])*(1-a) + float64(c.B)*a)
	if p[3] < 255 {
		p[3] = uint8(math.Min(255, float64(p[3])+255*a))
	}
}

func lerpColor(a, b color.NRGBA, t float64) color.NRGBA {
	l := func(x, y uint8) uint8 { return uint8(math.Round(float64(x) + (float64(y)-float64(x))*t)) }
	return color.NRGBA{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
