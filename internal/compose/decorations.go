package compose

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"golang.org/x/image/vector"

	"github.com/f3rmion/wishcard/internal/card"
)

// kappa approximates a quarter circle with one cubic Bézier.
const kappa = 0.5522847498

// drawDecorations paints the theme's decoration layer. Positions walk the
// surface perimeter starting at params.DecorationOffset; confetti sizes and
// angles come from rng so a fixed seed gives a fixed render.
func drawDecorations(s *Surface, style card.DecorationStyle, accent color.NRGBA, params card.VariationParams, rng *rand.Rand) {
	w, h := float64(s.Width()), float64(s.Height())
	unit := w / 1080
	count := params.DecorationCount

	switch style {
	case card.DecorationSparkle:
		for i := 0; i < count; i++ {
			x, y := perimeterPoint(w, h, 48*unit, params.DecorationOffset*unit, i, count)
			r := (10 + float64(i%4)*6) * unit
			star(s.img, x, y, r, float64(i)*0.35, withAlpha(accent, 200))
		}
	case card.DecorationConfetti:
		palette := []color.NRGBA{
			accent,
			{R: 0xFF, G: 0x6B, B: 0x9D, A: 0xFF},
			{R: 0x4E, G: 0xCD, B: 0xC4, A: 0xFF},
			{R: 0xFF, G: 0xE6, B: 0x6D, A: 0xFF},
		}
		for i := 0; i < count; i++ {
			x, y := perimeterPoint(w, h, 40*unit, params.DecorationOffset*unit, i, count)
			x += (rng.Float64() - 0.5) * 30 * unit
			y += (rng.Float64() - 0.5) * 30 * unit
			rw := (10 + rng.Float64()*10) * unit
			rh := (4 + rng.Float64()*4) * unit
			angle := rng.Float64() * math.Pi
			rotatedRect(s.img, x, y, rw, rh, angle, withAlpha(palette[rng.IntN(len(palette))], 220))
		}
	case card.DecorationMinimal:
		inset := (36 + params.DecorationOffset/4) * unit
		arm := 90 * unit
		thick := 4 * unit
		c := withAlpha(accent, 210)
		corners(s.img, inset, arm, thick, c)
	case card.DecorationBokeh:
		for i := 0; i < count; i++ {
			x, y := perimeterPoint(w, h, 80*unit, params.DecorationOffset*unit, i, count)
			r := (18 + float64((i*7)%5)*10) * unit
			circle(s.img, x, y, r, withAlpha(accent, 60))
		}
	case card.DecorationNone:
	}
}

// perimeterPoint returns the i-th of n points spaced evenly around a
// rectangle inset from the surface edges, shifted along it by offset.
func perimeterPoint(w, h, inset, offset float64, i, n int) (float64, float64) {
	iw, ih := w-2*inset, h-2*inset
	if n <= 0 || iw <= 0 || ih <= 0 {
		return w / 2, h / 2
	}
	perim := 2 * (iw + ih)
	d := math.Mod(offset+perim*float64(i)/float64(n), perim)
	switch {
	case d < iw:
		return inset + d, inset
	case d < iw+ih:
		return w - inset, inset + d - iw
	case d < 2*iw+ih:
		return w - inset - (d - iw - ih), h - inset
	default:
		return inset, h - inset - (d - 2*iw - ih)
	}
}

func newRasterizer(dst *image.NRGBA) *vector.Rasterizer {
	b := dst.Bounds()
	return vector.NewRasterizer(b.Dx(), b.Dy())
}

func fill(dst *image.NRGBA, z *vector.Rasterizer, c color.NRGBA) {
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})
}

// star draws a four-point star centred on (cx, cy).
func star(dst *image.NRGBA, cx, cy, r, rot float64, c color.NRGBA) {
	z := newRasterizer(dst)
	inner := r * 0.28
	for k := 0; k < 8; k++ {
		rad := r
		if k%2 == 1 {
			rad = inner
		}
		a := rot + float64(k)*math.Pi/4
		x, y := float32(cx+rad*math.Cos(a)), float32(cy+rad*math.Sin(a))
		if k == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	fill(dst, z, c)
}

func rotatedRect(dst *image.NRGBA, cx, cy, w, h, angle float64, c color.NRGBA) {
	z := newRasterizer(dst)
	sin, cos := math.Sincos(angle)
	pts := [4][2]float64{{-w / 2, -h / 2}, {w / 2, -h / 2}, {w / 2, h / 2}, {-w / 2, h / 2}}
	for k, p := range pts {
		x := float32(cx + p[0]*cos - p[1]*sin)
		y := float32(cy + p[0]*sin + p[1]*cos)
		if k == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
	fill(dst, z, c)
}

func circle(dst *image.NRGBA, cx, cy, r float64, c color.NRGBA) {
	z := newRasterizer(dst)
	k := r * kappa
	f := func(v float64) float32 { return float32(v) }
	z.MoveTo(f(cx+r), f(cy))
	z.CubeTo(f(cx+r), f(cy+k), f(cx+k), f(cy+r), f(cx), f(cy+r))
	z.CubeTo(f(cx-k), f(cy+r), f(cx-r), f(cy+k), f(cx-r), f(cy))
	z.CubeTo(f(cx-r), f(cy-k), f(cx-k), f(cy-r), f(cx), f(cy-r))
	z.CubeTo(f(cx+k), f(cy-r), f(cx+r), f(cy-k), f(cx+r), f(cy))
	z.ClosePath()
	fill(dst, z, c)
}

// corners draws an L-shaped bracket in each corner.
func corners(dst *image.NRGBA, inset, arm, thick float64, c color.NRGBA) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	rect := func(x0, y0, x1, y1 float64) {
		z := newRasterizer(dst)
		z.MoveTo(float32(x0), float32(y0))
		z.LineTo(float32(x1), float32(y0))
		z.LineTo(float32(x1), float32(y1))
		z.LineTo(float32(x0), float32(y1))
		z.ClosePath()
		fill(dst, z, c)
	}
	for _, sx := range []float64{0, 1} {
		for _, sy := range []float64{0, 1} {
			x := inset + sx*(w-2*inset)
			y := inset + sy*(h-2*inset)
			dx := 1 - 2*sx
			dy := 1 - 2*sy
			rect(math.Min(x, x+dx*arm), math.Min(y, y+dy*thick), math.Max(x, x+dx*arm), math.Max(y, y+dy*thick))
			rect(math.Min(x, x+dx*thick), math.Min(y, y+dy*arm), math.Max(x, x+dx*thick), math.Max(y, y+dy*arm))
		}
	}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}
