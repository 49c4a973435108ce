package compose

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/f3rmion/wishcard/internal/fonts"
)

// MaxSurfaceSide bounds either side of a surface in pixels.
const MaxSurfaceSide = 8192

type faceKey struct {
	family string
	size   float64
}

// Surface is an RGBA drawing target with its own font faces. A Surface is
// used by one goroutine at a time.
type Surface struct {
	img   *image.NRGBA
	reg   *fonts.Registry
	faces map[faceKey]font.Face
}

// NewSurface allocates a w×h transparent surface.
func NewSurface(w, h int, reg *fonts.Registry) (*Surface, error) {
	if w <= 0 || h <= 0 || w > MaxSurfaceSide || h > MaxSurfaceSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceUnavailable, w, h)
	}
	if reg == nil {
		return nil, fmt.Errorf("%w: no font registry", ErrSurfaceUnavailable)
	}
	return &Surface{
		img:   image.NewNRGBA(image.Rect(0, 0, w, h)),
		reg:   reg,
		faces: make(map[faceKey]font.Face),
	}, nil
}

// Image returns the backing image.
func (s *Surface) Image() *image.NRGBA { return s.img }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// Close releases the cached faces.
func (s *Surface) Close() error {
	for k, f := range s.faces {
		f.Close()
		delete(s.faces, k)
	}
	return nil
}

func (s *Surface) face(family string, size float64) (font.Face, error) {
	k := faceKey{family: family, size: math.Round(size*100) / 100}
	if f, ok := s.faces[k]; ok {
		return f, nil
	}
	f, err := s.reg.NewFace(family, k.size)
	if err != nil {
		return nil, err
	}
	s.faces[k] = f
	return f, nil
}

// MeasureString implements layout.Measurer.
func (s *Surface) MeasureString(family string, size float64, text string) float64 {
	f, err := s.face(family, size)
	if err != nil {
		return 0
	}
	return fixedToFloat(font.MeasureString(f, text))
}

// Ascent returns the ascent of family at size.
func (s *Surface) Ascent(family string, size float64) float64 {
	f, err := s.face(family, size)
	if err != nil {
		return size * 0.8
	}
	return fixedToFloat(f.Metrics().Ascent)
}

// DrawString draws text with its baseline at (x, y) onto dst.
func (s *Surface) DrawString(dst draw.Image, family string, size, x, y float64, c color.Color, text string) error {
	f, err := s.face(family, size)
	if err != nil {
		return fmt.Errorf("loading face %s@%.1f: %w", family, size, err)
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f,
		Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(y)},
	}
	d.DrawString(text)
	return nil
}

// Layer returns a transparent image the size of the surface.
func (s *Surface) Layer() *image.NRGBA {
	return image.NewNRGBA(s.img.Bounds())
}

// Composite draws src over the surface.
func (s *Surface) Composite(src image.Image) {
	draw.Draw(s.img, s.img.Bounds(), src, src.Bounds().Min, draw.Over)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}
