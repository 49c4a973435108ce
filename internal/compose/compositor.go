// Package compose rasterizes card content onto a themed background.
package compose

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"

	"github.com/f3rmion/wishcard/internal/assets"
	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/fonts"
	"github.com/f3rmion/wishcard/internal/sanitize"
)

var (
	// ErrSurfaceUnavailable is returned when no drawing surface can be made.
	ErrSurfaceUnavailable = errors.New("drawing surface unavailable")
	// ErrUnsanitizedText is returned when content still carries a
	// placeholder or instruction token.
	ErrUnsanitizedText = errors.New("card text contains disallowed tokens")
)

// DefaultSafeMargin is the text inset at 1080px width when a request sets none.
const DefaultSafeMargin = 88

// Request is everything needed to render one card.
type Request struct {
	Content    card.CardContent
	Theme      card.Theme
	Params     card.VariationParams
	Width      int
	Height     int
	SafeMargin int    // Pixels at 1080px width; 0 uses DefaultSafeMargin
	Branding   string // Small mark drawn at the top edge, optional
	Enhance    bool
	Seed       uint64 // Drives confetti placement
}

// Compositor renders card images. It is safe for concurrent use; each call
// to Compose works on its own surface.
type Compositor struct {
	fonts  *fonts.Registry
	assets assets.Loader
	logger *slog.Logger
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithAssets sets the loader used for background textures.
func WithAssets(l assets.Loader) Option {
	return func(c *Compositor) { c.assets = l }
}

// WithLogger sets the logger used for fallbacks.
func WithLogger(l *slog.Logger) Option {
	return func(c *Compositor) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a compositor drawing with reg.
func New(reg *fonts.Registry, opts ...Option) *Compositor {
	c := &Compositor{
		fonts:  reg,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose renders req. Content is never rewritten: text that fails
// sanitize.ValidContent is rejected with ErrUnsanitizedText.
func (c *Compositor) Compose(ctx context.Context, req Request) (*image.NRGBA, error) {
	if !sanitize.ValidContent(req.Content) || !sanitize.IsValidCardText(req.Branding) {
		return nil, ErrUnsanitizedText
	}

	s, err := NewSurface(req.Width, req.Height, c.fonts)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	unit := float64(req.Width) / 1080
	margin := float64(req.SafeMargin)
	if margin <= 0 {
		margin = DefaultSafeMargin
	}
	margin *= unit

	bg := req.Theme.Background
	onImage := c.drawBackground(ctx, s, bg)
	vignette(s.img, req.Params.VignetteIntensity)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(req.Seed, uint64(req.Params.Index)+1))
	drawDecorations(s, req.Theme.DecorationStyle(), bg.Accent, req.Params, rng)

	plan := planText(s, req.Content, req.Theme.Typography, req.Params.LayoutVariant, margin)
	if err := drawTitle(s, plan.title, bg, req.Params.GlowIntensity); err != nil {
		return nil, fmt.Errorf("drawing title: %w", err)
	}
	if err := drawBody(s, plan.body, bg); err != nil {
		return nil, fmt.Errorf("drawing message: %w", err)
	}
	if err := drawFooter(s, req.Content.Footer, req.Branding, bg, margin, onImage); err != nil {
		return nil, fmt.Errorf("drawing footer: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if req.Enhance {
		return enhance(s.img, req.Params.VignetteIntensity), nil
	}
	return s.img, nil
}
