// Package export renders card content to encoded images and delivers them.
package export

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/compose"
	"github.com/f3rmion/wishcard/internal/theme"
	"github.com/f3rmion/wishcard/internal/variation"
)

// Output formats.
const (
	FormatPNG  = "png"
	FormatJPEG = "jpeg"
)

// ErrUnknownFormat is returned for an output format other than png or jpeg.
var ErrUnknownFormat = errors.New("unknown output format")

// Options control rendering and encoding.
type Options struct {
	Width       int // Square side and story width; 0 means 1080
	Format      string
	JPEGQuality int
	Enhance     bool
	Branding    string
}

func (o Options) normalized() Options {
	if o.Width <= 0 {
		o.Width = 1080
	}
	switch strings.ToLower(o.Format) {
	case "", FormatPNG:
		o.Format = FormatPNG
	case "jpg", FormatJPEG:
		o.Format = FormatJPEG
	}
	if o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		o.JPEGQuality = 92
	}
	return o
}

// Dimensions returns the pixel size of aspect at width.
func Dimensions(aspect card.Aspect, width int) (int, int) {
	if aspect == card.AspectStory {
		return width, width * 16 / 9
	}
	return width, width
}

// Artifact is one encoded card.
type Artifact struct {
	ID        string           `json:"id"`
	Aspect    card.Aspect      `json:"aspect"`
	Variation int              `json:"variation"`
	Theme     string           `json:"theme"`
	Width     int              `json:"width"`
	Height    int              `json:"height"`
	Format    string           `json:"format"`
	Content   card.CardContent `json:"content"`
	Tags      []string         `json:"tags,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	Data      []byte           `json:"-" yaml:"-"`
}

// MIME returns the media type of the encoded data.
func (a Artifact) MIME() string {
	if a.Format == FormatJPEG {
		return "image/jpeg"
	}
	return "image/png"
}

// Ext returns the file extension including the dot.
func (a Artifact) Ext() string {
	if a.Format == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// Filename returns a stable file name for the artifact.
func (a Artifact) Filename() string {
	id := strings.ReplaceAll(a.ID, "-", "")
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf("wishcard-%s-v%d-%s%s", a.Aspect, a.Variation+1, id, a.Ext())
}

// DataURL returns the artifact as a base64 data URL.
func (a Artifact) DataURL() string {
	return "data:" + a.MIME() + ";base64," + base64.StdEncoding.EncodeToString(a.Data)
}

// Job is one render request.
type Job struct {
	Content    card.CardContent
	Theme      card.Theme
	Params     card.VariationParams
	Aspect     card.Aspect
	SafeMargin int
	Tags       []string
}

// Pipeline renders and encodes cards.
type Pipeline struct {
	compositor *compose.Compositor
	resolver   *theme.Resolver
	opts       Options
	logger     *slog.Logger
}

// NewPipeline creates a pipeline. A nil resolver uses the default catalog
// and a nil logger discards.
func NewPipeline(c *compose.Compositor, r *theme.Resolver, opts Options, logger *slog.Logger) *Pipeline {
	if r == nil {
		r = theme.NewResolver(nil)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{compositor: c, resolver: r, opts: opts.normalized(), logger: logger}
}

// Resolver returns the theme resolver used for variations.
func (p *Pipeline) Resolver() *theme.Resolver { return p.resolver }

// Export renders content with theme and params at aspect.
func (p *Pipeline) Export(ctx context.Context, content card.CardContent, th card.Theme, params card.VariationParams, aspect card.Aspect) (Artifact, error) {
	return p.Render(ctx, Job{Content: content, Theme: th, Params: params, Aspect: aspect})
}

// Render renders one job. A failure leaves no partial artifact.
func (p *Pipeline) Render(ctx context.Context, job Job) (Artifact, error) {
	w, h := Dimensions(job.Aspect, p.opts.Width)
	img, err := p.compositor.Compose(ctx, compose.Request{
		Content:    job.Content,
		Theme:      job.Theme,
		Params:     job.Params,
		Width:      w,
		Height:     h,
		SafeMargin: job.SafeMargin,
		Branding:   p.opts.Branding,
		Enhance:    p.opts.Enhance,
		Seed:       seedFor(job.Content),
	})
	if err != nil {
		return Artifact{}, fmt.Errorf("composing card: %w", err)
	}

	var buf bytes.Buffer
	switch p.opts.Format {
	case FormatPNG:
		err = imaging.Encode(&buf, img, imaging.PNG)
	case FormatJPEG:
		err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.opts.JPEGQuality))
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, p.opts.Format)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("encoding card: %w", err)
	}

	a := Artifact{
		ID:        uuid.NewString(),
		Aspect:    job.Aspect,
		Variation: job.Params.Index,
		Theme:     job.Theme.Background.ID,
		Width:     w,
		Height:    h,
		Format:    p.opts.Format,
		Content:   job.Content,
		Tags:      job.Tags,
		CreatedAt: time.Now(),
		Data:      buf.Bytes(),
	}
	p.logger.Debug("rendered card",
		"id", a.ID, "theme", a.Theme, "variation", a.Variation,
		"size", fmt.Sprintf("%dx%d", w, h), "bytes", len(a.Data))
	return a, nil
}

// Preview composes job at width without encoding or enhancement.
func (p *Pipeline) Preview(ctx context.Context, job Job, width int) (*image.NRGBA, error) {
	w, h := Dimensions(job.Aspect, width)
	return p.compositor.Compose(ctx, compose.Request{
		Content:    job.Content,
		Theme:      job.Theme,
		Params:     job.Params,
		Width:      w,
		Height:     h,
		SafeMargin: job.SafeMargin,
		Branding:   p.opts.Branding,
		Seed:       seedFor(job.Content),
	})
}

// GenerateVariations renders content once per variation preset, each with
// the theme resolved from seed for that variation. Results keep preset
// order; any failure cancels the rest.
func (p *Pipeline) GenerateVariations(ctx context.Context, content card.CardContent, seed []string, aspect card.Aspect) ([]Artifact, error) {
	presets := variation.All()
	jobs := make([]Job, len(presets))
	for i, params := range presets {
		jobs[i] = Job{
			Content: content,
			Theme:   p.resolver.Resolve(seed, i),
			Params:  params,
			Aspect:  aspect,
		}
	}
	return p.RenderAll(ctx, jobs)
}

// RenderAll renders jobs concurrently and returns artifacts in job order.
func (p *Pipeline) RenderAll(ctx context.Context, jobs []Job) ([]Artifact, error) {
	out := make([]Artifact, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		eg.Go(func() error {
			a, err := p.Render(egCtx, job)
			if err != nil {
				return fmt.Errorf("variation %d: %w", job.Params.Index+1, err)
			}
			out[i] = a
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// seedFor derives the decoration seed from the text so identical content
// renders identically.
func seedFor(c card.CardContent) uint64 {
	return uint64(uint32(theme.Hash(c.Title + "\x00" + c.Message + "\x00" + c.Footer)))
}
