// Package fonts loads the font families used to draw card text.
package fonts

import (
	"fmt"
	"os"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/opentype"
)

// Built-in family names.
const (
	FamilyBody    = "body"
	FamilyDisplay = "display"
	FamilyElegant = "elegant"
	FamilyModern  = "modern"
	FamilyClassic = "classic"
	FamilyHeavy   = "heavy"
	FamilyMono    = "mono"
)

var builtins = map[string][]byte{
	FamilyBody:    goregular.TTF,
	FamilyDisplay: gobold.TTF,
	FamilyElegant: goitalic.TTF,
	FamilyModern:  gomedium.TTF,
	FamilyClassic: gosmallcaps.TTF,
	FamilyHeavy:   gobolditalic.TTF,
	FamilyMono:    gomono.TTF,
}

// DPI at which font sizes are interpreted; at 72 a size is a pixel height.
const DPI = 72

// source is a parsed font that can produce faces at any size.
type source interface {
	newFace(size float64) (font.Face, error)
}

type ttfSource struct{ f *truetype.Font }

func (s ttfSource) newFace(size float64) (font.Face, error) {
	return truetype.NewFace(s.f, &truetype.Options{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	}), nil
}

type otfSource struct{ f *opentype.Font }

func (s otfSource) newFace(size float64) (font.Face, error) {
	return opentype.NewFace(s.f, &opentype.FaceOptions{
		Size:    size,
		DPI:     DPI,
		Hinting: font.HintingFull,
	})
}

// Registry maps family names to parsed fonts. Parsed fonts are shared and
// read-only; faces are not safe for concurrent use, so NewFace hands each
// caller its own.
type Registry struct {
	mu      sync.RWMutex
	sources map[string]source
}

// NewRegistry returns a registry holding the built-in Go font families.
func NewRegistry() (*Registry, error) {
	r := &Registry{sources: make(map[string]source, len(builtins))}
	for name, data := range builtins {
		f, err := truetype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing built-in font %s: %w", name, err)
		}
		r.sources[name] = ttfSource{f: f}
	}
	return r, nil
}

// LoadFile registers the font file at path under family, replacing any
// existing family of that name. TrueType, OpenType and collections (first
// font) are accepted.
func (r *Registry) LoadFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading font file: %w", err)
	}
	return r.Load(family, data)
}

// Load registers font data under family.
func (r *Registry) Load(family string, data []byte) error {
	src, err := parse(data)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", family, err)
	}

	r.mu.Lock()
	r.sources[family] = src
	r.mu.Unlock()
	return nil
}

func parse(data []byte) (source, error) {
	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if f, err := coll.Font(0); err == nil {
			return otfSource{f: f}, nil
		}
	}

	if f, err := truetype.Parse(data); err == nil {
		return ttfSource{f: f}, nil
	}

	f, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	return otfSource{f: f}, nil
}

// Has reports whether family is registered.
func (r *Registry) Has(family string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.sources[family]
	return ok
}

// Families returns the registered family names.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.sources))
	for name := range r.sources {
		out = append(out, name)
	}
	return out
}

// NewFace returns a new face for family at size. Unknown families fall back
// to the body family.
func (r *Registry) NewFace(family string, size float64) (font.Face, error) {
	r.mu.RLock()
	src, ok := r.sources[family]
	if !ok {
		src, ok = r.sources[FamilyBody]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("font family %q not registered", family)
	}
	return src.newFace(size)
}
