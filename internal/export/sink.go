package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/f3rmion/wishcard/internal/clipboard"
	"github.com/f3rmion/wishcard/internal/gallery"
)

// Sink delivers an artifact somewhere and returns where it went.
type Sink interface {
	Deliver(ctx context.Context, a Artifact) (string, error)
}

// DirSink writes artifacts into a directory.
type DirSink struct {
	Dir string
}

// Deliver implements Sink.
func (s DirSink) Deliver(ctx context.Context, a Artifact) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	path := filepath.Join(dir, a.Filename())
	if err := os.WriteFile(path, a.Data, 0644); err != nil {
		return "", fmt.Errorf("writing card: %w", err)
	}
	return path, nil
}

// ClipboardSink copies a reference to the artifact to the clipboard. With
// Then set, the artifact is delivered there first and its location is
// copied; otherwise the data URL is.
type ClipboardSink struct {
	Then  Sink
	Write func(string) error // Defaults to clipboard.Write
}

// Deliver implements Sink.
func (s ClipboardSink) Deliver(ctx context.Context, a Artifact) (string, error) {
	text := a.DataURL()
	if s.Then != nil {
		loc, err := s.Then.Deliver(ctx, a)
		if err != nil {
			return "", err
		}
		if abs, err := filepath.Abs(loc); err == nil {
			loc = abs
		}
		text = loc
	}

	write := s.Write
	if write == nil {
		write = clipboard.Write
	}
	if err := write(text); err != nil {
		return "", fmt.Errorf("copying to clipboard: %w", err)
	}
	return text, nil
}

// GallerySink records artifacts in the render history, optionally after
// delivering them to Then.
type GallerySink struct {
	Store *gallery.Store
	Then  Sink
}

// Deliver implements Sink.
func (s GallerySink) Deliver(ctx context.Context, a Artifact) (string, error) {
	var loc string
	if s.Then != nil {
		var err error
		if loc, err = s.Then.Deliver(ctx, a); err != nil {
			return "", err
		}
	}

	err := s.Store.Record(ctx, gallery.Entry{
		ID:        a.ID,
		CreatedAt: a.CreatedAt,
		Title:     a.Content.Title,
		Message:   a.Content.Message,
		Footer:    a.Content.Footer,
		Theme:     a.Theme,
		Variation: a.Variation,
		Aspect:    string(a.Aspect),
		Width:     a.Width,
		Height:    a.Height,
		Format:    a.Format,
		Location:  loc,
		Tags:      a.Tags,
	})
	if err != nil {
		return "", err
	}
	if loc == "" {
		loc = "gallery:" + a.ID
	}
	return loc, nil
}
