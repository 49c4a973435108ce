package assets_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/f3rmion/wishcard/internal/assets"
)

func encodePNG(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(8, 6, color.NRGBA{R: 200, G: 150, B: 40, A: 255})
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		t.Fatalf("encoding png: %v", err)
	}
	return buf.Bytes()
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{"jpeg", append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 8)...), "jpeg"},
		{"png", append([]byte{0x89, 'P', 'N', 'G'}, make([]byte, 8)...), "png"},
		{"gif", []byte("GIF89a______"), "gif"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBP"), "webp"},
	}
	for _, tt := range tests {
		got, err := assets.DetectFormat(tt.data)
		if err != nil || got != tt.want {
			t.Errorf("%s: DetectFormat = %q, %v", tt.name, got, err)
		}
	}

	if _, err := assets.DetectFormat([]byte("short")); !errors.Is(err, assets.ErrUnknownFormat) {
		t.Errorf("short data: expected ErrUnknownFormat, got %v", err)
	}
	if _, err := assets.DetectFormat([]byte("not an image at all")); !errors.Is(err, assets.ErrUnknownFormat) {
		t.Errorf("text data: expected ErrUnknownFormat, got %v", err)
	}
}

func TestDirLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "gold-foil.png"), encodePNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	l := assets.NewDirLoader(dir)

	img, err := l.Load(context.Background(), "gold-foil")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 8, 6) {
		t.Errorf("bounds = %v", img.Bounds())
	}

	if _, err := l.Load(context.Background(), "rose-petals"); !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("missing texture: expected ErrNotFound, got %v", err)
	}
	if _, err := l.Load(context.Background(), "../gold-foil"); !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("path traversal: expected ErrNotFound, got %v", err)
	}
}

func TestDirLoader_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "city-lights.jpg"), []byte("garbage garbage garbage"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := assets.NewDirLoader(dir).Load(context.Background(), "city-lights")
	if err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
}

func TestHTTPLoader(t *testing.T) {
	data := encodePNG(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/textures/gold-foil.png" {
			w.Write(data)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	l := assets.NewHTTPLoader(srv.URL+"/textures/", srv.Client())
	if _, err := l.Load(context.Background(), "gold-foil"); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, err := l.Load(context.Background(), "missing"); !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestChain(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "gold-foil.png"), encodePNG(t), 0o644); err != nil {
		t.Fatal(err)
	}
	c := assets.Chain{assets.NewDirLoader(t.TempDir()), assets.NewDirLoader(dir)}
	if _, err := c.Load(context.Background(), "gold-foil"); err != nil {
		t.Fatalf("chain should fall through to second loader: %v", err)
	}
	if _, err := (assets.Chain{}).Load(context.Background(), "x"); !errors.Is(err, assets.ErrNotFound) {
		t.Errorf("empty chain: expected ErrNotFound, got %v", err)
	}
}
