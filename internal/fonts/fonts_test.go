package fonts_test

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/f3rmion/wishcard/internal/fonts"
)

func TestNewRegistry_BuiltinFamilies(t *testing.T) {
	r, err := fonts.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, fam := range []string{fonts.FamilyBody, fonts.FamilyDisplay, fonts.FamilyElegant,
		fonts.FamilyModern, fonts.FamilyClassic, fonts.FamilyHeavy, fonts.FamilyMono} {
		if !r.Has(fam) {
			t.Errorf("missing family %s", fam)
		}
	}
}

func TestNewFace_WiderAtLargerSize(t *testing.T) {
	r, err := fonts.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	small, err := r.NewFace(fonts.FamilyBody, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	large, err := r.NewFace(fonts.FamilyBody, 40)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ws := font.MeasureString(small, "Happy Birthday")
	wl := font.MeasureString(large, "Happy Birthday")
	if wl <= ws {
		t.Errorf("expected larger face to be wider: %v <= %v", wl, ws)
	}
}

func TestNewFace_UnknownFamilyFallsBack(t *testing.T) {
	r, err := fonts.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := r.NewFace("no-such-family", 24); err != nil {
		t.Errorf("expected fallback to body family, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	r, err := fonts.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "custom.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile("custom", path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if !r.Has("custom") {
		t.Error("custom family not registered")
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadFile("bad", bad); err == nil {
		t.Error("expected error for invalid font data")
	}
}
