package compose_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/compose"
	"github.com/f3rmion/wishcard/internal/fonts"
	"github.com/f3rmion/wishcard/internal/layout"
	"github.com/f3rmion/wishcard/internal/theme"
	"github.com/f3rmion/wishcard/internal/variation"
)

var _ layout.Measurer = (*compose.Surface)(nil)

type stubLoader struct {
	img image.Image
	err error
}

func (l stubLoader) Load(context.Context, string) (image.Image, error) {
	return l.img, l.err
}

func newRegistry(t *testing.T) *fonts.Registry {
	t.Helper()
	reg, err := fonts.NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func themeByID(t *testing.T, id string) card.Theme {
	t.Helper()
	th, ok := theme.DefaultCatalog().Lookup(id)
	if !ok {
		t.Fatalf("theme %q not in catalog", id)
	}
	return th
}

func baseRequest(t *testing.T) compose.Request {
	return compose.Request{
		Content: card.CardContent{
			Title:   "Happy Birthday!",
			Message: "Wishing you joy, laughter and cake today and every day of the year ahead. 🎉",
			Footer:  "Made with love",
		},
		Theme:  themeByID(t, "sunset-party"),
		Params: variation.ParamsFor(0),
		Width:  270,
		Height: 270,
		Seed:   42,
	}
}

func TestCompose_RendersRequestedSize(t *testing.T) {
	c := compose.New(newRegistry(t))
	img, err := c.Compose(context.Background(), baseRequest(t))
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	if img.Bounds() != image.Rect(0, 0, 270, 270) {
		t.Fatalf("bounds = %v", img.Bounds())
	}

	first := img.NRGBAAt(135, 5)
	uniform := true
	for y := 0; y < 270 && uniform; y += 9 {
		for x := 0; x < 270; x += 9 {
			if img.NRGBAAt(x, y) != first {
				uniform = false
				break
			}
		}
	}
	if uniform {
		t.Error("rendered card is a single flat colour")
	}
}

func TestCompose_Deterministic(t *testing.T) {
	c := compose.New(newRegistry(t))
	req := baseRequest(t)

	a, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("identical requests rendered differently")
	}

	req.Params = variation.ParamsFor(2)
	other, err := c.Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(a.Pix, other.Pix) {
		t.Error("different variation params rendered identically")
	}
}

func TestCompose_RejectsUnsanitizedText(t *testing.T) {
	c := compose.New(newRegistry(t))

	tests := []struct {
		name   string
		mutate func(*compose.Request)
	}{
		{"title placeholder", func(r *compose.Request) { r.Content.Title = "Happy Birthday {NAME}" }},
		{"message label", func(r *compose.Request) { r.Content.Message = "Message: have fun" }},
		{"footer instruction", func(r *compose.Request) { r.Content.Footer = "Instructions: sign here" }},
		{"branding", func(r *compose.Request) { r.Branding = "Prompt: brand" }},
	}
	for _, tt := range tests {
		req := baseRequest(t)
		tt.mutate(&req)
		if _, err := c.Compose(context.Background(), req); !errors.Is(err, compose.ErrUnsanitizedText) {
			t.Errorf("%s: expected ErrUnsanitizedText, got %v", tt.name, err)
		}
	}
}

func TestCompose_SurfaceUnavailable(t *testing.T) {
	req := baseRequest(t)
	req.Width = 0
	if _, err := compose.New(newRegistry(t)).Compose(context.Background(), req); !errors.Is(err, compose.ErrSurfaceUnavailable) {
		t.Errorf("zero width: expected ErrSurfaceUnavailable, got %v", err)
	}

	if _, err := compose.New(nil).Compose(context.Background(), baseRequest(t)); !errors.Is(err, compose.ErrSurfaceUnavailable) {
		t.Errorf("nil registry: expected ErrSurfaceUnavailable, got %v", err)
	}
}

func TestCompose_TextureFallback(t *testing.T) {
	reg := newRegistry(t)
	req := baseRequest(t)
	req.Theme = themeByID(t, "midnight-gold")

	broken := compose.New(reg, compose.WithAssets(stubLoader{err: errors.New("decode failed")}))
	plain := compose.New(reg)

	a, err := broken.Compose(context.Background(), req)
	if err != nil {
		t.Fatalf("texture failure must not surface: %v", err)
	}
	b, err := plain.Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("failed texture should render exactly like the gradient fallback")
	}

	red := imaging.New(40, 40, color.NRGBA{R: 255, A: 255})
	textured, err := compose.New(reg, compose.WithAssets(stubLoader{img: red})).Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(textured.Pix, b.Pix) {
		t.Error("loaded texture should change the background")
	}
}

func TestCompose_EveryThemeAndVariation(t *testing.T) {
	reg := newRegistry(t)
	c := compose.New(reg)
	cat := theme.DefaultCatalog()

	for _, id := range cat.IDs() {
		th, _ := cat.Lookup(id)
		for _, p := range variation.All() {
			req := baseRequest(t)
			req.Theme = th
			req.Params = p
			req.Enhance = true
			req.Branding = "wishcard"
			img, err := c.Compose(context.Background(), req)
			if err != nil {
				t.Errorf("%s/%d: %v", id, p.Index, err)
				continue
			}
			if img.Bounds().Dx() != 270 {
				t.Errorf("%s/%d: enhanced width %d", id, p.Index, img.Bounds().Dx())
			}
		}
	}
}

func TestCompose_StoryAspect(t *testing.T) {
	req := baseRequest(t)
	req.Width, req.Height = 270, 480
	img, err := compose.New(newRegistry(t)).Compose(context.Background(), req)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dy() != 480 {
		t.Errorf("height = %d", img.Bounds().Dy())
	}
}

func TestCompose_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := compose.New(newRegistry(t)).Compose(ctx, baseRequest(t)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestSurface_Measure(t *testing.T) {
	s, err := compose.NewSurface(100, 100, newRegistry(t))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	small := s.MeasureString(fonts.FamilyBody, 20, "Happy Birthday")
	large := s.MeasureString(fonts.FamilyBody, 40, "Happy Birthday")
	if small <= 0 || large <= small {
		t.Errorf("measure small=%v large=%v", small, large)
	}
	if s.MeasureString("no-such-family", 20, "Happy Birthday") != small {
		t.Error("unknown family should measure with the body font")
	}
}

func TestNewSurface_Bounds(t *testing.T) {
	reg := newRegistry(t)
	for _, sz := range [][2]int{{0, 10}, {10, -1}, {compose.MaxSurfaceSide + 1, 10}} {
		if _, err := compose.NewSurface(sz[0], sz[1], reg); !errors.Is(err, compose.ErrSurfaceUnavailable) {
			t.Errorf("%v: expected ErrSurfaceUnavailable, got %v", sz, err)
		}
	}
}
