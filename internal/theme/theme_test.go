package theme_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/theme"
)

func TestHash_MatchesJavaStringHash(t *testing.T) {
	tests := []struct {
		in   string
		want int32
	}{
		{"", 0},
		{"a", 97},
		{"hello", 99162322},
		{"polygenelubricants", math.MinInt32},
	}
	for _, tt := range tests {
		if got := theme.Hash(tt.in); got != tt.want {
			t.Errorf("Hash(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	first := theme.Resolve([]string{"Sarah", "friend"}, 1, 5)
	if first != 1 {
		t.Errorf("expected index 1, got %d", first)
	}
	for i := 0; i < 100; i++ {
		if got := theme.Resolve([]string{"Sarah", "friend"}, 1, 5); got != first {
			t.Fatalf("call %d: got %d, want %d", i, got, first)
		}
	}
}

func TestResolve_InRange(t *testing.T) {
	names := []string{"Sarah", "Alex", "Priya", "李明", "Zoë", ""}
	for _, name := range names {
		for v := -3; v < 10; v++ {
			for size := 1; size < 9; size++ {
				got := theme.Resolve([]string{name, "friend"}, v, size)
				if got < 0 || got >= size {
					t.Fatalf("Resolve(%q, %d, %d) = %d out of range", name, v, size, got)
				}
			}
		}
	}
}

func TestResolve_EmptyCatalog(t *testing.T) {
	if got := theme.Resolve([]string{"x"}, 0, 0); got != 0 {
		t.Errorf("expected 0 for empty catalog, got %d", got)
	}
}

func TestResolve_SpreadsAcrossCatalog(t *testing.T) {
	seen := make(map[int]bool)
	for v := 0; v < 40; v++ {
		seen[theme.Resolve([]string{"Sarah", "friend"}, v, 5)] = true
	}
	if len(seen) < 3 {
		t.Errorf("expected variations to spread across the catalog, hit %v", seen)
	}
}

func TestResolver_StableTheme(t *testing.T) {
	r := theme.NewResolver(nil)
	a := r.Resolve([]string{"Sarah", "friend"}, 2)
	b := theme.NewResolver(nil).Resolve([]string{"Sarah", "friend"}, 2)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("themes differ across resolvers: %+v vs %+v", a, b)
	}
	if a.Name == "" || a.Typography.ID == "" || a.Background.ID == "" {
		t.Errorf("incomplete theme: %+v", a)
	}
}

func TestResolver_PreferredBackgroundOnFirstVariation(t *testing.T) {
	r := theme.NewResolver(nil)
	got := r.ResolvePreferred([]string{"birthday"}, 0, card.VisualLuxury)
	if got.Background.ID != "midnight-gold" {
		t.Errorf("expected luxury background, got %s", got.Background.ID)
	}

	plain := r.Resolve([]string{"birthday"}, 1)
	if other := r.ResolvePreferred([]string{"birthday"}, 1, card.VisualLuxury); !reflect.DeepEqual(plain, other) {
		t.Errorf("later variations must not be overridden")
	}
}

func TestCatalog_Lookup(t *testing.T) {
	c := theme.DefaultCatalog()
	for _, id := range c.IDs() {
		th, ok := c.Lookup(id)
		if !ok {
			t.Fatalf("Lookup(%q) failed", id)
		}
		if th.Background.ID != id {
			t.Errorf("Lookup(%q) returned background %q", id, th.Background.ID)
		}
	}
	if _, ok := c.Lookup("does-not-exist"); ok {
		t.Error("expected unknown id to miss")
	}
}
