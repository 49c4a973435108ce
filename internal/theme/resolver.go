package theme

import "github.com/f3rmion/wishcard/internal/card"

// Resolver turns identity seeds into themes.
type Resolver struct {
	catalog *Catalog
}

// NewResolver creates a resolver over catalog. A nil catalog uses DefaultCatalog.
func NewResolver(catalog *Catalog) *Resolver {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Resolver{catalog: catalog}
}

// Catalog returns the catalog the resolver picks from.
func (r *Resolver) Catalog() *Catalog {
	return r.catalog
}

// Resolve picks typography, background and name independently. Each axis
// hashes a differently composed seed, so two seeds that collide on one axis
// rarely collide on the others.
func (r *Resolver) Resolve(seed []string, variation int) card.Theme {
	c := r.catalog
	typo := Resolve(withSuffix(seed, "typography"), variation, c.Typographies())
	bg := Resolve(withPrefix("background", seed), variation, c.Backgrounds())
	name := Resolve(withSuffix(withPrefix("name", seed), "card"), variation, len(c.names))

	return card.Theme{
		Name:       c.names[name],
		Typography: c.Typography(typo),
		Background: c.Background(bg),
	}
}

// ResolvePreferred is Resolve, except that the first variation uses the
// background preferred by a prompt's visual theme when there is one.
func (r *Resolver) ResolvePreferred(seed []string, variation int, visual card.VisualTheme) card.Theme {
	t := r.Resolve(seed, variation)
	if variation != 0 {
		return t
	}
	if id := ForVisual(visual); id != "" {
		for i := 0; i < r.catalog.Backgrounds(); i++ {
			if bg := r.catalog.Background(i); bg.ID == id {
				t.Background = bg
				break
			}
		}
	}
	return t
}

func withSuffix(parts []string, s string) []string {
	out := make([]string, 0, len(parts)+1)
	out = append(out, parts...)
	return append(out, s)
}

func withPrefix(s string, parts []string) []string {
	out := make([]string, 0, len(parts)+1)
	out = append(out, s)
	return append(out, parts...)
}
