package session

import (
	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/sanitize"
	"github.com/f3rmion/wishcard/internal/synth"
)

// PackSession is a form-mode session. Each Regenerate draws fresh phrasing
// for the same form.
type PackSession struct {
	form card.GeneratorFormData
	gen  *synth.PackGenerator
	pack card.BirthdayPack
}

// NewPack generates the first pack for form. A nil rng is random.
func NewPack(form card.GeneratorFormData, rng synth.RNG) *PackSession {
	p := &PackSession{form: form, gen: synth.NewPackGenerator(rng)}
	p.pack = p.gen.Generate(form)
	return p
}

// Form returns the form the session was created with.
func (p *PackSession) Form() card.GeneratorFormData { return p.form }

// Pack returns the current pack.
func (p *PackSession) Pack() card.BirthdayPack { return p.pack }

// Regenerate replaces the pack with a new draw and returns it.
func (p *PackSession) Regenerate() card.BirthdayPack {
	p.pack = p.gen.Generate(p.form)
	return p.pack
}

// Content lays the pack out as sanitized card text with the main wish as
// the message.
func (p *PackSession) Content() card.CardContent {
	name := p.form.Name
	title := "Happy Birthday!"
	if name != "" {
		title = "Happy Birthday, " + name + "!"
	}
	return sanitize.Content(card.CardContent{Title: title, Message: p.pack.MainWish, Footer: p.pack.Hashtags})
}

// Seed is the theme seed for form-mode cards.
func (p *PackSession) Seed() []string {
	return []string{p.form.Name, p.form.Relationship}
}
