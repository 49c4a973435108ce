// Package session holds the state of one card-making interaction: the
// three prompt-mode variations, which one is selected, and how the user
// has steered text and theme since.
package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/f3rmion/wishcard/internal/analyzer"
	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/sanitize"
	"github.com/f3rmion/wishcard/internal/synth"
	"github.com/f3rmion/wishcard/internal/theme"
	"github.com/f3rmion/wishcard/internal/variation"
)

// Slots is the number of variations a prompt session holds.
const Slots = 3

var (
	// ErrIndexOutOfRange is returned for a variation index outside [0, Slots).
	ErrIndexOutOfRange = errors.New("variation index out of range")
	// ErrUnknownTheme is returned by OverrideTheme for an id not in the catalog.
	ErrUnknownTheme = errors.New("unknown theme")
	// ErrUnknownTone is returned by ChangeTone for a tone outside card.Tones.
	ErrUnknownTone = errors.New("unknown tone")
)

// Session is a prompt-mode card session. It is not safe for concurrent use.
type Session struct {
	prompt   string
	analysis card.PromptAnalysis
	resolver *theme.Resolver

	variations [Slots]card.CardVariation
	regens     [Slots]int // Per-slot text regenerations
	rolls      int        // Whole-session regenerations; re-rolls auto themes
	tone       card.ToneType
	selected   int

	themeOverridden bool
	themeOverride   card.Theme
}

// New analyzes prompt and builds the initial variations. A nil resolver
// uses the default catalog.
func New(prompt string, resolver *theme.Resolver) (*Session, error) {
	if err := analyzer.ValidatePrompt(prompt); err != nil {
		return nil, err
	}
	if resolver == nil {
		resolver = theme.NewResolver(nil)
	}

	s := &Session{
		prompt:   strings.TrimSpace(prompt),
		analysis: analyzer.Analyze(prompt),
		resolver: resolver,
	}
	s.variations = synth.Variations(s.analysis)
	return s, nil
}

// Prompt returns the trimmed prompt.
func (s *Session) Prompt() string { return s.prompt }

// Analysis returns the prompt classification.
func (s *Session) Analysis() card.PromptAnalysis { return s.analysis }

// Tone returns the tone in effect: the override if set, else the analysis tone.
func (s *Session) Tone() card.ToneType {
	if s.tone != "" {
		return s.tone
	}
	return s.analysis.Tone
}

// Variations returns a copy of the current variations.
func (s *Session) Variations() [Slots]card.CardVariation { return s.variations }

// Selected returns the selected index.
func (s *Session) Selected() int { return s.selected }

// Select makes i the selected variation.
func (s *Session) Select(i int) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	s.selected = i
	return nil
}

// Next selects the following variation, wrapping.
func (s *Session) Next() { s.selected = (s.selected + 1) % Slots }

// Prev selects the preceding variation, wrapping.
func (s *Session) Prev() { s.selected = (s.selected + Slots - 1) % Slots }

// Variation returns the variation at i.
func (s *Session) Variation(i int) (card.CardVariation, error) {
	if err := checkIndex(i); err != nil {
		return card.CardVariation{}, err
	}
	return s.variations[i], nil
}

// Content returns the card text of variation i.
func (s *Session) Content(i int) (card.CardContent, error) {
	v, err := s.Variation(i)
	if err != nil {
		return card.CardContent{}, err
	}
	return v.Content(), nil
}

// RegenerateText replaces the text of variation i with the next entry of
// its tables, keeping the other slots.
func (s *Session) RegenerateText(i int) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	s.regens[i]++
	s.refresh(i)
	return nil
}

// ChangeTone resynthesizes every slot with tone, holding the other axes.
func (s *Session) ChangeTone(tone card.ToneType) error {
	known := false
	for _, t := range card.Tones {
		if t == tone {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: %q", ErrUnknownTone, tone)
	}
	s.tone = tone
	for i := range s.variations {
		s.refresh(i)
	}
	return nil
}

// Regenerate re-rolls every slot's text and the auto-selected themes,
// including variation 0's visual-theme background. A manual theme override
// stays in place.
func (s *Session) Regenerate() {
	s.rolls++
	for i := range s.variations {
		s.regens[i]++
		s.refresh(i)
	}
}

// EditContent replaces the text of variation i with a manual edit. The
// edit is sanitized before it is stored.
func (s *Session) EditContent(i int, c card.CardContent) error {
	if err := checkIndex(i); err != nil {
		return err
	}
	s.variations[i] = synth.BuildVariation(s.withTone(), i, sanitize.Content(c))
	return nil
}

// OverrideTheme pins every slot to the catalog theme id until ResetTheme.
func (s *Session) OverrideTheme(id string) error {
	th, ok := s.resolver.Catalog().Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	s.themeOverride = th
	s.themeOverridden = true
	return nil
}

// ResetTheme returns theme choice to automatic resolution.
func (s *Session) ResetTheme() {
	s.themeOverridden = false
	s.themeOverride = card.Theme{}
}

// ThemeOverridden reports whether the user has pinned a theme.
func (s *Session) ThemeOverridden() bool { return s.themeOverridden }

// Theme returns the theme for variation i: the override while it is set,
// otherwise the theme resolved from the prompt seed. Until the first
// Regenerate, variation 0 uses the background matching the prompt's visual
// theme.
func (s *Session) Theme(i int) (card.Theme, error) {
	if err := checkIndex(i); err != nil {
		return card.Theme{}, err
	}
	if s.themeOverridden {
		return s.themeOverride, nil
	}
	if s.rolls > 0 {
		return s.resolver.Resolve(s.Seed(), i), nil
	}
	return s.resolver.ResolvePreferred(s.Seed(), i, s.analysis.VisualTheme), nil
}

// Seed is the theme seed: the prompt, plus the roll count once the session
// has been regenerated.
func (s *Session) Seed() []string {
	seed := []string{strings.ToLower(s.prompt)}
	if s.rolls > 0 {
		seed = append(seed, "roll", strconv.Itoa(s.rolls))
	}
	return seed
}

// Job returns the export job for variation i.
func (s *Session) Job(i int, aspect card.Aspect) (export.Job, error) {
	v, err := s.Variation(i)
	if err != nil {
		return export.Job{}, err
	}
	th, err := s.Theme(i)
	if err != nil {
		return export.Job{}, err
	}
	return export.Job{
		Content:    v.Content(),
		Theme:      th,
		Params:     variation.ParamsFor(i),
		Aspect:     aspect,
		SafeMargin: v.LayoutHints.SafeMargins,
		Tags:       v.ThemeTags,
	}, nil
}

// Jobs returns export jobs for every slot in order.
func (s *Session) Jobs(aspect card.Aspect) []export.Job {
	jobs := make([]export.Job, 0, Slots)
	for i := range s.variations {
		job, _ := s.Job(i, aspect)
		jobs = append(jobs, job)
	}
	return jobs
}

func (s *Session) refresh(i int) {
	c := synth.Regenerate(s.analysis, i+1+s.regens[i], s.tone)
	s.variations[i] = synth.BuildVariation(s.withTone(), i, c)
}

func (s *Session) withTone() card.PromptAnalysis {
	a := s.analysis
	if s.tone != "" {
		a.Tone = s.tone
	}
	return a
}

func checkIndex(i int) error {
	if i < 0 || i >= Slots {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, i)
	}
	return nil
}
