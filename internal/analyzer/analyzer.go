// Package analyzer classifies free-text card prompts into a fixed taxonomy.
package analyzer

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/f3rmion/wishcard/internal/card"
)

// MinPromptLength is the shortest prompt callers should pass to Analyze.
const MinPromptLength = 10

// MaxKeywords caps the number of extracted keywords.
const MaxKeywords = 5

// ErrPromptTooShort is returned by ValidatePrompt.
var ErrPromptTooShort = errors.New("prompt must be at least 10 characters")

// category is one row of a keyword table. Rows are matched in declared order.
type category[T ~string] struct {
	value    T
	keywords []string
}

var eventTable = []category[card.EventType]{
	{card.EventBirthday, []string{"birthday", "bday", "b-day", "turning", "born"}},
	{card.EventAnniversary, []string{"anniversary", "years together", "jubilee"}},
	{card.EventWedding, []string{"wedding", "marriage", "married", "bride", "groom", "engagement"}},
	{card.EventGraduation, []string{"graduation", "graduate", "degree", "diploma", "convocation"}},
	{card.EventCongratulations, []string{"congrat", "promotion", "achievement", "new job", "success"}},
	{card.EventThankYou, []string{"thank", "grateful", "gratitude", "appreciat"}},
	{card.EventHoliday, []string{"christmas", "diwali", "new year", "holiday", "eid", "holi", "festive"}},
	{card.EventLove, []string{"valentine", "love", "crush"}},
	{card.EventGetWell, []string{"get well", "recovery", "feel better", "healing"}},
}

var toneTable = []category[card.ToneType]{
	{card.ToneFormal, []string{"formal", "professional", "respectful", "corporate"}},
	{card.ToneFunny, []string{"funny", "humor", "humour", "hilarious", "joke", "silly", "witty"}},
	{card.ToneHeartfelt, []string{"heartfelt", "emotional", "touching", "sincere", "sentimental", "warm"}},
	{card.ToneRomantic, []string{"romantic", "passion", "sweetheart", "darling"}},
	{card.ToneInspirational, []string{"inspir", "motivat", "uplift", "encourag"}},
}

var themeTable = []category[card.VisualTheme]{
	{card.VisualLuxury, []string{"luxury", "gold", "premium", "elegant", "royal", "glamour"}},
	{card.VisualFloral, []string{"floral", "flower", "rose", "garden", "bloom", "blossom"}},
	{card.VisualMinimal, []string{"minimal", "simple", "clean", "subtle"}},
	{card.VisualVintage, []string{"vintage", "retro", "classic", "old school"}},
	{card.VisualPlayful, []string{"playful", "colorful", "colourful", "cartoon", "kids", "balloon"}},
	{card.VisualDark, []string{"dark", "night", "neon", "midnight"}},
	{card.VisualNature, []string{"nature", "forest", "ocean", "beach", "sunset", "mountain"}},
}

var layoutTable = []category[card.LayoutStyle]{
	{card.LayoutInvitation, []string{"invitation", "invite", "rsvp"}},
	{card.LayoutPoster, []string{"poster", "banner", "flyer"}},
	{card.LayoutSocialPost, []string{"instagram", "story", "social", "whatsapp", "status"}},
	{card.LayoutPostcard, []string{"postcard", "post card"}},
}

// Analyze classifies prompt. It is pure and total: the same text always
// yields the same analysis, and empty text yields all defaults.
func Analyze(prompt string) card.PromptAnalysis {
	text := strings.ToLower(prompt)
	return card.PromptAnalysis{
		EventType:   match(text, eventTable, card.EventGeneral),
		Tone:        match(text, toneTable, card.ToneCasual),
		VisualTheme: match(text, themeTable, card.VisualModern),
		LayoutStyle: match(text, layoutTable, card.LayoutGreetingCard),
		Keywords:    keywords(text),
	}
}

// Keywords returns the matched event, tone and theme keywords of prompt.
func Keywords(prompt string) []string {
	return keywords(strings.ToLower(prompt))
}

// ValidatePrompt reports whether prompt is long enough to analyze.
func ValidatePrompt(prompt string) error {
	if utf8.RuneCountInString(strings.TrimSpace(prompt)) < MinPromptLength {
		return ErrPromptTooShort
	}
	return nil
}

func match[T ~string](text string, table []category[T], fallback T) T {
	for _, c := range table {
		for _, kw := range c.keywords {
			if strings.Contains(text, kw) {
				return c.value
			}
		}
	}
	return fallback
}

func keywords(text string) []string {
	out := make([]string, 0, MaxKeywords)
	seen := make(map[string]bool)

	collect := func(kws []string) bool {
		for _, kw := range kws {
			if len(out) == MaxKeywords {
				return false
			}
			if !seen[kw] && strings.Contains(text, kw) {
				seen[kw] = true
				out = append(out, kw)
			}
		}
		return true
	}

	for _, c := range eventTable {
		if !collect(c.keywords) {
			return out
		}
	}
	for _, c := range toneTable {
		if !collect(c.keywords) {
			return out
		}
	}
	for _, c := range themeTable {
		if !collect(c.keywords) {
			return out
		}
	}
	return out
}
