package synth

import (
	"strings"
	"unicode"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/sanitize"
)

// PackGenerator builds five-field birthday packs from form input. Phrase
// selection is random by design; inject a fixed RNG for repeatable output.
type PackGenerator struct {
	rng RNG
}

// NewPackGenerator creates a generator. A nil rng uses NewRandomSource.
func NewPackGenerator(rng RNG) *PackGenerator {
	if rng == nil {
		rng = NewRandomSource()
	}
	return &PackGenerator{rng: rng}
}

// ResolveLanguage maps a form language value to a known language,
// defaulting to English.
func ResolveLanguage(s string) card.Language {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hinglish", "hin", "hi-latn":
		return card.LanguageHinglish
	case "hindi", "hi", "हिंदी", "हिन्दी":
		return card.LanguageHindi
	default:
		return card.LanguageEnglish
	}
}

// toneKey normalizes a form tone to a phrase-table key.
func toneKey(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "funny", "humorous", "savage", "witty":
		return "funny"
	case "emotional", "heartfelt", "sentimental":
		return "emotional"
	case "romantic", "love":
		return "romantic"
	case "formal", "professional", "respectful":
		return "formal"
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}

// relationshipKey normalizes a form relationship to a phrase-table key.
func relationshipKey(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "friend", "best friend", "bestie", "dost":
		return "friend"
	case "mother", "mom", "mum", "mummy", "maa":
		return "mother"
	case "father", "dad", "papa":
		return "father"
	case "partner", "wife", "husband", "girlfriend", "boyfriend", "spouse":
		return "partner"
	case "sibling", "brother", "sister", "bhai", "didi":
		return "sibling"
	case "colleague", "coworker", "boss", "manager":
		return "colleague"
	default:
		return strings.ToLower(strings.TrimSpace(s))
	}
}

// Generate assembles a birthday pack for form.
func (g *PackGenerator) Generate(form card.GeneratorFormData) card.BirthdayPack {
	t := tables[ResolveLanguage(form.Language)]

	name := strings.TrimSpace(form.Name)
	if name == "" {
		name = t.fallbackName
	}
	fill := func(s string) string {
		return strings.ReplaceAll(s, "{NAME}", name)
	}

	tone := toneKey(form.Tone)
	rel := relationshipKey(form.Relationship)

	mainWish := fill(g.pick(t.mainWish, tone))
	if trait := strings.TrimSpace(form.Personality); trait != "" {
		mainWish += " " + strings.ReplaceAll(t.personality, "{TRAIT}", trait)
	}

	speech := fill(g.pick(t.speech, rel))
	if memory := strings.TrimSpace(form.Memory); memory != "" {
		speech += " " + t.memoryBridge + " " + memory
	}

	hashtags := g.pick(t.hashtags, tone)
	if tag := hashtagName(form.Name); tag != "" {
		hashtags += " " + t.hashtagStem + tag
	}

	return card.BirthdayPack{
		MainWish:     sanitize.ConvertToShortWish(mainWish, g.rng),
		ShortMessage: sanitize.StripInstructionLikeContent(fill(g.pick(t.shortMessage, rel))),
		Caption:      sanitize.StripInstructionLikeContent(fill(g.pick(t.caption, tone))),
		Speech:       sanitize.StripInstructionLikeContent(speech),
		Hashtags:     sanitize.StripInstructionLikeContent(hashtags),
	}
}

func (g *PackGenerator) pick(table map[string][]string, key string) string {
	entries, ok := table[key]
	if !ok || len(entries) == 0 {
		entries = table[defaultKey]
	}
	if len(entries) == 0 {
		return ""
	}
	return entries[g.rng.Intn(len(entries))]
}

// hashtagName squashes a name into hashtag-safe CamelCase.
func hashtagName(name string) string {
	var sb strings.Builder
	for _, word := range strings.Fields(name) {
		for i, r := range word {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				continue
			}
			if i == 0 {
				r = unicode.ToUpper(r)
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
