package sanitize

import (
	"regexp"
	"strings"
)

// Word-count band for short wishes.
const (
	MinWishWords = 15
	MaxWishWords = 20
	// MaxSafeWords is the upper bound IsCardSafeWish accepts.
	MaxSafeWords = 25
)

// RNG picks an index in [0, n).
type RNG interface {
	Intn(n int) int
}

// CelebrationEmoji are appended when a wish carries none of them.
var CelebrationEmoji = []string{"🎉", "🎂", "🎈", "🎊", "🎁"}

// celebrationPhrases each hold 7 to 12 words so that a short wish lands in
// the band after one append.
var celebrationPhrases = []string{
	"Wishing you a year full of laughter and love.",
	"May every moment today feel as special as you are.",
	"Here's to sweet surprises and brighter days ahead of you.",
	"Have a wonderful celebration with all the people you love.",
	"May your heart stay light and your smile stay bright.",
	"Cheers to new adventures and dreams that finally come true.",
}

// Only Miscellaneous Symbols and Pictographs is treated as emoji when
// counting; glyphs from other blocks count as words.
var emojiPattern = regexp.MustCompile(`[\x{1F300}-\x{1F5FF}]`)

// CountWords counts whitespace-separated words, ignoring emoji.
func CountWords(text string) int {
	return len(strings.Fields(emojiPattern.ReplaceAllString(text, " ")))
}

// ConvertToShortWish normalizes text to between 15 and 20 words (ignoring
// emoji), then makes sure it carries a celebration emoji.
func ConvertToShortWish(text string, rng RNG) string {
	wish := strings.Join(strings.Fields(StripInstructionLikeContent(text)), " ")

	switch n := CountWords(wish); {
	case n > MaxWishWords:
		wish = truncateWords(wish, MaxWishWords)
	case n < MinWishWords:
		phrase := celebrationPhrases[rng.Intn(len(celebrationPhrases))]
		wish = strings.TrimSpace(wish + " " + phrase)
		if CountWords(wish) > MaxWishWords {
			wish = truncateWords(wish, MaxWishWords)
		}
	}

	if !hasCelebrationEmoji(wish) {
		wish += " " + CelebrationEmoji[rng.Intn(len(CelebrationEmoji))]
	}
	return wish
}

// IsCardSafeWish reports whether text can be placed on a card as a wish.
func IsCardSafeWish(text string) bool {
	n := CountWords(text)
	return n >= 1 && n <= MaxSafeWords && IsValidCardText(text)
}

// truncateWords keeps the first limit words as CountWords counts them, so
// emoji glued between letters split a token. Emoji-only tokens ride along.
// A cut mid-sentence gets an ellipsis.
func truncateWords(text string, limit int) string {
	tokens := strings.Fields(text)
	kept := make([]string, 0, len(tokens))
	words := 0
	for _, tok := range tokens {
		n := CountWords(tok)
		if words+n > limit {
			if part := cutWords(tok, limit-words); part != "" {
				kept = append(kept, part)
			}
			break
		}
		words += n
		kept = append(kept, tok)
	}

	out := strings.TrimRight(strings.Join(kept, " "), ",;:")
	if out == "" {
		return out
	}
	if !strings.ContainsAny(out[len(out)-1:], ".!?") {
		out += "…"
	}
	return out
}

// cutWords returns the prefix of tok holding its first n words, where a
// counted emoji separates words.
func cutWords(tok string, n int) string {
	words, inWord := 0, false
	for i, r := range tok {
		if isCountedEmoji(r) {
			inWord = false
			continue
		}
		if !inWord {
			if words == n {
				return tok[:i]
			}
			words++
			inWord = true
		}
	}
	return tok
}

// isCountedEmoji matches the runes emojiPattern matches.
func isCountedEmoji(r rune) bool {
	return r >= 0x1F300 && r <= 0x1F5FF
}

func hasCelebrationEmoji(s string) bool {
	for _, e := range CelebrationEmoji {
		if strings.Contains(s, e) {
			return true
		}
	}
	return false
}
