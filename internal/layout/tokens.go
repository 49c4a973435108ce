package layout

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Token is a unit the wrapper never splits.
type Token struct {
	Text        string
	SpaceBefore bool // Whitespace separated this token from the previous one
	Emoji       bool
}

// Tokenize splits text into whitespace-separated runs, further split at
// emoji/non-emoji boundaries. Each emoji grapheme cluster (including ZWJ
// sequences, flags and skin-tone modifiers) is its own token, so a line
// break can fall between two emoji but never inside one.
func Tokenize(text string) []Token {
	var tokens []Token
	var run strings.Builder
	space := false

	flush := func() {
		if run.Len() > 0 {
			tokens = append(tokens, Token{Text: run.String(), SpaceBefore: space})
			run.Reset()
			space = false
		}
	}

	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cluster := g.Str()
		runes := g.Runes()

		switch {
		case unicode.IsSpace(runes[0]):
			flush()
			if len(tokens) > 0 {
				space = true
			}
		case isEmojiCluster(runes):
			flush()
			tokens = append(tokens, Token{Text: cluster, SpaceBefore: space, Emoji: true})
			space = false
		default:
			run.WriteString(cluster)
		}
	}
	flush()
	return tokens
}

// WrapTokens wraps pre-tokenized text greedily to maxWidth.
func WrapTokens(m Measurer, family string, size, maxWidth float64, tokens []Token) []string {
	return wrapTokens(m, family, size, maxWidth, tokens)
}

func isEmojiCluster(runes []rune) bool {
	for _, r := range runes {
		switch {
		case r == 0x200D || r == 0xFE0F:
			return true
		case r >= 0x1F000 && r <= 0x1FAFF:
			return true
		case r >= 0x2600 && r <= 0x27BF:
			return true
		case r >= 0x2B00 && r <= 0x2BFF:
			return true
		}
	}
	return false
}
