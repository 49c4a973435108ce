// Package sanitize removes placeholder and instruction artifacts from text
// that is about to be rendered on a card.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/f3rmion/wishcard/internal/card"
)

// DisallowedTokens must never appear in rendered card text.
var DisallowedTokens = []string{
	"{NAME}",
	"Title:",
	"Message:",
	"Footer:",
	"Prompt:",
	"Instructions:",
	"Generate",
	"Create",
}

var (
	// tokenPattern matches any disallowed token as a substring, so the verbs
	// also catch "Generated" and "created".
	tokenPattern = regexp.MustCompile(`(?i)\{name\}|title:|message:|footer:|prompt:|instructions:|generate|create`)

	spaceRun       = regexp.MustCompile(`[ \t]{2,}`)
	spaceBeforeEnd = regexp.MustCompile(`\s+([!?.,;:])`)
)

// StripInstructionLikeContent drops every line of text that contains a
// disallowed token, then removes any residual token, case-insensitively.
func StripInstructionLikeContent(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if tokenPattern.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}

	out := tidy(strings.Join(kept, "\n"))
	// Tidying can close the gap in "Title :" and form a token anew.
	for tokenPattern.MatchString(out) {
		out = tidy(tokenPattern.ReplaceAllString(out, ""))
	}

	return out
}

// IsValidCardText reports whether text is free of every disallowed token.
func IsValidCardText(text string) bool {
	return !tokenPattern.MatchString(text)
}

// Content strips every field of c.
func Content(c card.CardContent) card.CardContent {
	return card.CardContent{
		Title:   StripInstructionLikeContent(c.Title),
		Message: StripInstructionLikeContent(c.Message),
		Footer:  StripInstructionLikeContent(c.Footer),
	}
}

// ValidContent reports whether every field of c is valid card text.
func ValidContent(c card.CardContent) bool {
	return IsValidCardText(c.Title) && IsValidCardText(c.Message) && IsValidCardText(c.Footer)
}

// tidy collapses the whitespace left behind by removed tokens.
func tidy(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = spaceRun.ReplaceAllString(line, " ")
		line = spaceBeforeEnd.ReplaceAllString(line, "$1")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
