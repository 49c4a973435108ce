package sanitize_test

import (
	"strings"
	"testing"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/sanitize"
)

// fixedRNG returns values from a pre-set sequence.
type fixedRNG struct {
	values []int
	idx    int
}

func (r *fixedRNG) Intn(n int) int {
	v := r.values[r.idx%len(r.values)] % n
	r.idx++
	return v
}

func containsToken(s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, tok := range []string{"{name}", "title:", "message:", "footer:", "prompt:", "instructions:"} {
		if strings.Contains(lower, tok) {
			return tok, true
		}
	}
	return "", false
}

func TestStripInstructionLikeContent_DropsLinesContainingTokens(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Happy Birthday {NAME}! Title: surprise", ""},
		{"Happy Birthday {NAME}!\nEnjoy your day", "Enjoy your day"},
		{"Memories we created together\nSee you soon", "See you soon"},
		{"Please Generated text", ""},
		{"Cake first\nthen the footer: fine print", "Cake first"},
		{"Title : spaced out", "spaced out"},
		{"Wishing you the best day!", "Wishing you the best day!"},
	}
	for _, tt := range tests {
		if got := sanitize.StripInstructionLikeContent(tt.in); got != tt.want {
			t.Errorf("StripInstructionLikeContent(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripInstructionLikeContent_DropsInstructionLines(t *testing.T) {
	input := strings.Join([]string{
		"Title: Birthday Card",
		"Instructions: keep it short",
		"Generate a warm message for her",
		"Wishing you the happiest day!",
		"Use this Prompt: nothing",
		"create",
	}, "\n")

	got := sanitize.StripInstructionLikeContent(input)
	if got != "Wishing you the happiest day!" {
		t.Errorf("expected only the wish line, got %q", got)
	}
}

func TestStripInstructionLikeContent_AlwaysValid(t *testing.T) {
	inputs := []string{
		"",
		"{NAME}",
		"{name} Title: Instructions:",
		"Dear {NAME}, Title:Title: hello Instructions: be nice",
		"Ti{NAME}tle: sneaky",
		"Inst{NAME}ructions: nested {NA{NAME}ME}",
		"Title : spaced out",
		"Hello\nTITLE: shouting\n  instructions: lower",
		"Gen{NAME}erate this",
		"Subtitle: still a token",
		"Created with care, regenerated daily",
		"Happy Birthday {NAME}! Title: surprise",
		"Please Generated text",
	}
	for _, in := range inputs {
		got := sanitize.StripInstructionLikeContent(in)
		if !sanitize.IsValidCardText(got) {
			t.Errorf("StripInstructionLikeContent(%q) = %q is not valid card text", in, got)
		}
		if tok, ok := containsToken(got); ok {
			t.Errorf("StripInstructionLikeContent(%q) = %q still contains %q", in, got, tok)
		}
	}
}

func TestIsValidCardText(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Happy birthday!", true},
		{"", true},
		{"Hello {NAME}", false},
		{"message: hi", false},
		{"Please generate a card", false},
		{"A generated card", false},
		{"Recreated with love", false},
		{"Celebrate creatively", true},
	}
	for _, tt := range tests {
		if got := sanitize.IsValidCardText(tt.text); got != tt.want {
			t.Errorf("IsValidCardText(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestContent_StripsEveryField(t *testing.T) {
	got := sanitize.Content(card.CardContent{
		Title:   "Title: Happy Birthday",
		Message: "Dear {NAME},\nenjoy the cake",
		Footer:  "Footer: with love",
	})
	if !sanitize.ValidContent(got) {
		t.Fatalf("content not valid: %+v", got)
	}
	if got.Title != "" || got.Footer != "" {
		t.Errorf("token lines should be dropped: %+v", got)
	}
	if got.Message != "enjoy the cake" {
		t.Errorf("unexpected message %q", got.Message)
	}
}
