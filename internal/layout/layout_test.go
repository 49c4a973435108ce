package layout_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"golang.org/x/image/font"

	"github.com/f3rmion/wishcard/internal/fonts"
	"github.com/f3rmion/wishcard/internal/layout"
)

// monoMeasurer treats every rune as half an em wide.
type monoMeasurer struct{}

func (monoMeasurer) MeasureString(_ string, size float64, s string) float64 {
	return float64(utf8.RuneCountInString(s)) * size * 0.5
}

// faceMeasurer measures with real Go font faces.
type faceMeasurer struct {
	reg *fonts.Registry
}

func (m faceMeasurer) MeasureString(family string, size float64, s string) float64 {
	face, err := m.reg.NewFace(family, size)
	if err != nil {
		return 0
	}
	defer face.Close()
	return float64(font.MeasureString(face, s)) / 64
}

func TestWrap_Greedy(t *testing.T) {
	// At size 10 each rune is 5px; 50px holds 10 runes.
	got := layout.Wrap(monoMeasurer{}, "body", 10, 50, "aaa bbb ccc dddd e")
	want := []string{"aaa bbb", "ccc dddd e"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWrap_LongWordOwnLine(t *testing.T) {
	got := layout.Wrap(monoMeasurer{}, "body", 10, 20, "hi supercalifragilistic yo")
	want := []string{"hi", "supercalifragilistic", "yo"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFit_ReturnsInitialSizeWhenItFits(t *testing.T) {
	opts := layout.DefaultOptions(1000, 500)
	got := layout.Fit(monoMeasurer{}, "Happy birthday", "body", opts)

	if got.FontSize != opts.InitialFontSize {
		t.Errorf("expected font size %v, got %v", opts.InitialFontSize, got.FontSize)
	}
	if got.LineHeight != opts.LineHeight {
		t.Errorf("expected line height %v, got %v", opts.LineHeight, got.LineHeight)
	}
	if len(got.Lines) != 1 {
		t.Errorf("expected one line, got %q", got.Lines)
	}
}

func TestFit_ShrinksLineHeightBeforeFontSize(t *testing.T) {
	// Two lines at 56px: 2*56*1.4 = 156.8, 2*56*1.2 = 134.4.
	opts := layout.DefaultOptions(1000, 140)
	text := strings.Repeat("x", 30) + " " + strings.Repeat("y", 30)

	got := layout.Fit(monoMeasurer{}, text, "body", opts)
	if got.FontSize != 56 {
		t.Errorf("expected font size to stay 56, got %v", got.FontSize)
	}
	if got.LineHeight != 1.2 {
		t.Errorf("expected line height 1.2, got %v", got.LineHeight)
	}
	if got.TotalHeight > 140 {
		t.Errorf("layout overflows: %v", got.TotalHeight)
	}
}

func TestFit_NeverBelowMinimum(t *testing.T) {
	opts := layout.DefaultOptions(50, 10)
	text := strings.Repeat("word ", 200)

	got := layout.Fit(monoMeasurer{}, text, "body", opts)
	if got.FontSize != opts.MinFontSize {
		t.Errorf("expected floor %v, got %v", opts.MinFontSize, got.FontSize)
	}
	if len(got.Lines) == 0 {
		t.Error("expected best-effort lines")
	}
}

func TestFit_TerminatesOnDegenerateBoxes(t *testing.T) {
	boxes := []layout.Options{
		{MaxWidth: 0, MaxHeight: 0, InitialFontSize: 56, MinFontSize: 24, LineHeight: 1.4, MinLineHeight: 1.1},
		{MaxWidth: -10, MaxHeight: -10, InitialFontSize: 10, MinFontSize: 24, LineHeight: 1.4, MinLineHeight: 1.1},
		{MaxWidth: 100, MaxHeight: 100},
		{MaxWidth: 100, MaxHeight: 100, InitialFontSize: 57, MinFontSize: 24, LineHeight: 1.0, MinLineHeight: 2},
	}
	for i, opts := range boxes {
		got := layout.Fit(monoMeasurer{}, "Happy Birthday Alex!", "body", opts)
		if len(got.Lines) == 0 {
			t.Errorf("box %d: expected lines", i)
		}
		if opts.MinFontSize > 0 && got.FontSize < opts.MinFontSize {
			t.Errorf("box %d: font size %v below minimum %v", i, got.FontSize, opts.MinFontSize)
		}
	}
}

func TestFit_NonEmptyLinesForNonEmptyText(t *testing.T) {
	for _, text := range []string{"a", " ", "\n", "🎉", "two words"} {
		got := layout.Fit(monoMeasurer{}, text, "body", layout.DefaultOptions(300, 100))
		if len(got.Lines) == 0 {
			t.Errorf("Fit(%q) returned no lines", text)
		}
	}
	if got := layout.Fit(monoMeasurer{}, "", "body", layout.DefaultOptions(300, 100)); len(got.Lines) != 0 {
		t.Errorf("expected no lines for empty text, got %q", got.Lines)
	}
}

func TestFit_BirthdayMessageWithGoFont(t *testing.T) {
	reg, err := fonts.NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := layout.DefaultOptions(600, 200)
	got := layout.Fit(faceMeasurer{reg: reg}, "Happy Birthday Alex! Wishing you joy.", fonts.FamilyBody, opts)

	if got.FontSize < 24 || got.FontSize > 56 {
		t.Fatalf("font size %v outside [24,56]", got.FontSize)
	}
	if got.TotalHeight > 200 && got.FontSize != 24 {
		t.Errorf("overflowing layout above the floor: %+v", got)
	}
	for _, line := range got.Lines {
		if w := (faceMeasurer{reg: reg}).MeasureString(fonts.FamilyBody, got.FontSize, line); w > 600 && strings.Contains(line, " ") {
			t.Errorf("line %q is %vpx wide", line, w)
		}
	}
}

func TestTokenize_KeepsEmojiClustersWhole(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	text := "Party" + family + "time 🎉\U0001F1EE\U0001F1F3 yay"

	tokens := layout.Tokenize(text)
	var texts []string
	for _, tok := range tokens {
		texts = append(texts, tok.Text)
	}
	want := []string{"Party", family, "time", "🎉", "\U0001F1EE\U0001F1F3", "yay"}
	if strings.Join(texts, "|") != strings.Join(want, "|") {
		t.Fatalf("expected %q, got %q", want, texts)
	}

	if tokens[1].SpaceBefore || !tokens[1].Emoji {
		t.Errorf("family emoji token: %+v", tokens[1])
	}
	if !tokens[3].SpaceBefore {
		t.Errorf("expected space before 🎉")
	}
	if tokens[4].SpaceBefore {
		t.Errorf("no space before the flag")
	}
}

func TestFit_EmojiAwareNeverSplitsClusters(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	text := strings.Repeat("hi"+family, 10)

	opts := layout.DefaultOptions(40, 1000)
	opts.EmojiAware = true
	got := layout.Fit(monoMeasurer{}, text, "body", opts)

	if strings.Join(got.Lines, "") != text {
		t.Fatalf("lines do not reassemble the input: %q", got.Lines)
	}
	for _, line := range got.Lines {
		if !utf8.ValidString(line) {
			t.Fatalf("invalid UTF-8 in %q", line)
		}
		if strings.Count(line, "\u200d")%2 != 0 {
			t.Errorf("line %q splits a ZWJ sequence", line)
		}
	}
}
