package synth_test

import (
	"strings"
	"testing"

	"github.com/f3rmion/wishcard/internal/analyzer"
	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/sanitize"
	"github.com/f3rmion/wishcard/internal/synth"
)

// fixedRNG replays values in order, then keeps returning the last one.
type fixedRNG struct {
	values []int
	pos    int
}

func (f *fixedRNG) Intn(n int) int {
	if len(f.values) == 0 {
		return 0
	}
	v := f.values[len(f.values)-1]
	if f.pos < len(f.values) {
		v = f.values[f.pos]
		f.pos++
	}
	return v % n
}

func TestGenerate_EnglishFunnyFriend(t *testing.T) {
	g := synth.NewPackGenerator(&fixedRNG{})
	pack := g.Generate(card.GeneratorFormData{
		Name:         "Asha",
		Relationship: "friend",
		Tone:         "funny",
		Language:     "english",
	})

	wantMain := "Happy birthday Asha! You're not old, you're just vintage and extremely limited edition. Wishing you a year full of laughter… 🎉"
	if pack.MainWish != wantMain {
		t.Errorf("MainWish = %q\nwant %q", pack.MainWish, wantMain)
	}
	if pack.ShortMessage != "To my partner in crime, Asha: here's to more late nights and bad decisions!" {
		t.Errorf("ShortMessage = %q", pack.ShortMessage)
	}
	if !strings.HasSuffix(pack.Hashtags, "#HappyBirthdayAsha") {
		t.Errorf("Hashtags should end with name tag: %q", pack.Hashtags)
	}
	if !strings.Contains(pack.Speech, "Asha") {
		t.Errorf("Speech should address the name: %q", pack.Speech)
	}
}

func TestGenerate_AllFieldsSanitized(t *testing.T) {
	forms := []card.GeneratorFormData{
		{},
		{Name: "Ravi", Relationship: "bhai", Tone: "emotional", Language: "hinglish"},
		{Name: "Meera", Relationship: "maa", Tone: "formal", Language: "hindi"},
		{Name: "Sam", Relationship: "boss", Tone: "unknown", Language: "klingon"},
		{Name: "Jo", Relationship: "wife", Tone: "romantic", Personality: "fearless", Memory: "that rainy road trip"},
	}
	for _, form := range forms {
		for seed := uint64(0); seed < 20; seed++ {
			pack := synth.NewPackGenerator(synth.NewSeededSource(seed)).Generate(form)
			for field, text := range map[string]string{
				"MainWish":     pack.MainWish,
				"ShortMessage": pack.ShortMessage,
				"Caption":      pack.Caption,
				"Speech":       pack.Speech,
				"Hashtags":     pack.Hashtags,
			} {
				if text == "" {
					t.Errorf("%+v: %s is empty", form, field)
				}
				if !sanitize.IsValidCardText(text) {
					t.Errorf("%+v: %s carries a disallowed token: %q", form, field, text)
				}
			}
			if !sanitize.IsCardSafeWish(pack.MainWish) {
				t.Errorf("%+v: main wish not card-safe: %q", form, pack.MainWish)
			}
		}
	}
}

func TestGenerate_FallbackName(t *testing.T) {
	tests := []struct {
		language string
		want     string
	}{
		{"english", "friend"},
		{"hinglish", "yaar"},
		{"hindi", "दोस्त"},
	}
	for _, tt := range tests {
		pack := synth.NewPackGenerator(&fixedRNG{}).Generate(card.GeneratorFormData{Language: tt.language})
		if !strings.Contains(pack.Speech, tt.want) {
			t.Errorf("%s: speech %q should use fallback %q", tt.language, pack.Speech, tt.want)
		}
		if strings.Contains(pack.Hashtags, "#HappyBirthday"+tt.want) {
			t.Errorf("%s: empty name must not add a bare name tag: %q", tt.language, pack.Hashtags)
		}
	}
}

func TestGenerate_MemoryAndPersonality(t *testing.T) {
	pack := synth.NewPackGenerator(&fixedRNG{}).Generate(card.GeneratorFormData{
		Name:         "Lee",
		Relationship: "friend",
		Personality:  "adventurous",
		Memory:       "the night we got lost in Lisbon",
	})
	if !strings.HasSuffix(pack.Speech, "And I'll never forget this: the night we got lost in Lisbon") {
		t.Errorf("memory should close the speech verbatim: %q", pack.Speech)
	}
	if !strings.Contains(pack.MainWish, "Lee") {
		t.Errorf("main wish should keep the name: %q", pack.MainWish)
	}
}

func TestResolveLanguage(t *testing.T) {
	tests := []struct {
		in   string
		want card.Language
	}{
		{"", card.LanguageEnglish},
		{"English", card.LanguageEnglish},
		{" HINGLISH ", card.LanguageHinglish},
		{"hi", card.LanguageHindi},
		{"हिंदी", card.LanguageHindi},
		{"french", card.LanguageEnglish},
	}
	for _, tt := range tests {
		if got := synth.ResolveLanguage(tt.in); got != tt.want {
			t.Errorf("ResolveLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCompose_BirthdayInvitation(t *testing.T) {
	a := analyzer.Analyze("Luxury birthday invitation for 50th birthday")
	c := synth.Compose(a, 1)
	if c.Title != "Happy Birthday!" {
		t.Errorf("Title = %q, want %q", c.Title, "Happy Birthday!")
	}
	if c.Footer == "" || c.Message == "" {
		t.Errorf("content incomplete: %+v", c)
	}
}

func TestCompose_WrapsVariation(t *testing.T) {
	a := card.PromptAnalysis{EventType: card.EventWedding, Tone: card.ToneRomantic}
	for v := -4; v <= 7; v++ {
		if synth.Compose(a, v) != synth.Compose(a, v+3) {
			t.Errorf("Compose(%d) and Compose(%d) differ", v, v+3)
		}
	}
	if synth.Compose(a, 1) == synth.Compose(a, 2) {
		t.Error("adjacent variations should differ")
	}
}

func TestCompose_MessagesAreCardSafe(t *testing.T) {
	for _, tone := range card.Tones {
		for v := 1; v <= 3; v++ {
			c := synth.Compose(card.PromptAnalysis{EventType: card.EventGeneral, Tone: tone}, v)
			n := sanitize.CountWords(c.Message)
			if n < sanitize.MinWishWords || n > sanitize.MaxWishWords {
				t.Errorf("%s/%d: message has %d words", tone, v, n)
			}
			if !sanitize.IsCardSafeWish(c.Message) || !sanitize.ValidContent(c) {
				t.Errorf("%s/%d: content not card-safe: %+v", tone, v, c)
			}
		}
	}
}

func TestRegenerate_ToneOverride(t *testing.T) {
	a := card.PromptAnalysis{EventType: card.EventBirthday, Tone: card.ToneCasual}

	same := synth.Regenerate(a, 2, "")
	if same != synth.Compose(a, 2) {
		t.Errorf("empty override should keep tone: %+v", same)
	}

	formal := synth.Regenerate(a, 2, card.ToneFormal)
	if formal.Title != same.Title {
		t.Errorf("title should not depend on tone: %q vs %q", formal.Title, same.Title)
	}
	if formal.Message == same.Message {
		t.Error("tone override should change the message")
	}
}

func TestVariations(t *testing.T) {
	a := analyzer.Analyze("elegant floral wedding invitation for Priya")
	vs := synth.Variations(a)

	for i, v := range vs {
		if v.Subtitle != "You're Invited" {
			t.Errorf("variation %d subtitle = %q", i, v.Subtitle)
		}
		if v.LayoutHints.SafeMargins <= 0 {
			t.Errorf("variation %d has no safe margin", i)
		}
		if len(v.ThemeTags) == 0 || v.ThemeTags[0] != string(a.VisualTheme) {
			t.Errorf("variation %d tags = %v", i, v.ThemeTags)
		}
		seen := map[string]bool{}
		for _, tag := range v.ThemeTags {
			if seen[tag] {
				t.Errorf("variation %d duplicate tag %q", i, tag)
			}
			seen[tag] = true
		}
	}
	if vs[2].LayoutHints.TextPlacement != "top" {
		t.Errorf("third variation placement = %q", vs[2].LayoutHints.TextPlacement)
	}
	if vs[0].Title == vs[1].Title {
		t.Error("variations should carry distinct titles")
	}
}
