package analyzer_test

import (
	"reflect"
	"testing"

	"github.com/f3rmion/wishcard/internal/analyzer"
	"github.com/f3rmion/wishcard/internal/card"
)

func TestAnalyze_EmptyPromptUsesDefaults(t *testing.T) {
	got := analyzer.Analyze("")

	if got.EventType != card.EventGeneral {
		t.Errorf("event: expected %s, got %s", card.EventGeneral, got.EventType)
	}
	if got.Tone != card.ToneCasual {
		t.Errorf("tone: expected %s, got %s", card.ToneCasual, got.Tone)
	}
	if got.VisualTheme != card.VisualModern {
		t.Errorf("theme: expected %s, got %s", card.VisualModern, got.VisualTheme)
	}
	if got.LayoutStyle != card.LayoutGreetingCard {
		t.Errorf("layout: expected %s, got %s", card.LayoutGreetingCard, got.LayoutStyle)
	}
	if len(got.Keywords) != 0 {
		t.Errorf("expected no keywords, got %v", got.Keywords)
	}
}

func TestAnalyze_LuxuryBirthdayInvitation(t *testing.T) {
	got := analyzer.Analyze("Luxury birthday invitation for 50th birthday")

	want := card.PromptAnalysis{
		EventType:   card.EventBirthday,
		Tone:        card.ToneCasual,
		VisualTheme: card.VisualLuxury,
		LayoutStyle: card.LayoutInvitation,
		Keywords:    []string{"birthday", "luxury"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	lower := analyzer.Analyze("funny wedding poster with neon lights")
	upper := analyzer.Analyze("FUNNY WEDDING POSTER WITH NEON LIGHTS")

	if !reflect.DeepEqual(lower, upper) {
		t.Errorf("case changed result: %+v vs %+v", lower, upper)
	}
	if lower.EventType != card.EventWedding || lower.Tone != card.ToneFunny ||
		lower.VisualTheme != card.VisualDark || lower.LayoutStyle != card.LayoutPoster {
		t.Errorf("unexpected classification: %+v", lower)
	}
}

func TestAnalyze_FirstCategoryInTableOrderWins(t *testing.T) {
	// "anniversary" is declared before "wedding".
	got := analyzer.Analyze("our wedding anniversary dinner")
	if got.EventType != card.EventAnniversary {
		t.Errorf("expected anniversary, got %s", got.EventType)
	}
}

func TestAnalyze_Pure(t *testing.T) {
	prompt := "Heartfelt thank you card with roses and gold foil"
	first := analyzer.Analyze(prompt)
	for i := 0; i < 10; i++ {
		if got := analyzer.Analyze(prompt); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, got)
		}
	}
}

func TestKeywords_UniqueAndCapped(t *testing.T) {
	prompt := "birthday bday graduation graduate degree promotion thank love love love gold rose"
	got := analyzer.Keywords(prompt)

	if len(got) != analyzer.MaxKeywords {
		t.Fatalf("expected %d keywords, got %d: %v", analyzer.MaxKeywords, len(got), got)
	}
	seen := make(map[string]bool)
	for _, kw := range got {
		if seen[kw] {
			t.Errorf("duplicate keyword %q", kw)
		}
		seen[kw] = true
	}
	want := []string{"birthday", "bday", "graduation", "graduate", "degree"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestKeywords_IgnoresLayoutTable(t *testing.T) {
	got := analyzer.Keywords("a poster invitation")
	if len(got) != 0 {
		t.Errorf("layout words must not be keywords, got %v", got)
	}
}

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		prompt  string
		wantErr bool
	}{
		{"", true},
		{"too short", true},
		{"   padded   ", true},
		{"birthday card", false},
	}
	for _, tt := range tests {
		err := analyzer.ValidatePrompt(tt.prompt)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePrompt(%q): wantErr=%v, got %v", tt.prompt, tt.wantErr, err)
		}
	}
}
