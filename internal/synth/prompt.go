package synth

import (
	"fmt"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/sanitize"
	"github.com/f3rmion/wishcard/internal/variation"
)

var titles = map[card.EventType][3]string{
	card.EventBirthday:        {"Happy Birthday!", "Another Year of Awesome", "Celebrate You Today"},
	card.EventAnniversary:     {"Happy Anniversary!", "Here's to Us", "Still Falling for You"},
	card.EventWedding:         {"Happily Ever After", "Just Married!", "Two Hearts, One Love"},
	card.EventGraduation:      {"Congratulations, Graduate!", "The Future Is Yours", "Cap, Gown, Done!"},
	card.EventCongratulations: {"Congratulations!", "You Did It!", "Well Deserved"},
	card.EventThankYou:        {"Thank You!", "With Gratitude", "You Made a Difference"},
	card.EventHoliday:         {"Season's Greetings", "Happy Holidays!", "Joy to You"},
	card.EventLove:            {"You Have My Heart", "Love You Always", "Forever Yours"},
	card.EventGetWell:         {"Get Well Soon", "Sending Healing Hugs", "Feel Better Soon"},
	card.EventGeneral:         {"Thinking of You", "Warm Wishes", "Just Because"},
}

// Message table entries sit inside the short-wish band so they render in a
// single fitted box without further trimming.
var messages = map[card.ToneType][3]string{
	card.ToneCasual: {
		"Wishing you a day packed with good vibes, great company, and all your favourite things. Enjoy it! 🎉",
		"Hope today brings easy smiles, loud laughs, and plenty of cake. You totally deserve it all! 🎈",
		"Here's to good times, great memories, and many more fun adventures together. Have an amazing day! 🎊",
	},
	card.ToneHeartfelt: {
		"You bring so much warmth into every life you touch. Today and always, I am grateful for you. 🎁",
		"Some people make the world feel softer and kinder. You are one of them, and you are loved. 🎉",
		"Thank you for every kind word, every shared laugh, and every quiet moment of care. You matter deeply. 🎈",
	},
	card.ToneFunny: {
		"Congratulations on surviving another year! Your secret is safe with me, mostly. Let's celebrate loudly tonight! 🎉",
		"They say wisdom comes with age. Looks like you are still waiting for delivery. Enjoy the cake anyway! 🎂",
		"You are not getting older, just upgrading to a more classic edition. Time to party like it's retro! 🎊",
	},
	card.ToneFormal: {
		"Please accept my warmest wishes on this special occasion. May the year ahead bring you continued success. 🎁",
		"On this memorable day, I extend sincere congratulations and every good wish for health, happiness, and prosperity. 🎉",
		"With great respect and appreciation, I wish you a joyful celebration and a rewarding year ahead. 🎊",
	},
	card.ToneRomantic: {
		"Every moment with you feels like my favourite song. Here's to us and to the love we share. 🎁",
		"You are my sunrise, my safe place, and my greatest adventure. I love you more every day. 🎉",
		"With you, ordinary days turn into beautiful memories. Thank you for filling my life with love. 🎈",
	},
	card.ToneInspirational: {
		"Keep chasing the dreams that light you up. The best chapters of your story are still being written. 🎉",
		"Every step forward counts. Believe in yourself, keep growing, and let your light shine even brighter. 🎊",
		"You have the courage and heart to do amazing things. The world is ready for everything you bring. 🎈",
	},
}

var footers = [3]string{
	"Made with love",
	"With warmest wishes",
	"Cheers to you",
}

var subtitles = map[card.LayoutStyle]string{
	card.LayoutInvitation: "You're Invited",
	card.LayoutPoster:     "Let's Celebrate",
	card.LayoutSocialPost: "Share the Joy",
	card.LayoutPostcard:   "Greetings From the Heart",
}

var safeMargins = map[card.LayoutStyle]int{
	card.LayoutInvitation:   96,
	card.LayoutPoster:       64,
	card.LayoutSocialPost:   72,
	card.LayoutPostcard:     80,
	card.LayoutGreetingCard: 88,
}

var fontPairings = [3]string{"display/body", "elegant/body", "modern/body"}

// position maps a 1-based variation number onto a table index, wrapping.
func position(variationNumber int) int {
	return (((variationNumber - 1) % 3) + 3) % 3
}

// Compose picks the title for the analysis event and the message for its
// tone at variation (1..3, wrapping), with the fixed footer for that slot.
func Compose(a card.PromptAnalysis, variationNumber int) card.CardContent {
	i := position(variationNumber)

	titleRow, ok := titles[a.EventType]
	if !ok {
		titleRow = titles[card.EventGeneral]
	}
	messageRow, ok := messages[a.Tone]
	if !ok {
		messageRow = messages[card.ToneCasual]
	}

	return sanitize.Content(card.CardContent{
		Title:   titleRow[i],
		Message: messageRow[i],
		Footer:  footers[i],
	})
}

// Regenerate re-runs Compose with tone replaced by toneOverride when it is
// set, holding every other axis fixed. It always returns fresh content.
func Regenerate(a card.PromptAnalysis, variationNumber int, toneOverride card.ToneType) card.CardContent {
	if toneOverride != "" {
		a.Tone = toneOverride
	}
	return Compose(a, variationNumber)
}

// Variations builds the three prompt-mode carousel entries for a.
func Variations(a card.PromptAnalysis) [3]card.CardVariation {
	var out [3]card.CardVariation
	for i := range out {
		out[i] = BuildVariation(a, i, Compose(a, i+1))
	}
	return out
}

// BuildVariation wraps content as the carousel entry at slot index.
func BuildVariation(a card.PromptAnalysis, index int, c card.CardContent) card.CardVariation {
	margin, ok := safeMargins[a.LayoutStyle]
	if !ok {
		margin = safeMargins[card.LayoutGreetingCard]
	}
	params := variation.ParamsFor(index)

	return card.CardVariation{
		Title:      c.Title,
		Subtitle:   subtitles[a.LayoutStyle],
		MainText:   c.Message,
		FooterText: c.Footer,
		ThemeTags:  themeTags(a),
		LayoutHints: card.LayoutHints{
			SafeMargins:   margin,
			FontPairing:   fontPairings[params.Index],
			TextPlacement: placement(params.LayoutVariant),
		},
	}
}

func placement(v card.LayoutVariant) string {
	switch v {
	case card.LayoutTopHeavy:
		return "top"
	default:
		return "center"
	}
}

func themeTags(a card.PromptAnalysis) []string {
	tags := []string{string(a.VisualTheme), string(a.Tone), fmt.Sprintf("%s-%s", a.EventType, a.LayoutStyle)}
	seen := map[string]bool{}
	out := make([]string, 0, len(tags)+len(a.Keywords))
	for _, tag := range append(tags, a.Keywords...) {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
