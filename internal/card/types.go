// Package card provides the core types shared by the card composition engine.
package card

// EventType is the occasion a prompt is about.
type EventType string

const (
	EventBirthday        EventType = "birthday"
	EventAnniversary     EventType = "anniversary"
	EventWedding         EventType = "wedding"
	EventGraduation      EventType = "graduation"
	EventCongratulations EventType = "congratulations"
	EventThankYou        EventType = "thank-you"
	EventHoliday         EventType = "holiday"
	EventLove            EventType = "love"
	EventGetWell         EventType = "get-well"
	EventGeneral         EventType = "general"
)

// ToneType is the emotional register of the card text.
type ToneType string

const (
	ToneFormal        ToneType = "formal"
	ToneFunny         ToneType = "funny"
	ToneHeartfelt     ToneType = "heartfelt"
	ToneRomantic      ToneType = "romantic"
	ToneInspirational ToneType = "inspirational"
	ToneCasual        ToneType = "casual"
)

// Tones lists every tone in cycle order.
var Tones = []ToneType{ToneCasual, ToneHeartfelt, ToneFunny, ToneFormal, ToneRomantic, ToneInspirational}

// VisualTheme is the look a prompt asks for.
type VisualTheme string

const (
	VisualLuxury  VisualTheme = "luxury"
	VisualFloral  VisualTheme = "floral"
	VisualMinimal VisualTheme = "minimal"
	VisualVintage VisualTheme = "vintage"
	VisualPlayful VisualTheme = "playful"
	VisualDark    VisualTheme = "dark"
	VisualNature  VisualTheme = "nature"
	VisualModern  VisualTheme = "modern"
)

// LayoutStyle is the kind of artifact a prompt describes.
type LayoutStyle string

const (
	LayoutInvitation   LayoutStyle = "invitation"
	LayoutPoster       LayoutStyle = "poster"
	LayoutSocialPost   LayoutStyle = "social-post"
	LayoutPostcard     LayoutStyle = "postcard"
	LayoutGreetingCard LayoutStyle = "greeting-card"
)

// PromptAnalysis is the classification of a free-text prompt.
type PromptAnalysis struct {
	EventType   EventType   `yaml:"event_type" json:"eventType"`
	Tone        ToneType    `yaml:"tone" json:"tone"`
	VisualTheme VisualTheme `yaml:"visual_theme" json:"visualTheme"`
	LayoutStyle LayoutStyle `yaml:"layout_style" json:"layoutStyle"`
	Keywords    []string    `yaml:"keywords" json:"keywords"` // At most 5, unique, in first-seen order
}

// CardContent is the displayable text of one card.
type CardContent struct {
	Title   string `yaml:"title" json:"title"`
	Message string `yaml:"message" json:"message"`
	Footer  string `yaml:"footer" json:"footer"`
}

// LayoutHints tell the compositor how to place text for a variation.
type LayoutHints struct {
	SafeMargins   int    `yaml:"safe_margins" json:"safeMargins"`     // Pixels kept clear on every edge at 1080px width
	FontPairing   string `yaml:"font_pairing" json:"fontPairing"`     // e.g. "display/body"
	TextPlacement string `yaml:"text_placement" json:"textPlacement"` // top, center, bottom
}

// CardVariation is one entry of the prompt-mode carousel.
type CardVariation struct {
	Title       string      `yaml:"title" json:"title"`
	Subtitle    string      `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	MainText    string      `yaml:"main_text" json:"mainText"`
	FooterText  string      `yaml:"footer_text" json:"footerText"`
	ThemeTags   []string    `yaml:"theme_tags" json:"themeTags"`
	LayoutHints LayoutHints `yaml:"layout_hints" json:"layoutHints"`
}

// Content returns the title, main text and footer as CardContent.
func (v CardVariation) Content() CardContent {
	return CardContent{Title: v.Title, Message: v.MainText, Footer: v.FooterText}
}

// Language selects the phrase tables used for form-driven packs.
type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageHinglish Language = "hinglish"
	LanguageHindi    Language = "hindi"
)

// GeneratorFormData is the structured form input.
type GeneratorFormData struct {
	Name         string `yaml:"name" json:"name"`
	Relationship string `yaml:"relationship" json:"relationship"` // friend, mother, partner, ...
	Tone         string `yaml:"tone" json:"tone"`
	Language     string `yaml:"language" json:"language"`
	Personality  string `yaml:"personality,omitempty" json:"personality,omitempty"`
	Memory       string `yaml:"memory,omitempty" json:"memory,omitempty"`
}

// BirthdayPack is the five-field output of the form-driven generator.
type BirthdayPack struct {
	MainWish     string `yaml:"main_wish" json:"mainWish"`
	ShortMessage string `yaml:"short_message" json:"shortMessage"`
	Caption      string `yaml:"caption" json:"caption"`
	Speech       string `yaml:"speech" json:"speech"`
	Hashtags     string `yaml:"hashtags" json:"hashtags"`
}

// Aspect is the output shape of an exported card.
type Aspect string

const (
	AspectSquare Aspect = "square" // 1:1
	AspectStory  Aspect = "story"  // 9:16
)

// ParseAspect maps a user string to an Aspect, defaulting to square.
func ParseAspect(s string) Aspect {
	switch s {
	case "story", "9:16", "tall":
		return AspectStory
	default:
		return AspectSquare
	}
}
