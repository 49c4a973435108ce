package server

import "github.com/f3rmion/wishcard/internal/card"

// PromptRequest is the body of POST /v1/analyze and POST /v1/cards.
type PromptRequest struct {
	Prompt string `json:"prompt"`
}

// CardsResponse is the JSON shape returned by POST /v1/cards.
type CardsResponse struct {
	Analysis   card.PromptAnalysis `json:"analysis"`
	Variations []VariationResp     `json:"variations"`
}

// VariationResp is one carousel entry with the theme it renders in.
type VariationResp struct {
	Index     int                `json:"index"`
	Variation card.CardVariation `json:"variation"`
	Theme     ThemeResp          `json:"theme"`
}

// ThemeResp names the parts of a resolved theme.
type ThemeResp struct {
	Name       string               `json:"name"`
	Background string               `json:"background"`
	Typography string               `json:"typography"`
	Decoration card.DecorationStyle `json:"decoration"`
}

// PackRequest is the body of POST /v1/pack.
type PackRequest struct {
	card.GeneratorFormData
	Seed *uint64 `json:"seed,omitempty"`
}

// RenderRequest is the body of POST /v1/render. Content, when set,
// replaces the synthesized text of the chosen variation and must already
// be free of placeholder tokens.
type RenderRequest struct {
	Prompt    string            `json:"prompt"`
	Variation int               `json:"variation"`
	Aspect    string            `json:"aspect"`
	Theme     string            `json:"theme,omitempty"`
	Content   *card.CardContent `json:"content,omitempty"`
	Encoding  string            `json:"encoding,omitempty"` // "binary" (default) or "dataurl"
}

// RenderResponse is returned by POST /v1/render with encoding=dataurl.
type RenderResponse struct {
	ID      string `json:"id"`
	Theme   string `json:"theme"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	DataURL string `json:"data_url"`
}

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
