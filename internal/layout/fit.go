// Package layout fits card text into a bounding box by searching font size
// and line height, wrapping greedily on whitespace.
package layout

import (
	"strings"

	"github.com/f3rmion/wishcard/internal/card"
)

// Search steps.
const (
	FontSizeStep   = 2.0
	LineHeightStep = 0.1
)

// Measurer reports the advance width of s drawn in family at size pixels.
type Measurer interface {
	MeasureString(family string, size float64, s string) float64
}

// Options bound a fit search.
type Options struct {
	MaxWidth        float64
	MaxHeight       float64
	InitialFontSize float64
	MinFontSize     float64
	LineHeight      float64 // Starting multiplier, e.g. 1.4
	MinLineHeight   float64 // Floor for the multiplier, e.g. 1.1
	EmojiAware      bool    // Wrap on emoji/non-emoji runs instead of plain whitespace
}

// DefaultOptions returns the settings used for card message bodies.
func DefaultOptions(maxWidth, maxHeight float64) Options {
	return Options{
		MaxWidth:        maxWidth,
		MaxHeight:       maxHeight,
		InitialFontSize: 56,
		MinFontSize:     24,
		LineHeight:      1.4,
		MinLineHeight:   1.1,
	}
}

func (o Options) normalized() Options {
	if o.MinFontSize <= 0 {
		o.MinFontSize = 1
	}
	if o.InitialFontSize < o.MinFontSize {
		o.InitialFontSize = o.MinFontSize
	}
	if o.LineHeight <= 0 {
		o.LineHeight = 1.2
	}
	if o.MinLineHeight <= 0 || o.MinLineHeight > o.LineHeight {
		o.MinLineHeight = o.LineHeight
	}
	return o
}

// Fit finds the largest font size, and at that size the loosest line height,
// at which text wrapped to MaxWidth stays within MaxHeight. The line height
// shrinks first; at its floor the font size drops one step and the line
// height resets. At MinFontSize the layout is returned even if it
// overflows. Fit never fails.
func Fit(m Measurer, text, family string, opts Options) card.FittedText {
	opts = opts.normalized()

	size := opts.InitialFontSize
	lh := opts.LineHeight
	for {
		lines := wrap(m, family, size, opts.MaxWidth, text, opts.EmojiAware)
		total := float64(len(lines)) * size * lh
		fitted := card.FittedText{FontSize: size, LineHeight: lh, Lines: lines, TotalHeight: total}

		if total <= opts.MaxHeight {
			return fitted
		}

		if lh-LineHeightStep >= opts.MinLineHeight-1e-9 {
			lh = round2(lh - LineHeightStep)
			continue
		}
		if size <= opts.MinFontSize {
			return fitted
		}

		size -= FontSizeStep
		if size < opts.MinFontSize {
			size = opts.MinFontSize
		}
		lh = opts.LineHeight
	}
}

// Wrap breaks text into lines no wider than maxWidth, splitting only on
// whitespace. A single word wider than maxWidth gets a line of its own.
func Wrap(m Measurer, family string, size, maxWidth float64, text string) []string {
	return wrap(m, family, size, maxWidth, text, false)
}

func wrap(m Measurer, family string, size, maxWidth float64, text string, emojiAware bool) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		var tokens []Token
		if emojiAware {
			tokens = Tokenize(para)
		} else {
			for _, w := range strings.Fields(para) {
				tokens = append(tokens, Token{Text: w, SpaceBefore: true})
			}
		}
		lines = append(lines, wrapTokens(m, family, size, maxWidth, tokens)...)
	}

	if len(lines) == 0 {
		// Whitespace only; keep one empty line so the result is renderable.
		return []string{""}
	}
	return lines
}

func wrapTokens(m Measurer, family string, size, maxWidth float64, tokens []Token) []string {
	var lines []string
	var line strings.Builder
	for _, tok := range tokens {
		if line.Len() == 0 {
			line.WriteString(tok.Text)
			continue
		}
		candidate := line.String()
		if tok.SpaceBefore {
			candidate += " "
		}
		candidate += tok.Text
		if m.MeasureString(family, size, candidate) <= maxWidth {
			line.Reset()
			line.WriteString(candidate)
			continue
		}
		lines = append(lines, line.String())
		line.Reset()
		line.WriteString(tok.Text)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
