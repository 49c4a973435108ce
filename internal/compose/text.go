package compose

import (
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/fonts"
	"github.com/f3rmion/wishcard/internal/layout"
)

// block is a fitted run of lines placed at a vertical offset.
type block struct {
	family string
	fitted card.FittedText
	top    float64
}

func (b block) height() float64 { return b.fitted.TotalHeight }

// textPlan is where the title and message land on a surface.
type textPlan struct {
	title block
	body  block
}

// planText fits title and message and positions them for the layout variant.
func planText(s *Surface, content card.CardContent, typo card.Typography, variant card.LayoutVariant, margin float64) textPlan {
	w, h := float64(s.Width()), float64(s.Height())
	unit := w / 1080
	maxW := w - 2*margin

	title := layout.Fit(s, content.Title, typo.TitleFont, layout.Options{
		MaxWidth:        maxW,
		MaxHeight:       h * 0.22,
		InitialFontSize: orDefault(typo.TitleSize, 96) * unit,
		MinFontSize:     32 * unit,
		LineHeight:      1.2,
		MinLineHeight:   1.0,
	})

	bodyOpts := layout.DefaultOptions(maxW, h*0.36)
	bodyOpts.InitialFontSize = orDefault(typo.BodySize, bodyOpts.InitialFontSize) * unit
	bodyOpts.MinFontSize *= unit
	bodyOpts.EmojiAware = true
	body := layout.Fit(s, content.Message, typo.BodyFont, bodyOpts)

	gap := 40 * unit
	p := textPlan{
		title: block{family: typo.TitleFont, fitted: title},
		body:  block{family: typo.BodyFont, fitted: body},
	}

	switch variant {
	case card.LayoutTopHeavy:
		p.title.top = h * 0.16
		p.body.top = p.title.top + p.title.height() + gap
	case card.LayoutBalanced:
		p.title.top = h*0.3 - p.title.height()/2
		p.body.top = h*0.6 - p.body.height()/2
		if minTop := p.title.top + p.title.height() + gap; p.body.top < minTop {
			p.body.top = minTop
		}
	default:
		total := p.title.height() + gap + p.body.height()
		p.title.top = (h - total) / 2
		p.body.top = p.title.top + p.title.height() + gap
	}
	return p
}

// drawBlock draws every line of b centred horizontally, offset by (dx, dy).
func drawBlock(s *Surface, dst draw.Image, b block, c color.Color, dx, dy float64) error {
	size := b.fitted.FontSize
	pitch := b.fitted.LinePitch()
	ascent := s.Ascent(b.family, size)
	w := float64(s.Width())

	for i, line := range b.fitted.Lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		x := (w-s.MeasureString(b.family, size, line))/2 + dx
		y := b.top + float64(i)*pitch + (pitch-size)/2 + ascent + dy
		if err := s.DrawString(dst, b.family, size, x, y, c, line); err != nil {
			return err
		}
	}
	return nil
}

// drawTitle draws the title with a blurred glow pass in the theme glow
// colour, then a drop shadow, then the crisp text.
func drawTitle(s *Surface, b block, bg card.Background, glowIntensity float64) error {
	unit := float64(s.Width()) / 1080

	if radius := bg.Glow.Radius * glowIntensity * unit; radius > 0 {
		layer := s.Layer()
		if err := drawBlock(s, layer, b, bg.Glow.Color, 0, 0); err != nil {
			return err
		}
		s.Composite(imaging.Blur(layer, radius))
	}

	if err := drawBlock(s, s.img, b, color.NRGBA{A: 110}, 3*unit, 3*unit); err != nil {
		return err
	}
	return drawBlock(s, s.img, b, bg.TextColor, 0, 0)
}

// drawBody draws the message with a soft drop shadow.
func drawBody(s *Surface, b block, bg card.Background) error {
	unit := float64(s.Width()) / 1080
	if err := drawBlock(s, s.img, b, color.NRGBA{A: 90}, 2*unit, 2*unit); err != nil {
		return err
	}
	return drawBlock(s, s.img, b, bg.TextColor, 0, 0)
}

// drawLine draws a single centred line of small text with its top at y.
func drawLine(s *Surface, family, text string, size, top float64, c color.Color) error {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	w := float64(s.Width())
	x := (w - s.MeasureString(family, size, text)) / 2
	return s.DrawString(s.img, family, size, x, top+s.Ascent(family, size), c, text)
}

// drawFooter places branding at the top edge and the footer at the bottom.
// Both are brighter over image backgrounds.
func drawFooter(s *Surface, footer, branding string, bg card.Background, margin float64, onImage bool) error {
	unit := float64(s.Width()) / 1080
	h := float64(s.Height())
	alpha := uint8(170)
	if onImage {
		alpha = 230
	}
	c := withAlpha(bg.TextColor, alpha)

	size := 30 * unit
	if err := drawLine(s, fonts.FamilyBody, footer, size, h-margin*0.75-size, c); err != nil {
		return err
	}
	return drawLine(s, fonts.FamilyModern, branding, 24*unit, margin*0.5, withAlpha(bg.Accent, alpha))
}

func orDefault(v, def float64) float64 {
	if v <= 0 {
		return def
	}
	return v
}
