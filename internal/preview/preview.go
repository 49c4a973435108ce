// Package preview renders card images as terminal half-block art.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Mode selects how cells are drawn.
type Mode int

const (
	// Color draws each cell as ▀ with the top pixel as foreground and the
	// bottom pixel as background.
	Color Mode = iota
	// Mono draws ▀ ▄ █ by brightness threshold, for terminals without color.
	Mono
)

// Rows returns how many terminal rows an image of size w×h needs at cols
// columns, keeping its aspect ratio. Each row holds two pixel rows.
func Rows(w, h, cols int) int {
	if w <= 0 || h <= 0 || cols <= 0 {
		return 0
	}
	rows := (cols*h/w + 1) / 2
	return max(rows, 1)
}

// Render draws img into cols×rows terminal cells.
func Render(img image.Image, cols, rows int, mode Mode) string {
	if img == nil || cols <= 0 || rows <= 0 {
		return ""
	}
	small := scaleDown(img, cols, rows*2)
	if mode == Mono {
		return imageToHalfBlocks(small, cols, rows)
	}
	return imageToColorBlocks(small, cols, rows)
}

// scaleDown resamples img to w×h with area averaging.
func scaleDown(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// imageToColorBlocks converts an image to colored half-block art.
func imageToColorBlocks(img *image.NRGBA, cols, rows int) string {
	var result strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := img.NRGBAAt(col, row*2)
			bottom := img.NRGBAAt(col, row*2+1)
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(top))).
				Background(lipgloss.Color(hex(bottom)))
			result.WriteString(style.Render("▀"))
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

// imageToHalfBlocks converts an image to monochrome half-block art.
func imageToHalfBlocks(img *image.NRGBA, cols, rows int) string {
	var result strings.Builder
	const threshold = 96

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			topOn := brightness(img.NRGBAAt(col, row*2)) > threshold
			bottomOn := brightness(img.NRGBAAt(col, row*2+1)) > threshold

			switch {
			case topOn && bottomOn:
				result.WriteRune('█')
			case topOn:
				result.WriteRune('▀')
			case bottomOn:
				result.WriteRune('▄')
			default:
				result.WriteRune(' ')
			}
		}
		if row < rows-1 {
			result.WriteRune('\n')
		}
	}

	return result.String()
}

func brightness(c color.NRGBA) uint8 {
	y := (299*uint32(c.R) + 587*uint32(c.G) + 114*uint32(c.B)) / 1000
	return uint8(y * uint32(c.A) / 255)
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
