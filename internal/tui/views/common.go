// Package views provides the individual views for the studio TUI.
package views

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/gallery"
	"github.com/f3rmion/wishcard/internal/preview"
)

// renderTimeout bounds one preview or export command.
const renderTimeout = 30 * time.Second

// Deps are the services the views share.
type Deps struct {
	Pipeline  *export.Pipeline
	Gallery   *gallery.Store // nil disables history
	OutputDir string
	Mode      preview.Mode
	Copy      func(string) error // nil uses the system clipboard
}

// sink writes artifacts to the output dir and records them when history
// is enabled.
func (d Deps) sink() export.Sink {
	var s export.Sink = export.DirSink{Dir: d.OutputDir}
	if d.Gallery != nil {
		s = export.GallerySink{Store: d.Gallery, Then: s}
	}
	return s
}

// copySink delivers like sink and copies the resulting path.
func (d Deps) copySink() export.Sink {
	return export.ClipboardSink{Then: d.sink(), Write: d.Copy}
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(14)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	accentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 1)

	activeBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#ffe66d")).
			Padding(0, 1)

	loadingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffe66d")).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// exportedMsg reports where an export went.
type exportedMsg struct {
	locations []string
	copied    bool
	err       error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// deliver renders jobs and hands each artifact to sink.
func deliver(p *export.Pipeline, sink export.Sink, copied bool, jobs ...export.Job) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		arts, err := p.RenderAll(ctx, jobs)
		if err != nil {
			return exportedMsg{err: err}
		}
		var locs []string
		for _, a := range arts {
			loc, err := sink.Deliver(ctx, a)
			if err != nil {
				return exportedMsg{locations: locs, err: err}
			}
			locs = append(locs, loc)
		}
		return exportedMsg{locations: locs, copied: copied}
	}
}

// truncate cuts s to width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

func wordWrap(s string, width int) string {
	if width <= 0 {
		width = 60
	}
	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}
	return strings.Join(lines, "\n")
}

func renderRow(label, value string) string {
	return labelStyle.Render(label+":") + " " + valueStyle.Render(value) + "\n"
}
