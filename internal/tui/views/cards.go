package views

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/preview"
	"github.com/f3rmion/wishcard/internal/session"
)

// previewsMsg carries the rendered carousel. Stale generations are dropped.
type previewsMsg struct {
	gen  int
	arts [session.Slots]string
	err  error
}

// CardsModel is the prompt-mode studio: one prompt, three variations.
type CardsModel struct {
	deps  Deps
	input textinput.Model

	session *session.Session
	aspect  card.Aspect

	previews  [session.Slots]string
	gen       int
	rendering bool

	exporting bool
	status    string
	copied    bool
	err       error

	width  int
	height int
}

// NewCardsModel creates the prompt-mode view.
func NewCardsModel(deps Deps) CardsModel {
	ti := textinput.New()
	ti.Placeholder = "Describe your card, e.g. funny birthday poster for my sister"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	return CardsModel{deps: deps, input: ti, aspect: card.AspectSquare}
}

// SetSize updates the view dimensions.
func (m *CardsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(20, min(80, width-6))
}

// Typing reports whether keystrokes go to the prompt input.
func (m CardsModel) Typing() bool { return m.input.Focused() }

// Session returns the current session, or nil before the first prompt.
func (m CardsModel) Session() *session.Session { return m.session }

// Aspect returns the aspect previews and exports use.
func (m CardsModel) Aspect() card.Aspect { return m.aspect }

// Update handles messages.
func (m CardsModel) Update(msg tea.Msg) (CardsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.input.Focused() {
			if msg.String() == "enter" {
				return m, m.start()
			}
			break
		}
		return m.handleKey(msg)

	case previewsMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.rendering = false
		m.err = msg.err
		if msg.err == nil {
			m.previews = msg.arts
		}
		return m, nil

	case exportedMsg:
		m.exporting = false
		m.err = msg.err
		if msg.err == nil {
			m.status = exportStatus(msg.locations)
			if msg.copied {
				m.copied = true
				return m, clearCopiedAfter(2 * time.Second)
			}
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m CardsModel) handleKey(msg tea.KeyMsg) (CardsModel, tea.Cmd) {
	s := m.session
	if s == nil {
		m.input.Focus()
		return m, textinput.Blink
	}
	switch msg.String() {
	case "/", "i":
		m.input.Focus()
		return m, textinput.Blink
	case "left", "h":
		s.Prev()
	case "right", "l":
		s.Next()
	case "r":
		_ = s.RegenerateText(s.Selected())
		return m, m.refresh()
	case "R":
		s.Regenerate()
		return m, m.refresh()
	case "t":
		_ = s.ChangeTone(nextTone(s.Tone()))
		return m, m.refresh()
	case "T":
		th, _ := s.Theme(s.Selected())
		_ = s.OverrideTheme(nextTheme(m.deps.Pipeline.Resolver().Catalog().IDs(), th.Background.ID))
		return m, m.refresh()
	case "u":
		if s.ThemeOverridden() {
			s.ResetTheme()
			return m, m.refresh()
		}
	case "a":
		if m.aspect == card.AspectSquare {
			m.aspect = card.AspectStory
		} else {
			m.aspect = card.AspectSquare
		}
		return m, m.refresh()
	case "e", "y":
		if m.exporting {
			return m, nil
		}
		job, err := s.Job(s.Selected(), m.aspect)
		if err != nil {
			m.err = err
			return m, nil
		}
		m.exporting = true
		m.status = ""
		if msg.String() == "y" {
			return m, deliver(m.deps.Pipeline, m.deps.copySink(), true, job)
		}
		return m, deliver(m.deps.Pipeline, m.deps.sink(), false, job)
	case "E":
		if m.exporting {
			return m, nil
		}
		m.exporting = true
		m.status = ""
		return m, deliver(m.deps.Pipeline, m.deps.sink(), false, s.Jobs(m.aspect)...)
	}
	return m, nil
}

// start opens a session for the typed prompt.
func (m *CardsModel) start() tea.Cmd {
	s, err := session.New(m.input.Value(), m.deps.Pipeline.Resolver())
	if err != nil {
		m.err = err
		return nil
	}
	m.session = s
	m.err = nil
	m.status = ""
	m.previews = [session.Slots]string{}
	m.input.Blur()
	return m.refresh()
}

// refresh re-renders every preview from the session's current state.
func (m *CardsModel) refresh() tea.Cmd {
	if m.session == nil {
		return nil
	}
	m.gen++
	m.rendering = true

	gen := m.gen
	jobs := m.session.Jobs(m.aspect)
	p := m.deps.Pipeline
	mode := m.deps.Mode
	cols := m.previewCols()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), renderTimeout)
		defer cancel()

		msg := previewsMsg{gen: gen}
		for i, job := range jobs {
			img, err := p.Preview(ctx, job, cols*4)
			if err != nil {
				msg.err = fmt.Errorf("previewing variation %d: %w", i+1, err)
				return msg
			}
			b := img.Bounds()
			msg.arts[i] = preview.Render(img, cols, preview.Rows(b.Dx(), b.Dy(), cols), mode)
		}
		return msg
	}
}

// previewCols is the width of one carousel cell's image.
func (m CardsModel) previewCols() int {
	if m.width <= 0 {
		return 24
	}
	return max(12, min(36, (m.width-12)/session.Slots-4))
}

// View renders the cards view.
func (m CardsModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.session == nil {
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Describe the card you want and press Enter"))
		return b.String()
	}

	a := m.session.Analysis()
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("%s · %s · %s · %s · %s",
		a.EventType, m.session.Tone(), a.VisualTheme, a.LayoutStyle, m.aspect)))
	if m.session.ThemeOverridden() {
		b.WriteString("  " + accentStyle.Render("theme pinned"))
	}
	b.WriteString("\n")

	b.WriteString(m.renderCarousel())
	b.WriteString("\n")
	b.WriteString(m.renderSelected())

	switch {
	case m.exporting:
		b.WriteString("\n" + loadingStyle.Render("Exporting..."))
	case m.rendering:
		b.WriteString("\n" + loadingStyle.Render("Rendering previews..."))
	case m.status != "":
		line := valueStyle.Render(m.status)
		if m.copied {
			line += "  " + copiedStyle.Render("Copied!")
		}
		b.WriteString("\n" + line)
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(strings.Join([]string{
		"←/→: select", "r/R: regenerate one/all", "t: tone", "T/u: theme/auto",
		"a: aspect", "e/E: export one/all", "y: export+copy", "/: new prompt",
	}, " • ")))
	return b.String()
}

func (m CardsModel) renderCarousel() string {
	cols := m.previewCols()
	cells := make([]string, 0, session.Slots)
	for i, v := range m.session.Variations() {
		th, _ := m.session.Theme(i)
		header := fmt.Sprintf("%d · %s", i+1, th.Background.ID)

		art := m.previews[i]
		if art == "" {
			art = helpStyle.Render(strings.Repeat("·", cols))
		}
		body := accentStyle.Render(truncate(header, cols)) + "\n" + art + "\n" +
			valueStyle.Render(truncate(v.Title, cols))

		style := boxStyle
		if i == m.session.Selected() {
			style = activeBoxStyle
		}
		cells = append(cells, style.Width(cols+2).Render(body))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m CardsModel) renderSelected() string {
	i := m.session.Selected()
	v, _ := m.session.Variation(i)
	th, _ := m.session.Theme(i)
	width := max(20, min(80, m.width-18))

	var b strings.Builder
	b.WriteString(renderRow("Title", v.Title))
	if v.Subtitle != "" {
		b.WriteString(renderRow("Subtitle", v.Subtitle))
	}
	b.WriteString(labelStyle.Render("Message:") + " " +
		valueStyle.Render(wordWrap(v.MainText, width)) + "\n")
	b.WriteString(renderRow("Footer", v.FooterText))
	b.WriteString(renderRow("Theme", fmt.Sprintf("%s / %s / %s",
		th.Background.ID, th.Typography.ID, th.DecorationStyle())))
	if len(v.ThemeTags) > 0 {
		b.WriteString(renderRow("Tags", truncate(strings.Join(v.ThemeTags, ", "), width)))
	}
	return b.String()
}

func nextTone(t card.ToneType) card.ToneType {
	for i, tone := range card.Tones {
		if tone == t {
			return card.Tones[(i+1)%len(card.Tones)]
		}
	}
	return card.Tones[0]
}

func nextTheme(ids []string, current string) string {
	for i, id := range ids {
		if id == current {
			return ids[(i+1)%len(ids)]
		}
	}
	return ids[0]
}

func exportStatus(locs []string) string {
	switch len(locs) {
	case 0:
		return "Nothing exported"
	case 1:
		return "Saved " + locs[0]
	default:
		return fmt.Sprintf("Saved %d cards to %s", len(locs), filepath.Dir(locs[0]))
	}
}
