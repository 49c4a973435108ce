package views

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/wishcard/internal/card"
	"github.com/f3rmion/wishcard/internal/clipboard"
	"github.com/f3rmion/wishcard/internal/export"
	"github.com/f3rmion/wishcard/internal/session"
	"github.com/f3rmion/wishcard/internal/variation"
)

// Form fields in display order.
const (
	fieldName = iota
	fieldRelationship
	fieldTone
	fieldLanguage
	fieldPersonality
	fieldMemory
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name", "Relationship", "Tone", "Language", "Personality", "Memory"}

var fieldPlaceholders = [fieldCount]string{
	"Asha",
	"friend, mother, partner, sibling, colleague",
	"funny, emotional, romantic, formal",
	"english, hinglish, hindi",
	"optional, e.g. kind",
	"optional, e.g. our road trip to Goa",
}

// PackModel is the form-mode view: a birthday pack from a few facts.
type PackModel struct {
	deps   Deps
	inputs [fieldCount]textinput.Model
	focus  int

	pack *session.PackSession

	exporting bool
	status    string
	copied    bool
	err       error

	width  int
	height int
}

// NewPackModel creates the form-mode view.
func NewPackModel(deps Deps) PackModel {
	m := PackModel{deps: deps}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 120
		ti.Width = 40
		ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
		ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))
		m.inputs[i] = ti
	}
	m.inputs[fieldName].Focus()
	return m
}

// SetSize updates the view dimensions.
func (m *PackModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	for i := range m.inputs {
		m.inputs[i].Width = max(20, min(60, width-22))
	}
}

// Typing reports whether keystrokes go to a form field. The form always
// holds focus.
func (m PackModel) Typing() bool { return true }

// Pack returns the current pack session, or nil before the first generation.
func (m PackModel) Pack() *session.PackSession { return m.pack }

// Form returns the form as currently typed.
func (m PackModel) Form() card.GeneratorFormData {
	v := func(i int) string { return strings.TrimSpace(m.inputs[i].Value()) }
	return card.GeneratorFormData{
		Name:         v(fieldName),
		Relationship: v(fieldRelationship),
		Tone:         v(fieldTone),
		Language:     v(fieldLanguage),
		Personality:  v(fieldPersonality),
		Memory:       v(fieldMemory),
	}
}

// Update handles messages.
func (m PackModel) Update(msg tea.Msg) (PackModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			m.pack = session.NewPack(m.Form(), nil)
			m.status = ""
			m.err = nil
			return m, nil
		case "ctrl+r":
			if m.pack != nil {
				m.pack.Regenerate()
			}
			return m, nil
		case "ctrl+y":
			if m.pack == nil {
				return m, nil
			}
			write := m.deps.Copy
			if write == nil {
				write = clipboard.Write
			}
			if err := write(m.pack.Pack().MainWish); err != nil {
				m.err = err
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		case "ctrl+e":
			if m.pack == nil || m.exporting {
				return m, nil
			}
			m.exporting = true
			m.status = ""
			return m, deliver(m.deps.Pipeline, m.deps.sink(), false, m.job())
		}

	case exportedMsg:
		m.exporting = false
		m.err = msg.err
		if msg.err == nil {
			m.status = exportStatus(msg.locations)
		}
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// job lays the pack out as a square card themed from the form.
func (m PackModel) job() export.Job {
	resolver := m.deps.Pipeline.Resolver()
	return export.Job{
		Content: m.pack.Content(),
		Theme:   resolver.Resolve(m.pack.Seed(), 0),
		Params:  variation.ParamsFor(0),
		Aspect:  card.AspectSquare,
		Tags:    []string{"birthday", "pack"},
	}
}

func (m *PackModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[i].Focus()
}

// View renders the form and the generated pack.
func (m PackModel) View() string {
	var b strings.Builder

	for i, in := range m.inputs {
		label := labelStyle.Render(fieldLabels[i] + ":")
		if i == m.focus {
			label = labelStyle.Foreground(lipgloss.Color("#ffe66d")).Render(fieldLabels[i] + ":")
		}
		b.WriteString(label + " " + in.View() + "\n")
	}

	if m.err != nil {
		b.WriteString("\n" + errorStyle.Render(m.err.Error()) + "\n")
	}

	if m.pack != nil {
		width := max(20, min(80, m.width-8))
		p := m.pack.Pack()

		header := subtitleStyle.Render("Birthday Pack")
		if m.copied {
			header += "  " + copiedStyle.Render("Copied!")
		}
		var body strings.Builder
		section := func(label, text string) {
			body.WriteString(accentStyle.Render(label) + "\n")
			body.WriteString(valueStyle.Render(wordWrap(text, width-4)) + "\n\n")
		}
		section("Main wish", p.MainWish)
		section("Short message", p.ShortMessage)
		section("Caption", p.Caption)
		section("Speech", p.Speech)
		body.WriteString(accentStyle.Render("Hashtags") + "\n" + valueStyle.Render(wordWrap(p.Hashtags, width-4)))

		b.WriteString("\n")
		b.WriteString(boxStyle.Width(width).Render(header + "\n\n" + body.String()))
		b.WriteString("\n")
	}

	switch {
	case m.exporting:
		b.WriteString("\n" + loadingStyle.Render("Exporting..."))
	case m.status != "":
		b.WriteString("\n" + valueStyle.Render(m.status))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("↑/↓: field • enter: generate • ctrl+r: regenerate • ctrl+y: copy wish • ctrl+e: export card"))
	return b.String()
}
