package views

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/f3rmion/wishcard/internal/clipboard"
	"github.com/f3rmion/wishcard/internal/gallery"
)

// historyLimit is how many renders the history view loads.
const historyLimit = 100

type historyLoadedMsg struct {
	entries []gallery.Entry
	err     error
}

type historyDeletedMsg struct {
	id  string
	err error
}

// HistoryModel lists past renders from the gallery.
type HistoryModel struct {
	deps    Deps
	entries []gallery.Entry
	cursor  int
	offset  int
	loading bool
	copied  bool
	err     error

	width  int
	height int
}

// NewHistoryModel creates the history view.
func NewHistoryModel(deps Deps) HistoryModel {
	return HistoryModel{deps: deps}
}

// SetSize updates the view dimensions.
func (m *HistoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Typing is always false; the history view has no text input.
func (m HistoryModel) Typing() bool { return false }

// Entries returns the loaded entries, newest first.
func (m HistoryModel) Entries() []gallery.Entry { return m.entries }

// Refresh reloads the entries from the gallery.
func (m *HistoryModel) Refresh() tea.Cmd {
	store := m.deps.Gallery
	if store == nil {
		return nil
	}
	m.loading = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		entries, err := store.List(ctx, historyLimit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

// Update handles messages.
func (m HistoryModel) Update(msg tea.Msg) (HistoryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.entries = msg.entries
		m.cursor = min(m.cursor, max(len(m.entries)-1, 0))
		m.adjustScroll()
		return m, nil

	case historyDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		return m, m.Refresh()

	case clearCopiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			if m.cursor < len(m.entries)-1 {
				m.cursor++
				m.adjustScroll()
			}
		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
				m.adjustScroll()
			}
		case "r":
			return m, m.Refresh()
		case "d":
			if len(m.entries) == 0 || m.deps.Gallery == nil {
				return m, nil
			}
			store := m.deps.Gallery
			id := m.entries[m.cursor].ID
			return m, func() tea.Msg {
				return historyDeletedMsg{id: id, err: store.Delete(context.Background(), id)}
			}
		case "y":
			if len(m.entries) == 0 || m.entries[m.cursor].Location == "" {
				return m, nil
			}
			write := m.deps.Copy
			if write == nil {
				write = clipboard.Write
			}
			if err := write(m.entries[m.cursor].Location); err != nil {
				m.err = err
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}
	}
	return m, nil
}

func (m *HistoryModel) visibleRows() int {
	if m.height <= 0 {
		return 10
	}
	return max(3, m.height-14)
}

func (m *HistoryModel) adjustScroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

// View renders the history list and the selected entry.
func (m HistoryModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("History"))
	b.WriteString("  ")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d renders", len(m.entries))))
	b.WriteString("\n\n")

	if m.deps.Gallery == nil {
		b.WriteString(helpStyle.Render("History is disabled. Set gallery.enabled in the config to keep a record of exports."))
		return b.String()
	}
	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()) + "\n\n")
	}
	if m.loading && len(m.entries) == 0 {
		b.WriteString(loadingStyle.Render("Loading..."))
		return b.String()
	}
	if len(m.entries) == 0 {
		b.WriteString(helpStyle.Render("No renders yet. Export a card to see it here."))
		return b.String()
	}

	width := max(30, m.width-4)
	end := min(len(m.entries), m.offset+m.visibleRows())
	for i := m.offset; i < end; i++ {
		e := m.entries[i]
		line := fmt.Sprintf("%s  %-14s %-6s %s",
			e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Theme, e.Aspect, e.Title)
		line = truncate(line, width-2)
		if i == m.cursor {
			b.WriteString(accentStyle.Render("▸ " + line))
		} else {
			b.WriteString(valueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	e := m.entries[m.cursor]
	b.WriteString("\n")
	b.WriteString(renderRow("Message", truncate(e.Message, width-16)))
	b.WriteString(renderRow("Footer", e.Footer))
	b.WriteString(renderRow("Size", fmt.Sprintf("%dx%d %s, variation %d", e.Width, e.Height, e.Format, e.Variation+1)))
	if e.Location != "" {
		loc := e.Location
		if m.copied {
			loc += "  " + copiedStyle.Render("Copied!")
		}
		b.WriteString(renderRow("Saved to", loc))
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k: navigate • y: copy path • d: delete • r: reload"))
	return b.String()
}
