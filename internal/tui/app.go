// Package tui provides the interactive card studio.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/wishcard/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewCards ViewType = iota
	ViewPack
	ViewHistory
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// Deps are the services the views share.
type Deps = views.Deps

// AppModel is the main studio model
type AppModel struct {
	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	cardsView   views.CardsModel
	packView    views.PackModel
	historyView views.HistoryModel

	// Help overlay
	showHelp bool
}

// NewApp creates the studio. When the gallery is nil the history view
// stays in the menu but reports that history is disabled.
func NewApp(deps Deps) AppModel {
	return AppModel{
		sidebarWidth: 18,
		currentView:  ViewCards,
		menuItems: []MenuItem{
			{Label: "Cards", View: ViewCards, Shortcut: "1"},
			{Label: "Birthday Pack", View: ViewPack, Shortcut: "2"},
			{Label: "History", View: ViewHistory, Shortcut: "3"},
		},

		cardsView:   views.NewCardsModel(deps),
		packView:    views.NewPackModel(deps),
		historyView: views.NewHistoryModel(deps),
	}
}

// CurrentView returns the active view.
func (m AppModel) CurrentView() ViewType { return m.currentView }

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// typing reports whether the active view wants plain keys as text.
func (m AppModel) typing() bool {
	if m.sidebarActive {
		return false
	}
	switch m.currentView {
	case ViewCards:
		return m.cardsView.Typing()
	case ViewPack:
		return m.packView.Typing()
	default:
		return m.historyView.Typing()
	}
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		if !m.typing() {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "?":
				m.showHelp = true
				return m, nil
			case "1", "2", "3":
				return m, m.switchTo(ViewType(msg.String()[0] - '1'))
			}
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
			case "enter", "l", "right":
				return m, m.switchTo(m.menuItems[m.selectedMenu].View)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.cardsView.SetSize(contentWidth, contentHeight)
		m.packView.SetSize(contentWidth, contentHeight)
		m.historyView.SetSize(contentWidth, contentHeight)
		return m, nil
	}

	// Async results go to every view; each ignores what it did not ask for.
	if _, ok := msg.(tea.KeyMsg); !ok {
		var c1, c2, c3 tea.Cmd
		m.cardsView, c1 = m.cardsView.Update(msg)
		m.packView, c2 = m.packView.Update(msg)
		m.historyView, c3 = m.historyView.Update(msg)
		return m, tea.Batch(c1, c2, c3)
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewCards:
		m.cardsView, cmd = m.cardsView.Update(msg)
	case ViewPack:
		m.packView, cmd = m.packView.Update(msg)
	case ViewHistory:
		m.historyView, cmd = m.historyView.Update(msg)
	}
	return m, cmd
}

// switchTo activates v, reloading history when it is opened.
func (m *AppModel) switchTo(v ViewType) tea.Cmd {
	m.currentView = v
	m.sidebarActive = false
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	if v == ViewHistory {
		return m.historyView.Refresh()
	}
	return nil
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var content string
	switch m.currentView {
	case ViewCards:
		content = m.cardsView.View()
	case ViewPack:
		content = m.packView.View()
	case ViewHistory:
		content = m.historyView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render(" ✦ wishcard "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}
		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	for i := 0; i < m.height-usedHeight-2; i++ {
		items = append(items, "")
	}
	items = append(items, SidebarHelpStyle.Render("? Help  esc Menu"))

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	key := func(k, desc string) string {
		return HelpKeyStyle.Render(k) + HelpDescStyle.Render(desc) + "\n"
	}

	text := HelpTitleStyle.Render("wishcard studio") + "\n\n"

	text += HelpSectionStyle.Render("Global") + "\n"
	text += key("1-3", "Switch views")
	text += key("tab / esc", "Toggle sidebar focus")
	text += key("?", "Show this help")
	text += key("q", "Quit (when not typing)")

	text += HelpSectionStyle.Render("Cards") + "\n"
	text += key("enter", "Generate from prompt")
	text += key("←/→", "Select variation")
	text += key("r / R", "Regenerate one / all")
	text += key("t", "Cycle tone")
	text += key("T / u", "Pin next theme / automatic")
	text += key("a", "Square or story")
	text += key("e / E", "Export one / all")
	text += key("y", "Export and copy path")
	text += key("/", "Edit prompt")

	text += HelpSectionStyle.Render("Birthday Pack") + "\n"
	text += key("↑/↓", "Move between fields")
	text += key("enter", "Generate pack")
	text += key("ctrl+r", "Regenerate")
	text += key("ctrl+y", "Copy main wish")
	text += key("ctrl+e", "Export as card")

	text += HelpSectionStyle.Render("History") + "\n"
	text += key("j/k", "Navigate")
	text += key("y", "Copy saved path")
	text += key("d", "Delete entry")

	text += "\n" + HelpStyle.Italic(true).Render("Press any key to close")

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, HelpBoxStyle.Render(text))
}
