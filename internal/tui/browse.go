// Package tui provides the interactive catalog browser.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/colorvane/colorvane/internal/catalog"
	"github.com/colorvane/colorvane/internal/cli"
)

// Browse launches the interactive catalog browser.
func Browse(c catalog.Catalog) error {
	p := tea.NewProgram(newBrowseModel(c))
	_, err := p.Run()
	return err
}

// browseModel is the Bubbletea model for the catalog browser.
type browseModel struct {
	entries  catalog.Catalog
	filtered []catalog.Entry
	input    textinput.Model
	cursor   int
	offset   int
	width    int
	height   int
	quitting bool

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	dimStyle      lipgloss.Style
}

func newBrowseModel(c catalog.Catalog) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Filter by name or hex..."
	ti.Focus()
	ti.CharLimit = 64

	return browseModel{
		entries:  c,
		filtered: c,
		input:    ti,

		titleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212")),
		selectedStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")),
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit

		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			m.clampCursor()
			return m, nil

		case "down":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.clampCursor()
			return m, nil

		case "pgup":
			m.cursor -= m.pageSize()
			if m.cursor < 0 {
				m.cursor = 0
			}
			m.clampCursor()
			return m, nil

		case "pgdown":
			m.cursor += m.pageSize()
			if m.cursor >= len(m.filtered) {
				m.cursor = len(m.filtered) - 1
			}
			m.clampCursor()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.applyFilter()
	return m, cmd
}

// applyFilter recomputes the visible entries from the query.
func (m *browseModel) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.input.Value()))
	if query == "" {
		m.filtered = m.entries
		m.clampCursor()
		return
	}

	filtered := make([]catalog.Entry, 0, len(m.entries))
	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.Name), query) ||
			strings.Contains(e.HexKey(), strings.TrimPrefix(query, "#")) {
			filtered = append(filtered, e)
		}
	}
	m.filtered = filtered
	m.clampCursor()
}

func (m *browseModel) pageSize() int {
	// Rows available after title, input, spacing, and help line.
	rows := m.height - 5
	if rows < 1 {
		rows = 10
	}
	return rows
}

func (m *browseModel) clampCursor() {
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m browseModel) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	var sb strings.Builder
	sb.WriteString(m.titleStyle.Render(fmt.Sprintf("colorvane (%d colors)", len(m.entries))))
	sb.WriteString("\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	page := m.pageSize()
	end := m.offset + page
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	if len(m.filtered) == 0 {
		sb.WriteString(m.dimStyle.Render("  no matches"))
		sb.WriteString("\n")
	}

	for i := m.offset; i < end; i++ {
		e := m.filtered[i]
		prefix := "  "
		name := fmt.Sprintf("%-24s", e.Name)
		if i == m.cursor {
			prefix = "> "
			name = m.selectedStyle.Render(name)
		}
		sb.WriteString(prefix + cli.Block(e) + " " + name + " " + m.dimStyle.Render(e.Hex()))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.dimStyle.Render("↑/↓ move · type to filter · esc quit"))

	return tea.NewView(sb.String())
}
