package browser

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/arcanaland/cardbook/internal/card"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("170")).
			Foreground(lipgloss.Color("255")).
			Bold(true).
			Padding(0, 1)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("245")).
				Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("170")).
			Bold(true)

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// View renders the browser
func (m *Model) View() string {
	sections := []string{
		titleStyle.Render(m.title),
		m.renderSearchBar(),
		m.renderTabs(),
		m.renderCount(),
		m.renderResults(),
		helpStyle.Render("type to search • tab/shift+tab filter • ↑/↓ move • enter details • esc quit"),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) renderSearchBar() string {
	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("170")).
		Width(max(m.width-4, 20)).
		Padding(0, 1)

	icon := lipgloss.NewStyle().
		Foreground(lipgloss.Color("170")).
		Bold(true).
		Render("⌕")

	return searchStyle.Render(lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", m.input.View()))
}

func (m *Model) renderTabs() string {
	tabs := make([]string, 0, len(card.Filters))
	for _, f := range card.Filters {
		label := filterLabel(f)
		if f == m.state.Filter || (f.IsAll() && m.state.Filter.IsAll()) {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m *Model) renderCount() string {
	noun := "cards"
	if m.count.Target() == 1 {
		noun = "card"
	}
	return helpStyle.Render(fmt.Sprintf(" %s %s", m.count.Display(), noun))
}

func (m *Model) renderResults() string {
	if len(m.results) == 0 {
		return emptyStyle.Render("No cards match your search.")
	}

	var b strings.Builder
	end := min(m.offset+m.listHeight(), len(m.results))
	for i := m.offset; i < end; i++ {
		c := m.results[i].Card
		line := fmt.Sprintf("%s %s", c.Name, typeStyle.Render("· "+c.Type.Label()))
		if i == m.cursor {
			b.WriteString(selectedStyle.Render("▸ ") + selectedStyle.Render(c.Name) + " " + typeStyle.Render("· "+c.Type.Label()))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")

		if i == m.cursor && m.expanded && c.Description != "" {
			wrapped := wordwrap.String(c.Description, max(m.width-8, 20))
			for _, l := range strings.Split(wrapped, "\n") {
				b.WriteString("    " + l + "\n")
			}
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// filterLabel is the tab text for a filter
func filterLabel(f card.Filter) string {
	switch card.Type(f) {
	case card.Occupation:
		return "Occupations"
	case card.MinorImprovement:
		return "Minor Improvements"
	case card.MajorImprovement:
		return "Major Improvements"
	}
	return "All"
}
