package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/cardfinder/internal/highlight"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// linesPerResult is the height of one rendered card: name line and description line.
const linesPerResult = 2

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	sections := []string{
		m.renderHeader(),
		m.renderCategories(),
		m.input.View(),
		"",
		m.renderResults(),
		m.renderHistory(),
		m.help.View(m.keymap),
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("💳 Card Finder")
	lang := m.theme.ActiveBadge.Render(strings.ToUpper(string(m.language)))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", lang)
}

func (m Model) renderCategories() string {
	badges := make([]string, len(m.selectors))
	for i, id := range m.selectors {
		label := themes.GetCategoryIcon(id.String()) + " " + m.categoryLabel(id)
		if id == m.category || (id.IsAll() && m.category.IsAll()) {
			badges[i] = m.theme.ActiveBadge.Render(label)
			continue
		}
		badges[i] = m.theme.Badge.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, badges...)
}

func (m Model) categoryLabel(id model.CategoryID) string {
	if id.IsAll() {
		if m.language == model.LanguageThai {
			return "ทั้งหมด"
		}
		return "All"
	}
	if c, ok := m.catalog.CategoryByID(id); ok && !c.Name.IsEmpty() {
		return c.Name.Get(m.language)
	}
	return id.String()
}

func (m Model) renderResults() string {
	visible := m.visibleResults()
	if len(visible) == 0 {
		return m.theme.StatusWarning.Render("No cards match your search.")
	}

	start, end := m.window(len(visible))
	lines := make([]string, 0, (end-start)*linesPerResult+1)

	for i := start; i < end; i++ {
		lines = append(lines, m.renderResult(visible[i], i == m.cursor)...)
	}

	status := fmt.Sprintf("%d of %d cards", len(visible), len(m.results))
	if start > 0 || end < len(visible) {
		status += fmt.Sprintf(" · showing %d-%d", start+1, end)
	}
	lines = append(lines, m.theme.Subtitle.Render(status))

	return strings.Join(lines, "\n")
}

// window returns the slice of results that fits on screen around the cursor.
func (m Model) window(total int) (int, int) {
	// header, categories, input, blank, status, history, help
	available := (m.height - 7) / linesPerResult
	if available < 1 {
		available = 1
	}
	if available >= total {
		return 0, total
	}

	start := 0
	if m.cursor >= available {
		start = m.cursor - available + 1
	}
	return start, start + available
}

func (m Model) renderResult(r model.MatchResult, selected bool) []string {
	mark := func(s string) string { return m.theme.Match.Render(s) }

	name := highlight.Apply(r.Item.Name.Get(m.language), m.resultsQuery, mark)
	pointer := "  "
	if selected {
		pointer = m.theme.Selected.Render("▸ ")
		name = m.theme.Selected.Render(name)
	}

	nameLine := pointer + name + "  " + m.theme.Badge.Render(m.categoryLabel(r.Item.Category))
	if r.Score > 0 {
		nameLine += m.theme.Subtitle.Render(fmt.Sprintf("%.1f", r.Score))
	}

	descWidth := max(10, m.width-6)
	desc := runewidth.Truncate(r.Item.Description.Get(m.language), descWidth, "…")
	descLine := "    " + m.theme.Description.Render(highlight.Apply(desc, m.resultsQuery, mark))

	return []string{nameLine, descLine}
}

func (m Model) renderHistory() string {
	entries := m.history.Entries()
	if len(entries) == 0 {
		return ""
	}
	return m.theme.StatusInfo.Render("Recent: " + strings.Join(entries, " · "))
}
