package tui

import (
	"time"

	"github.com/Veraticus/cardfinder/internal/ranking"
	tea "github.com/charmbracelet/bubbletea"
)

// query snapshots the current search parameters.
func (m Model) query() ranking.Query {
	return ranking.Query{
		Text:     m.input.Value(),
		Category: m.category,
		Language: m.language,
	}
}

// rankNow ranks the current query off the update loop.
func (m Model) rankNow() tea.Cmd {
	q := m.query()
	seq := m.seq
	ranker := m.ranker

	return func() tea.Msg {
		return rankedMsg{
			seq:     seq,
			query:   q.Text,
			results: ranker.Rank(q),
		}
	}
}

// scheduleRank waits out the debounce period before ranking. Any keystroke in
// the meantime bumps seq and turns the pending tick into a no-op.
func (m Model) scheduleRank() tea.Cmd {
	if m.debounce <= 0 {
		return m.rankNow()
	}

	seq := m.seq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{seq: seq}
	})
}
