// Package tui implements the interactive card browser.
package tui

import (
	"time"

	"github.com/Veraticus/cardfinder/internal/catalog"
	"github.com/Veraticus/cardfinder/internal/history"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/Veraticus/cardfinder/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the browser state.
type Model struct {
	theme        themes.Theme
	keymap       KeyMap
	help         help.Model
	input        textinput.Model
	ranker       *ranking.Cache
	history      *history.History
	recorder     *Recorder
	catalog      model.Catalog
	results      model.MatchResults
	selectors    []model.CategoryID
	resultsQuery string
	language     model.Language
	category     model.CategoryID
	debounce     time.Duration
	seq          int
	recall       int
	cursor       int
	limit        int
	width        int
	height       int
	quitting     bool
}

// newModel creates a model showing the whole selected category.
func newModel(cfg Config) Model {
	input := textinput.New()
	input.Placeholder = "Search cards…"
	input.Prompt = "› "
	input.PromptStyle = cfg.Theme.Prompt
	input.CharLimit = 120
	input.Focus()

	ranker := cfg.Ranker
	if ranker == nil {
		ranker = ranking.New()
	}
	hist := cfg.History
	if hist == nil {
		hist = history.New(history.DefaultSize)
	}

	m := Model{
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		input:     input,
		ranker:    ranking.NewCache(ranker, cfg.Catalog, 0, 0),
		history:   hist,
		recorder:  cfg.Recorder,
		catalog:   cfg.Catalog,
		selectors: catalog.Selectors(cfg.Catalog),
		language:  cfg.Language,
		category:  cfg.Category,
		debounce:  cfg.Debounce,
		limit:     cfg.Limit,
		width:     cfg.Width,
		height:    cfg.Height,
		recall:    -1,
	}
	m.results = m.ranker.Rank(m.query())

	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if next.recorder != nil {
		next.recorder.RecordState(next, msg)
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case debounceMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		return m, m.rankNow()

	case rankedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.results = msg.results
		m.resultsQuery = msg.query
		m.cursor = min(m.cursor, max(0, len(m.visibleResults())-1))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Commit):
		m.history.Add(m.input.Value())
		m.recall = -1
		return m, nil

	case key.Matches(msg, m.keymap.NextCategory):
		m.category = m.stepCategory(1)
		return m.requery()

	case key.Matches(msg, m.keymap.PrevCategory):
		m.category = m.stepCategory(-1)
		return m.requery()

	case key.Matches(msg, m.keymap.ToggleLanguage):
		m.language = m.language.Other()
		return m.requery()

	case key.Matches(msg, m.keymap.Recall):
		entries := m.history.Entries()
		if len(entries) == 0 {
			return m, nil
		}
		m.recall = (m.recall + 1) % len(entries)
		m.input.SetValue(entries[m.recall])
		m.input.CursorEnd()
		return m.requery()

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.visibleResults())-1 {
			m.cursor++
		}
		return m, nil
	}

	before := m.input.Value()
	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, inputCmd
	}

	m.seq++
	m.cursor = 0
	m.recall = -1
	return m, tea.Batch(inputCmd, m.scheduleRank())
}

// requery ranks immediately after a non-typing change.
func (m Model) requery() (Model, tea.Cmd) {
	m.seq++
	m.cursor = 0
	return m, m.rankNow()
}

func (m Model) stepCategory(delta int) model.CategoryID {
	if len(m.selectors) == 0 {
		return model.CategoryAll
	}

	current := 0
	for i, id := range m.selectors {
		if id == m.category || (m.category.IsAll() && id.IsAll()) {
			current = i
			break
		}
	}

	n := len(m.selectors)
	return m.selectors[((current+delta)%n+n)%n]
}

// visibleResults returns the results the list shows: matched items only,
// capped by the configured limit.
func (m Model) visibleResults() model.MatchResults {
	return m.results.Matched().Limit(m.limit)
}

// Query returns the text in the search box.
func (m Model) Query() string {
	return m.input.Value()
}

// History returns the searches committed with Enter, newest first.
func (m Model) History() []string {
	return m.history.Entries()
}
