package tui

import (
	"time"

	"github.com/Veraticus/cardfinder/internal/history"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/Veraticus/cardfinder/internal/tui/themes"
)

// DefaultDebounce is the quiet period after the last keystroke before the
// query is ranked.
const DefaultDebounce = 300 * time.Millisecond

// Config holds TUI configuration.
type Config struct {
	Theme    themes.Theme
	Ranker   *ranking.Ranker
	History  *history.History
	Recorder *Recorder
	Language model.Language
	Category model.CategoryID
	Catalog  model.Catalog
	Debounce time.Duration
	Limit    int
	Width    int
	Height   int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:    themes.Default,
		Language: model.LanguageEnglish,
		Category: model.CategoryAll,
		Debounce: DefaultDebounce,
		Width:    80,
		Height:   24,
	}
}

// WithCatalog sets the catalog to browse.
func WithCatalog(c model.Catalog) Option {
	return func(cfg *Config) {
		cfg.Catalog = c
	}
}

// WithRanker sets the ranker used for every query.
func WithRanker(r *ranking.Ranker) Option {
	return func(cfg *Config) {
		cfg.Ranker = r
	}
}

// WithHistory shares a search history with the browser.
func WithHistory(h *history.History) Option {
	return func(cfg *Config) {
		cfg.History = h
	}
}

// WithLanguage sets the initial display language.
func WithLanguage(lang model.Language) Option {
	return func(cfg *Config) {
		if lang.Valid() {
			cfg.Language = lang
		}
	}
}

// WithCategory sets the initial category selector.
func WithCategory(id model.CategoryID) Option {
	return func(cfg *Config) {
		cfg.Category = id
	}
}

// WithDebounce sets the keystroke quiet period. Zero ranks on every keystroke.
func WithDebounce(d time.Duration) Option {
	return func(cfg *Config) {
		if d >= 0 {
			cfg.Debounce = d
		}
	}
}

// WithLimit caps the number of results shown. Zero shows as many as fit.
func WithLimit(n int) Option {
	return func(cfg *Config) {
		cfg.Limit = n
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(cfg *Config) {
		cfg.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(cfg *Config) {
		cfg.Width = width
		cfg.Height = height
	}
}

// WithRecorder captures every state change for debugging.
func WithRecorder(r *Recorder) Option {
	return func(cfg *Config) {
		cfg.Recorder = r
	}
}
