package config

import (
	"fmt"
	"time"

	"github.com/Veraticus/cardfinder/internal/common"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/spf13/viper"
)

// Viper keys.
const (
	KeyCatalogPath = "catalog.path"
	KeyLanguage    = "search.language"
	KeyCategory    = "search.category"
	KeyLimit       = "search.limit"
	KeyDebounce    = "search.debounce"
	KeyWeights     = "search.weights"
)

// DefaultDebounce is the quiet period before an interactive query is ranked.
const DefaultDebounce = 300 * time.Millisecond

// SearchConfig holds everything needed to run a search.
type SearchConfig struct {
	CatalogPath string
	Language    model.Language
	Category    model.CategoryID
	Weights     ranking.Weights
	Limit       int
	Debounce    time.Duration
}

// SetDefaults registers default values for every search key.
func SetDefaults(v *viper.Viper) {
	w := ranking.DefaultWeights()

	v.SetDefault(KeyCatalogPath, "")
	v.SetDefault(KeyLanguage, string(model.LanguageEnglish))
	v.SetDefault(KeyCategory, string(model.CategoryAll))
	v.SetDefault(KeyLimit, 0)
	v.SetDefault(KeyDebounce, DefaultDebounce)
	v.SetDefault(KeyWeights+".name", w.Name)
	v.SetDefault(KeyWeights+".other_name", w.OtherName)
	v.SetDefault(KeyWeights+".category", w.Category)
	v.SetDefault(KeyWeights+".category_keyword", w.CategoryKeyword)
	v.SetDefault(KeyWeights+".keyword", w.Keyword)
}

// LoadSearchConfig reads the search configuration from v.
// It follows this precedence:
// 1. Flags bound to v
// 2. CARDFINDER_ environment variables and the config file
// 3. Defaults registered by SetDefaults
func LoadSearchConfig(v *viper.Viper) (*SearchConfig, error) {
	lang, err := model.ParseLanguage(v.GetString(KeyLanguage))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", common.ErrInvalidConfig, KeyLanguage, err)
	}

	cfg := &SearchConfig{
		CatalogPath: ExpandPath(v.GetString(KeyCatalogPath)),
		Language:    lang,
		Category:    model.CategoryID(v.GetString(KeyCategory)),
		Limit:       v.GetInt(KeyLimit),
		Debounce:    v.GetDuration(KeyDebounce),
		Weights:     loadWeights(v),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadWeights reads each weight on its own so a partial weights section in
// the config file still inherits the remaining defaults.
func loadWeights(v *viper.Viper) ranking.Weights {
	return ranking.Weights{
		Name:            v.GetFloat64(KeyWeights + ".name"),
		OtherName:       v.GetFloat64(KeyWeights + ".other_name"),
		Category:        v.GetFloat64(KeyWeights + ".category"),
		CategoryKeyword: v.GetFloat64(KeyWeights + ".category_keyword"),
		Keyword:         v.GetFloat64(KeyWeights + ".keyword"),
	}
}

// Validate checks the configuration for values the ranker cannot use.
func (c *SearchConfig) Validate() error {
	if !c.Language.Valid() {
		return fmt.Errorf("%w: language %q", common.ErrInvalidConfig, c.Language)
	}
	if c.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative, got %d", common.ErrInvalidConfig, c.Limit)
	}
	if c.Debounce < 0 {
		return fmt.Errorf("%w: debounce must not be negative, got %s", common.ErrInvalidConfig, c.Debounce)
	}
	return c.Weights.Validate()
}
