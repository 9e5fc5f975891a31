// Package ranking orders catalog items against a search query.
package ranking

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/Veraticus/cardfinder/internal/fuzzy"
	"github.com/Veraticus/cardfinder/internal/model"
)

// Field identifies which part of an item produced a score contribution.
type Field string

// Scored fields.
const (
	FieldName            Field = "name"
	FieldOtherName       Field = "other_name"
	FieldCategory        Field = "category"
	FieldCategoryKeyword Field = "category_keyword"
	FieldKeyword         Field = "keyword"
)

// Query is everything the ranker needs besides the catalog.
type Query struct {
	Text     string
	Category model.CategoryID
	Language model.Language
}

// Contribution is one matched comparison and what it added to the aggregate.
type Contribution struct {
	Field     Field   `json:"field"`
	Candidate string  `json:"candidate"`
	Score     float64 `json:"score"`
	Weight    float64 `json:"weight"`
}

// Weighted returns the amount added to the aggregate score.
func (c Contribution) Weighted() float64 {
	return c.Score * c.Weight
}

// MatchFunc compares one candidate string against a query.
type MatchFunc func(candidate, query string) fuzzy.Result

// Ranker scores catalog items. It holds no per-query state and is safe for
// concurrent use.
type Ranker struct {
	logger  *slog.Logger
	match   MatchFunc
	weights Weights
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithWeights overrides the default field weights.
func WithWeights(w Weights) Option {
	return func(r *Ranker) {
		r.weights = w
	}
}

// WithLogger sets the logger used to report degraded lookups.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMatchFunc replaces the string matcher.
func WithMatchFunc(fn MatchFunc) Option {
	return func(r *Ranker) {
		if fn != nil {
			r.match = fn
		}
	}
}

// New creates a ranker with the default weights.
func New(opts ...Option) *Ranker {
	r := &Ranker{
		weights: DefaultWeights(),
		match:   fuzzy.Match,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Weights returns the weights in use.
func (r *Ranker) Weights() Weights {
	return r.weights
}

// Rank filters the catalog by category and orders it against the query.
//
// An empty query returns every item in the selected category as matched with
// a zero score, in catalog order. Otherwise matched items come first, by
// descending aggregate score; ties and unmatched items keep catalog order.
func (r *Ranker) Rank(catalog model.Catalog, q Query) model.MatchResults {
	items := catalog.ItemsInCategory(q.Category)
	results := make(model.MatchResults, len(items))

	if strings.TrimSpace(q.Text) == "" {
		for i, item := range items {
			results[i] = model.MatchResult{Item: item, Matched: true}
		}
		return results
	}

	categories := indexCategories(catalog.Categories)
	for i, item := range items {
		score, matched, _ := r.score(item, categories, q, false)
		results[i] = model.MatchResult{Item: item, Score: score, Matched: matched}
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Matched != results[j].Matched {
			return results[i].Matched
		}
		return results[i].Score > results[j].Score
	})

	return results
}

// Explain returns every matched comparison behind an item's aggregate score.
func (r *Ranker) Explain(catalog model.Catalog, item model.CatalogItem, q Query) []Contribution {
	if strings.TrimSpace(q.Text) == "" {
		return nil
	}
	_, _, contributions := r.score(item, indexCategories(catalog.Categories), q, true)
	return contributions
}

func (r *Ranker) score(item model.CatalogItem, categories map[model.CategoryID]model.Category, q Query, explain bool) (float64, bool, []Contribution) {
	var (
		total         float64
		matched       bool
		contributions []Contribution
	)

	add := func(field Field, candidate string, weight float64) {
		if weight == 0 {
			return
		}
		res := r.match(candidate, q.Text)
		if !res.Matched {
			return
		}
		matched = true
		total += res.Score * weight
		if explain {
			contributions = append(contributions, Contribution{
				Field:     field,
				Candidate: candidate,
				Score:     res.Score,
				Weight:    weight,
			})
		}
	}

	lang := q.Language
	if !lang.Valid() {
		lang = model.LanguageEnglish
	}

	add(FieldName, item.Name.Exact(lang), r.weights.Name)
	add(FieldOtherName, item.Name.Exact(lang.Other()), r.weights.OtherName)
	add(FieldCategory, item.Category.String(), r.weights.Category)

	if category, ok := categories[item.Category]; ok {
		for _, keyword := range category.Keywords {
			add(FieldCategoryKeyword, keyword, r.weights.CategoryKeyword)
		}
	} else {
		r.logger.Warn("Item references unknown category, skipping category keywords",
			"item_id", item.ID,
			"category", item.Category)
	}

	for _, keyword := range item.Keywords {
		add(FieldKeyword, keyword, r.weights.Keyword)
	}

	return total, matched, contributions
}

func indexCategories(categories []model.Category) map[model.CategoryID]model.Category {
	index := make(map[model.CategoryID]model.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}
	return index
}
