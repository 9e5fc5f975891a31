package catalog

import (
	"strings"

	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/sahilm/fuzzy"
)

// SuggestCategory returns the category id closest to input, for "did you
// mean" hints when a user names a category that does not exist.
func SuggestCategory(input string, categories []model.Category) (model.CategoryID, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || len(categories) == 0 {
		return "", false
	}

	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = strings.ToLower(c.ID.String())
	}

	matches := fuzzy.Find(input, ids)
	if len(matches) == 0 {
		return "", false
	}
	return categories[matches[0].Index].ID, true
}

// Selectors returns "all" followed by every category id, the order in which
// interactive views cycle through categories.
func Selectors(c model.Catalog) []model.CategoryID {
	return append([]model.CategoryID{model.CategoryAll}, c.CategoryIDs()...)
}
