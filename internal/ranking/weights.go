package ranking

import (
	"fmt"

	"github.com/Veraticus/cardfinder/internal/common"
)

// Weights multiplies each field's match score before it is added to an item's
// aggregate score. A zero weight disables the field entirely.
type Weights struct {
	Name            float64 `json:"name"`
	OtherName       float64 `json:"other_name"`
	Category        float64 `json:"category"`
	CategoryKeyword float64 `json:"category_keyword"`
	Keyword         float64 `json:"keyword"`
}

// DefaultWeights returns the standard weighting: the active-language name
// dominates, item keywords count once each.
func DefaultWeights() Weights {
	return Weights{
		Name:            8,
		OtherName:       6,
		Category:        2.5,
		CategoryKeyword: 2,
		Keyword:         1,
	}
}

// Validate rejects negative weights.
func (w Weights) Validate() error {
	fields := []struct {
		name  string
		value float64
	}{
		{"name", w.Name},
		{"other_name", w.OtherName},
		{"category", w.Category},
		{"category_keyword", w.CategoryKeyword},
		{"keyword", w.Keyword},
	}

	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: weight %s must not be negative, got %.2f", common.ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}
