package model

import (
	"errors"
	"fmt"

	"github.com/Veraticus/cardfinder/internal/common"
)

// Catalog is the static set of items and categories searched by the ranker.
type Catalog struct {
	Categories []Category    `yaml:"categories" json:"categories"`
	Items      []CatalogItem `yaml:"items" json:"items"`
}

// CategoryByID returns the category with the given id.
func (c Catalog) CategoryByID(id CategoryID) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// ItemByID returns the item with the given id.
func (c Catalog) ItemByID(id int) (CatalogItem, bool) {
	for _, item := range c.Items {
		if item.ID == id {
			return item, true
		}
	}
	return CatalogItem{}, false
}

// ItemsInCategory returns the items tagged with id, in catalog order.
// The all selector returns every item.
func (c Catalog) ItemsInCategory(id CategoryID) []CatalogItem {
	if id.IsAll() {
		return c.Items
	}

	items := make([]CatalogItem, 0, len(c.Items))
	for _, item := range c.Items {
		if item.Category == id {
			items = append(items, item)
		}
	}
	return items
}

// CategoryIDs returns the ids of all categories in declaration order.
func (c Catalog) CategoryIDs() []CategoryID {
	ids := make([]CategoryID, len(c.Categories))
	for i, cat := range c.Categories {
		ids[i] = cat.ID
	}
	return ids
}

// Validate checks referential integrity and reports every problem found.
func (c Catalog) Validate() error {
	var problems []error

	categories := make(map[CategoryID]bool, len(c.Categories))
	for i, cat := range c.Categories {
		switch {
		case cat.ID == "":
			problems = append(problems, fmt.Errorf("category at index %d has no id", i))
		case cat.ID == CategoryAll:
			problems = append(problems, fmt.Errorf("category id %q is reserved", CategoryAll))
		case categories[cat.ID]:
			problems = append(problems, fmt.Errorf("duplicate category %q", cat.ID))
		}
		categories[cat.ID] = true
	}

	ids := make(map[int]bool, len(c.Items))
	for i, item := range c.Items {
		if ids[item.ID] {
			problems = append(problems, fmt.Errorf("duplicate item id %d", item.ID))
		}
		ids[item.ID] = true

		if item.Name.IsEmpty() {
			problems = append(problems, fmt.Errorf("item %d (index %d) has no name", item.ID, i))
		}

		if !categories[item.Category] {
			problems = append(problems, fmt.Errorf("item %d: %w %q", item.ID, common.ErrUnknownCategory, item.Category))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", common.ErrInvalidCatalog, errors.Join(problems...))
}
