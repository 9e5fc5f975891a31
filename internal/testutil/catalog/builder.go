package catalog

import (
	"testing"

	"github.com/Veraticus/cardfinder/internal/model"
)

// Builder accumulates categories and items for a test catalog.
type Builder struct {
	t          testing.TB
	categories []model.Category
	items      []model.CatalogItem
}

// NewBuilder creates a new catalog builder for the given test.
func NewBuilder(t testing.TB) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// WithCategory adds a category with the given keywords.
func (b *Builder) WithCategory(id model.CategoryID, keywords ...string) *Builder {
	b.categories = append(b.categories, model.Category{
		ID:       id,
		Name:     model.LocalizedText{EN: string(id)},
		Keywords: keywords,
	})
	return b
}

// WithItem adds an item with an English name only.
func (b *Builder) WithItem(id int, category model.CategoryID, name string, keywords ...string) *Builder {
	return b.WithCatalogItem(model.CatalogItem{
		ID:       id,
		Category: category,
		Name:     model.LocalizedText{EN: name},
		Keywords: keywords,
	})
}

// WithBilingualItem adds an item named in both languages.
func (b *Builder) WithBilingualItem(id int, category model.CategoryID, nameEN, nameTH string, keywords ...string) *Builder {
	return b.WithCatalogItem(model.CatalogItem{
		ID:       id,
		Category: category,
		Name:     model.LocalizedText{EN: nameEN, TH: nameTH},
		Keywords: keywords,
	})
}

// WithCatalogItem adds a fully specified item.
func (b *Builder) WithCatalogItem(item model.CatalogItem) *Builder {
	b.items = append(b.items, item)
	return b
}

// WithFixture adds every category and item of a fixture.
func (b *Builder) WithFixture(f Fixture) *Builder {
	b.categories = append(b.categories, f.Categories...)
	b.items = append(b.items, f.Items...)
	return b
}

// Build returns the catalog, failing the test if it does not validate.
func (b *Builder) Build() model.Catalog {
	b.t.Helper()

	c := b.BuildUnchecked()
	if err := c.Validate(); err != nil {
		b.t.Fatalf("invalid test catalog: %v", err)
	}
	return c
}

// BuildUnchecked returns the catalog without validating it.
func (b *Builder) BuildUnchecked() model.Catalog {
	categories := make([]model.Category, len(b.categories))
	copy(categories, b.categories)
	items := make([]model.CatalogItem, len(b.items))
	copy(items, b.items)

	return model.Catalog{Categories: categories, Items: items}
}
