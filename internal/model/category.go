package model

// CategoryID is the symbolic tag shared by catalog items of one topic.
type CategoryID string

// CategoryAll selects every category. It is a selector, never a catalog category.
const CategoryAll CategoryID = "all"

// String returns the tag.
func (c CategoryID) String() string {
	return string(c)
}

// IsAll reports whether c selects every category. The empty selector counts as all.
func (c CategoryID) IsAll() bool {
	return c == CategoryAll || c == ""
}

// Category is a closed-set topical tag with keywords that match every item in it.
type Category struct {
	ID       CategoryID    `yaml:"id" json:"id"`
	Name     LocalizedText `yaml:"name" json:"name"`
	Keywords []string      `yaml:"keywords" json:"keywords"`
}

// CatalogItem is a single searchable card.
type CatalogItem struct {
	Name        LocalizedText `yaml:"name" json:"name"`
	Description LocalizedText `yaml:"description" json:"description"`
	Category    CategoryID    `yaml:"category" json:"category"`
	Keywords    []string      `yaml:"keywords" json:"keywords"`
	ID          int           `yaml:"id" json:"id"`
}
