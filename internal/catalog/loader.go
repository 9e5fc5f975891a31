// Package catalog loads and validates the static card catalog.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Veraticus/cardfinder/internal/common"
	"github.com/Veraticus/cardfinder/internal/config"
	"github.com/Veraticus/cardfinder/internal/model"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

// Default returns the built-in catalog of financial-service cards.
func Default() (model.Catalog, error) {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to load built-in catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads a catalog from a YAML file. The path may use ~ and $VAR.
func LoadFile(path string) (model.Catalog, error) {
	f, err := os.Open(config.ExpandPath(path))
	if err != nil {
		return model.Catalog{}, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return model.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Resolve loads the catalog at path, or the built-in catalog when path is empty.
func Resolve(path string) (model.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}
	return LoadFile(path)
}

// Load decodes, normalizes and validates a YAML catalog.
func Load(r io.Reader) (model.Catalog, error) {
	var c model.Catalog

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return model.Catalog{}, fmt.Errorf("%w: empty document", common.ErrInvalidCatalog)
		}
		return model.Catalog{}, fmt.Errorf("%w: %v", common.ErrInvalidCatalog, err)
	}

	c = Normalize(c)
	if err := c.Validate(); err != nil {
		return model.Catalog{}, err
	}

	return c, nil
}

// Normalize trims every text field to NFC and drops blank keywords.
func Normalize(c model.Catalog) model.Catalog {
	out := model.Catalog{
		Categories: make([]model.Category, len(c.Categories)),
		Items:      make([]model.CatalogItem, len(c.Items)),
	}

	for i, cat := range c.Categories {
		out.Categories[i] = model.Category{
			ID:       model.CategoryID(normalizeText(cat.ID.String())),
			Name:     cat.Name.Map(normalizeText),
			Keywords: normalizeKeywords(cat.Keywords),
		}
	}

	for i, item := range c.Items {
		out.Items[i] = model.CatalogItem{
			ID:          item.ID,
			Category:    model.CategoryID(normalizeText(item.Category.String())),
			Name:        item.Name.Map(normalizeText),
			Description: item.Description.Map(normalizeText),
			Keywords:    normalizeKeywords(item.Keywords),
		}
	}

	return out
}

func normalizeText(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = normalizeText(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}
