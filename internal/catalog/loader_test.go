package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/cardfinder/internal/common"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `
categories:
  - id: finance
    name: {en: Finance, th: การเงิน}
    keywords: [budget, "  money  ", ""]
items:
  - id: 1
    category: finance
    name: {en: " Budget Management ", th: การจัดการงบประมาณ}
    description: {en: Track your budget}
    keywords: [budgeting]
`

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Len(t, c.Items, 18)
	assert.Equal(t, []model.CategoryID{"finance", "investment", "credit", "savings"}, c.CategoryIDs())

	first, ok := c.ItemByID(1)
	require.True(t, ok)
	assert.Equal(t, "Family Financial Planning", first.Name.EN)
	assert.Equal(t, "การวางแผนทางการเงินครอบครัว", first.Name.TH)

	for _, item := range c.Items {
		_, ok := c.CategoryByID(item.Category)
		assert.True(t, ok, "item %d category %q", item.ID, item.Category)
		assert.NotEmpty(t, item.Keywords, "item %d", item.ID)
	}
}

func TestDefault_Ranking(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	r := ranking.New()

	tests := []struct {
		name    string
		query   ranking.Query
		wantTop []int
	}{
		{
			name:    "budget",
			query:   ranking.Query{Text: "budget", Language: model.LanguageEnglish},
			wantTop: []int{2, 1, 4, 3, 5},
		},
		{
			name:    "loan",
			query:   ranking.Query{Text: "loan", Language: model.LanguageEnglish},
			wantTop: []int{13, 11, 10, 12},
		},
		{
			name:    "thai budget",
			query:   ranking.Query{Text: "งบประมาณ", Language: model.LanguageThai},
			wantTop: []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := r.Rank(c, tt.query)
			require.Len(t, results, 18)
			assert.Equal(t, tt.wantTop, results.IDs()[:len(tt.wantTop)])
		})
	}

	results := r.Rank(c, ranking.Query{Text: "savings", Category: "credit"})
	assert.Equal(t, []int{10, 11, 12, 13}, results.IDs())
	assert.Zero(t, results.MatchedCount())
}

func TestLoad(t *testing.T) {
	c, err := Load(strings.NewReader(validCatalog))
	require.NoError(t, err)

	require.Len(t, c.Categories, 1)
	assert.Equal(t, []string{"budget", "money"}, c.Categories[0].Keywords)

	require.Len(t, c.Items, 1)
	assert.Equal(t, "Budget Management", c.Items[0].Name.EN)
	assert.Equal(t, "Track your budget", c.Items[0].Description.Get(model.LanguageThai))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		errMsg  string
		wantErr error
	}{
		{
			name:    "empty document",
			doc:     "",
			wantErr: common.ErrInvalidCatalog,
		},
		{
			name:    "unknown field",
			doc:     "categories: []\nitems: []\ncards: []\n",
			wantErr: common.ErrInvalidCatalog,
			errMsg:  "cards",
		},
		{
			name: "unknown item category",
			doc: `
categories: [{id: finance}]
items: [{id: 1, category: crypto, name: {en: Coins}}]
`,
			wantErr: common.ErrUnknownCategory,
			errMsg:  "crypto",
		},
		{
			name: "duplicate item id",
			doc: `
categories: [{id: finance}]
items:
  - {id: 1, category: finance, name: {en: One}}
  - {id: 1, category: finance, name: {en: Two}}
`,
			wantErr: common.ErrInvalidCatalog,
			errMsg:  "duplicate item id 1",
		},
		{
			name: "blank name",
			doc: `
categories: [{id: finance}]
items: [{id: 7, category: finance, name: {en: "  "}}]
`,
			wantErr: common.ErrInvalidCatalog,
			errMsg:  "item 7 (index 0) has no name",
		},
		{
			name:    "reserved category",
			doc:     "categories: [{id: all}]\nitems: []\n",
			wantErr: common.ErrInvalidCatalog,
			errMsg:  "reserved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.errMsg != "" {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestNormalize_ComposesUnicode(t *testing.T) {
	c := Normalize(model.Catalog{
		Categories: []model.Category{{ID: " finance "}},
		Items: []model.CatalogItem{{
			ID:       1,
			Category: "finance",
			Name:     model.LocalizedText{EN: "Cafe\u0301 Budget"},
			Keywords: []string{"  ", "cafe\u0301"},
		}},
	})

	assert.Equal(t, model.CategoryID("finance"), c.Categories[0].ID)
	assert.Equal(t, "Caf\u00e9 Budget", c.Items[0].Name.EN)
	assert.Equal(t, []string{"caf\u00e9"}, c.Items[0].Keywords)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCatalog), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)

	t.Setenv("CARDFINDER_TEST_DIR", dir)
	c, err = Resolve("$CARDFINDER_TEST_DIR/catalog.yaml")
	require.NoError(t, err)
	assert.Len(t, c.Items, 1)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	c, err = Resolve("  ")
	require.NoError(t, err)
	assert.Len(t, c.Items, 18)
}

func TestSuggestCategory(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	tests := []struct {
		input  string
		want   model.CategoryID
		wantOK bool
	}{
		{input: "credt", want: "credit", wantOK: true},
		{input: "SVNGS", want: "savings", wantOK: true},
		{input: "invest", want: "investment", wantOK: true},
		{input: "xyz"},
		{input: "  "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := SuggestCategory(tt.input, c.Categories)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectors(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []model.CategoryID{"all", "finance", "investment", "credit", "savings"}, Selectors(c))
}
