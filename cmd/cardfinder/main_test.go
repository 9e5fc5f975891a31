package main

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/cardfinder/internal/cli"
	"github.com/Veraticus/cardfinder/internal/common"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	viper.Reset()
	t.Cleanup(viper.Reset)
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func decodeResults(t *testing.T, out string) []cli.ResultView {
	t.Helper()
	var views []cli.ResultView
	require.NoError(t, json.Unmarshal([]byte(out), &views))
	return views
}

func ids(views []cli.ResultView) []int {
	out := make([]int, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "cardfinder version dev\n", out)
}

func TestSearchCmd(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIDs []int
		wantTop int
	}{
		{
			name:    "english query",
			args:    []string{"search", "budget", "-o", "json"},
			wantTop: 2,
		},
		{
			name:    "thai query",
			args:    []string{"search", "--lang", "th-TH", "งบประมาณ", "-o", "json"},
			wantTop: 2,
		},
		{
			name:    "category filter",
			args:    []string{"search", "-c", "credit", "loan", "-o", "json"},
			wantIDs: []int{13, 11, 10, 12},
		},
		{
			name:    "limit",
			args:    []string{"search", "-c", "credit", "loan", "-n", "2", "-o", "json"},
			wantIDs: []int{13, 11},
		},
		{
			name:    "filter composes with search",
			args:    []string{"search", "-c", "credit", "savings", "-o", "json"},
			wantIDs: []int{},
		},
		{
			name:    "unmatched included on request",
			args:    []string{"search", "-c", "credit", "savings", "--all", "-o", "json"},
			wantIDs: []int{10, 11, 12, 13},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "", tt.args...)
			require.NoError(t, err)

			views := decodeResults(t, out)
			if tt.wantIDs != nil {
				assert.Equal(t, tt.wantIDs, ids(views))
			}
			if tt.wantTop != 0 {
				require.NotEmpty(t, views)
				assert.Equal(t, tt.wantTop, views[0].ID)
			}
		})
	}
}

func TestSearchCmd_ThaiDisplay(t *testing.T) {
	out, _, err := execute(t, "", "search", "--lang", "th", "งบประมาณ", "-n", "1", "-o", "json")
	require.NoError(t, err)

	views := decodeResults(t, out)
	require.Len(t, views, 1)
	assert.Equal(t, "การจัดการงบประมาณ", views[0].Name)
}

func TestSearchCmd_EmptyQueryListsCategory(t *testing.T) {
	out, _, err := execute(t, "", "search", "-c", "credit", "-o", "json")
	require.NoError(t, err)

	views := decodeResults(t, out)
	assert.Equal(t, []int{10, 11, 12, 13}, ids(views))
	for _, v := range views {
		assert.True(t, v.Matched)
		assert.Zero(t, v.Score)
	}
}

func TestSearchCmd_UnknownCategorySuggests(t *testing.T) {
	out, errOut, err := execute(t, "", "search", "-c", "credt", "loan", "-o", "json")
	require.NoError(t, err)

	assert.Empty(t, decodeResults(t, out))
	assert.Contains(t, errOut, `Unknown category "credt". Did you mean "credit"?`)
}

func TestSearchCmd_TableAndExplain(t *testing.T) {
	out, _, err := execute(t, "", "search", "budget", "-n", "1", "--explain")
	require.NoError(t, err)

	assert.Contains(t, out, "SCORE")
	assert.Contains(t, out, "Budget Management")
	assert.Contains(t, out, "category_keyword")
}

func TestSearchCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{
			name:    "unknown output",
			args:    []string{"search", "budget", "-o", "xml"},
			wantMsg: `Unknown output format "xml"`,
		},
		{
			name:    "unsupported language",
			args:    []string{"search", "budget", "--lang", "fr"},
			wantMsg: "Invalid configuration",
		},
		{
			name:    "negative limit",
			args:    []string{"search", "budget", "--limit=-1"},
			wantMsg: "Invalid configuration",
		},
		{
			name:    "missing catalog",
			args:    []string{"search", "budget", "--catalog", "/nonexistent/catalog.yaml"},
			wantMsg: "Could not load the catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, "", tt.args...)
			require.Error(t, err)
			assert.True(t, strings.HasPrefix(common.UserMessage(err), tt.wantMsg), common.UserMessage(err))
		})
	}
}

func TestSearchCmd_ConfigFileAndEnv(t *testing.T) {
	cfgPath := writeFile(t, "config.yaml", `
search:
  category: credit
  limit: 1
`)

	out, _, err := execute(t, "", "--config", cfgPath, "search", "loan", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, []int{13}, ids(decodeResults(t, out)))

	t.Setenv("CARDFINDER_SEARCH_LANGUAGE", "th")
	out, _, err = execute(t, "", "--config", cfgPath, "search", "loan", "-o", "json")
	require.NoError(t, err)
	views := decodeResults(t, out)
	require.Len(t, views, 1)
	assert.Equal(t, "การจัดการเงินกู้", views[0].Name)

	out, _, err = execute(t, "", "--config", cfgPath, "search", "loan", "-c", "all", "-n", "0", "-o", "json")
	require.NoError(t, err)
	assert.Greater(t, len(decodeResults(t, out)), 1)
}

func TestCategoriesCmd(t *testing.T) {
	out, _, err := execute(t, "", "categories")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "ITEMS")
	assert.True(t, strings.HasPrefix(lines[1], "finance"))

	out, _, err = execute(t, "", "categories", "--lang", "th", "-o", "json")
	require.NoError(t, err)

	var summaries []cli.CategorySummary
	require.NoError(t, json.Unmarshal([]byte(out), &summaries))
	require.Len(t, summaries, 4)
	assert.Equal(t, "การเงิน", summaries[0].Name)

	total := 0
	for _, s := range summaries {
		total += s.Items
	}
	assert.Equal(t, 18, total)
}

func TestValidateCmd(t *testing.T) {
	out, _, err := execute(t, "", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in catalog is valid: 4 categories, 18 cards")

	valid := writeFile(t, "valid.yaml", `
categories:
  - id: finance
    keywords: [budget]
items:
  - id: 1
    category: finance
    name: {en: Budget}
`)
	out, _, err = execute(t, "", "validate", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "is valid: 1 categories, 1 cards")

	invalid := writeFile(t, "invalid.yaml", `
categories:
  - id: finance
items:
  - id: 1
    category: finance
    name: {en: Budget}
  - id: 1
    category: crypto
    name: {en: Coins}
`)
	_, errOut, err := execute(t, "", "validate", invalid)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidCatalog)
	assert.Contains(t, errOut, "• duplicate item id 1")
	assert.Contains(t, errOut, `• item 1: unknown category "crypto"`)
	assert.NotContains(t, errOut, "• invalid catalog")
}

func TestBatchCmd(t *testing.T) {
	input := writeFile(t, "queries.txt", "budget\n# comment\n\nloan\nzzzz\n")

	out, _, err := execute(t, "", "batch", input, "--quiet", "-o", "json")
	require.NoError(t, err)

	var results []cli.BatchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 3)

	assert.Equal(t, 1, results[0].Line)
	require.NotNil(t, results[0].Top)
	assert.Equal(t, 2, results[0].Top.ID)

	assert.Equal(t, 4, results[1].Line)
	require.NotNil(t, results[1].Top)
	assert.Equal(t, 13, results[1].Top.ID)

	assert.Equal(t, 5, results[2].Line)
	assert.Nil(t, results[2].Top)
	assert.Zero(t, results[2].Matched)
}

func TestBatchCmd_StdinTable(t *testing.T) {
	out, errOut, err := execute(t, "loan\nbudget\n", "batch", "-", "--concurrency", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "loan")
	assert.Contains(t, lines[2], "budget")
	assert.Contains(t, errOut, "Ranking queries")
}

func TestBatchCmd_Errors(t *testing.T) {
	_, _, err := execute(t, "", "batch", "/nonexistent/queries.txt")
	require.Error(t, err)
	assert.Contains(t, common.UserMessage(err), "Could not open")

	_, _, err = execute(t, "budget\n", "batch", "-", "--concurrency", "0")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}
