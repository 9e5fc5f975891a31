package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Veraticus/cardfinder/internal/highlight"
	"github.com/Veraticus/cardfinder/internal/model"
	"github.com/Veraticus/cardfinder/internal/ranking"
	"github.com/mattn/go-runewidth"
)

// DefaultDescriptionWidth is the display width descriptions are truncated to.
const DefaultDescriptionWidth = 48

// Explainer returns the score contributions behind one item.
type Explainer func(item model.CatalogItem) []ranking.Contribution

// TableOptions controls how results are printed.
type TableOptions struct {
	Explain          Explainer
	Query            string
	Language         model.Language
	DescriptionWidth int
}

// ResultView is the serialized form of one ranked item.
type ResultView struct {
	Category      string                 `json:"category"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Contributions []ranking.Contribution `json:"contributions,omitempty"`
	Rank          int                    `json:"rank"`
	ID            int                    `json:"id"`
	Score         float64                `json:"score"`
	Matched       bool                   `json:"matched"`
}

// NewResultViews localizes results for output. explain may be nil.
func NewResultViews(results model.MatchResults, lang model.Language, explain Explainer) []ResultView {
	views := make([]ResultView, len(results))
	for i, r := range results {
		views[i] = ResultView{
			Rank:        i + 1,
			ID:          r.Item.ID,
			Category:    r.Item.Category.String(),
			Name:        r.Item.Name.Get(lang),
			Description: r.Item.Description.Get(lang),
			Score:       r.Score,
			Matched:     r.Matched,
		}
		if explain != nil && r.Matched {
			views[i].Contributions = explain(r.Item)
		}
	}
	return views
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

// FormatScore renders a score with one decimal. Unmatched results show a dash.
func FormatScore(score float64, matched bool) string {
	if !matched {
		return "-"
	}
	return strconv.FormatFloat(score, 'f', 1, 64)
}

type row struct {
	cells   []string
	marked  []bool
	result  model.MatchResult
	isTop   bool
	explain []ranking.Contribution
}

// RenderTable prints results as an aligned table. Query occurrences in names
// and descriptions are highlighted and the best match is flagged.
func RenderTable(w io.Writer, results model.MatchResults, opts TableOptions) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No matching cards."))
		return err
	}

	descWidth := opts.DescriptionWidth
	if descWidth <= 0 {
		descWidth = DefaultDescriptionWidth
	}

	header := []string{"#", "ID", "CATEGORY", "NAME", "SCORE", "DESCRIPTION"}
	top := results.Top()

	rows := make([]row, len(results))
	for i, r := range results {
		rank := strconv.Itoa(i + 1)
		isTop := top != nil && top.Item.ID == r.Item.ID && r.Matched
		if isTop {
			rank = TopIcon + " " + rank
		}
		rows[i] = row{
			cells: []string{
				rank,
				strconv.Itoa(r.Item.ID),
				r.Item.Category.String(),
				r.Item.Name.Get(opts.Language),
				FormatScore(r.Score, r.Matched),
				runewidth.Truncate(r.Item.Description.Get(opts.Language), descWidth, "…"),
			},
			marked: []bool{false, false, false, true, false, true},
			result: r,
			isTop:  isTop,
		}
		if opts.Explain != nil && r.Matched {
			rows[i].explain = opts.Explain(r.Item)
		}
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, r := range rows {
		for i, c := range r.cells {
			widths[i] = max(widths[i], runewidth.StringWidth(c))
		}
	}

	headerCells := make([]string, len(header))
	for i, h := range header {
		headerCells[i] = pad(TableHeaderStyle.Render(h), h, widths[i], i == len(header)-1)
	}
	if _, err := fmt.Fprintln(w, strings.Join(headerCells, "  ")); err != nil {
		return err
	}

	for _, r := range rows {
		if _, err := fmt.Fprintln(w, renderRow(r, widths, opts.Query)); err != nil {
			return err
		}
		for _, c := range r.explain {
			if _, err := fmt.Fprintln(w, renderContribution(c, widths[0])); err != nil {
				return err
			}
		}
	}

	return nil
}

func renderRow(r row, widths []int, query string) string {
	cells := make([]string, len(r.cells))
	last := len(r.cells) - 1

	for i, plain := range r.cells {
		var styled string
		switch {
		case !r.result.Matched:
			styled = SubtleStyle.Render(plain)
		case r.marked[i]:
			styled = highlight.Apply(plain, query, Highlight)
		case i == 0 && r.isTop:
			styled = TopMatchStyle.Render(plain)
		default:
			styled = plain
		}
		cells[i] = pad(styled, plain, widths[i], i == last)
	}

	return strings.Join(cells, "  ")
}

func renderContribution(c ranking.Contribution, indent int) string {
	line := fmt.Sprintf("%s%-16s %-32s %5.1f × %-4s = %.1f",
		strings.Repeat(" ", indent+2),
		c.Field,
		strconv.Quote(runewidth.Truncate(c.Candidate, 30, "…")),
		c.Score,
		strconv.FormatFloat(c.Weight, 'f', -1, 64),
		c.Weighted(),
	)
	return SubtleStyle.Render(line)
}

// pad right-fills styled up to width using the display width of plain.
func pad(styled, plain string, width int, last bool) string {
	if last {
		return styled
	}
	gap := width - runewidth.StringWidth(plain)
	if gap <= 0 {
		return styled
	}
	return styled + strings.Repeat(" ", gap)
}

// CategorySummary is one line of the category listing.
type CategorySummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Items    int      `json:"items"`
}

// SummarizeCategories counts items per category, in declaration order.
func SummarizeCategories(c model.Catalog, lang model.Language) []CategorySummary {
	summaries := make([]CategorySummary, len(c.Categories))
	for i, cat := range c.Categories {
		summaries[i] = CategorySummary{
			ID:       cat.ID.String(),
			Name:     cat.Name.Get(lang),
			Keywords: cat.Keywords,
			Items:    len(c.ItemsInCategory(cat.ID)),
		}
	}
	return summaries
}

// RenderCategories prints the category listing.
func RenderCategories(w io.Writer, summaries []CategorySummary) error {
	if len(summaries) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No categories found."))
		return err
	}

	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{s.ID, s.Name, strconv.Itoa(s.Items)}
	}
	printTable(w, []string{"ID", "NAME", "ITEMS"}, rows)
	return nil
}
