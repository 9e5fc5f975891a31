package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Veraticus/cardfinder/internal/model"
)

// BatchResult is the outcome of one query from a batch file.
type BatchResult struct {
	Top     *ResultView `json:"top"`
	Query   string      `json:"query"`
	Line    int         `json:"line"`
	Matched int         `json:"matched"`
}

// NewBatchResult summarizes the ranking of one batch query.
func NewBatchResult(q Query, results model.MatchResults, lang model.Language) BatchResult {
	br := BatchResult{
		Query:   q.Text,
		Line:    q.Line,
		Matched: results.MatchedCount(),
	}
	if top := results.Top(); top != nil {
		view := NewResultViews(model.MatchResults{*top}, lang, nil)[0]
		br.Top = &view
	}
	return br
}

// RenderBatch prints one line per query in input order.
func RenderBatch(w io.Writer, results []BatchResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, InfoStyle.Render("No queries found."))
		return err
	}

	rows := make([][]string, len(results))
	for i, r := range results {
		top, score := "-", "-"
		if r.Top != nil {
			top = r.Top.Name
			score = FormatScore(r.Top.Score, true)
		}
		row := []string{strconv.Itoa(r.Line), r.Query, top, score, strconv.Itoa(r.Matched)}
		if r.Top == nil {
			for j, c := range row {
				row[j] = SubtleStyle.Render(c)
			}
		}
		rows[i] = row
	}
	printTable(w, []string{"LINE", "QUERY", "TOP MATCH", "SCORE", "MATCHES"}, rows)
	return nil
}
