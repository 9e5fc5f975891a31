package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// QueryReader reads one search query per line. Blank lines and lines starting
// with # are skipped.
type QueryReader struct {
	scanner *bufio.Scanner
	line    int
}

// NewQueryReader creates a reader over r.
func NewQueryReader(r io.Reader) *QueryReader {
	if r == nil {
		panic("reader cannot be nil")
	}
	return &QueryReader{scanner: bufio.NewScanner(r)}
}

// Next returns the next query and its 1-based line number. It returns io.EOF
// when the input is exhausted.
func (r *QueryReader) Next(ctx context.Context) (string, int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", r.line, ErrInputCancelled
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return "", r.line, err
			}
			return "", r.line, io.EOF
		}
		r.line++

		query := strings.TrimSpace(r.scanner.Text())
		if query == "" || strings.HasPrefix(query, "#") {
			continue
		}
		return query, r.line, nil
	}
}

// Query is one line of batch input.
type Query struct {
	Text string
	Line int
}

// ReadAll collects every remaining query.
func (r *QueryReader) ReadAll(ctx context.Context) ([]Query, error) {
	var queries []Query
	for {
		text, line, err := r.Next(ctx)
		if errors.Is(err, io.EOF) {
			return queries, nil
		}
		if err != nil {
			return nil, err
		}
		queries = append(queries, Query{Text: text, Line: line})
	}
}
