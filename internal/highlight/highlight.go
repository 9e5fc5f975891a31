// Package highlight splits display text into plain and highlighted segments
// around every occurrence of a query.
package highlight

import (
	"regexp"
	"strings"
)

// Kind tags a segment.
type Kind int

const (
	// Plain text outside any match.
	Plain Kind = iota
	// Highlighted text is an occurrence of the query.
	Highlighted
)

// Segment is a contiguous run of text. Concatenating every segment returned by
// Split reproduces the original text exactly.
type Segment struct {
	Text string
	Kind Kind
}

// IsHighlighted reports whether the segment is a query occurrence.
func (s Segment) IsHighlighted() bool {
	return s.Kind == Highlighted
}

// Split finds every case-insensitive occurrence of the trimmed query in text.
// The query is searched literally; regex metacharacters carry no meaning.
func Split(text, query string) []Segment {
	if text == "" {
		return nil
	}

	q := strings.TrimSpace(query)
	if q == "" {
		return []Segment{{Text: text, Kind: Plain}}
	}

	// QuoteMeta output always compiles.
	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))

	matches := re.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return []Segment{{Text: text, Kind: Plain}}
	}

	segments := make([]Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m[0] > last {
			segments = append(segments, Segment{Text: text[last:m[0]], Kind: Plain})
		}
		segments = append(segments, Segment{Text: text[m[0]:m[1]], Kind: Highlighted})
		last = m[1]
	}
	if last < len(text) {
		segments = append(segments, Segment{Text: text[last:], Kind: Plain})
	}

	return segments
}

// Join reassembles segments, passing highlighted runs through mark.
func Join(segments []Segment, mark func(string) string) string {
	var b strings.Builder
	for _, s := range segments {
		if s.IsHighlighted() && mark != nil {
			b.WriteString(mark(s.Text))
			continue
		}
		b.WriteString(s.Text)
	}
	return b.String()
}

// Apply splits text around query and marks every occurrence.
func Apply(text, query string, mark func(string) string) string {
	return Join(Split(text, query), mark)
}
