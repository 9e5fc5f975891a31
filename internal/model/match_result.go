package model

// MatchResult is the outcome of ranking one catalog item against a query.
type MatchResult struct {
	Item    CatalogItem `json:"item"`
	Score   float64     `json:"score"`
	Matched bool        `json:"matched"`
}

// MatchResults is a ranked list of results in display order.
type MatchResults []MatchResult

// Matched returns only the matched results, preserving order.
func (r MatchResults) Matched() MatchResults {
	result := make(MatchResults, 0, len(r))
	for _, m := range r {
		if m.Matched {
			result = append(result, m)
		}
	}
	return result
}

// MatchedCount returns the number of matched results.
func (r MatchResults) MatchedCount() int {
	n := 0
	for _, m := range r {
		if m.Matched {
			n++
		}
	}
	return n
}

// Top returns the first matched result, or nil if nothing matched.
func (r MatchResults) Top() *MatchResult {
	for i := range r {
		if r[i].Matched {
			return &r[i]
		}
	}
	return nil
}

// Limit returns at most n results. Zero or negative n means no limit.
func (r MatchResults) Limit(n int) MatchResults {
	if n <= 0 || n >= len(r) {
		return r
	}
	return r[:n]
}

// IDs returns the item ids in order.
func (r MatchResults) IDs() []int {
	ids := make([]int, len(r))
	for i, m := range r {
		ids[i] = m.Item.ID
	}
	return ids
}
