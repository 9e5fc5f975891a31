// Package fuzzy scores how well a query matches a single candidate string.
//
// Scoring is tiered. The first tier that applies returns immediately, even if
// a later tier would have produced a higher number:
//
//	exact        100
//	prefix        95
//	suffix        90
//	substring     85
//	word exact    92
//	word prefix   88
//	word contains 82
//	subsequence  composite score, see scoreSubsequence
//	word overlap word-level counts only, see scoreWords
//
// All comparisons are case-insensitive on whitespace-trimmed input. Lengths and
// positions are counted in runes.
package fuzzy

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tier scores.
const (
	ScoreExact        = 100.0
	ScorePrefix       = 95.0
	ScoreSuffix       = 90.0
	ScoreContains     = 85.0
	ScoreWordExact    = 92.0
	ScoreWordPrefix   = 88.0
	ScoreWordContains = 82.0

	// MaxScore bounds the score of any single comparison.
	MaxScore = 100.0
)

// Result is the outcome of one candidate/query comparison.
type Result struct {
	Score   float64
	Matched bool
}

var noMatch = Result{}

// Match compares candidate against query. An empty query matches nothing.
// Match is safe for concurrent use.
func Match(candidate, query string) Result {
	// Casers carry state and cannot be shared between goroutines.
	lower := cases.Lower(language.Und)

	q := normalize(lower, query)
	if q == "" {
		return noMatch
	}
	c := normalize(lower, candidate)

	switch {
	case c == q:
		return Result{Score: ScoreExact, Matched: true}
	case strings.HasPrefix(c, q):
		return Result{Score: ScorePrefix, Matched: true}
	case strings.HasSuffix(c, q):
		return Result{Score: ScoreSuffix, Matched: true}
	case strings.Contains(c, q):
		return Result{Score: ScoreContains, Matched: true}
	}

	if score, ok := matchWordBoundary(c, q); ok {
		return Result{Score: score, Matched: true}
	}

	return matchFuzzy(c, q)
}

func normalize(lower cases.Caser, s string) string {
	return strings.TrimSpace(lower.String(s))
}

// matchWordBoundary checks each whitespace-delimited word of c in order.
func matchWordBoundary(c, q string) (float64, bool) {
	for _, word := range strings.Fields(c) {
		switch {
		case word == q:
			return ScoreWordExact, true
		case strings.HasPrefix(word, q):
			return ScoreWordPrefix, true
		case strings.Contains(word, q):
			return ScoreWordContains, true
		}
	}
	return 0, false
}

func matchFuzzy(c, q string) Result {
	cr := []rune(c)
	qr := []rune(q)

	seq := greedySubsequence(cr, qr)
	words := countWordMatches(c, q)

	if seq.matched == len(qr) {
		return Result{Score: scoreSubsequence(cr, qr, seq, words), Matched: true}
	}

	if words.any() {
		return Result{Score: scoreWords(words), Matched: true}
	}

	return noMatch
}

// subsequence holds the statistics of a single greedy left-to-right pass.
type subsequence struct {
	matched        int
	total          int
	maxConsecutive int
}

func greedySubsequence(c, q []rune) subsequence {
	var s subsequence
	consecutive := 0

	for i := 0; i < len(c) && s.matched < len(q); i++ {
		if c[i] != q[s.matched] {
			consecutive = 0
			continue
		}
		s.matched++
		s.total++
		consecutive++
		if consecutive > s.maxConsecutive {
			s.maxConsecutive = consecutive
		}
	}

	return s
}

// scoreSubsequence weighs completeness, consecutiveness, density, word overlap
// and the position of the first query rune.
func scoreSubsequence(c, q []rune, seq subsequence, words wordMatches) float64 {
	qLen := float64(len(q))
	cLen := float64(len(c))

	completeness := float64(seq.matched) / qLen * 35
	consecutiveness := float64(seq.maxConsecutive) / qLen * 25
	density := float64(seq.total) / cLen * 15
	wordScore := float64(words.exact*8 + words.prefix*6 + words.contains*4 + words.partial*2)
	position := float64(indexRune(c, q[0])+1) / cLen * 5

	return min(completeness+consecutiveness+density+wordScore+position, MaxScore)
}

func scoreWords(words wordMatches) float64 {
	score := float64(words.exact*20 + words.prefix*15 + words.contains*10 + words.partial*5)
	return min(score, MaxScore)
}

func indexRune(s []rune, r rune) int {
	for i, c := range s {
		if c == r {
			return i
		}
	}
	return -1
}
