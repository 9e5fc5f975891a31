package fuzzy

import "strings"

// wordMatches counts how query words relate to candidate words. Each pair of
// words lands in at most one bucket, checked in field order.
type wordMatches struct {
	exact    int
	prefix   int
	contains int
	partial  int
}

func (w wordMatches) any() bool {
	return w.exact > 0 || w.prefix > 0 || w.contains > 0 || w.partial > 0
}

func countWordMatches(c, q string) wordMatches {
	var w wordMatches
	candidateWords := strings.Fields(c)

	for _, qw := range strings.Fields(q) {
		stem := partialStem(qw)
		for _, cw := range candidateWords {
			switch {
			case cw == qw:
				w.exact++
			case strings.HasPrefix(cw, qw):
				w.prefix++
			case strings.Contains(cw, qw):
				w.contains++
			case stem != "" && strings.Contains(cw, stem):
				w.partial++
			}
		}
	}

	return w
}

// partialStem returns the leading max(2, n-1) runes of words longer than two
// runes, or "" for shorter words.
func partialStem(word string) string {
	r := []rune(word)
	if len(r) <= 2 {
		return ""
	}
	return string(r[:max(2, len(r)-1)])
}
