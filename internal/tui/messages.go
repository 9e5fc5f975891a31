package tui

import "github.com/Veraticus/cardfinder/internal/model"

// debounceMsg fires when the keystroke quiet period for seq has elapsed.
type debounceMsg struct {
	seq int
}

// rankedMsg carries the results of ranking one query. Only the result whose
// seq equals the model's current seq is displayed.
type rankedMsg struct {
	query   string
	results model.MatchResults
	seq     int
}
