// Package voting holds the pure vote accounting core shared by the server
// and by Go clients: budget computation, vote set arithmetic, tally folding
// and the client-side draft tracker. Nothing in this package touches storage.
package voting

// Mode is a party's voting mode.
type Mode string

const (
	ModeUpOnly Mode = "upvote"
	ModeUpDown Mode = "upvote-downvote"
)

// Budget is the maximum number of upvotes and downvotes a single voter may
// spread across all submissions of a party. It is derived from the live
// submission count and never persisted.
type Budget struct {
	MaxUp   int `json:"maxUpvotes"`
	MaxDown int `json:"maxDownvotes"`
}

// ComputeBudget derives the voter budget for a party with the given number of
// live submissions. Upvotes scale as ceil(n/2); downvotes as ceil(n/3) and
// only when the mode allows them. A party without submissions yields a zero
// budget, so any non-empty vote set is rejected downstream.
func ComputeBudget(liveSubmissions int, mode Mode) Budget {
	if liveSubmissions <= 0 {
		return Budget{}
	}
	budget := Budget{MaxUp: (liveSubmissions + 1) / 2}
	if mode == ModeUpDown {
		budget.MaxDown = (liveSubmissions + 2) / 3
	}
	return budget
}
