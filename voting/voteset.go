package voting

// Counts is one voter's allocation for a single submission.
type Counts struct {
	Up   int `json:"upvote"`
	Down int `json:"downvote"`
}

func (c Counts) clamped() Counts {
	if c.Up < 0 {
		c.Up = 0
	}
	if c.Down < 0 {
		c.Down = 0
	}
	return c
}

func (c Counts) zero() bool {
	return c.Up <= 0 && c.Down <= 0
}

// VoteSet is the complete mapping of a voter's allocations for one party,
// keyed by submission ID. An entry whose counts are both zero is equivalent
// to an absent entry. A VoteSet always replaces the voter's previous
// allocation wholesale; it is never patched incrementally.
type VoteSet map[uint]Counts

// Normalize returns a copy with negative counts clamped to zero and
// all-zero entries removed. Malformed counts are treated as zero rather
// than rejected.
func (s VoteSet) Normalize() VoteSet {
	normalized := make(VoteSet, len(s))
	for submissionID, counts := range s {
		counts = counts.clamped()
		if counts.zero() {
			continue
		}
		normalized[submissionID] = counts
	}
	return normalized
}

// Totals sums the set's upvotes and downvotes, clamping negatives to zero.
func (s VoteSet) Totals() (up, down int) {
	for _, counts := range s {
		counts = counts.clamped()
		up += counts.Up
		down += counts.Down
	}
	return up, down
}

// Clone returns an independent copy of the set.
func (s VoteSet) Clone() VoteSet {
	clone := make(VoteSet, len(s))
	for submissionID, counts := range s {
		clone[submissionID] = counts
	}
	return clone
}

// Equal reports whether two sets describe the same allocation, treating
// zero entries as absent.
func (s VoteSet) Equal(other VoteSet) bool {
	a, b := s.Normalize(), other.Normalize()
	if len(a) != len(b) {
		return false
	}
	for submissionID, counts := range a {
		if b[submissionID] != counts {
			return false
		}
	}
	return true
}

// CheckBudget validates the set's totals against a budget. It returns a
// *BudgetExceededError identifying the violated bound, or nil when the set
// fits. Validation is identical on client and server so a draft rejected
// locally would have been rejected by the server too.
func CheckBudget(s VoteSet, budget Budget) error {
	up, down := s.Totals()
	if up > budget.MaxUp {
		return &BudgetExceededError{Kind: BudgetUp, Limit: budget.MaxUp}
	}
	if down > budget.MaxDown {
		return &BudgetExceededError{Kind: BudgetDown, Limit: budget.MaxDown}
	}
	return nil
}
