package voting

// VoteType distinguishes the two ledger row flavors.
type VoteType string

const (
	VoteUp   VoteType = "upvote"
	VoteDown VoteType = "downvote"
)

// LedgerRow is the projection of one stored vote row that tally folding
// needs: which submission, which direction, how many.
type LedgerRow struct {
	SubmissionID uint
	Type         VoteType
	Count        int
}

// Tally is the aggregate vote count of one submission.
type Tally struct {
	Upvotes   int `json:"upvotes"`
	Downvotes int `json:"downvotes"`
}

// FoldTallies aggregates the full ledger of a party into per-submission
// tallies. Every live submission gets an entry, zero-valued when nobody
// voted for it, so stale counters are reset rather than left behind. Rows
// referencing submissions outside the live set (deleted since the vote was
// cast) are dropped. The fold is a pure aggregation over a snapshot: its
// result does not depend on row order and running it twice on the same
// ledger yields the same tallies.
func FoldTallies(rows []LedgerRow, liveSubmissionIDs []uint) map[uint]Tally {
	tallies := make(map[uint]Tally, len(liveSubmissionIDs))
	for _, id := range liveSubmissionIDs {
		tallies[id] = Tally{}
	}
	for _, row := range rows {
		tally, live := tallies[row.SubmissionID]
		if !live {
			continue
		}
		count := row.Count
		if count < 0 {
			count = 0
		}
		switch row.Type {
		case VoteUp:
			tally.Upvotes += count
		case VoteDown:
			tally.Downvotes += count
		}
		tallies[row.SubmissionID] = tally
	}
	return tallies
}
