package voting

import "encoding/json"

// Draft tracks a voter's unsaved vote edits against the last
// server-confirmed vote set. It implements the client side of the vote
// submission protocol: edits are validated against the budget locally with
// the same semantics the server applies, so a draft that passes here is
// only rejected server-side when the party changed underneath it.
//
// Lifecycle: create from the confirmed set on load, optionally Restore a
// previously persisted snapshot, mutate with Set, send VoteSet() to the
// server, then Confirm on success or Reset to discard edits.
type Draft struct {
	confirmed VoteSet
	draft     VoteSet
	budget    Budget
}

// NewDraft starts a clean draft mirroring the server-confirmed set.
func NewDraft(confirmed VoteSet, budget Budget) *Draft {
	confirmed = confirmed.Normalize()
	return &Draft{
		confirmed: confirmed,
		draft:     confirmed.Clone(),
		budget:    budget,
	}
}

// SetBudget swaps the budget, e.g. after the submission count changed.
// Existing draft entries are kept even if they no longer fit; the next Set
// or the server submission will reject them.
func (d *Draft) SetBudget(budget Budget) {
	d.budget = budget
}

// Set replaces the draft allocation for one submission. The resulting set is
// checked against the budget and the edit is refused without side effects
// when it would not fit.
func (d *Draft) Set(submissionID uint, counts Counts) error {
	next := d.draft.Clone()
	next[submissionID] = counts.clamped()
	if err := CheckBudget(next, d.budget); err != nil {
		return err
	}
	d.draft = next.Normalize()
	return nil
}

// Get returns the draft allocation for one submission.
func (d *Draft) Get(submissionID uint) Counts {
	return d.draft[submissionID]
}

// VoteSet returns a copy of the current draft, the payload for submission.
func (d *Draft) VoteSet() VoteSet {
	return d.draft.Clone()
}

// Remaining reports how much of the budget the draft has left.
func (d *Draft) Remaining() (up, down int) {
	usedUp, usedDown := d.draft.Totals()
	return d.budget.MaxUp - usedUp, d.budget.MaxDown - usedDown
}

// Dirty reports whether the draft differs from the confirmed set.
func (d *Draft) Dirty() bool {
	return !d.draft.Equal(d.confirmed)
}

// Confirm records that the server accepted the draft: the draft becomes the
// confirmed set and the tracker is clean again.
func (d *Draft) Confirm() {
	d.confirmed = d.draft.Clone()
}

// Reset discards unsaved edits, restoring the confirmed set.
func (d *Draft) Reset() {
	d.draft = d.confirmed.Clone()
}

// Snapshot serializes the draft for local persistence across reloads.
// A clean draft snapshots to nil: once the server confirmed the set there is
// nothing worth retaining independently.
func (d *Draft) Snapshot() ([]byte, error) {
	if !d.Dirty() {
		return nil, nil
	}
	return json.Marshal(d.draft)
}

// Restore loads a persisted snapshot over the confirmed set. An empty
// snapshot is a no-op, keeping the tracker clean.
func (d *Draft) Restore(snapshot []byte) error {
	if len(snapshot) == 0 {
		return nil
	}
	var restored VoteSet
	if err := json.Unmarshal(snapshot, &restored); err != nil {
		return err
	}
	d.draft = restored.Normalize()
	return nil
}
