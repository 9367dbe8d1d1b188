package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftStartsClean(t *testing.T) {
	confirmed := VoteSet{1: {Up: 1}}
	draft := NewDraft(confirmed, Budget{MaxUp: 2})

	assert.False(t, draft.Dirty())
	assert.Equal(t, confirmed, draft.VoteSet())
}

func TestDraftEditMakesDirty(t *testing.T) {
	draft := NewDraft(VoteSet{}, Budget{MaxUp: 2})

	require.NoError(t, draft.Set(1, Counts{Up: 1}))
	assert.True(t, draft.Dirty())
	assert.Equal(t, Counts{Up: 1}, draft.Get(1))

	// Undoing the edit by hand returns to clean.
	require.NoError(t, draft.Set(1, Counts{}))
	assert.False(t, draft.Dirty())
}

func TestDraftRejectsOverBudgetEdit(t *testing.T) {
	draft := NewDraft(VoteSet{}, Budget{MaxUp: 2})
	require.NoError(t, draft.Set(1, Counts{Up: 2}))

	err := draft.Set(2, Counts{Up: 1})
	var budgetErr *BudgetExceededError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, BudgetUp, budgetErr.Kind)
	assert.Equal(t, 2, budgetErr.Limit)

	// The rejected edit left the draft untouched.
	assert.Equal(t, Counts{}, draft.Get(2))
	assert.Equal(t, Counts{Up: 2}, draft.Get(1))
}

func TestDraftConfirmAndReset(t *testing.T) {
	draft := NewDraft(VoteSet{1: {Up: 1}}, Budget{MaxUp: 3})

	require.NoError(t, draft.Set(2, Counts{Up: 1}))
	require.True(t, draft.Dirty())

	draft.Confirm()
	assert.False(t, draft.Dirty())

	require.NoError(t, draft.Set(2, Counts{Up: 2}))
	require.True(t, draft.Dirty())

	draft.Reset()
	assert.False(t, draft.Dirty())
	assert.Equal(t, Counts{Up: 1}, draft.Get(2))
}

func TestDraftRemaining(t *testing.T) {
	draft := NewDraft(VoteSet{}, Budget{MaxUp: 3, MaxDown: 2})
	require.NoError(t, draft.Set(1, Counts{Up: 2, Down: 1}))

	up, down := draft.Remaining()
	assert.Equal(t, 1, up)
	assert.Equal(t, 1, down)
}

func TestDraftSnapshotRoundTrip(t *testing.T) {
	draft := NewDraft(VoteSet{1: {Up: 1}}, Budget{MaxUp: 3})
	require.NoError(t, draft.Set(2, Counts{Up: 1}))

	snapshot, err := draft.Snapshot()
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	// Simulate a reload: fresh draft from the confirmed set, then restore.
	restored := NewDraft(VoteSet{1: {Up: 1}}, Budget{MaxUp: 3})
	require.NoError(t, restored.Restore(snapshot))

	assert.True(t, restored.Dirty())
	assert.Equal(t, draft.VoteSet(), restored.VoteSet())
}

func TestDraftSnapshotNilWhenClean(t *testing.T) {
	draft := NewDraft(VoteSet{1: {Up: 1}}, Budget{MaxUp: 3})

	snapshot, err := draft.Snapshot()
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	// Submitting clears the retained draft: after Confirm the snapshot is
	// nil again even though edits happened in between.
	require.NoError(t, draft.Set(2, Counts{Up: 1}))
	draft.Confirm()
	snapshot, err = draft.Snapshot()
	require.NoError(t, err)
	assert.Nil(t, snapshot)
}

func TestDraftRestoreEmptyIsNoop(t *testing.T) {
	draft := NewDraft(VoteSet{1: {Up: 1}}, Budget{MaxUp: 3})
	require.NoError(t, draft.Restore(nil))
	assert.False(t, draft.Dirty())
}
