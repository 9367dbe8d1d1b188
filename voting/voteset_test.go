package voting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoteSetNormalize(t *testing.T) {
	set := VoteSet{
		1: {Up: 2, Down: 0},
		2: {Up: -4, Down: 1},
		3: {Up: 0, Down: 0},
		4: {Up: -1, Down: -2},
	}

	normalized := set.Normalize()

	assert.Equal(t, VoteSet{
		1: {Up: 2},
		2: {Down: 1},
	}, normalized)

	// The input is left alone.
	assert.Equal(t, Counts{Up: -4, Down: 1}, set[2])
}

func TestVoteSetTotalsClampsNegatives(t *testing.T) {
	set := VoteSet{
		1: {Up: 2, Down: -5},
		2: {Up: -1, Down: 3},
	}

	up, down := set.Totals()
	assert.Equal(t, 2, up)
	assert.Equal(t, 3, down)
}

func TestVoteSetEqualTreatsZeroAsAbsent(t *testing.T) {
	a := VoteSet{1: {Up: 1}, 2: {Up: 0, Down: 0}}
	b := VoteSet{1: {Up: 1}}

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	b[3] = Counts{Down: 1}
	assert.False(t, a.Equal(b))
}

func TestCheckBudget(t *testing.T) {
	budget := Budget{MaxUp: 2, MaxDown: 1}

	assert.NoError(t, CheckBudget(VoteSet{1: {Up: 1}, 2: {Up: 1, Down: 1}}, budget))
	assert.NoError(t, CheckBudget(VoteSet{}, budget))

	err := CheckBudget(VoteSet{1: {Up: 3}}, budget)
	var budgetErr *BudgetExceededError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, BudgetUp, budgetErr.Kind)
	assert.Equal(t, 2, budgetErr.Limit)
	assert.Equal(t, "you can only cast 2 upvotes total", budgetErr.Error())

	err = CheckBudget(VoteSet{1: {Down: 2}}, budget)
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, BudgetDown, budgetErr.Kind)
	assert.Equal(t, 1, budgetErr.Limit)
	assert.Equal(t, "you can only cast 1 downvote total", budgetErr.Error())
}

func TestFoldTallies(t *testing.T) {
	rows := []LedgerRow{
		{SubmissionID: 1, Type: VoteUp, Count: 2},
		{SubmissionID: 1, Type: VoteUp, Count: 1},
		{SubmissionID: 1, Type: VoteDown, Count: 1},
		{SubmissionID: 2, Type: VoteUp, Count: 1},
		{SubmissionID: 9, Type: VoteUp, Count: 5}, // deleted submission
	}

	tallies := FoldTallies(rows, []uint{1, 2, 3})

	assert.Equal(t, map[uint]Tally{
		1: {Upvotes: 3, Downvotes: 1},
		2: {Upvotes: 1},
		3: {},
	}, tallies)
}

func TestFoldTalliesOrderIndependent(t *testing.T) {
	rows := []LedgerRow{
		{SubmissionID: 1, Type: VoteUp, Count: 1},
		{SubmissionID: 2, Type: VoteDown, Count: 2},
		{SubmissionID: 1, Type: VoteUp, Count: 2},
	}
	reversed := []LedgerRow{rows[2], rows[1], rows[0]}

	assert.Equal(t,
		FoldTallies(rows, []uint{1, 2}),
		FoldTallies(reversed, []uint{1, 2}),
	)
}
