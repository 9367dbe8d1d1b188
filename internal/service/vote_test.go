package service

import (
	"testing"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/repository"
	"github.com/mixparty/backend/voting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVoteService(repos repository.Repositories) VoteService {
	return newVoteService(repos.Party(), repos.Submission(), repos.Vote())
}

func submissionTally(t *testing.T, repos repository.Repositories, submissionID uint) (int, int) {
	t.Helper()
	submission, err := repos.Submission().GetByID(submissionID)
	require.NoError(t, err)
	return submission.Upvotes, submission.Downvotes
}

func TestSubmitVotesScenarioUpOnly(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos) // up-only
	subs := addTestSubmissions(t, repos, party.ID, 4)
	voter := accountVoter("alice")

	budget, err := svc.Budget(party.ID)
	require.NoError(t, err)
	assert.Equal(t, voting.Budget{MaxUp: 2, MaxDown: 0}, budget)

	// First submission: both upvotes on S1.
	result, err := svc.SubmitVotes(party.ID, voter, voting.VoteSet{subs[0]: {Up: 2}})
	require.NoError(t, err)
	assert.Equal(t, 1, result.VotesSubmitted)
	assert.Equal(t, 2, result.TotalUpvotes)
	assert.Equal(t, 2, result.MaxUpvotes)

	up, down := submissionTally(t, repos, subs[0])
	assert.Equal(t, 2, up)
	assert.Equal(t, 0, down)

	// Resubmission replaces the whole set, it does not add to it.
	_, err = svc.SubmitVotes(party.ID, voter, voting.VoteSet{
		subs[0]: {Up: 1},
		subs[1]: {Up: 1},
	})
	require.NoError(t, err)

	up, _ = submissionTally(t, repos, subs[0])
	assert.Equal(t, 1, up)
	up, _ = submissionTally(t, repos, subs[1])
	assert.Equal(t, 1, up)

	// Over-budget set is rejected wholesale and the prior state survives.
	_, err = svc.SubmitVotes(party.ID, voter, voting.VoteSet{subs[0]: {Up: 3}})
	var budgetErr *voting.BudgetExceededError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, voting.BudgetUp, budgetErr.Kind)
	assert.Equal(t, 2, budgetErr.Limit)

	up, _ = submissionTally(t, repos, subs[0])
	assert.Equal(t, 1, up)
	up, _ = submissionTally(t, repos, subs[1])
	assert.Equal(t, 1, up)

	confirmed, err := svc.GetVotes(party.ID, voter)
	require.NoError(t, err)
	assert.True(t, confirmed.Equal(voting.VoteSet{subs[0]: {Up: 1}, subs[1]: {Up: 1}}))
}

func TestSubmitVotesDownvoteBudget(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos, withVotingMode(voting.ModeUpDown))
	subs := addTestSubmissions(t, repos, party.ID, 5) // maxUp=3, maxDown=2
	voter := accountVoter("bob")

	_, err := svc.SubmitVotes(party.ID, voter, voting.VoteSet{
		subs[0]: {Up: 2, Down: 1},
		subs[1]: {Down: 1},
	})
	require.NoError(t, err)

	_, err = svc.SubmitVotes(party.ID, voter, voting.VoteSet{
		subs[0]: {Down: 2},
		subs[1]: {Down: 1},
	})
	var budgetErr *voting.BudgetExceededError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, voting.BudgetDown, budgetErr.Kind)
	assert.Equal(t, 2, budgetErr.Limit)
}

func TestSubmitVotesDownvotesRejectedInUpOnlyMode(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos)
	subs := addTestSubmissions(t, repos, party.ID, 4)

	_, err := svc.SubmitVotes(party.ID, accountVoter("carol"), voting.VoteSet{subs[0]: {Down: 1}})
	var budgetErr *voting.BudgetExceededError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, voting.BudgetDown, budgetErr.Kind)
	assert.Equal(t, 0, budgetErr.Limit)
}

func TestSubmitVotesMalformedCountsClampedToZero(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos)
	subs := addTestSubmissions(t, repos, party.ID, 4)
	voter := accountVoter("dave")

	result, err := svc.SubmitVotes(party.ID, voter, voting.VoteSet{
		subs[0]: {Up: 1, Down: -7},
		subs[1]: {Up: -3},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.VotesSubmitted)
	assert.Equal(t, 1, result.TotalUpvotes)
	assert.Equal(t, 0, result.TotalDownvotes)
}

func TestSubmitVotesWithNoSubmissions(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos)

	// Zero budget: any actual vote is over budget.
	_, err := svc.SubmitVotes(party.ID, accountVoter("erin"), voting.VoteSet{99: {Up: 1}})
	var budgetErr *voting.BudgetExceededError
	require.ErrorAs(t, err, &budgetErr)
	assert.Equal(t, 0, budgetErr.Limit)
}

func TestSubmitVotesVotingDisabled(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos, withVotingDisabled())
	subs := addTestSubmissions(t, repos, party.ID, 2)

	_, err := svc.SubmitVotes(party.ID, accountVoter("frank"), voting.VoteSet{subs[0]: {Up: 1}})
	assert.ErrorIs(t, err, dto.ErrVotingDisabled)
}

func TestSubmitVotesPartyNotFound(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	_, err := svc.SubmitVotes(4242, accountVoter("grace"), voting.VoteSet{})
	assert.ErrorIs(t, err, dto.ErrNotFound)
}

func TestVoteConservationAcrossVoters(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos, withVotingMode(voting.ModeUpDown))
	subs := addTestSubmissions(t, repos, party.ID, 6) // maxUp=3, maxDown=2

	_, err := svc.SubmitVotes(party.ID, accountVoter("alice"), voting.VoteSet{
		subs[0]: {Up: 2},
		subs[1]: {Up: 1, Down: 1},
	})
	require.NoError(t, err)

	_, err = svc.SubmitVotes(party.ID, accountVoter("bob"), voting.VoteSet{
		subs[0]: {Up: 1, Down: 2},
		subs[2]: {Up: 2},
	})
	require.NoError(t, err)

	_, err = svc.SubmitVotes(party.ID, dto.Voter{ID: "guest-1", Kind: dto.VoterGuest}, voting.VoteSet{
		subs[1]: {Up: 3},
	})
	require.NoError(t, err)

	totalUp, totalDown := 0, 0
	for _, id := range subs {
		up, down := submissionTally(t, repos, id)
		totalUp += up
		totalDown += down
	}
	// 3 + 3 + 3 accepted upvotes, 1 + 2 accepted downvotes.
	assert.Equal(t, 9, totalUp)
	assert.Equal(t, 3, totalDown)
}

func TestEmptySetRemovesOnlyOwnContribution(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos)
	subs := addTestSubmissions(t, repos, party.ID, 4)

	_, err := svc.SubmitVotes(party.ID, accountVoter("alice"), voting.VoteSet{subs[0]: {Up: 2}})
	require.NoError(t, err)
	_, err = svc.SubmitVotes(party.ID, accountVoter("bob"), voting.VoteSet{subs[0]: {Up: 1}})
	require.NoError(t, err)

	up, _ := submissionTally(t, repos, subs[0])
	require.Equal(t, 3, up)

	// Alice withdraws everything; Bob's vote stays.
	_, err = svc.SubmitVotes(party.ID, accountVoter("alice"), voting.VoteSet{})
	require.NoError(t, err)

	up, _ = submissionTally(t, repos, subs[0])
	assert.Equal(t, 1, up)

	confirmed, err := svc.GetVotes(party.ID, accountVoter("alice"))
	require.NoError(t, err)
	assert.Empty(t, confirmed)
}

func TestSameVoterIDDifferentKindsAreSeparate(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos)
	subs := addTestSubmissions(t, repos, party.ID, 4)

	account := dto.Voter{ID: "shared-id", Kind: dto.VoterAccount}
	guest := dto.Voter{ID: "shared-id", Kind: dto.VoterGuest}

	_, err := svc.SubmitVotes(party.ID, account, voting.VoteSet{subs[0]: {Up: 2}})
	require.NoError(t, err)
	_, err = svc.SubmitVotes(party.ID, guest, voting.VoteSet{subs[1]: {Up: 1}})
	require.NoError(t, err)

	up, _ := submissionTally(t, repos, subs[0])
	assert.Equal(t, 2, up)
	up, _ = submissionTally(t, repos, subs[1])
	assert.Equal(t, 1, up)
}

func TestRecomputeTalliesIdempotent(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos, withVotingMode(voting.ModeUpDown))
	subs := addTestSubmissions(t, repos, party.ID, 4)

	_, err := svc.SubmitVotes(party.ID, accountVoter("alice"), voting.VoteSet{
		subs[0]: {Up: 1, Down: 1},
		subs[1]: {Up: 1},
	})
	require.NoError(t, err)

	first, err := svc.RecomputeTallies(party.ID)
	require.NoError(t, err)
	second, err := svc.RecomputeTallies(party.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	for _, id := range subs {
		up, down := submissionTally(t, repos, id)
		assert.Equal(t, first[id].Upvotes, up)
		assert.Equal(t, first[id].Downvotes, down)
	}
}

func TestRecomputeResetsStaleTallies(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos)
	subs := addTestSubmissions(t, repos, party.ID, 3)

	// A counter written out of band must be overwritten by the rebuild,
	// not left standing.
	require.NoError(t, repos.Submission().WriteTally(subs[2], 17, 4))

	tallies, err := svc.RecomputeTallies(party.ID)
	require.NoError(t, err)
	assert.Equal(t, voting.Tally{}, tallies[subs[2]])

	up, down := submissionTally(t, repos, subs[2])
	assert.Equal(t, 0, up)
	assert.Equal(t, 0, down)
}

func TestGetVotesReturnsConfirmedSet(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newTestVoteService(repos)

	party := createTestParty(t, repos, withVotingMode(voting.ModeUpDown))
	subs := addTestSubmissions(t, repos, party.ID, 5)
	voter := accountVoter("alice")

	submitted := voting.VoteSet{
		subs[0]: {Up: 2, Down: 1},
		subs[3]: {Up: 1},
	}
	_, err := svc.SubmitVotes(party.ID, voter, submitted)
	require.NoError(t, err)

	confirmed, err := svc.GetVotes(party.ID, voter)
	require.NoError(t, err)
	assert.True(t, confirmed.Equal(submitted))
}
