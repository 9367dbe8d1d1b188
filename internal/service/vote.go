package service

import (
	"fmt"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/mixparty/backend/voting"
	"github.com/sirupsen/logrus"
)

type VoteService interface {
	Budget(partyID uint) (voting.Budget, error)
	GetVotes(partyID uint, voter dto.Voter) (voting.VoteSet, error)
	SubmitVotes(partyID uint, voter dto.Voter, votes voting.VoteSet) (dto.SubmitVotesResponse, error)
	RecomputeTallies(partyID uint) (map[uint]voting.Tally, error)
}

type voteService struct {
	partyRepository      repository.PartyRepository
	submissionRepository repository.SubmissionRepository
	voteRepository       repository.VoteRepository
}

func newVoteService(
	partyRepository repository.PartyRepository,
	submissionRepository repository.SubmissionRepository,
	voteRepository repository.VoteRepository,
) VoteService {
	return &voteService{
		partyRepository:      partyRepository,
		submissionRepository: submissionRepository,
		voteRepository:       voteRepository,
	}
}

// Budget derives the per-voter vote budget from the party's current live
// submission count and voting mode.
func (v *voteService) Budget(partyID uint) (voting.Budget, error) {
	party, err := v.partyRepository.GetByID(partyID)
	if err != nil {
		return voting.Budget{}, err
	}

	liveCount, err := v.submissionRepository.CountLive(partyID)
	if err != nil {
		return voting.Budget{}, err
	}

	return voting.ComputeBudget(liveCount, party.Settings.VotingMode), nil
}

// GetVotes returns the voter's server-confirmed vote set for the party.
func (v *voteService) GetVotes(partyID uint, voter dto.Voter) (voting.VoteSet, error) {
	votes, err := v.voteRepository.FindByVoter(partyID, voter)
	if err != nil {
		return nil, err
	}

	set := make(voting.VoteSet, len(votes))
	for _, vote := range votes {
		counts := set[vote.SubmissionID]
		switch vote.VoteType {
		case voting.VoteUp:
			counts.Up = vote.Count
		case voting.VoteDown:
			counts.Down = vote.Count
		}
		set[vote.SubmissionID] = counts
	}
	return set, nil
}

// SubmitVotes validates the incoming vote set against the voter's budget and,
// when it fits, replaces the voter's full ledger for the party and rebuilds
// every submission tally before returning. Nothing is applied on rejection:
// the voter's previously confirmed votes stay untouched.
func (v *voteService) SubmitVotes(partyID uint, voter dto.Voter, votes voting.VoteSet) (dto.SubmitVotesResponse, error) {
	party, err := v.partyRepository.GetByID(partyID)
	if err != nil {
		return dto.SubmitVotesResponse{}, err
	}

	if !party.Settings.VotingEnabled {
		return dto.SubmitVotesResponse{}, fmt.Errorf("%w", dto.ErrVotingDisabled)
	}

	liveCount, err := v.submissionRepository.CountLive(partyID)
	if err != nil {
		return dto.SubmitVotesResponse{}, err
	}
	budget := voting.ComputeBudget(liveCount, party.Settings.VotingMode)

	normalized := votes.Normalize()
	if err := voting.CheckBudget(normalized, budget); err != nil {
		return dto.SubmitVotesResponse{}, err
	}

	rows := make([]model.Vote, 0, 2*len(normalized))
	for submissionID, counts := range normalized {
		if counts.Up > 0 {
			rows = append(rows, model.Vote{
				PartyID:      partyID,
				SubmissionID: submissionID,
				VoterID:      voter.ID,
				VoterKind:    voter.Kind,
				VoteType:     voting.VoteUp,
				Count:        counts.Up,
			})
		}
		if counts.Down > 0 {
			rows = append(rows, model.Vote{
				PartyID:      partyID,
				SubmissionID: submissionID,
				VoterID:      voter.ID,
				VoterKind:    voter.Kind,
				VoteType:     voting.VoteDown,
				Count:        counts.Down,
			})
		}
	}

	if err := v.voteRepository.ReplaceForVoter(partyID, voter, rows); err != nil {
		return dto.SubmitVotesResponse{}, err
	}

	logrus.Infof("Voter %s/%s replaced %d vote rows in party %d", voter.Kind, voter.ID, len(rows), partyID)

	// Recomputation is idempotent, so a transient storage failure is
	// retried once in full rather than per row.
	if _, err := v.RecomputeTallies(partyID); err != nil {
		logrus.Errorf("Tally recomputation failed for party %d, retrying: %v", partyID, err)
		if _, err = v.RecomputeTallies(partyID); err != nil {
			return dto.SubmitVotesResponse{}, err
		}
	}

	totalUp, totalDown := normalized.Totals()
	return dto.SubmitVotesResponse{
		VotesSubmitted: len(rows),
		TotalUpvotes:   totalUp,
		TotalDownvotes: totalDown,
		MaxUpvotes:     budget.MaxUp,
		MaxDownvotes:   budget.MaxDown,
	}, nil
}

// RecomputeTallies rebuilds the derived vote counters of every live
// submission in the party from the full vote ledger. Submissions nobody
// voted for are reset to zero rather than left stale. The rebuild is a pure
// fold over a ledger snapshot: running it twice on an unchanged ledger
// writes identical tallies.
func (v *voteService) RecomputeTallies(partyID uint) (map[uint]voting.Tally, error) {
	votes, err := v.voteRepository.FindByParty(partyID)
	if err != nil {
		return nil, err
	}

	liveIDs, err := v.submissionRepository.ListLiveIDs(partyID)
	if err != nil {
		return nil, err
	}

	rows := make([]voting.LedgerRow, 0, len(votes))
	for _, vote := range votes {
		rows = append(rows, voting.LedgerRow{
			SubmissionID: vote.SubmissionID,
			Type:         vote.VoteType,
			Count:        vote.Count,
		})
	}

	tallies := voting.FoldTallies(rows, liveIDs)
	for submissionID, tally := range tallies {
		if err := v.submissionRepository.WriteTally(submissionID, tally.Upvotes, tally.Downvotes); err != nil {
			return nil, err
		}
	}

	return tallies, nil
}
