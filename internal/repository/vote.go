package repository

import (
	"fmt"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"gorm.io/gorm"
)

type VoteRepository interface {
	FindByVoter(partyID uint, voter dto.Voter) ([]model.Vote, error)
	FindByParty(partyID uint) ([]model.Vote, error)
	ReplaceForVoter(partyID uint, voter dto.Voter, votes []model.Vote) error
}

type vote struct {
	db *gorm.DB
}

func newVoteRepository(db *gorm.DB) VoteRepository {
	return &vote{
		db: db,
	}
}

func (v *vote) FindByVoter(partyID uint, voter dto.Voter) ([]model.Vote, error) {
	var votes []model.Vote
	result := v.db.
		Where("party_id = ? AND voter_id = ? AND voter_kind = ?", partyID, voter.ID, voter.Kind).
		Find(&votes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return votes, nil
}

func (v *vote) FindByParty(partyID uint) ([]model.Vote, error) {
	var votes []model.Vote
	result := v.db.Where("party_id = ?", partyID).Find(&votes)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return votes, nil
}

// ReplaceForVoter atomically swaps a voter's full vote set for one party:
// delete every existing row for the voter, then insert the new rows, inside
// a single transaction. Rows of other voters are never touched, so
// concurrent replacements for different voters commute.
func (v *vote) ReplaceForVoter(partyID uint, voter dto.Voter, votes []model.Vote) error {
	err := v.db.Transaction(func(tx *gorm.DB) error {
		result := tx.
			Where("party_id = ? AND voter_id = ? AND voter_kind = ?", partyID, voter.ID, voter.Kind).
			Delete(&model.Vote{})
		if result.Error != nil {
			return result.Error
		}

		if len(votes) == 0 {
			return nil
		}
		return tx.Create(&votes).Error
	})
	if err != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, err)
	}

	return nil
}
