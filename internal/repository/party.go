package repository

import (
	"errors"
	"fmt"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"gorm.io/gorm"
)

type PartyRepository interface {
	Create(party model.Party) (model.Party, error)
	GetByID(id uint) (model.Party, error)
	GetByCode(code string) (model.Party, error)
	Update(party model.Party) (model.Party, error)
	ListForVoter(voter dto.Voter) ([]model.Party, error)
	IncrementSubmissions(partyID uint) error
	AddParticipant(participant model.Participant) error
	IsParticipant(partyID uint, voter dto.Voter) (bool, error)
}

type party struct {
	db *gorm.DB
}

func newPartyRepository(db *gorm.DB) PartyRepository {
	return &party{
		db: db,
	}
}

func (p *party) Create(party model.Party) (model.Party, error) {
	result := p.db.Create(&party)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return model.Party{}, fmt.Errorf("%w: party code %s", dto.ErrConflict, party.Code)
		}
		return model.Party{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return party, nil
}

func (p *party) GetByID(id uint) (model.Party, error) {
	var found model.Party
	result := p.db.First(&found, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Party{}, fmt.Errorf("%w: party %d", dto.ErrNotFound, id)
		}
		return model.Party{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (p *party) GetByCode(code string) (model.Party, error) {
	var found model.Party
	result := p.db.First(&found, "code = ?", code)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Party{}, fmt.Errorf("%w: party code %s", dto.ErrNotFound, code)
		}
		return model.Party{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (p *party) Update(party model.Party) (model.Party, error) {
	result := p.db.Save(&party)
	if result.Error != nil {
		return model.Party{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return party, nil
}

func (p *party) ListForVoter(voter dto.Voter) ([]model.Party, error) {
	var parties []model.Party
	result := p.db.
		Distinct("parties.*").
		Joins("LEFT JOIN participants ON participants.party_id = parties.id").
		Where("parties.creator_id = ? OR (participants.voter_id = ? AND participants.voter_kind = ?)",
			voter.ID, voter.ID, voter.Kind).
		Order("parties.created_at DESC").
		Find(&parties)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return parties, nil
}

func (p *party) IncrementSubmissions(partyID uint) error {
	result := p.db.Model(&model.Party{}).
		Where("id = ?", partyID).
		UpdateColumn("total_submissions", gorm.Expr("total_submissions + 1"))
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

func (p *party) AddParticipant(participant model.Participant) error {
	result := p.db.Create(&participant)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}

func (p *party) IsParticipant(partyID uint, voter dto.Voter) (bool, error) {
	var count int64
	result := p.db.Model(&model.Participant{}).
		Where("party_id = ? AND voter_id = ? AND voter_kind = ?", partyID, voter.ID, voter.Kind).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return count > 0, nil
}
