package repository

import (
	"errors"
	"fmt"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"gorm.io/gorm"
)

// SubmissionSort selects the ordering of a submission listing.
type SubmissionSort string

const (
	SortVotesDesc SubmissionSort = "votes_desc"
	SortVotesAsc  SubmissionSort = "votes_asc"
	SortTimeAsc   SubmissionSort = "time_asc"
	SortTimeDesc  SubmissionSort = "time_desc"
)

type SubmissionRepository interface {
	Create(submission model.Submission) (model.Submission, error)
	GetByID(id uint) (model.Submission, error)
	ListLive(partyID uint, sort SubmissionSort) ([]model.Submission, error)
	ListLiveIDs(partyID uint) ([]uint, error)
	CountLive(partyID uint) (int, error)
	CountLiveByVoter(partyID uint, voter dto.Voter) (int, error)
	FindLiveBySpotifyID(partyID uint, spotifyID string) (model.Submission, error)
	WriteTally(submissionID uint, upvotes, downvotes int) error
}

type submission struct {
	db *gorm.DB
}

func newSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submission{
		db: db,
	}
}

func (s *submission) Create(submission model.Submission) (model.Submission, error) {
	result := s.db.Create(&submission)
	if result.Error != nil {
		return model.Submission{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return submission, nil
}

func (s *submission) GetByID(id uint) (model.Submission, error) {
	var found model.Submission
	result := s.db.First(&found, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Submission{}, fmt.Errorf("%w: submission %d", dto.ErrNotFound, id)
		}
		return model.Submission{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

func (s *submission) ListLive(partyID uint, sort SubmissionSort) ([]model.Submission, error) {
	order := "submitted_at DESC"
	switch sort {
	case SortVotesDesc:
		order = "upvotes DESC, submitted_at DESC"
	case SortVotesAsc:
		order = "upvotes ASC, submitted_at DESC"
	case SortTimeAsc:
		order = "submitted_at ASC"
	}

	var submissions []model.Submission
	result := s.db.Where("party_id = ?", partyID).Order(order).Find(&submissions)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return submissions, nil
}

func (s *submission) ListLiveIDs(partyID uint) ([]uint, error) {
	var ids []uint
	result := s.db.Model(&model.Submission{}).
		Where("party_id = ?", partyID).
		Pluck("id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return ids, nil
}

func (s *submission) CountLive(partyID uint) (int, error) {
	var count int64
	result := s.db.Model(&model.Submission{}).
		Where("party_id = ?", partyID).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return int(count), nil
}

func (s *submission) CountLiveByVoter(partyID uint, voter dto.Voter) (int, error) {
	var count int64
	result := s.db.Model(&model.Submission{}).
		Where("party_id = ? AND submitter_id = ? AND submitter_kind = ?", partyID, voter.ID, voter.Kind).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return int(count), nil
}

func (s *submission) FindLiveBySpotifyID(partyID uint, spotifyID string) (model.Submission, error) {
	var found model.Submission
	result := s.db.First(&found, "party_id = ? AND song_spotify_id = ?", partyID, spotifyID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.Submission{}, fmt.Errorf("%w: submission for track %s", dto.ErrNotFound, spotifyID)
		}
		return model.Submission{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return found, nil
}

// WriteTally overwrites the derived vote counters of one submission. It is
// only called from tally recomputation, which always rewrites every live
// submission of the party.
func (s *submission) WriteTally(submissionID uint, upvotes, downvotes int) error {
	result := s.db.Model(&model.Submission{}).
		Where("id = ?", submissionID).
		UpdateColumns(map[string]interface{}{
			"upvotes":   upvotes,
			"downvotes": downvotes,
		})
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}
