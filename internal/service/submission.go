package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mixparty/backend/internal/client"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type SubmissionService interface {
	SubmitSong(partyID uint, voter dto.Voter, song dto.SongData) (model.Submission, int, error)
	ListSubmissions(partyID uint, sort repository.SubmissionSort) ([]model.Submission, error)
}

type submissionService struct {
	partyRepository      repository.PartyRepository
	submissionRepository repository.SubmissionRepository
	rabbitClient         client.RabbitClient
}

func newSubmissionService(
	partyRepository repository.PartyRepository,
	submissionRepository repository.SubmissionRepository,
	rabbitClient client.RabbitClient,
) SubmissionService {
	return &submissionService{
		partyRepository:      partyRepository,
		submissionRepository: submissionRepository,
		rabbitClient:         rabbitClient,
	}
}

// SubmitSong enters a pre-resolved song into a party for the given voter.
// It enforces the deadline, the per-user submission cap and per-party song
// uniqueness, and bumps the party's submission counter on success.
func (s *submissionService) SubmitSong(partyID uint, voter dto.Voter, song dto.SongData) (model.Submission, int, error) {
	party, err := s.partyRepository.GetByID(partyID)
	if err != nil {
		return model.Submission{}, 0, err
	}

	if time.Now().After(party.Deadline) && !party.Settings.AllowLateSubmissions {
		return model.Submission{}, 0, fmt.Errorf("%w: submission deadline has passed", dto.ErrValidation)
	}

	ownCount, err := s.submissionRepository.CountLiveByVoter(partyID, voter)
	if err != nil {
		return model.Submission{}, 0, err
	}
	if ownCount >= party.Settings.MaxSongsPerUser {
		return model.Submission{}, 0, fmt.Errorf("%w: you've reached the maximum of %d songs",
			dto.ErrValidation, party.Settings.MaxSongsPerUser)
	}

	if song.SpotifyID != "" {
		_, err := s.submissionRepository.FindLiveBySpotifyID(partyID, song.SpotifyID)
		if err == nil {
			return model.Submission{}, 0, fmt.Errorf("%w: this song has already been submitted to this party", dto.ErrConflict)
		}
		if !errors.Is(err, dto.ErrNotFound) {
			return model.Submission{}, 0, err
		}
	}

	created, err := s.submissionRepository.Create(model.Submission{
		PartyID:       partyID,
		SubmitterID:   voter.ID,
		SubmitterKind: voter.Kind,
		SubmitterName: voter.DisplayName,
		Song:          songFromData(song),
		SubmittedAt:   time.Now(),
	})
	if err != nil {
		return model.Submission{}, 0, err
	}

	if err := s.partyRepository.IncrementSubmissions(partyID); err != nil {
		return model.Submission{}, 0, err
	}

	logrus.Infof("Voter %s/%s submitted song %q to party %d", voter.Kind, voter.ID, song.Title, partyID)
	s.publishSubmissionCreated(created)

	return created, ownCount + 1, nil
}

func (s *submissionService) ListSubmissions(partyID uint, sort repository.SubmissionSort) ([]model.Submission, error) {
	if _, err := s.partyRepository.GetByID(partyID); err != nil {
		return nil, err
	}
	return s.submissionRepository.ListLive(partyID, sort)
}

// publishSubmissionCreated emits a domain event for external consumers.
// Best-effort: a broker failure never fails the submission.
func (s *submissionService) publishSubmissionCreated(submission model.Submission) {
	payload, err := json.Marshal(map[string]interface{}{
		"type":         "submission.created",
		"partyId":      submission.PartyID,
		"submissionId": submission.ID,
		"title":        submission.Song.Title,
		"artist":       submission.Song.Artist,
	})
	if err != nil {
		logrus.Errorf("Error marshaling submission event: %v", err)
		return
	}

	if err := s.rabbitClient.PublishMessage(payload); err != nil {
		logrus.Errorf("Error publishing submission event: %v", err)
	}
}

func songFromData(data dto.SongData) model.Song {
	return model.Song{
		Title:         data.Title,
		Artist:        data.Artist,
		Album:         data.Album,
		AlbumArt:      data.AlbumArt,
		DurationMS:    data.DurationMS,
		ReleaseDate:   data.ReleaseDate,
		Explicit:      data.Explicit,
		SpotifyID:     data.SpotifyID,
		SpotifyURI:    data.SpotifyURI,
		AppleMusicID:  data.AppleMusicID,
		TidalID:       data.TidalID,
		SpotifyURL:    data.SpotifyURL,
		AppleMusicURL: data.AppleMusicURL,
		TidalURL:      data.TidalURL,
		SonglinkURL:   data.SonglinkURL,
		OnSpotify:     data.OnSpotify,
		OnAppleMusic:  data.OnAppleMusic,
		OnTidal:       data.OnTidal,
	}
}
