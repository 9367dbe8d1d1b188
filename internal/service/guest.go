package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

type GuestService interface {
	CreateGuest(partyID uint, displayName, ipAddress, userAgent string) (model.AnonymousUser, error)
}

type guestService struct {
	partyRepository         repository.PartyRepository
	anonymousUserRepository repository.AnonymousUserRepository
}

func newGuestService(
	partyRepository repository.PartyRepository,
	anonymousUserRepository repository.AnonymousUserRepository,
) GuestService {
	return &guestService{
		partyRepository:         partyRepository,
		anonymousUserRepository: anonymousUserRepository,
	}
}

// CreateGuest issues a party-scoped anonymous identity. The returned token
// is the guest's only credential; the display name must be unique within
// the party.
func (g *guestService) CreateGuest(partyID uint, displayName, ipAddress, userAgent string) (model.AnonymousUser, error) {
	if len(displayName) < 2 || len(displayName) > 30 {
		return model.AnonymousUser{}, fmt.Errorf("%w: display name must be between 2 and 30 characters", dto.ErrValidation)
	}

	party, err := g.partyRepository.GetByID(partyID)
	if err != nil {
		return model.AnonymousUser{}, err
	}

	if !party.Settings.AllowAnonymous {
		return model.AnonymousUser{}, fmt.Errorf("%w: this party requires an account to join", dto.ErrForbidden)
	}

	guest, err := g.anonymousUserRepository.Create(model.AnonymousUser{
		ID:          uuid.NewString(),
		Token:       uuid.NewString() + uuid.NewString(),
		DisplayName: displayName,
		PartyID:     partyID,
		IPAddress:   ipAddress,
		UserAgent:   userAgent,
	})
	if err != nil {
		return model.AnonymousUser{}, err
	}

	if err := g.partyRepository.AddParticipant(model.Participant{
		PartyID:   partyID,
		VoterID:   guest.ID,
		VoterKind: dto.VoterGuest,
		JoinedAt:  time.Now(),
	}); err != nil {
		return model.AnonymousUser{}, err
	}

	logrus.Infof("Guest %s joined party %d as %q", guest.ID, partyID, displayName)
	return guest, nil
}
