package service

import (
	"strings"
	"testing"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuestService(t *testing.T) (GuestService, repository.Repositories) {
	repos := newTestRepositories(t)
	return newGuestService(repos.Party(), repos.AnonymousUser()), repos
}

func TestCreateGuest(t *testing.T) {
	svc, repos := newTestGuestService(t)
	party := createTestParty(t, repos)

	guest, err := svc.CreateGuest(party.ID, "DJ Dave", "203.0.113.7", "test-agent")
	require.NoError(t, err)

	assert.NotEmpty(t, guest.ID)
	assert.NotEmpty(t, guest.Token)
	assert.Equal(t, "DJ Dave", guest.DisplayName)
	assert.Equal(t, party.ID, guest.PartyID)

	// The guest identity is usable as a voter right away.
	isParticipant, err := repos.Party().IsParticipant(party.ID, dto.Voter{ID: guest.ID, Kind: dto.VoterGuest})
	require.NoError(t, err)
	assert.True(t, isParticipant)
}

func TestCreateGuestDisplayNameLength(t *testing.T) {
	svc, repos := newTestGuestService(t)
	party := createTestParty(t, repos)

	_, err := svc.CreateGuest(party.ID, "X", "", "")
	assert.ErrorIs(t, err, dto.ErrValidation)

	_, err = svc.CreateGuest(party.ID, strings.Repeat("x", 31), "", "")
	assert.ErrorIs(t, err, dto.ErrValidation)

	_, err = svc.CreateGuest(party.ID, strings.Repeat("x", 30), "", "")
	assert.NoError(t, err)
}

func TestCreateGuestRequiresAllowAnonymous(t *testing.T) {
	svc, repos := newTestGuestService(t)
	party := createTestParty(t, repos, withSettings(func(s *model.PartySettings) {
		s.AllowAnonymous = false
	}))

	_, err := svc.CreateGuest(party.ID, "DJ Dave", "", "")
	assert.ErrorIs(t, err, dto.ErrForbidden)
}

func TestCreateGuestDuplicateName(t *testing.T) {
	svc, repos := newTestGuestService(t)
	party := createTestParty(t, repos)

	_, err := svc.CreateGuest(party.ID, "DJ Dave", "", "")
	require.NoError(t, err)

	_, err = svc.CreateGuest(party.ID, "DJ Dave", "", "")
	assert.Error(t, err)

	// Same name in another party is fine.
	other := createTestParty(t, repos)
	_, err = svc.CreateGuest(other.ID, "DJ Dave", "", "")
	assert.NoError(t, err)
}

func TestCreateGuestPartyNotFound(t *testing.T) {
	svc, _ := newTestGuestService(t)

	_, err := svc.CreateGuest(999, "DJ Dave", "", "")
	assert.ErrorIs(t, err, dto.ErrNotFound)
}
