package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/mixparty/backend/voting"
	"github.com/sirupsen/logrus"
)

// PartyRole is the caller's relationship to a party.
type PartyRole string

const (
	RoleCreator     PartyRole = "creator"
	RoleParticipant PartyRole = "participant"
	RoleViewer      PartyRole = "viewer"
)

type PartyService interface {
	CreateParty(creator model.User, request dto.CreatePartyRequest) (model.Party, error)
	UpdateParty(partyID uint, user model.User, request dto.UpdatePartyRequest) (model.Party, error)
	JoinByCode(code string, voter *dto.Voter) (model.Party, error)
	GetParty(partyID uint, voter *dto.Voter) (model.Party, PartyRole, error)
	ListParties(voter dto.Voter) ([]model.Party, error)
}

type partyService struct {
	partyRepository repository.PartyRepository
	config          dto.Config
}

func newPartyService(partyRepository repository.PartyRepository, config dto.Config) PartyService {
	return &partyService{
		partyRepository: partyRepository,
		config:          config,
	}
}

var codeWords = []string{
	"VIBE", "BEAT", "TUNE", "WAVE", "ECHO", "FLOW", "MOOD",
	"SOUL", "FUNK", "JAZZ", "ROCK", "STAR", "MOON", "SUN",
}

const codeSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generatePartyCode builds a human-shareable join code, e.g. VIBE-2026-K3k.
func generatePartyCode() string {
	suffix := make([]byte, 3)
	for i := range suffix {
		suffix[i] = codeSuffixAlphabet[rand.Intn(len(codeSuffixAlphabet))]
	}
	word := codeWords[rand.Intn(len(codeWords))]
	return fmt.Sprintf("%s-%d-%s", word, time.Now().Year(), suffix)
}

func (p *partyService) CreateParty(creator model.User, request dto.CreatePartyRequest) (model.Party, error) {
	if request.Name == "" || request.Deadline.IsZero() {
		return model.Party{}, fmt.Errorf("%w: party name and deadline are required", dto.ErrValidation)
	}
	if !request.Deadline.After(time.Now()) {
		return model.Party{}, fmt.Errorf("%w: deadline must be in the future", dto.ErrValidation)
	}

	settings := defaultPartySettings()
	applySettings(&settings, request.Settings)

	timezone := request.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	party := model.Party{
		Name:            request.Name,
		Theme:           request.Theme,
		Description:     request.Description,
		CreatorID:       creator.ID,
		Deadline:        request.Deadline,
		CreatorTimezone: timezone,
		Settings:        settings,
		Status:          model.PartyStatusCollecting,
	}

	// Codes are not guaranteed unique, so retry a handful of times on
	// collision before giving up. Any other failure surfaces immediately.
	var created model.Party
	var err error
	for attempt := 0; attempt < 10; attempt++ {
		party.Code = generatePartyCode()
		created, err = p.partyRepository.Create(party)
		if err == nil {
			break
		}
		if !errors.Is(err, dto.ErrConflict) {
			return model.Party{}, err
		}
	}
	if err != nil {
		return model.Party{}, err
	}

	if err := p.partyRepository.AddParticipant(model.Participant{
		PartyID:   created.ID,
		VoterID:   creator.ID,
		VoterKind: dto.VoterAccount,
		JoinedAt:  time.Now(),
	}); err != nil {
		return model.Party{}, err
	}

	logrus.Infof("User %s created party %d with code %s", creator.ID, created.ID, created.Code)
	return created, nil
}

// UpdateParty applies partial edits to a party. Only the creator may change
// a party; omitted fields stay as they are.
func (p *partyService) UpdateParty(partyID uint, user model.User, request dto.UpdatePartyRequest) (model.Party, error) {
	party, err := p.partyRepository.GetByID(partyID)
	if err != nil {
		return model.Party{}, err
	}
	if party.CreatorID != user.ID {
		return model.Party{}, fmt.Errorf("%w: only the party creator can change it", dto.ErrForbidden)
	}

	if request.Name != nil {
		if *request.Name == "" {
			return model.Party{}, fmt.Errorf("%w: party name cannot be empty", dto.ErrValidation)
		}
		party.Name = *request.Name
	}
	if request.Theme != nil {
		party.Theme = *request.Theme
	}
	if request.Description != nil {
		party.Description = *request.Description
	}
	if request.Deadline != nil {
		if !request.Deadline.After(time.Now()) {
			return model.Party{}, fmt.Errorf("%w: deadline must be in the future", dto.ErrValidation)
		}
		party.Deadline = *request.Deadline
	}
	applySettings(&party.Settings, request.Settings)

	return p.partyRepository.Update(party)
}

// JoinByCode looks a party up by its join code and, when the caller is an
// authenticated account, registers it as a participant. Private parties
// require an account.
func (p *partyService) JoinByCode(code string, voter *dto.Voter) (model.Party, error) {
	party, err := p.partyRepository.GetByCode(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return model.Party{}, err
	}

	if !party.Settings.IsPublic && (voter == nil || voter.Kind != dto.VoterAccount) {
		return model.Party{}, fmt.Errorf("%w: this party is private, sign in to join", dto.ErrForbidden)
	}

	if voter != nil && voter.Kind == dto.VoterAccount {
		if err := p.partyRepository.AddParticipant(model.Participant{
			PartyID:   party.ID,
			VoterID:   voter.ID,
			VoterKind: voter.Kind,
			JoinedAt:  time.Now(),
		}); err != nil {
			return model.Party{}, err
		}
	}

	return party, nil
}

func (p *partyService) GetParty(partyID uint, voter *dto.Voter) (model.Party, PartyRole, error) {
	party, err := p.partyRepository.GetByID(partyID)
	if err != nil {
		return model.Party{}, RoleViewer, err
	}

	role := RoleViewer
	if voter != nil {
		if voter.Kind == dto.VoterAccount && voter.ID == party.CreatorID {
			role = RoleCreator
		} else {
			participant, err := p.partyRepository.IsParticipant(partyID, *voter)
			if err != nil {
				return model.Party{}, RoleViewer, err
			}
			if participant {
				role = RoleParticipant
			}
		}
	}

	if !party.Settings.IsPublic {
		if voter == nil || voter.Kind != dto.VoterAccount {
			return model.Party{}, RoleViewer, fmt.Errorf("%w", dto.ErrNotAuthorized)
		}
		if role == RoleViewer {
			return model.Party{}, RoleViewer, fmt.Errorf("%w: access denied", dto.ErrForbidden)
		}
	}

	return party, role, nil
}

func (p *partyService) ListParties(voter dto.Voter) ([]model.Party, error) {
	return p.partyRepository.ListForVoter(voter)
}

func defaultPartySettings() model.PartySettings {
	return model.PartySettings{
		MaxSongsPerUser:  3,
		MinSongsToReveal: 3,
		AllowAnonymous:   true,
		VotingEnabled:    true,
		VotingMode:       voting.ModeUpOnly,
		IsPublic:         true,
	}
}

func applySettings(settings *model.PartySettings, request *dto.PartySettingsRequest) {
	if request == nil {
		return
	}
	if request.MaxSongsPerUser != nil {
		settings.MaxSongsPerUser = *request.MaxSongsPerUser
	}
	if request.MinSongsToReveal != nil {
		settings.MinSongsToReveal = *request.MinSongsToReveal
	}
	if request.AllowAnonymous != nil {
		settings.AllowAnonymous = *request.AllowAnonymous
	}
	if request.AllowLateSubmissions != nil {
		settings.AllowLateSubmissions = *request.AllowLateSubmissions
	}
	if request.ShowSubmitters != nil {
		settings.ShowSubmitters = *request.ShowSubmitters
	}
	if request.VotingEnabled != nil {
		settings.VotingEnabled = *request.VotingEnabled
	}
	if request.VotingMode != nil {
		switch mode := voting.Mode(*request.VotingMode); mode {
		case voting.ModeUpOnly, voting.ModeUpDown:
			settings.VotingMode = mode
		}
	}
	if request.IsPublic != nil {
		settings.IsPublic = *request.IsPublic
	}
}
