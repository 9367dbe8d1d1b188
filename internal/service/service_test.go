package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/mixparty/backend/voting"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepositories(t *testing.T) repository.Repositories {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	return repository.NewRepositories(db)
}

type partyOption func(*model.Party)

func withVotingMode(mode voting.Mode) partyOption {
	return func(p *model.Party) {
		p.Settings.VotingMode = mode
	}
}

func withVotingDisabled() partyOption {
	return func(p *model.Party) {
		p.Settings.VotingEnabled = false
	}
}

func withDeadline(deadline time.Time) partyOption {
	return func(p *model.Party) {
		p.Deadline = deadline
	}
}

func withSettings(mutate func(*model.PartySettings)) partyOption {
	return func(p *model.Party) {
		mutate(&p.Settings)
	}
}

var testPartyCounter int

func createTestParty(t *testing.T, repos repository.Repositories, opts ...partyOption) model.Party {
	t.Helper()

	testPartyCounter++
	party := model.Party{
		Name:            fmt.Sprintf("Party %d", testPartyCounter),
		Code:            fmt.Sprintf("TEST-2026-%03d", testPartyCounter),
		CreatorID:       "creator-1",
		Deadline:        time.Now().Add(24 * time.Hour),
		CreatorTimezone: "UTC",
		Settings: model.PartySettings{
			MaxSongsPerUser:  3,
			MinSongsToReveal: 3,
			AllowAnonymous:   true,
			VotingEnabled:    true,
			VotingMode:       voting.ModeUpOnly,
			IsPublic:         true,
		},
		Status: model.PartyStatusCollecting,
	}
	for _, opt := range opts {
		opt(&party)
	}

	created, err := repos.Party().Create(party)
	require.NoError(t, err)
	return created
}

func addTestSubmissions(t *testing.T, repos repository.Repositories, partyID uint, count int) []uint {
	t.Helper()

	ids := make([]uint, 0, count)
	for i := 0; i < count; i++ {
		created, err := repos.Submission().Create(model.Submission{
			PartyID:       partyID,
			SubmitterID:   fmt.Sprintf("submitter-%d", i),
			SubmitterKind: dto.VoterAccount,
			Song: model.Song{
				Title:     fmt.Sprintf("Song %d", i),
				Artist:    "Artist",
				SpotifyID: fmt.Sprintf("spotify-%d-%d", partyID, i),
			},
			SubmittedAt: time.Now().Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}
	return ids
}

func accountVoter(id string) dto.Voter {
	return dto.Voter{ID: id, Kind: dto.VoterAccount}
}
