package repository

import (
	"github.com/mixparty/backend/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Repositories interface {
	User() UserRepository
	AnonymousUser() AnonymousUserRepository
	Party() PartyRepository
	Submission() SubmissionRepository
	Vote() VoteRepository
	SongCache() SongCacheRepository
}

type repositories struct {
	userRepository          UserRepository
	anonymousUserRepository AnonymousUserRepository
	partyRepository         PartyRepository
	submissionRepository    SubmissionRepository
	voteRepository          VoteRepository
	songCacheRepository     SongCacheRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	err := db.AutoMigrate(
		&model.User{},
		&model.AnonymousUser{},
		&model.Party{},
		&model.Participant{},
		&model.Submission{},
		&model.Vote{},
		&model.SongCache{},
	)
	if err != nil {
		logrus.Panic(err)
	}
	return &repositories{
		userRepository:          newUserRepository(db),
		anonymousUserRepository: newAnonymousUserRepository(db),
		partyRepository:         newPartyRepository(db),
		submissionRepository:    newSubmissionRepository(db),
		voteRepository:          newVoteRepository(db),
		songCacheRepository:     newSongCacheRepository(db),
	}
}

func (r repositories) User() UserRepository {
	return r.userRepository
}

func (r repositories) AnonymousUser() AnonymousUserRepository {
	return r.anonymousUserRepository
}

func (r repositories) Party() PartyRepository {
	return r.partyRepository
}

func (r repositories) Submission() SubmissionRepository {
	return r.submissionRepository
}

func (r repositories) Vote() VoteRepository {
	return r.voteRepository
}

func (r repositories) SongCache() SongCacheRepository {
	return r.songCacheRepository
}
