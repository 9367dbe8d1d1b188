package service

import (
	authV4 "firebase.google.com/go/v4/auth"
	"github.com/mixparty/backend/internal/client"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/repository"
)

type Services interface {
	Auth() AuthService
	Guest() GuestService
	Party() PartyService
	Submission() SubmissionService
	Vote() VoteService
	Music() MusicService
}

type services struct {
	authService       AuthService
	guestService      GuestService
	partyService      PartyService
	submissionService SubmissionService
	voteService       VoteService
	musicService      MusicService
}

func NewServices(repositories repository.Repositories, config dto.Config, clients client.Clients) Services {
	return &services{
		authService: newAuthService(
			repositories.User(),
			repositories.AnonymousUser(),
			clients.AuthClient(),
			authV4.IsIDTokenExpired,
		),
		guestService: newGuestService(repositories.Party(), repositories.AnonymousUser()),
		partyService: newPartyService(repositories.Party(), config),
		submissionService: newSubmissionService(
			repositories.Party(),
			repositories.Submission(),
			clients.RabbitMQClient(),
		),
		voteService: newVoteService(
			repositories.Party(),
			repositories.Submission(),
			repositories.Vote(),
		),
		musicService: newMusicService(
			clients.SpotifyClient(),
			clients.SonglinkClient(),
			repositories.SongCache(),
		),
	}
}

func (s services) Auth() AuthService {
	return s.authService
}

func (s services) Guest() GuestService {
	return s.guestService
}

func (s services) Party() PartyService {
	return s.partyService
}

func (s services) Submission() SubmissionService {
	return s.submissionService
}

func (s services) Vote() VoteService {
	return s.voteService
}

func (s services) Music() MusicService {
	return s.musicService
}
