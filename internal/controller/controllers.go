package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/service"
)

type Controllers interface {
	Party() PartyController
	Submission() SubmissionController
	Vote() VoteController
	Guest() GuestController
	Music() MusicController
	Info() InfoController

	Route(e *echo.Echo)
}

type controllers struct {
	authService service.AuthService

	partyController      PartyController
	submissionController SubmissionController
	voteController       VoteController
	guestController      GuestController
	musicController      MusicController
	infoController       InfoController
}

func NewControllers(services service.Services, config dto.Config) Controllers {
	return &controllers{
		authService:          services.Auth(),
		partyController:      newPartyController(services.Party(), services.Auth(), config),
		submissionController: newSubmissionController(services.Submission(), services.Auth()),
		voteController:       newVoteController(services.Vote(), services.Auth()),
		guestController:      newGuestController(services.Guest()),
		musicController:      newMusicController(services.Music()),
		infoController:       newInfoController(),
	}
}

func (c controllers) Party() PartyController {
	return c.partyController
}

func (c controllers) Submission() SubmissionController {
	return c.submissionController
}

func (c controllers) Vote() VoteController {
	return c.voteController
}

func (c controllers) Guest() GuestController {
	return c.guestController
}

func (c controllers) Music() MusicController {
	return c.musicController
}

func (c controllers) Info() InfoController {
	return c.infoController
}

func (c controllers) Route(e *echo.Echo) {
	e.Use(OptionalAuth(c.authService))

	e.GET("/", c.infoController.Info)

	e.POST("/parties", c.partyController.CreateParty)
	e.GET("/parties", c.partyController.ListParties)
	e.POST("/parties/join", c.partyController.JoinParty)
	e.GET("/parties/:partyId", c.partyController.GetParty)
	e.PATCH("/parties/:partyId", c.partyController.UpdateParty)

	e.GET("/parties/:partyId/submissions", c.submissionController.ListSubmissions)
	e.POST("/parties/:partyId/submit", c.submissionController.SubmitSong)

	e.GET("/parties/:partyId/votes", c.voteController.GetVotes)
	e.POST("/parties/:partyId/votes/submit", c.voteController.SubmitVotes)

	e.POST("/users/anonymous", c.guestController.CreateGuest)

	e.GET("/music/search", c.musicController.Search)
	e.POST("/music/resolve", c.musicController.Resolve)
}
