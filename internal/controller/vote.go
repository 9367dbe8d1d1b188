package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/service"
)

type VoteController interface {
	GetVotes(c echo.Context) error
	SubmitVotes(c echo.Context) error
}

type voteController struct {
	voteService service.VoteService
	authService service.AuthService
}

func newVoteController(voteService service.VoteService, authService service.AuthService) VoteController {
	return &voteController{
		voteService: voteService,
		authService: authService,
	}
}

// GetVotes returns the caller's server-confirmed vote set together with the
// current budget, the two inputs a client needs to reconcile a local draft.
func (v *voteController) GetVotes(c echo.Context) error {
	partyID, err := partyIDParam(c)
	if err != nil {
		return handleError(c, err)
	}

	voter, err := resolveVoter(c, v.authService, c.QueryParam("userToken"))
	if err != nil {
		return handleError(c, err)
	}

	votes, err := v.voteService.GetVotes(partyID, voter)
	if err != nil {
		return handleError(c, err)
	}

	budget, err := v.voteService.Budget(partyID)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, dto.GetVotesResponse{
		Votes:  votes,
		Budget: budget,
	})
}

// SubmitVotes replaces the caller's whole vote set for the party.
func (v *voteController) SubmitVotes(c echo.Context) error {
	partyID, err := partyIDParam(c)
	if err != nil {
		return handleError(c, err)
	}

	var request dto.SubmitVotesRequest
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid votes data")
	}
	if request.Votes == nil {
		return respondError(c, http.StatusBadRequest, "invalid votes data")
	}

	voter, err := resolveVoter(c, v.authService, request.UserToken)
	if err != nil {
		return handleError(c, err)
	}

	result, err := v.voteService.SubmitVotes(partyID, voter, request.Votes)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, result)
}
