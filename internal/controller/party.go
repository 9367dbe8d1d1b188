package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	ctx "github.com/mixparty/backend/internal/context"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/service"
)

type PartyController interface {
	CreateParty(c echo.Context) error
	UpdateParty(c echo.Context) error
	ListParties(c echo.Context) error
	JoinParty(c echo.Context) error
	GetParty(c echo.Context) error
}

type partyController struct {
	partyService service.PartyService
	authService  service.AuthService
	config       dto.Config
}

func newPartyController(partyService service.PartyService, authService service.AuthService, config dto.Config) PartyController {
	return &partyController{
		partyService: partyService,
		authService:  authService,
		config:       config,
	}
}

func (p *partyController) CreateParty(c echo.Context) error {
	user, ok := ctx.GetUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	var request dto.CreatePartyRequest
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	party, err := p.partyService.CreateParty(user, request)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusCreated, dto.CreatePartyResponse{
		PartyID:  party.ID,
		Code:     party.Code,
		Name:     party.Name,
		ShareURL: p.config.AppURL + "/join/" + party.Code,
	})
}

func (p *partyController) UpdateParty(c echo.Context) error {
	user, ok := ctx.GetUser(c)
	if !ok {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	partyID, err := partyIDParam(c)
	if err != nil {
		return handleError(c, err)
	}

	var request dto.UpdatePartyRequest
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}

	party, err := p.partyService.UpdateParty(partyID, user, request)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, map[string]interface{}{
		"party": partyView(party),
	})
}

func (p *partyController) ListParties(c echo.Context) error {
	voter := optionalVoter(c, p.authService, "")
	if voter == nil {
		return respondError(c, http.StatusUnauthorized, "authentication required")
	}

	parties, err := p.partyService.ListParties(*voter)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, map[string]interface{}{
		"parties": parties,
	})
}

func (p *partyController) JoinParty(c echo.Context) error {
	var request dto.JoinPartyRequest
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if request.Code == "" {
		return respondError(c, http.StatusBadRequest, "party code is required")
	}

	voter := optionalVoter(c, p.authService, "")
	party, err := p.partyService.JoinByCode(request.Code, voter)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, dto.JoinPartyResponse{
		PartyID:        party.ID,
		Code:           party.Code,
		Name:           party.Name,
		Theme:          party.Theme,
		AllowAnonymous: party.Settings.AllowAnonymous,
		RequiresAuth:   !party.Settings.IsPublic,
	})
}

func (p *partyController) GetParty(c echo.Context) error {
	partyID, err := partyIDParam(c)
	if err != nil {
		return handleError(c, err)
	}

	voter := optionalVoter(c, p.authService, c.QueryParam("userToken"))
	party, role, err := p.partyService.GetParty(partyID, voter)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, map[string]interface{}{
		"party":    partyView(party),
		"userRole": role,
	})
}

func partyView(party model.Party) map[string]interface{} {
	return map[string]interface{}{
		"id":               party.ID,
		"name":             party.Name,
		"code":             party.Code,
		"theme":            party.Theme,
		"description":      party.Description,
		"deadline":         party.Deadline,
		"status":           party.Status,
		"totalSubmissions": party.TotalSubmissions,
		"createdAt":        party.CreatedAt,
		"settings": map[string]interface{}{
			"maxSongsPerUser":      party.Settings.MaxSongsPerUser,
			"minSongsToReveal":     party.Settings.MinSongsToReveal,
			"allowAnonymous":       party.Settings.AllowAnonymous,
			"allowLateSubmissions": party.Settings.AllowLateSubmissions,
			"showSubmitters":       party.Settings.ShowSubmitters,
			"votingEnabled":        party.Settings.VotingEnabled,
			"votingSystem":         party.Settings.VotingMode,
			"isPublic":             party.Settings.IsPublic,
		},
	}
}
