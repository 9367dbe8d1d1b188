package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/service"
)

type GuestController interface {
	CreateGuest(c echo.Context) error
}

type guestController struct {
	guestService service.GuestService
}

func newGuestController(guestService service.GuestService) GuestController {
	return &guestController{
		guestService: guestService,
	}
}

func (g *guestController) CreateGuest(c echo.Context) error {
	var request dto.CreateGuestRequest
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if request.PartyID == 0 || request.DisplayName == "" {
		return respondError(c, http.StatusBadRequest, "party id and display name are required")
	}

	guest, err := g.guestService.CreateGuest(
		request.PartyID,
		request.DisplayName,
		c.RealIP(),
		c.Request().UserAgent(),
	)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusCreated, dto.CreateGuestResponse{
		Token:       guest.Token,
		GuestID:     guest.ID,
		DisplayName: guest.DisplayName,
	})
}
