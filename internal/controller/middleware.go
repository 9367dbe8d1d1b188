package controller

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	ctx "github.com/mixparty/backend/internal/context"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/service"
	"github.com/mixparty/backend/voting"
	"github.com/sirupsen/logrus"
)

// OptionalAuth resolves a Bearer ID token into an account on the request
// context. Requests without an Authorization header pass through
// unauthenticated; a present but invalid token is rejected.
func OptionalAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return next(c)
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header {
				return respondError(c, http.StatusUnauthorized, "invalid authorization format")
			}

			user, err := authService.ValidateToken(c.Request().Context(), token)
			if err != nil {
				return respondError(c, http.StatusUnauthorized, "invalid token")
			}

			ctx.SetUser(c, user)
			return next(c)
		}
	}
}

// resolveVoter maps the request to a voter identity: the authenticated
// account when present, otherwise the guest matching the supplied token.
func resolveVoter(c echo.Context, authService service.AuthService, guestToken string) (dto.Voter, error) {
	if user, ok := ctx.GetUser(c); ok {
		name := ""
		if user.Name != nil {
			name = *user.Name
		}
		return dto.Voter{ID: user.ID, Kind: dto.VoterAccount, DisplayName: name}, nil
	}
	if guestToken != "" {
		return authService.ResolveGuest(guestToken)
	}
	return dto.Voter{}, fmt.Errorf("%w: authentication required", dto.ErrNotAuthorized)
}

// optionalVoter is resolveVoter for endpoints that also serve anonymous
// viewers; it returns nil instead of failing.
func optionalVoter(c echo.Context, authService service.AuthService, guestToken string) *dto.Voter {
	voter, err := resolveVoter(c, authService, guestToken)
	if err != nil {
		return nil
	}
	return &voter
}

func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]interface{}{
		"error": message,
	})
}

// handleError translates service errors to HTTP responses. Budget
// violations keep their structure (kind + limit) so clients can render an
// actionable message.
func handleError(c echo.Context, err error) error {
	var budgetErr *voting.BudgetExceededError
	switch {
	case errors.As(err, &budgetErr):
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"error": budgetErr.Error(),
			"kind":  budgetErr.Kind,
			"limit": budgetErr.Limit,
		})
	case errors.Is(err, dto.ErrNotAuthorized):
		return respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, dto.ErrForbidden), errors.Is(err, dto.ErrVotingDisabled):
		return respondError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, dto.ErrNotFound):
		return respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, dto.ErrConflict):
		return respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, dto.ErrValidation):
		return respondError(c, http.StatusBadRequest, err.Error())
	default:
		logrus.Errorf("Unhandled error: %v", err)
		return respondError(c, http.StatusInternalServerError, "internal failure")
	}
}

func partyIDParam(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("partyId"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid party id", dto.ErrValidation)
	}
	return uint(id), nil
}
