package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mixparty/backend/internal/service"
)

type MusicController interface {
	Search(c echo.Context) error
	Resolve(c echo.Context) error
}

type musicController struct {
	musicService service.MusicService
}

func newMusicController(musicService service.MusicService) MusicController {
	return &musicController{
		musicService: musicService,
	}
}

func (m *musicController) Search(c echo.Context) error {
	query := c.QueryParam("q")
	if query == "" {
		return respondError(c, http.StatusBadRequest, "search query is required")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	songs, err := m.musicService.Search(c.Request().Context(), query, limit)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, map[string]interface{}{
		"results": songs,
	})
}

func (m *musicController) Resolve(c echo.Context) error {
	var request struct {
		SpotifyID string `json:"spotifyId"`
	}
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if request.SpotifyID == "" {
		return respondError(c, http.StatusBadRequest, "spotify id is required")
	}

	song, err := m.musicService.ResolveTrack(c.Request().Context(), request.SpotifyID)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusOK, map[string]interface{}{
		"songData": song,
	})
}
