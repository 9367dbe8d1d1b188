package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/mixparty/backend/internal/service"
)

type SubmissionController interface {
	ListSubmissions(c echo.Context) error
	SubmitSong(c echo.Context) error
}

type submissionController struct {
	submissionService service.SubmissionService
	authService       service.AuthService
}

func newSubmissionController(submissionService service.SubmissionService, authService service.AuthService) SubmissionController {
	return &submissionController{
		submissionService: submissionService,
		authService:       authService,
	}
}

func (s *submissionController) ListSubmissions(c echo.Context) error {
	partyID, err := partyIDParam(c)
	if err != nil {
		return handleError(c, err)
	}

	sort := repository.SubmissionSort(c.QueryParam("sort"))
	submissions, err := s.submissionService.ListSubmissions(partyID, sort)
	if err != nil {
		return handleError(c, err)
	}

	views := make([]dto.SubmissionResponse, 0, len(submissions))
	for _, submission := range submissions {
		views = append(views, submissionView(submission))
	}

	return respond(c, http.StatusOK, map[string]interface{}{
		"submissions": views,
		"total":       len(views),
	})
}

func (s *submissionController) SubmitSong(c echo.Context) error {
	partyID, err := partyIDParam(c)
	if err != nil {
		return handleError(c, err)
	}

	var request dto.SubmitSongRequest
	if err := c.Bind(&request); err != nil {
		return respondError(c, http.StatusBadRequest, "invalid request body")
	}
	if request.Song == nil {
		return respondError(c, http.StatusBadRequest, "song data is required")
	}

	voter, err := resolveVoter(c, s.authService, request.UserToken)
	if err != nil {
		return handleError(c, err)
	}

	submission, ownCount, err := s.submissionService.SubmitSong(partyID, voter, *request.Song)
	if err != nil {
		return handleError(c, err)
	}

	return respond(c, http.StatusCreated, dto.SubmitSongResponse{
		SubmissionID:        submission.ID,
		UserSubmissionCount: ownCount,
	})
}

func submissionView(submission model.Submission) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID: submission.ID,
		Song: dto.SongData{
			Title:         submission.Song.Title,
			Artist:        submission.Song.Artist,
			Album:         submission.Song.Album,
			AlbumArt:      submission.Song.AlbumArt,
			DurationMS:    submission.Song.DurationMS,
			ReleaseDate:   submission.Song.ReleaseDate,
			Explicit:      submission.Song.Explicit,
			SpotifyID:     submission.Song.SpotifyID,
			SpotifyURI:    submission.Song.SpotifyURI,
			AppleMusicID:  submission.Song.AppleMusicID,
			TidalID:       submission.Song.TidalID,
			SpotifyURL:    submission.Song.SpotifyURL,
			AppleMusicURL: submission.Song.AppleMusicURL,
			TidalURL:      submission.Song.TidalURL,
			SonglinkURL:   submission.Song.SonglinkURL,
			OnSpotify:     submission.Song.OnSpotify,
			OnAppleMusic:  submission.Song.OnAppleMusic,
			OnTidal:       submission.Song.OnTidal,
		},
		Upvotes:       submission.Upvotes,
		Downvotes:     submission.Downvotes,
		SubmittedAt:   submission.SubmittedAt,
		SubmitterName: submission.SubmitterName,
	}
}
