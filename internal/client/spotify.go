package client

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mixparty/backend/internal/dto"
)

// SpotifyClient looks up tracks in the Spotify catalog using the
// client-credentials flow. The access token lives in an expiry-checked
// holder owned by the client instance, not in package-level state.
type SpotifyClient interface {
	SearchTracks(ctx context.Context, query string, limit int) ([]dto.SongData, error)
	GetTrack(ctx context.Context, trackID string) (dto.SongData, error)
}

type spotifyClient struct {
	httpClient   *http.Client
	clientID     string
	clientSecret string

	tokenMu     sync.Mutex
	token       string
	tokenExpiry time.Time
}

func NewSpotifyClient(config dto.Config) SpotifyClient {
	return &spotifyClient{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		clientID:     config.SpotifyClientID,
		clientSecret: config.SpotifyClientSecret,
	}
}

func (s *spotifyClient) accessToken(ctx context.Context) (string, error) {
	s.tokenMu.Lock()
	defer s.tokenMu.Unlock()

	if s.token != "" && time.Now().Before(s.tokenExpiry) {
		return s.token, nil
	}

	if s.clientID == "" || s.clientSecret == "" {
		return "", fmt.Errorf("spotify credentials not configured")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://accounts.spotify.com/api/token",
		strings.NewReader("grant_type=client_credentials"))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	basic := base64.StdEncoding.EncodeToString([]byte(s.clientID + ":" + s.clientSecret))
	req.Header.Set("Authorization", "Basic "+basic)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("spotify token request failed with status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}

	s.token = body.AccessToken
	// Refresh a minute early so in-flight requests never carry a token
	// that expires mid-call.
	s.tokenExpiry = time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - time.Minute)

	return s.token, nil
}

type spotifyTrack struct {
	ID      string `json:"id"`
	URI     string `json:"uri"`
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	Album struct {
		Name   string `json:"name"`
		Images []struct {
			URL string `json:"url"`
		} `json:"images"`
		ReleaseDate string `json:"release_date"`
	} `json:"album"`
	DurationMS   int  `json:"duration_ms"`
	Explicit     bool `json:"explicit"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

func (t spotifyTrack) toSongData() dto.SongData {
	artists := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		artists = append(artists, artist.Name)
	}
	albumArt := ""
	if len(t.Album.Images) > 0 {
		albumArt = t.Album.Images[0].URL
	}
	return dto.SongData{
		Title:       t.Name,
		Artist:      strings.Join(artists, ", "),
		Album:       t.Album.Name,
		AlbumArt:    albumArt,
		DurationMS:  t.DurationMS,
		ReleaseDate: t.Album.ReleaseDate,
		Explicit:    t.Explicit,
		SpotifyID:   t.ID,
		SpotifyURI:  t.URI,
		SpotifyURL:  t.ExternalURLs.Spotify,
		OnSpotify:   true,
	}
}

func (s *spotifyClient) SearchTracks(ctx context.Context, query string, limit int) ([]dto.SongData, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	params := url.Values{
		"q":      {query},
		"type":   {"track"},
		"limit":  {strconv.Itoa(limit)},
		"market": {"US"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://api.spotify.com/v1/search?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify search failed with status %d", resp.StatusCode)
	}

	var body struct {
		Tracks struct {
			Items []spotifyTrack `json:"items"`
		} `json:"tracks"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}

	songs := make([]dto.SongData, 0, len(body.Tracks.Items))
	for _, track := range body.Tracks.Items {
		songs = append(songs, track.toSongData())
	}
	return songs, nil
}

func (s *spotifyClient) GetTrack(ctx context.Context, trackID string) (dto.SongData, error) {
	token, err := s.accessToken(ctx)
	if err != nil {
		return dto.SongData{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		"https://api.spotify.com/v1/tracks/"+url.PathEscape(trackID), nil)
	if err != nil {
		return dto.SongData{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return dto.SongData{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return dto.SongData{}, fmt.Errorf("spotify track lookup failed with status %d", resp.StatusCode)
	}

	var track spotifyTrack
	if err := json.NewDecoder(resp.Body).Decode(&track); err != nil {
		return dto.SongData{}, err
	}

	return track.toSongData(), nil
}
