package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// SongAvailability is the cross-platform resolution of one track.
type SongAvailability struct {
	SonglinkURL   string
	SpotifyURL    string
	AppleMusicURL string
	TidalURL      string
	OnSpotify     bool
	OnAppleMusic  bool
	OnTidal       bool
}

type SonglinkClient interface {
	Resolve(ctx context.Context, spotifyURL string) SongAvailability
}

type songlinkClient struct {
	httpClient *http.Client
}

func NewSonglinkClient() SonglinkClient {
	return &songlinkClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Resolve asks Songlink for the track's links on other platforms. Resolution
// is best-effort: on any failure the result degrades to Spotify-only so a
// submission never fails because of this lookup.
func (s *songlinkClient) Resolve(ctx context.Context, spotifyURL string) SongAvailability {
	fallback := SongAvailability{
		SonglinkURL: spotifyURL,
		SpotifyURL:  spotifyURL,
		OnSpotify:   true,
	}

	endpoint := "https://api.song.link/v1-alpha.1/links?url=" + url.QueryEscape(spotifyURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		logrus.Errorf("Songlink request error: %v", err)
		return fallback
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logrus.Errorf("Songlink resolution failed: %v", err)
		return fallback
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logrus.Errorf("Songlink resolution failed: %v", fmt.Errorf("status %d", resp.StatusCode))
		return fallback
	}

	var body struct {
		PageURL         string `json:"pageUrl"`
		LinksByPlatform map[string]struct {
			URL string `json:"url"`
		} `json:"linksByPlatform"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logrus.Errorf("Songlink response decode error: %v", err)
		return fallback
	}

	spotify, onSpotify := body.LinksByPlatform["spotify"]
	appleMusic, onAppleMusic := body.LinksByPlatform["appleMusic"]
	tidal, onTidal := body.LinksByPlatform["tidal"]

	resolved := SongAvailability{
		SonglinkURL:  body.PageURL,
		OnSpotify:    onSpotify,
		OnAppleMusic: onAppleMusic,
		OnTidal:      onTidal,
	}
	if resolved.SonglinkURL == "" {
		resolved.SonglinkURL = spotifyURL
	}
	resolved.SpotifyURL = spotify.URL
	resolved.AppleMusicURL = appleMusic.URL
	resolved.TidalURL = tidal.URL

	return resolved
}
