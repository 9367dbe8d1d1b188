package service

import (
	"context"
	"errors"
	"testing"

	"github.com/mixparty/backend/internal/client"
	"github.com/mixparty/backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSpotifyClient struct {
	searchResults []dto.SongData
	tracks        map[string]dto.SongData
	getCalls      int
}

func (f *fakeSpotifyClient) SearchTracks(_ context.Context, _ string, limit int) ([]dto.SongData, error) {
	if limit < len(f.searchResults) {
		return f.searchResults[:limit], nil
	}
	return f.searchResults, nil
}

func (f *fakeSpotifyClient) GetTrack(_ context.Context, trackID string) (dto.SongData, error) {
	f.getCalls++
	track, ok := f.tracks[trackID]
	if !ok {
		return dto.SongData{}, errors.New("track not found")
	}
	return track, nil
}

type fakeSonglinkClient struct {
	availability client.SongAvailability
}

func (f *fakeSonglinkClient) Resolve(context.Context, string) client.SongAvailability {
	return f.availability
}

func TestResolveTrackEnrichesAndCaches(t *testing.T) {
	repos := newTestRepositories(t)
	spotify := &fakeSpotifyClient{tracks: map[string]dto.SongData{
		"sp-1": {Title: "Song", Artist: "Artist", SpotifyID: "sp-1", SpotifyURL: "https://open.spotify.com/track/sp-1"},
	}}
	songlink := &fakeSonglinkClient{availability: client.SongAvailability{
		SonglinkURL:   "https://song.link/s/sp-1",
		AppleMusicURL: "https://music.apple.com/x",
		OnSpotify:     true,
		OnAppleMusic:  true,
	}}
	svc := newMusicService(spotify, songlink, repos.SongCache())

	song, err := svc.ResolveTrack(context.Background(), "sp-1")
	require.NoError(t, err)
	assert.Equal(t, "Song", song.Title)
	assert.Equal(t, "https://song.link/s/sp-1", song.SonglinkURL)
	assert.True(t, song.OnAppleMusic)
	assert.False(t, song.OnTidal)

	// Second lookup is served from the cache without hitting Spotify.
	again, err := svc.ResolveTrack(context.Background(), "sp-1")
	require.NoError(t, err)
	assert.Equal(t, song, again)
	assert.Equal(t, 1, spotify.getCalls)
}

func TestResolveTrackUnknown(t *testing.T) {
	repos := newTestRepositories(t)
	svc := newMusicService(&fakeSpotifyClient{tracks: map[string]dto.SongData{}}, &fakeSonglinkClient{}, repos.SongCache())

	_, err := svc.ResolveTrack(context.Background(), "missing")
	assert.Error(t, err)
}

func TestSearchClampsLimit(t *testing.T) {
	repos := newTestRepositories(t)
	results := make([]dto.SongData, 20)
	spotify := &fakeSpotifyClient{searchResults: results}
	svc := newMusicService(spotify, &fakeSonglinkClient{}, repos.SongCache())

	songs, err := svc.Search(context.Background(), "query", 0)
	require.NoError(t, err)
	assert.Len(t, songs, 10)

	songs, err = svc.Search(context.Background(), "query", 15)
	require.NoError(t, err)
	assert.Len(t, songs, 15)
}
