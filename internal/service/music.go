package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/mixparty/backend/internal/client"
	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"github.com/mixparty/backend/internal/repository"
	"github.com/sirupsen/logrus"
)

const songCacheTTL = 7 * 24 * time.Hour

type MusicService interface {
	Search(ctx context.Context, query string, limit int) ([]dto.SongData, error)
	ResolveTrack(ctx context.Context, spotifyID string) (dto.SongData, error)
}

type musicService struct {
	spotifyClient       client.SpotifyClient
	songlinkClient      client.SonglinkClient
	songCacheRepository repository.SongCacheRepository
}

func newMusicService(
	spotifyClient client.SpotifyClient,
	songlinkClient client.SonglinkClient,
	songCacheRepository repository.SongCacheRepository,
) MusicService {
	return &musicService{
		spotifyClient:       spotifyClient,
		songlinkClient:      songlinkClient,
		songCacheRepository: songCacheRepository,
	}
}

func (m *musicService) Search(ctx context.Context, query string, limit int) ([]dto.SongData, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return m.spotifyClient.SearchTracks(ctx, query, limit)
}

// ResolveTrack builds the full cross-platform song record for one Spotify
// track, serving from the database cache when a fresh entry exists.
func (m *musicService) ResolveTrack(ctx context.Context, spotifyID string) (dto.SongData, error) {
	if cached, err := m.songCacheRepository.Get(spotifyID); err == nil {
		var song dto.SongData
		if err := json.Unmarshal(cached.Data, &song); err == nil {
			return song, nil
		}
		logrus.Errorf("Corrupt song cache entry for %s, refetching", spotifyID)
	} else if !errors.Is(err, dto.ErrNotFound) {
		return dto.SongData{}, err
	}

	song, err := m.spotifyClient.GetTrack(ctx, spotifyID)
	if err != nil {
		return dto.SongData{}, err
	}

	availability := m.songlinkClient.Resolve(ctx, song.SpotifyURL)
	song.SonglinkURL = availability.SonglinkURL
	song.AppleMusicURL = availability.AppleMusicURL
	song.TidalURL = availability.TidalURL
	song.OnSpotify = availability.OnSpotify
	song.OnAppleMusic = availability.OnAppleMusic
	song.OnTidal = availability.OnTidal

	data, err := json.Marshal(song)
	if err == nil {
		cacheErr := m.songCacheRepository.Put(model.SongCache{
			SpotifyID: spotifyID,
			Data:      data,
			CachedAt:  time.Now(),
			ExpiresAt: time.Now().Add(songCacheTTL),
		})
		if cacheErr != nil {
			logrus.Errorf("Failed to cache song %s: %v", spotifyID, cacheErr)
		}
	}

	return song, nil
}
