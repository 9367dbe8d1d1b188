package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SongCacheRepository interface {
	Get(spotifyID string) (model.SongCache, error)
	Put(entry model.SongCache) error
}

type songCache struct {
	db *gorm.DB
}

func newSongCacheRepository(db *gorm.DB) SongCacheRepository {
	return &songCache{
		db: db,
	}
}

func (s *songCache) Get(spotifyID string) (model.SongCache, error) {
	var entry model.SongCache
	result := s.db.First(&entry, "spotify_id = ?", spotifyID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return model.SongCache{}, fmt.Errorf("%w: track %s", dto.ErrNotFound, spotifyID)
		}
		return model.SongCache{}, fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	if time.Now().After(entry.ExpiresAt) {
		return model.SongCache{}, fmt.Errorf("%w: track %s expired", dto.ErrNotFound, spotifyID)
	}

	return entry, nil
}

func (s *songCache) Put(entry model.SongCache) error {
	result := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "spotify_id"}},
		UpdateAll: true,
	}).Create(&entry)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", dto.ErrInternalFailure, result.Error)
	}

	return nil
}
