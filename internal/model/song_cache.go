package model

import "time"

// SongCache stores resolved catalog data keyed by Spotify track ID so
// repeated submissions of the same song skip the external lookups.
type SongCache struct {
	SpotifyID string `gorm:"primaryKey"`
	Data      []byte `gorm:"not null"`
	CachedAt  time.Time
	ExpiresAt time.Time `gorm:"index"`
}
