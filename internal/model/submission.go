package model

import (
	"time"

	"github.com/mixparty/backend/internal/dto"
	"gorm.io/gorm"
)

type Song struct {
	Title       string `gorm:"not null"`
	Artist      string `gorm:"not null"`
	Album       string
	AlbumArt    string
	DurationMS  int
	ReleaseDate string
	Explicit    bool

	SpotifyID    string `gorm:"index"`
	SpotifyURI   string
	AppleMusicID string
	TidalID      string

	SpotifyURL    string
	AppleMusicURL string
	TidalURL      string
	SonglinkURL   string

	OnSpotify    bool
	OnAppleMusic bool
	OnTidal      bool
}

// Submission is a song entered into a party. Upvotes and Downvotes are a
// derived projection rebuilt from the vote ledger on every vote submission;
// they are never the source of truth.
type Submission struct {
	ID            uint          `gorm:"primarykey"`
	PartyID       uint          `gorm:"not null;index"`
	SubmitterID   string        `gorm:"not null;index"`
	SubmitterKind dto.VoterKind `gorm:"not null"`
	SubmitterName string
	Song          Song `gorm:"embedded;embeddedPrefix:song_"`
	Upvotes       int  `gorm:"not null;default:0"`
	Downvotes     int  `gorm:"not null;default:0"`
	SubmittedAt   time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
