package model

import (
	"time"

	"github.com/mixparty/backend/voting"
)

type PartyStatus string

const (
	PartyStatusCollecting PartyStatus = "collecting"
	PartyStatusRevealed   PartyStatus = "revealed"
	PartyStatusArchived   PartyStatus = "archived"
)

// PartySettings defaults are applied in code before create; a gorm default
// tag would make gorm skip false and zero values on insert, so they could
// never be persisted.
type PartySettings struct {
	MaxSongsPerUser      int         `gorm:"not null"`
	MinSongsToReveal     int         `gorm:"not null"`
	AllowAnonymous       bool        `gorm:"not null"`
	AllowLateSubmissions bool        `gorm:"not null"`
	ShowSubmitters       bool        `gorm:"not null"`
	VotingEnabled        bool        `gorm:"not null"`
	VotingMode           voting.Mode `gorm:"not null;default:upvote"`
	IsPublic             bool        `gorm:"not null"`
}

type Party struct {
	ID               uint   `gorm:"primarykey"`
	Name             string `gorm:"not null"`
	Code             string `gorm:"not null;uniqueIndex"`
	Theme            string
	Description      string
	CreatorID        string        `gorm:"not null;index"`
	Deadline         time.Time     `gorm:"not null"`
	CreatorTimezone  string        `gorm:"not null;default:UTC"`
	Settings         PartySettings `gorm:"embedded;embeddedPrefix:setting_"`
	Status           PartyStatus   `gorm:"not null;default:collecting"`
	TotalSubmissions int           `gorm:"not null;default:0"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
