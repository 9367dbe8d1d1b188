package model

import "time"

// AnonymousUser is a party-scoped guest identity. The token is the guest's
// only credential; DisplayName is unique within one party.
type AnonymousUser struct {
	ID          string `gorm:"primaryKey"`
	Token       string `gorm:"not null;uniqueIndex"`
	DisplayName string `gorm:"not null;uniqueIndex:idx_guests_party_name"`
	PartyID     uint   `gorm:"not null;uniqueIndex:idx_guests_party_name"`
	IPAddress   string `gorm:"not null"`
	UserAgent   string
	CreatedAt   time.Time
}
