package model

import (
	"time"

	"github.com/mixparty/backend/internal/dto"
)

type Participant struct {
	ID        uint          `gorm:"primarykey"`
	PartyID   uint          `gorm:"not null;uniqueIndex:idx_participants_party_voter"`
	VoterID   string        `gorm:"not null;uniqueIndex:idx_participants_party_voter"`
	VoterKind dto.VoterKind `gorm:"not null;uniqueIndex:idx_participants_party_voter"`
	JoinedAt  time.Time
}
