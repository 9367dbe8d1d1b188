package model

import (
	"time"

	"github.com/mixparty/backend/internal/dto"
	"github.com/mixparty/backend/voting"
)

// Vote is one ledger row: how many votes of one type a voter put on one
// submission. The compound unique index enforces at most one row per
// (party, submission, voter, kind, type); rows are only ever written by
// replacing a voter's full set.
type Vote struct {
	ID           uint            `gorm:"primarykey"`
	PartyID      uint            `gorm:"not null;index;uniqueIndex:idx_votes_identity"`
	SubmissionID uint            `gorm:"not null;index;uniqueIndex:idx_votes_identity"`
	VoterID      string          `gorm:"not null;uniqueIndex:idx_votes_identity"`
	VoterKind    dto.VoterKind   `gorm:"not null;uniqueIndex:idx_votes_identity"`
	VoteType     voting.VoteType `gorm:"not null;uniqueIndex:idx_votes_identity"`
	Count        int             `gorm:"not null;default:1"`
	CreatedAt    time.Time
}
