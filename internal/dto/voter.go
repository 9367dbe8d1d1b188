package dto

// VoterKind separates authenticated accounts from party-scoped guests.
type VoterKind string

const (
	VoterAccount VoterKind = "account"
	VoterGuest   VoterKind = "guest"
)

// Voter is a resolved voting identity. Account voters carry their user ID,
// guests the anonymous user ID scoped to one party.
type Voter struct {
	ID          string
	Kind        VoterKind
	DisplayName string
}
