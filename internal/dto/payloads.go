package dto

import (
	"time"

	"github.com/mixparty/backend/voting"
)

type CreatePartyRequest struct {
	Name        string                `json:"name"`
	Theme       string                `json:"theme"`
	Description string                `json:"description"`
	Deadline    time.Time             `json:"deadline"`
	Timezone    string                `json:"timezone"`
	Settings    *PartySettingsRequest `json:"settings"`
}

// PartySettingsRequest uses pointers so omitted fields fall back to the
// party defaults instead of zero values.
type PartySettingsRequest struct {
	MaxSongsPerUser      *int    `json:"maxSongsPerUser"`
	MinSongsToReveal     *int    `json:"minSongsToReveal"`
	AllowAnonymous       *bool   `json:"allowAnonymous"`
	AllowLateSubmissions *bool   `json:"allowLateSubmissions"`
	ShowSubmitters       *bool   `json:"showSubmitters"`
	VotingEnabled        *bool   `json:"votingEnabled"`
	VotingMode           *string `json:"votingSystem"`
	IsPublic             *bool   `json:"isPublic"`
}

// UpdatePartyRequest is a partial edit; nil fields are left unchanged.
type UpdatePartyRequest struct {
	Name        *string               `json:"name"`
	Theme       *string               `json:"theme"`
	Description *string               `json:"description"`
	Deadline    *time.Time            `json:"deadline"`
	Settings    *PartySettingsRequest `json:"settings"`
}

type CreatePartyResponse struct {
	PartyID  uint   `json:"partyId"`
	Code     string `json:"code"`
	Name     string `json:"name"`
	ShareURL string `json:"shareUrl"`
}

type JoinPartyRequest struct {
	Code string `json:"code"`
}

type JoinPartyResponse struct {
	PartyID        uint   `json:"partyId"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Theme          string `json:"theme"`
	AllowAnonymous bool   `json:"allowAnonymous"`
	RequiresAuth   bool   `json:"requiresAuth"`
}

type CreateGuestRequest struct {
	PartyID     uint   `json:"partyId"`
	DisplayName string `json:"displayName"`
}

type CreateGuestResponse struct {
	Token       string `json:"token"`
	GuestID     string `json:"userId"`
	DisplayName string `json:"displayName"`
}

type SongData struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album"`
	AlbumArt    string `json:"albumArt"`
	DurationMS  int    `json:"duration"`
	ReleaseDate string `json:"releaseDate"`
	Explicit    bool   `json:"explicit"`

	SpotifyID    string `json:"spotifyId"`
	SpotifyURI   string `json:"spotifyUri"`
	AppleMusicID string `json:"appleMusicId"`
	TidalID      string `json:"tidalId"`

	SpotifyURL    string `json:"spotifyUrl"`
	AppleMusicURL string `json:"appleMusicUrl"`
	TidalURL      string `json:"tidalUrl"`
	SonglinkURL   string `json:"songlinkUrl"`

	OnSpotify    bool `json:"onSpotify"`
	OnAppleMusic bool `json:"onAppleMusic"`
	OnTidal      bool `json:"onTidal"`
}

type SubmitSongRequest struct {
	Song      *SongData `json:"songData"`
	UserToken string    `json:"userToken"`
}

type SubmitSongResponse struct {
	SubmissionID        uint `json:"submissionId"`
	UserSubmissionCount int  `json:"userSubmissionCount"`
}

type SubmissionResponse struct {
	ID            uint      `json:"id"`
	Song          SongData  `json:"songData"`
	Upvotes       int       `json:"upvotes"`
	Downvotes     int       `json:"downvotes"`
	SubmittedAt   time.Time `json:"submittedAt"`
	SubmitterName string    `json:"submitterName,omitempty"`
}

type SubmitVotesRequest struct {
	Votes     voting.VoteSet `json:"votes"`
	UserToken string         `json:"userToken"`
}

type SubmitVotesResponse struct {
	VotesSubmitted int `json:"votesSubmitted"`
	TotalUpvotes   int `json:"totalUpvotes"`
	TotalDownvotes int `json:"totalDownvotes"`
	MaxUpvotes     int `json:"maxUpvotes"`
	MaxDownvotes   int `json:"maxDownvotes"`
}

type GetVotesResponse struct {
	Votes  voting.VoteSet `json:"votes"`
	Budget voting.Budget  `json:"budget"`
}
