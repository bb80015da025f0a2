package models

import (
	"database/sql/driver"
)

// Match types
const (
	MatchTypeODI        = "ODI"
	MatchTypeT20        = "T20"
	MatchTypeCustomized = "CUSTOMIZED"
)

// Match time statuses. A freshly created match may carry none of these:
// the status is only assigned when the scheduled time is at least ten
// minutes away (see services.ResolveMatchTimeStatus).
const (
	StatusNotStarted = "NOT_STARTED"
	StatusUpcoming   = "UPCOMING"
	StatusLive       = "LIVE"
	StatusEnded      = "ENDED"
	StatusCancelled  = "CANCELLED"
)

// PlayerRef is a denormalized (id, username, name) snapshot of a player
// embedded in match sides and team rosters. It is a copy, not a foreign
// key: it goes stale if the player is later renamed.
type PlayerRef struct {
	PlayerID uint   `json:"playerId"`
	UserName string `json:"userName"`
	Name     string `json:"name"`
}

// TeamRef is the team counterpart of PlayerRef.
type TeamRef struct {
	TeamID   uint   `json:"teamId"`
	TeamName string `json:"teamName"`
}

// TeamSide is one side of a match: the team snapshot plus the roster
// picked for this game and its designated captain, vice captain and
// scorer.
type TeamSide struct {
	TeamID         uint        `json:"teamId"`
	TeamName       string      `json:"teamName"`
	Captain        PlayerRef   `json:"captain"`
	ViceCaptain    PlayerRef   `json:"viceCaptain"`
	Scorer         PlayerRef   `json:"scorer"`
	PlayingMembers []PlayerRef `json:"playingMembers"`
}

func (s TeamSide) Value() (driver.Value, error)  { return jsonbValue(s) }
func (s *TeamSide) Scan(value interface{}) error { return jsonbScan(s, value) }

// PlayingMemberIDs returns the roster ids in submission order.
func (s TeamSide) PlayingMemberIDs() []uint {
	ids := make([]uint, 0, len(s.PlayingMembers))
	for _, member := range s.PlayingMembers {
		ids = append(ids, member.PlayerID)
	}
	return ids
}

type Inning struct {
	InningNumber     int     `json:"inningNumber"`
	BattingTeam      TeamRef `json:"battingTeam"`
	BowlingTeam      TeamRef `json:"bowlingTeam"`
	OversPlayed      float64 `json:"oversPlayed"`
	TotalRuns        int     `json:"totalRuns"`
	TotalWickets     int     `json:"totalWickets"`
	Extras           int     `json:"extras"`
	InningsStartedAt string  `json:"inningsStartedAt,omitempty"`
	InningsEndedAt   string  `json:"inningsEndedAt,omitempty"`
}

type Innings []Inning

func (i Innings) Value() (driver.Value, error)  { return jsonbValue(i) }
func (i *Innings) Scan(value interface{}) error { return jsonbScan(i, value) }

type Match struct {
	ID               uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName         string   `gorm:"size:255;not null;index" json:"userName"`
	Venue            string   `gorm:"size:255;not null" json:"venue"`
	MatchType        string   `gorm:"size:20;not null" json:"matchType"`
	Overs            int      `gorm:"not null" json:"overs"`
	MatchDateAndTime string   `gorm:"size:64;not null;index" json:"matchDateAndTime"`
	MatchTimeStatus  string   `gorm:"size:20;index" json:"matchTimeStatus,omitempty"`
	TeamA            TeamSide `gorm:"type:jsonb" json:"teamA"`
	TeamB            TeamSide `gorm:"type:jsonb" json:"teamB"`
	Toss             string   `gorm:"size:255" json:"toss,omitempty"`
	CurrentInning    int      `gorm:"default:1" json:"currentInning"`
	Innings          Innings  `gorm:"type:jsonb" json:"innings,omitempty"`
	WinningTeamID    *uint    `json:"winningTeam,omitempty"`
	WinMargin        string   `gorm:"size:64" json:"winMargin,omitempty"`
	CreatedAt        string   `gorm:"size:64" json:"createdAt"`
	UpdatedAt        string   `gorm:"size:64" json:"updatedAt,omitempty"`
}

func (Match) TableName() string {
	return "matches"
}

// MatchParticipant is one row per (match, player), keyed alongside the
// normalized timestamp so the scheduling-conflict check is a plain
// indexed equality query instead of a scan of the jsonb rosters.
type MatchParticipant struct {
	ID               uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID          uint   `gorm:"not null;index" json:"matchId"`
	PlayerID         uint   `gorm:"not null;index:idx_match_participants_schedule" json:"playerId"`
	MatchDateAndTime string `gorm:"size:64;not null;index:idx_match_participants_schedule" json:"matchDateAndTime"`
}

func (MatchParticipant) TableName() string {
	return "match_participants"
}

// MatchSummary is the denormalized entry fanned out to both teams and
// every participating player when a match is created. Never retracted
// if the match is later cancelled.
type MatchSummary struct {
	MatchID          uint    `json:"matchId"`
	Venue            string  `json:"matchVenue"`
	MatchType        string  `json:"matchType"`
	Overs            int     `json:"matchOvers"`
	MatchTimeStatus  string  `json:"matchTimeStatus,omitempty"`
	MatchDateAndTime string  `json:"matchDateAndTime"`
	TeamA            TeamRef `json:"teamA"`
	TeamB            TeamRef `json:"teamB"`
}

type MatchSummaries []MatchSummary

func (m MatchSummaries) Value() (driver.Value, error)  { return jsonbValue(m) }
func (m *MatchSummaries) Scan(value interface{}) error { return jsonbScan(m, value) }

// TeamSideRequest and CreateMatchRequest double as the field allow-list
// for match submissions: anything outside these fields is dropped at
// bind time.
type TeamSideRequest struct {
	TeamID         uint        `json:"teamId" binding:"required"`
	TeamName       string      `json:"teamName" binding:"required"`
	Captain        PlayerRef   `json:"captain" binding:"required"`
	ViceCaptain    PlayerRef   `json:"viceCaptain" binding:"required"`
	Scorer         PlayerRef   `json:"scorer" binding:"required"`
	PlayingMembers []PlayerRef `json:"playingMembers" binding:"required,min=1"`
}

type CreateMatchRequest struct {
	UserName         string          `json:"userName" binding:"required"`
	Venue            string          `json:"venue" binding:"required"`
	MatchType        string          `json:"matchType" binding:"required,oneof=ODI T20 CUSTOMIZED"`
	Overs            int             `json:"overs" binding:"required"`
	MatchDateAndTime string          `json:"matchDateAndTime" binding:"required"`
	TeamA            TeamSideRequest `json:"teamA" binding:"required"`
	TeamB            TeamSideRequest `json:"teamB" binding:"required"`
}

// MatchListEntry is the status-dependent projection returned by the
// match listing: ENDED adds innings/winner/margin, LIVE adds toss and
// the current inning, everything else stays at the base fields.
type MatchListEntry struct {
	MatchID          uint    `json:"matchId"`
	MatchType        string  `json:"matchType"`
	Overs            int     `json:"overs"`
	Venue            string  `json:"venue"`
	MatchTimeStatus  string  `json:"matchTimeStatus,omitempty"`
	MatchDateAndTime string  `json:"matchDateAndTime"`
	CreatedAt        string  `json:"createdAt"`
	TeamA            TeamRef `json:"teamA"`
	TeamB            TeamRef `json:"teamB"`
	Innings          Innings `json:"innings,omitempty"`
	WinningTeamID    *uint   `json:"winningTeam,omitempty"`
	WinMargin        *string `json:"winMargin,omitempty"`
	Toss             *string `json:"toss,omitempty"`
	CurrentInning    *int    `json:"currentInning,omitempty"`
}
