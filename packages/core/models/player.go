package models

import (
	"database/sql/driver"
)

// Batting hand and bowling style enums carried on every player profile.
var (
	BatsmanRoles = []string{"RHB", "LHB"}

	BowlerRoles = []string{
		"Right-Arm Fast", "Left-Arm Fast",
		"Right-Arm Fast-Medium", "Left-Arm Fast-Medium",
		"Right-Arm Medium", "Left-Arm Medium",
		"Right-Arm Off-Spinner", "Left-Arm Off-Spinner",
		"Left-Arm Orthodox Spinner", "Right-Arm Orthodox Spinner",
	}
)

type BattingStats struct {
	Matches     int     `json:"matches"`
	Innings     int     `json:"innings"`
	NotOut      int     `json:"notOut"`
	Runs        int     `json:"runs"`
	HighestRuns int     `json:"highestRuns"`
	Average     float64 `json:"avg"`
	StrikeRate  float64 `json:"sr"`
	Thirties    int     `json:"30s"`
	Fifties     int     `json:"50s"`
	Hundreds    int     `json:"100s"`
	Fours       int     `json:"4s"`
	Sixes       int     `json:"6s"`
	Ducks       int     `json:"ducks"`
	Won         int     `json:"won"`
	Loss        int     `json:"loss"`
}

func (b BattingStats) Value() (driver.Value, error)  { return jsonbValue(b) }
func (b *BattingStats) Scan(value interface{}) error { return jsonbScan(b, value) }

type BowlingStats struct {
	Matches     int     `json:"matches"`
	Innings     int     `json:"innings"`
	Overs       float64 `json:"overs"`
	Maidens     int     `json:"maidens"`
	Wickets     int     `json:"wickets"`
	Runs        int     `json:"runs"`
	BestBowling string  `json:"bestBowling"`
	ThreeWicket int     `json:"3wicket"`
	FiveWicket  int     `json:"5wicket"`
	TenWicket   int     `json:"10wicket"`
	Economy     float64 `json:"economy"`
	StrikeRate  float64 `json:"sr"`
	Average     float64 `json:"avg"`
	Wides       int     `json:"wides"`
	NoBalls     int     `json:"noBalls"`
	DotBalls    int     `json:"dotBalls"`
	Fours       int     `json:"4s"`
	Sixes       int     `json:"6s"`
}

func (b BowlingStats) Value() (driver.Value, error)  { return jsonbValue(b) }
func (b *BowlingStats) Scan(value interface{}) error { return jsonbScan(b, value) }

type FieldingStats struct {
	Matches         int `json:"matches"`
	Catches         int `json:"catches"`
	CaughtBehind    int `json:"caughtBehind"`
	RunOut          int `json:"runOut"`
	Stumpings       int `json:"stumpings"`
	AssistedRunOuts int `json:"assistedRunOuts"`
}

func (f FieldingStats) Value() (driver.Value, error)  { return jsonbValue(f) }
func (f *FieldingStats) Scan(value interface{}) error { return jsonbScan(f, value) }

type CaptainStats struct {
	Matches        int     `json:"matches"`
	TossWon        int     `json:"tossWon"`
	MatchesWon     int     `json:"matchesWon"`
	MatchesLost    int     `json:"matchesLost"`
	WinPercentage  float64 `json:"winPercentage"`
	LossPercentage float64 `json:"lossPercentage"`
}

func (c CaptainStats) Value() (driver.Value, error)  { return jsonbValue(c) }
func (c *CaptainStats) Scan(value interface{}) error { return jsonbScan(c, value) }

// TeamPlayedIn is the denormalized team entry carried on a player,
// appended when the player joins a team. Not re-synced on team rename.
type TeamPlayedIn struct {
	TeamID               uint   `json:"teamId"`
	TeamName             string `json:"teamName"`
	MatchesPlayedForTeam int    `json:"matchesPlayedForTeam"`
}

type TeamsPlayedIn []TeamPlayedIn

func (t TeamsPlayedIn) Value() (driver.Value, error)  { return jsonbValue(t) }
func (t *TeamsPlayedIn) Scan(value interface{}) error { return jsonbScan(t, value) }

type Player struct {
	ID                uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName          string         `gorm:"size:255;uniqueIndex;not null" json:"userName"`
	Name              string         `gorm:"size:255;not null" json:"name"`
	Age               int            `gorm:"not null" json:"age"`
	Location          string         `gorm:"size:255;not null" json:"location"`
	RoleAsBatsman     string         `gorm:"size:32;not null;default:RHB" json:"roleAsBatsman"`
	RoleAsBowler      string         `gorm:"size:64;not null;default:'Right-Arm Fast'" json:"roleAsBowler"`
	MatchesPlayed     int            `gorm:"default:0" json:"matchesPlayed"`
	TotalRunsScored   int            `gorm:"default:0" json:"totalRunsScored"`
	TotalWicketsTaken int            `gorm:"default:0" json:"totalWicketsTaken"`
	BattingStats      BattingStats   `gorm:"type:jsonb" json:"battingStats"`
	BowlingStats      BowlingStats   `gorm:"type:jsonb" json:"bowlingStats"`
	FieldingStats     FieldingStats  `gorm:"type:jsonb" json:"fieldingStats"`
	CaptainStats      CaptainStats   `gorm:"type:jsonb" json:"captainRole"`
	TeamsPlayedIn     TeamsPlayedIn  `gorm:"type:jsonb" json:"teamsPlayedIn"`
	Matches           MatchSummaries `gorm:"type:jsonb" json:"matches,omitempty"`
	IsActive          bool           `gorm:"default:true" json:"isActive"`
	CreatedAt         string         `gorm:"size:64" json:"createdAt"`
	UpdatedAt         string         `gorm:"size:64" json:"updatedAt,omitempty"`
}

func (Player) TableName() string {
	return "players"
}

type AddPlayerRequest struct {
	UserName      string `json:"userName" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Age           int    `json:"age" binding:"required"`
	Location      string `json:"location" binding:"required"`
	RoleAsBatsman string `json:"roleAsBatsman" binding:"required,oneof=RHB LHB"`
	RoleAsBowler  string `json:"roleAsBowler" binding:"required"`
}

// PlayerListItem is the projection used by paginated player listings.
type PlayerListItem struct {
	ID            uint   `json:"id"`
	UserName      string `json:"userName"`
	Name          string `json:"name"`
	Age           int    `json:"age"`
	Location      string `json:"location"`
	RoleAsBatsman string `json:"roleAsBatsman"`
	RoleAsBowler  string `json:"roleAsBowler"`
	CreatedAt     string `json:"createdAt"`
}

type PaginatedPlayersResponse struct {
	Players          []PlayerListItem `json:"players"`
	TotalPlayerCount int64            `json:"totalPlayerCount"`
}
