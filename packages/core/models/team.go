package models

import (
	"database/sql/driver"
)

// TeamMember is a roster entry on the team document: the PlayerRef
// snapshot plus the profile attributes shown on roster screens. The
// member list is the authority for who may be fielded in a match.
type TeamMember struct {
	PlayerID      uint   `json:"playerId"`
	UserName      string `json:"userName"`
	Name          string `json:"name"`
	Age           int    `json:"age,omitempty"`
	Location      string `json:"location,omitempty"`
	RoleAsBatsman string `json:"roleAsBatsman,omitempty"`
	RoleAsBowler  string `json:"roleAsBowler,omitempty"`
}

type TeamMembers []TeamMember

func (t TeamMembers) Value() (driver.Value, error)  { return jsonbValue(t) }
func (t *TeamMembers) Scan(value interface{}) error { return jsonbScan(t, value) }

// Contains reports whether playerID is on the roster.
func (t TeamMembers) Contains(playerID uint) bool {
	for _, member := range t {
		if member.PlayerID == playerID {
			return true
		}
	}
	return false
}

type Team struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName  string         `gorm:"size:255;not null" json:"userName"`
	TeamName  string         `gorm:"size:255;not null" json:"teamName"`
	Location  string         `gorm:"size:255;not null" json:"location"`
	Members   TeamMembers    `gorm:"type:jsonb" json:"members"`
	Matches   MatchSummaries `gorm:"type:jsonb" json:"matches,omitempty"`
	IsActive  bool           `gorm:"default:true" json:"isActive"`
	CreatedAt string         `gorm:"size:64" json:"createdAt"`
	UpdatedAt string         `gorm:"size:64" json:"updatedAt,omitempty"`
}

func (Team) TableName() string {
	return "teams"
}

type CreateTeamRequest struct {
	UserName string       `json:"userName" binding:"required"`
	TeamName string       `json:"teamName" binding:"required"`
	Location string       `json:"location" binding:"required"`
	Members  []TeamMember `json:"members" binding:"required,min=1"`
}

type UpdateTeamRequest struct {
	UserName string       `json:"userName" binding:"required"`
	TeamName string       `json:"teamName" binding:"required"`
	Location string       `json:"location" binding:"required"`
	Members  []TeamMember `json:"members" binding:"required,min=1"`
}

// TeamListItem is the projection used by paginated team listings.
type TeamListItem struct {
	ID        uint   `json:"id"`
	UserName  string `json:"userName"`
	TeamName  string `json:"teamName"`
	Location  string `json:"location"`
	CreatedAt string `json:"createdAt"`
}

type PaginatedTeamsResponse struct {
	Teams          []TeamListItem `json:"teams"`
	TotalTeamCount int64          `json:"totalTeamCount"`
}
