package models

import (
	"database/sql/driver"
	"encoding/json"
)

// Ball-by-ball schema. The scoring engine that writes these rows lives
// in a separate service; this backend only owns the table definition.

type Wicket struct {
	IsWicket         bool      `json:"isWicket"`
	Type             string    `json:"type"`
	DismissedBatsman PlayerRef `json:"dismissedBatsman,omitempty"`
}

type Delivery struct {
	BallNumber int       `json:"ballNumber"`
	Batsman    PlayerRef `json:"batsman"`
	Runs       int       `json:"runs"`
	Commentary string    `json:"commentary,omitempty"`
	Extra      string    `json:"extra"`
	Wicket     Wicket    `json:"wicket"`
}

type Deliveries []Delivery

func (d Deliveries) Value() (driver.Value, error)  { return jsonbValue(d) }
func (d *Deliveries) Scan(value interface{}) error { return jsonbScan(d, value) }

type BowlerRef struct {
	PlayerID uint   `json:"playerId"`
	Name     string `json:"name"`
}

func (b BowlerRef) Value() (driver.Value, error)  { return jsonbValue(b) }
func (b *BowlerRef) Scan(value interface{}) error { return jsonbScan(b, value) }

type Over struct {
	ID           uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	MatchID      uint            `gorm:"not null;index" json:"matchId"`
	InningNumber int             `gorm:"not null" json:"inningNumber"`
	OverNumber   int             `gorm:"not null" json:"overNumber"`
	Bowler       BowlerRef       `gorm:"type:jsonb" json:"bowler"`
	Deliveries   Deliveries      `gorm:"type:jsonb" json:"deliveries"`
	History      json.RawMessage `gorm:"type:jsonb" json:"history,omitempty"`
	RedoStack    json.RawMessage `gorm:"type:jsonb" json:"redoStack,omitempty"`
	CreatedAt    string          `gorm:"size:64" json:"createdAt"`
}

func (Over) TableName() string {
	return "overs"
}
