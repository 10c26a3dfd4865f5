package player

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Playing roles as published by the data provider.
const (
	RoleBatsman      = "bat"
	RoleBowler       = "bowl"
	RoleAllRounder   = "all"
	RoleWicketKeeper = "wk"
)

// Player is a cricketer registered in a squad. PID is the provider id.
type Player struct {
	ID               int64
	PID              int64
	Title            string
	ShortName        string
	FirstName        string
	LastName         string
	Birthdate        string
	Birthplace       string
	Country          string
	PlayingRole      string
	BattingStyle     string
	BowlingStyle     string
	Nationality      string
	TwitterProfile   string
	InstagramProfile string
	FantasyRating    float64
}

func (p Player) Validate() error {
	if p.PID <= 0 {
		return fmt.Errorf("player pid is required")
	}
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("player title is required")
	}

	return nil
}

// DisplayName prefers the short name used on scorecards.
func (p Player) DisplayName() string {
	if name := strings.TrimSpace(p.ShortName); name != "" {
		return name
	}
	return p.Title
}

// Squad links a player to a team for one season.
type Squad struct {
	ID       int64
	TeamID   int64
	PlayerID int64
	Season   string
}

// CareerStats keeps the provider's career breakdown as opaque JSON documents.
type CareerStats struct {
	PlayerID int64
	Batting  json.RawMessage
	Bowling  json.RawMessage
}

type ListFilter struct {
	Search string
	Role   string
	TeamID int64
	Offset int
	Limit  int
}
