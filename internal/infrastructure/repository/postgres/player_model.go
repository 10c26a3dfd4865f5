package postgres

import (
	"encoding/json"
	"time"

	"github.com/bytedance/sonic"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
)

type playerTableModel struct {
	ID               int64     `db:"id,readonly"`
	PID              int64     `db:"pid"`
	Title            string    `db:"title"`
	ShortName        string    `db:"short_name"`
	FirstName        string    `db:"first_name"`
	LastName         string    `db:"last_name"`
	Birthdate        string    `db:"birthdate"`
	Birthplace       string    `db:"birthplace"`
	Country          string    `db:"country"`
	PlayingRole      string    `db:"playing_role"`
	BattingStyle     string    `db:"batting_style"`
	BowlingStyle     string    `db:"bowling_style"`
	Nationality      string    `db:"nationality"`
	TwitterProfile   string    `db:"twitter_profile"`
	InstagramProfile string    `db:"instagram_profile"`
	FantasyRating    float64   `db:"fantasy_rating"`
	CreatedAt        time.Time `db:"created_at,readonly"`
	UpdatedAt        time.Time `db:"updated_at,readonly"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:               m.ID,
		PID:              m.PID,
		Title:            m.Title,
		ShortName:        m.ShortName,
		FirstName:        m.FirstName,
		LastName:         m.LastName,
		Birthdate:        m.Birthdate,
		Birthplace:       m.Birthplace,
		Country:          m.Country,
		PlayingRole:      m.PlayingRole,
		BattingStyle:     m.BattingStyle,
		BowlingStyle:     m.BowlingStyle,
		Nationality:      m.Nationality,
		TwitterProfile:   m.TwitterProfile,
		InstagramProfile: m.InstagramProfile,
		FantasyRating:    m.FantasyRating,
	}
}

func playerModelFromDomain(p player.Player) playerTableModel {
	return playerTableModel{
		PID:              p.PID,
		Title:            p.Title,
		ShortName:        p.ShortName,
		FirstName:        p.FirstName,
		LastName:         p.LastName,
		Birthdate:        p.Birthdate,
		Birthplace:       p.Birthplace,
		Country:          p.Country,
		PlayingRole:      p.PlayingRole,
		BattingStyle:     p.BattingStyle,
		BowlingStyle:     p.BowlingStyle,
		Nationality:      p.Nationality,
		TwitterProfile:   p.TwitterProfile,
		InstagramProfile: p.InstagramProfile,
		FantasyRating:    p.FantasyRating,
	}
}

type squadTableModel struct {
	ID       int64  `db:"id,readonly"`
	TeamID   int64  `db:"team_id"`
	PlayerID int64  `db:"player_id"`
	Season   string `db:"season"`
}

func (m squadTableModel) toDomain() player.Squad {
	return player.Squad{
		ID:       m.ID,
		TeamID:   m.TeamID,
		PlayerID: m.PlayerID,
		Season:   m.Season,
	}
}

func squadModelFromDomain(s player.Squad) squadTableModel {
	return squadTableModel{
		TeamID:   s.TeamID,
		PlayerID: s.PlayerID,
		Season:   s.Season,
	}
}

// careerStatsTableModel carries JSONB as text; lib/pq would send []byte as bytea.
type careerStatsTableModel struct {
	ID           int64  `db:"id,readonly"`
	PlayerID     int64  `db:"player_id"`
	BattingStats string `db:"batting_stats"`
	BowlingStats string `db:"bowling_stats"`
}

func (m careerStatsTableModel) toDomain() player.CareerStats {
	return player.CareerStats{
		PlayerID: m.PlayerID,
		Batting:  json.RawMessage(m.BattingStats),
		Bowling:  json.RawMessage(m.BowlingStats),
	}
}

func careerStatsModelFromDomain(s player.CareerStats) careerStatsTableModel {
	return careerStatsTableModel{
		PlayerID:     s.PlayerID,
		BattingStats: jsonDocument(s.Batting),
		BowlingStats: jsonDocument(s.Bowling),
	}
}

func jsonDocument(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" || !sonic.Valid(raw) {
		return "{}"
	}
	return string(raw)
}
