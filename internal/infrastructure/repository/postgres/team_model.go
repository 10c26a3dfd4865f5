package postgres

import (
	"database/sql"
	"time"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
)

type teamTableModel struct {
	ID        int64     `db:"id,readonly"`
	TID       int64     `db:"tid"`
	Title     string    `db:"title"`
	Abbr      string    `db:"abbr"`
	AltName   string    `db:"alt_name"`
	Type      string    `db:"type"`
	ThumbURL  string    `db:"thumb_url"`
	LogoURL   string    `db:"logo_url"`
	Country   string    `db:"country"`
	Sex       string    `db:"sex"`
	CreatedAt time.Time `db:"created_at,readonly"`
	UpdatedAt time.Time `db:"updated_at,readonly"`
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:       m.ID,
		TID:      m.TID,
		Title:    m.Title,
		Abbr:     m.Abbr,
		AltName:  m.AltName,
		Type:     m.Type,
		ThumbURL: m.ThumbURL,
		LogoURL:  m.LogoURL,
		Country:  m.Country,
		Sex:      m.Sex,
	}
}

func teamModelFromDomain(t team.Team) teamTableModel {
	return teamTableModel{
		TID:      t.TID,
		Title:    t.Title,
		Abbr:     t.Abbr,
		AltName:  t.AltName,
		Type:     t.Type,
		ThumbURL: t.ThumbURL,
		LogoURL:  t.LogoURL,
		Country:  t.Country,
		Sex:      t.Sex,
	}
}

type teamStatsTableModel struct {
	ID                      int64          `db:"id,readonly"`
	TeamID                  int64          `db:"team_id"`
	TotalRuns               int            `db:"total_runs"`
	TotalWickets            int            `db:"total_wickets"`
	TotalCenturies          int            `db:"total_centuries"`
	TotalFifties            int            `db:"total_fifties"`
	MatchesWon              int            `db:"matches_won"`
	ExtraRunsConceded       int            `db:"extra_runs_conceded"`
	HighestScore            sql.NullString `db:"highest_score"`
	LowestScore             sql.NullString `db:"lowest_score"`
	HighestWinMarginRuns    sql.NullInt64  `db:"highest_win_margin_runs"`
	LowestWinMarginRuns     sql.NullInt64  `db:"lowest_win_margin_runs"`
	HighestWinMarginWickets sql.NullInt64  `db:"highest_win_margin_wickets"`
	LowestWinMarginWickets  sql.NullInt64  `db:"lowest_win_margin_wickets"`
}

func (m teamStatsTableModel) toDomain() team.Stats {
	return team.Stats{
		TeamID:                  m.TeamID,
		TotalRuns:               m.TotalRuns,
		TotalWickets:            m.TotalWickets,
		TotalCenturies:          m.TotalCenturies,
		TotalFifties:            m.TotalFifties,
		MatchesWon:              m.MatchesWon,
		ExtraRunsConceded:       m.ExtraRunsConceded,
		HighestScore:            stringPtr(m.HighestScore),
		LowestScore:             stringPtr(m.LowestScore),
		HighestWinMarginRuns:    intPtr(m.HighestWinMarginRuns),
		LowestWinMarginRuns:     intPtr(m.LowestWinMarginRuns),
		HighestWinMarginWickets: intPtr(m.HighestWinMarginWickets),
		LowestWinMarginWickets:  intPtr(m.LowestWinMarginWickets),
	}
}

func teamStatsModelFromDomain(s team.Stats) teamStatsTableModel {
	return teamStatsTableModel{
		TeamID:                  s.TeamID,
		TotalRuns:               s.TotalRuns,
		TotalWickets:            s.TotalWickets,
		TotalCenturies:          s.TotalCenturies,
		TotalFifties:            s.TotalFifties,
		MatchesWon:              s.MatchesWon,
		ExtraRunsConceded:       s.ExtraRunsConceded,
		HighestScore:            nullString(s.HighestScore),
		LowestScore:             nullString(s.LowestScore),
		HighestWinMarginRuns:    nullIntFromInt(s.HighestWinMarginRuns),
		LowestWinMarginRuns:     nullIntFromInt(s.LowestWinMarginRuns),
		HighestWinMarginWickets: nullIntFromInt(s.HighestWinMarginWickets),
		LowestWinMarginWickets:  nullIntFromInt(s.LowestWinMarginWickets),
	}
}
