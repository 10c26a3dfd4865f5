package postgres

import (
	"database/sql"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
)

type standingTableModel struct {
	ID              int64           `db:"id,readonly"`
	CompetitionID   int64           `db:"competition_id"`
	TeamID          int64           `db:"team_id"`
	RoundID         int64           `db:"round_id"`
	RoundName       string          `db:"round_name"`
	Played          int             `db:"played"`
	Win             int             `db:"win"`
	Loss            int             `db:"loss"`
	Draw            int             `db:"draw"`
	NR              int             `db:"nr"`
	OverFor         sql.NullFloat64 `db:"over_for"`
	RunFor          sql.NullInt64   `db:"run_for"`
	OverAgainst     sql.NullFloat64 `db:"over_against"`
	RunAgainst      sql.NullInt64   `db:"run_against"`
	NetRunRate      sql.NullFloat64 `db:"net_run_rate"`
	Points          int             `db:"points"`
	LastFiveMatches string          `db:"last_five_matches"`
	LastFiveResults string          `db:"last_five_results"`
	Qualified       bool            `db:"qualified"`
}

func (m standingTableModel) toDomain() standing.Standing {
	return standing.Standing{
		ID:              m.ID,
		CompetitionID:   m.CompetitionID,
		TeamID:          m.TeamID,
		RoundID:         m.RoundID,
		RoundName:       m.RoundName,
		Played:          m.Played,
		Win:             m.Win,
		Loss:            m.Loss,
		Draw:            m.Draw,
		NR:              m.NR,
		OverFor:         float64Ptr(m.OverFor),
		RunFor:          intPtr(m.RunFor),
		OverAgainst:     float64Ptr(m.OverAgainst),
		RunAgainst:      intPtr(m.RunAgainst),
		NetRunRate:      float64Ptr(m.NetRunRate),
		Points:          m.Points,
		LastFiveMatches: m.LastFiveMatches,
		LastFiveResults: m.LastFiveResults,
		Qualified:       m.Qualified,
	}
}

func standingModelFromDomain(s standing.Standing) standingTableModel {
	return standingTableModel{
		CompetitionID:   s.CompetitionID,
		TeamID:          s.TeamID,
		RoundID:         s.RoundID,
		RoundName:       s.RoundName,
		Played:          s.Played,
		Win:             s.Win,
		Loss:            s.Loss,
		Draw:            s.Draw,
		NR:              s.NR,
		OverFor:         nullFloat64(s.OverFor),
		RunFor:          nullIntFromInt(s.RunFor),
		OverAgainst:     nullFloat64(s.OverAgainst),
		RunAgainst:      nullIntFromInt(s.RunAgainst),
		NetRunRate:      nullFloat64(s.NetRunRate),
		Points:          s.Points,
		LastFiveMatches: s.LastFiveMatches,
		LastFiveResults: s.LastFiveResults,
		Qualified:       s.Qualified,
	}
}
