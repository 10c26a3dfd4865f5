package postgres

import (
	"database/sql"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
)

type battingAggregateTableModel struct {
	ID         int64           `db:"id,readonly"`
	PlayerID   int64           `db:"player_id"`
	TeamID     int64           `db:"team_id"`
	StatType   string          `db:"stat_type"`
	Matches    int             `db:"matches"`
	Innings    int             `db:"innings"`
	Runs       int             `db:"runs"`
	Balls      int             `db:"balls"`
	NotOut     int             `db:"not_out"`
	Highest    sql.NullInt64   `db:"highest"`
	Centuries  int             `db:"centuries"`
	Fifties    int             `db:"fifties"`
	Fours      int             `db:"fours"`
	Sixes      int             `db:"sixes"`
	Catches    int             `db:"catches"`
	Stumpings  int             `db:"stumpings"`
	Average    sql.NullFloat64 `db:"average"`
	StrikeRate sql.NullFloat64 `db:"strike_rate"`
}

func (m battingAggregateTableModel) toDomain() aggregate.Batting {
	return aggregate.Batting{
		ID:         m.ID,
		PlayerID:   m.PlayerID,
		TeamID:     m.TeamID,
		StatType:   m.StatType,
		Matches:    m.Matches,
		Innings:    m.Innings,
		Runs:       m.Runs,
		Balls:      m.Balls,
		NotOut:     m.NotOut,
		Highest:    intPtr(m.Highest),
		Centuries:  m.Centuries,
		Fifties:    m.Fifties,
		Fours:      m.Fours,
		Sixes:      m.Sixes,
		Catches:    m.Catches,
		Stumpings:  m.Stumpings,
		Average:    float64Ptr(m.Average),
		StrikeRate: float64Ptr(m.StrikeRate),
	}
}

func battingAggregateModelFromDomain(a aggregate.Batting) battingAggregateTableModel {
	return battingAggregateTableModel{
		PlayerID:   a.PlayerID,
		TeamID:     a.TeamID,
		StatType:   a.StatType,
		Matches:    a.Matches,
		Innings:    a.Innings,
		Runs:       a.Runs,
		Balls:      a.Balls,
		NotOut:     a.NotOut,
		Highest:    nullIntFromInt(a.Highest),
		Centuries:  a.Centuries,
		Fifties:    a.Fifties,
		Fours:      a.Fours,
		Sixes:      a.Sixes,
		Catches:    a.Catches,
		Stumpings:  a.Stumpings,
		Average:    nullFloat64(a.Average),
		StrikeRate: nullFloat64(a.StrikeRate),
	}
}

type bowlingAggregateTableModel struct {
	ID         int64           `db:"id,readonly"`
	PlayerID   int64           `db:"player_id"`
	TeamID     int64           `db:"team_id"`
	StatType   string          `db:"stat_type"`
	Matches    int             `db:"matches"`
	Overs      float64         `db:"overs"`
	Runs       int             `db:"runs"`
	Wickets    int             `db:"wickets"`
	Maidens    int             `db:"maidens"`
	Average    sql.NullFloat64 `db:"average"`
	Economy    sql.NullFloat64 `db:"economy"`
	StrikeRate sql.NullFloat64 `db:"strike_rate"`
	BestInning string          `db:"best_inning"`
	BestMatch  string          `db:"best_match"`
	Wicket4i   int             `db:"wicket4i"`
	Wicket5i   int             `db:"wicket5i"`
}

func (m bowlingAggregateTableModel) toDomain() aggregate.Bowling {
	return aggregate.Bowling{
		ID:         m.ID,
		PlayerID:   m.PlayerID,
		TeamID:     m.TeamID,
		StatType:   m.StatType,
		Matches:    m.Matches,
		Overs:      m.Overs,
		Runs:       m.Runs,
		Wickets:    m.Wickets,
		Maidens:    m.Maidens,
		Average:    float64Ptr(m.Average),
		Economy:    float64Ptr(m.Economy),
		StrikeRate: float64Ptr(m.StrikeRate),
		BestInning: m.BestInning,
		BestMatch:  m.BestMatch,
		Wicket4i:   m.Wicket4i,
		Wicket5i:   m.Wicket5i,
	}
}

func bowlingAggregateModelFromDomain(a aggregate.Bowling) bowlingAggregateTableModel {
	return bowlingAggregateTableModel{
		PlayerID:   a.PlayerID,
		TeamID:     a.TeamID,
		StatType:   a.StatType,
		Matches:    a.Matches,
		Overs:      a.Overs,
		Runs:       a.Runs,
		Wickets:    a.Wickets,
		Maidens:    a.Maidens,
		Average:    nullFloat64(a.Average),
		Economy:    nullFloat64(a.Economy),
		StrikeRate: nullFloat64(a.StrikeRate),
		BestInning: a.BestInning,
		BestMatch:  a.BestMatch,
		Wicket4i:   a.Wicket4i,
		Wicket5i:   a.Wicket5i,
	}
}
