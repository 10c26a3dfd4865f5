package postgres

import (
	"database/sql"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/scorecard"
)

type inningsTableModel struct {
	ID             int64   `db:"id,readonly"`
	IID            int64   `db:"iid"`
	MatchID        int64   `db:"match_id"`
	Number         int     `db:"number"`
	Name           string  `db:"name"`
	Status         int     `db:"status"`
	IsSuperOver    bool    `db:"is_super_over"`
	Result         int     `db:"result"`
	BattingTeamID  int64   `db:"batting_team_id"`
	FieldingTeamID int64   `db:"fielding_team_id"`
	Scores         string  `db:"scores"`
	ScoresFull     string  `db:"scores_full"`
	Runs           int     `db:"runs"`
	Wickets        int     `db:"wickets"`
	Overs          float64 `db:"overs"`
}

func (m inningsTableModel) toDomain() scorecard.Innings {
	return scorecard.Innings{
		ID:             m.ID,
		IID:            m.IID,
		MatchID:        m.MatchID,
		Number:         m.Number,
		Name:           m.Name,
		Status:         m.Status,
		IsSuperOver:    m.IsSuperOver,
		Result:         m.Result,
		BattingTeamID:  m.BattingTeamID,
		FieldingTeamID: m.FieldingTeamID,
		Scores:         m.Scores,
		ScoresFull:     m.ScoresFull,
		Runs:           m.Runs,
		Wickets:        m.Wickets,
		Overs:          m.Overs,
	}
}

func inningsModelFromDomain(inn scorecard.Innings) inningsTableModel {
	return inningsTableModel{
		IID:            inn.IID,
		MatchID:        inn.MatchID,
		Number:         inn.Number,
		Name:           inn.Name,
		Status:         inn.Status,
		IsSuperOver:    inn.IsSuperOver,
		Result:         inn.Result,
		BattingTeamID:  inn.BattingTeamID,
		FieldingTeamID: inn.FieldingTeamID,
		Scores:         inn.Scores,
		ScoresFull:     inn.ScoresFull,
		Runs:           inn.Runs,
		Wickets:        inn.Wickets,
		Overs:          inn.Overs,
	}
}

type batsmanTableModel struct {
	ID         int64         `db:"id,readonly"`
	InningsID  int64         `db:"innings_id"`
	PlayerID   int64         `db:"player_id"`
	Name       string        `db:"name"`
	Position   int           `db:"position"`
	Runs       int           `db:"runs"`
	BallsFaced int           `db:"balls_faced"`
	Fours      int           `db:"fours"`
	Sixes      int           `db:"sixes"`
	StrikeRate float64       `db:"strike_rate"`
	HowOut     string        `db:"how_out"`
	Dismissal  string        `db:"dismissal"`
	BowlerID   sql.NullInt64 `db:"bowler_id"`
	IsBatting  bool          `db:"is_batting"`
}

func (m batsmanTableModel) toDomain() scorecard.BattingLine {
	return scorecard.BattingLine{
		ID:         m.ID,
		InningsID:  m.InningsID,
		PlayerID:   m.PlayerID,
		Name:       m.Name,
		Position:   m.Position,
		Runs:       m.Runs,
		BallsFaced: m.BallsFaced,
		Fours:      m.Fours,
		Sixes:      m.Sixes,
		StrikeRate: m.StrikeRate,
		HowOut:     m.HowOut,
		Dismissal:  m.Dismissal,
		BowlerID:   int64Ptr(m.BowlerID),
		IsBatting:  m.IsBatting,
	}
}

func batsmanModelFromDomain(l scorecard.BattingLine) batsmanTableModel {
	return batsmanTableModel{
		InningsID:  l.InningsID,
		PlayerID:   l.PlayerID,
		Name:       l.Name,
		Position:   l.Position,
		Runs:       l.Runs,
		BallsFaced: l.BallsFaced,
		Fours:      l.Fours,
		Sixes:      l.Sixes,
		StrikeRate: l.StrikeRate,
		HowOut:     l.HowOut,
		Dismissal:  l.Dismissal,
		BowlerID:   nullInt64(l.BowlerID),
		IsBatting:  l.IsBatting,
	}
}

type bowlerTableModel struct {
	ID           int64         `db:"id,readonly"`
	InningsID    int64         `db:"innings_id"`
	PlayerID     int64         `db:"player_id"`
	Name         string        `db:"name"`
	Overs        float64       `db:"overs"`
	RunsConceded int           `db:"runs_conceded"`
	Wickets      int           `db:"wickets"`
	Maidens      int           `db:"maidens"`
	NoBalls      int           `db:"no_balls"`
	Wides        int           `db:"wides"`
	Economy      float64       `db:"economy"`
	DotBalls     sql.NullInt64 `db:"dot_balls"`
}

func (m bowlerTableModel) toDomain() scorecard.BowlingLine {
	return scorecard.BowlingLine{
		ID:           m.ID,
		InningsID:    m.InningsID,
		PlayerID:     m.PlayerID,
		Name:         m.Name,
		Overs:        m.Overs,
		RunsConceded: m.RunsConceded,
		Wickets:      m.Wickets,
		Maidens:      m.Maidens,
		NoBalls:      m.NoBalls,
		Wides:        m.Wides,
		Economy:      m.Economy,
		DotBalls:     intPtr(m.DotBalls),
	}
}

func bowlerModelFromDomain(l scorecard.BowlingLine) bowlerTableModel {
	return bowlerTableModel{
		InningsID:    l.InningsID,
		PlayerID:     l.PlayerID,
		Name:         l.Name,
		Overs:        l.Overs,
		RunsConceded: l.RunsConceded,
		Wickets:      l.Wickets,
		Maidens:      l.Maidens,
		NoBalls:      l.NoBalls,
		Wides:        l.Wides,
		Economy:      l.Economy,
		DotBalls:     nullIntFromInt(l.DotBalls),
	}
}

type fallOfWicketTableModel struct {
	ID        int64   `db:"id,readonly"`
	InningsID int64   `db:"innings_id"`
	Name      string  `db:"name"`
	Runs      int     `db:"runs"`
	Overs     float64 `db:"overs"`
	Score     string  `db:"score"`
}

func (m fallOfWicketTableModel) toDomain() scorecard.FallOfWicket {
	return scorecard.FallOfWicket{
		ID:        m.ID,
		InningsID: m.InningsID,
		Name:      m.Name,
		Runs:      m.Runs,
		Overs:     m.Overs,
		Score:     m.Score,
	}
}

func fallOfWicketModelFromDomain(f scorecard.FallOfWicket) fallOfWicketTableModel {
	return fallOfWicketTableModel{
		InningsID: f.InningsID,
		Name:      f.Name,
		Runs:      f.Runs,
		Overs:     f.Overs,
		Score:     f.Score,
	}
}
