package postgres

import (
	"database/sql"
	"time"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
)

type competitionTableModel struct {
	ID           int64  `db:"id,readonly"`
	CID          int64  `db:"cid"`
	Title        string `db:"title"`
	Abbr         string `db:"abbr"`
	Season       string `db:"season"`
	TotalMatches int    `db:"total_matches"`
	TotalTeams   int    `db:"total_teams"`
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:           m.ID,
		CID:          m.CID,
		Title:        m.Title,
		Abbr:         m.Abbr,
		Season:       m.Season,
		TotalMatches: m.TotalMatches,
		TotalTeams:   m.TotalTeams,
	}
}

func competitionModelFromDomain(c competition.Competition) competitionTableModel {
	return competitionTableModel{
		CID:          c.CID,
		Title:        c.Title,
		Abbr:         c.Abbr,
		Season:       c.Season,
		TotalMatches: c.TotalMatches,
		TotalTeams:   c.TotalTeams,
	}
}

type venueTableModel struct {
	ID       int64  `db:"id,readonly"`
	VenueID  string `db:"venue_id"`
	Name     string `db:"name"`
	Location string `db:"location"`
	Country  string `db:"country"`
	Timezone string `db:"timezone"`
}

func (m venueTableModel) toDomain() venue.Venue {
	return venue.Venue{
		ID:       m.ID,
		VenueID:  m.VenueID,
		Name:     m.Name,
		Location: m.Location,
		Country:  m.Country,
		Timezone: m.Timezone,
	}
}

func venueModelFromDomain(v venue.Venue) venueTableModel {
	return venueTableModel{
		VenueID:  v.VenueID,
		Name:     v.Name,
		Location: v.Location,
		Country:  v.Country,
		Timezone: v.Timezone,
	}
}

type matchTableModel struct {
	ID                 int64         `db:"id,readonly"`
	MatchID            int64         `db:"match_id"`
	CompetitionID      int64         `db:"competition_id"`
	VenueID            int64         `db:"venue_id"`
	Title              string        `db:"title"`
	ShortTitle         string        `db:"short_title"`
	Subtitle           string        `db:"subtitle"`
	MatchNumber        string        `db:"match_number"`
	Format             int           `db:"format"`
	FormatStr          string        `db:"format_str"`
	Status             int           `db:"status"`
	StatusStr          string        `db:"status_str"`
	StatusNote         string        `db:"status_note"`
	DateStart          time.Time     `db:"date_start"`
	DateEnd            time.Time     `db:"date_end"`
	DateStartIST       time.Time     `db:"date_start_ist"`
	DateEndIST         time.Time     `db:"date_end_ist"`
	TimestampStart     int64         `db:"timestamp_start"`
	TimestampEnd       int64         `db:"timestamp_end"`
	TeamAID            int64         `db:"team_a_id"`
	TeamAScoresFull    string        `db:"team_a_scores_full"`
	TeamAScores        string        `db:"team_a_scores"`
	TeamAOvers         string        `db:"team_a_overs"`
	TeamBID            int64         `db:"team_b_id"`
	TeamBScoresFull    string        `db:"team_b_scores_full"`
	TeamBScores        string        `db:"team_b_scores"`
	TeamBOvers         string        `db:"team_b_overs"`
	Result             string        `db:"result"`
	ResultType         int           `db:"result_type"`
	WinMargin          string        `db:"win_margin"`
	WinningTeamID      sql.NullInt64 `db:"winning_team_id"`
	TossText           string        `db:"toss_text"`
	TossWinnerID       sql.NullInt64 `db:"toss_winner_id"`
	TossDecision       int           `db:"toss_decision"`
	Umpires            string        `db:"umpires"`
	Referee            string        `db:"referee"`
	HasCommentary      bool          `db:"has_commentary"`
	HasWagon           bool          `db:"has_wagon"`
	LatestInningNumber int           `db:"latest_inning_number"`
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:                 m.ID,
		MatchID:            m.MatchID,
		CompetitionID:      m.CompetitionID,
		VenueID:            m.VenueID,
		Title:              m.Title,
		ShortTitle:         m.ShortTitle,
		Subtitle:           m.Subtitle,
		MatchNumber:        m.MatchNumber,
		Format:             m.Format,
		FormatStr:          m.FormatStr,
		Status:             m.Status,
		StatusStr:          m.StatusStr,
		StatusNote:         m.StatusNote,
		DateStart:          m.DateStart,
		DateEnd:            m.DateEnd,
		DateStartIST:       m.DateStartIST,
		DateEndIST:         m.DateEndIST,
		TimestampStart:     m.TimestampStart,
		TimestampEnd:       m.TimestampEnd,
		TeamAID:            m.TeamAID,
		TeamAScoresFull:    m.TeamAScoresFull,
		TeamAScores:        m.TeamAScores,
		TeamAOvers:         m.TeamAOvers,
		TeamBID:            m.TeamBID,
		TeamBScoresFull:    m.TeamBScoresFull,
		TeamBScores:        m.TeamBScores,
		TeamBOvers:         m.TeamBOvers,
		Result:             m.Result,
		ResultType:         m.ResultType,
		WinMargin:          m.WinMargin,
		WinningTeamID:      int64Ptr(m.WinningTeamID),
		TossText:           m.TossText,
		TossWinnerID:       int64Ptr(m.TossWinnerID),
		TossDecision:       m.TossDecision,
		Umpires:            m.Umpires,
		Referee:            m.Referee,
		HasCommentary:      m.HasCommentary,
		HasWagon:           m.HasWagon,
		LatestInningNumber: m.LatestInningNumber,
	}
}

func matchModelFromDomain(m match.Match) matchTableModel {
	return matchTableModel{
		MatchID:            m.MatchID,
		CompetitionID:      m.CompetitionID,
		VenueID:            m.VenueID,
		Title:              m.Title,
		ShortTitle:         m.ShortTitle,
		Subtitle:           m.Subtitle,
		MatchNumber:        m.MatchNumber,
		Format:             m.Format,
		FormatStr:          m.FormatStr,
		Status:             m.Status,
		StatusStr:          m.StatusStr,
		StatusNote:         m.StatusNote,
		DateStart:          m.DateStart.UTC(),
		DateEnd:            m.DateEnd.UTC(),
		DateStartIST:       m.DateStartIST.UTC(),
		DateEndIST:         m.DateEndIST.UTC(),
		TimestampStart:     m.TimestampStart,
		TimestampEnd:       m.TimestampEnd,
		TeamAID:            m.TeamAID,
		TeamAScoresFull:    m.TeamAScoresFull,
		TeamAScores:        m.TeamAScores,
		TeamAOvers:         m.TeamAOvers,
		TeamBID:            m.TeamBID,
		TeamBScoresFull:    m.TeamBScoresFull,
		TeamBScores:        m.TeamBScores,
		TeamBOvers:         m.TeamBOvers,
		Result:             m.Result,
		ResultType:         m.ResultType,
		WinMargin:          m.WinMargin,
		WinningTeamID:      nullInt64(m.WinningTeamID),
		TossText:           m.TossText,
		TossWinnerID:       nullInt64(m.TossWinnerID),
		TossDecision:       m.TossDecision,
		Umpires:            m.Umpires,
		Referee:            m.Referee,
		HasCommentary:      m.HasCommentary,
		HasWagon:           m.HasWagon,
		LatestInningNumber: m.LatestInningNumber,
	}
}
