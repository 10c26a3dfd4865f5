package postgres

import (
	"database/sql"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
)

type wagonWheelTableModel struct {
	ID         int64          `db:"id,readonly"`
	MatchID    int64          `db:"match_id"`
	InningsID  int64          `db:"innings_id"`
	Sequence   int            `db:"sequence"`
	BatsmanID  int64          `db:"batsman_id"`
	BowlerID   int64          `db:"bowler_id"`
	Over       float64        `db:"over_ball"`
	BatRun     int            `db:"bat_run"`
	TeamRun    int            `db:"team_run"`
	X          float64        `db:"x_coord"`
	Y          float64        `db:"y_coord"`
	ZoneID     int            `db:"zone_id"`
	ZoneName   sql.NullString `db:"zone_name"`
	EventName  string         `db:"event_name"`
	UniqueOver float64        `db:"unique_over"`
}

func (m wagonWheelTableModel) toDomain() wagonwheel.Shot {
	return wagonwheel.Shot{
		ID:         m.ID,
		MatchID:    m.MatchID,
		InningsID:  m.InningsID,
		Sequence:   m.Sequence,
		BatsmanID:  m.BatsmanID,
		BowlerID:   m.BowlerID,
		Over:       m.Over,
		BatRun:     m.BatRun,
		TeamRun:    m.TeamRun,
		X:          m.X,
		Y:          m.Y,
		ZoneID:     m.ZoneID,
		ZoneName:   stringPtr(m.ZoneName),
		EventName:  m.EventName,
		UniqueOver: m.UniqueOver,
	}
}

func wagonWheelModelFromDomain(s wagonwheel.Shot) wagonWheelTableModel {
	return wagonWheelTableModel{
		MatchID:    s.MatchID,
		InningsID:  s.InningsID,
		Sequence:   s.Sequence,
		BatsmanID:  s.BatsmanID,
		BowlerID:   s.BowlerID,
		Over:       s.Over,
		BatRun:     s.BatRun,
		TeamRun:    s.TeamRun,
		X:          s.X,
		Y:          s.Y,
		ZoneID:     s.ZoneID,
		ZoneName:   nullString(s.ZoneName),
		EventName:  s.EventName,
		UniqueOver: s.UniqueOver,
	}
}

type commentaryTableModel struct {
	ID         int64         `db:"id,readonly"`
	EventID    string        `db:"event_id"`
	MatchID    int64         `db:"match_id"`
	InningsID  int64         `db:"innings_id"`
	Event      string        `db:"event"`
	BatsmanID  sql.NullInt64 `db:"batsman_id"`
	BowlerID   sql.NullInt64 `db:"bowler_id"`
	Over       int           `db:"over_number"`
	Ball       int           `db:"ball"`
	Commentary string        `db:"commentary"`
	Run        int           `db:"run"`
	IsWide     bool          `db:"is_wide"`
	IsNoBall   bool          `db:"is_no_ball"`
	IsSix      bool          `db:"is_six"`
	IsFour     bool          `db:"is_four"`
	IsWicket   bool          `db:"is_wicket"`
}

func (m commentaryTableModel) toDomain() commentary.Event {
	return commentary.Event{
		ID:         m.ID,
		EventID:    m.EventID,
		MatchID:    m.MatchID,
		InningsID:  m.InningsID,
		Event:      m.Event,
		BatsmanID:  int64Ptr(m.BatsmanID),
		BowlerID:   int64Ptr(m.BowlerID),
		Over:       m.Over,
		Ball:       m.Ball,
		Commentary: m.Commentary,
		Run:        m.Run,
		IsWide:     m.IsWide,
		IsNoBall:   m.IsNoBall,
		IsSix:      m.IsSix,
		IsFour:     m.IsFour,
		IsWicket:   m.IsWicket,
	}
}

func commentaryModelFromDomain(e commentary.Event) commentaryTableModel {
	return commentaryTableModel{
		EventID:    e.EventID,
		MatchID:    e.MatchID,
		InningsID:  e.InningsID,
		Event:      e.Event,
		BatsmanID:  nullInt64(e.BatsmanID),
		BowlerID:   nullInt64(e.BowlerID),
		Over:       e.Over,
		Ball:       e.Ball,
		Commentary: e.Commentary,
		Run:        e.Run,
		IsWide:     e.IsWide,
		IsNoBall:   e.IsNoBall,
		IsSix:      e.IsSix,
		IsFour:     e.IsFour,
		IsWicket:   e.IsWicket,
	}
}
