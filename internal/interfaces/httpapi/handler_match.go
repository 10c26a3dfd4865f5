package httpapi

import (
	"net/http"
	"strconv"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/commentary"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/wagonwheel"
	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type venueUsageDTO struct {
	venueDTO
	MatchCount int64 `json:"matchCount"`
}

type battingEntryDTO struct {
	battingLineDTO
	Player *playerDTO `json:"player"`
}

type bowlingEntryDTO struct {
	bowlingLineDTO
	Player *playerDTO `json:"player"`
}

type inningsCardDTO struct {
	inningsDTO
	BattingTeam   teamDTO           `json:"battingTeam"`
	FieldingTeam  teamDTO           `json:"fieldingTeam"`
	Batsmen       []battingEntryDTO `json:"batsmen"`
	Bowlers       []bowlingEntryDTO `json:"bowlers"`
	FallOfWickets []fallOfWicketDTO `json:"fallOfWickets"`
}

type matchDetailDTO struct {
	matchDTO
	Innings []inningsCardDTO `json:"innings"`
}

type wagonBatsmanDTO struct {
	PlayerID int64  `json:"playerId"`
	PID      *int64 `json:"pid"`
	Name     string `json:"name"`
	Runs     int    `json:"runs"`
	Balls    int    `json:"balls"`
	Fours    int    `json:"fours"`
	Sixes    int    `json:"sixes"`
}

type shotDTO struct {
	ID         int64   `json:"id"`
	InningsID  int64   `json:"inningsId"`
	Sequence   int     `json:"sequence"`
	BatsmanID  int64   `json:"batsmanId"`
	BowlerID   int64   `json:"bowlerId"`
	Over       float64 `json:"over"`
	BatRun     int     `json:"batRun"`
	TeamRun    int     `json:"teamRun"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	ZoneID     int     `json:"zoneId"`
	ZoneName   string  `json:"zoneName"`
	EventName  string  `json:"eventName"`
	UniqueOver float64 `json:"uniqueOver"`
}

type wagonInningsDTO struct {
	InningsNumber int               `json:"inningsNumber"`
	InningsName   string            `json:"inningsName"`
	BattingTeam   teamDTO           `json:"battingTeam"`
	Batsmen       []wagonBatsmanDTO `json:"batsmen"`
	WagonData     []shotDTO         `json:"wagonData"`
}

type zoneStatDTO struct {
	Runs  int `json:"runs"`
	Balls int `json:"balls"`
	Fours int `json:"fours"`
	Sixes int `json:"sixes"`
}

type wagonWheelDTO struct {
	MatchID    int64                  `json:"matchId"`
	TotalBalls int                    `json:"totalBalls"`
	Innings    []wagonInningsDTO      `json:"innings"`
	ZoneStats  map[string]zoneStatDTO `json:"zoneStats"`
	ZoneNames  []string               `json:"zoneNames"`
}

type commentaryEventDTO struct {
	ID         int64  `json:"id"`
	EventID    string `json:"eventId"`
	InningsID  int64  `json:"inningsId"`
	Event      string `json:"event"`
	BatsmanID  *int64 `json:"batsmanId"`
	BowlerID   *int64 `json:"bowlerId"`
	Over       int    `json:"over"`
	Ball       int    `json:"ball"`
	Commentary string `json:"commentary"`
	Run        int    `json:"run"`
	IsWide     bool   `json:"isWide"`
	IsNoBall   bool   `json:"isNoBall"`
	IsSix      bool   `json:"isSix"`
	IsFour     bool   `json:"isFour"`
	IsWicket   bool   `json:"isWicket"`
}

type inningsTeamsDTO struct {
	inningsDTO
	BattingTeam  teamDTO `json:"battingTeam"`
	FieldingTeam teamDTO `json:"fieldingTeam"`
}

type commentaryGroupDTO struct {
	InningsNumber int                             `json:"inningsNumber"`
	InningsName   string                          `json:"inningsName"`
	BattingTeam   *teamDTO                        `json:"battingTeam"`
	Overs         map[string][]commentaryEventDTO `json:"overs"`
}

type commentaryHighlightsDTO struct {
	Wickets   int `json:"wickets"`
	Sixes     int `json:"sixes"`
	Fours     int `json:"fours"`
	TotalRuns int `json:"totalRuns"`
}

type matchCommentaryDTO struct {
	MatchID          int64                   `json:"matchId"`
	Innings          []inningsTeamsDTO       `json:"innings"`
	Commentaries     []commentaryEventDTO    `json:"commentaries"`
	GroupedByInnings []commentaryGroupDTO    `json:"groupedByInnings"`
	Highlights       commentaryHighlightsDTO `json:"highlights"`
}

type highlightSummaryDTO struct {
	TotalWickets int `json:"totalWickets"`
	TotalSixes   int `json:"totalSixes"`
	TotalFours   int `json:"totalFours"`
}

type matchHighlightsDTO struct {
	MatchID int64                `json:"matchId"`
	Innings []inningsTeamsDTO    `json:"innings"`
	Wickets []commentaryEventDTO `json:"wickets"`
	Sixes   []commentaryEventDTO `json:"sixes"`
	Fours   []commentaryEventDTO `json:"fours"`
	Summary highlightSummaryDTO  `json:"summary"`
}

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	q := r.URL.Query()
	teamID, err := queryID(q, "teamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	venueID, err := queryID(q, "venueId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	status, err := queryOptionalInt(q, "status")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.matchService.List(ctx, usecase.MatchListInput{
		TeamID:  teamID,
		VenueID: venueID,
		Status:  status,
		Page:    queryInt(q, "page"),
		Limit:   queryInt(q, "limit"),
	})
	if err != nil {
		h.fail(ctx, w, "list matches failed", err)
		return
	}

	writePage(ctx, w, matchesToDTO(page.Items), page.Pagination)
}

func (h *Handler) ListRecentMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentMatches")
	defer span.End()

	items, err := h.matchService.Recent(ctx, queryInt(r.URL.Query(), "limit"))
	if err != nil {
		h.fail(ctx, w, "list recent matches failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTO(items))
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	items, err := h.matchService.Venues(ctx)
	if err != nil {
		h.fail(ctx, w, "list venues failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, func(v venue.Usage) venueUsageDTO {
		return venueUsageDTO{venueDTO: venueToDTO(v.Venue), MatchCount: v.MatchCount}
	}))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.matchService.Get(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get match failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailDTO{
		matchDTO: matchToDTO(detail.MatchSummary),
		Innings:  mapSlice(detail.Innings, inningsCardToDTO),
	})
}

func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScorecard")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cards, err := h.matchService.Scorecard(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get scorecard failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(cards, inningsCardToDTO))
}

func (h *Handler) GetWagonWheel(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetWagonWheel")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := r.URL.Query()
	batsmanID, err := queryID(q, "batsmanId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	wheel, err := h.matchService.WagonWheel(ctx, matchID, usecase.WagonWheelInput{
		InningsNumber: queryInt(q, "inningsNumber"),
		BatsmanID:     batsmanID,
	})
	if err != nil {
		h.fail(ctx, w, "get wagon wheel failed", err, "match_id", matchID)
		return
	}

	zones := make(map[string]zoneStatDTO, len(wheel.ZoneStats))
	for name, stat := range wheel.ZoneStats {
		zones[name] = zoneStatDTO{Runs: stat.Runs, Balls: stat.Balls, Fours: stat.Fours, Sixes: stat.Sixes}
	}

	writeSuccess(ctx, w, http.StatusOK, wagonWheelDTO{
		MatchID:    wheel.MatchID,
		TotalBalls: wheel.TotalBalls,
		Innings: mapSlice(wheel.Innings, func(v usecase.WagonInnings) wagonInningsDTO {
			return wagonInningsDTO{
				InningsNumber: v.Number,
				InningsName:   v.Name,
				BattingTeam:   teamToDTO(v.BattingTeam),
				Batsmen: mapSlice(v.Batsmen, func(b usecase.WagonBatsman) wagonBatsmanDTO {
					return wagonBatsmanDTO{
						PlayerID: b.PlayerID,
						PID:      b.PID,
						Name:     b.Name,
						Runs:     b.Runs,
						Balls:    b.Balls,
						Fours:    b.Fours,
						Sixes:    b.Sixes,
					}
				}),
				WagonData: mapSlice(v.Shots, shotToDTO),
			}
		}),
		ZoneStats: zones,
		ZoneNames: wheel.ZoneNames,
	})
}

func (h *Handler) GetCommentary(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCommentary")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	q := r.URL.Query()
	over, err := queryOptionalInt(q, "over")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchService.Commentary(ctx, matchID, usecase.CommentaryInput{
		InningsNumber: queryInt(q, "inningsNumber"),
		Over:          over,
		Flags:         commentary.ParseFlags(q.Get("events")),
		Page:          queryInt(q, "page"),
		Limit:         queryInt(q, "limit"),
	})
	if err != nil {
		h.fail(ctx, w, "get commentary failed", err, "match_id", matchID)
		return
	}

	writePage(ctx, w, matchCommentaryDTO{
		MatchID:      result.MatchID,
		Innings:      mapSlice(result.Innings, inningsTeamsToDTO),
		Commentaries: mapSlice(result.Events, commentaryEventToDTO),
		GroupedByInnings: mapSlice(result.Groups, func(v usecase.CommentaryGroup) commentaryGroupDTO {
			overs := make(map[string][]commentaryEventDTO, len(v.Overs))
			for over, events := range v.Overs {
				overs[strconv.Itoa(over)] = mapSlice(events, commentaryEventToDTO)
			}
			return commentaryGroupDTO{
				InningsNumber: v.InningsNumber,
				InningsName:   v.InningsName,
				BattingTeam:   teamPtrToDTO(v.BattingTeam),
				Overs:         overs,
			}
		}),
		Highlights: commentaryHighlightsDTO{
			Wickets:   result.Highlights.Wickets,
			Sixes:     result.Highlights.Sixes,
			Fours:     result.Highlights.Fours,
			TotalRuns: result.Highlights.TotalRuns,
		},
	}, result.Pagination)
}

func (h *Handler) GetHighlights(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetHighlights")
	defer span.End()

	matchID, err := pathID(r, "matchID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.matchService.Highlights(ctx, matchID)
	if err != nil {
		h.fail(ctx, w, "get highlights failed", err, "match_id", matchID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchHighlightsDTO{
		MatchID: result.MatchID,
		Innings: mapSlice(result.Innings, inningsTeamsToDTO),
		Wickets: mapSlice(result.Wickets, commentaryEventToDTO),
		Sixes:   mapSlice(result.Sixes, commentaryEventToDTO),
		Fours:   mapSlice(result.Fours, commentaryEventToDTO),
		Summary: highlightSummaryDTO{
			TotalWickets: result.Summary.TotalWickets,
			TotalSixes:   result.Summary.TotalSixes,
			TotalFours:   result.Summary.TotalFours,
		},
	})
}

func inningsCardToDTO(v usecase.InningsCard) inningsCardDTO {
	return inningsCardDTO{
		inningsDTO:   inningsToDTO(v.Innings),
		BattingTeam:  teamToDTO(v.BattingTeam),
		FieldingTeam: teamToDTO(v.FieldingTeam),
		Batsmen: mapSlice(v.Batsmen, func(e usecase.BattingEntry) battingEntryDTO {
			return battingEntryDTO{battingLineDTO: battingLineToDTO(e.Line), Player: playerPtrToDTO(e.Player)}
		}),
		Bowlers: mapSlice(v.Bowlers, func(e usecase.BowlingEntry) bowlingEntryDTO {
			return bowlingEntryDTO{bowlingLineDTO: bowlingLineToDTO(e.Line), Player: playerPtrToDTO(e.Player)}
		}),
		FallOfWickets: mapSlice(v.FallOfWickets, fallOfWicketToDTO),
	}
}

func inningsTeamsToDTO(v usecase.InningsTeams) inningsTeamsDTO {
	return inningsTeamsDTO{
		inningsDTO:   inningsToDTO(v.Innings),
		BattingTeam:  teamToDTO(v.BattingTeam),
		FieldingTeam: teamToDTO(v.FieldingTeam),
	}
}

func shotToDTO(v wagonwheel.Shot) shotDTO {
	return shotDTO{
		ID:         v.ID,
		InningsID:  v.InningsID,
		Sequence:   v.Sequence,
		BatsmanID:  v.BatsmanID,
		BowlerID:   v.BowlerID,
		Over:       v.Over,
		BatRun:     v.BatRun,
		TeamRun:    v.TeamRun,
		X:          v.X,
		Y:          v.Y,
		ZoneID:     v.ZoneID,
		ZoneName:   wagonwheel.ZoneLabel(v.ZoneID),
		EventName:  v.EventName,
		UniqueOver: v.UniqueOver,
	}
}

func commentaryEventToDTO(v commentary.Event) commentaryEventDTO {
	return commentaryEventDTO{
		ID:         v.ID,
		EventID:    v.EventID,
		InningsID:  v.InningsID,
		Event:      v.Event,
		BatsmanID:  v.BatsmanID,
		BowlerID:   v.BowlerID,
		Over:       v.Over,
		Ball:       v.Ball,
		Commentary: v.Commentary,
		Run:        v.Run,
		IsWide:     v.IsWide,
		IsNoBall:   v.IsNoBall,
		IsSix:      v.IsSix,
		IsFour:     v.IsFour,
		IsWicket:   v.IsWicket,
	}
}
