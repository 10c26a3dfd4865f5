package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type listPlayersQuery struct {
	Search string `validate:"max=100"`
	Role   string `validate:"max=50"`
	TeamID int64
	Page   int
	Limit  int
}

type topPlayersQuery struct {
	SortBy string `validate:"max=30"`
	Limit  int
}

type playerSummaryDTO struct {
	playerDTO
	Teams        []teamDTO            `json:"teams"`
	BattingStats *battingAggregateDTO `json:"battingStats"`
	BowlingStats *bowlingAggregateDTO `json:"bowlingStats"`
}

type playerSquadDTO struct {
	ID     int64   `json:"id"`
	Season string  `json:"season"`
	Team   teamDTO `json:"team"`
}

type careerStatsDTO struct {
	Batting json.RawMessage `json:"batting"`
	Bowling json.RawMessage `json:"bowling"`
}

type playerDetailDTO struct {
	playerDTO
	Squads       []playerSquadDTO      `json:"squads"`
	CareerStats  *careerStatsDTO       `json:"careerStats"`
	BattingStats []battingAggregateDTO `json:"battingStats"`
	BowlingStats []bowlingAggregateDTO `json:"bowlingStats"`
}

type playerBattingInningsDTO struct {
	battingLineDTO
	Innings     inningsDTO `json:"innings"`
	Match       matchDTO   `json:"match"`
	BattingTeam teamDTO    `json:"battingTeam"`
}

type playerBowlingInningsDTO struct {
	bowlingLineDTO
	Innings      inningsDTO `json:"innings"`
	Match        matchDTO   `json:"match"`
	FieldingTeam teamDTO    `json:"fieldingTeam"`
}

type battingRankingDTO struct {
	battingAggregateDTO
	Player playerDTO `json:"player"`
	Team   teamDTO   `json:"team"`
}

type bowlingRankingDTO struct {
	bowlingAggregateDTO
	Player playerDTO `json:"player"`
	Team   teamDTO   `json:"team"`
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	q := r.URL.Query()
	teamID, err := queryID(q, "teamId")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	query := listPlayersQuery{
		Search: strings.TrimSpace(q.Get("search")),
		Role:   strings.TrimSpace(q.Get("role")),
		TeamID: teamID,
		Page:   queryInt(q, "page"),
		Limit:  queryInt(q, "limit"),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	page, err := h.playerService.List(ctx, usecase.PlayerListInput{
		Search: query.Search,
		Role:   query.Role,
		TeamID: query.TeamID,
		Page:   query.Page,
		Limit:  query.Limit,
	})
	if err != nil {
		h.fail(ctx, w, "list players failed", err)
		return
	}

	items := mapSlice(page.Items, func(v usecase.PlayerSummary) playerSummaryDTO {
		return playerSummaryDTO{
			playerDTO:    playerToDTO(v.Player),
			Teams:        mapSlice(v.Teams, teamToDTO),
			BattingStats: battingAggregatePtrToDTO(v.Batting),
			BowlingStats: bowlingAggregatePtrToDTO(v.Bowling),
		}
	})
	writePage(ctx, w, items, page.Pagination)
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	detail, err := h.playerService.Get(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "get player failed", err, "player_id", playerID)
		return
	}

	out := playerDetailDTO{
		playerDTO: playerToDTO(detail.Player),
		Squads: mapSlice(detail.Squads, func(v usecase.PlayerSquad) playerSquadDTO {
			return playerSquadDTO{ID: v.Squad.ID, Season: v.Squad.Season, Team: teamToDTO(v.Team)}
		}),
		BattingStats: mapSlice(detail.Batting, battingAggregateToDTO),
		BowlingStats: mapSlice(detail.Bowling, bowlingAggregateToDTO),
	}
	if detail.CareerStats != nil {
		out.CareerStats = &careerStatsDTO{
			Batting: detail.CareerStats.Batting,
			Bowling: detail.CareerStats.Bowling,
		}
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListPlayerBatting(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerBatting")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.Batting(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "list player batting failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, func(v usecase.PlayerBattingInnings) playerBattingInningsDTO {
		return playerBattingInningsDTO{
			battingLineDTO: battingLineToDTO(v.Line),
			Innings:        inningsToDTO(v.Innings),
			Match:          matchToDTO(v.Match),
			BattingTeam:    teamToDTO(v.Team),
		}
	}))
}

func (h *Handler) ListPlayerBowling(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerBowling")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.playerService.Bowling(ctx, playerID)
	if err != nil {
		h.fail(ctx, w, "list player bowling failed", err, "player_id", playerID)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(items, func(v usecase.PlayerBowlingInnings) playerBowlingInningsDTO {
		return playerBowlingInningsDTO{
			bowlingLineDTO: bowlingLineToDTO(v.Line),
			Innings:        inningsToDTO(v.Innings),
			Match:          matchToDTO(v.Match),
			FieldingTeam:   teamToDTO(v.Team),
		}
	}))
}

func (h *Handler) ListTopBatsmen(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBatsmen")
	defer span.End()

	query, err := h.topPlayersQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.playerService.TopBatsmen(ctx, query.SortBy, query.Limit)
	if err != nil {
		h.fail(ctx, w, "list top batsmen failed", err, "sort_by", query.SortBy)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, battingRankingsToDTO(rows))
}

func (h *Handler) ListTopBowlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopBowlers")
	defer span.End()

	query, err := h.topPlayersQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.playerService.TopBowlers(ctx, query.SortBy, query.Limit)
	if err != nil {
		h.fail(ctx, w, "list top bowlers failed", err, "sort_by", query.SortBy)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bowlingRankingsToDTO(rows))
}

func (h *Handler) topPlayersQuery(r *http.Request) (topPlayersQuery, error) {
	q := r.URL.Query()
	query := topPlayersQuery{
		SortBy: strings.TrimSpace(q.Get("sortBy")),
		Limit:  queryInt(q, "limit"),
	}
	return query, h.validateRequest(r.Context(), query)
}

func battingRankingsToDTO(rows []usecase.BattingRanking) []battingRankingDTO {
	return mapSlice(rows, func(v usecase.BattingRanking) battingRankingDTO {
		return battingRankingDTO{
			battingAggregateDTO: battingAggregateToDTO(v.Aggregate),
			Player:              playerToDTO(v.Player),
			Team:                teamToDTO(v.Team),
		}
	})
}

func bowlingRankingsToDTO(rows []usecase.BowlingRanking) []bowlingRankingDTO {
	return mapSlice(rows, func(v usecase.BowlingRanking) bowlingRankingDTO {
		return bowlingRankingDTO{
			bowlingAggregateDTO: bowlingAggregateToDTO(v.Aggregate),
			Player:              playerToDTO(v.Player),
			Team:                teamToDTO(v.Team),
		}
	})
}
