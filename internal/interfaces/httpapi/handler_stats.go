package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/sugerdarco/IPL-Data-Platform/internal/usecase"
)

type statsQuery struct {
	Type  string `validate:"max=40"`
	Limit int
}

type highestScoreDTO struct {
	Runs   int    `json:"runs"`
	Balls  int    `json:"balls"`
	Player string `json:"player"`
	Match  string `json:"match"`
}

type bestBowlingDTO struct {
	Wickets int     `json:"wickets"`
	Runs    int     `json:"runs"`
	Overs   float64 `json:"overs"`
	Player  string  `json:"player"`
	Match   string  `json:"match"`
}

type topSixHitterDTO struct {
	Player string `json:"player"`
	Sixes  int64  `json:"sixes"`
}

type statsOverviewDTO struct {
	Tournament   *competitionDTO  `json:"tournament"`
	TotalMatches int64            `json:"totalMatches"`
	TotalTeams   int64            `json:"totalTeams"`
	TotalPlayers int64            `json:"totalPlayers"`
	TotalRuns    int64            `json:"totalRuns"`
	TotalWickets int64            `json:"totalWickets"`
	HighestScore *highestScoreDTO `json:"highestScore"`
	BestBowling  *bestBowlingDTO  `json:"bestBowling"`
	TopSixHitter *topSixHitterDTO `json:"topSixHitter"`
}

type teamPerformanceDTO struct {
	Team          teamDTO  `json:"team"`
	Played        int      `json:"played"`
	Win           int      `json:"win"`
	Loss          int      `json:"loss"`
	Points        int      `json:"points"`
	NetRunRate    *float64 `json:"netRunRate"`
	Qualified     bool     `json:"qualified"`
	WinPercentage float64  `json:"winPercentage"`
}

type matchRunsDTO struct {
	MatchNumber int       `json:"matchNumber"`
	ShortTitle  string    `json:"shortTitle"`
	Date        time.Time `json:"date"`
	TotalRuns   int       `json:"totalRuns"`
	TeamA       string    `json:"teamA"`
	TeamB       string    `json:"teamB"`
}

type topScorerDTO struct {
	Name       string   `json:"name"`
	Runs       int      `json:"runs"`
	Average    *float64 `json:"average"`
	StrikeRate *float64 `json:"strikeRate"`
}

type teamTopScorerDTO struct {
	Team      string       `json:"team"`
	TeamName  string       `json:"teamName"`
	LogoURL   string       `json:"logoUrl"`
	TopScorer topScorerDTO `json:"topScorer"`
}

func (h *Handler) GetStatsOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatsOverview")
	defer span.End()

	overview, err := h.statsService.Overview(ctx)
	if err != nil {
		h.fail(ctx, w, "get stats overview failed", err)
		return
	}

	out := statsOverviewDTO{
		Tournament:   competitionToDTO(overview.Tournament),
		TotalMatches: overview.TotalMatches,
		TotalTeams:   overview.TotalTeams,
		TotalPlayers: overview.TotalPlayers,
		TotalRuns:    overview.TotalRuns,
		TotalWickets: overview.TotalWickets,
	}
	if v := overview.HighestScore; v != nil {
		out.HighestScore = &highestScoreDTO{Runs: v.Runs, Balls: v.Balls, Player: v.Player, Match: v.Match}
	}
	if v := overview.BestBowling; v != nil {
		out.BestBowling = &bestBowlingDTO{Wickets: v.Wickets, Runs: v.Runs, Overs: v.Overs, Player: v.Player, Match: v.Match}
	}
	if v := overview.TopSixHitter; v != nil {
		out.TopSixHitter = &topSixHitterDTO{Player: v.Player, Sixes: v.Sixes}
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListBattingStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBattingStats")
	defer span.End()

	query, err := h.statsQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.Batting(ctx, query.Type, query.Limit)
	if err != nil {
		h.fail(ctx, w, "list batting stats failed", err, "type", query.Type)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, battingRankingsToDTO(rows))
}

func (h *Handler) ListBowlingStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBowlingStats")
	defer span.End()

	query, err := h.statsQuery(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.Bowling(ctx, query.Type, query.Limit)
	if err != nil {
		h.fail(ctx, w, "list bowling stats failed", err, "type", query.Type)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bowlingRankingsToDTO(rows))
}

func (h *Handler) ListTeamPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamPerformance")
	defer span.End()

	rows, err := h.statsService.TeamPerformance(ctx)
	if err != nil {
		h.fail(ctx, w, "list team performance failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, func(v usecase.TeamPerformance) teamPerformanceDTO {
		return teamPerformanceDTO{
			Team:          teamToDTO(v.Team),
			Played:        v.Played,
			Win:           v.Win,
			Loss:          v.Loss,
			Points:        v.Points,
			NetRunRate:    v.NetRunRate,
			Qualified:     v.Qualified,
			WinPercentage: v.WinPercentage,
		}
	}))
}

func (h *Handler) ListRunsPerMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRunsPerMatch")
	defer span.End()

	rows, err := h.statsService.RunsPerMatch(ctx)
	if err != nil {
		h.fail(ctx, w, "list runs per match failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, func(v usecase.MatchRuns) matchRunsDTO {
		return matchRunsDTO{
			MatchNumber: v.MatchNumber,
			ShortTitle:  v.ShortTitle,
			Date:        v.Date,
			TotalRuns:   v.TotalRuns,
			TeamA:       v.TeamA,
			TeamB:       v.TeamB,
		}
	}))
}

func (h *Handler) ListTopScorersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorersByTeam")
	defer span.End()

	rows, err := h.statsService.TopScorersByTeam(ctx)
	if err != nil {
		h.fail(ctx, w, "list top scorers by team failed", err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, mapSlice(rows, func(v usecase.TeamTopScorer) teamTopScorerDTO {
		return teamTopScorerDTO{
			Team:     v.Team,
			TeamName: v.TeamName,
			LogoURL:  v.LogoURL,
			TopScorer: topScorerDTO{
				Name:       v.TopScorer.Name,
				Runs:       v.TopScorer.Runs,
				Average:    v.TopScorer.Average,
				StrikeRate: v.TopScorer.StrikeRate,
			},
		}
	}))
}

func (h *Handler) statsQuery(r *http.Request) (statsQuery, error) {
	q := r.URL.Query()
	query := statsQuery{
		Type:  strings.TrimSpace(q.Get("type")),
		Limit: queryInt(q, "limit"),
	}
	return query, h.validateRequest(r.Context(), query)
}
