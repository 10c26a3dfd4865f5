package httpapi

import (
	"net/http"
	"strings"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/betting"
)

type predictorQuery struct {
	TeamA        string `validate:"max=10"`
	TeamB        string `validate:"max=10"`
	BattingFirst string `validate:"max=10"`
}

type bettingTeamDTO struct {
	Abbr                string   `json:"abbr"`
	Name                string   `json:"name"`
	WinRate             float64  `json:"winRate"`
	ChasingWinRate      float64  `json:"chasingWinRate"`
	BattingFirstWinRate float64  `json:"battingFirstWinRate"`
	AvgScore            float64  `json:"avgScore"`
	Recommendation      string   `json:"recommendation"`
	Strategy            string   `json:"strategy"`
	RiskLevel           int      `json:"riskLevel"`
	Tips                []string `json:"tips"`
}

type bettingTipDTO struct {
	Type        string  `json:"type"`
	Probability float64 `json:"probability"`
	Risk        string  `json:"risk"`
	Stars       int     `json:"stars"`
}

type bettingPlayerDTO struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Team          string          `json:"team"`
	Role          string          `json:"role"`
	Runs          int             `json:"runs"`
	Average       float64         `json:"average"`
	StrikeRate    float64         `json:"strikeRate"`
	Centuries     int             `json:"centuries"`
	Fifties       int             `json:"fifties"`
	Sixes         int             `json:"sixes"`
	Fours         int             `json:"fours"`
	BigScoreRate  *float64        `json:"bigScoreRate,omitempty"`
	SixesPerMatch *float64        `json:"sixesPerMatch,omitempty"`
	FoursPerMatch *float64        `json:"foursPerMatch,omitempty"`
	NotOuts       *int            `json:"notOuts,omitempty"`
	BettingTips   []bettingTipDTO `json:"bettingTips"`
	Verdict       string          `json:"verdict"`
}

type scenarioDTO struct {
	Scenario       string `json:"scenario"`
	WinProbability *int   `json:"winProbability,omitempty"`
	ExpectedTotal  string `json:"expectedTotal,omitempty"`
	Probability    *int   `json:"probability,omitempty"`
	Recommendation string `json:"recommendation"`
	Confidence     string `json:"confidence"`
	Reasoning      string `json:"reasoning"`
}

type betDTO struct {
	Bet         string  `json:"bet"`
	Probability float64 `json:"probability"`
	Team        string  `json:"team,omitempty"`
	Stars       int     `json:"stars,omitempty"`
	Reason      string  `json:"reason,omitempty"`
}

type riskAssessmentDTO struct {
	SafeBets  []betDTO `json:"safeBets"`
	ValueBets []betDTO `json:"valueBets"`
	AvoidBets []betDTO `json:"avoidBets"`
}

type insightDTO struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Value       string `json:"value"`
	Probability string `json:"probability"`
}

type tournamentStatsDTO struct {
	TotalMatches   int    `json:"totalMatches"`
	TotalCenturies int    `json:"totalCenturies"`
	CenturyRate    string `json:"centuryRate"`
	AvgMatchScore  int    `json:"avgMatchScore"`
	HighestScore   string `json:"highestScore"`
	LowestScore    string `json:"lowestScore"`
}

type bettingOverviewDTO struct {
	TopBets         []betDTO           `json:"topBets"`
	ValueBets       []betDTO           `json:"valueBets"`
	AvoidBets       []betDTO           `json:"avoidBets"`
	KeyInsights     []insightDTO       `json:"keyInsights"`
	TournamentStats tournamentStatsDTO `json:"tournamentStats"`
}

type predictionDTO struct {
	TeamA               bettingTeamDTO `json:"teamA"`
	TeamAWinProbability int            `json:"teamAWinProbability"`
	TeamB               bettingTeamDTO `json:"teamB"`
	TeamBWinProbability int            `json:"teamBWinProbability"`
	Favorite            string         `json:"favorite"`
	FavoriteWinProb     int            `json:"favoriteWinProb"`
	Underdog            string         `json:"underdog"`
	UpsetPotential      string         `json:"upsetPotential"`
	Recommendation      string         `json:"recommendation"`
	Reasoning           string         `json:"reasoning"`
	BettingTips         []string       `json:"bettingTips"`
}

func (h *Handler) GetBettingOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBettingOverview")
	defer span.End()

	v := h.bettingService.Overview(ctx)
	writeSuccess(ctx, w, http.StatusOK, bettingOverviewDTO{
		TopBets:     mapSlice(v.TopBets, betToDTO),
		ValueBets:   mapSlice(v.ValueBets, betToDTO),
		AvoidBets:   mapSlice(v.AvoidBets, betToDTO),
		KeyInsights: mapSlice(v.KeyInsights, insightToDTO),
		TournamentStats: tournamentStatsDTO{
			TotalMatches:   v.TournamentStats.TotalMatches,
			TotalCenturies: v.TournamentStats.TotalCenturies,
			CenturyRate:    v.TournamentStats.CenturyRate,
			AvgMatchScore:  v.TournamentStats.AvgMatchScore,
			HighestScore:   v.TournamentStats.HighestScore,
			LowestScore:    v.TournamentStats.LowestScore,
		},
	})
}

func (h *Handler) ListBettingTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBettingTeams")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, mapSlice(h.bettingService.Teams(ctx), bettingTeamToDTO))
}

func (h *Handler) GetBettingTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetBettingTeam")
	defer span.End()

	abbr := strings.TrimSpace(r.PathValue("abbr"))
	profile, err := h.bettingService.Team(ctx, abbr)
	if err != nil {
		h.fail(ctx, w, "get betting team failed", err, "abbr", abbr)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, bettingTeamToDTO(profile))
}

func (h *Handler) ListBettingPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBettingPlayers")
	defer span.End()

	players := h.bettingService.Players(ctx, queryInt(r.URL.Query(), "limit"))
	writeSuccess(ctx, w, http.StatusOK, mapSlice(players, bettingPlayerToDTO))
}

func (h *Handler) ListBettingScenarios(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListBettingScenarios")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, mapSlice(h.bettingService.Scenarios(ctx), func(v betting.Scenario) scenarioDTO {
		return scenarioDTO{
			Scenario:       v.Scenario,
			WinProbability: v.WinProbability,
			ExpectedTotal:  v.ExpectedTotal,
			Probability:    v.Probability,
			Recommendation: v.Recommendation,
			Confidence:     v.Confidence,
			Reasoning:      v.Reasoning,
		}
	}))
}

func (h *Handler) GetRiskAssessment(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRiskAssessment")
	defer span.End()

	v := h.bettingService.RiskAssessment(ctx)
	writeSuccess(ctx, w, http.StatusOK, riskAssessmentDTO{
		SafeBets:  mapSlice(v.SafeBets, betToDTO),
		ValueBets: mapSlice(v.ValueBets, betToDTO),
		AvoidBets: mapSlice(v.AvoidBets, betToDTO),
	})
}

func (h *Handler) PredictMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.PredictMatch")
	defer span.End()

	q := r.URL.Query()
	query := predictorQuery{
		TeamA:        strings.TrimSpace(q.Get("teamA")),
		TeamB:        strings.TrimSpace(q.Get("teamB")),
		BattingFirst: strings.TrimSpace(q.Get("battingFirst")),
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	prediction, err := h.bettingService.Predict(ctx, query.TeamA, query.TeamB, query.BattingFirst)
	if err != nil {
		h.fail(ctx, w, "predict match failed", err, "team_a", query.TeamA, "team_b", query.TeamB)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, predictionDTO{
		TeamA:               bettingTeamToDTO(prediction.TeamA),
		TeamAWinProbability: prediction.TeamAWinProbability,
		TeamB:               bettingTeamToDTO(prediction.TeamB),
		TeamBWinProbability: prediction.TeamBWinProbability,
		Favorite:            prediction.Favorite,
		FavoriteWinProb:     prediction.FavoriteWinProb,
		Underdog:            prediction.Underdog,
		UpsetPotential:      prediction.UpsetPotential,
		Recommendation:      prediction.Recommendation,
		Reasoning:           prediction.Reasoning,
		BettingTips:         prediction.BettingTips,
	})
}

func bettingTeamToDTO(v betting.TeamProfile) bettingTeamDTO {
	return bettingTeamDTO{
		Abbr:                v.Abbr,
		Name:                v.Name,
		WinRate:             v.WinRate,
		ChasingWinRate:      v.ChasingWinRate,
		BattingFirstWinRate: v.BattingFirstWinRate,
		AvgScore:            v.AvgScore,
		Recommendation:      v.Recommendation,
		Strategy:            v.Strategy,
		RiskLevel:           v.RiskLevel,
		Tips:                v.Tips,
	}
}

func bettingPlayerToDTO(v betting.PlayerBet) bettingPlayerDTO {
	return bettingPlayerDTO{
		ID:            v.ID,
		Name:          v.Name,
		Team:          v.Team,
		Role:          v.Role,
		Runs:          v.Runs,
		Average:       v.Average,
		StrikeRate:    v.StrikeRate,
		Centuries:     v.Centuries,
		Fifties:       v.Fifties,
		Sixes:         v.Sixes,
		Fours:         v.Fours,
		BigScoreRate:  v.BigScoreRate,
		SixesPerMatch: v.SixesPerMatch,
		FoursPerMatch: v.FoursPerMatch,
		NotOuts:       v.NotOuts,
		BettingTips: mapSlice(v.BettingTips, func(t betting.Tip) bettingTipDTO {
			return bettingTipDTO{Type: t.Type, Probability: t.Probability, Risk: t.Risk, Stars: t.Stars}
		}),
		Verdict: v.Verdict,
	}
}

func betToDTO(v betting.Bet) betDTO {
	return betDTO{
		Bet:         v.Bet,
		Probability: v.Probability,
		Team:        v.Team,
		Stars:       v.Stars,
		Reason:      v.Reason,
	}
}

func insightToDTO(v betting.Insight) insightDTO {
	return insightDTO{
		Icon:        v.Icon,
		Title:       v.Title,
		Value:       v.Value,
		Probability: v.Probability,
	}
}
