package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/health", handler.Health)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /v1/teams/{teamID}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/teams/{teamID}/matches", handler.ListTeamMatches)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	// Literal segments win over {playerID} in ServeMux precedence.
	mux.HandleFunc("GET /v1/players/top/batsmen", handler.ListTopBatsmen)
	mux.HandleFunc("GET /v1/players/top/bowlers", handler.ListTopBowlers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/batting", handler.ListPlayerBatting)
	mux.HandleFunc("GET /v1/players/{playerID}/bowling", handler.ListPlayerBowling)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/recent", handler.ListRecentMatches)
	mux.HandleFunc("GET /v1/matches/venues", handler.ListVenues)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}/scorecard", handler.GetScorecard)
	mux.HandleFunc("GET /v1/matches/{matchID}/wagon-wheel", handler.GetWagonWheel)
	mux.HandleFunc("GET /v1/matches/{matchID}/commentary", handler.GetCommentary)
	mux.HandleFunc("GET /v1/matches/{matchID}/highlights", handler.GetHighlights)
}

func registerStandingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/standings/rounds", handler.ListRounds)
	mux.HandleFunc("GET /v1/standings/team/{teamID}", handler.GetTeamStanding)
}

func registerStatsRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/stats/overview", handler.GetStatsOverview)
	mux.HandleFunc("GET /v1/stats/batting", handler.ListBattingStats)
	mux.HandleFunc("GET /v1/stats/bowling", handler.ListBowlingStats)
	mux.HandleFunc("GET /v1/stats/team-performance", handler.ListTeamPerformance)
	mux.HandleFunc("GET /v1/stats/runs-per-match", handler.ListRunsPerMatch)
	mux.HandleFunc("GET /v1/stats/top-scorers-by-team", handler.ListTopScorersByTeam)
}

func registerBettingRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/betting/overview", handler.GetBettingOverview)
	mux.HandleFunc("GET /v1/betting/teams", handler.ListBettingTeams)
	mux.HandleFunc("GET /v1/betting/teams/{abbr}", handler.GetBettingTeam)
	mux.HandleFunc("GET /v1/betting/players", handler.ListBettingPlayers)
	mux.HandleFunc("GET /v1/betting/scenarios", handler.ListBettingScenarios)
	mux.HandleFunc("GET /v1/betting/risk-assessment", handler.GetRiskAssessment)
	mux.HandleFunc("GET /v1/betting/match-predictor", handler.PredictMatch)
}
