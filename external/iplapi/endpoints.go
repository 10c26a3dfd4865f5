package iplapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

type ListTeamsInput struct {
	Search string
	Page   int
	Limit  int
}

type ListPlayersInput struct {
	Search string
	Role   string
	TeamID int64
	Page   int
	Limit  int
}

type ListMatchesInput struct {
	TeamID  int64
	VenueID int64
	Status  *int
	Page    int
	Limit   int
}

type WagonWheelInput struct {
	InningsNumber int
	BatsmanID     int64
}

type CommentaryInput struct {
	InningsNumber int
	Over          *int
	// Events is any combination of wicket, six and four.
	Events []string
	Page   int
	Limit  int
}

// Health reports database reachability. An unhealthy server answers 503 with a regular payload.
func (c *Client) Health(ctx context.Context) (Health, error) {
	out, _, err := get[Health](ctx, c, "/v1/health", nil, http.StatusServiceUnavailable)
	return out, err
}

func (c *Client) ListTeams(ctx context.Context, in ListTeamsInput) (Page[TeamSummary], error) {
	return getPage[TeamSummary](ctx, c, "/v1/teams", Params{}.
		String("search", in.Search).
		Int("page", in.Page).
		Int("limit", in.Limit))
}

func (c *Client) GetTeam(ctx context.Context, teamID int64) (TeamDetail, error) {
	out, _, err := get[TeamDetail](ctx, c, idPath("/v1/teams", teamID, ""), nil)
	return out, err
}

func (c *Client) ListTeamPlayers(ctx context.Context, teamID int64) ([]TeamPlayer, error) {
	out, _, err := get[[]TeamPlayer](ctx, c, idPath("/v1/teams", teamID, "/players"), nil)
	return out, err
}

func (c *Client) ListTeamMatches(ctx context.Context, teamID int64, page, limit int) (Page[Match], error) {
	return getPage[Match](ctx, c, idPath("/v1/teams", teamID, "/matches"), Params{}.
		Int("page", page).
		Int("limit", limit))
}

func (c *Client) ListPlayers(ctx context.Context, in ListPlayersInput) (Page[PlayerSummary], error) {
	return getPage[PlayerSummary](ctx, c, "/v1/players", Params{}.
		String("search", in.Search).
		String("role", in.Role).
		Int64("teamId", in.TeamID).
		Int("page", in.Page).
		Int("limit", in.Limit))
}

func (c *Client) TopBatsmen(ctx context.Context, sortBy string, limit int) ([]BattingRanking, error) {
	out, _, err := get[[]BattingRanking](ctx, c, "/v1/players/top/batsmen", Params{}.
		String("sortBy", sortBy).
		Int("limit", limit))
	return out, err
}

func (c *Client) TopBowlers(ctx context.Context, sortBy string, limit int) ([]BowlingRanking, error) {
	out, _, err := get[[]BowlingRanking](ctx, c, "/v1/players/top/bowlers", Params{}.
		String("sortBy", sortBy).
		Int("limit", limit))
	return out, err
}

func (c *Client) GetPlayer(ctx context.Context, playerID int64) (PlayerDetail, error) {
	out, _, err := get[PlayerDetail](ctx, c, idPath("/v1/players", playerID, ""), nil)
	return out, err
}

func (c *Client) PlayerBatting(ctx context.Context, playerID int64) ([]PlayerBattingInnings, error) {
	out, _, err := get[[]PlayerBattingInnings](ctx, c, idPath("/v1/players", playerID, "/batting"), nil)
	return out, err
}

func (c *Client) PlayerBowling(ctx context.Context, playerID int64) ([]PlayerBowlingInnings, error) {
	out, _, err := get[[]PlayerBowlingInnings](ctx, c, idPath("/v1/players", playerID, "/bowling"), nil)
	return out, err
}

func (c *Client) ListMatches(ctx context.Context, in ListMatchesInput) (Page[Match], error) {
	return getPage[Match](ctx, c, "/v1/matches", Params{}.
		Int64("teamId", in.TeamID).
		Int64("venueId", in.VenueID).
		OptionalInt("status", in.Status).
		Int("page", in.Page).
		Int("limit", in.Limit))
}

func (c *Client) RecentMatches(ctx context.Context, limit int) ([]Match, error) {
	out, _, err := get[[]Match](ctx, c, "/v1/matches/recent", Params{}.Int("limit", limit))
	return out, err
}

func (c *Client) Venues(ctx context.Context) ([]VenueUsage, error) {
	out, _, err := get[[]VenueUsage](ctx, c, "/v1/matches/venues", nil)
	return out, err
}

func (c *Client) GetMatch(ctx context.Context, matchID int64) (MatchDetail, error) {
	out, _, err := get[MatchDetail](ctx, c, idPath("/v1/matches", matchID, ""), nil)
	return out, err
}

func (c *Client) Scorecard(ctx context.Context, matchID int64) (MatchDetail, error) {
	out, _, err := get[MatchDetail](ctx, c, idPath("/v1/matches", matchID, "/scorecard"), nil)
	return out, err
}

func (c *Client) WagonWheel(ctx context.Context, matchID int64, in WagonWheelInput) (WagonWheel, error) {
	out, _, err := get[WagonWheel](ctx, c, idPath("/v1/matches", matchID, "/wagon-wheel"), Params{}.
		Int("inningsNumber", in.InningsNumber).
		Int64("batsmanId", in.BatsmanID))
	return out, err
}

func (c *Client) Commentary(ctx context.Context, matchID int64, in CommentaryInput) (MatchCommentary, error) {
	out, pagination, err := get[MatchCommentary](ctx, c, idPath("/v1/matches", matchID, "/commentary"), Params{}.
		Int("inningsNumber", in.InningsNumber).
		OptionalInt("over", in.Over).
		String("events", strings.Join(in.Events, ",")).
		Int("page", in.Page).
		Int("limit", in.Limit))
	if err != nil {
		return MatchCommentary{}, err
	}
	if pagination != nil {
		out.Pagination = *pagination
	}
	return out, nil
}

func (c *Client) Highlights(ctx context.Context, matchID int64) (MatchHighlights, error) {
	out, _, err := get[MatchHighlights](ctx, c, idPath("/v1/matches", matchID, "/highlights"), nil)
	return out, err
}

// Standings returns the points table; roundID 0 selects the latest round.
func (c *Client) Standings(ctx context.Context, roundID int64) ([]StandingRow, error) {
	out, _, err := get[[]StandingRow](ctx, c, "/v1/standings", Params{}.Int64("roundId", roundID))
	return out, err
}

func (c *Client) Rounds(ctx context.Context) ([]Round, error) {
	out, _, err := get[[]Round](ctx, c, "/v1/standings/rounds", nil)
	return out, err
}

func (c *Client) TeamStanding(ctx context.Context, teamID int64) (StandingRow, error) {
	out, _, err := get[StandingRow](ctx, c, idPath("/v1/standings/team", teamID, ""), nil)
	return out, err
}

func (c *Client) StatsOverview(ctx context.Context) (StatsOverview, error) {
	out, _, err := get[StatsOverview](ctx, c, "/v1/stats/overview", nil)
	return out, err
}

func (c *Client) BattingStats(ctx context.Context, statType string, limit int) ([]BattingRanking, error) {
	out, _, err := get[[]BattingRanking](ctx, c, "/v1/stats/batting", Params{}.
		String("type", statType).
		Int("limit", limit))
	return out, err
}

func (c *Client) BowlingStats(ctx context.Context, statType string, limit int) ([]BowlingRanking, error) {
	out, _, err := get[[]BowlingRanking](ctx, c, "/v1/stats/bowling", Params{}.
		String("type", statType).
		Int("limit", limit))
	return out, err
}

func (c *Client) TeamPerformance(ctx context.Context) ([]TeamPerformance, error) {
	out, _, err := get[[]TeamPerformance](ctx, c, "/v1/stats/team-performance", nil)
	return out, err
}

func (c *Client) RunsPerMatch(ctx context.Context) ([]MatchRuns, error) {
	out, _, err := get[[]MatchRuns](ctx, c, "/v1/stats/runs-per-match", nil)
	return out, err
}

func (c *Client) TopScorersByTeam(ctx context.Context) ([]TeamTopScorer, error) {
	out, _, err := get[[]TeamTopScorer](ctx, c, "/v1/stats/top-scorers-by-team", nil)
	return out, err
}

func (c *Client) BettingOverview(ctx context.Context) (BettingOverview, error) {
	out, _, err := get[BettingOverview](ctx, c, "/v1/betting/overview", nil)
	return out, err
}

func (c *Client) BettingTeams(ctx context.Context) ([]BettingTeam, error) {
	out, _, err := get[[]BettingTeam](ctx, c, "/v1/betting/teams", nil)
	return out, err
}

func (c *Client) BettingTeam(ctx context.Context, abbr string) (BettingTeam, error) {
	out, _, err := get[BettingTeam](ctx, c, "/v1/betting/teams/"+url.PathEscape(strings.TrimSpace(abbr)), nil)
	return out, err
}

func (c *Client) BettingPlayers(ctx context.Context, limit int) ([]BettingPlayer, error) {
	out, _, err := get[[]BettingPlayer](ctx, c, "/v1/betting/players", Params{}.Int("limit", limit))
	return out, err
}

func (c *Client) BettingScenarios(ctx context.Context) ([]Scenario, error) {
	out, _, err := get[[]Scenario](ctx, c, "/v1/betting/scenarios", nil)
	return out, err
}

func (c *Client) RiskAssessment(ctx context.Context) (RiskAssessment, error) {
	out, _, err := get[RiskAssessment](ctx, c, "/v1/betting/risk-assessment", nil)
	return out, err
}

func (c *Client) PredictMatch(ctx context.Context, teamA, teamB, battingFirst string) (Prediction, error) {
	out, _, err := get[Prediction](ctx, c, "/v1/betting/match-predictor", Params{}.
		String("teamA", teamA).
		String("teamB", teamB).
		String("battingFirst", battingFirst))
	return out, err
}

func getPage[T any](ctx context.Context, c *Client, path string, params Params) (Page[T], error) {
	items, pagination, err := get[[]T](ctx, c, path, params)
	if err != nil {
		return Page[T]{}, err
	}
	out := Page[T]{Items: items}
	if pagination != nil {
		out.Pagination = *pagination
	}
	return out, nil
}
