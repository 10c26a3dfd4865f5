package betting

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

var (
	ErrTeamsRequired = errors.New("both teamA and teamB are required")
	ErrUnknownTeam   = errors.New("one or both teams not found")
)

// Teams returns every profile, safest first. Ties keep publication order.
func Teams() []TeamProfile {
	out := append([]TeamProfile(nil), teamProfiles...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RiskLevel < out[j].RiskLevel
	})
	return out
}

// LookupTeam finds a profile by abbreviation, ignoring case.
func LookupTeam(abbr string) (TeamProfile, bool) {
	abbr = strings.ToUpper(strings.TrimSpace(abbr))
	for _, t := range teamProfiles {
		if t.Abbr == abbr {
			return t, true
		}
	}
	return TeamProfile{}, false
}

func Players(limit int) []PlayerBet {
	if limit <= 0 || limit > len(playerBets) {
		limit = len(playerBets)
	}
	return append([]PlayerBet(nil), playerBets[:limit]...)
}

func Scenarios() []Scenario {
	return append([]Scenario(nil), scenarios...)
}

func RiskAssessment() RiskCategories {
	return RiskCategories{
		SafeBets:  append([]Bet(nil), riskCategories.SafeBets...),
		ValueBets: append([]Bet(nil), riskCategories.ValueBets...),
		AvoidBets: append([]Bet(nil), riskCategories.AvoidBets...),
	}
}

func GetOverview() Overview {
	return Overview{
		TopBets:         firstBets(riskCategories.SafeBets, 5),
		ValueBets:       firstBets(riskCategories.ValueBets, 3),
		AvoidBets:       firstBets(riskCategories.AvoidBets, 3),
		KeyInsights:     append([]Insight(nil), keyInsights...),
		TournamentStats: tournamentStats,
	}
}

func firstBets(bets []Bet, n int) []Bet {
	if n > len(bets) {
		n = len(bets)
	}
	return append([]Bet(nil), bets[:n]...)
}

// Predict compares two teams. When battingFirst names one of them, that team uses its batting-first
// rate and the other its chasing rate; otherwise both use the overall win rate.
func Predict(teamA, teamB, battingFirst string) (Prediction, error) {
	teamA = strings.ToUpper(strings.TrimSpace(teamA))
	teamB = strings.ToUpper(strings.TrimSpace(teamB))
	battingFirst = strings.ToUpper(strings.TrimSpace(battingFirst))
	if teamA == "" || teamB == "" {
		return Prediction{}, ErrTeamsRequired
	}

	a, okA := LookupTeam(teamA)
	b, okB := LookupTeam(teamB)
	if !okA || !okB {
		return Prediction{}, fmt.Errorf("%w: %s vs %s", ErrUnknownTeam, teamA, teamB)
	}

	var rateA, rateB float64
	switch battingFirst {
	case teamA:
		rateA, rateB = a.BattingFirstWinRate, b.ChasingWinRate
	case teamB:
		rateA, rateB = a.ChasingWinRate, b.BattingFirstWinRate
	default:
		rateA, rateB = a.WinRate, b.WinRate
	}

	probA := 50
	if total := rateA + rateB; total > 0 {
		probA = int(math.Floor(rateA/total*100 + 0.5))
	}
	probB := 100 - probA

	favorite, underdog := b, a
	if probA > probB {
		favorite, underdog = a, b
	}
	favoriteProb := max(probA, probB)

	upset := "LOW"
	if min(probA, probB) > 35 {
		upset = "HIGH"
	}
	recommendation := "CAUTION"
	if favorite.RiskLevel <= 2 {
		recommendation = "BET_" + favorite.Abbr
	}

	tossTip := "Toss outcome will affect odds"
	if battingFirst != "" {
		tossTip = "Batting first: " + battingFirst
	}
	tips := []string{
		fmt.Sprintf("%s favored with %d%% probability", favorite.Abbr, favoriteProb),
		tossTip,
	}
	tips = append(tips, favorite.Tips[:min(2, len(favorite.Tips))]...)

	return Prediction{
		TeamA:               a,
		TeamAWinProbability: probA,
		TeamB:               b,
		TeamBWinProbability: probB,
		Favorite:            favorite.Abbr,
		FavoriteWinProb:     favoriteProb,
		Underdog:            underdog.Abbr,
		UpsetPotential:      upset,
		Recommendation:      recommendation,
		Reasoning: fmt.Sprintf("%s has %s%% overall win rate vs %s's %s%%",
			favorite.Name, formatRate(favorite.WinRate), underdog.Name, formatRate(underdog.WinRate)),
		BettingTips: tips,
	}, nil
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
