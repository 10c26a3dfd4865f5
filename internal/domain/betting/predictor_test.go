package betting

import (
	"errors"
	"testing"
)

func TestPredictWithoutBattingFirstSumsToHundred(t *testing.T) {
	t.Parallel()

	for _, a := range teamProfiles {
		for _, b := range teamProfiles {
			got, err := Predict(a.Abbr, b.Abbr, "")
			if err != nil {
				t.Fatalf("predict %s vs %s: %v", a.Abbr, b.Abbr, err)
			}
			if got.TeamAWinProbability+got.TeamBWinProbability != 100 {
				t.Fatalf("%s vs %s probabilities sum to %d", a.Abbr, b.Abbr, got.TeamAWinProbability+got.TeamBWinProbability)
			}
		}
	}
}

func TestPredictGTvsMI(t *testing.T) {
	t.Parallel()

	got, err := Predict("gt", "mi", "")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	// 75 / (75 + 28.6) = 72.39%
	if got.TeamAWinProbability != 72 || got.TeamBWinProbability != 28 {
		t.Fatalf("unexpected probabilities: %d/%d", got.TeamAWinProbability, got.TeamBWinProbability)
	}
	if got.Favorite != "GT" || got.Underdog != "MI" {
		t.Fatalf("unexpected favorite/underdog: %s/%s", got.Favorite, got.Underdog)
	}
	if got.Recommendation != "BET_GT" || got.UpsetPotential != "LOW" {
		t.Fatalf("unexpected recommendation: %s upset=%s", got.Recommendation, got.UpsetPotential)
	}
	if got.Reasoning != "Gujarat Titans has 75% overall win rate vs Mumbai Indians's 28.6%" {
		t.Fatalf("unexpected reasoning: %s", got.Reasoning)
	}
	if len(got.BettingTips) != 4 || got.BettingTips[1] != "Toss outcome will affect odds" {
		t.Fatalf("unexpected tips: %+v", got.BettingTips)
	}
}

func TestPredictBattingFirst(t *testing.T) {
	t.Parallel()

	// RR batting first (67) vs GT chasing (78).
	got, err := Predict("RR", "GT", "rr")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got.TeamAWinProbability != 46 || got.TeamBWinProbability != 54 {
		t.Fatalf("unexpected probabilities: %d/%d", got.TeamAWinProbability, got.TeamBWinProbability)
	}
	if got.Favorite != "GT" || got.UpsetPotential != "HIGH" {
		t.Fatalf("unexpected prediction: %+v", got)
	}
	if got.BettingTips[1] != "Batting first: RR" {
		t.Fatalf("unexpected toss tip: %s", got.BettingTips[1])
	}

	// Team B batting first flips the rates: GT chasing (78) vs RR batting first (67).
	flipped, err := Predict("GT", "RR", "RR")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if flipped.TeamAWinProbability != 54 {
		t.Fatalf("unexpected flipped probability: %d", flipped.TeamAWinProbability)
	}
}

func TestPredictCautionForRiskyFavorite(t *testing.T) {
	t.Parallel()

	got, err := Predict("DC", "CSK", "")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if got.Favorite != "DC" || got.Recommendation != "CAUTION" {
		t.Fatalf("unexpected prediction: favorite=%s recommendation=%s", got.Favorite, got.Recommendation)
	}
}

func TestPredictErrors(t *testing.T) {
	t.Parallel()

	if _, err := Predict("GT", "", ""); !errors.Is(err, ErrTeamsRequired) {
		t.Fatalf("expected ErrTeamsRequired, got %v", err)
	}
	if _, err := Predict("GT", "XYZ", ""); !errors.Is(err, ErrUnknownTeam) {
		t.Fatalf("expected ErrUnknownTeam, got %v", err)
	}
}

func TestTeamsSortedByRisk(t *testing.T) {
	t.Parallel()

	teams := Teams()
	if len(teams) != 10 {
		t.Fatalf("expected 10 teams, got %d", len(teams))
	}
	for i := 1; i < len(teams); i++ {
		if teams[i-1].RiskLevel > teams[i].RiskLevel {
			t.Fatalf("teams not sorted by risk at %d", i)
		}
	}
	if teams[0].Abbr != "GT" || teams[1].Abbr != "RR" || teams[2].Abbr != "LSG" {
		t.Fatalf("stable order not kept: %s %s %s", teams[0].Abbr, teams[1].Abbr, teams[2].Abbr)
	}
}

func TestLookupAndOverview(t *testing.T) {
	t.Parallel()

	if _, ok := LookupTeam("pbks"); !ok {
		t.Fatalf("expected case-insensitive lookup")
	}
	if _, ok := LookupTeam("XXX"); ok {
		t.Fatalf("expected miss for unknown team")
	}

	overview := GetOverview()
	if len(overview.TopBets) != 5 || len(overview.ValueBets) != 3 || len(overview.AvoidBets) != 3 || len(overview.KeyInsights) != 4 {
		t.Fatalf("unexpected overview sizes: %d %d %d %d", len(overview.TopBets), len(overview.ValueBets), len(overview.AvoidBets), len(overview.KeyInsights))
	}
	if got := Players(20); len(got) != 8 {
		t.Fatalf("expected all 8 players, got %d", len(got))
	}
	if got := Players(3); len(got) != 3 || got[0].Name != "Jos Buttler" {
		t.Fatalf("unexpected players: %+v", got)
	}
}
