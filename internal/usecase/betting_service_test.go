package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestBettingService_Predict_ProbabilitiesSumTo100(t *testing.T) {
	t.Parallel()

	service := NewBettingService()
	for _, pair := range [][2]string{{"GT", "RR"}, {"csk", "mi"}, {"LSG", "RCB"}} {
		got, err := service.Predict(context.Background(), pair[0], pair[1], "")
		if err != nil {
			t.Fatalf("predict %s vs %s: %v", pair[0], pair[1], err)
		}
		if got.TeamAWinProbability+got.TeamBWinProbability != 100 {
			t.Fatalf("probabilities of %s vs %s do not sum to 100: %d + %d",
				pair[0], pair[1], got.TeamAWinProbability, got.TeamBWinProbability)
		}
	}
}

func TestBettingService_Predict_ErrorMapping(t *testing.T) {
	t.Parallel()

	service := NewBettingService()

	if _, err := service.Predict(context.Background(), "", "RR", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for missing team, got %v", err)
	}
	if _, err := service.Predict(context.Background(), "GT", "XYZ", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
}

func TestBettingService_Team_CaseInsensitive(t *testing.T) {
	t.Parallel()

	service := NewBettingService()

	got, err := service.Team(context.Background(), "gt")
	if err != nil {
		t.Fatalf("lookup team: %v", err)
	}
	if got.Abbr != "GT" {
		t.Fatalf("unexpected team: %s", got.Abbr)
	}
	if _, err := service.Team(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBettingService_Players_ClampsLimit(t *testing.T) {
	t.Parallel()

	service := NewBettingService()

	if got := service.Players(context.Background(), 0); len(got) > bettingPlayersDefaultLimit {
		t.Fatalf("expected at most %d players by default, got %d", bettingPlayersDefaultLimit, len(got))
	}
	if got := service.Players(context.Background(), 500); len(got) > bettingPlayersMaxLimit {
		t.Fatalf("expected at most %d players, got %d", bettingPlayersMaxLimit, len(got))
	}
}
