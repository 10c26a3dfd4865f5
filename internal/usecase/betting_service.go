package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/betting"
)

const (
	bettingPlayersDefaultLimit = 10
	bettingPlayersMaxLimit     = 20
)

// BettingService serves the static betting tables.
type BettingService struct{}

func NewBettingService() *BettingService {
	return &BettingService{}
}

func (s *BettingService) Overview(ctx context.Context) betting.Overview {
	_, span := startUsecaseSpan(ctx, "usecase.BettingService.Overview")
	defer span.End()

	return betting.GetOverview()
}

func (s *BettingService) Teams(ctx context.Context) []betting.TeamProfile {
	_, span := startUsecaseSpan(ctx, "usecase.BettingService.Teams")
	defer span.End()

	return betting.Teams()
}

func (s *BettingService) Team(ctx context.Context, abbr string) (betting.TeamProfile, error) {
	_, span := startUsecaseSpan(ctx, "usecase.BettingService.Team")
	defer span.End()

	abbr = strings.TrimSpace(abbr)
	if abbr == "" {
		return betting.TeamProfile{}, fmt.Errorf("%w: team abbreviation is required", ErrInvalidInput)
	}

	profile, ok := betting.LookupTeam(abbr)
	if !ok {
		return betting.TeamProfile{}, fmt.Errorf("%w: team not found abbr=%s", ErrNotFound, abbr)
	}
	return profile, nil
}

func (s *BettingService) Players(ctx context.Context, limit int) []betting.PlayerBet {
	_, span := startUsecaseSpan(ctx, "usecase.BettingService.Players")
	defer span.End()

	return betting.Players(NewPageRequest(1, limit, bettingPlayersDefaultLimit, bettingPlayersMaxLimit).Limit)
}

func (s *BettingService) Scenarios(ctx context.Context) []betting.Scenario {
	_, span := startUsecaseSpan(ctx, "usecase.BettingService.Scenarios")
	defer span.End()

	return betting.Scenarios()
}

func (s *BettingService) RiskAssessment(ctx context.Context) betting.RiskCategories {
	_, span := startUsecaseSpan(ctx, "usecase.BettingService.RiskAssessment")
	defer span.End()

	return betting.RiskAssessment()
}

func (s *BettingService) Predict(ctx context.Context, teamA, teamB, battingFirst string) (betting.Prediction, error) {
	_, span := startUsecaseSpan(ctx, "usecase.BettingService.Predict")
	defer span.End()

	prediction, err := betting.Predict(teamA, teamB, battingFirst)
	switch {
	case err == nil:
		return prediction, nil
	case errors.Is(err, betting.ErrTeamsRequired):
		return betting.Prediction{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, betting.ErrUnknownTeam):
		return betting.Prediction{}, fmt.Errorf("%w: %v", ErrNotFound, err)
	default:
		return betting.Prediction{}, fmt.Errorf("predict match: %w", err)
	}
}
