package usecase

import (
	"context"
	"fmt"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/competition"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
)

// StandingRow is a points-table row with its team and competition.
type StandingRow struct {
	Standing    standing.Standing
	Team        team.Team
	Competition *competition.Competition
}

type StandingService struct {
	standingRepo    standing.Repository
	teamRepo        team.Repository
	competitionRepo competition.Repository
}

func NewStandingService(
	standingRepo standing.Repository,
	teamRepo team.Repository,
	competitionRepo competition.Repository,
) *StandingService {
	return &StandingService{
		standingRepo:    standingRepo,
		teamRepo:        teamRepo,
		competitionRepo: competitionRepo,
	}
}

// ListByRound returns a round's table. Zero picks the latest round; no standings yields an empty list.
func (s *StandingService) ListByRound(ctx context.Context, roundID int64) ([]StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListByRound")
	defer span.End()

	if roundID < 0 {
		return nil, fmt.Errorf("%w: round id must be a positive number", ErrInvalidInput)
	}
	if roundID == 0 {
		latest, ok, err := s.standingRepo.LatestRoundID(ctx)
		if err != nil {
			return nil, fmt.Errorf("get latest round: %w", err)
		}
		if !ok {
			return []StandingRow{}, nil
		}
		roundID = latest
	}

	items, err := s.standingRepo.ListByRound(ctx, roundID)
	if err != nil {
		return nil, fmt.Errorf("list standings by round: %w", err)
	}

	return s.rows(ctx, items)
}

func (s *StandingService) ListRounds(ctx context.Context) ([]standing.Round, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.ListRounds")
	defer span.End()

	items, err := s.standingRepo.ListRounds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standing rounds: %w", err)
	}
	return nonNil(items), nil
}

func (s *StandingService) GetByTeam(ctx context.Context, teamID int64) (StandingRow, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingService.GetByTeam")
	defer span.End()

	if teamID <= 0 {
		return StandingRow{}, fmt.Errorf("%w: team id must be a positive number", ErrInvalidInput)
	}

	item, ok, err := s.standingRepo.LatestByTeam(ctx, teamID)
	if err != nil {
		return StandingRow{}, fmt.Errorf("get team standing: %w", err)
	}
	if !ok {
		return StandingRow{}, fmt.Errorf("%w: team standing not found for team=%d", ErrNotFound, teamID)
	}

	rows, err := s.rows(ctx, []standing.Standing{item})
	if err != nil {
		return StandingRow{}, err
	}
	return rows[0], nil
}

func (s *StandingService) rows(ctx context.Context, items []standing.Standing) ([]StandingRow, error) {
	if len(items) == 0 {
		return []StandingRow{}, nil
	}

	teamIDs := make([]int64, 0, len(items))
	competitionIDs := make([]int64, 0, 1)
	for _, item := range items {
		teamIDs = append(teamIDs, item.TeamID)
		competitionIDs = append(competitionIDs, item.CompetitionID)
	}

	teams, err := s.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("get standing teams: %w", err)
	}
	competitions, err := s.competitionRepo.GetByIDs(ctx, uniqueIDs(competitionIDs))
	if err != nil {
		return nil, fmt.Errorf("get standing competitions: %w", err)
	}
	teamByID := indexByID(teams, func(t team.Team) int64 { return t.ID })
	competitionByID := indexByID(competitions, func(c competition.Competition) int64 { return c.ID })

	out := make([]StandingRow, 0, len(items))
	for _, item := range items {
		out = append(out, StandingRow{
			Standing:    item,
			Team:        teamByID[item.TeamID],
			Competition: lookupPtr(competitionByID, item.CompetitionID),
		})
	}
	return out, nil
}
