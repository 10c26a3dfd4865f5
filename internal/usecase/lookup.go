package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
)

// MatchSummary is a match with its referenced teams and venue resolved.
type MatchSummary struct {
	Match      match.Match
	TeamA      team.Team
	TeamB      team.Team
	Winner     *team.Team
	TossWinner *team.Team
	Venue      *venue.Venue
}

type matchHydrator struct {
	teamRepo  team.Repository
	venueRepo venue.Repository
}

func (h matchHydrator) hydrate(ctx context.Context, items []match.Match) ([]MatchSummary, error) {
	if len(items) == 0 {
		return []MatchSummary{}, nil
	}

	teamIDs := make([]int64, 0, len(items)*4)
	venueIDs := make([]int64, 0, len(items))
	for _, item := range items {
		teamIDs = append(teamIDs, item.TeamIDs()...)
		venueIDs = append(venueIDs, item.VenueID)
	}

	teams, err := h.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, fmt.Errorf("get match teams: %w", err)
	}
	venues, err := h.venueRepo.GetByIDs(ctx, uniqueIDs(venueIDs))
	if err != nil {
		return nil, fmt.Errorf("get match venues: %w", err)
	}
	teamByID := indexByID(teams, func(t team.Team) int64 { return t.ID })
	venueByID := indexByID(venues, func(v venue.Venue) int64 { return v.ID })

	out := make([]MatchSummary, 0, len(items))
	for _, item := range items {
		summary := MatchSummary{
			Match: item,
			TeamA: teamByID[item.TeamAID],
			TeamB: teamByID[item.TeamBID],
		}
		if item.WinningTeamID != nil {
			summary.Winner = lookupPtr(teamByID, *item.WinningTeamID)
		}
		if item.TossWinnerID != nil {
			summary.TossWinner = lookupPtr(teamByID, *item.TossWinnerID)
		}
		summary.Venue = lookupPtr(venueByID, item.VenueID)
		out = append(out, summary)
	}

	return out, nil
}

// BattingRanking is an aggregate row with its player and team.
type BattingRanking struct {
	Aggregate aggregate.Batting
	Player    player.Player
	Team      team.Team
}

type BowlingRanking struct {
	Aggregate aggregate.Bowling
	Player    player.Player
	Team      team.Team
}

type rankingHydrator struct {
	playerRepo player.Repository
	teamRepo   team.Repository
}

func (h rankingHydrator) batting(ctx context.Context, rows []aggregate.Batting) ([]BattingRanking, error) {
	playerIDs := make([]int64, 0, len(rows))
	teamIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		playerIDs = append(playerIDs, row.PlayerID)
		teamIDs = append(teamIDs, row.TeamID)
	}
	players, teams, err := h.load(ctx, playerIDs, teamIDs)
	if err != nil {
		return nil, err
	}

	out := make([]BattingRanking, 0, len(rows))
	for _, row := range rows {
		out = append(out, BattingRanking{Aggregate: row, Player: players[row.PlayerID], Team: teams[row.TeamID]})
	}
	return out, nil
}

func (h rankingHydrator) bowling(ctx context.Context, rows []aggregate.Bowling) ([]BowlingRanking, error) {
	playerIDs := make([]int64, 0, len(rows))
	teamIDs := make([]int64, 0, len(rows))
	for _, row := range rows {
		playerIDs = append(playerIDs, row.PlayerID)
		teamIDs = append(teamIDs, row.TeamID)
	}
	players, teams, err := h.load(ctx, playerIDs, teamIDs)
	if err != nil {
		return nil, err
	}

	out := make([]BowlingRanking, 0, len(rows))
	for _, row := range rows {
		out = append(out, BowlingRanking{Aggregate: row, Player: players[row.PlayerID], Team: teams[row.TeamID]})
	}
	return out, nil
}

func (h rankingHydrator) load(ctx context.Context, playerIDs, teamIDs []int64) (map[int64]player.Player, map[int64]team.Team, error) {
	if len(playerIDs) == 0 {
		return map[int64]player.Player{}, map[int64]team.Team{}, nil
	}
	players, err := h.playerRepo.GetByIDs(ctx, uniqueIDs(playerIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("get ranking players: %w", err)
	}
	teams, err := h.teamRepo.GetByIDs(ctx, uniqueIDs(teamIDs))
	if err != nil {
		return nil, nil, fmt.Errorf("get ranking teams: %w", err)
	}
	return indexByID(players, func(p player.Player) int64 { return p.ID }),
		indexByID(teams, func(t team.Team) int64 { return t.ID }),
		nil
}

func indexByID[T any](items []T, id func(T) int64) map[int64]T {
	out := make(map[int64]T, len(items))
	for _, item := range items {
		out[id(item)] = item
	}
	return out
}

func lookupPtr[T any](items map[int64]T, id int64) *T {
	item, ok := items[id]
	if !ok {
		return nil
	}
	return &item
}

// uniqueIDs drops non-positive ids and duplicates, returning them sorted.
func uniqueIDs(ids []int64) []int64 {
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
