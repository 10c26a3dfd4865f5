package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc/pool"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/aggregate"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/match"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/player"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
)

const (
	teamListDefaultLimit    = 10
	teamListMaxLimit        = 100
	teamMatchesDefaultLimit = 10
	teamMatchesMaxLimit     = 50
)

type TeamListInput struct {
	Search string
	Page   int
	Limit  int
}

// TeamSummary is a list row. Standing is the team's best row by points.
type TeamSummary struct {
	Team     team.Team
	Standing *standing.Standing
	Stats    *team.Stats
}

type SquadMember struct {
	Squad  player.Squad
	Player player.Player
}

// TeamDetail carries the team's latest standing by round.
type TeamDetail struct {
	Team     team.Team
	Standing *standing.Standing
	Stats    *team.Stats
	Squad    []SquadMember
}

// TeamPlayer is a squad player with the headline batting and bowling rankings.
type TeamPlayer struct {
	Player  player.Player
	Batting *aggregate.Batting
	Bowling *aggregate.Bowling
}

type TeamService struct {
	teamRepo      team.Repository
	playerRepo    player.Repository
	standingRepo  standing.Repository
	aggregateRepo aggregate.Repository
	matchRepo     match.Repository
	matches       matchHydrator
}

func NewTeamService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	standingRepo standing.Repository,
	aggregateRepo aggregate.Repository,
	matchRepo match.Repository,
	venueRepo venue.Repository,
) *TeamService {
	return &TeamService{
		teamRepo:      teamRepo,
		playerRepo:    playerRepo,
		standingRepo:  standingRepo,
		aggregateRepo: aggregateRepo,
		matchRepo:     matchRepo,
		matches:       matchHydrator{teamRepo: teamRepo, venueRepo: venueRepo},
	}
}

func (s *TeamService) List(ctx context.Context, input TeamListInput) (Page[TeamSummary], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	req := NewPageRequest(input.Page, input.Limit, teamListDefaultLimit, teamListMaxLimit)
	filter := team.ListFilter{
		Search: strings.TrimSpace(input.Search),
		Offset: req.Offset(),
		Limit:  req.Limit,
	}

	teams, total, err := listWithCount(ctx,
		func(ctx context.Context) ([]team.Team, error) { return s.teamRepo.List(ctx, filter) },
		func(ctx context.Context) (int64, error) { return s.teamRepo.Count(ctx, filter) },
	)
	if err != nil {
		return Page[TeamSummary]{}, fmt.Errorf("list teams: %w", err)
	}

	items := make([]TeamSummary, 0, len(teams))
	if len(teams) > 0 {
		ids := make([]int64, 0, len(teams))
		for _, item := range teams {
			ids = append(ids, item.ID)
		}

		var (
			standings []standing.Standing
			stats     []team.Stats
		)
		p := pool.New().WithErrors().WithContext(ctx)
		p.Go(func(ctx context.Context) error {
			var err error
			standings, err = s.standingRepo.BestByTeams(ctx, ids)
			if err != nil {
				return fmt.Errorf("list team standings: %w", err)
			}
			return nil
		})
		p.Go(func(ctx context.Context) error {
			var err error
			stats, err = s.teamRepo.ListStatsByTeamIDs(ctx, ids)
			if err != nil {
				return fmt.Errorf("list team stats: %w", err)
			}
			return nil
		})
		if err := p.Wait(); err != nil {
			return Page[TeamSummary]{}, err
		}

		standingByTeam := indexByID(standings, func(v standing.Standing) int64 { return v.TeamID })
		statsByTeam := indexByID(stats, func(v team.Stats) int64 { return v.TeamID })
		for _, item := range teams {
			items = append(items, TeamSummary{
				Team:     item,
				Standing: lookupPtr(standingByTeam, item.ID),
				Stats:    lookupPtr(statsByTeam, item.ID),
			})
		}
	}

	return Page[TeamSummary]{Items: items, Pagination: newPagination(req, total)}, nil
}

func (s *TeamService) Get(ctx context.Context, teamID int64) (TeamDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	item, err := s.getTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, err
	}

	detail := TeamDetail{Team: item, Squad: []SquadMember{}}

	latest, ok, err := s.standingRepo.LatestByTeam(ctx, teamID)
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get latest team standing: %w", err)
	}
	if ok {
		detail.Standing = &latest
	}

	stats, err := s.teamRepo.ListStatsByTeamIDs(ctx, []int64{teamID})
	if err != nil {
		return TeamDetail{}, fmt.Errorf("get team stats: %w", err)
	}
	if len(stats) > 0 {
		detail.Stats = &stats[0]
	}

	squads, players, err := s.squadPlayers(ctx, teamID)
	if err != nil {
		return TeamDetail{}, err
	}
	for _, squad := range squads {
		p, ok := players[squad.PlayerID]
		if !ok {
			continue
		}
		detail.Squad = append(detail.Squad, SquadMember{Squad: squad, Player: p})
	}

	return detail, nil
}

// Players lists the squad. A team without squad rows yields an empty list.
func (s *TeamService) Players(ctx context.Context, teamID int64) ([]TeamPlayer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Players")
	defer span.End()

	if _, err := s.getTeam(ctx, teamID); err != nil {
		return nil, err
	}

	squads, players, err := s.squadPlayers(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if len(squads) == 0 {
		return []TeamPlayer{}, nil
	}

	playerIDs := make([]int64, 0, len(squads))
	for _, squad := range squads {
		playerIDs = append(playerIDs, squad.PlayerID)
	}
	playerIDs = uniqueIDs(playerIDs)

	batting, err := s.aggregateRepo.ListBattingByPlayers(ctx, playerIDs, aggregate.StatMostRuns)
	if err != nil {
		return nil, fmt.Errorf("list squad batting aggregates: %w", err)
	}
	bowling, err := s.aggregateRepo.ListBowlingByPlayers(ctx, playerIDs, aggregate.StatTopWicketTakers)
	if err != nil {
		return nil, fmt.Errorf("list squad bowling aggregates: %w", err)
	}
	battingByPlayer := indexByID(batting, func(v aggregate.Batting) int64 { return v.PlayerID })
	bowlingByPlayer := indexByID(bowling, func(v aggregate.Bowling) int64 { return v.PlayerID })

	out := make([]TeamPlayer, 0, len(squads))
	for _, squad := range squads {
		p, ok := players[squad.PlayerID]
		if !ok {
			continue
		}
		out = append(out, TeamPlayer{
			Player:  p,
			Batting: lookupPtr(battingByPlayer, p.ID),
			Bowling: lookupPtr(bowlingByPlayer, p.ID),
		})
	}

	return out, nil
}

func (s *TeamService) Matches(ctx context.Context, teamID int64, page, limit int) (Page[MatchSummary], error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Matches")
	defer span.End()

	if _, err := s.getTeam(ctx, teamID); err != nil {
		return Page[MatchSummary]{}, err
	}

	req := NewPageRequest(page, limit, teamMatchesDefaultLimit, teamMatchesMaxLimit)
	filter := match.ListFilter{TeamID: teamID, Offset: req.Offset(), Limit: req.Limit}

	matches, total, err := listWithCount(ctx,
		func(ctx context.Context) ([]match.Match, error) { return s.matchRepo.List(ctx, filter) },
		func(ctx context.Context) (int64, error) { return s.matchRepo.Count(ctx, filter) },
	)
	if err != nil {
		return Page[MatchSummary]{}, fmt.Errorf("list team matches: %w", err)
	}

	items, err := s.matches.hydrate(ctx, matches)
	if err != nil {
		return Page[MatchSummary]{}, err
	}

	return Page[MatchSummary]{Items: items, Pagination: newPagination(req, total)}, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID int64) (team.Team, error) {
	if teamID <= 0 {
		return team.Team{}, fmt.Errorf("%w: team id must be a positive number", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%d", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) squadPlayers(ctx context.Context, teamID int64) ([]player.Squad, map[int64]player.Player, error) {
	squads, err := s.playerRepo.ListSquadsByTeam(ctx, teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("list team squad: %w", err)
	}
	if len(squads) == 0 {
		return nil, map[int64]player.Player{}, nil
	}

	ids := make([]int64, 0, len(squads))
	for _, squad := range squads {
		ids = append(ids, squad.PlayerID)
	}
	players, err := s.playerRepo.GetByIDs(ctx, uniqueIDs(ids))
	if err != nil {
		return nil, nil, fmt.Errorf("get squad players: %w", err)
	}

	return squads, indexByID(players, func(p player.Player) int64 { return p.ID }), nil
}
