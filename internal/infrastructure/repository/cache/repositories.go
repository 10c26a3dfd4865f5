package cache

import (
	"context"
	"slices"
	"strconv"
	"strings"

	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/standing"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/team"
	"github.com/sugerdarco/IPL-Data-Platform/internal/domain/venue"
	basecache "github.com/sugerdarco/IPL-Data-Platform/internal/platform/cache"
)

// TeamRepository caches team lookups. Listings with search and paging go straight through.
type TeamRepository struct {
	team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{Repository: next, cache: cache}
}

func (r *TeamRepository) ListAll(ctx context.Context) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, "team:all", r.Repository.ListAll)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, id int64) (team.Team, bool, error) {
	key := "team:id:" + strconv.FormatInt(id, 10)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedTeam, error) {
		item, exists, err := r.Repository.GetByID(ctx, id)
		return cachedTeam{value: item, exists: exists}, err
	})
	if err != nil {
		return team.Team{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []int64) ([]team.Team, error) {
	items, err := basecache.Load(ctx, r.cache, "team:ids:"+idsKey(ids), func(ctx context.Context) ([]team.Team, error) {
		return r.Repository.GetByIDs(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

type cachedTeam struct {
	value  team.Team
	exists bool
}

type VenueRepository struct {
	next  venue.Repository
	cache *basecache.Store
}

func NewVenueRepository(next venue.Repository, cache *basecache.Store) *VenueRepository {
	return &VenueRepository{next: next, cache: cache}
}

func (r *VenueRepository) GetByIDs(ctx context.Context, ids []int64) ([]venue.Venue, error) {
	items, err := basecache.Load(ctx, r.cache, "venue:ids:"+idsKey(ids), func(ctx context.Context) ([]venue.Venue, error) {
		return r.next.GetByIDs(ctx, ids)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *VenueRepository) ListUsage(ctx context.Context) ([]venue.Usage, error) {
	items, err := basecache.Load(ctx, r.cache, "venue:usage", r.next.ListUsage)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

// StandingRepository caches the round lookups behind /standings; row queries go straight through.
type StandingRepository struct {
	standing.Repository
	cache *basecache.Store
}

func NewStandingRepository(next standing.Repository, cache *basecache.Store) *StandingRepository {
	return &StandingRepository{Repository: next, cache: cache}
}

func (r *StandingRepository) LatestRoundID(ctx context.Context) (int64, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "standing:round:latest", func(ctx context.Context) (cachedRound, error) {
		id, exists, err := r.Repository.LatestRoundID(ctx)
		return cachedRound{id: id, exists: exists}, err
	})
	if err != nil {
		return 0, false, err
	}
	return cached.id, cached.exists, nil
}

func (r *StandingRepository) ListRounds(ctx context.Context) ([]standing.Round, error) {
	items, err := basecache.Load(ctx, r.cache, "standing:rounds", r.Repository.ListRounds)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

type cachedRound struct {
	id     int64
	exists bool
}

func idsKey(ids []int64) string {
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)

	parts := make([]string, 0, len(sorted))
	for _, id := range sorted {
		parts = append(parts, strconv.FormatInt(id, 10))
	}
	return strings.Join(parts, ",")
}
