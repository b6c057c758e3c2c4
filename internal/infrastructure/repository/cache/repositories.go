package cache

import (
	"context"
	"slices"
	"strings"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	basecache "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/cache"
)

const (
	leagueListKey  = "league:list"
	leagueIDPrefix = "league:id:"
	teamPrefix     = "team:"
	playerPrefix   = "player:"
)

// LeagueRepository caches league reads. Every write goes to next first and
// then drops the cached entries so the draft status read by the next request
// is never older than the last transition made through this process.
type LeagueRepository struct {
	next  league.Repository
	cache *basecache.Store
}

func NewLeagueRepository(next league.Repository, cache *basecache.Store) *LeagueRepository {
	return &LeagueRepository{next: next, cache: cache}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	items, err := basecache.Load(ctx, r.cache, leagueListKey, func(ctx context.Context) ([]league.League, error) {
		items, err := r.next.List(ctx)
		return cloneLeagues(items), err
	})
	if err != nil {
		return nil, err
	}
	return cloneLeagues(items), nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	cached, err := loadOne(ctx, r.cache, leagueIDPrefix+leagueID, func(ctx context.Context) (league.League, bool, error) {
		item, exists, err := r.next.GetByID(ctx, leagueID)
		return cloneLeague(item), exists, err
	})
	return cloneLeague(cached.value), cached.exists, err
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) error {
	if err := r.next.Create(ctx, l); err != nil {
		return err
	}
	r.invalidate(ctx, l.ID)
	return nil
}

func (r *LeagueRepository) TransitionDraft(ctx context.Context, t league.DraftTransition) (bool, error) {
	ok, err := r.next.TransitionDraft(ctx, t)
	r.invalidate(ctx, t.LeagueID)
	return ok, err
}

func (r *LeagueRepository) UpdateDraftOrder(ctx context.Context, leagueID string, customOrder []string, randomize bool) (bool, error) {
	ok, err := r.next.UpdateDraftOrder(ctx, leagueID, customOrder, randomize)
	r.invalidate(ctx, leagueID)
	return ok, err
}

func (r *LeagueRepository) UpdateScoringWeights(ctx context.Context, leagueID string, schedule scoring.WeightSchedule) error {
	err := r.next.UpdateScoringWeights(ctx, leagueID, schedule)
	r.invalidate(ctx, leagueID)
	return err
}

func (r *LeagueRepository) invalidate(ctx context.Context, leagueID string) {
	r.cache.Delete(ctx, leagueIDPrefix+leagueID)
	r.cache.Delete(ctx, leagueListKey)
}

// lookup remembers misses as well as hits.
type lookup[T any] struct {
	value  T
	exists bool
}

func loadOne[T any](ctx context.Context, store *basecache.Store, key string, load func(context.Context) (T, bool, error)) (lookup[T], error) {
	return basecache.Load(ctx, store, key, func(ctx context.Context) (lookup[T], error) {
		value, exists, err := load(ctx)
		return lookup[T]{value: value, exists: exists}, err
	})
}

func cloneLeague(l league.League) league.League {
	out := l
	out.CustomOrder = slices.Clone(l.CustomOrder)
	out.FrozenOrder = slices.Clone(l.FrozenOrder)
	if l.Weights != nil {
		out.Weights = make(scoring.WeightSchedule, 0, len(l.Weights))
		for _, v := range l.Weights {
			out.Weights = append(out.Weights, scoring.WeightVersion{
				EffectiveFromWeek: v.EffectiveFromWeek,
				Weights:           v.Weights.Clone(),
			})
		}
	}
	if l.DraftStartedAt != nil {
		startedAt := *l.DraftStartedAt
		out.DraftStartedAt = &startedAt
	}
	if l.DraftCompletedAt != nil {
		completedAt := *l.DraftCompletedAt
		out.DraftCompletedAt = &completedAt
	}
	return out
}

func cloneLeagues(items []league.League) []league.League {
	out := make([]league.League, 0, len(items))
	for _, item := range items {
		out = append(out, cloneLeague(item))
	}
	return out
}

type TeamRepository struct {
	next  team.Repository
	cache *basecache.Store
}

func NewTeamRepository(next team.Repository, cache *basecache.Store) *TeamRepository {
	return &TeamRepository{next: next, cache: cache}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	key := teamPrefix + "list:" + leagueID
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]team.Team, error) {
		return r.next.ListByLeague(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}

func (r *TeamRepository) GetByID(ctx context.Context, leagueID, teamID string) (team.Team, bool, error) {
	key := teamPrefix + "id:" + leagueID + ":" + teamID
	return r.getOne(ctx, key, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByID(ctx, leagueID, teamID)
	})
}

func (r *TeamRepository) GetByOwner(ctx context.Context, leagueID, userID string) (team.Team, bool, error) {
	key := teamPrefix + "owner:" + leagueID + ":" + userID
	return r.getOne(ctx, key, func(ctx context.Context) (team.Team, bool, error) {
		return r.next.GetByOwner(ctx, leagueID, userID)
	})
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	if err := r.next.Create(ctx, t); err != nil {
		return err
	}
	r.cache.DeletePrefix(ctx, teamPrefix)
	return nil
}

func (r *TeamRepository) getOne(ctx context.Context, key string, load func(context.Context) (team.Team, bool, error)) (team.Team, bool, error) {
	cached, err := loadOne(ctx, r.cache, key, load)
	return cached.value, cached.exists, err
}

// PlayerRepository caches the player pool. Upserts from the stats feed drop
// every cached player entry.
type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.list(ctx, playerPrefix+"list", func(ctx context.Context) ([]player.Player, error) {
		return r.next.List(ctx)
	})
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	cached, err := loadOne(ctx, r.cache, playerPrefix+"id:"+playerID, func(ctx context.Context) (player.Player, bool, error) {
		return r.next.GetByID(ctx, playerID)
	})
	return cached.value, cached.exists, err
}

func (r *PlayerRepository) GetByIDs(ctx context.Context, playerIDs []string) ([]player.Player, error) {
	ids := slices.Clone(playerIDs)
	slices.Sort(ids)
	return r.list(ctx, playerPrefix+"ids:"+strings.Join(ids, ","), func(ctx context.Context) ([]player.Player, error) {
		return r.next.GetByIDs(ctx, playerIDs)
	})
}

func (r *PlayerRepository) Upsert(ctx context.Context, players []player.Player) error {
	err := r.next.Upsert(ctx, players)
	r.cache.DeletePrefix(ctx, playerPrefix)
	return err
}

func (r *PlayerRepository) list(ctx context.Context, key string, load func(context.Context) ([]player.Player, error)) ([]player.Player, error) {
	items, err := basecache.Load(ctx, r.cache, key, load)
	if err != nil {
		return nil, err
	}
	return slices.Clone(items), nil
}
