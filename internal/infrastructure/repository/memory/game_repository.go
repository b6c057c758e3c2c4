package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
)

type GameRepository struct {
	mu     sync.RWMutex
	byDate map[time.Time]map[string]game.Game
	synced map[time.Time]time.Time
}

func NewGameRepository(games []game.Game) *GameRepository {
	r := &GameRepository{
		byDate: make(map[time.Time]map[string]game.Game),
		synced: make(map[time.Time]time.Time),
	}
	_ = r.Upsert(context.Background(), games)
	return r
}

func (r *GameRepository) ListByDate(_ context.Context, date time.Time) ([]game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byDate[date]
	out := make([]game.Game, 0, len(rows))
	for _, g := range rows {
		out = append(out, g)
	}
	return out, nil
}

func (r *GameRepository) Upsert(_ context.Context, games []game.Game) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, g := range games {
		rows, ok := r.byDate[g.Date]
		if !ok {
			rows = make(map[string]game.Game)
			r.byDate[g.Date] = rows
		}
		rows[g.ID] = g
	}
	return nil
}

func (r *GameRepository) MarkSynced(_ context.Context, date, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.synced[date] = at
	return nil
}

func (r *GameRepository) IsSynced(_ context.Context, date time.Time) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.synced[date]
	return ok, nil
}
