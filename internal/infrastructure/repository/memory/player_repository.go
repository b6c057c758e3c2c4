package memory

import (
	"context"
	"sync"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	index  map[string]player.Player
	orders []string
}

func NewPlayerRepository(players []player.Player) *PlayerRepository {
	r := &PlayerRepository{index: make(map[string]player.Player, len(players))}
	for _, p := range players {
		if _, ok := r.index[p.ID]; !ok {
			r.orders = append(r.orders, p.ID)
		}
		r.index[p.ID] = p
	}
	return r
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.index[id])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.index[playerID]
	return p, ok, nil
}

func (r *PlayerRepository) GetByIDs(_ context.Context, playerIDs []string) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(playerIDs))
	for _, id := range playerIDs {
		p, ok := r.index[id]
		if !ok {
			continue
		}
		out = append(out, p)
	}

	return out, nil
}

func (r *PlayerRepository) Upsert(_ context.Context, players []player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range players {
		if p.ID == "" {
			continue
		}
		if _, ok := r.index[p.ID]; !ok {
			r.orders = append(r.orders, p.ID)
		}
		r.index[p.ID] = p
	}
	return nil
}
