package memory

import (
	"context"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/playerstats"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

type PlayerStatsRepository struct {
	mu     sync.RWMutex
	byDate map[time.Time]map[string]scoring.StatLine
}

func NewPlayerStatsRepository() *PlayerStatsRepository {
	return &PlayerStatsRepository{byDate: make(map[time.Time]map[string]scoring.StatLine)}
}

func (r *PlayerStatsRepository) ListByDate(_ context.Context, date time.Time, playerIDs []string) (map[string]scoring.StatLine, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.byDate[date]
	out := make(map[string]scoring.StatLine, len(playerIDs))
	for _, id := range playerIDs {
		if line, ok := rows[id]; ok {
			out[id] = line.Clone()
		}
	}
	return out, nil
}

// Upsert replaces the stat line of each (player, date).
func (r *PlayerStatsRepository) Upsert(_ context.Context, stats []playerstats.DayStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, s := range stats {
		rows, ok := r.byDate[s.Date]
		if !ok {
			rows = make(map[string]scoring.StatLine)
			r.byDate[s.Date] = rows
		}
		rows[s.PlayerID] = s.Stats.Clone()
	}
	return nil
}
