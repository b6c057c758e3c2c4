package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/queue"
)

type QueueRepository struct {
	mu      sync.RWMutex
	entries map[string][]queue.Entry
}

func NewQueueRepository() *QueueRepository {
	return &QueueRepository{entries: make(map[string][]queue.Entry)}
}

func (r *QueueRepository) List(_ context.Context, userID, leagueID string) ([]queue.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return queue.Sorted(r.entries[queueKey(userID, leagueID)]), nil
}

func (r *QueueRepository) Replace(_ context.Context, userID, leagueID string, entries []queue.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[queueKey(userID, leagueID)] = queue.Renumber(slices.Clone(entries))
	return nil
}

func queueKey(userID, leagueID string) string {
	return userID + "::" + leagueID
}
