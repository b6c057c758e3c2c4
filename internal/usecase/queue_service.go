package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/queue"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

type pickSubmitter interface {
	SubmitPick(ctx context.Context, input SubmitPickInput) (PickResult, error)
}

// QueueItem is a queue entry annotated with live availability.
type QueueItem struct {
	queue.Entry
	Drafted bool
}

type QueueService struct {
	leagueRepo league.Repository
	playerRepo player.Repository
	draftRepo  draft.Repository
	queueRepo  queue.Repository
	picker     pickSubmitter
	logger     *logging.Logger

	// locks serializes read-modify-write of one user's queue in this process.
	locks sync.Map
	now   func() time.Time
}

func NewQueueService(
	leagueRepo league.Repository,
	playerRepo player.Repository,
	draftRepo draft.Repository,
	queueRepo queue.Repository,
	picker pickSubmitter,
	logger *logging.Logger,
) *QueueService {
	if logger == nil {
		logger = logging.Default()
	}
	return &QueueService{
		leagueRepo: leagueRepo,
		playerRepo: playerRepo,
		draftRepo:  draftRepo,
		queueRepo:  queueRepo,
		picker:     picker,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *QueueService) List(ctx context.Context, userID, leagueID string) ([]QueueItem, error) {
	userID, leagueID, err := normalizeQueueKey(userID, leagueID)
	if err != nil {
		return nil, err
	}
	entries, drafted, err := s.load(ctx, userID, leagueID)
	if err != nil {
		return nil, err
	}
	return annotate(entries, drafted), nil
}

func (s *QueueService) Enqueue(ctx context.Context, userID, leagueID, playerID string) ([]QueueItem, error) {
	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}
	if _, exists, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return s.mutate(ctx, userID, leagueID, func(entries []queue.Entry, _ map[string]struct{}, u, l string) ([]queue.Entry, error) {
		return queue.Append(entries, queue.Entry{
			UserID:   u,
			LeagueID: l,
			PlayerID: playerID,
			AddedAt:  s.now().UTC(),
		})
	})
}

func (s *QueueService) Dequeue(ctx context.Context, userID, leagueID, playerID string) ([]QueueItem, error) {
	playerID = strings.TrimSpace(playerID)
	return s.mutate(ctx, userID, leagueID, func(entries []queue.Entry, _ map[string]struct{}, _, _ string) ([]queue.Entry, error) {
		return queue.Remove(entries, playerID)
	})
}

// Reorder moves playerID to position; later entries shift down by one.
func (s *QueueService) Reorder(ctx context.Context, userID, leagueID, playerID string, position int) ([]QueueItem, error) {
	if position < 0 {
		return nil, fmt.Errorf("%w: position must be >= 0", ErrInvalidInput)
	}
	playerID = strings.TrimSpace(playerID)
	return s.mutate(ctx, userID, leagueID, func(entries []queue.Entry, drafted map[string]struct{}, _, _ string) ([]queue.Entry, error) {
		return queue.Move(entries, playerID, position, drafted)
	})
}

// PurgeDrafted drops every entry whose player has been drafted.
func (s *QueueService) PurgeDrafted(ctx context.Context, userID, leagueID string) ([]QueueItem, error) {
	return s.mutate(ctx, userID, leagueID, func(entries []queue.Entry, drafted map[string]struct{}, _, _ string) ([]queue.Entry, error) {
		return queue.PurgeDrafted(entries, drafted), nil
	})
}

func (s *QueueService) NextEligible(ctx context.Context, userID, leagueID string) (queue.Entry, bool, error) {
	userID, leagueID, err := normalizeQueueKey(userID, leagueID)
	if err != nil {
		return queue.Entry{}, false, err
	}
	entries, drafted, err := s.load(ctx, userID, leagueID)
	if err != nil {
		return queue.Entry{}, false, err
	}
	entry, ok := queue.NextEligible(entries, drafted)
	return entry, ok, nil
}

// PromoteAndDraft submits a pick for the first still-available queued player
// and then removes that one entry. A player taken between the availability
// check and the write is skipped in favour of the next one. Entries drafted by
// other teams stay queued until PurgeDrafted.
func (s *QueueService) PromoteAndDraft(ctx context.Context, userID, leagueID string) (PickResult, error) {
	ctx, span := startSpan(ctx, "QueueService.PromoteAndDraft", leagueAttr(leagueID))
	defer span.End()

	userID, leagueID, err := normalizeQueueKey(userID, leagueID)
	if err != nil {
		return PickResult{}, err
	}
	if s.picker == nil {
		return PickResult{}, fmt.Errorf("%w: draft pick submitter is not configured", ErrDependencyUnavailable)
	}

	entries, drafted, err := s.load(ctx, userID, leagueID)
	if err != nil {
		return PickResult{}, err
	}

	for {
		entry, ok := queue.NextEligible(entries, drafted)
		if !ok {
			return PickResult{}, fmt.Errorf("%w: no eligible player in queue", ErrNotFound)
		}

		result, err := s.picker.SubmitPick(ctx, SubmitPickInput{
			LeagueID: leagueID,
			UserID:   userID,
			PlayerID: entry.PlayerID,
		})
		if errors.Is(err, draft.ErrPlayerAlreadyDrafted) {
			drafted[entry.PlayerID] = struct{}{}
			continue
		}
		if err != nil {
			return PickResult{}, err
		}

		// The pick is committed; failing to tidy the queue must not hide it.
		if _, err := s.Dequeue(ctx, userID, leagueID, entry.PlayerID); err != nil && !errors.Is(err, queue.ErrEntryNotFound) {
			s.logger.WarnContext(ctx, "remove promoted queue entry failed",
				"league_id", leagueID,
				"user_id", userID,
				"player_id", entry.PlayerID,
				"error", err,
			)
		}
		return result, nil
	}
}

type queueMutation func(entries []queue.Entry, drafted map[string]struct{}, userID, leagueID string) ([]queue.Entry, error)

func (s *QueueService) mutate(ctx context.Context, userID, leagueID string, fn queueMutation) ([]QueueItem, error) {
	userID, leagueID, err := normalizeQueueKey(userID, leagueID)
	if err != nil {
		return nil, err
	}

	mu := s.lockFor(userID, leagueID)
	mu.Lock()
	defer mu.Unlock()

	entries, drafted, err := s.load(ctx, userID, leagueID)
	if err != nil {
		return nil, err
	}
	next, err := fn(entries, drafted, userID, leagueID)
	if err != nil {
		return nil, err
	}
	if err := s.queueRepo.Replace(ctx, userID, leagueID, next); err != nil {
		return nil, fmt.Errorf("replace queue: %w", err)
	}
	return annotate(next, drafted), nil
}

func (s *QueueService) load(ctx context.Context, userID, leagueID string) ([]queue.Entry, map[string]struct{}, error) {
	if _, err := loadLeague(ctx, s.leagueRepo, leagueID); err != nil {
		return nil, nil, err
	}
	entries, err := s.queueRepo.List(ctx, userID, leagueID)
	if err != nil {
		return nil, nil, fmt.Errorf("list queue: %w", err)
	}
	picks, err := s.draftRepo.ListPicks(ctx, leagueID)
	if err != nil {
		return nil, nil, fmt.Errorf("list picks: %w", err)
	}
	return queue.Sorted(entries), draftedSet(picks), nil
}

func (s *QueueService) lockFor(userID, leagueID string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userID+"::"+leagueID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

func annotate(entries []queue.Entry, drafted map[string]struct{}) []QueueItem {
	out := make([]QueueItem, 0, len(entries))
	for _, e := range entries {
		_, isDrafted := drafted[e.PlayerID]
		out = append(out, QueueItem{Entry: e, Drafted: isDrafted})
	}
	return out
}

func normalizeQueueKey(userID, leagueID string) (string, string, error) {
	userID = strings.TrimSpace(userID)
	leagueID = strings.TrimSpace(leagueID)
	if userID == "" || leagueID == "" {
		return "", "", fmt.Errorf("%w: user_id and league_id are required", ErrInvalidInput)
	}
	return userID, leagueID, nil
}
