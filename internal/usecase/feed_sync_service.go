package usecase

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/calendar"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/playerstats"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

// DayFeed is one date's schedule and box scores from the stats provider.
type DayFeed struct {
	Games   []game.Game
	Players []player.Player
	Stats   []playerstats.DayStats
}

type StatsFeed interface {
	FetchDay(ctx context.Context, date time.Time) (DayFeed, error)
}

type FeedSyncResult struct {
	Dates   int
	Games   int
	Players int
	Stats   int
}

// FeedSyncService copies provider data into local storage ahead of a scoring
// pass so the job never reads the provider directly.
type FeedSyncService struct {
	feed       StatsFeed
	gameRepo   game.Repository
	playerRepo player.Repository
	statsRepo  playerstats.Repository
	location   *time.Location
	logger     *logging.Logger
	now        func() time.Time
}

func NewFeedSyncService(
	feed StatsFeed,
	gameRepo game.Repository,
	playerRepo player.Repository,
	statsRepo playerstats.Repository,
	location *time.Location,
	logger *logging.Logger,
) *FeedSyncService {
	if location == nil {
		location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &FeedSyncService{
		feed:       feed,
		gameRepo:   gameRepo,
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
		location:   location,
		logger:     logger,
		now:        time.Now,
	}
}

// SyncRecent pulls today and the previous lookbackDays dates. Late stat
// corrections for already locked days land in storage but never change a
// locked slot.
func (s *FeedSyncService) SyncRecent(ctx context.Context, lookbackDays int) (FeedSyncResult, error) {
	ctx, span := startSpan(ctx, "FeedSyncService.SyncRecent", attribute.Int("feed.lookback_days", lookbackDays))
	defer span.End()

	if s.feed == nil {
		return FeedSyncResult{}, fmt.Errorf("%w: stats feed is not configured", ErrDependencyUnavailable)
	}
	if lookbackDays < 0 {
		lookbackDays = 0
	}

	today := calendar.Date(s.now(), s.location)
	var result FeedSyncResult
	for offset := lookbackDays; offset >= 0; offset-- {
		date := today.AddDate(0, 0, -offset)
		day, err := s.feed.FetchDay(ctx, date)
		if err != nil {
			return result, fmt.Errorf("fetch feed date=%s: %w", date.Format(time.DateOnly), err)
		}
		if err := s.store(ctx, date, day); err != nil {
			return result, err
		}
		result.Dates++
		result.Games += len(day.Games)
		result.Players += len(day.Players)
		result.Stats += len(day.Stats)
	}

	s.logger.InfoContext(ctx, "stats feed synced",
		"dates", result.Dates,
		"games", result.Games,
		"players", result.Players,
		"stats", result.Stats,
	)
	return result, nil
}

func (s *FeedSyncService) store(ctx context.Context, date time.Time, day DayFeed) error {
	for i := range day.Games {
		day.Games[i].Date = date
		day.Games[i].Status = game.NormalizeStatus(day.Games[i].Status)
	}
	for i := range day.Stats {
		day.Stats[i].Date = date
	}

	if len(day.Players) > 0 {
		if err := s.playerRepo.Upsert(ctx, day.Players); err != nil {
			return fmt.Errorf("upsert players: %w", err)
		}
	}
	// Stats land before the games that make the day lockable, and the sync
	// marker last, so a partial write never looks like a finished day.
	if len(day.Stats) > 0 {
		if err := s.statsRepo.Upsert(ctx, day.Stats); err != nil {
			return fmt.Errorf("upsert player stats: %w", err)
		}
	}
	if len(day.Games) > 0 {
		if err := s.gameRepo.Upsert(ctx, day.Games); err != nil {
			return fmt.Errorf("upsert games: %w", err)
		}
	}
	if err := s.gameRepo.MarkSynced(ctx, date, s.now().UTC()); err != nil {
		return fmt.Errorf("mark schedule synced: %w", err)
	}
	return nil
}
