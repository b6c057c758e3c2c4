package app

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/statsfeed"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/resilience"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

// feedLookbackDays covers late stat corrections for the previous two days.
const feedLookbackDays = 2

// Scorer runs the matchup scoring job on a cron schedule, independent of the
// API process. Each tick optionally syncs the stats feed first.
type Scorer struct {
	cron    *cron.Cron
	job     *usecase.MatchupScoringJob
	sync    *usecase.FeedSyncService
	spec    string
	timeout time.Duration
	logger  *logging.Logger
	repos   repositories
}

func NewScorer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Scorer, error) {
	if cfg.ScoringJobSchedule == "" {
		return nil, fmt.Errorf("scoring job schedule cannot be empty")
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	s := &Scorer{
		job:     newMatchupScoringJob(repos, cfg, logger),
		spec:    cfg.ScoringJobSchedule,
		timeout: cfg.ScoringJobTimeout,
		logger:  logger.Named("scorer"),
		repos:   repos,
	}
	if cfg.StatsFeedEnabled {
		feed := statsfeed.NewClient(statsfeed.ClientConfig{
			BaseURL:    cfg.StatsFeedBaseURL,
			Token:      cfg.StatsFeedToken,
			Timeout:    cfg.StatsFeedTimeout,
			MaxRetries: cfg.StatsFeedMaxRetries,
			Logger:     logger.Named("statsfeed"),
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.StatsFeedCircuitEnabled,
				FailureThreshold: cfg.StatsFeedCircuitFailureCount,
				OpenTimeout:      cfg.StatsFeedCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.StatsFeedCircuitHalfOpenMaxReq,
			},
		})
		s.sync = usecase.NewFeedSyncService(feed, repos.games, repos.players, repos.stats, cfg.LeagueTimezone, logger.Named("feedsync"))
	}

	location := cfg.LeagueTimezone
	if location == nil {
		location = time.UTC
	}
	cronLogger := logging.NewCronLogger(s.logger)
	s.cron = cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)
	return s, nil
}

// Start registers the tick and starts the scheduler. It does not block.
func (s *Scorer) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.tick); err != nil {
		return fmt.Errorf("schedule matchup scoring spec=%q: %w", s.spec, err)
	}
	s.cron.Start()
	s.logger.Info("scorer started", "schedule", s.spec, "feed_sync", s.sync != nil)
	return nil
}

// Stop waits for a running tick, bounded by ctx, and releases storage.
func (s *Scorer) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
		s.logger.Warn("scorer stop timed out with a run in flight")
	}
	if err := s.repos.close(); err != nil {
		return fmt.Errorf("close repositories: %w", err)
	}
	return nil
}

func (s *Scorer) tick() {
	ctx := context.Background()
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	if err := s.RunOnce(ctx); err != nil {
		s.logger.ErrorContext(ctx, "scheduled matchup scoring failed", "error", err)
	}
}

// RunOnce syncs the feed when configured and then runs one scoring pass. A
// feed failure is logged and scoring still runs on what storage already has.
func (s *Scorer) RunOnce(ctx context.Context) error {
	if s.sync != nil {
		result, err := s.sync.SyncRecent(ctx, feedLookbackDays)
		if err != nil {
			s.logger.WarnContext(ctx, "stats feed sync failed", "error", err)
		} else {
			s.logger.InfoContext(ctx, "stats feed synced",
				"dates", result.Dates,
				"games", result.Games,
				"players", result.Players,
				"stats", result.Stats,
			)
		}
	}

	run, err := s.job.Run(ctx)
	if err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "matchup scoring run complete",
		"run_id", run.RunID,
		"status", run.Status,
		"leagues", run.Leagues,
		"locked", run.Locked,
		"updated", run.Updated,
		"errored", run.Errored,
	)
	return nil
}
