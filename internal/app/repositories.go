package app

import (
	"context"
	"fmt"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/jobscheduler"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/matchup"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/playerstats"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/queue"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	cacherepo "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/cache"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/postgres"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/cache"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

type repositories struct {
	leagues  league.Repository
	teams    team.Repository
	players  player.Repository
	draft    draft.Repository
	queue    queue.Repository
	roster   roster.Repository
	games    game.Repository
	stats    playerstats.Repository
	matchups matchup.Repository
	runs     jobscheduler.Repository

	close func() error
}

// openRepositories picks postgres or the in-memory demo store and puts the
// read-mostly repositories behind the TTL cache when enabled.
func openRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, error) {
	var repos repositories
	if cfg.DBEnabled {
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		if cfg.AppEnv == config.EnvDev {
			if err := postgres.BootstrapSeed(ctx, db); err != nil {
				_ = db.Close()
				return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
			}
		}

		repos = repositories{
			leagues:  postgres.NewLeagueRepository(db),
			teams:    postgres.NewTeamRepository(db),
			players:  postgres.NewPlayerRepository(db),
			draft:    postgres.NewDraftRepository(db),
			queue:    postgres.NewQueueRepository(db),
			roster:   postgres.NewRosterRepository(db),
			games:    postgres.NewGameRepository(db),
			stats:    postgres.NewPlayerStatsRepository(db),
			matchups: postgres.NewMatchupRepository(db),
			runs:     postgres.NewJobRunRepository(db),
			close:    db.Close,
		}
		logger.InfoContext(ctx, "repositories ready", "store", "postgres", "db", resolveDBTarget(cfg.DBURL, false, "").name)
	} else {
		leagues := memory.NewLeagueRepository(memory.SeedLeagues())
		repos = repositories{
			leagues:  leagues,
			teams:    memory.NewTeamRepository(memory.SeedTeams()),
			players:  memory.NewPlayerRepository(memory.SeedPlayers()),
			draft:    memory.NewDraftRepository(leagues),
			queue:    memory.NewQueueRepository(),
			roster:   memory.NewRosterRepository(),
			games:    memory.NewGameRepository(nil),
			stats:    memory.NewPlayerStatsRepository(),
			matchups: memory.NewMatchupRepository(nil),
			runs:     memory.NewJobRunRepository(),
			close:    func() error { return nil },
		}
		logger.WarnContext(ctx, "repositories ready", "store", "memory")
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.leagues = cacherepo.NewLeagueRepository(repos.leagues, store)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
	}
	return repos, nil
}
