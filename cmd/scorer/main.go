package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/app"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/observability"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

func main() {
	once := flag.Bool("once", false, "run a single scoring pass and exit")
	flag.Parse()

	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	cfg.ServiceName = strings.TrimSuffix(cfg.ServiceName, "-api") + "-scorer"

	logger := logging.New(cfg.LogLevel, cfg.AppEnv, cfg.ServiceName).Named("scorer")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Debug("no .env file loaded, using process environment")
	}

	stopObservability, err := observability.Start(cfg, "scorer", logger)
	if err != nil {
		logger.Error("start observability", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := stopObservability(ctx); err != nil {
			logger.Warn("stop observability failed", "error", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scorer, err := app.NewScorer(ctx, cfg, logger)
	if err != nil {
		logger.Error("build scorer", "error", err)
		os.Exit(1)
	}

	if *once {
		runCtx := ctx
		if cfg.ScoringJobTimeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(ctx, cfg.ScoringJobTimeout)
			defer cancel()
		}
		runErr := scorer.RunOnce(runCtx)
		if err := scorer.Stop(context.Background()); err != nil {
			logger.Warn("stop scorer", "error", err)
		}
		if runErr != nil {
			logger.Error("matchup scoring failed", "error", runErr)
			os.Exit(1)
		}
		return
	}

	if err := scorer.Start(); err != nil {
		logger.Error("start scorer", "error", err)
		os.Exit(1)
	}
	<-ctx.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), cfg.ScoringJobTimeout+5*time.Second)
	defer cancel()
	if err := scorer.Stop(stopCtx); err != nil {
		logger.Error("stop scorer", "error", err)
		os.Exit(1)
	}
	logger.Info("scorer stopped")
}
