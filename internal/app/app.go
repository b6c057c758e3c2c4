package app

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/account/introspect"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/interfaces/httpapi"
	idgen "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/resilience"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

// Server is the API process: the HTTP server plus the storage it owns.
type Server struct {
	HTTP  *http.Server
	repos repositories
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	services := buildServices(repos, cfg, logger)
	verifier := introspect.NewClient(
		&http.Client{Timeout: cfg.AuthTimeout, Transport: otelhttp.NewTransport(http.DefaultTransport)},
		introspect.ClientConfig{
			BaseURL:        cfg.AuthBaseURL,
			IntrospectPath: cfg.AuthIntrospectPath,
			CacheTTL:       cfg.CacheTTL,
			Circuit: resilience.CircuitBreakerConfig{
				Enabled:          cfg.AuthCircuitEnabled,
				FailureThreshold: cfg.AuthCircuitFailureCount,
				OpenTimeout:      cfg.AuthCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMaxReq,
			},
		},
		logger.Named("introspect"),
	)

	handler := httpapi.NewHandler(services, logger.Named("httpapi"))
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	return &Server{
		HTTP: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		repos: repos,
	}, nil
}

// Shutdown drains in-flight requests and then releases storage.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownErr := s.HTTP.Shutdown(ctx)
	if err := s.repos.close(); err != nil && shutdownErr == nil {
		return fmt.Errorf("close repositories: %w", err)
	}
	return shutdownErr
}

func buildServices(repos repositories, cfg config.Config, logger *logging.Logger) httpapi.Services {
	ids := idgen.NewUUIDGenerator()
	draftService := usecase.NewDraftService(repos.leagues, repos.teams, repos.draft, repos.players, ids, logger.Named("draft"))

	return httpapi.Services{
		League:  usecase.NewLeagueService(repos.leagues, repos.teams, repos.matchups, ids, cfg.LeagueTimezone),
		Player:  usecase.NewPlayerService(repos.leagues, repos.players, repos.draft),
		Draft:   draftService,
		Queue:   usecase.NewQueueService(repos.leagues, repos.players, repos.draft, repos.queue, draftService, logger.Named("queue")),
		Roster:  usecase.NewRosterService(repos.leagues, repos.teams, repos.draft, repos.players, repos.roster, repos.games, cfg.LeagueTimezone),
		Matchup: usecase.NewMatchupService(repos.leagues, repos.teams, repos.matchups),
		Scoring: usecase.NewScoringService(repos.leagues),
		Job:     newMatchupScoringJob(repos, cfg, logger),
	}
}

func newMatchupScoringJob(repos repositories, cfg config.Config, logger *logging.Logger) *usecase.MatchupScoringJob {
	return usecase.NewMatchupScoringJob(
		usecase.MatchupScoringRepositories{
			Leagues:  repos.leagues,
			Teams:    repos.teams,
			Draft:    repos.draft,
			Players:  repos.players,
			Games:    repos.games,
			Stats:    repos.stats,
			Roster:   repos.roster,
			Matchups: repos.matchups,
			Runs:     repos.runs,
		},
		idgen.NewUUIDGenerator(),
		usecase.MatchupScoringJobConfig{
			Workers:  cfg.ScoringJobWorkers,
			Location: cfg.LeagueTimezone,
		},
		logger.Named("matchup-scoring"),
	)
}
