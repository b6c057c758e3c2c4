// Package observability starts the process-wide tracing and profiling
// exporters. Each one is optional and driven by config.
package observability

import (
	"context"
	"errors"
	"strings"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

// Shutdown flushes and stops whatever Start enabled.
type Shutdown func(context.Context) error

// Start enables uptrace tracing, pyroscope profiling and the pprof listener
// as configured. role tags profiles and logs with the binary, e.g. "api".
// On error anything already started is stopped before returning.
func Start(cfg config.Config, role string, logger *logging.Logger) (Shutdown, error) {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("observability")

	var stops []Shutdown
	shutdown := func(ctx context.Context) error {
		var errs []error
		for i := len(stops) - 1; i >= 0; i-- {
			errs = append(errs, stops[i](ctx))
		}
		return errors.Join(errs...)
	}

	starters := []struct {
		name  string
		start func(config.Config, string, *logging.Logger) (Shutdown, error)
	}{
		{"uptrace", startTracing},
		{"pyroscope", startProfiling},
		{"pprof", startPprof},
	}
	for _, s := range starters {
		stop, err := s.start(cfg, role, logger)
		if err != nil {
			_ = shutdown(context.Background())
			return nil, errors.Join(errors.New("start "+s.name), err)
		}
		if stop != nil {
			stops = append(stops, stop)
		}
	}
	return shutdown, nil
}

func disabled(logger *logging.Logger, name, reason string) (Shutdown, error) {
	logger.Debug(name+" disabled", "reason", reason)
	return nil, nil
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
