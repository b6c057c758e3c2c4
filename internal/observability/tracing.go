package observability

import (
	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

func startTracing(cfg config.Config, role string, logger *logging.Logger) (Shutdown, error) {
	if !cfg.UptraceEnabled {
		return disabled(logger, "uptrace", "UPTRACE_ENABLED=false")
	}
	if blank(cfg.UptraceDSN) {
		return disabled(logger, "uptrace", "UPTRACE_DSN empty")
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(attribute.String("service.role", role)),
	)
	logger.Info("uptrace enabled",
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"role", role,
	)
	return uptrace.Shutdown, nil
}
