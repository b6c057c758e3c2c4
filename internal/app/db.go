package app

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/config"
)

const (
	dbMaxOpenConns       = 20
	dbMaxIdleConns       = 5
	dbConnMaxLifetime    = 30 * time.Minute
	dbPingTimeout        = 5 * time.Second
	maxTracedQueryLength = 512
)

// dbTarget is a postgres connection string plus the database name it points
// at, used for span attributes.
type dbTarget struct {
	dsn  string
	name string
}

// resolveDBTarget accepts both URL and key=value DSNs. Query parameters are
// only added to URL DSNs and never override values set by the operator.
func resolveDBTarget(raw string, disablePreparedBinary bool, applicationName string) dbTarget {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" {
		return dbTarget{dsn: raw, name: dsnValue(raw, "dbname")}
	}

	query := parsed.Query()
	changed := false
	setDefault := func(key, value string) {
		if value == "" || query.Get(key) != "" {
			return
		}
		query.Set(key, value)
		changed = true
	}
	if disablePreparedBinary {
		setDefault("disable_prepared_binary_result", "yes")
	}
	setDefault("application_name", applicationName)
	if changed {
		parsed.RawQuery = query.Encode()
	}

	return dbTarget{
		dsn:  parsed.String(),
		name: strings.TrimPrefix(parsed.Path, "/"),
	}
}

// DSN applies the connection defaults used by the api and scorer so other
// binaries such as the migrator connect the same way.
func DSN(raw string, disablePreparedBinary bool, applicationName string) string {
	return resolveDBTarget(raw, disablePreparedBinary, applicationName).dsn
}

func dsnValue(dsn, key string) string {
	for _, token := range strings.Fields(dsn) {
		value, ok := strings.CutPrefix(token, key+"=")
		if ok {
			return strings.Trim(value, `"'`)
		}
	}
	return ""
}

// formatDBQueryForTrace collapses whitespace so multi-line statements read
// as one line in span attributes.
func formatDBQueryForTrace(query string) string {
	normalized := strings.Join(strings.Fields(query), " ")
	if len(normalized) <= maxTracedQueryLength {
		return normalized
	}
	return normalized[:maxTracedQueryLength] + "..."
}

func openDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	target := resolveDBTarget(cfg.DBURL, cfg.DBDisablePreparedBinary, cfg.ServiceName)

	opts := []otelsql.Option{
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	}
	if target.name != "" {
		opts = append(opts, otelsql.WithDBName(target.name))
	}

	db, err := otelsqlx.Open("postgres", target.dsn, opts...)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(dbMaxOpenConns)
	db.SetMaxIdleConns(dbMaxIdleConns)
	db.SetConnMaxLifetime(dbConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
