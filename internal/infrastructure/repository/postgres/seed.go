package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo league into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM leagues WHERE deleted_at IS NULL`); err != nil {
		return fmt.Errorf("count leagues for bootstrap seed: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, l := range memory.SeedLeagues() {
		weights, err := encodeJSON(l.Weights)
		if err != nil {
			return fmt.Errorf("encode seed league %s weights: %w", l.ID, err)
		}
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO leagues (public_id, name, season, commissioner_user_id, roster_size, draft_rounds, draft_type, draft_status, scoring_weights)
VALUES (:public_id, :name, :season, :commissioner_user_id, :roster_size, :draft_rounds, :draft_type, :draft_status, CAST(:scoring_weights AS jsonb))
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":            l.ID,
			"name":                 l.Name,
			"season":               l.Season,
			"commissioner_user_id": l.CommissionerUserID,
			"roster_size":          l.RosterSize,
			"draft_rounds":         l.DraftRounds,
			"draft_type":           string(l.DraftType),
			"draft_status":         string(l.DraftStatus),
			"scoring_weights":      weights,
		})
		if err != nil {
			return fmt.Errorf("bind seed league %s query: %w", l.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed league %s: %w", l.ID, err)
		}
	}

	for _, t := range memory.SeedTeams() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO teams (public_id, league_public_id, owner_user_id, name)
VALUES (:public_id, :league_public_id, :owner_user_id, :name)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":        t.ID,
			"league_public_id": t.LeagueID,
			"owner_user_id":    t.OwnerUserID,
			"name":             t.Name,
		})
		if err != nil {
			return fmt.Errorf("bind seed team %s query: %w", t.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed team %s: %w", t.ID, err)
		}
	}

	for _, p := range memory.SeedPlayers() {
		sqlQuery, args, err := sqlx.Named(`
INSERT INTO players (public_id, name, pro_team, position)
VALUES (:public_id, :name, :pro_team, :position)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id": p.ID,
			"name":      p.Name,
			"pro_team":  p.ProTeam,
			"position":  string(p.Position),
		})
		if err != nil {
			return fmt.Errorf("bind seed player %s query: %w", p.ID, err)
		}
		sqlQuery = tx.Rebind(sqlQuery)
		if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
			return fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed tx: %w", err)
	}

	return nil
}
