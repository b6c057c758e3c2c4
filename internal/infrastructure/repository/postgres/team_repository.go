package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) ListByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	query, args, err := qb.Select("*").From("teams").
		Where(
			qb.Eq("league_public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select teams by league query: %w", err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select teams by league: %w", err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, teamFromRow(row))
	}

	return out, nil
}

func (r *TeamRepository) GetByID(ctx context.Context, leagueID, teamID string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by id",
		qb.Eq("league_public_id", leagueID),
		qb.Eq("public_id", teamID),
		qb.IsNull("deleted_at"),
	)
}

func (r *TeamRepository) GetByOwner(ctx context.Context, leagueID, userID string) (team.Team, bool, error) {
	return r.getOne(ctx, "get team by owner",
		qb.Eq("league_public_id", leagueID),
		qb.Eq("owner_user_id", userID),
		qb.IsNull("deleted_at"),
	)
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertModel("teams", teamInsertModel{
		PublicID:    t.ID,
		LeagueID:    t.LeagueID,
		OwnerUserID: t.OwnerUserID,
		Name:        t.Name,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("team %s or owner %s already exists in league %s", t.ID, t.OwnerUserID, t.LeagueID)
		}
		return fmt.Errorf("insert team: %w", err)
	}
	return nil
}

func (r *TeamRepository) getOne(ctx context.Context, op string, where ...qb.Condition) (team.Team, bool, error) {
	query, args, err := qb.Select("*").From("teams").Where(where...).ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return teamFromRow(row), true, nil
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.PublicID,
		LeagueID:    row.LeagueID,
		OwnerUserID: row.OwnerUserID,
		Name:        row.Name,
		CreatedAt:   row.CreatedAt,
	}
}
