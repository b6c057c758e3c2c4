package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type LeagueRepository struct {
	db *sqlx.DB
}

var leagueSelectColumns = []string{
	"id",
	"public_id",
	"name",
	"season",
	"commissioner_user_id",
	"roster_size",
	"draft_rounds",
	"draft_type",
	"draft_status",
	"custom_order::text AS custom_order",
	"randomize_order",
	"frozen_order::text AS frozen_order",
	"draft_started_at",
	"draft_completed_at",
	"scoring_weights::text AS scoring_weights",
	"created_at",
	"updated_at",
	"deleted_at",
}

func NewLeagueRepository(db *sqlx.DB) *LeagueRepository {
	return &LeagueRepository{db: db}
}

func (r *LeagueRepository) List(ctx context.Context) ([]league.League, error) {
	query, args, err := qb.Select(leagueSelectColumns...).From("leagues").
		Where(qb.IsNull("deleted_at")).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leagues query: %w", err)
	}

	var rows []leagueTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leagues: %w", err)
	}

	out := make([]league.League, 0, len(rows))
	for _, row := range rows {
		l, err := leagueFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID string) (league.League, bool, error) {
	query, args, err := qb.Select(leagueSelectColumns...).From("leagues").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return league.League{}, false, fmt.Errorf("build get league by id query: %w", err)
	}

	var row leagueTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return league.League{}, false, nil
		}
		return league.League{}, false, fmt.Errorf("get league by id: %w", err)
	}

	l, err := leagueFromRow(row)
	if err != nil {
		return league.League{}, false, err
	}
	return l, true, nil
}

func (r *LeagueRepository) Create(ctx context.Context, l league.League) error {
	customOrder, err := encodeJSON(nonNilStrings(l.CustomOrder))
	if err != nil {
		return fmt.Errorf("encode custom order: %w", err)
	}
	frozenOrder, err := encodeJSON(nonNilStrings(l.FrozenOrder))
	if err != nil {
		return fmt.Errorf("encode frozen order: %w", err)
	}
	weights := l.Weights
	if len(weights) == 0 {
		weights = scoring.NewWeightSchedule(scoring.DefaultWeights())
	}
	weightsJSON, err := encodeJSON(weights)
	if err != nil {
		return fmt.Errorf("encode scoring weights: %w", err)
	}

	status := l.DraftStatus
	if status == "" {
		status = draft.StatusNotStarted
	}

	query, args, err := qb.InsertModel("leagues", leagueInsertModel{
		PublicID:           l.ID,
		Name:               l.Name,
		Season:             l.Season,
		CommissionerUserID: l.CommissionerUserID,
		RosterSize:         l.RosterSize,
		DraftRounds:        l.DraftRounds,
		DraftType:          string(l.DraftType),
		DraftStatus:        string(status),
		CustomOrder:        customOrder,
		RandomizeOrder:     l.RandomizeOrder,
		FrozenOrder:        frozenOrder,
		ScoringWeights:     weightsJSON,
	}, "")
	if err != nil {
		return fmt.Errorf("build insert league query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("league %s already exists", l.ID)
		}
		return fmt.Errorf("insert league: %w", err)
	}
	return nil
}

// TransitionDraft is a single conditional UPDATE on draft_status.
func (r *LeagueRepository) TransitionDraft(ctx context.Context, t league.DraftTransition) (bool, error) {
	at := t.At.UTC()
	if at.IsZero() {
		at = time.Now().UTC()
	}

	builder := qb.Update("leagues").
		Set("draft_status", string(t.To)).
		Set("updated_at", at)
	if len(t.FrozenOrder) > 0 {
		frozen, err := encodeJSON(t.FrozenOrder)
		if err != nil {
			return false, fmt.Errorf("encode frozen order: %w", err)
		}
		builder = builder.SetExpr("frozen_order", "?::jsonb", frozen)
	}
	if startedAt := nullableTime(t.StartedAt); startedAt != nil {
		builder = builder.Set("draft_started_at", *startedAt)
	}
	if completedAt := nullableTime(t.CompletedAt); completedAt != nil {
		builder = builder.Set("draft_completed_at", *completedAt)
	}

	query, args, err := builder.Where(
		qb.Eq("public_id", t.LeagueID),
		qb.Eq("draft_status", string(t.From)),
		qb.IsNull("deleted_at"),
	).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build transition draft query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("transition draft league=%s %s->%s: %w", t.LeagueID, t.From, t.To, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read transition draft rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *LeagueRepository) UpdateDraftOrder(ctx context.Context, leagueID string, customOrder []string, randomize bool) (bool, error) {
	order, err := encodeJSON(nonNilStrings(customOrder))
	if err != nil {
		return false, fmt.Errorf("encode custom order: %w", err)
	}

	query, args, err := qb.Update("leagues").
		SetExpr("custom_order", "?::jsonb", order).
		Set("randomize_order", randomize).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", leagueID),
			qb.In("draft_status", []any{string(draft.StatusNotStarted), string(draft.StatusLobby)}),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update draft order query: %w", err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update draft order league=%s: %w", leagueID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read update draft order rows affected: %w", err)
	}
	return affected == 1, nil
}

func (r *LeagueRepository) UpdateScoringWeights(ctx context.Context, leagueID string, schedule scoring.WeightSchedule) error {
	weights, err := encodeJSON(schedule)
	if err != nil {
		return fmt.Errorf("encode scoring weights: %w", err)
	}

	query, args, err := qb.Update("leagues").
		SetExpr("scoring_weights", "?::jsonb", weights).
		SetExpr("updated_at", "NOW()").
		Where(
			qb.Eq("public_id", leagueID),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update scoring weights query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update scoring weights league=%s: %w", leagueID, err)
	}
	return nil
}

func leagueFromRow(row leagueTableModel) (league.League, error) {
	out := league.League{
		ID:                 row.PublicID,
		Name:               row.Name,
		Season:             row.Season,
		CommissionerUserID: row.CommissionerUserID,
		RosterSize:         row.RosterSize,
		DraftRounds:        row.DraftRounds,
		DraftType:          draft.Type(row.DraftType),
		DraftStatus:        draft.Status(row.DraftStatus),
		RandomizeOrder:     row.RandomizeOrder,
		DraftStartedAt:     nullableTime(row.DraftStartedAt),
		DraftCompletedAt:   nullableTime(row.DraftCompletedAt),
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
	}
	if err := decodeJSON(row.CustomOrder, &out.CustomOrder); err != nil {
		return league.League{}, fmt.Errorf("decode custom order league=%s: %w", row.PublicID, err)
	}
	if err := decodeJSON(row.FrozenOrder, &out.FrozenOrder); err != nil {
		return league.League{}, fmt.Errorf("decode frozen order league=%s: %w", row.PublicID, err)
	}
	if err := decodeJSON(row.ScoringWeights, &out.Weights); err != nil {
		return league.League{}, fmt.Errorf("decode scoring weights league=%s: %w", row.PublicID, err)
	}
	if len(out.CustomOrder) == 0 {
		out.CustomOrder = nil
	}
	if len(out.FrozenOrder) == 0 {
		out.FrozenOrder = nil
	}
	return out, nil
}

func nonNilStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
