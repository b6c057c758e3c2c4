package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/jobscheduler"
	qb "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/querybuilder"
)

type JobRunRepository struct {
	db *sqlx.DB
}

func NewJobRunRepository(db *sqlx.DB) *JobRunRepository {
	return &JobRunRepository{db: db}
}

func (r *JobRunRepository) RecordRun(ctx context.Context, run jobscheduler.Run) error {
	runID := strings.TrimSpace(run.RunID)
	if runID == "" {
		return fmt.Errorf("run id is required")
	}

	model := jobRunTableModel{
		RunID:        runID,
		JobName:      run.JobName,
		Status:       string(run.Status),
		Leagues:      run.Leagues,
		Locked:       run.Locked,
		Updated:      run.Updated,
		Errored:      run.Errored,
		ErrorMessage: optionalString(run.ErrorMessage),
		StartedAt:    run.StartedAt.UTC(),
		FinishedAt:   nullableTime(run.FinishedAt),
	}
	query, args, err := qb.InsertModel("job_runs", model, `ON CONFLICT (run_id)
DO UPDATE SET
    status = EXCLUDED.status,
    leagues = EXCLUDED.leagues,
    locked = EXCLUDED.locked,
    updated = EXCLUDED.updated,
    errored = EXCLUDED.errored,
    error_message = EXCLUDED.error_message,
    finished_at = EXCLUDED.finished_at`)
	if err != nil {
		return fmt.Errorf("build upsert job run query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert job run run_id=%s status=%s: %w", runID, run.Status, err)
	}
	return nil
}

func (r *JobRunRepository) LatestRun(ctx context.Context, jobName string) (jobscheduler.Run, bool, error) {
	query, args, err := qb.Select("run_id", "job_name", "status", "leagues", "locked", "updated", "errored", "error_message", "started_at", "finished_at").
		From("job_runs").
		Where(qb.Eq("job_name", jobName)).
		OrderBy("started_at DESC").
		Limit(1).
		ToSQL()
	if err != nil {
		return jobscheduler.Run{}, false, fmt.Errorf("build latest job run query: %w", err)
	}

	var row jobRunTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return jobscheduler.Run{}, false, nil
		}
		return jobscheduler.Run{}, false, fmt.Errorf("get latest job run: %w", err)
	}

	run := jobscheduler.Run{
		RunID:      row.RunID,
		JobName:    row.JobName,
		Status:     jobscheduler.RunStatus(row.Status),
		Leagues:    row.Leagues,
		Locked:     row.Locked,
		Updated:    row.Updated,
		Errored:    row.Errored,
		StartedAt:  row.StartedAt,
		FinishedAt: nullableTime(row.FinishedAt),
	}
	if row.ErrorMessage != nil {
		run.ErrorMessage = *row.ErrorMessage
	}
	return run, true, nil
}
