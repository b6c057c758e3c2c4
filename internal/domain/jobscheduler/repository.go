package jobscheduler

import "context"

type Repository interface {
	// RecordRun inserts or updates a run by RunID.
	RecordRun(ctx context.Context, run Run) error
	LatestRun(ctx context.Context, jobName string) (Run, bool, error)
}
