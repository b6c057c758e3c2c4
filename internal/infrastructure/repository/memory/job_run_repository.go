package memory

import (
	"context"
	"sync"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/jobscheduler"
)

type JobRunRepository struct {
	mu   sync.RWMutex
	runs map[string]jobscheduler.Run
}

func NewJobRunRepository() *JobRunRepository {
	return &JobRunRepository{runs: make(map[string]jobscheduler.Run)}
}

func (r *JobRunRepository) RecordRun(_ context.Context, run jobscheduler.Run) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.runs[run.RunID] = run
	return nil
}

func (r *JobRunRepository) LatestRun(_ context.Context, jobName string) (jobscheduler.Run, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var (
		latest jobscheduler.Run
		found  bool
	)
	for _, run := range r.runs {
		if run.JobName != jobName {
			continue
		}
		if !found || run.StartedAt.After(latest.StartedAt) {
			latest = run
			found = true
		}
	}
	return latest, found, nil
}
