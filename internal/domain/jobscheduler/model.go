package jobscheduler

import "time"

const JobMatchupScoring = "matchup-scoring"

type RunStatus string

const (
	StatusRunning   RunStatus = "running"
	StatusSucceeded RunStatus = "succeeded"
	// StatusPartial means the run finished but at least one league errored.
	StatusPartial RunStatus = "partial"
	StatusFailed  RunStatus = "failed"
)

// Run is the observable outcome of one scoring job invocation.
type Run struct {
	RunID        string
	JobName      string
	Status       RunStatus
	Leagues      int
	Locked       int
	Updated      int
	Errored      int
	ErrorMessage string
	StartedAt    time.Time
	FinishedAt   *time.Time
}
