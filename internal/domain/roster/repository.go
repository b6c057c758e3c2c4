package roster

import (
	"context"
	"time"
)

type Repository interface {
	ListByTeamDate(ctx context.Context, teamID string, date time.Time) ([]DaySlot, error)
	// ListByTeamRange covers from..to inclusive.
	ListByTeamRange(ctx context.Context, teamID string, from, to time.Time) ([]DaySlot, error)
	// UpsertUnlocked writes slots atomically. If any target tuple is already
	// locked nothing is written and ErrSlotLocked is returned.
	UpsertUnlocked(ctx context.Context, slots []DaySlot) error
	// LockIfUnlocked inserts or locks the tuple in one conditional write.
	// locked is false when the tuple was already locked and the stored row is
	// untouched.
	LockIfUnlocked(ctx context.Context, req LockRequest) (locked bool, err error)
}
