package queue

import "context"

type Repository interface {
	// List returns the user's entries for a league ordered by position.
	List(ctx context.Context, userID, leagueID string) ([]Entry, error)
	// Replace swaps the stored queue for entries in one transaction.
	Replace(ctx context.Context, userID, leagueID string, entries []Entry) error
}
