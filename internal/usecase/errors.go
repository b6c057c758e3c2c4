package usecase

import (
	"errors"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
)

// Sentinels the transport layer maps onto status codes. Services wrap them
// with %w and a short detail.
var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrConflict              = errors.New("conflict")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

var pickRejections = []struct {
	err    error
	reason string
}{
	{draft.ErrWrongTurn, "wrongTurn"},
	{draft.ErrPlayerAlreadyDrafted, "playerAlreadyDrafted"},
	{draft.ErrDraftNotActive, "draftNotActive"},
	{draft.ErrDraftComplete, "draftComplete"},
	{draft.ErrPickConflict, "pickConflict"},
	{draft.ErrWrongRound, "wrongRound"},
}

// RejectionReason names the draft rule a pick broke, or "" when err is not
// a pick rejection.
func RejectionReason(err error) string {
	for _, r := range pickRejections {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return ""
}
