package league

import (
	"context"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
)

// Repository describes league persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	Create(ctx context.Context, l League) error
	// TransitionDraft applies t only when the stored status equals t.From.
	TransitionDraft(ctx context.Context, t DraftTransition) (bool, error)
	// UpdateDraftOrder only succeeds before the draft starts.
	UpdateDraftOrder(ctx context.Context, leagueID string, customOrder []string, randomize bool) (bool, error)
	UpdateScoringWeights(ctx context.Context, leagueID string, schedule scoring.WeightSchedule) error
}
