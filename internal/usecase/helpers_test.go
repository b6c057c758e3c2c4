package usecase

import (
	"testing"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

type testWorld struct {
	leagues  *memory.LeagueRepository
	teams    *memory.TeamRepository
	players  *memory.PlayerRepository
	draft    *memory.DraftRepository
	queue    *memory.QueueRepository
	roster   *memory.RosterRepository
	games    *memory.GameRepository
	stats    *memory.PlayerStatsRepository
	matchups *memory.MatchupRepository
	runs     *memory.JobRunRepository

	drafts *DraftService
}

func newTestWorld(t *testing.T) *testWorld {
	t.Helper()

	w := &testWorld{
		leagues:  memory.NewLeagueRepository(memory.SeedLeagues()),
		teams:    memory.NewTeamRepository(memory.SeedTeams()),
		players:  memory.NewPlayerRepository(memory.SeedPlayers()),
		queue:    memory.NewQueueRepository(),
		roster:   memory.NewRosterRepository(),
		games:    memory.NewGameRepository(nil),
		stats:    memory.NewPlayerStatsRepository(),
		matchups: memory.NewMatchupRepository(nil),
		runs:     memory.NewJobRunRepository(),
	}
	w.draft = memory.NewDraftRepository(w.leagues)
	w.drafts = NewDraftService(w.leagues, w.teams, w.draft, w.players, id.NewSequence("pick"), logging.NewNop())
	return w
}

// startDraft moves the demo league to an active draft with insertion order
// team-1..team-4.
func (w *testWorld) startDraft(t *testing.T) {
	t.Helper()

	ctx := t.Context()
	if _, err := w.drafts.OpenLobby(ctx, memory.DemoCommissionerUser, memory.LeagueIDDemo); err != nil {
		t.Fatalf("open lobby: %v", err)
	}
	state, err := w.drafts.StartDraft(ctx, memory.DemoCommissionerUser, memory.LeagueIDDemo)
	if err != nil {
		t.Fatalf("start draft: %v", err)
	}
	if state.Status != draft.StatusActive {
		t.Fatalf("expected active draft, got %s", state.Status)
	}
}

// pick submits playerID for the owner of teamID (team-N is owned by user-N).
func (w *testWorld) pick(t *testing.T, teamID, playerID string) PickResult {
	t.Helper()

	result, err := w.drafts.SubmitPick(t.Context(), SubmitPickInput{
		LeagueID: memory.LeagueIDDemo,
		UserID:   ownerOf(teamID),
		PlayerID: playerID,
	})
	if err != nil {
		t.Fatalf("pick %s by %s: %v", playerID, teamID, err)
	}
	return result
}

// completeDraft runs all 12 picks of the seeded league. Each team ends up with
// three players; draftCompletedAt is pinned to at.
func (w *testWorld) completeDraft(t *testing.T, at time.Time) {
	t.Helper()

	w.drafts.now = func() time.Time { return at }
	w.startDraft(t)
	for _, p := range seasonPicks {
		w.pick(t, p.team, p.player)
	}
}

var seasonPicks = []struct{ team, player string }{
	{"team-1", "nhl-c-01"}, {"team-2", "nhl-c-02"}, {"team-3", "nhl-c-03"}, {"team-4", "nhl-c-04"},
	{"team-4", "nhl-g-04"}, {"team-3", "nhl-g-03"}, {"team-2", "nhl-g-02"}, {"team-1", "nhl-g-01"},
	{"team-1", "nhl-d-01"}, {"team-2", "nhl-d-02"}, {"team-3", "nhl-d-03"}, {"team-4", "nhl-rw-02"},
}

func ownerOf(teamID string) string {
	return "user-" + teamID[len("team-"):]
}
