package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
)

var (
	draftDoneAt = time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC)
	week1Monday = time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
)

func newRosterService(w *testWorld, now time.Time) *RosterService {
	svc := NewRosterService(w.leagues, w.teams, w.draft, w.players, w.roster, w.games, time.UTC)
	svc.now = func() time.Time { return now }
	return svc
}

func TestRosterService_SaveLineup(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.completeDraft(t, draftDoneAt)
	svc := newRosterService(w, week1Monday.Add(9*time.Hour))
	date := week1Monday.AddDate(0, 0, 1)

	view, err := svc.SaveLineup(t.Context(), SaveLineupInput{
		UserID:   "user-1",
		LeagueID: memory.LeagueIDDemo,
		TeamID:   "team-1",
		Date:     date,
		Active:   []string{"nhl-c-01", "nhl-g-01"},
		Bench:    []string{"nhl-d-01"},
	})
	if err != nil {
		t.Fatalf("save lineup: %v", err)
	}
	if !view.Editable || len(view.Slots) != 3 {
		t.Fatalf("unexpected view: %+v", view)
	}
	for _, slot := range view.Slots {
		wantBench := slot.PlayerID == "nhl-d-01"
		if (slot.SlotType == roster.SlotBench) != wantBench {
			t.Fatalf("unexpected slot for %s: %s", slot.PlayerID, slot.SlotType)
		}
		if slot.PlayerID == "nhl-g-01" && !slot.IsGoalie {
			t.Fatalf("expected goalie flag on nhl-g-01")
		}
	}
}

func TestRosterService_SaveLineup_Rejections(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.completeDraft(t, draftDoneAt)
	now := week1Monday.AddDate(0, 0, 2).Add(9 * time.Hour)
	svc := newRosterService(w, now)
	ctx := t.Context()

	base := SaveLineupInput{
		UserID:   "user-1",
		LeagueID: memory.LeagueIDDemo,
		TeamID:   "team-1",
		Date:     week1Monday.AddDate(0, 0, 3),
		Active:   []string{"nhl-c-01"},
	}

	past := base
	past.Date = week1Monday
	if _, err := svc.SaveLineup(ctx, past); !errors.Is(err, roster.ErrPastDate) {
		t.Fatalf("expected ErrPastDate, got %v", err)
	}

	stranger := base
	stranger.UserID = "user-2"
	if _, err := svc.SaveLineup(ctx, stranger); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	unrostered := base
	unrostered.Active = []string{"nhl-c-02"}
	if _, err := svc.SaveLineup(ctx, unrostered); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unrostered player, got %v", err)
	}

	twice := base
	twice.Bench = []string{"nhl-c-01"}
	if _, err := svc.SaveLineup(ctx, twice); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for double assignment, got %v", err)
	}
}

func TestRosterService_SaveLineup_TodayLockedIsRejected(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.completeDraft(t, draftDoneAt)
	today := week1Monday.AddDate(0, 0, 1)
	svc := newRosterService(w, today.Add(23*time.Hour))
	ctx := t.Context()

	if _, err := w.roster.LockIfUnlocked(ctx, roster.LockRequest{
		LeagueID: memory.LeagueIDDemo, TeamID: "team-1", PlayerID: "nhl-c-01", Date: today, DefaultSlot: roster.SlotActive,
	}); err != nil {
		t.Fatalf("lock: %v", err)
	}

	_, err := svc.SaveLineup(ctx, SaveLineupInput{
		UserID:   "user-1",
		LeagueID: memory.LeagueIDDemo,
		TeamID:   "team-1",
		Date:     today,
		Bench:    []string{"nhl-c-01"},
	})
	if !errors.Is(err, roster.ErrSlotLocked) {
		t.Fatalf("expected ErrSlotLocked, got %v", err)
	}

	view, err := svc.GetLineup(ctx, memory.LeagueIDDemo, "team-1", today)
	if err != nil {
		t.Fatalf("get lineup: %v", err)
	}
	if view.Editable {
		t.Fatalf("expected locked lineup to be read-only")
	}
}

func TestRosterService_GetLineup_DefaultsToActive(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.completeDraft(t, draftDoneAt)
	svc := newRosterService(w, week1Monday)

	view, err := svc.GetLineup(t.Context(), memory.LeagueIDDemo, "team-2", week1Monday.AddDate(0, 0, 4))
	if err != nil {
		t.Fatalf("get lineup: %v", err)
	}
	if len(view.Slots) != 3 {
		t.Fatalf("expected three rostered players, got %d", len(view.Slots))
	}
	for _, slot := range view.Slots {
		if slot.SlotType != roster.SlotActive || slot.IsLocked {
			t.Fatalf("expected unlocked active default, got %+v", slot)
		}
	}

	if _, err := svc.GetLineup(t.Context(), memory.LeagueIDDemo, "team-9", week1Monday); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown team, got %v", err)
	}
}

func TestRosterService_SaveLineup_FreezesPlayersOnceTheirGameStarts(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.completeDraft(t, draftDoneAt)
	today := week1Monday.AddDate(0, 0, 1)
	ctx := t.Context()

	if err := w.games.Upsert(ctx, []game.Game{
		{ID: "g-edm", Date: today, HomeTeam: "EDM", AwayTeam: "VAN", StartsAt: today.Add(19 * time.Hour), Status: game.StatusFinal},
		{ID: "g-nyr", Date: today, HomeTeam: "NYR", AwayTeam: "BOS", StartsAt: today.Add(23 * time.Hour), Status: game.StatusScheduled},
		{ID: "g-col", Date: today, HomeTeam: "COL", AwayTeam: "DAL", StartsAt: today.Add(22 * time.Hour), Status: game.StatusScheduled},
	}); err != nil {
		t.Fatalf("upsert games: %v", err)
	}

	cases := []struct {
		name    string
		now     time.Time
		active  []string
		bench   []string
		wantErr error
	}{
		// nhl-c-01 plays for EDM, nhl-d-01 for COL, nhl-g-01 for NYR.
		{name: "morning before any game", now: today.Add(9 * time.Hour), active: []string{"nhl-d-01"}, bench: []string{"nhl-c-01"}},
		{name: "bench skater after the game went final", now: today.Add(23 * time.Hour), bench: []string{"nhl-c-01"}, wantErr: roster.ErrSlotLocked},
		{name: "puck dropped but feed still says scheduled", now: today.Add(22*time.Hour + 5*time.Minute), bench: []string{"nhl-d-01"}, wantErr: roster.ErrSlotLocked},
		{name: "later game not started yet", now: today.Add(22*time.Hour + 5*time.Minute), bench: []string{"nhl-g-01"}},
	}
	for _, tc := range cases {
		svc := newRosterService(w, tc.now)
		_, err := svc.SaveLineup(ctx, SaveLineupInput{
			UserID:   "user-1",
			LeagueID: memory.LeagueIDDemo,
			TeamID:   "team-1",
			Date:     today,
			Active:   tc.active,
			Bench:    tc.bench,
		})
		if tc.wantErr == nil && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
		if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.wantErr, err)
		}
	}

	slots, err := w.roster.ListByTeamDate(ctx, "team-1", today)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	for _, slot := range slots {
		if slot.PlayerID == "nhl-d-01" && slot.SlotType != roster.SlotActive {
			t.Fatalf("rejected write must not change nhl-d-01: %+v", slot)
		}
	}
}
