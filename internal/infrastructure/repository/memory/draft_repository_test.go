package memory

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
)

func activeLeagueRepo() *LeagueRepository {
	leagues := SeedLeagues()
	leagues[0].DraftStatus = draft.StatusActive
	return NewLeagueRepository(leagues)
}

func TestDraftRepository_InsertPick_OnlyOneWinnerPerSlot(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository(activeLeagueRepo())

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := repo.InsertPick(t.Context(), draft.Pick{
				ID:         fmt.Sprintf("pick-%d", i),
				LeagueID:   LeagueIDDemo,
				TeamID:     "team-1",
				PlayerID:   fmt.Sprintf("player-%d", i),
				Round:      1,
				PickNumber: 1,
			})
			if err != nil {
				t.Errorf("insert pick: %v", err)
				return
			}
			if ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	if got := wins.Load(); got != 1 {
		t.Fatalf("expected exactly one accepted pick, got %d", got)
	}
	count, _ := repo.CountPicks(t.Context(), LeagueIDDemo)
	if count != 1 {
		t.Fatalf("expected 1 pick stored, got %d", count)
	}
}

func TestDraftRepository_InsertPick_Guards(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository(activeLeagueRepo())
	ctx := t.Context()

	first := draft.Pick{ID: "p1", LeagueID: LeagueIDDemo, TeamID: "team-1", PlayerID: "nhl-c-01", Round: 1, PickNumber: 1}
	if ok, err := repo.InsertPick(ctx, first); err != nil || !ok {
		t.Fatalf("first pick: ok=%v err=%v", ok, err)
	}

	samePlayer := draft.Pick{ID: "p2", LeagueID: LeagueIDDemo, TeamID: "team-2", PlayerID: "nhl-c-01", Round: 1, PickNumber: 2}
	if ok, _ := repo.InsertPick(ctx, samePlayer); ok {
		t.Fatalf("expected duplicate player to be rejected")
	}

	skipped := draft.Pick{ID: "p3", LeagueID: LeagueIDDemo, TeamID: "team-3", PlayerID: "nhl-c-02", Round: 1, PickNumber: 3}
	if ok, _ := repo.InsertPick(ctx, skipped); ok {
		t.Fatalf("expected out-of-sequence pick number to be rejected")
	}
}

func TestDraftRepository_InsertPick_RequiresActiveDraft(t *testing.T) {
	t.Parallel()

	repo := NewDraftRepository(NewLeagueRepository(SeedLeagues()))
	ok, err := repo.InsertPick(t.Context(), draft.Pick{ID: "p1", LeagueID: LeagueIDDemo, PlayerID: "nhl-c-01", PickNumber: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected insert to be rejected while draft is not active")
	}
}

func TestDraftRepository_SoftDeleteLastPick_FreesSlotAndPlayer(t *testing.T) {
	t.Parallel()

	leagues := activeLeagueRepo()
	repo := NewDraftRepository(leagues)
	ctx := t.Context()

	for i, playerID := range []string{"nhl-c-01", "nhl-c-02"} {
		pick := draft.Pick{ID: playerID, LeagueID: LeagueIDDemo, PlayerID: playerID, PickNumber: i + 1}
		if ok, err := repo.InsertPick(ctx, pick); err != nil || !ok {
			t.Fatalf("insert pick %d: ok=%v err=%v", i+1, ok, err)
		}
	}

	removed, ok, err := repo.SoftDeleteLastPick(ctx, LeagueIDDemo, time.Now())
	if err != nil || !ok {
		t.Fatalf("soft delete: ok=%v err=%v", ok, err)
	}
	if removed.PickNumber != 2 || removed.DeletedAt == nil {
		t.Fatalf("unexpected removed pick: %+v", removed)
	}

	again := draft.Pick{ID: "redo", LeagueID: LeagueIDDemo, PlayerID: "nhl-c-02", PickNumber: 2}
	if ok, err := repo.InsertPick(ctx, again); err != nil || !ok {
		t.Fatalf("expected freed slot and player to be pickable, ok=%v err=%v", ok, err)
	}
}
