package usecase

import (
	"errors"
	"testing"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
)

func TestPlayerService_ListPlayers(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.startDraft(t)
	w.pick(t, "team-1", "nhl-g-01")

	svc := NewPlayerService(w.leagues, w.players, w.draft)
	ctx := t.Context()

	goalies, err := svc.ListPlayers(ctx, ListPlayersInput{LeagueID: memory.LeagueIDDemo, Position: "g"})
	if err != nil {
		t.Fatalf("list goalies: %v", err)
	}
	if len(goalies) != 4 {
		t.Fatalf("expected 4 goalies, got %d", len(goalies))
	}

	available, err := svc.ListPlayers(ctx, ListPlayersInput{LeagueID: memory.LeagueIDDemo, Position: player.PositionGoaltender, AvailableOnly: true})
	if err != nil {
		t.Fatalf("list available goalies: %v", err)
	}
	if len(available) != 3 {
		t.Fatalf("expected 3 available goalies, got %d", len(available))
	}
	for _, p := range available {
		if p.ID == "nhl-g-01" {
			t.Fatalf("drafted goalie nhl-g-01 listed as available")
		}
	}

	if _, err := svc.ListPlayers(ctx, ListPlayersInput{LeagueID: memory.LeagueIDDemo, Position: "QB"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown position, got %v", err)
	}
	if _, err := svc.GetPlayer(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
