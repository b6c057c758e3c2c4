package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/playerstats"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

type fakeFeed struct {
	days    map[time.Time]DayFeed
	fetched []time.Time
	err     error
}

func (f *fakeFeed) FetchDay(_ context.Context, date time.Time) (DayFeed, error) {
	f.fetched = append(f.fetched, date)
	if f.err != nil {
		return DayFeed{}, f.err
	}
	return f.days[date], nil
}

func TestFeedSyncService_SyncRecentStoresEveryDate(t *testing.T) {
	t.Parallel()

	games := memory.NewGameRepository(nil)
	players := memory.NewPlayerRepository(nil)
	stats := memory.NewPlayerStatsRepository()
	ctx := t.Context()

	oct6 := time.Date(2025, 10, 6, 0, 0, 0, 0, time.UTC)
	oct7 := oct6.AddDate(0, 0, 1)
	feed := &fakeFeed{days: map[time.Time]DayFeed{
		oct6: {
			Games:   []game.Game{{ID: "g-1", HomeTeam: "EDM", AwayTeam: "COL", Status: " final "}},
			Players: []player.Player{{ID: "c-01", Name: "Connor McDavid", ProTeam: "EDM", Position: player.PositionCenter}},
			Stats:   []playerstats.DayStats{{PlayerID: "c-01", GameID: "g-1", Stats: scoring.StatLine{scoring.StatGoals: 2}}},
		},
	}}

	svc := NewFeedSyncService(feed, games, players, stats, time.UTC, logging.NewNop())
	svc.now = func() time.Time { return oct7.Add(15 * time.Hour) }

	result, err := svc.SyncRecent(ctx, 1)
	if err != nil {
		t.Fatalf("sync recent: %v", err)
	}
	if result.Dates != 2 || result.Games != 1 || result.Players != 1 || result.Stats != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(feed.fetched) != 2 || !feed.fetched[0].Equal(oct6) || !feed.fetched[1].Equal(oct7) {
		t.Fatalf("unexpected fetch order: %v", feed.fetched)
	}

	stored, err := games.ListByDate(ctx, oct6)
	if err != nil {
		t.Fatalf("list games: %v", err)
	}
	if len(stored) != 1 || stored[0].Status != game.StatusFinal {
		t.Fatalf("expected normalized final game, got %+v", stored)
	}

	lines, err := stats.ListByDate(ctx, oct6, []string{"c-01"})
	if err != nil {
		t.Fatalf("list stats: %v", err)
	}
	if lines["c-01"][scoring.StatGoals] != 2 {
		t.Fatalf("unexpected stat line: %+v", lines)
	}

	if _, exists, _ := players.GetByID(ctx, "c-01"); !exists {
		t.Fatalf("expected player c-01 to be stored")
	}

	// oct7 had no games but its schedule is now confirmed.
	for _, date := range []time.Time{oct6, oct7} {
		if synced, err := games.IsSynced(ctx, date); err != nil || !synced {
			t.Fatalf("expected %s marked synced, got synced=%v err=%v", date.Format(time.DateOnly), synced, err)
		}
	}
}

func TestFeedSyncService_Errors(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	unconfigured := NewFeedSyncService(nil, memory.NewGameRepository(nil), memory.NewPlayerRepository(nil), memory.NewPlayerStatsRepository(), time.UTC, logging.NewNop())
	if _, err := unconfigured.SyncRecent(ctx, 1); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}

	boom := errors.New("provider down")
	failing := NewFeedSyncService(&fakeFeed{err: boom}, memory.NewGameRepository(nil), memory.NewPlayerRepository(nil), memory.NewPlayerStatsRepository(), time.UTC, logging.NewNop())
	if _, err := failing.SyncRecent(ctx, 0); !errors.Is(err, boom) {
		t.Fatalf("expected provider error, got %v", err)
	}
}

func TestFeedSyncService_FailedFetchLeavesDateUnsynced(t *testing.T) {
	t.Parallel()

	ctx := t.Context()
	games := memory.NewGameRepository(nil)
	today := time.Date(2025, 10, 7, 0, 0, 0, 0, time.UTC)

	svc := NewFeedSyncService(&fakeFeed{err: errors.New("circuit open")}, games, memory.NewPlayerRepository(nil), memory.NewPlayerStatsRepository(), time.UTC, logging.NewNop())
	svc.now = func() time.Time { return today.Add(9 * time.Hour) }
	if _, err := svc.SyncRecent(ctx, 0); err == nil {
		t.Fatalf("expected fetch error")
	}

	if synced, err := games.IsSynced(ctx, today); err != nil || synced {
		t.Fatalf("date must stay unsynced after a failed fetch, got synced=%v err=%v", synced, err)
	}
}
