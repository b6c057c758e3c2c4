package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
	leaguemock "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/mocks/domain/league"
	matchupmock "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/mocks/domain/matchup"
	teammock "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/mocks/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

func TestLeagueService_ListTeamsByLeague_SuccessUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchupRepo := matchupmock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo, matchupRepo, id.NewSequence("m"), time.UTC)
	leagueID := "citrus-2025"
	expectedTeams := []team.Team{
		{ID: "team-a", LeagueID: leagueID, OwnerUserID: "u-a", Name: "Blood Oranges"},
		{ID: "team-b", LeagueID: leagueID, OwnerUserID: "u-b", Name: "Key Limes"},
	}

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{ID: leagueID}, true, nil).
		Once()
	teamRepo.
		On("ListByLeague", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(expectedTeams, nil).
		Once()

	got, err := service.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		t.Fatalf("list teams by league: %v", err)
	}
	if len(got) != len(expectedTeams) {
		t.Fatalf("unexpected team count: got=%d want=%d", len(got), len(expectedTeams))
	}
	if got[0].ID != expectedTeams[0].ID {
		t.Fatalf("unexpected team id: got=%s want=%s", got[0].ID, expectedTeams[0].ID)
	}
}

func TestLeagueService_ListTeamsByLeague_LeagueNotFoundUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	matchupRepo := matchupmock.NewRepository(t)

	service := NewLeagueService(leagueRepo, teamRepo, matchupRepo, id.NewSequence("m"), time.UTC)
	leagueID := "missing-league"

	leagueRepo.
		On("GetByID", mock.MatchedBy(func(v context.Context) bool { return v == ctx }), leagueID).
		Return(league.League{}, false, nil).
		Once()

	_, err := service.ListTeamsByLeague(ctx, leagueID)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	teamRepo.AssertNotCalled(t, "ListByLeague", mock.Anything, mock.Anything)
}

func TestLeagueService_UpdateScoringWeights_AppliesFromNextWeek(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.completeDraft(t, draftDoneAt)
	svc := NewLeagueService(w.leagues, w.teams, w.matchups, id.NewSequence("m"), time.UTC)
	svc.now = func() time.Time { return week1Monday.AddDate(0, 0, 9) }
	ctx := t.Context()

	custom := scoring.DefaultWeights()
	custom.Skater[scoring.StatHits] = 1

	if _, err := svc.UpdateScoringWeights(ctx, UpdateScoringWeightsInput{UserID: "user-2", LeagueID: memory.LeagueIDDemo, Weights: custom}); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	result, err := svc.UpdateScoringWeights(ctx, UpdateScoringWeightsInput{UserID: memory.DemoCommissionerUser, LeagueID: memory.LeagueIDDemo, Weights: custom})
	if err != nil {
		t.Fatalf("update weights: %v", err)
	}
	if result.EffectiveFromWeek != 3 {
		t.Fatalf("expected weights from week 3, got %d", result.EffectiveFromWeek)
	}

	l, _, _ := w.leagues.GetByID(ctx, memory.LeagueIDDemo)
	if got := l.Weights.ForWeek(2).Skater[scoring.StatHits]; got != scoring.DefaultWeights().Skater[scoring.StatHits] {
		t.Fatalf("week 2 weights changed: hits=%v", got)
	}
	if got := l.Weights.ForWeek(3).Skater[scoring.StatHits]; got != 1 {
		t.Fatalf("week 3 weights not applied: hits=%v", got)
	}

	bad := scoring.Weights{Skater: scoring.Table{"faceoffs": 1}}
	if _, err := svc.UpdateScoringWeights(ctx, UpdateScoringWeightsInput{UserID: memory.DemoCommissionerUser, LeagueID: memory.LeagueIDDemo, Weights: bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown stat, got %v", err)
	}
}

func TestLeagueService_CalendarAndMatchups(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	svc := NewLeagueService(w.leagues, w.teams, w.matchups, id.NewSequence("m"), time.UTC)
	ctx := t.Context()

	if _, err := svc.Calendar(ctx, memory.LeagueIDDemo, 1); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict before the draft completes, got %v", err)
	}

	w.completeDraft(t, draftDoneAt)
	svc.now = func() time.Time { return week1Monday.AddDate(0, 0, 8) }

	cal, err := svc.Calendar(ctx, memory.LeagueIDDemo, 1)
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if !cal.Week1Start.Equal(week1Monday) || cal.CurrentWeek != 2 || len(cal.Weeks) != 3 {
		t.Fatalf("unexpected calendar: %+v", cal)
	}
	if !cal.Weeks[1].End.Equal(week1Monday.AddDate(0, 0, 13)) {
		t.Fatalf("unexpected week 2 end: %v", cal.Weeks[1].End)
	}

	created, err := svc.CreateMatchups(ctx, memory.LeagueIDDemo, []MatchupInput{
		{Week: 1, TeamAID: "team-1", TeamBID: "team-2"},
		{Week: 1, TeamAID: "team-3", TeamBID: "team-4"},
	})
	if err != nil {
		t.Fatalf("create matchups: %v", err)
	}
	if len(created) != 2 || created[0].ID == "" {
		t.Fatalf("unexpected created matchups: %+v", created)
	}

	if _, err := svc.CreateMatchups(ctx, memory.LeagueIDDemo, []MatchupInput{{Week: 2, TeamAID: "team-1", TeamBID: "team-x"}}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown team, got %v", err)
	}
}
