package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/infrastructure/repository/memory"
	draftmock "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/mocks/domain/draft"
	leaguemock "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/mocks/domain/league"
	playermock "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/mocks/domain/player"
	teammock "github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/mocks/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

func TestDraftService_SerpentineDraftToCompletion(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	completedAt := time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC)
	w.drafts.now = func() time.Time { return completedAt }
	w.startDraft(t)

	for i, p := range seasonPicks {
		result := w.pick(t, p.team, p.player)
		if result.Pick.PickNumber != i+1 {
			t.Fatalf("pick %d stored with number %d", i+1, result.Pick.PickNumber)
		}
		wantRound := i/4 + 1
		if result.Pick.Round != wantRound {
			t.Fatalf("pick %d: expected round %d, got %d", i+1, wantRound, result.Pick.Round)
		}
		last := i == len(seasonPicks)-1
		if result.DraftCompleted != last {
			t.Fatalf("pick %d: draft completed=%v", i+1, result.DraftCompleted)
		}
		if !last && result.NextTurn.TeamID != seasonPicks[i+1].team {
			t.Fatalf("pick %d: expected next team %s, got %s", i+1, seasonPicks[i+1].team, result.NextTurn.TeamID)
		}
	}

	l, _, _ := w.leagues.GetByID(t.Context(), memory.LeagueIDDemo)
	if l.DraftStatus != draft.StatusCompleted {
		t.Fatalf("expected completed draft, got %s", l.DraftStatus)
	}
	if l.DraftCompletedAt == nil || !l.DraftCompletedAt.Equal(completedAt) {
		t.Fatalf("unexpected draft completed at: %v", l.DraftCompletedAt)
	}

	_, err := w.drafts.SubmitPick(t.Context(), SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-1", PlayerID: "nhl-lw-01"})
	if !errors.Is(err, draft.ErrDraftComplete) {
		t.Fatalf("expected ErrDraftComplete after final pick, got %v", err)
	}
}

func TestDraftService_SubmitPick_RejectsRuleViolations(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	ctx := t.Context()

	_, err := w.drafts.SubmitPick(ctx, SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-1", PlayerID: "nhl-c-01"})
	if !errors.Is(err, draft.ErrDraftNotActive) {
		t.Fatalf("expected ErrDraftNotActive before start, got %v", err)
	}

	w.startDraft(t)

	_, err = w.drafts.SubmitPick(ctx, SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-2", PlayerID: "nhl-c-01"})
	if !errors.Is(err, draft.ErrWrongTurn) {
		t.Fatalf("expected ErrWrongTurn, got %v", err)
	}
	if RejectionReason(err) != "wrongTurn" {
		t.Fatalf("unexpected rejection reason: %q", RejectionReason(err))
	}

	_, err = w.drafts.SubmitPick(ctx, SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-1", PlayerID: "nhl-c-01", Round: 2})
	if !errors.Is(err, draft.ErrWrongRound) {
		t.Fatalf("expected ErrWrongRound, got %v", err)
	}

	_, err = w.drafts.SubmitPick(ctx, SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-9", PlayerID: "nhl-c-01"})
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for user without team, got %v", err)
	}

	_, err = w.drafts.SubmitPick(ctx, SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-1", PlayerID: "nobody"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown player, got %v", err)
	}

	w.pick(t, "team-1", "nhl-c-01")
	_, err = w.drafts.SubmitPick(ctx, SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-2", PlayerID: "nhl-c-01"})
	if !errors.Is(err, draft.ErrPlayerAlreadyDrafted) {
		t.Fatalf("expected ErrPlayerAlreadyDrafted, got %v", err)
	}
}

func TestDraftService_SubmitPick_ConcurrentSubmissionsAcceptOne(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.startDraft(t)

	playerIDs := []string{"nhl-c-01", "nhl-c-02", "nhl-c-03", "nhl-c-04", "nhl-d-01", "nhl-d-02", "nhl-d-03", "nhl-g-01"}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
		errs     []error
	)
	for _, playerID := range playerIDs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := w.drafts.SubmitPick(t.Context(), SubmitPickInput{
				LeagueID: memory.LeagueIDDemo,
				UserID:   "user-1",
				PlayerID: playerID,
			})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				accepted++
				return
			}
			errs = append(errs, err)
		}()
	}
	wg.Wait()

	if accepted != 1 {
		t.Fatalf("expected exactly one accepted pick, got %d", accepted)
	}
	for _, err := range errs {
		if !errors.Is(err, draft.ErrPickConflict) && !errors.Is(err, draft.ErrWrongTurn) {
			t.Fatalf("unexpected rejection: %v", err)
		}
	}

	count, _ := w.draft.CountPicks(t.Context(), memory.LeagueIDDemo)
	if count != 1 {
		t.Fatalf("expected one stored pick, got %d", count)
	}
}

func TestDraftService_UndoLastPick_RollsTurnBack(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	ctx := t.Context()
	w.startDraft(t)
	w.pick(t, "team-1", "nhl-c-01")
	w.pick(t, "team-2", "nhl-c-02")

	if _, err := w.drafts.UndoLastPick(ctx, "user-2", memory.LeagueIDDemo); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-commissioner, got %v", err)
	}

	removed, err := w.drafts.UndoLastPick(ctx, memory.DemoCommissionerUser, memory.LeagueIDDemo)
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if removed.PlayerID != "nhl-c-02" || removed.PickNumber != 2 {
		t.Fatalf("unexpected removed pick: %+v", removed)
	}

	turn, ok, err := w.drafts.CurrentTurn(ctx, memory.LeagueIDDemo)
	if err != nil || !ok {
		t.Fatalf("current turn: ok=%v err=%v", ok, err)
	}
	if turn.PickNumber != 2 || turn.TeamID != "team-2" {
		t.Fatalf("expected turn to roll back to pick 2 for team-2, got %+v", turn)
	}

	again := w.pick(t, "team-2", "nhl-c-02")
	if again.Pick.PickNumber != 2 {
		t.Fatalf("expected re-pick to reuse number 2, got %d", again.Pick.PickNumber)
	}
}

func TestDraftService_UndoLastPick_RejectedAfterCompletion(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	w.completeDraft(t, time.Date(2025, 10, 1, 20, 0, 0, 0, time.UTC))

	_, err := w.drafts.UndoLastPick(t.Context(), memory.DemoCommissionerUser, memory.LeagueIDDemo)
	if !errors.Is(err, draft.ErrDraftComplete) {
		t.Fatalf("expected ErrDraftComplete, got %v", err)
	}
}

func TestDraftService_StartDraft_UsesCustomOrder(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	ctx := t.Context()
	custom := []string{"team-3", "team-1", "team-4", "team-2"}

	if _, err := w.drafts.SetDraftOrder(ctx, SetDraftOrderInput{
		UserID:   memory.DemoCommissionerUser,
		LeagueID: memory.LeagueIDDemo,
		Order:    []string{"team-1", "team-1", "team-2", "team-3"},
	}); !errors.Is(err, draft.ErrInvalidOrder) {
		t.Fatalf("expected ErrInvalidOrder for non-permutation, got %v", err)
	}

	if _, err := w.drafts.SetDraftOrder(ctx, SetDraftOrderInput{
		UserID:    memory.DemoCommissionerUser,
		LeagueID:  memory.LeagueIDDemo,
		Order:     custom,
		Randomize: true,
	}); err != nil {
		t.Fatalf("set draft order: %v", err)
	}

	w.startDraft(t)

	board, err := w.drafts.Board(ctx, memory.LeagueIDDemo)
	if err != nil {
		t.Fatalf("board: %v", err)
	}
	if len(board) != 12 {
		t.Fatalf("expected 12 slots, got %d", len(board))
	}
	want := []string{"team-3", "team-1", "team-4", "team-2", "team-2", "team-4", "team-1", "team-3"}
	for i, teamID := range want {
		if board[i].TeamID != teamID {
			t.Fatalf("slot %d: expected %s, got %s", i+1, teamID, board[i].TeamID)
		}
	}

	if _, err := w.drafts.SetDraftOrder(ctx, SetDraftOrderInput{
		UserID:   memory.DemoCommissionerUser,
		LeagueID: memory.LeagueIDDemo,
		Order:    custom,
	}); !errors.Is(err, draft.ErrInvalidTransition) {
		t.Fatalf("expected order to be frozen after start, got %v", err)
	}
}

func TestDraftService_StartDraft_NeedsFourTeams(t *testing.T) {
	t.Parallel()

	leagues := memory.NewLeagueRepository(memory.SeedLeagues())
	teams := memory.NewTeamRepository(memory.SeedTeams()[:3])
	svc := NewDraftService(leagues, teams, memory.NewDraftRepository(leagues), memory.NewPlayerRepository(nil), id.NewSequence("pick"), logging.NewNop())

	if _, err := svc.OpenLobby(t.Context(), memory.DemoCommissionerUser, memory.LeagueIDDemo); err != nil {
		t.Fatalf("open lobby: %v", err)
	}
	_, err := svc.StartDraft(t.Context(), memory.DemoCommissionerUser, memory.LeagueIDDemo)
	if !errors.Is(err, draft.ErrNotEnoughTeams) {
		t.Fatalf("expected ErrNotEnoughTeams, got %v", err)
	}
}

func TestDraftService_PauseBlocksPicksUntilResume(t *testing.T) {
	t.Parallel()

	w := newTestWorld(t)
	ctx := t.Context()
	w.startDraft(t)

	if _, err := w.drafts.PauseDraft(ctx, memory.DemoCommissionerUser, memory.LeagueIDDemo); err != nil {
		t.Fatalf("pause: %v", err)
	}
	_, err := w.drafts.SubmitPick(ctx, SubmitPickInput{LeagueID: memory.LeagueIDDemo, UserID: "user-1", PlayerID: "nhl-c-01"})
	if !errors.Is(err, draft.ErrDraftNotActive) {
		t.Fatalf("expected ErrDraftNotActive while paused, got %v", err)
	}

	if _, err := w.drafts.ResumeDraft(ctx, memory.DemoCommissionerUser, memory.LeagueIDDemo); err != nil {
		t.Fatalf("resume: %v", err)
	}
	w.pick(t, "team-1", "nhl-c-01")

	if _, err := w.drafts.OpenLobby(ctx, memory.DemoCommissionerUser, memory.LeagueIDDemo); !errors.Is(err, draft.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for active -> lobby, got %v", err)
	}
}

func TestDraftService_SubmitPick_LostRaceReportsTakenPlayerUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	draftRepo := draftmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	svc := NewDraftService(leagueRepo, teamRepo, draftRepo, playerRepo, id.NewSequence("pick"), logging.NewNop())
	order := []string{"t1", "t2", "t3", "t4"}
	active := league.League{ID: "lg", DraftStatus: draft.StatusActive, DraftType: draft.TypeSerpentine, DraftRounds: 2, FrozenOrder: order}
	matchCtx := mock.MatchedBy(func(v context.Context) bool { return v == ctx })

	leagueRepo.On("GetByID", matchCtx, "lg").Return(active, true, nil).Twice()
	teamRepo.On("GetByOwner", matchCtx, "lg", "u1").Return(team.Team{ID: "t1", LeagueID: "lg", OwnerUserID: "u1"}, true, nil).Once()
	playerRepo.On("GetByID", matchCtx, "p9").Return(player.Player{ID: "p9"}, true, nil).Once()
	draftRepo.On("ListPicks", matchCtx, "lg").Return([]draft.Pick{}, nil).Once()
	draftRepo.On("InsertPick", matchCtx, mock.MatchedBy(func(p draft.Pick) bool {
		return p.PickNumber == 1 && p.TeamID == "t1" && p.PlayerID == "p9"
	})).Return(false, nil).Once()
	draftRepo.On("ListPicks", matchCtx, "lg").Return([]draft.Pick{{PlayerID: "p9", PickNumber: 1}}, nil).Once()

	_, err := svc.SubmitPick(ctx, SubmitPickInput{LeagueID: "lg", UserID: "u1", PlayerID: "p9"})
	if !errors.Is(err, draft.ErrPlayerAlreadyDrafted) {
		t.Fatalf("expected ErrPlayerAlreadyDrafted, got %v", err)
	}
}

func TestDraftService_State_HealsFullBoardUsingMockery(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	teamRepo := teammock.NewRepository(t)
	draftRepo := draftmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)

	svc := NewDraftService(leagueRepo, teamRepo, draftRepo, playerRepo, id.NewSequence("pick"), logging.NewNop())
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	order := []string{"t1", "t2", "t3", "t4"}
	matchCtx := mock.MatchedBy(func(v context.Context) bool { return v == ctx })
	leagueRepo.On("GetByID", matchCtx, "lg").
		Return(league.League{ID: "lg", DraftStatus: draft.StatusActive, DraftType: draft.TypeSerpentine, DraftRounds: 1, FrozenOrder: order}, true, nil).
		Once()
	draftRepo.On("CountPicks", matchCtx, "lg").Return(4, nil).Once()
	leagueRepo.On("TransitionDraft", matchCtx, mock.MatchedBy(func(tr league.DraftTransition) bool {
		return tr.From == draft.StatusActive && tr.To == draft.StatusCompleted && tr.CompletedAt != nil
	})).Return(true, nil).Once()

	state, err := svc.State(ctx, "lg")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Status != draft.StatusCompleted || state.Turn != nil {
		t.Fatalf("expected completed state without a turn, got %+v", state)
	}
}

func TestRejectionReason(t *testing.T) {
	t.Parallel()

	cases := map[error]string{
		fmt.Errorf("x: %w", draft.ErrPlayerAlreadyDrafted): "playerAlreadyDrafted",
		fmt.Errorf("x: %w", draft.ErrDraftNotActive):       "draftNotActive",
		fmt.Errorf("x: %w", draft.ErrPickConflict):         "pickConflict",
		ErrNotFound: "",
	}
	for err, want := range cases {
		if got := RejectionReason(err); got != want {
			t.Fatalf("RejectionReason(%v)=%q want %q", err, got, want)
		}
	}
}
