package usecase

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
)

type SubmitPickInput struct {
	LeagueID string
	UserID   string
	PlayerID string
	// Round is optional; when set it must match the current round.
	Round int
}

type PickResult struct {
	Pick           draft.Pick
	NextTurn       *draft.Turn
	DraftCompleted bool
}

type DraftState struct {
	LeagueID   string
	Status     draft.Status
	Type       draft.Type
	Rounds     int
	Order      []string
	PickCount  int
	TotalPicks int
	Turn       *draft.Turn
	StartedAt  *time.Time
	EndedAt    *time.Time
}

// BoardSlot is one cell of the draft board; Pick is nil until the slot is filled.
type BoardSlot struct {
	draft.Turn
	Pick *draft.Pick
}

type DraftService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	draftRepo  draft.Repository
	playerRepo player.Repository
	idGen      id.Generator
	logger     *logging.Logger

	rngMu sync.Mutex
	rng   *rand.Rand
	now   func() time.Time
}

func NewDraftService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	draftRepo draft.Repository,
	playerRepo player.Repository,
	idGen id.Generator,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DraftService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		draftRepo:  draftRepo,
		playerRepo: playerRepo,
		idGen:      idGen,
		logger:     logger,
		rng:        rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		now:        time.Now,
	}
}

// SubmitPick validates and records one pick. The write is conditional on the
// pick count and player availability, so two concurrent submissions for the
// same slot or player cannot both succeed.
func (s *DraftService) SubmitPick(ctx context.Context, input SubmitPickInput) (PickResult, error) {
	ctx, span := startSpan(ctx, "DraftService.SubmitPick", leagueAttr(input.LeagueID))
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	input.PlayerID = strings.TrimSpace(input.PlayerID)
	if input.UserID == "" {
		return PickResult{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.PlayerID == "" {
		return PickResult{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	l, err := loadLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return PickResult{}, err
	}
	switch l.DraftStatus {
	case draft.StatusActive:
	case draft.StatusCompleted:
		return PickResult{}, fmt.Errorf("%w: league=%s", draft.ErrDraftComplete, l.ID)
	default:
		return PickResult{}, fmt.Errorf("%w: league=%s status=%s", draft.ErrDraftNotActive, l.ID, l.DraftStatus)
	}

	ownTeam, exists, err := s.teamRepo.GetByOwner(ctx, l.ID, input.UserID)
	if err != nil {
		return PickResult{}, fmt.Errorf("get team by owner: %w", err)
	}
	if !exists {
		return PickResult{}, fmt.Errorf("%w: user has no team in league=%s", ErrForbidden, l.ID)
	}

	if _, exists, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		return PickResult{}, fmt.Errorf("get player: %w", err)
	} else if !exists {
		return PickResult{}, fmt.Errorf("%w: player=%s", ErrNotFound, input.PlayerID)
	}

	picks, err := s.draftRepo.ListPicks(ctx, l.ID)
	if err != nil {
		return PickResult{}, fmt.Errorf("list picks: %w", err)
	}
	if isDrafted(picks, input.PlayerID) {
		return PickResult{}, fmt.Errorf("%w: player=%s", draft.ErrPlayerAlreadyDrafted, input.PlayerID)
	}

	turn, ok := draft.CurrentTurn(l.FrozenOrder, l.DraftRounds, l.DraftType, len(picks))
	if !ok {
		return PickResult{}, fmt.Errorf("%w: league=%s", draft.ErrDraftComplete, l.ID)
	}
	if turn.TeamID != ownTeam.ID {
		return PickResult{}, fmt.Errorf("%w: pick=%d belongs to team=%s", draft.ErrWrongTurn, turn.PickNumber, turn.TeamID)
	}
	if input.Round != 0 && input.Round != turn.Round {
		return PickResult{}, fmt.Errorf("%w: current round is %d", draft.ErrWrongRound, turn.Round)
	}

	pickID, err := s.idGen.NewID()
	if err != nil {
		return PickResult{}, fmt.Errorf("generate pick id: %w", err)
	}
	pick := draft.Pick{
		ID:         pickID,
		LeagueID:   l.ID,
		TeamID:     ownTeam.ID,
		PlayerID:   input.PlayerID,
		Round:      turn.Round,
		PickNumber: turn.PickNumber,
		PickedAt:   s.now().UTC(),
	}

	inserted, err := s.draftRepo.InsertPick(ctx, pick)
	if err != nil {
		return PickResult{}, fmt.Errorf("insert pick: %w", err)
	}
	if !inserted {
		return PickResult{}, s.classifyLostPick(ctx, l.ID, input.PlayerID)
	}

	s.logger.InfoContext(ctx, "draft pick accepted",
		"league_id", l.ID,
		"team_id", pick.TeamID,
		"player_id", pick.PlayerID,
		"pick_number", pick.PickNumber,
	)

	result := PickResult{Pick: pick}
	if next, ok := draft.CurrentTurn(l.FrozenOrder, l.DraftRounds, l.DraftType, pick.PickNumber); ok {
		result.NextTurn = &next
		return result, nil
	}

	completed, err := s.completeDraft(ctx, l.ID, pick.PickedAt)
	if err != nil {
		return PickResult{}, err
	}
	result.DraftCompleted = completed
	return result, nil
}

// classifyLostPick explains why a guarded insert wrote nothing.
func (s *DraftService) classifyLostPick(ctx context.Context, leagueID, playerID string) error {
	l, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("get league: %w", err)
	}
	if exists && l.DraftStatus != draft.StatusActive {
		return fmt.Errorf("%w: league=%s status=%s", draft.ErrDraftNotActive, leagueID, l.DraftStatus)
	}

	picks, err := s.draftRepo.ListPicks(ctx, leagueID)
	if err != nil {
		return fmt.Errorf("list picks: %w", err)
	}
	if isDrafted(picks, playerID) {
		return fmt.Errorf("%w: player=%s", draft.ErrPlayerAlreadyDrafted, playerID)
	}
	return fmt.Errorf("%w: league=%s", draft.ErrPickConflict, leagueID)
}

func (s *DraftService) completeDraft(ctx context.Context, leagueID string, at time.Time) (bool, error) {
	completedAt := at
	ok, err := s.leagueRepo.TransitionDraft(ctx, league.DraftTransition{
		LeagueID:    leagueID,
		From:        draft.StatusActive,
		To:          draft.StatusCompleted,
		CompletedAt: &completedAt,
		At:          at,
	})
	if err != nil {
		return false, fmt.Errorf("complete draft: %w", err)
	}
	if ok {
		s.logger.InfoContext(ctx, "draft completed", "league_id", leagueID)
	}
	return ok, nil
}

// CurrentTurn is derived from the pick count on every call; ok is false once
// the board is full or the draft has not started.
func (s *DraftService) CurrentTurn(ctx context.Context, leagueID string) (draft.Turn, bool, error) {
	state, err := s.State(ctx, leagueID)
	if err != nil {
		return draft.Turn{}, false, err
	}
	if state.Turn == nil {
		return draft.Turn{}, false, nil
	}
	return *state.Turn, true, nil
}

func (s *DraftService) State(ctx context.Context, leagueID string) (DraftState, error) {
	ctx, span := startSpan(ctx, "DraftService.State", leagueAttr(leagueID))
	defer span.End()

	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return DraftState{}, err
	}
	order, err := s.displayOrder(ctx, l)
	if err != nil {
		return DraftState{}, err
	}
	count, err := s.draftRepo.CountPicks(ctx, l.ID)
	if err != nil {
		return DraftState{}, fmt.Errorf("count picks: %w", err)
	}

	state := DraftState{
		LeagueID:   l.ID,
		Status:     l.DraftStatus,
		Type:       l.DraftType,
		Rounds:     l.DraftRounds,
		Order:      order,
		PickCount:  count,
		TotalPicks: draft.TotalPicks(len(order), l.DraftRounds),
		StartedAt:  l.DraftStartedAt,
		EndedAt:    l.DraftCompletedAt,
	}

	// A crash between the final pick and the status flip leaves an active
	// draft with a full board.
	if l.DraftStatus == draft.StatusActive && count >= state.TotalPicks {
		now := s.now().UTC()
		if _, err := s.completeDraft(ctx, l.ID, now); err != nil {
			return DraftState{}, err
		}
		state.Status = draft.StatusCompleted
		state.EndedAt = &now
	}

	if state.Status == draft.StatusActive || state.Status == draft.StatusPaused {
		if turn, ok := draft.CurrentTurn(order, l.DraftRounds, l.DraftType, count); ok {
			state.Turn = &turn
		}
	}
	return state, nil
}

// Board lists every slot with the pick that filled it. Before the draft
// starts the slots follow the order the draft would start with.
func (s *DraftService) Board(ctx context.Context, leagueID string) ([]BoardSlot, error) {
	ctx, span := startSpan(ctx, "DraftService.Board", leagueAttr(leagueID))
	defer span.End()

	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	order, err := s.displayOrder(ctx, l)
	if err != nil {
		return nil, err
	}
	picks, err := s.draftRepo.ListPicks(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}

	byNumber := make(map[int]draft.Pick, len(picks))
	for _, p := range picks {
		byNumber[p.PickNumber] = p
	}

	turns := draft.Board(order, l.DraftRounds, l.DraftType)
	out := make([]BoardSlot, 0, len(turns))
	for _, turn := range turns {
		slot := BoardSlot{Turn: turn}
		if p, ok := byNumber[turn.PickNumber]; ok {
			slot.Pick = &p
		}
		out = append(out, slot)
	}
	return out, nil
}

func (s *DraftService) ListPicks(ctx context.Context, leagueID string) ([]draft.Pick, error) {
	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	picks, err := s.draftRepo.ListPicks(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	return picks, nil
}

func (s *DraftService) OpenLobby(ctx context.Context, userID, leagueID string) (DraftState, error) {
	l, err := s.loadForCommissioner(ctx, userID, leagueID)
	if err != nil {
		return DraftState{}, err
	}
	if err := s.transition(ctx, l, draft.StatusLobby, nil); err != nil {
		return DraftState{}, err
	}
	return s.State(ctx, l.ID)
}

// StartDraft freezes the pick order and opens the board.
func (s *DraftService) StartDraft(ctx context.Context, userID, leagueID string) (DraftState, error) {
	ctx, span := startSpan(ctx, "DraftService.StartDraft", leagueAttr(leagueID))
	defer span.End()

	l, err := s.loadForCommissioner(ctx, userID, leagueID)
	if err != nil {
		return DraftState{}, err
	}
	if l.DraftStatus != draft.StatusLobby {
		return DraftState{}, fmt.Errorf("%w: %s -> %s", draft.ErrInvalidTransition, l.DraftStatus, draft.StatusActive)
	}

	teamIDs, err := s.teamIDs(ctx, l.ID)
	if err != nil {
		return DraftState{}, err
	}
	if len(teamIDs) < draft.MinTeams {
		return DraftState{}, fmt.Errorf("%w: have %d, need %d", draft.ErrNotEnoughTeams, len(teamIDs), draft.MinTeams)
	}

	s.rngMu.Lock()
	order, err := draft.EffectiveOrder(teamIDs, l.CustomOrder, l.RandomizeOrder, s.rng)
	s.rngMu.Unlock()
	if err != nil {
		return DraftState{}, err
	}

	if err := s.transition(ctx, l, draft.StatusActive, order); err != nil {
		return DraftState{}, err
	}
	s.logger.InfoContext(ctx, "draft started", "league_id", l.ID, "teams", len(order), "rounds", l.DraftRounds)
	return s.State(ctx, l.ID)
}

func (s *DraftService) PauseDraft(ctx context.Context, userID, leagueID string) (DraftState, error) {
	l, err := s.loadForCommissioner(ctx, userID, leagueID)
	if err != nil {
		return DraftState{}, err
	}
	if err := s.transition(ctx, l, draft.StatusPaused, nil); err != nil {
		return DraftState{}, err
	}
	return s.State(ctx, l.ID)
}

func (s *DraftService) ResumeDraft(ctx context.Context, userID, leagueID string) (DraftState, error) {
	l, err := s.loadForCommissioner(ctx, userID, leagueID)
	if err != nil {
		return DraftState{}, err
	}
	if l.DraftStatus != draft.StatusPaused {
		return DraftState{}, fmt.Errorf("%w: %s -> %s", draft.ErrInvalidTransition, l.DraftStatus, draft.StatusActive)
	}
	if err := s.transition(ctx, l, draft.StatusActive, nil); err != nil {
		return DraftState{}, err
	}
	return s.State(ctx, l.ID)
}

type SetDraftOrderInput struct {
	UserID    string
	LeagueID  string
	Order     []string
	Randomize bool
}

// SetDraftOrder stores a custom order or the randomize flag. It is rejected
// once the draft has started.
func (s *DraftService) SetDraftOrder(ctx context.Context, input SetDraftOrderInput) (DraftState, error) {
	l, err := s.loadForCommissioner(ctx, input.UserID, input.LeagueID)
	if err != nil {
		return DraftState{}, err
	}
	if l.DraftStatus != draft.StatusNotStarted && l.DraftStatus != draft.StatusLobby {
		return DraftState{}, fmt.Errorf("%w: order is frozen once the draft starts", draft.ErrInvalidTransition)
	}

	order, err := normalizeIDs(input.Order)
	if err != nil {
		return DraftState{}, err
	}
	if len(order) > 0 {
		teamIDs, err := s.teamIDs(ctx, l.ID)
		if err != nil {
			return DraftState{}, err
		}
		if err := draft.ValidateOrder(teamIDs, order); err != nil {
			return DraftState{}, err
		}
	}

	ok, err := s.leagueRepo.UpdateDraftOrder(ctx, l.ID, order, input.Randomize)
	if err != nil {
		return DraftState{}, fmt.Errorf("update draft order: %w", err)
	}
	if !ok {
		return DraftState{}, fmt.Errorf("%w: order is frozen once the draft starts", draft.ErrInvalidTransition)
	}
	return s.State(ctx, l.ID)
}

// UndoLastPick soft-deletes the most recent pick. The turn rolls back to that
// slot because turns are derived from the remaining pick count.
func (s *DraftService) UndoLastPick(ctx context.Context, userID, leagueID string) (draft.Pick, error) {
	ctx, span := startSpan(ctx, "DraftService.UndoLastPick", leagueAttr(leagueID))
	defer span.End()

	l, err := s.loadForCommissioner(ctx, userID, leagueID)
	if err != nil {
		return draft.Pick{}, err
	}
	switch l.DraftStatus {
	case draft.StatusActive, draft.StatusPaused:
	case draft.StatusCompleted:
		return draft.Pick{}, fmt.Errorf("%w: league=%s", draft.ErrDraftComplete, l.ID)
	default:
		return draft.Pick{}, fmt.Errorf("%w: league=%s status=%s", draft.ErrDraftNotActive, l.ID, l.DraftStatus)
	}

	removed, ok, err := s.draftRepo.SoftDeleteLastPick(ctx, l.ID, s.now().UTC())
	if err != nil {
		return draft.Pick{}, fmt.Errorf("soft delete last pick: %w", err)
	}
	if !ok {
		return draft.Pick{}, fmt.Errorf("%w: league=%s has no picks", ErrNotFound, l.ID)
	}

	s.logger.InfoContext(ctx, "draft pick undone",
		"league_id", l.ID,
		"player_id", removed.PlayerID,
		"pick_number", removed.PickNumber,
	)
	return removed, nil
}

func (s *DraftService) transition(ctx context.Context, l league.League, to draft.Status, frozen []string) error {
	if err := draft.ValidateTransition(l.DraftStatus, to); err != nil {
		return err
	}

	now := s.now().UTC()
	t := league.DraftTransition{
		LeagueID:    l.ID,
		From:        l.DraftStatus,
		To:          to,
		FrozenOrder: frozen,
		At:          now,
	}
	if l.DraftStatus == draft.StatusLobby && to == draft.StatusActive {
		t.StartedAt = &now
	}

	ok, err := s.leagueRepo.TransitionDraft(ctx, t)
	if err != nil {
		return fmt.Errorf("transition draft: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: status changed concurrently", draft.ErrInvalidTransition)
	}
	return nil
}

func (s *DraftService) loadForCommissioner(ctx context.Context, userID, leagueID string) (league.League, error) {
	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return league.League{}, err
	}
	if !l.IsCommissioner(strings.TrimSpace(userID)) {
		return league.League{}, fmt.Errorf("%w: only the commissioner can manage the draft", ErrForbidden)
	}
	return l, nil
}

// displayOrder is the frozen order once the draft has started and the order
// it would start with otherwise. Randomized leagues show insertion order until
// the shuffle happens.
func (s *DraftService) displayOrder(ctx context.Context, l league.League) ([]string, error) {
	if len(l.FrozenOrder) > 0 {
		return l.FrozenOrder, nil
	}
	teamIDs, err := s.teamIDs(ctx, l.ID)
	if err != nil {
		return nil, err
	}
	if len(l.CustomOrder) > 0 && draft.ValidateOrder(teamIDs, l.CustomOrder) == nil {
		return l.CustomOrder, nil
	}
	return teamIDs, nil
}

func (s *DraftService) teamIDs(ctx context.Context, leagueID string) ([]string, error) {
	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}
	out := make([]string, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.ID)
	}
	return out, nil
}

func isDrafted(picks []draft.Pick, playerID string) bool {
	for _, p := range picks {
		if p.PlayerID == playerID {
			return true
		}
	}
	return false
}

func draftedSet(picks []draft.Pick) map[string]struct{} {
	out := make(map[string]struct{}, len(picks))
	for _, p := range picks {
		out[p.PlayerID] = struct{}{}
	}
	return out
}
