package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/calendar"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
)

type SaveLineupInput struct {
	UserID   string
	LeagueID string
	TeamID   string
	Date     time.Time
	Active   []string
	Bench    []string
}

// LineupView is a team's lineup for one date. Rostered players with no
// stored slot are shown as active.
type LineupView struct {
	TeamID   string
	Date     time.Time
	Slots    []roster.DaySlot
	Editable bool
}

type RosterService struct {
	leagueRepo league.Repository
	teamRepo   team.Repository
	draftRepo  draft.Repository
	playerRepo player.Repository
	rosterRepo roster.Repository
	gameRepo   game.Repository
	location   *time.Location
	now        func() time.Time
}

func NewRosterService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	draftRepo draft.Repository,
	playerRepo player.Repository,
	rosterRepo roster.Repository,
	gameRepo game.Repository,
	location *time.Location,
) *RosterService {
	if location == nil {
		location = time.UTC
	}
	return &RosterService{
		leagueRepo: leagueRepo,
		teamRepo:   teamRepo,
		draftRepo:  draftRepo,
		playerRepo: playerRepo,
		rosterRepo: rosterRepo,
		gameRepo:   gameRepo,
		location:   location,
		now:        time.Now,
	}
}

func (s *RosterService) GetLineup(ctx context.Context, leagueID, teamID string, date time.Time) (LineupView, error) {
	ctx, span := startSpan(ctx, "RosterService.GetLineup", leagueAttr(leagueID), teamAttr(teamID))
	defer span.End()

	l, t, err := s.loadTeam(ctx, leagueID, teamID)
	if err != nil {
		return LineupView{}, err
	}
	if date.IsZero() {
		return LineupView{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date = calendar.Date(date, time.UTC)

	rostered, err := s.rostered(ctx, l.ID, t.ID)
	if err != nil {
		return LineupView{}, err
	}
	stored, err := s.rosterRepo.ListByTeamDate(ctx, t.ID, date)
	if err != nil {
		return LineupView{}, fmt.Errorf("list roster slots: %w", err)
	}

	byPlayer := make(map[string]roster.DaySlot, len(stored))
	for _, slot := range stored {
		byPlayer[slot.PlayerID] = slot
	}
	slots := make([]roster.DaySlot, 0, len(rostered)+len(stored))
	for playerID := range rostered {
		if slot, ok := byPlayer[playerID]; ok {
			slots = append(slots, slot)
			delete(byPlayer, playerID)
			continue
		}
		slots = append(slots, roster.DaySlot{
			LeagueID: l.ID,
			TeamID:   t.ID,
			PlayerID: playerID,
			Date:     date,
			SlotType: roster.SlotActive,
		})
	}
	// Locked rows for players no longer rostered still show what scored.
	for _, slot := range byPlayer {
		if slot.IsLocked {
			slots = append(slots, slot)
		}
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].PlayerID < slots[j].PlayerID })

	return LineupView{
		TeamID:   t.ID,
		Date:     date,
		Slots:    slots,
		Editable: !date.Before(s.today()) && !anyLocked(slots),
	}, nil
}

// SaveLineup assigns active and bench slots for one date. Past dates, locked
// tuples and players whose game that date has already started are rejected;
// nothing is written when any target is frozen.
func (s *RosterService) SaveLineup(ctx context.Context, input SaveLineupInput) (LineupView, error) {
	ctx, span := startSpan(ctx, "RosterService.SaveLineup", leagueAttr(input.LeagueID), teamAttr(input.TeamID))
	defer span.End()

	input.UserID = strings.TrimSpace(input.UserID)
	if input.UserID == "" {
		return LineupView{}, fmt.Errorf("%w: user_id is required", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return LineupView{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date := calendar.Date(input.Date, time.UTC)

	l, t, err := s.loadTeam(ctx, input.LeagueID, input.TeamID)
	if err != nil {
		return LineupView{}, err
	}
	if t.OwnerUserID != input.UserID {
		return LineupView{}, fmt.Errorf("%w: team=%s belongs to another user", ErrForbidden, t.ID)
	}
	if date.Before(s.today()) {
		return LineupView{}, fmt.Errorf("%w: %s", roster.ErrPastDate, date.Format(time.DateOnly))
	}

	active, err := normalizeIDs(input.Active)
	if err != nil {
		return LineupView{}, err
	}
	bench, err := normalizeIDs(input.Bench)
	if err != nil {
		return LineupView{}, err
	}
	if len(active)+len(bench) == 0 {
		return LineupView{}, fmt.Errorf("%w: lineup must assign at least one player", ErrInvalidInput)
	}

	rostered, err := s.rostered(ctx, l.ID, t.ID)
	if err != nil {
		return LineupView{}, err
	}
	if err := roster.ValidateAssignment(rostered, active, bench); err != nil {
		return LineupView{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	stored, err := s.rosterRepo.ListByTeamDate(ctx, t.ID, date)
	if err != nil {
		return LineupView{}, fmt.Errorf("list roster slots: %w", err)
	}
	for _, slot := range stored {
		if slot.IsLocked {
			return LineupView{}, fmt.Errorf("%w: %s", roster.ErrSlotLocked, date.Format(time.DateOnly))
		}
	}

	players, err := s.playerRepo.GetByIDs(ctx, append(append([]string{}, active...), bench...))
	if err != nil {
		return LineupView{}, fmt.Errorf("get players by ids: %w", err)
	}
	if err := s.ensureNotStarted(ctx, date, players); err != nil {
		return LineupView{}, err
	}
	goalies := make(map[string]bool, len(players))
	for _, p := range players {
		goalies[p.ID] = p.IsGoalie()
	}

	slots := make([]roster.DaySlot, 0, len(active)+len(bench))
	for _, group := range []struct {
		ids      []string
		slotType roster.SlotType
	}{{active, roster.SlotActive}, {bench, roster.SlotBench}} {
		for _, playerID := range group.ids {
			slots = append(slots, roster.DaySlot{
				LeagueID: l.ID,
				TeamID:   t.ID,
				PlayerID: playerID,
				Date:     date,
				SlotType: group.slotType,
				IsGoalie: goalies[playerID],
			})
		}
	}

	if err := s.rosterRepo.UpsertUnlocked(ctx, slots); err != nil {
		if errors.Is(err, roster.ErrSlotLocked) {
			return LineupView{}, err
		}
		return LineupView{}, fmt.Errorf("upsert roster slots: %w", err)
	}

	return s.GetLineup(ctx, l.ID, t.ID, date)
}

func (s *RosterService) loadTeam(ctx context.Context, leagueID, teamID string) (league.League, team.Team, error) {
	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return league.League{}, team.Team{}, err
	}
	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return league.League{}, team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	t, exists, err := s.teamRepo.GetByID(ctx, l.ID, teamID)
	if err != nil {
		return league.League{}, team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return league.League{}, team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return l, t, nil
}

// rostered is the set of players the team drafted.
func (s *RosterService) rostered(ctx context.Context, leagueID, teamID string) (map[string]struct{}, error) {
	picks, err := s.draftRepo.ListPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list picks: %w", err)
	}
	out := make(map[string]struct{})
	for _, p := range picks {
		if p.TeamID == teamID {
			out[p.PlayerID] = struct{}{}
		}
	}
	return out, nil
}

// ensureNotStarted freezes a player's slot for date as soon as the player's
// pro-team game that day has started, ahead of the league-wide lock.
func (s *RosterService) ensureNotStarted(ctx context.Context, date time.Time, players []player.Player) error {
	games, err := s.gameRepo.ListByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("list games: %w", err)
	}
	now := s.now()
	for _, p := range players {
		for _, g := range games {
			if g.Involves(p.ProTeam) && g.Started(now) {
				return fmt.Errorf("%w: player=%s game=%s started", roster.ErrSlotLocked, p.ID, g.ID)
			}
		}
	}
	return nil
}

func (s *RosterService) today() time.Time {
	return calendar.Date(s.now(), s.location)
}

func anyLocked(slots []roster.DaySlot) bool {
	for _, slot := range slots {
		if slot.IsLocked {
			return true
		}
	}
	return false
}
