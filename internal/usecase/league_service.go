package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/calendar"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/matchup"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
)

type LeagueService struct {
	leagueRepo  league.Repository
	teamRepo    team.Repository
	matchupRepo matchup.Repository
	idGen       id.Generator
	location    *time.Location
	now         func() time.Time
}

func NewLeagueService(
	leagueRepo league.Repository,
	teamRepo team.Repository,
	matchupRepo matchup.Repository,
	idGen id.Generator,
	location *time.Location,
) *LeagueService {
	if location == nil {
		location = time.UTC
	}
	return &LeagueService{
		leagueRepo:  leagueRepo,
		teamRepo:    teamRepo,
		matchupRepo: matchupRepo,
		idGen:       idGen,
		location:    location,
		now:         time.Now,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	return loadLeague(ctx, s.leagueRepo, leagueID)
}

func (s *LeagueService) ListTeamsByLeague(ctx context.Context, leagueID string) ([]team.Team, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	_, exists, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}

	return teams, nil
}

// WeekWindow is one Monday-Sunday matchup week.
type WeekWindow struct {
	Week  int
	Start time.Time
	End   time.Time
}

type SeasonCalendar struct {
	LeagueID    string
	Week1Start  time.Time
	CurrentWeek int
	Weeks       []WeekWindow
}

// Calendar returns week boundaries up to weeks past the current week.
// The season is undefined until the league's draft completes.
func (s *LeagueService) Calendar(ctx context.Context, leagueID string, weeksAhead int) (SeasonCalendar, error) {
	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return SeasonCalendar{}, err
	}
	if l.DraftCompletedAt == nil {
		return SeasonCalendar{}, fmt.Errorf("%w: league=%s draft has not completed", ErrConflict, l.ID)
	}
	if weeksAhead < 0 {
		weeksAhead = 0
	}

	season := calendar.NewSeason(*l.DraftCompletedAt, s.location)
	current := season.CurrentWeekNumber(s.now(), s.location)
	out := SeasonCalendar{
		LeagueID:    l.ID,
		Week1Start:  season.Week1Start(),
		CurrentWeek: current,
		Weeks:       make([]WeekWindow, 0, current+weeksAhead),
	}
	for w := 1; w <= current+weeksAhead; w++ {
		out.Weeks = append(out.Weeks, WeekWindow{Week: w, Start: season.WeekStart(w), End: season.WeekEnd(w)})
	}
	return out, nil
}

type UpdateScoringWeightsInput struct {
	UserID   string
	LeagueID string
	Weights  scoring.Weights
}

type UpdateScoringWeightsResult struct {
	EffectiveFromWeek int
	Schedule          scoring.WeightSchedule
}

// UpdateScoringWeights schedules new weights from the week after the current
// one. Before the season starts they apply from week 1. Days that are already
// locked keep the points frozen at lock time.
func (s *LeagueService) UpdateScoringWeights(ctx context.Context, input UpdateScoringWeightsInput) (UpdateScoringWeightsResult, error) {
	ctx, span := startSpan(ctx, "LeagueService.UpdateScoringWeights", leagueAttr(input.LeagueID))
	defer span.End()

	l, err := loadLeague(ctx, s.leagueRepo, input.LeagueID)
	if err != nil {
		return UpdateScoringWeightsResult{}, err
	}
	if !l.IsCommissioner(input.UserID) {
		return UpdateScoringWeightsResult{}, fmt.Errorf("%w: only the commissioner can edit scoring weights", ErrForbidden)
	}
	if err := validateWeights(input.Weights); err != nil {
		return UpdateScoringWeightsResult{}, err
	}

	effective := 1
	if l.DraftCompletedAt != nil {
		season := calendar.NewSeason(*l.DraftCompletedAt, s.location)
		today := calendar.Date(s.now(), s.location)
		if season.HasStarted(today) {
			effective = season.WeekNumber(today) + 1
		}
	}

	schedule, err := l.Weights.With(effective, input.Weights)
	if err != nil {
		return UpdateScoringWeightsResult{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.leagueRepo.UpdateScoringWeights(ctx, l.ID, schedule); err != nil {
		return UpdateScoringWeightsResult{}, fmt.Errorf("update scoring weights: %w", err)
	}

	return UpdateScoringWeightsResult{EffectiveFromWeek: effective, Schedule: schedule}, nil
}

type MatchupInput struct {
	Week    int
	TeamAID string
	TeamBID string
}

// CreateMatchups stores precomputed pairings from the external season calendar.
func (s *LeagueService) CreateMatchups(ctx context.Context, leagueID string, inputs []MatchupInput) ([]matchup.Matchup, error) {
	ctx, span := startSpan(ctx, "LeagueService.CreateMatchups", leagueAttr(leagueID), attribute.Int("matchup.count", len(inputs)))
	defer span.End()

	l, err := loadLeague(ctx, s.leagueRepo, leagueID)
	if err != nil {
		return nil, err
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: at least one matchup is required", ErrInvalidInput)
	}

	teams, err := s.teamRepo.ListByLeague(ctx, l.ID)
	if err != nil {
		return nil, fmt.Errorf("list teams by league: %w", err)
	}
	known := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		known[t.ID] = struct{}{}
	}

	now := s.now().UTC()
	out := make([]matchup.Matchup, 0, len(inputs))
	for _, in := range inputs {
		for _, teamID := range []string{in.TeamAID, in.TeamBID} {
			if _, ok := known[teamID]; !ok {
				return nil, fmt.Errorf("%w: team=%s is not in league=%s", ErrInvalidInput, teamID, l.ID)
			}
		}
		matchupID, err := s.idGen.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate matchup id: %w", err)
		}
		m := matchup.Matchup{
			ID:        matchupID,
			LeagueID:  l.ID,
			Week:      in.Week,
			TeamAID:   in.TeamAID,
			TeamBID:   in.TeamBID,
			Status:    matchup.StatusScheduled,
			UpdatedAt: now,
		}
		if err := m.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		out = append(out, m)
	}

	if err := s.matchupRepo.Create(ctx, out); err != nil {
		return nil, fmt.Errorf("create matchups: %w", err)
	}
	return out, nil
}

func validateWeights(w scoring.Weights) error {
	for stat := range w.Skater {
		if !isKnownStat(stat, scoring.SkaterStats) {
			return fmt.Errorf("%w: unknown skater stat %q", ErrInvalidInput, stat)
		}
	}
	for stat := range w.Goalie {
		if !isKnownStat(stat, scoring.GoalieStats) {
			return fmt.Errorf("%w: unknown goalie stat %q", ErrInvalidInput, stat)
		}
	}
	return nil
}

func isKnownStat(stat scoring.Stat, known []scoring.Stat) bool {
	for _, k := range known {
		if k == stat {
			return true
		}
	}
	return false
}

func loadLeague(ctx context.Context, repo league.Repository, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	l, exists, err := repo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !exists {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}
	return l, nil
}
