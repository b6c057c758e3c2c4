package usecase

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"
	concpool "github.com/sourcegraph/conc/pool"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/calendar"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/game"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/jobscheduler"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/matchup"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/playerstats"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/id"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/resilience"
)

const defaultLockConcurrency = 8

type MatchupScoringJobConfig struct {
	// Workers bounds how many leagues are processed at once.
	Workers int
	// LockConcurrency bounds concurrent lock writes inside one league.
	LockConcurrency int
	Location        *time.Location
}

type MatchupScoringRepositories struct {
	Leagues  league.Repository
	Teams    team.Repository
	Draft    draft.Repository
	Players  player.Repository
	Games    game.Repository
	Stats    playerstats.Repository
	Roster   roster.Repository
	Matchups matchup.Repository
	Runs     jobscheduler.Repository
}

// MatchupScoringJob locks finished roster days and re-derives matchup totals
// from locked days only. Every write is conditional, so reruns and overlapping
// runs converge on the same state.
type MatchupScoringJob struct {
	repos  MatchupScoringRepositories
	idGen  id.Generator
	cfg    MatchupScoringJobConfig
	logger *logging.Logger

	flight  resilience.Group[jobscheduler.Run]
	lastRun atomic.Pointer[jobscheduler.Run]
	now     func() time.Time
}

func NewMatchupScoringJob(
	repos MatchupScoringRepositories,
	idGen id.Generator,
	cfg MatchupScoringJobConfig,
	logger *logging.Logger,
) *MatchupScoringJob {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.LockConcurrency <= 0 {
		cfg.LockConcurrency = defaultLockConcurrency
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &MatchupScoringJob{
		repos:  repos,
		idGen:  idGen,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// Run executes one pass. Concurrent callers in this process share a single
// in-flight pass and receive its outcome.
func (j *MatchupScoringJob) Run(ctx context.Context) (jobscheduler.Run, error) {
	run, err, shared := j.flight.Do(jobscheduler.JobMatchupScoring, func() (jobscheduler.Run, error) {
		return j.run(ctx)
	})
	if shared {
		j.logger.DebugContext(ctx, "matchup scoring run joined in-flight pass")
	}
	return run, err
}

// LastRun prefers the outcome kept in memory and falls back to storage.
func (j *MatchupScoringJob) LastRun(ctx context.Context) (jobscheduler.Run, bool, error) {
	if run := j.lastRun.Load(); run != nil {
		return *run, true, nil
	}
	if j.repos.Runs == nil {
		return jobscheduler.Run{}, false, nil
	}
	run, ok, err := j.repos.Runs.LatestRun(ctx, jobscheduler.JobMatchupScoring)
	if err != nil {
		return jobscheduler.Run{}, false, fmt.Errorf("latest job run: %w", err)
	}
	return run, ok, nil
}

type leagueOutcome struct {
	locked  int
	updated int
}

func (j *MatchupScoringJob) run(ctx context.Context) (jobscheduler.Run, error) {
	ctx, span := startSpan(ctx, "MatchupScoringJob.Run")
	defer span.End()

	runID, err := j.idGen.NewID()
	if err != nil {
		return jobscheduler.Run{}, fmt.Errorf("generate run id: %w", err)
	}
	run := jobscheduler.Run{
		RunID:     runID,
		JobName:   jobscheduler.JobMatchupScoring,
		Status:    jobscheduler.StatusRunning,
		StartedAt: j.now().UTC(),
	}
	j.record(ctx, run)

	leagues, err := j.repos.Leagues.List(ctx)
	if err != nil {
		run.Status = jobscheduler.StatusFailed
		run.ErrorMessage = err.Error()
		j.finish(ctx, &run)
		return run, fmt.Errorf("list leagues: %w", err)
	}

	eligible := make([]league.League, 0, len(leagues))
	for _, l := range leagues {
		if l.DraftStatus == draft.StatusCompleted && l.DraftCompletedAt != nil {
			eligible = append(eligible, l)
		}
	}
	run.Leagues = len(eligible)

	today := calendar.Date(j.now(), j.cfg.Location)

	var (
		locked   atomic.Int64
		updated  atomic.Int64
		errored  atomic.Int64
		errMu    sync.Mutex
		firstErr error
	)

	workerPool, err := ants.NewPool(j.cfg.Workers)
	if err != nil {
		run.Status = jobscheduler.StatusFailed
		run.ErrorMessage = err.Error()
		j.finish(ctx, &run)
		return run, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var workers sync.WaitGroup
	for _, item := range eligible {
		workers.Add(1)
		if err := workerPool.Submit(func() {
			defer workers.Done()

			outcome, err := j.scoreLeague(ctx, item, today)
			locked.Add(int64(outcome.locked))
			updated.Add(int64(outcome.updated))
			if err != nil {
				errored.Add(1)
				errMu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("league=%s: %w", item.ID, err)
				}
				errMu.Unlock()
				j.logger.WarnContext(ctx, "matchup scoring failed for league", "league_id", item.ID, "error", err)
			}
		}); err != nil {
			workers.Done()
			errored.Add(1)
			j.logger.ErrorContext(ctx, "submit league to worker pool failed", "league_id", item.ID, "error", err)
		}
	}
	workers.Wait()

	run.Locked = int(locked.Load())
	run.Updated = int(updated.Load())
	run.Errored = int(errored.Load())
	switch {
	case run.Errored == 0:
		run.Status = jobscheduler.StatusSucceeded
	case run.Errored >= run.Leagues:
		run.Status = jobscheduler.StatusFailed
	default:
		run.Status = jobscheduler.StatusPartial
	}
	if firstErr != nil {
		run.ErrorMessage = firstErr.Error()
	}
	j.finish(ctx, &run)
	return run, nil
}

func (j *MatchupScoringJob) finish(ctx context.Context, run *jobscheduler.Run) {
	finishedAt := j.now().UTC()
	run.FinishedAt = &finishedAt
	j.record(ctx, *run)

	stored := *run
	j.lastRun.Store(&stored)

	j.logger.InfoContext(ctx, "matchup scoring run finished",
		"run_id", run.RunID,
		"status", run.Status,
		"leagues", run.Leagues,
		"locked", run.Locked,
		"updated", run.Updated,
		"errored", run.Errored,
		"duration", finishedAt.Sub(run.StartedAt),
	)
}

func (j *MatchupScoringJob) record(ctx context.Context, run jobscheduler.Run) {
	if j.repos.Runs == nil {
		return
	}
	if err := j.repos.Runs.RecordRun(ctx, run); err != nil {
		j.logger.WarnContext(ctx, "record job run failed", "run_id", run.RunID, "error", err)
	}
}

// leagueRoster is the drafted roster of every team in a league.
type leagueRoster struct {
	byTeam  map[string][]string
	players map[string]player.Player
	ids     []string
}

func (j *MatchupScoringJob) scoreLeague(ctx context.Context, l league.League, today time.Time) (leagueOutcome, error) {
	var outcome leagueOutcome

	season := calendar.NewSeason(*l.DraftCompletedAt, j.cfg.Location)
	if !season.HasStarted(today) {
		return outcome, nil
	}
	currentWeek := season.WeekNumber(today)

	all, err := j.repos.Matchups.ListByLeague(ctx, l.ID)
	if err != nil {
		return outcome, fmt.Errorf("list matchups: %w", err)
	}
	pending := make(map[int][]matchup.Matchup)
	for _, m := range all {
		if m.Status == matchup.StatusCompleted || m.Week > currentWeek {
			continue
		}
		pending[m.Week] = append(pending[m.Week], m)
	}
	if len(pending) == 0 {
		return outcome, nil
	}

	rosters, err := j.loadRosters(ctx, l.ID)
	if err != nil {
		return outcome, err
	}

	for week, matchups := range pending {
		if err := ctx.Err(); err != nil {
			return outcome, err
		}

		teams := make(map[string]struct{}, len(matchups)*2)
		for _, m := range matchups {
			teams[m.TeamAID] = struct{}{}
			teams[m.TeamBID] = struct{}{}
		}

		weights := l.Weights.ForWeek(week)
		for _, date := range season.WeekDates(week) {
			if date.After(today) {
				break
			}
			n, err := j.lockDay(ctx, l.ID, date, today, teams, rosters, weights)
			outcome.locked += n
			if err != nil {
				return outcome, fmt.Errorf("lock %s: %w", date.Format(time.DateOnly), err)
			}
		}

		for _, m := range matchups {
			changed, err := j.rescore(ctx, m, season, today)
			if err != nil {
				return outcome, fmt.Errorf("rescore matchup=%s: %w", m.ID, err)
			}
			if changed {
				outcome.updated++
			}
		}
	}
	return outcome, nil
}

func (j *MatchupScoringJob) loadRosters(ctx context.Context, leagueID string) (leagueRoster, error) {
	picks, err := j.repos.Draft.ListPicks(ctx, leagueID)
	if err != nil {
		return leagueRoster{}, fmt.Errorf("list picks: %w", err)
	}

	out := leagueRoster{
		byTeam:  make(map[string][]string),
		players: make(map[string]player.Player, len(picks)),
		ids:     make([]string, 0, len(picks)),
	}
	for _, p := range picks {
		out.byTeam[p.TeamID] = append(out.byTeam[p.TeamID], p.PlayerID)
		out.ids = append(out.ids, p.PlayerID)
	}

	players, err := j.repos.Players.GetByIDs(ctx, out.ids)
	if err != nil {
		return leagueRoster{}, fmt.Errorf("get players by ids: %w", err)
	}
	for _, p := range players {
		out.players[p.ID] = p
	}
	return out, nil
}

// lockDay freezes every rostered player of teams on date once all of that
// date's relevant games are terminal. A date whose schedule is incomplete, or
// was never confirmed by a feed sync, is left for a later run.
func (j *MatchupScoringJob) lockDay(
	ctx context.Context,
	leagueID string,
	date, today time.Time,
	teams map[string]struct{},
	rosters leagueRoster,
	weights scoring.Weights,
) (int, error) {
	games, err := j.repos.Games.ListByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("list games: %w", err)
	}
	relevant := relevantGames(games, rosters)
	synced := false
	if len(relevant) == 0 {
		if synced, err = j.repos.Games.IsSynced(ctx, date); err != nil {
			return 0, fmt.Errorf("read schedule sync: %w", err)
		}
	}
	if !game.DayLockable(date, today, relevant, synced) {
		return 0, nil
	}

	stats, err := j.repos.Stats.ListByDate(ctx, date, rosters.ids)
	if err != nil {
		return 0, fmt.Errorf("list player stats: %w", err)
	}

	lockedAt := j.now().UTC()
	var locked atomic.Int64
	p := concpool.New().WithMaxGoroutines(j.cfg.LockConcurrency).WithContext(ctx)
	for teamID := range teams {
		for _, playerID := range rosters.byTeam[teamID] {
			info := rosters.players[playerID]
			line := stats[playerID]
			req := roster.LockRequest{
				LeagueID:     leagueID,
				TeamID:       teamID,
				PlayerID:     playerID,
				Date:         date,
				DefaultSlot:  roster.SlotActive,
				IsGoalie:     info.IsGoalie(),
				ActivePoints: scoring.ComputePoints(line, info.IsGoalie(), weights),
				Stats:        line,
				LockedAt:     lockedAt,
			}
			p.Go(func(ctx context.Context) error {
				ok, err := j.repos.Roster.LockIfUnlocked(ctx, req)
				if err != nil {
					return fmt.Errorf("lock team=%s player=%s: %w", req.TeamID, req.PlayerID, err)
				}
				if ok {
					locked.Add(1)
				}
				return nil
			})
		}
	}
	err = p.Wait()
	return int(locked.Load()), err
}

// rescore recomputes both totals from locked days of the matchup's week and
// writes them only when something changed.
func (j *MatchupScoringJob) rescore(ctx context.Context, m matchup.Matchup, season calendar.Season, today time.Time) (bool, error) {
	from, to := season.WeekStart(m.Week), season.WeekEnd(m.Week)

	slotsA, err := j.repos.Roster.ListByTeamRange(ctx, m.TeamAID, from, to)
	if err != nil {
		return false, fmt.Errorf("list roster team=%s: %w", m.TeamAID, err)
	}
	slotsB, err := j.repos.Roster.ListByTeamRange(ctx, m.TeamBID, from, to)
	if err != nil {
		return false, fmt.Errorf("list roster team=%s: %w", m.TeamBID, err)
	}

	scoreA, daysA, slotsLockedA := roster.SumLockedPoints(slotsA)
	scoreB, daysB, slotsLockedB := roster.SumLockedPoints(slotsB)
	lockedDays := min(daysA, daysB)
	lockedSlots := slotsLockedA + slotsLockedB

	next := matchup.StatusScheduled
	if daysA > 0 || daysB > 0 {
		next = matchup.StatusInProgress
	}
	if today.After(to) && daysA == calendar.DaysPerWeek && daysB == calendar.DaysPerWeek {
		next = matchup.StatusCompleted
	}
	status := matchup.Advance(m.Status, next)

	if m.ScoreA == scoreA && m.ScoreB == scoreB && m.LockedSlots == lockedSlots && m.LockedDays == lockedDays && m.Status == status {
		return false, nil
	}

	ok, err := j.repos.Matchups.UpdateScores(ctx, matchup.ScoreUpdate{
		MatchupID:   m.ID,
		ScoreA:      scoreA,
		ScoreB:      scoreB,
		LockedDays:  lockedDays,
		LockedSlots: lockedSlots,
		Status:      status,
		At:          j.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("update scores: %w", err)
	}
	return ok, nil
}

func relevantGames(games []game.Game, rosters leagueRoster) []game.Game {
	proTeams := make(map[string]struct{})
	for _, p := range rosters.players {
		if p.ProTeam != "" {
			proTeams[p.ProTeam] = struct{}{}
		}
	}
	out := make([]game.Game, 0, len(games))
	for _, g := range games {
		for proTeam := range proTeams {
			if g.Involves(proTeam) {
				out = append(out, g)
				break
			}
		}
	}
	return out
}
