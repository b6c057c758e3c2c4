package httpapi

import (
	"time"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/jobscheduler"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/league"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/matchup"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/team"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

type submitPickRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
	Round    int    `json:"round" validate:"omitempty,min=1"`
}

type draftOrderRequest struct {
	TeamIDs   []string `json:"team_ids" validate:"omitempty,dive,required"`
	Randomize bool     `json:"randomize"`
}

type enqueueRequest struct {
	PlayerID string `json:"player_id" validate:"required"`
}

type reorderRequest struct {
	Position *int `json:"position" validate:"required,min=0"`
}

type saveLineupRequest struct {
	Date   string   `json:"date" validate:"required,datetime=2006-01-02"`
	Active []string `json:"active" validate:"dive,required"`
	Bench  []string `json:"bench" validate:"dive,required"`
}

type scoringWeightsRequest struct {
	Skater map[string]float64 `json:"skater" validate:"required"`
	Goalie map[string]float64 `json:"goalie" validate:"required"`
}

type calculatePointsRequest struct {
	Stats    map[string]int         `json:"stats" validate:"required"`
	IsGoalie bool                   `json:"is_goalie"`
	Weights  *scoringWeightsRequest `json:"weights"`
	LeagueID string                 `json:"league_id"`
	Week     int                    `json:"week" validate:"omitempty,min=1"`
}

type createMatchupsRequest struct {
	LeagueID string               `json:"league_id" validate:"required"`
	Matchups []createMatchupEntry `json:"matchups" validate:"required,min=1,dive"`
}

type createMatchupEntry struct {
	Week    int    `json:"week" validate:"required,min=1"`
	TeamAID string `json:"team_a_id" validate:"required"`
	TeamBID string `json:"team_b_id" validate:"required,nefield=TeamAID"`
}

type leagueDTO struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Season             string             `json:"season"`
	CommissionerUserID string             `json:"commissioner_user_id"`
	RosterSize         int                `json:"roster_size"`
	DraftRounds        int                `json:"draft_rounds"`
	DraftType          string             `json:"draft_type"`
	DraftStatus        string             `json:"draft_status"`
	RandomizeOrder     bool               `json:"randomize_order"`
	DraftCompletedAt   string             `json:"draft_completed_at,omitempty"`
	ScoringWeights     []weightVersionDTO `json:"scoring_weights"`
}

type weightVersionDTO struct {
	EffectiveFromWeek int                `json:"effective_from_week"`
	Skater            map[string]float64 `json:"skater"`
	Goalie            map[string]float64 `json:"goalie"`
}

type teamDTO struct {
	ID          string `json:"id"`
	LeagueID    string `json:"league_id"`
	OwnerUserID string `json:"owner_user_id"`
	Name        string `json:"name"`
}

type playerDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ProTeam  string `json:"pro_team"`
	Position string `json:"position"`
	IsGoalie bool   `json:"is_goalie"`
}

type turnDTO struct {
	PickNumber int    `json:"pick_number"`
	Round      int    `json:"round"`
	TeamID     string `json:"team_id"`
}

type pickDTO struct {
	ID         string `json:"id"`
	TeamID     string `json:"team_id"`
	PlayerID   string `json:"player_id"`
	Round      int    `json:"round"`
	PickNumber int    `json:"pick_number"`
	PickedAt   string `json:"picked_at"`
}

type draftStateDTO struct {
	LeagueID    string   `json:"league_id"`
	Status      string   `json:"status"`
	Type        string   `json:"type"`
	Rounds      int      `json:"rounds"`
	Order       []string `json:"order"`
	PickCount   int      `json:"pick_count"`
	TotalPicks  int      `json:"total_picks"`
	CurrentTurn *turnDTO `json:"current_turn,omitempty"`
	StartedAt   string   `json:"started_at,omitempty"`
	CompletedAt string   `json:"completed_at,omitempty"`
}

type boardSlotDTO struct {
	turnDTO
	Pick *pickDTO `json:"pick,omitempty"`
}

type pickResultDTO struct {
	Pick           pickDTO  `json:"pick"`
	NextTurn       *turnDTO `json:"next_turn,omitempty"`
	DraftCompleted bool     `json:"draft_completed"`
}

type queueItemDTO struct {
	PlayerID string `json:"player_id"`
	Position int    `json:"position"`
	Drafted  bool   `json:"drafted"`
	AddedAt  string `json:"added_at"`
}

type rosterSlotDTO struct {
	PlayerID string         `json:"player_id"`
	SlotType string         `json:"slot_type"`
	IsGoalie bool           `json:"is_goalie"`
	IsLocked bool           `json:"is_locked"`
	LockedAt string         `json:"locked_at,omitempty"`
	Points   float64        `json:"points"`
	Stats    map[string]int `json:"stats,omitempty"`
}

type lineupDTO struct {
	TeamID   string          `json:"team_id"`
	Date     string          `json:"date"`
	Editable bool            `json:"editable"`
	Slots    []rosterSlotDTO `json:"slots"`
}

type weekDTO struct {
	Week  int    `json:"week"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type calendarDTO struct {
	LeagueID    string    `json:"league_id"`
	Week1Start  string    `json:"week1_start"`
	CurrentWeek int       `json:"current_week"`
	Weeks       []weekDTO `json:"weeks"`
}

type matchupDTO struct {
	ID         string  `json:"id"`
	LeagueID   string  `json:"league_id"`
	Week       int     `json:"week"`
	TeamAID    string  `json:"team_a_id"`
	TeamBID    string  `json:"team_b_id"`
	ScoreA     float64 `json:"score_a"`
	ScoreB     float64 `json:"score_b"`
	LockedDays int     `json:"locked_days"`
	Status     string  `json:"status"`
	UpdatedAt  string  `json:"updated_at,omitempty"`
}

type standingDTO struct {
	TeamID        string   `json:"team_id"`
	Wins          int      `json:"wins"`
	Losses        int      `json:"losses"`
	Ties          int      `json:"ties"`
	PointsFor     float64  `json:"points_for"`
	PointsAgainst float64  `json:"points_against"`
	WeeklyAverage *float64 `json:"weekly_average,omitempty"`
}

type weightsUpdateDTO struct {
	EffectiveFromWeek int                `json:"effective_from_week"`
	Schedule          []weightVersionDTO `json:"schedule"`
}

type jobRunDTO struct {
	RunID        string `json:"run_id"`
	JobName      string `json:"job_name"`
	Status       string `json:"status"`
	Leagues      int    `json:"leagues"`
	Locked       int    `json:"locked"`
	Updated      int    `json:"updated"`
	Errored      int    `json:"errored"`
	ErrorMessage string `json:"error_message,omitempty"`
	StartedAt    string `json:"started_at"`
	FinishedAt   string `json:"finished_at,omitempty"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:                 v.ID,
		Name:               v.Name,
		Season:             v.Season,
		CommissionerUserID: v.CommissionerUserID,
		RosterSize:         v.RosterSize,
		DraftRounds:        v.DraftRounds,
		DraftType:          string(v.DraftType),
		DraftStatus:        string(v.DraftStatus),
		RandomizeOrder:     v.RandomizeOrder,
		DraftCompletedAt:   formatOptionalTime(v.DraftCompletedAt),
		ScoringWeights:     weightScheduleToDTO(v.Weights),
	}
}

func weightScheduleToDTO(schedule scoring.WeightSchedule) []weightVersionDTO {
	out := make([]weightVersionDTO, 0, len(schedule))
	for _, version := range schedule {
		out = append(out, weightVersionDTO{
			EffectiveFromWeek: version.EffectiveFromWeek,
			Skater:            tableToDTO(version.Weights.Skater),
			Goalie:            tableToDTO(version.Weights.Goalie),
		})
	}
	return out
}

func tableToDTO(table scoring.Table) map[string]float64 {
	out := make(map[string]float64, len(table))
	for stat, weight := range table {
		out[string(stat)] = weight
	}
	return out
}

func tableFromDTO(in map[string]float64) scoring.Table {
	out := make(scoring.Table, len(in))
	for stat, weight := range in {
		out[scoring.Stat(stat)] = weight
	}
	return out
}

func (r scoringWeightsRequest) toWeights() scoring.Weights {
	return scoring.Weights{
		Skater: tableFromDTO(r.Skater),
		Goalie: tableFromDTO(r.Goalie),
	}
}

func statLineFromDTO(in map[string]int) scoring.StatLine {
	out := make(scoring.StatLine, len(in))
	for stat, count := range in {
		out[scoring.Stat(stat)] = count
	}
	return out
}

func statLineToDTO(in scoring.StatLine) map[string]int {
	if len(in) == 0 {
		return nil
	}
	out := make(map[string]int, len(in))
	for stat, count := range in {
		out[string(stat)] = count
	}
	return out
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:          v.ID,
		LeagueID:    v.LeagueID,
		OwnerUserID: v.OwnerUserID,
		Name:        v.Name,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:       v.ID,
		Name:     v.Name,
		ProTeam:  v.ProTeam,
		Position: string(v.Position),
		IsGoalie: v.IsGoalie(),
	}
}

func turnToDTO(v *draft.Turn) *turnDTO {
	if v == nil {
		return nil
	}
	return &turnDTO{PickNumber: v.PickNumber, Round: v.Round, TeamID: v.TeamID}
}

func pickToDTO(v draft.Pick) pickDTO {
	return pickDTO{
		ID:         v.ID,
		TeamID:     v.TeamID,
		PlayerID:   v.PlayerID,
		Round:      v.Round,
		PickNumber: v.PickNumber,
		PickedAt:   v.PickedAt.UTC().Format(time.RFC3339),
	}
}

func draftStateToDTO(v usecase.DraftState) draftStateDTO {
	order := v.Order
	if order == nil {
		order = []string{}
	}
	return draftStateDTO{
		LeagueID:    v.LeagueID,
		Status:      string(v.Status),
		Type:        string(v.Type),
		Rounds:      v.Rounds,
		Order:       order,
		PickCount:   v.PickCount,
		TotalPicks:  v.TotalPicks,
		CurrentTurn: turnToDTO(v.Turn),
		StartedAt:   formatOptionalTime(v.StartedAt),
		CompletedAt: formatOptionalTime(v.EndedAt),
	}
}

func boardToDTO(slots []usecase.BoardSlot) []boardSlotDTO {
	out := make([]boardSlotDTO, 0, len(slots))
	for _, slot := range slots {
		item := boardSlotDTO{turnDTO: turnDTO{
			PickNumber: slot.PickNumber,
			Round:      slot.Round,
			TeamID:     slot.TeamID,
		}}
		if slot.Pick != nil {
			pick := pickToDTO(*slot.Pick)
			item.Pick = &pick
		}
		out = append(out, item)
	}
	return out
}

func pickResultToDTO(v usecase.PickResult) pickResultDTO {
	return pickResultDTO{
		Pick:           pickToDTO(v.Pick),
		NextTurn:       turnToDTO(v.NextTurn),
		DraftCompleted: v.DraftCompleted,
	}
}

func queueToDTO(items []usecase.QueueItem) []queueItemDTO {
	out := make([]queueItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, queueItemDTO{
			PlayerID: item.PlayerID,
			Position: item.Position,
			Drafted:  item.Drafted,
			AddedAt:  item.AddedAt.UTC().Format(time.RFC3339),
		})
	}
	return out
}

func lineupToDTO(v usecase.LineupView) lineupDTO {
	slots := make([]rosterSlotDTO, 0, len(v.Slots))
	for _, slot := range v.Slots {
		slots = append(slots, rosterSlotToDTO(slot))
	}
	return lineupDTO{
		TeamID:   v.TeamID,
		Date:     v.Date.Format(time.DateOnly),
		Editable: v.Editable,
		Slots:    slots,
	}
}

func rosterSlotToDTO(v roster.DaySlot) rosterSlotDTO {
	return rosterSlotDTO{
		PlayerID: v.PlayerID,
		SlotType: string(v.SlotType),
		IsGoalie: v.IsGoalie,
		IsLocked: v.IsLocked,
		LockedAt: formatOptionalTime(v.LockedAt),
		Points:   v.Points,
		Stats:    statLineToDTO(v.Stats),
	}
}

func calendarToDTO(v usecase.SeasonCalendar) calendarDTO {
	weeks := make([]weekDTO, 0, len(v.Weeks))
	for _, w := range v.Weeks {
		weeks = append(weeks, weekDTO{
			Week:  w.Week,
			Start: w.Start.Format(time.DateOnly),
			End:   w.End.Format(time.DateOnly),
		})
	}
	return calendarDTO{
		LeagueID:    v.LeagueID,
		Week1Start:  v.Week1Start.Format(time.DateOnly),
		CurrentWeek: v.CurrentWeek,
		Weeks:       weeks,
	}
}

func matchupToDTO(v matchup.Matchup) matchupDTO {
	out := matchupDTO{
		ID:         v.ID,
		LeagueID:   v.LeagueID,
		Week:       v.Week,
		TeamAID:    v.TeamAID,
		TeamBID:    v.TeamBID,
		ScoreA:     v.ScoreA,
		ScoreB:     v.ScoreB,
		LockedDays: v.LockedDays,
		Status:     string(v.Status),
	}
	if !v.UpdatedAt.IsZero() {
		out.UpdatedAt = v.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}

func standingToDTO(v matchup.Standing) standingDTO {
	return standingDTO{
		TeamID:        v.TeamID,
		Wins:          v.Wins,
		Losses:        v.Losses,
		Ties:          v.Ties,
		PointsFor:     v.PointsFor,
		PointsAgainst: v.PointsAgainst,
		WeeklyAverage: v.WeeklyAverage,
	}
}

func jobRunToDTO(v jobscheduler.Run) jobRunDTO {
	return jobRunDTO{
		RunID:        v.RunID,
		JobName:      v.JobName,
		Status:       string(v.Status),
		Leagues:      v.Leagues,
		Locked:       v.Locked,
		Updated:      v.Updated,
		Errored:      v.Errored,
		ErrorMessage: v.ErrorMessage,
		StartedAt:    v.StartedAt.UTC().Format(time.RFC3339),
		FinishedAt:   formatOptionalTime(v.FinishedAt),
	}
}

func formatOptionalTime(v *time.Time) string {
	if v == nil || v.IsZero() {
		return ""
	}
	return v.UTC().Format(time.RFC3339)
}
