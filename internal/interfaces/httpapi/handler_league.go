package httpapi

import (
	"net/http"
	"strconv"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/player"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]leagueDTO, 0, len(leagues))
	for _, l := range leagues {
		items = append(items, leagueToDTO(l))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "GetLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	l, err := h.leagueService.GetLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get league failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(l))
}

func (h *Handler) ListTeamsByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "ListTeamsByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teams, err := h.leagueService.ListTeamsByLeague(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListPlayersByLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "ListPlayersByLeague")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	query := r.URL.Query()
	availableOnly, _ := strconv.ParseBool(query.Get("available"))
	players, err := h.playerService.ListPlayers(ctx, usecase.ListPlayersInput{
		LeagueID:      leagueID,
		Position:      player.Position(query.Get("position")),
		AvailableOnly: availableOnly,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerToDTO(p))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueCalendar(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "GetLeagueCalendar")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	weeksAhead, err := parseOptionalInt(r.URL.Query().Get("weeks_ahead"), "weeks_ahead")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	cal, err := h.leagueService.Calendar(ctx, leagueID, weeksAhead)
	if err != nil {
		h.logger.WarnContext(ctx, "get calendar failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, calendarToDTO(cal))
}

func (h *Handler) UpdateScoringWeights(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "UpdateScoringWeights")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req scoringWeightsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	result, err := h.leagueService.UpdateScoringWeights(ctx, usecase.UpdateScoringWeightsInput{
		UserID:   userID,
		LeagueID: leagueID,
		Weights:  req.toWeights(),
	})
	if err != nil {
		h.logger.WarnContext(ctx, "update scoring weights failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weightsUpdateDTO{
		EffectiveFromWeek: result.EffectiveFromWeek,
		Schedule:          weightScheduleToDTO(result.Schedule),
	})
}
