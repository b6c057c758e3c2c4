package httpapi

import (
	"net/http"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

func (h *Handler) ListMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "ListMatchups")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	week, err := parseOptionalInt(r.URL.Query().Get("week"), "week")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.matchupService.ListMatchups(ctx, leagueID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list matchups failed", "league_id", leagueID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchupDTO, 0, len(items))
	for _, m := range items {
		out = append(out, matchupToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "ListStandings")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	standings, err := h.matchupService.Standings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]standingDTO, 0, len(standings))
	for _, s := range standings {
		out = append(out, standingToDTO(s))
	}
	writeSuccess(ctx, w, http.StatusOK, out)
}

// CreateMatchups ingests a precomputed schedule of weekly pairings.
func (h *Handler) CreateMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "CreateMatchups")
	defer span.End()

	var req createMatchupsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	inputs := make([]usecase.MatchupInput, 0, len(req.Matchups))
	for _, m := range req.Matchups {
		inputs = append(inputs, usecase.MatchupInput{Week: m.Week, TeamAID: m.TeamAID, TeamBID: m.TeamBID})
	}

	created, err := h.leagueService.CreateMatchups(ctx, req.LeagueID, inputs)
	if err != nil {
		h.logger.WarnContext(ctx, "create matchups failed", "league_id", req.LeagueID, "count", len(inputs), "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make([]matchupDTO, 0, len(created))
	for _, m := range created {
		out = append(out, matchupToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusCreated, out)
}
