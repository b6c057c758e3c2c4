package httpapi

import (
	"net/http"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "GetLineup")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")
	date, err := parseDateParam(r.URL.Query().Get("date"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	view, err := h.rosterService.GetLineup(ctx, leagueID, teamID, date)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "league_id", leagueID, "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(view))
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "SaveLineup")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req saveLineupRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	date, err := parseDateParam(req.Date)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	teamID := r.PathValue("teamID")
	view, err := h.rosterService.SaveLineup(ctx, usecase.SaveLineupInput{
		UserID:   userID,
		LeagueID: leagueID,
		TeamID:   teamID,
		Date:     date,
		Active:   req.Active,
		Bench:    req.Bench,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save lineup failed", "league_id", leagueID, "team_id", teamID, "date", req.Date, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(view))
}
