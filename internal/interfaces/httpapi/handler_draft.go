package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

func (h *Handler) GetDraftState(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "GetDraftState")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	state, err := h.draftService.State(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft state failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draftStateToDTO(state))
}

func (h *Handler) GetDraftBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "GetDraftBoard")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	board, err := h.draftService.Board(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft board failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}

func (h *Handler) SubmitPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "SubmitPick")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req submitPickRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	result, err := h.draftService.SubmitPick(ctx, usecase.SubmitPickInput{
		LeagueID: leagueID,
		UserID:   userID,
		PlayerID: req.PlayerID,
		Round:    req.Round,
	})
	if err != nil {
		if reason := usecase.RejectionReason(err); reason != "" {
			h.logger.InfoContext(ctx, "pick rejected", "league_id", leagueID, "user_id", userID, "reason", reason)
		} else {
			h.logger.WarnContext(ctx, "submit pick failed", "league_id", leagueID, "user_id", userID, "error", err)
		}
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, pickResultToDTO(result))
}

func (h *Handler) UndoLastPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "UndoLastPick")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	pick, err := h.draftService.UndoLastPick(ctx, userID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "undo last pick failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, pickToDTO(pick))
}

func (h *Handler) SetDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "SetDraftOrder")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req draftOrderRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	state, err := h.draftService.SetDraftOrder(ctx, usecase.SetDraftOrderInput{
		UserID:    userID,
		LeagueID:  leagueID,
		Order:     req.TeamIDs,
		Randomize: req.Randomize,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "set draft order failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draftStateToDTO(state))
}

// TransitionDraft handles the commissioner lifecycle actions lobby, start,
// pause and resume.
func (h *Handler) TransitionDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "TransitionDraft")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	action := strings.ToLower(strings.TrimSpace(r.PathValue("action")))

	var state usecase.DraftState
	switch action {
	case "lobby":
		state, err = h.draftService.OpenLobby(ctx, userID, leagueID)
	case "start":
		state, err = h.draftService.StartDraft(ctx, userID, leagueID)
	case "pause":
		state, err = h.draftService.PauseDraft(ctx, userID, leagueID)
	case "resume":
		state, err = h.draftService.ResumeDraft(ctx, userID, leagueID)
	default:
		err = fmt.Errorf("%w: unknown draft action %q", usecase.ErrNotFound, action)
	}
	if err != nil {
		h.logger.WarnContext(ctx, "draft transition failed", "league_id", leagueID, "action", action, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, draftStateToDTO(state))
}
