package httpapi

import "net/http"

func (h *Handler) ListQueue(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "ListQueue")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.queueService.List(ctx, userID, r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, queueToDTO(items))
}

func (h *Handler) Enqueue(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "Enqueue")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req enqueueRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.queueService.Enqueue(ctx, userID, r.PathValue("leagueID"), req.PlayerID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, queueToDTO(items))
}

func (h *Handler) Dequeue(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "Dequeue")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.queueService.Dequeue(ctx, userID, r.PathValue("leagueID"), r.PathValue("playerID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, queueToDTO(items))
}

func (h *Handler) ReorderQueue(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "ReorderQueue")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req reorderRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.queueService.Reorder(ctx, userID, r.PathValue("leagueID"), r.PathValue("playerID"), *req.Position)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, queueToDTO(items))
}

func (h *Handler) NextQueued(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "NextQueued")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entry, ok, err := h.queueService.NextEligible(ctx, userID, r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeSuccess(ctx, w, http.StatusOK, map[string]any{"player_id": nil})
		return
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{"player_id": entry.PlayerID})
}

func (h *Handler) DraftNextQueued(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "DraftNextQueued")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	leagueID := r.PathValue("leagueID")
	result, err := h.queueService.PromoteAndDraft(ctx, userID, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "draft from queue failed", "league_id", leagueID, "user_id", userID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusCreated, pickResultToDTO(result))
}

func (h *Handler) PurgeQueue(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "PurgeQueue")
	defer span.End()

	userID, err := requestUserID(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items, err := h.queueService.PurgeDrafted(ctx, userID, r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, queueToDTO(items))
}
