package httpapi

import (
	"fmt"
	"net/http"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

// RunMatchupScoringJob runs one scoring pass on demand. A pass already in
// flight in this process is joined rather than duplicated.
func (h *Handler) RunMatchupScoringJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "RunMatchupScoringJob")
	defer span.End()

	if h.scoringJob == nil {
		writeError(ctx, w, fmt.Errorf("%w: matchup scoring job is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	run, err := h.scoringJob.Run(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "run matchup scoring job failed", "run_id", run.RunID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, jobRunToDTO(run))
}

func (h *Handler) GetMatchupScoringLastRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "GetMatchupScoringLastRun")
	defer span.End()

	if h.scoringJob == nil {
		writeError(ctx, w, fmt.Errorf("%w: matchup scoring job is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	run, ok, err := h.scoringJob.LastRun(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: matchup scoring job has not run yet", usecase.ErrNotFound))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, jobRunToDTO(run))
}
