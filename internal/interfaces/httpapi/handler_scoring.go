package httpapi

import (
	"net/http"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/scoring"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

func (h *Handler) CalculatePoints(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "CalculatePoints")
	defer span.End()

	var req calculatePointsRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.CalculatePointsInput{
		Stats:    statLineFromDTO(req.Stats),
		IsGoalie: req.IsGoalie,
		LeagueID: req.LeagueID,
		Week:     req.Week,
	}
	if req.Weights != nil {
		weights := req.Weights.toWeights()
		input.Weights = &weights
	}

	breakdown, err := h.scoringService.Calculate(ctx, input)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if breakdown.Contributions == nil {
		breakdown.Contributions = []scoring.Contribution{}
	}
	writeSuccess(ctx, w, http.StatusOK, breakdown)
}
