package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/platform/logging"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Services struct {
	League  *usecase.LeagueService
	Player  *usecase.PlayerService
	Draft   *usecase.DraftService
	Queue   *usecase.QueueService
	Roster  *usecase.RosterService
	Matchup *usecase.MatchupService
	Scoring *usecase.ScoringService
	Job     *usecase.MatchupScoringJob
}

type Handler struct {
	leagueService  *usecase.LeagueService
	playerService  *usecase.PlayerService
	draftService   *usecase.DraftService
	queueService   *usecase.QueueService
	rosterService  *usecase.RosterService
	matchupService *usecase.MatchupService
	scoringService *usecase.ScoringService
	scoringJob     *usecase.MatchupScoringJob
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(services Services, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:  services.League,
		playerService:  services.Player,
		draftService:   services.Draft,
		queueService:   services.Queue,
		rosterService:  services.Roster,
		matchupService: services.Matchup,
		scoringService: services.Scoring,
		scoringJob:     services.Job,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := handlerSpan(r, "Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a strict JSON body and validates it.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, target any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(nil, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("%w: invalid JSON body: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, target)
}

func requestUserID(ctx context.Context) (string, error) {
	principal, ok := principalFromContext(ctx)
	if !ok || strings.TrimSpace(principal.UserID) == "" {
		return "", fmt.Errorf("%w: missing principal", usecase.ErrUnauthorized)
	}
	return principal.UserID, nil
}

func parseDateParam(value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", usecase.ErrInvalidInput)
	}
	return date, nil
}

func parseOptionalInt(value, name string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", usecase.ErrInvalidInput, name)
	}
	return out, nil
}
