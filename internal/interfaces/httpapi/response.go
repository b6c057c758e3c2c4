package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"

	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/draft"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/queue"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/domain/roster"
	"github.com/Gstormsfh/citrus-league-storm-main-sub012/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "citrus-league"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code      int               `json:"code"`
	Message   string            `json:"message"`
	Status    string            `json:"status"`
	RequestID string            `json:"requestId,omitempty"`
	Errors    []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain  string `json:"domain"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
}

var internalError = mappedError{http.StatusInternalServerError, "internalError", "INTERNAL"}

// errorRules is matched in order; the first sentinel found in the chain wins.
var errorRules = []struct {
	target error
	mapped mappedError
}{
	{roster.ErrSlotLocked, mappedError{http.StatusConflict, "rosterDayLocked", "FAILED_PRECONDITION"}},
	{roster.ErrPastDate, mappedError{http.StatusBadRequest, "pastDate", "INVALID_ARGUMENT"}},
	{draft.ErrInvalidTransition, mappedError{http.StatusConflict, "invalidTransition", "FAILED_PRECONDITION"}},
	{draft.ErrNotEnoughTeams, mappedError{http.StatusConflict, "notEnoughTeams", "FAILED_PRECONDITION"}},
	{draft.ErrInvalidOrder, mappedError{http.StatusBadRequest, "invalidOrder", "INVALID_ARGUMENT"}},
	{queue.ErrDuplicateEntry, mappedError{http.StatusConflict, "alreadyQueued", "ALREADY_EXISTS"}},
	{queue.ErrEntryNotFound, mappedError{http.StatusNotFound, "notQueued", "NOT_FOUND"}},
	{queue.ErrEntryDrafted, mappedError{http.StatusConflict, "entryDrafted", "FAILED_PRECONDITION"}},
	{usecase.ErrInvalidInput, mappedError{http.StatusBadRequest, "invalidInput", "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{http.StatusNotFound, "notFound", "NOT_FOUND"}},
	{usecase.ErrUnauthorized, mappedError{http.StatusUnauthorized, "unauthorized", "UNAUTHENTICATED"}},
	{usecase.ErrForbidden, mappedError{http.StatusForbidden, "forbidden", "PERMISSION_DENIED"}},
	{usecase.ErrConflict, mappedError{http.StatusConflict, "conflict", "ABORTED"}},
	{usecase.ErrDependencyUnavailable, mappedError{http.StatusServiceUnavailable, "dependencyUnavailable", "UNAVAILABLE"}},
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = sonic.ConfigDefault.NewEncoder(w).Encode(payload)
}

func writeSuccess(ctx context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(ctx, w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

// writeError maps err onto the envelope. Unmapped errors are logged by the
// request logger's status line and never echoed to the caller.
func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(err)
	message := "internal server error"
	if mapped != internalError {
		message = err.Error()
	} else {
		trace.SpanFromContext(ctx).RecordError(err)
	}

	writeJSON(ctx, w, mapped.HTTPStatus, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:      mapped.HTTPStatus,
			Message:   message,
			Status:    mapped.Status,
			RequestID: requestIDFromContext(ctx),
			Errors: []googleErrorItem{
				{Domain: errorDomain, Reason: mapped.Reason, Message: message},
			},
		},
	})
}

func mapError(err error) mappedError {
	// Routine draft rejections carry the rule that was broken.
	if reason := usecase.RejectionReason(err); reason != "" {
		return mappedError{http.StatusConflict, reason, "FAILED_PRECONDITION"}
	}
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			return rule.mapped
		}
	}
	return internalError
}
