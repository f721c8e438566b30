package contacthandler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"staffdir/internal/domain/contact"
	"staffdir/internal/transport/http/api"
	"staffdir/internal/transport/http/middleware"
	"staffdir/internal/transport/http/shared"
)

const successMessage = "Form submitted successfully"

type Submitter interface {
	Submit(ctx context.Context, in contact.Submission) error
}

// Metrics receives submission outcomes. A nil Metrics is ignored.
type Metrics interface {
	ContactAccepted()
	ContactRejected()
	DispatchFailed()
}

type Handler struct {
	Service Submitter
	Metrics Metrics
}

func NewHandler(service Submitter, metrics Metrics) *Handler {
	return &Handler{Service: service, Metrics: metrics}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/contact", h.handleSubmit)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var in contact.Submission
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", requestID)
			return
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request body", requestID)
		return
	}

	err := h.Service.Submit(r.Context(), in)
	Outcome(r.Context(), h.Metrics, err)
	if err == nil {
		api.Success(w, map[string]string{"message": successMessage}, requestID)
		return
	}

	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		shared.FailValidation(w, requestID, verr.Message(), Issues(verr))
		return
	}
	api.Fail(w, http.StatusInternalServerError, "internal_error", "Internal server error", requestID)
}

// Outcome logs a submission result and updates metrics.
func Outcome(ctx context.Context, metrics Metrics, err error) {
	requestID := middleware.GetRequestID(ctx)
	var verr *contact.ValidationError
	switch {
	case err == nil:
		if metrics != nil {
			metrics.ContactAccepted()
		}
	case errors.As(err, &verr):
		slog.Debug("contact submission rejected", "reason", verr.Message(), "requestId", requestID)
		if metrics != nil {
			metrics.ContactRejected()
		}
	default:
		slog.Error("contact submission failed", "err", err, "requestId", requestID)
		if metrics != nil && errors.Is(err, contact.ErrDispatch) {
			metrics.DispatchFailed()
		}
	}
}

func Issues(verr *contact.ValidationError) []shared.ValidationIssue {
	out := make([]shared.ValidationIssue, 0, len(verr.Issues))
	for _, issue := range verr.Issues {
		out = append(out, shared.ValidationIssue{Field: issue.Field, Reason: issue.Reason})
	}
	return out
}
