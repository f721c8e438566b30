package directoryhandler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"staffdir/internal/domain/directory"
	"staffdir/internal/transport/http/api"
	"staffdir/internal/transport/http/middleware"
	"staffdir/internal/transport/http/shared"
)

type Handler struct {
	Service     *directory.Service
	PageSize    int
	MaxPageSize int
	Now         func() time.Time
}

func NewHandler(service *directory.Service, pageSize, maxPageSize int) *Handler {
	if pageSize < 1 {
		pageSize = directory.DefaultPageSize
	}
	return &Handler{Service: service, PageSize: pageSize, MaxPageSize: maxPageSize, Now: time.Now}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/me", h.handleMe)
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Get("/filters", h.handleFilters)
		r.Get("/export.pdf", h.handleExport)
		r.With(middleware.RequireDetailAccess).Get("/{employeeID}", h.handleGet)
	})
}

type listResponse struct {
	Items          []directory.Employee `json:"items"`
	Page           int                  `json:"page"`
	PageSize       int                  `json:"pageSize"`
	Total          int                  `json:"total"`
	TotalPages     int                  `json:"totalPages"`
	CanViewDetails bool                 `json:"canViewDetails"`
	Filters        directory.Filters    `json:"filters"`
	ActiveFilters  int                  `json:"activeFilters"`
}

func (h *Handler) handleMe(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestID)
		return
	}
	api.Success(w, map[string]any{
		"user":           user,
		"canViewDetails": user.CanViewDetails(),
	}, requestID)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	query := r.URL.Query()
	state := shared.ParseViewState(query, v)
	pageSize := shared.ParsePageSize(query, h.PageSize, h.MaxPageSize, v)
	if v.Reject(w, requestID) {
		return
	}

	result, err := h.Service.Query(r.Context(), state, pageSize)
	if err != nil {
		h.internalError(w, r, "list employees failed", err)
		return
	}

	user, _ := middleware.GetUser(r.Context())
	items := result.Rows
	if items == nil {
		items = []directory.Employee{}
	}
	api.SuccessWithTotal(w, listResponse{
		Items:          items,
		Page:           result.Page,
		PageSize:       result.PageSize,
		Total:          result.Total,
		TotalPages:     result.TotalPages,
		CanViewDetails: user.CanViewDetails(),
		Filters:        state.Filters,
		ActiveFilters:  state.ActiveFilterCount(),
	}, result.Total, requestID)
}

func (h *Handler) handleFilters(w http.ResponseWriter, r *http.Request) {
	opts, err := h.Service.Options(r.Context())
	if err != nil {
		h.internalError(w, r, "list filter options failed", err)
		return
	}
	api.Success(w, opts, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	employeeID := chi.URLParam(r, "employeeID")

	emp, err := h.Service.Get(r.Context(), employeeID)
	if err != nil {
		if errors.Is(err, directory.ErrEmployeeNotFound) {
			api.Fail(w, http.StatusNotFound, "not_found", "employee not found", requestID)
			return
		}
		h.internalError(w, r, "get employee failed", err)
		return
	}
	api.Success(w, directory.NewDetail(emp), requestID)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	v := shared.NewValidator()
	state := shared.ParseViewState(r.URL.Query(), v)
	if v.Reject(w, requestID) {
		return
	}

	rows, err := h.Service.Export(r.Context(), state)
	if err != nil {
		h.internalError(w, r, "export employees failed", err)
		return
	}

	var buf bytes.Buffer
	if err := directory.WritePDF(&buf, "Employee Directory", h.Now(), rows); err != nil {
		h.internalError(w, r, "render directory pdf failed", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="employee-directory.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	requestID := middleware.GetRequestID(r.Context())
	slog.Error(msg, "err", err, "requestId", requestID)
	api.Fail(w, http.StatusInternalServerError, "internal_error", "Internal server error", requestID)
}
