/*
handlers.go - HTTP API handlers for the roster engine

PURPOSE:
  Exposes the schedule-resolution engine via REST. Handlers parse and
  validate input, delegate to the session, and serialize responses. All
  computation is recomputed per request against the session's current
  snapshots; nothing is cached.

ENDPOINTS:
  Instructors:
    GET    /api/instructors                  List all instructors
    POST   /api/instructors                  Register or replace by name
    GET    /api/instructors/{name}           Get one instructor
    DELETE /api/instructors/{name}           Delete
    GET    /api/instructors/{name}/schedule  Resolved calendar and totals

  Exclusions:
    GET    /api/exclusions                   List raw rows
    POST   /api/exclusions                   Append one interval
    PUT    /api/exclusions                   Wholesale table replace

  Views:
    GET    /api/budget?amount=N              Projected pay vs budget
    GET    /api/holidays                     Fixed holiday calendar
    POST   /api/reload                       Drop snapshots, reread store

ERROR HANDLING:
  - 400: validation failures, malformed bodies
  - 404: unknown instructor
  - 409: stale full-table write (another session saved first)
  - 500: store write failures
  Store READ failures never 5xx: the session degrades to empty tables and
  responses carry a warnings field instead.

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/hagwonlabs/roster-engine/roster"
	"github.com/hagwonlabs/roster-engine/schedule"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Session  *roster.Session
	Log      *zap.Logger
	validate *validator.Validate
}

// NewHandler creates a handler over the given session.
func NewHandler(session *roster.Session, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Session:  session,
		Log:      log,
		validate: validator.New(),
	}
}

// =============================================================================
// INSTRUCTOR HANDLERS
// =============================================================================

// ListInstructors returns all registered instructors.
func (h *Handler) ListInstructors(w http.ResponseWriter, r *http.Request) {
	profiles := h.Session.Profiles()
	dtos := make([]InstructorDTO, 0, len(profiles))
	for _, p := range profiles {
		dtos = append(dtos, toInstructorDTO(p))
	}
	writeJSON(w, http.StatusOK, ListResponse{Items: dtos, Warnings: h.Session.Warnings()})
}

// GetInstructor returns one instructor by name.
func (h *Handler) GetInstructor(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, err := h.Session.Profile(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "Instructor not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toInstructorDTO(p))
}

// UpsertInstructor registers a new instructor or replaces an existing one
// by name. Name is immutable: editing never renames.
func (h *Handler) UpsertInstructor(w http.ResponseWriter, r *http.Request) {
	var req UpsertInstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	profile := schedule.Profile{Name: req.Name, HourlyRate: decimal.NewFromFloat(req.Rate)}
	for i, col := range schedule.WeekdayNames {
		if v, ok := req.Hours[col]; ok {
			profile.WeeklyHours[i] = decimal.NewFromFloat(v)
		}
	}

	if err := h.Session.UpsertProfile(r.Context(), profile); err != nil {
		h.writeSaveError(w, "Failed to save instructor", err)
		return
	}
	writeJSON(w, http.StatusCreated, toInstructorDTO(profile))
}

// DeleteInstructor removes an instructor.
func (h *Handler) DeleteInstructor(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.Session.DeleteProfile(r.Context(), name); err != nil {
		if errors.Is(err, schedule.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "Instructor not found", err)
			return
		}
		h.writeSaveError(w, "Failed to delete instructor", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSchedule resolves one instructor's calendar against the current
// snapshots: work dates, totals, monthly summaries and render grids.
func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	result, grids, err := h.Session.Schedule(name)
	if err != nil {
		writeError(w, http.StatusNotFound, "Instructor not found", err)
		return
	}
	writeJSON(w, http.StatusOK, toScheduleResponse(result, grids))
}

// =============================================================================
// EXCLUSION HANDLERS
// =============================================================================

// ListExclusions returns the raw exclusion rows, legacy layouts included.
func (h *Handler) ListExclusions(w http.ResponseWriter, r *http.Request) {
	rows := h.Session.ExclusionRows()
	dtos := make([]ExclusionDTO, 0, len(rows))
	for _, row := range rows {
		dtos = append(dtos, toExclusionDTO(row))
	}
	writeJSON(w, http.StatusOK, ListResponse{Items: dtos, Warnings: h.Session.Warnings()})
}

// AddExclusion appends one exclusion interval.
func (h *Handler) AddExclusion(w http.ResponseWriter, r *http.Request) {
	var req AddExclusionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Validation failed", err)
		return
	}

	row := roster.ExclusionRow{StartDate: req.StartDate, EndDate: req.EndDate, Note: req.Note}
	if err := h.Session.AddExclusion(r.Context(), row); err != nil {
		h.writeSaveError(w, "Failed to save exclusion", err)
		return
	}
	writeJSON(w, http.StatusCreated, toExclusionDTO(row))
}

// ReplaceExclusions installs a wholesale edit of the exclusion table. Rows
// are persisted as given; malformed ones are skipped at resolution time
// rather than rejected here, matching the bulk editor's tolerance.
func (h *Handler) ReplaceExclusions(w http.ResponseWriter, r *http.Request) {
	var req ReplaceExclusionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	rows := make([]roster.ExclusionRow, 0, len(req.Rows))
	for _, d := range req.Rows {
		rows = append(rows, fromExclusionDTO(d))
	}
	if err := h.Session.ReplaceExclusions(r.Context(), rows); err != nil {
		h.writeSaveError(w, "Failed to save exclusions", err)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse{Items: req.Rows})
}

// =============================================================================
// VIEW HANDLERS
// =============================================================================

// GetBudget aggregates projected pay across all instructors against the
// declared budget from the amount query parameter.
func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	amount := r.URL.Query().Get("amount")
	declared, err := decimal.NewFromString(amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount (use a decimal number)", err)
		return
	}
	writeJSON(w, http.StatusOK, toBudgetResponse(h.Session.Budget(declared)))
}

// ListHolidays returns the fixed holiday calendar for the active year.
func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toHolidayDTOs(h.Session.Holidays()))
}

// Reload drops the in-memory snapshots and rereads the store, picking up
// another session's edits.
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	h.Session.Load(r.Context())
	h.Log.Info("session reloaded", zap.Strings("warnings", h.Session.Warnings()))
	writeJSON(w, http.StatusOK, ListResponse{Items: "reloaded", Warnings: h.Session.Warnings()})
}

// =============================================================================
// HELPERS
// =============================================================================

func (h *Handler) writeSaveError(w http.ResponseWriter, message string, err error) {
	switch {
	case errors.Is(err, schedule.ErrVersionConflict):
		writeError(w, http.StatusConflict, "Another session saved first; reload and retry", err)
	case errors.Is(err, schedule.ErrInvalidRate),
		errors.Is(err, schedule.ErrInvalidHours),
		errors.Is(err, schedule.ErrEmptyName):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		h.Log.Error("save failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, message, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
