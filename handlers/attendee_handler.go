package handlers

import (
	"net/http"

	"github.com/chico-slowpitch/attendance-system/services"
)

type AttendeeHandler struct {
	attendanceService services.AttendanceService
}

func NewAttendeeHandler(as services.AttendanceService) *AttendeeHandler {
	return &AttendeeHandler{attendanceService: as}
}

// ListAttendees handles GET /api/attendees.
func (h *AttendeeHandler) ListAttendees(w http.ResponseWriter, r *http.Request) {
	attendees, err := h.attendanceService.ListAttendees(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, attendees, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CheckIn handles POST /api/attendees. A second check-in for the same
// name updates the existing record instead of creating another one.
func (h *AttendeeHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	var input services.CheckInInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	attendee, err := h.attendanceService.CheckIn(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, attendee, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RemoveAttendee handles DELETE /api/attendees/{id}. Deletion is
// idempotent: an unknown id still reports success.
func (h *AttendeeHandler) RemoveAttendee(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.attendanceService.RemoveAttendee(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ClearAttendees handles DELETE /api/attendees.
func (h *AttendeeHandler) ClearAttendees(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.ClearAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Stats handles GET /api/stats.
func (h *AttendeeHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.attendanceService.Stats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
