package handlers

import (
	"net/http"

	"github.com/chico-slowpitch/attendance-system/services"
)

type RosterHandler struct {
	rosterService services.RosterService
}

func NewRosterHandler(rs services.RosterService) *RosterHandler {
	return &RosterHandler{rosterService: rs}
}

type addMemberRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ListRoster handles GET /api/roster; soft-removed members are excluded.
func (h *RosterHandler) ListRoster(w http.ResponseWriter, r *http.Request) {
	members, err := h.rosterService.ListActiveMembers(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, members, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AddMember handles POST /api/roster. A duplicate active name is a 409.
func (h *RosterHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	var req addMemberRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	member, err := h.rosterService.AddMember(r.Context(), req.FirstName, req.LastName)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, member, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// UpdateMember handles PUT /api/roster/{id}; absent fields keep their
// current values.
func (h *RosterHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input services.UpdateMemberInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	member, err := h.rosterService.UpdateMember(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, member, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// RemoveMember handles DELETE /api/roster/{id}. The member is
// soft-removed; their attendance history stays as is.
func (h *RosterHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.rosterService.RemoveMember(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
