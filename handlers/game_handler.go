package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chico-slowpitch/attendance-system/models"
	"github.com/chico-slowpitch/attendance-system/services"
)

type GameHandler struct {
	gameService services.GameService
}

func NewGameHandler(gs services.GameService) *GameHandler {
	return &GameHandler{gameService: gs}
}

type createGameRequest struct {
	Opponent string          `json:"opponent"`
	HomeAway models.HomeAway `json:"home_away"`
	Field    string          `json:"field"`
	Date     string          `json:"date"`
	Time     string          `json:"time"`
}

// GetActiveGame handles GET /api/game. With no active game the body is
// JSON null, not a 404: the absence of an active game is a valid state.
func (h *GameHandler) GetActiveGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.gameService.GetActiveGame(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, game, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ListGames handles GET /api/games; the schedule comes back in
// date-ascending order.
func (h *GameHandler) ListGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameService.ListGames(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, games, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// CreateGame handles POST /api/games. New games are always inactive.
func (h *GameHandler) CreateGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	input := services.CreateGameInput{
		Opponent: req.Opponent,
		HomeAway: req.HomeAway,
		Field:    req.Field,
		Time:     req.Time,
	}
	if req.Date != "" {
		date, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			badRequestResponse(w, r, fmt.Errorf("date must be in YYYY-MM-DD format: %w", err))
			return
		}
		input.Date = date
	}

	game, err := h.gameService.CreateGame(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, game, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// ActivateGame handles POST /api/games/{id}/activate.
func (h *GameHandler) ActivateGame(w http.ResponseWriter, r *http.Request) {
	id, err := readIDParam(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	if err := h.gameService.ActivateGame(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"success": true}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
