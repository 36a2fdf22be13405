package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"TENNIS-TRACKER_BACK-END/internal/dto"
	"TENNIS-TRACKER_BACK-END/internal/models"
	"TENNIS-TRACKER_BACK-END/internal/repository"
	"TENNIS-TRACKER_BACK-END/internal/utils"
)

// MatchesHandler manages match-related endpoints
type MatchesHandler struct {
	matches repository.MatchRepository
}

// NewMatchesHandler creates a new MatchesHandler
func NewMatchesHandler(matches repository.MatchRepository) *MatchesHandler {
	return &MatchesHandler{matches: matches}
}

// Matches dispatches by HTTP method for /matches and /matches/{id}
func (h *MatchesHandler) Matches(w http.ResponseWriter, r *http.Request) {
	// Detail routes carry an id suffix
	if strings.HasPrefix(r.URL.Path, "/matches/") && len(r.URL.Path) > len("/matches/") {
		switch r.Method {
		case http.MethodGet:
			h.MatchDetail(w, r)
		case http.MethodPut:
			h.UpdateMatch(w, r)
		case http.MethodDelete:
			h.DeleteMatch(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	switch r.Method {
	case http.MethodPost:
		h.CreateMatch(w, r)
	case http.MethodGet:
		h.ListMatches(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// CreateMatch handles POST /matches
// @Summary Record a match
// @Tags matches
// @Accept json
// @Produce json
// @Param payload body dto.MatchRequest true "Match payload"
// @Success 201 {object} dto.MatchEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /matches [post]
func (h *MatchesHandler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	var req dto.MatchRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	match, err := h.matches.Create(r.Context(), userID, matchInput(req))
	if err != nil {
		writeRepoError(w, err, "Match not found", "Failed to create match")
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.MatchEnvelope{Match: toMatchResponse(match)})
}

// ListMatches handles GET /matches with optional filters
// @Summary List matches
// @Description List the caller's matches, newest first; filters combine conjunctively
// @Tags matches
// @Produce json
// @Param opponent query string false "Exact opponent name (trimmed, case-insensitive)"
// @Param result query string false "W or L"
// @Param from query string false "Inclusive lower date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper date bound (YYYY-MM-DD)"
// @Success 200 {object} dto.MatchListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /matches [get]
func (h *MatchesHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	q := r.URL.Query()
	filter := repository.ListFilter{
		Opponent: q.Get("opponent"),
		Result:   q.Get("result"),
		From:     q.Get("from"),
		To:       q.Get("to"),
	}

	matches, err := h.matches.List(r.Context(), userID, filter)
	if err != nil {
		writeRepoError(w, err, "Match not found", "Failed to fetch matches")
		return
	}

	items := make([]dto.MatchResponse, 0, len(matches))
	for i := range matches {
		items = append(items, toMatchResponse(&matches[i]))
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MatchListResponse{Matches: items})
}

// MatchDetail handles GET /matches/{id}
// @Summary Get one match
// @Tags matches
// @Produce json
// @Param id path int true "Match id"
// @Success 200 {object} dto.MatchEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /matches/{id} [get]
func (h *MatchesHandler) MatchDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	matchID, ok := parseMatchID(w, r)
	if !ok {
		return
	}

	match, err := h.matches.GetByID(r.Context(), userID, matchID)
	if err != nil {
		writeRepoError(w, err, "Match not found", "Failed to fetch match")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MatchEnvelope{Match: toMatchResponse(match)})
}

// UpdateMatch handles PUT /matches/{id}
// @Summary Replace a match
// @Description Full-row replace; every field must be resupplied
// @Tags matches
// @Accept json
// @Produce json
// @Param id path int true "Match id"
// @Param payload body dto.MatchRequest true "Match payload"
// @Success 200 {object} dto.MatchEnvelope
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /matches/{id} [put]
func (h *MatchesHandler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	matchID, ok := parseMatchID(w, r)
	if !ok {
		return
	}

	var req dto.MatchRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	match, err := h.matches.Update(r.Context(), userID, matchID, matchInput(req))
	if err != nil {
		writeRepoError(w, err, "Match not found", "Failed to update match")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MatchEnvelope{Match: toMatchResponse(match)})
}

// DeleteMatch handles DELETE /matches/{id}
// @Summary Delete a match
// @Tags matches
// @Produce json
// @Param id path int true "Match id"
// @Success 200 {object} dto.DeleteMatchResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /matches/{id} [delete]
func (h *MatchesHandler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	matchID, ok := parseMatchID(w, r)
	if !ok {
		return
	}

	deletedID, err := h.matches.Delete(r.Context(), userID, matchID)
	if err != nil {
		writeRepoError(w, err, "Match not found", "Failed to delete match")
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.DeleteMatchResponse{
		Message: "Match deleted",
		ID:      deletedID,
	})
}

// parseMatchID extracts the id path segment. Non-integer and negative ids
// are rejected with a 400 before any repository call.
func parseMatchID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := strings.TrimPrefix(r.URL.Path, "/matches/")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 0 {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Match id must be an integer")
		return 0, false
	}
	return id, true
}

func matchInput(req dto.MatchRequest) repository.MatchInput {
	return repository.MatchInput{
		MatchDate:    req.MatchDate,
		OpponentName: req.OpponentName,
		Result:       req.Result,
		Score:        req.Score,
		Notes:        req.Notes,
	}
}

func toMatchResponse(m *models.Match) dto.MatchResponse {
	return dto.MatchResponse{
		ID:           m.ID,
		MatchDate:    m.MatchDate.Format("2006-01-02"),
		OpponentName: m.OpponentName,
		Result:       m.Result,
		Score:        m.Score,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt.Format(time.RFC3339),
	}
}
