package handlers

import (
	"net/http"

	"TENNIS-TRACKER_BACK-END/internal/dto"
	"TENNIS-TRACKER_BACK-END/internal/repository"
	"TENNIS-TRACKER_BACK-END/internal/utils"
)

// OpponentsHandler serves the derived per-opponent statistics
type OpponentsHandler struct {
	matches repository.MatchRepository
}

// NewOpponentsHandler creates a new OpponentsHandler
func NewOpponentsHandler(matches repository.MatchRepository) *OpponentsHandler {
	return &OpponentsHandler{matches: matches}
}

// Summary handles GET /opponents/summary
// @Summary Per-opponent win/loss summary
// @Description Groups the caller's matches by trimmed opponent name; recomputed on every request
// @Tags opponents
// @Produce json
// @Success 200 {object} dto.OpponentSummaryResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /opponents/summary [get]
func (h *OpponentsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := utils.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Not logged in")
		return
	}

	summaries, err := h.matches.SummarizeByOpponent(r.Context(), userID)
	if err != nil {
		writeRepoError(w, err, "", "Failed to fetch opponent summary")
		return
	}

	items := make([]dto.OpponentSummaryItem, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, dto.OpponentSummaryItem{
			OpponentName: s.OpponentName,
			Matches:      s.Matches,
			Wins:         s.Wins,
			Losses:       s.Losses,
		})
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.OpponentSummaryResponse{Opponents: items})
}
