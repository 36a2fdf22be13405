package handlers

import (
	"errors"
	"log"
	"net/http"

	"TENNIS-TRACKER_BACK-END/internal/apperr"
	"TENNIS-TRACKER_BACK-END/internal/utils"
)

// writeRepoError maps a repository error onto the HTTP taxonomy. Validation
// failures surface their own message; not-found uses notFoundMsg; anything
// unexpected is logged server-side and answered with the generic internalMsg.
func writeRepoError(w http.ResponseWriter, err error, notFoundMsg, internalMsg string) {
	if ve, ok := apperr.AsValidation(err); ok {
		utils.WriteErrorResponse(w, http.StatusBadRequest, ve.Message)
		return
	}

	switch {
	case errors.Is(err, apperr.ErrNotFound):
		utils.WriteErrorResponse(w, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, apperr.ErrDuplicateEmail):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Email already exists")
	case errors.Is(err, apperr.ErrInvalidCredentials):
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid email or password")
	default:
		log.Printf("internal error: %v", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, internalMsg)
	}
}
