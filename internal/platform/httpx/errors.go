package httpx

import (
	"errors"
	"net/http"

	"github.com/melodex/melodex/internal/shared"
)

// RespondError translates domain errors to HTTP statuses. Every domain error
// is raised at the service layer and crosses the boundary exactly here.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrValidation):
		Error(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrEmailTaken):
		Error(w, http.StatusBadRequest, shared.ErrEmailTaken.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Error(w, http.StatusUnauthorized, shared.ErrInvalidCredentials.Error())
	case errors.Is(err, shared.ErrTokenInvalid):
		Error(w, http.StatusUnauthorized, shared.ErrTokenInvalid.Error())
	case errors.Is(err, shared.ErrForbidden):
		Error(w, http.StatusForbidden, shared.ErrForbidden.Error())
	case errors.Is(err, shared.ErrNotFound):
		Error(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrAlreadyInPlaylist):
		Error(w, http.StatusConflict, shared.ErrAlreadyInPlaylist.Error())
	case errors.Is(err, shared.ErrRateLimited):
		Error(w, http.StatusTooManyRequests, shared.ErrRateLimited.Error())
	default:
		Error(w, http.StatusInternalServerError, "internal error")
	}
}
