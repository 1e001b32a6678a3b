package api

import (
	"errors"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// Raised when a handler behind RequireSharer somehow has no user id; it
// still maps to a client error, the header was absent or mangled.
var errMissingSharer = errors.New("sharer user id missing from request context")

// abortDomainError translates a usecase error into the HTTP envelope.
// Not-found sentinels map to 404, the email conflict to 409, every other
// known sentinel is a client error, anything unmarked is a 500.
func abortDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrUserNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
	case errors.Is(err, errs.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found", nil)
	case errors.Is(err, errs.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, errs.ErrEmailConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Email already in use", nil)
	case errors.Is(err, errs.ErrUserHasItems):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "User still owns items", nil)
	case errors.Is(err, errs.ErrItemUnavailable):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Item is not available for booking", nil)
	case errors.Is(err, errs.ErrNotItemOwner):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Only the item owner may do this", nil)
	case errors.Is(err, errs.ErrViewNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking is not visible to this user", nil)
	case errors.Is(err, errs.ErrInvalidPeriod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking period", err.Error())
	case errors.Is(err, errs.ErrAlreadyDecided):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking has already been decided", nil)
	case errors.Is(err, errs.ErrInvalidState):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown state filter", nil)
	case errors.Is(err, errs.ErrCommentNotAllowed):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Commenting requires a finished booking of the item", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", err.Error())
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
