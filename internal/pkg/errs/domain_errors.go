package errs

import "errors"

// Sentinel errors shared between usecase layers and the HTTP error mapping.
var (
	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailConflict = errors.New("email already in use")
	ErrUserHasItems  = errors.New("user still owns items")

	// Item errors
	ErrItemNotFound    = errors.New("item not found")
	ErrItemUnavailable = errors.New("item not available")
	ErrNotItemOwner    = errors.New("acting user is not the item owner")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrInvalidPeriod   = errors.New("invalid booking period")
	ErrAlreadyDecided  = errors.New("booking is no longer waiting for approval")
	ErrViewNotAllowed  = errors.New("user may not view this booking")
	ErrInvalidState    = errors.New("unknown booking state filter")

	// Comment errors
	ErrCommentNotAllowed = errors.New("user has no finished booking of this item")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
