package domain

import "errors"

// Caller-facing errors. All of these are recoverable and map to a distinct
// rejection of the requested action; infrastructure failures are passed
// through untranslated.
var (
	ErrItemUnavailable     = errors.New("item is not available")
	ErrSelfRentalForbidden = errors.New("cannot rent your own item")
	ErrInvalidDateRange    = errors.New("invalid date range")
	ErrRentalNotFound      = errors.New("rental not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrNotAuthorized       = errors.New("not authorized")
	ErrInvalidTransition   = errors.New("invalid rental status transition")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrReviewNotAllowed    = errors.New("review not allowed for this rental")
	ErrDuplicateReview     = errors.New("rental already reviewed")
)
