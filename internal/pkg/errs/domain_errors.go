package errs

import "errors"

// Sentinel errors shared across usecase layers
var (
	// Hotel errors
	ErrHotelNotFound = errors.New("hotel not found")

	// Booking errors
	ErrBookingNotFound        = errors.New("booking not found")
	ErrSoldOut                = errors.New("hotel is sold out for the requested date")
	ErrInvalidDate            = errors.New("invalid check-in date")
	ErrDurationOutOfRange     = errors.New("stay duration out of range")
	ErrCancellationNotAllowed = errors.New("cancellation is no longer allowed")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
