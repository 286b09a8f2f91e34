package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Selection errors
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrInvalidDate        = errors.New("invalid date")
	ErrReservedByRequired = errors.New("reserved-by is required")

	// Booking errors
	ErrSlotTaken       = errors.New("slot already booked")
	ErrAlreadyRemoved  = errors.New("booking already removed")
	ErrBookingNotFound = errors.New("booking not found")
	ErrStaleData       = errors.New("stale data")

	// Reporting errors
	ErrNothingToExport = errors.New("nothing to export")

	// Operation errors
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrStorageUnavailable   = errors.New("storage unavailable")
)
