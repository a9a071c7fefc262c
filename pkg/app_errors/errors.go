package apperrors

import "errors"

var (
	ErrTrainNotFound       = errors.New("train not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInsufficientSeats   = errors.New("not enough seats available")
	ErrInvalidInput        = errors.New("invalid input")
	ErrQueueFull           = errors.New("notification queue full")
	ErrInternalServerError = errors.New("internal server error")
)
