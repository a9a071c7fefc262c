package model

import "time"

// Booking is a passenger's reservation against a train. TrainName and
// DepartureTime are denormalized copies captured at booking time; the
// record is immutable afterwards.
type Booking struct {
	BookingID     int       `json:"booking_id"`
	TrainID       int       `json:"train_id"`
	TrainName     string    `json:"train_name"`
	PassengerName string    `json:"passenger_name"`
	Email         string    `json:"email"`
	Seats         int       `json:"seats"`
	SeatNumber    int       `json:"seat_number"`
	DepartureTime time.Time `json:"departure_time"`
}

// CreateBookingRequest carries the POST /book body. Seats defaults to 1
// when omitted.
type CreateBookingRequest struct {
	TrainID       int    `json:"train_id" binding:"required"`
	PassengerName string `json:"passenger_name" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Seats         int    `json:"seats" binding:"omitempty,min=1"`
}
