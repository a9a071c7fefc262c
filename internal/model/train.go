package model

import "time"

// Train is a scheduled train with a seat inventory. AvailableSeats
// starts at Seats and is only ever decremented by successful bookings.
type Train struct {
	TrainID        int       `json:"train_id"`
	Name           string    `json:"name"`
	Seats          int       `json:"seats"`
	AvailableSeats int       `json:"available_seats"`
	DepartureTime  time.Time `json:"departure_time"`
}

// CreateTrainRequest carries the POST /trains body. DepartureTime is a
// raw string so the handler can accept both RFC3339 and zone-less
// ISO-8601 timestamps.
type CreateTrainRequest struct {
	Name          string `json:"name" binding:"required"`
	Seats         int    `json:"seats"`
	DepartureTime string `json:"departure_time" binding:"required"`
}
