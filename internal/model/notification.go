package model

import "time"

// Notification is a composed reminder waiting to be delivered by the
// email sink.
type Notification struct {
	ID        string    `json:"id"`
	BookingID int       `json:"booking_id"`
	Recipient string    `json:"recipient"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	SendTime  time.Time `json:"send_time"`
}
