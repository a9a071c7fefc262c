package notification

import (
	"context"
	"fmt"
	"time"

	"train-ticket-booking/internal/model"
	"train-ticket-booking/internal/queue"

	"github.com/google/uuid"
)

const reminderSubject = "Train Departure Reminder"

type ReminderDispatcher interface {
	// DispatchReminder composes a departure reminder for the booking
	// and publishes it to the notification queue. Nothing is published
	// when departure minus the lead interval has already passed.
	DispatchReminder(ctx context.Context, booking *model.Booking) error
}

type ReminderDispatcherImpl struct {
	queue queue.NotificationQueue
	lead  time.Duration
	now   func() time.Time
}

func NewReminderDispatcher(q queue.NotificationQueue, lead time.Duration) ReminderDispatcher {
	return &ReminderDispatcherImpl{
		queue: q,
		lead:  lead,
		now:   time.Now,
	}
}

func (d *ReminderDispatcherImpl) DispatchReminder(ctx context.Context, booking *model.Booking) error {
	sendTime := booking.DepartureTime.Add(-d.lead)

	// Evaluated once at booking time: a reminder whose nominal send
	// time is still ahead goes out right away rather than being
	// deferred until sendTime. Kept as-is from the original behavior.
	if !sendTime.After(d.now()) {
		return nil
	}

	notification := &model.Notification{
		ID:        uuid.New().String(),
		BookingID: booking.BookingID,
		Recipient: booking.Email,
		Subject:   reminderSubject,
		Body:      composeReminderBody(booking),
		SendTime:  sendTime,
	}

	return d.queue.Publish(ctx, notification)
}

func composeReminderBody(booking *model.Booking) string {
	return fmt.Sprintf(
		"Dear %s,\nYour train %s is scheduled to depart at %s. Your seat number is %d.",
		booking.PassengerName,
		booking.TrainName,
		booking.DepartureTime.Format(time.RFC3339),
		booking.SeatNumber,
	)
}
