package worker

import (
	"context"

	"train-ticket-booking/internal/notification"
	"train-ticket-booking/internal/queue"
	"train-ticket-booking/pkg/logger"

	"go.uber.org/zap"
)

type NotificationWorker interface {
	// Start subscribes to the notification queue and drains it into
	// the email sink on a background goroutine.
	Start(ctx context.Context) error
}

type NotificationWorkerImpl struct {
	sender notification.EmailSender
	queue  queue.NotificationQueue
}

func NewNotificationWorker(sender notification.EmailSender, q queue.NotificationQueue) NotificationWorker {
	return &NotificationWorkerImpl{
		sender: sender,
		queue:  q,
	}
}

func (w *NotificationWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	log := logger.WithComponent("worker")

	go func() {
		for msg := range msgs {
			err := w.sender.Send(ctx, msg.Data.Recipient, msg.Data.Subject, msg.Data.Body)
			if err != nil {
				// Reminders are fire-and-forget: log and drop, no requeue.
				log.Warn("Failed to send reminder",
					zap.String("notification_id", msg.Data.ID),
					zap.Int("booking_id", msg.Data.BookingID),
					zap.Error(err))
				msg.Nack(false)
			} else {
				msg.Ack()
			}
		}
	}()
	return nil
}
