package queue

import (
	"context"

	"train-ticket-booking/internal/model"
	apperrors "train-ticket-booking/pkg/app_errors"
)

type Delivery struct {
	Data *model.Notification
	Ack  func()
	Nack func(requeue bool)
}

type NotificationQueue interface {
	// Publish enqueues a notification without blocking; a saturated
	// queue returns ErrQueueFull so the booking path never stalls.
	Publish(ctx context.Context, notification *model.Notification) error
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

// NotificationQueueImpl backs the queue with a buffered Go channel.
type NotificationQueueImpl struct {
	ch chan *model.Notification
}

func NewNotificationQueue(bufferSize int) NotificationQueue {
	return &NotificationQueueImpl{
		ch: make(chan *model.Notification, bufferSize),
	}
}

func (q *NotificationQueueImpl) Publish(ctx context.Context, notification *model.Notification) error {
	select {
	case q.ch <- notification:
		return nil
	default:
		return apperrors.ErrQueueFull
	}
}

func (q *NotificationQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case notification, ok := <-q.ch:
				if !ok {
					return
				}

				out <- Delivery{
					Data: notification,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if requeue {
							select {
							case q.ch <- notification:
							default:
							}
						}
					},
				}
			}
		}
	}()

	return out, nil
}
