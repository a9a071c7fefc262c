package repository

import (
	"context"
	"sync"

	"train-ticket-booking/internal/model"
	apperrors "train-ticket-booking/pkg/app_errors"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	FindByID(ctx context.Context, id int) (*model.Booking, error)
}

// MemoryBookingRepository is the insertion-ordered booking ledger.
// Bookings are immutable once appended and never deleted.
type MemoryBookingRepository struct {
	mu       sync.Mutex
	bookings []*model.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &MemoryBookingRepository{
		bookings: make([]*model.Booking, 0),
	}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking.BookingID = len(r.bookings) + 1
	r.bookings = append(r.bookings, booking)

	snapshot := *booking
	return &snapshot, nil
}

func (r *MemoryBookingRepository) List(ctx context.Context) ([]*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	bookings := make([]*model.Booking, 0, len(r.bookings))
	for _, booking := range r.bookings {
		snapshot := *booking
		bookings = append(bookings, &snapshot)
	}
	return bookings, nil
}

func (r *MemoryBookingRepository) FindByID(ctx context.Context, id int) (*model.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, booking := range r.bookings {
		if booking.BookingID == id {
			snapshot := *booking
			return &snapshot, nil
		}
	}
	return nil, apperrors.ErrBookingNotFound
}
