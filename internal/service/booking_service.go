package service

import (
	"context"

	"train-ticket-booking/internal/model"
	"train-ticket-booking/internal/notification"
	"train-ticket-booking/internal/repository"
	"train-ticket-booking/pkg/logger"

	"go.uber.org/zap"
)

type BookingService interface {
	BookTicket(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error)
	BookingList(ctx context.Context) ([]*model.Booking, error)
	GetBookingByID(ctx context.Context, id int) (*model.Booking, error)
}

type BookingServiceImpl struct {
	trainRepository   repository.TrainRepository
	bookingRepository repository.BookingRepository
	dispatcher        notification.ReminderDispatcher
}

func NewBookingService(
	trainRepository repository.TrainRepository,
	bookingRepository repository.BookingRepository,
	dispatcher notification.ReminderDispatcher,
) BookingService {
	return &BookingServiceImpl{
		trainRepository:   trainRepository,
		bookingRepository: bookingRepository,
		dispatcher:        dispatcher,
	}
}

func (s *BookingServiceImpl) BookTicket(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	seats := req.Seats
	if seats == 0 {
		seats = 1
	}

	// Availability check and decrement happen atomically; on failure
	// nothing has been mutated and the error maps straight to HTTP.
	train, err := s.trainRepository.ReserveSeats(ctx, req.TrainID, seats)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		TrainID:       train.TrainID,
		TrainName:     train.Name,
		PassengerName: req.PassengerName,
		Email:         req.Email,
		Seats:         seats,
		SeatNumber:    train.Seats - train.AvailableSeats,
		DepartureTime: train.DepartureTime,
	}

	created, err := s.bookingRepository.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	// Best effort: a reminder that cannot be dispatched must never
	// fail the booking.
	if err := s.dispatcher.DispatchReminder(ctx, created); err != nil {
		logger.WithComponent("service").Warn("Failed to dispatch reminder",
			zap.Int("booking_id", created.BookingID),
			zap.Error(err))
	}

	return created, nil
}

func (s *BookingServiceImpl) BookingList(ctx context.Context) ([]*model.Booking, error) {
	return s.bookingRepository.List(ctx)
}

func (s *BookingServiceImpl) GetBookingByID(ctx context.Context, id int) (*model.Booking, error) {
	return s.bookingRepository.FindByID(ctx, id)
}
