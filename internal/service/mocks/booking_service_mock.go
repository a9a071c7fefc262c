package mocks

import (
	"context"

	"train-ticket-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type BookingServiceMock struct {
	mock.Mock
}

func NewBookingServiceMock() *BookingServiceMock {
	return &BookingServiceMock{}
}

func (m *BookingServiceMock) BookTicket(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) BookingList(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *BookingServiceMock) GetBookingByID(ctx context.Context, id int) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}
