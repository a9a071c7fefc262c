package mocks

import (
	"context"
	"time"

	"train-ticket-booking/internal/model"

	"github.com/stretchr/testify/mock"
)

type TrainServiceMock struct {
	mock.Mock
}

func NewTrainServiceMock() *TrainServiceMock {
	return &TrainServiceMock{}
}

func (m *TrainServiceMock) AddTrain(ctx context.Context, name string, seats int, departureTime time.Time) (*model.Train, error) {
	args := m.Called(ctx, name, seats, departureTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Train), args.Error(1)
}

func (m *TrainServiceMock) TrainList(ctx context.Context) ([]*model.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Train), args.Error(1)
}
