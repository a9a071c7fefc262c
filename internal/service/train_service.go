package service

import (
	"context"
	"time"

	"train-ticket-booking/internal/model"
	"train-ticket-booking/internal/repository"
)

type TrainService interface {
	AddTrain(ctx context.Context, name string, seats int, departureTime time.Time) (*model.Train, error)
	TrainList(ctx context.Context) ([]*model.Train, error)
}

type TrainServiceImpl struct {
	repo repository.TrainRepository
}

func NewTrainService(repo repository.TrainRepository) TrainService {
	return &TrainServiceImpl{repo: repo}
}

func (s *TrainServiceImpl) AddTrain(ctx context.Context, name string, seats int, departureTime time.Time) (*model.Train, error) {
	train := &model.Train{
		Name:          name,
		Seats:         seats,
		DepartureTime: departureTime,
	}
	return s.repo.Create(ctx, train)
}

func (s *TrainServiceImpl) TrainList(ctx context.Context) ([]*model.Train, error) {
	return s.repo.List(ctx)
}
