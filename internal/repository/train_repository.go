package repository

import (
	"context"
	"sync"

	"train-ticket-booking/internal/model"
	apperrors "train-ticket-booking/pkg/app_errors"
)

type TrainRepository interface {
	Create(ctx context.Context, train *model.Train) (*model.Train, error)
	List(ctx context.Context) ([]*model.Train, error)
	FindByID(ctx context.Context, id int) (*model.Train, error)

	// ReserveSeats checks availability and decrements it as one atomic
	// operation, returning the updated train.
	ReserveSeats(ctx context.Context, id int, seats int) (*model.Train, error)
}

// MemoryTrainRepository keeps trains in an insertion-ordered slice
// guarded by a single mutex. IDs are the 1-based position in the slice;
// trains are never deleted, so they stay unique.
type MemoryTrainRepository struct {
	mu     sync.Mutex
	trains []*model.Train
}

func NewMemoryTrainRepository() TrainRepository {
	return &MemoryTrainRepository{
		trains: make([]*model.Train, 0),
	}
}

func (r *MemoryTrainRepository) Create(ctx context.Context, train *model.Train) (*model.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	train.TrainID = len(r.trains) + 1
	train.AvailableSeats = train.Seats
	r.trains = append(r.trains, train)

	snapshot := *train
	return &snapshot, nil
}

func (r *MemoryTrainRepository) List(ctx context.Context) ([]*model.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trains := make([]*model.Train, 0, len(r.trains))
	for _, train := range r.trains {
		snapshot := *train
		trains = append(trains, &snapshot)
	}
	return trains, nil
}

func (r *MemoryTrainRepository) FindByID(ctx context.Context, id int) (*model.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	train := r.findLocked(id)
	if train == nil {
		return nil, apperrors.ErrTrainNotFound
	}
	snapshot := *train
	return &snapshot, nil
}

func (r *MemoryTrainRepository) ReserveSeats(ctx context.Context, id int, seats int) (*model.Train, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	train := r.findLocked(id)
	if train == nil {
		return nil, apperrors.ErrTrainNotFound
	}
	if train.AvailableSeats < seats {
		return nil, apperrors.ErrInsufficientSeats
	}

	train.AvailableSeats -= seats
	snapshot := *train
	return &snapshot, nil
}

func (r *MemoryTrainRepository) findLocked(id int) *model.Train {
	for _, train := range r.trains {
		if train.TrainID == id {
			return train
		}
	}
	return nil
}
