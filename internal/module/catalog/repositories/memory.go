package repositories

import (
	"context"

	"railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/pkg/memstore"
)

type memoryRepositories struct {
	store *memstore.Store
}

func NewMemory(store *memstore.Store) Repositories {
	return &memoryRepositories{store: store}
}

func (r *memoryRepositories) FindAllTrains(ctx context.Context) ([]entity.Train, error) {
	return r.store.Trains(), nil
}

func (r *memoryRepositories) FindTrainByID(ctx context.Context, trainID int64) (entity.Train, error) {
	train, _ := r.store.Train(trainID)
	return train, nil
}

func (r *memoryRepositories) InsertTrain(ctx context.Context, train entity.Train) error {
	return r.store.InsertTrain(train)
}

func (r *memoryRepositories) CountTrains(ctx context.Context) (int, error) {
	return len(r.store.Trains()), nil
}
