package usecases

import (
	"context"

	"railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/module/catalog/repositories"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	ListTrains(ctx context.Context) ([]entity.Train, error)
	GetTrain(ctx context.Context, trainID int64) (entity.Train, error)
	SeedTrains(ctx context.Context, trains []entity.Train) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) ListTrains(ctx context.Context) ([]entity.Train, error) {
	return u.repo.FindAllTrains(ctx)
}

func (u *usecase) GetTrain(ctx context.Context, trainID int64) (entity.Train, error) {
	train, err := u.repo.FindTrainByID(ctx, trainID)
	if err != nil {
		return entity.Train{}, err
	}
	if train.ID == 0 {
		return entity.Train{}, errors.ErrUnknownTrain
	}
	return train, nil
}

// SeedTrains loads the catalog when it is still empty.
func (u *usecase) SeedTrains(ctx context.Context, trains []entity.Train) error {
	count, err := u.repo.CountTrains(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, train := range trains {
		if err := u.repo.InsertTrain(ctx, train); err != nil {
			return err
		}
	}
	u.log.Info(ctx, "catalog seeded", len(trains))
	return nil
}
