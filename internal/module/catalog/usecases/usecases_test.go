package usecases_test

import (
	"context"
	"testing"

	"railway-reservation/internal/module/catalog/mocks"
	"railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/module/catalog/usecases"
	"railway-reservation/internal/pkg/errors"
	log_internal "railway-reservation/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
)

func setup(t *testing.T) {
	repoMock = mocks.NewRepositories(t)
	uc = usecases.New(repoMock, log_internal.New(log_internal.Setup()))
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestListTrains(t *testing.T) {
	setup(t)
	defer teardown()
	ctx := context.Background()

	repoMock.On("FindAllTrains", ctx).Return(entity.DemoTrains(), nil)

	trains, err := uc.ListTrains(ctx)
	assert.NoError(t, err)
	assert.Equal(t, entity.DemoTrains(), trains)
}

func TestGetTrain(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		setup(t)
		defer teardown()

		expected := entity.DemoTrains()[0]
		repoMock.On("FindTrainByID", ctx, int64(101)).Return(expected, nil)

		train, err := uc.GetTrain(ctx, 101)
		assert.NoError(t, err)
		assert.Equal(t, expected, train)
	})

	t.Run("unknown", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("FindTrainByID", ctx, int64(999)).Return(entity.Train{}, nil)

		_, err := uc.GetTrain(ctx, 999)
		assert.Equal(t, errors.ErrUnknownTrain, err)
	})
}

func TestSeedTrains(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("CountTrains", ctx).Return(0, nil)
		for _, train := range entity.DemoTrains() {
			repoMock.On("InsertTrain", ctx, train).Return(nil).Once()
		}

		assert.NoError(t, uc.SeedTrains(ctx, entity.DemoTrains()))
	})

	t.Run("catalog already loaded", func(t *testing.T) {
		setup(t)
		defer teardown()

		repoMock.On("CountTrains", ctx).Return(3, nil)

		assert.NoError(t, uc.SeedTrains(ctx, entity.DemoTrains()))
		repoMock.AssertNotCalled(t, "InsertTrain", mock.Anything, mock.Anything)
	})
}
