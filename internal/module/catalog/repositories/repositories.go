package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"

	"railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const trainColumns = `id, name, route, total_seats, available_seats, fare, departure, arrival`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindAllTrains(ctx context.Context) ([]entity.Train, error)
	// FindTrainByID returns an empty Train when the id is unknown.
	FindTrainByID(ctx context.Context, trainID int64) (entity.Train, error)
	InsertTrain(ctx context.Context, train entity.Train) error
	CountTrains(ctx context.Context) (int, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindAllTrains implements Repositories.
func (r *repositories) FindAllTrains(ctx context.Context) ([]entity.Train, error) {
	query := `SELECT ` + trainColumns + ` FROM trains ORDER BY position`
	trains := []entity.Train{}
	if err := r.db.SelectContext(ctx, &trains, query); err != nil {
		return nil, errors.Wrap(err, "error find all trains")
	}
	return trains, nil
}

// FindTrainByID implements Repositories.
func (r *repositories) FindTrainByID(ctx context.Context, trainID int64) (entity.Train, error) {
	query := r.db.Rebind(`SELECT ` + trainColumns + ` FROM trains WHERE id = ?`)
	var train entity.Train
	err := r.db.GetContext(ctx, &train, query, trainID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return entity.Train{}, nil
	}
	if err != nil {
		return entity.Train{}, errors.Wrap(err, "error find train by id")
	}
	return train, nil
}

// InsertTrain implements Repositories. The new train is placed after every
// existing one.
func (r *repositories) InsertTrain(ctx context.Context, train entity.Train) error {
	if !train.Valid() {
		return errors.BadRequest("invalid train seat counters or fare")
	}

	query := r.db.Rebind(`INSERT INTO trains (` + trainColumns + `, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM trains))`)
	_, err := r.db.ExecContext(ctx, query,
		train.ID, train.Name, train.Route, train.TotalSeats, train.AvailableSeats,
		train.Fare, train.Departure, train.Arrival)
	if err != nil {
		r.log.Error(ctx, "error insert train", err)
		return errors.Wrap(err, "error insert train")
	}
	return nil
}

// CountTrains implements Repositories.
func (r *repositories) CountTrains(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM trains`); err != nil {
		return 0, errors.Wrap(err, "error count trains")
	}
	return count, nil
}
