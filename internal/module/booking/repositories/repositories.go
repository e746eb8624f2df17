package repositories

import (
	"context"
	"database/sql"
	stderrors "errors"
	"time"

	"railway-reservation/internal/module/booking/models/entity"
	catalogEntity "railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/pkg/database"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

const bookingColumns = `booking_id, username, train_id, train_name, seats, total_fare, status, created_at, cancelled_at`

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	// FindTrainByID returns an empty Train when the id is unknown.
	FindTrainByID(ctx context.Context, trainID int64) (catalogEntity.Train, error)
	// ReserveSeats decrements the train and stores the booking as one unit.
	// ID, TrainName, TotalFare and Status are filled in from the train.
	ReserveSeats(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	// CancelBooking flips a confirmed booking to cancelled and restores the
	// seats of its train as one unit.
	CancelBooking(ctx context.Context, username string, bookingID int64, at time.Time) (entity.Booking, error)
	FindBookingsByUsername(ctx context.Context, username string) ([]entity.Booking, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindTrainByID implements Repositories.
func (r *repositories) FindTrainByID(ctx context.Context, trainID int64) (catalogEntity.Train, error) {
	query := r.db.Rebind(`SELECT id, name, route, total_seats, available_seats, fare, departure, arrival FROM trains WHERE id = ?`)
	var train catalogEntity.Train
	err := r.db.GetContext(ctx, &train, query, trainID)
	if stderrors.Is(err, sql.ErrNoRows) {
		return catalogEntity.Train{}, nil
	}
	if err != nil {
		return catalogEntity.Train{}, errors.Wrap(err, "error find train by id")
	}
	return train, nil
}

// ReserveSeats implements Repositories. The decrement is conditional on the
// current counter, so a stale availability check can never oversell.
func (r *repositories) ReserveSeats(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var train catalogEntity.Train
		err := tx.GetContext(ctx, &train, tx.Rebind(`SELECT id, name, fare FROM trains WHERE id = ?`), booking.TrainID)
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.ErrUnknownTrain
		}
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			tx.Rebind(`UPDATE trains SET available_seats = available_seats - ? WHERE id = ? AND available_seats >= ?`),
			booking.Seats, booking.TrainID, booking.Seats)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			var available int
			if err := tx.GetContext(ctx, &available, tx.Rebind(`SELECT available_seats FROM trains WHERE id = ?`), booking.TrainID); err != nil {
				return err
			}
			return errors.InsufficientSeats(available)
		}

		var next int64
		err = tx.GetContext(ctx, &next,
			tx.Rebind(`SELECT COALESCE(MAX(booking_id), 0) + 1 FROM bookings WHERE username = ?`), booking.Username)
		if err != nil {
			return err
		}

		booking.ID = next
		booking.TrainName = train.Name
		booking.TotalFare = int64(booking.Seats) * train.Fare
		booking.Status = entity.StatusConfirmed

		_, err = tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO bookings (booking_id, username, train_id, train_name, seats, total_fare, status, created_at)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?)`),
			booking.ID, booking.Username, booking.TrainID, booking.TrainName,
			booking.Seats, booking.TotalFare, booking.Status, booking.CreatedAt)
		return err
	})
	if err != nil {
		if errors.TypeOf(err) == errors.Persistence {
			r.log.Error(ctx, "error reserve seats", err)
		}
		return entity.Booking{}, errors.Wrap(err, "error reserve seats")
	}
	return booking, nil
}

// CancelBooking implements Repositories.
func (r *repositories) CancelBooking(ctx context.Context, username string, bookingID int64, at time.Time) (entity.Booking, error) {
	var booking entity.Booking
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &booking,
			tx.Rebind(`SELECT `+bookingColumns+` FROM bookings WHERE username = ? AND booking_id = ? AND status = ?`),
			username, bookingID, entity.StatusConfirmed)
		if stderrors.Is(err, sql.ErrNoRows) {
			return errors.ErrBookingNotFound
		}
		if err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			tx.Rebind(`UPDATE bookings SET status = ?, cancelled_at = ? WHERE username = ? AND booking_id = ? AND status = ?`),
			entity.StatusCancelled, at, username, bookingID, entity.StatusConfirmed)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err != nil {
			return err
		} else if affected == 0 {
			return errors.ErrBookingNotFound
		}

		res, err = tx.ExecContext(ctx,
			tx.Rebind(`UPDATE trains SET available_seats = available_seats + ? WHERE id = ? AND available_seats + ? <= total_seats`),
			booking.Seats, booking.TrainID, booking.Seats)
		if err != nil {
			return err
		}
		if affected, err := res.RowsAffected(); err != nil {
			return err
		} else if affected == 0 {
			return errors.InternalServerError("seat counter would exceed train capacity")
		}
		return nil
	})
	if err != nil {
		if errors.TypeOf(err) == errors.Persistence {
			r.log.Error(ctx, "error cancel booking", err)
		}
		return entity.Booking{}, errors.Wrap(err, "error cancel booking")
	}

	booking.Status = entity.StatusCancelled
	booking.CancelledAt = sql.NullTime{Time: at, Valid: true}
	return booking, nil
}

// FindBookingsByUsername implements Repositories.
func (r *repositories) FindBookingsByUsername(ctx context.Context, username string) ([]entity.Booking, error) {
	query := r.db.Rebind(`SELECT ` + bookingColumns + ` FROM bookings WHERE username = ? ORDER BY id`)
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, username); err != nil {
		return nil, errors.Wrap(err, "error find bookings by username")
	}
	return bookings, nil
}
