package repositories_test

import (
	"context"
	stderrors "errors"
	"regexp"
	"testing"
	"time"

	"railway-reservation/config"
	accountEntity "railway-reservation/internal/module/account/models/entity"
	accountRepositories "railway-reservation/internal/module/account/repositories"
	"railway-reservation/internal/module/booking/models/entity"
	"railway-reservation/internal/module/booking/repositories"
	catalogEntity "railway-reservation/internal/module/catalog/models/entity"
	catalogRepositories "railway-reservation/internal/module/catalog/repositories"
	"railway-reservation/internal/pkg/database"
	"railway-reservation/internal/pkg/errors"
	log_internal "railway-reservation/internal/pkg/log"
	"railway-reservation/internal/pkg/memstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var createdAt = time.Date(2026, 10, 15, 8, 0, 0, 0, time.UTC)

func seed(t *testing.T, accounts accountRepositories.Repositories, trains catalogRepositories.Repositories) {
	t.Helper()
	ctx := context.Background()
	for _, train := range catalogEntity.DemoTrains() {
		require.NoError(t, trains.InsertTrain(ctx, train))
	}
	for _, username := range []string{"alice", "bob"} {
		require.NoError(t, accounts.InsertAccount(ctx, accountEntity.Account{Username: username, Password: "secret1", CreatedAt: createdAt}))
	}
}

func TestRepositories(t *testing.T) {
	variants := map[string]func(t *testing.T) repositories.Repositories{
		"sql": func(t *testing.T) repositories.Repositories {
			db, err := database.GetConnection(context.Background(), &config.DatabaseConfig{Driver: config.DriverSQLite, DSN: ":memory:"})
			require.NoError(t, err)
			t.Cleanup(func() { _ = db.Close() })
			logger := log_internal.New(log_internal.Setup())
			seed(t, accountRepositories.New(db, logger), catalogRepositories.New(db, logger))
			return repositories.New(db, logger)
		},
		"memory": func(t *testing.T) repositories.Repositories {
			store := memstore.New()
			seed(t, accountRepositories.NewMemory(store), catalogRepositories.NewMemory(store))
			return repositories.NewMemory(store)
		},
	}

	for name, newRepo := range variants {
		t.Run(name, func(t *testing.T) {
			repo := newRepo(t)
			ctx := context.Background()

			train, err := repo.FindTrainByID(ctx, 101)
			require.NoError(t, err)
			assert.Equal(t, catalogEntity.DemoTrains()[0], train)

			missing, err := repo.FindTrainByID(ctx, 999)
			require.NoError(t, err)
			assert.Equal(t, catalogEntity.Train{}, missing)

			booking, err := repo.ReserveSeats(ctx, entity.Booking{Username: "alice", TrainID: 101, Seats: 5, CreatedAt: createdAt})
			require.NoError(t, err)
			assert.Equal(t, int64(1), booking.ID)
			assert.Equal(t, "Express A", booking.TrainName)
			assert.Equal(t, int64(7500), booking.TotalFare)
			assert.Equal(t, entity.StatusConfirmed, booking.Status)

			train, err = repo.FindTrainByID(ctx, 101)
			require.NoError(t, err)
			assert.Equal(t, 80, train.AvailableSeats)

			second, err := repo.ReserveSeats(ctx, entity.Booking{Username: "alice", TrainID: 102, Seats: 2, CreatedAt: createdAt})
			require.NoError(t, err)
			assert.Equal(t, int64(2), second.ID)

			other, err := repo.ReserveSeats(ctx, entity.Booking{Username: "bob", TrainID: 102, Seats: 1, CreatedAt: createdAt})
			require.NoError(t, err)
			assert.Equal(t, int64(1), other.ID)

			_, err = repo.ReserveSeats(ctx, entity.Booking{Username: "alice", TrainID: 999, Seats: 1, CreatedAt: createdAt})
			assert.True(t, errors.IsReason(err, errors.ErrUnknownTrain))

			_, err = repo.ReserveSeats(ctx, entity.Booking{Username: "alice", TrainID: 103, Seats: 61, CreatedAt: createdAt})
			assert.True(t, errors.IsReason(err, errors.ErrInsufficientSeats))
			seats, ok := errors.AvailableSeats(err)
			assert.True(t, ok)
			assert.Equal(t, 60, seats)

			cancelledAt := createdAt.Add(time.Hour)
			cancelled, err := repo.CancelBooking(ctx, "alice", booking.ID, cancelledAt)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusCancelled, cancelled.Status)
			assert.Equal(t, int64(101), cancelled.TrainID)
			assert.Equal(t, 5, cancelled.Seats)
			assert.True(t, cancelled.CancelledAt.Valid)

			train, err = repo.FindTrainByID(ctx, 101)
			require.NoError(t, err)
			assert.Equal(t, 85, train.AvailableSeats)

			_, err = repo.CancelBooking(ctx, "alice", booking.ID, cancelledAt)
			assert.True(t, errors.IsReason(err, errors.ErrBookingNotFound))
			_, err = repo.CancelBooking(ctx, "bob", second.ID, cancelledAt)
			assert.True(t, errors.IsReason(err, errors.ErrBookingNotFound))

			bookings, err := repo.FindBookingsByUsername(ctx, "alice")
			require.NoError(t, err)
			require.Len(t, bookings, 2)
			assert.Equal(t, int64(1), bookings[0].ID)
			assert.Equal(t, entity.StatusCancelled, bookings[0].Status)
			assert.Equal(t, int64(2), bookings[1].ID)
			assert.Equal(t, entity.StatusConfirmed, bookings[1].Status)
			assert.True(t, createdAt.Equal(bookings[1].CreatedAt))

			none, err := repo.FindBookingsByUsername(ctx, "carol")
			require.NoError(t, err)
			assert.Empty(t, none)
		})
	}
}

func TestReserveSeatsRollsBack(t *testing.T) {
	dbx, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer dbx.Close()

	repo := repositories.New(dbx, log_internal.New(log_internal.Setup()))
	failure := stderrors.New("connection reset")

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, fare FROM trains WHERE id = ?`)).
		WithArgs(int64(101)).
		WillReturnRows(sqlxmock.NewRows([]string{"id", "name", "fare"}).AddRow(101, "Express A", 1500))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE trains SET available_seats = available_seats - ?`)).
		WithArgs(2, int64(101), 2).
		WillReturnError(failure)
	mock.ExpectRollback()

	_, err = repo.ReserveSeats(context.Background(), entity.Booking{Username: "alice", TrainID: 101, Seats: 2, CreatedAt: createdAt})
	assert.Equal(t, errors.Persistence, errors.TypeOf(err))
	assert.ErrorIs(t, err, failure)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelBookingRollsBackOnCapacityOverflow(t *testing.T) {
	dbx, mock, err := sqlxmock.Newx()
	require.NoError(t, err)
	defer dbx.Close()

	repo := repositories.New(dbx, log_internal.New(log_internal.Setup()))
	at := createdAt.Add(time.Hour)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`FROM bookings WHERE username = ? AND booking_id = ? AND status = ?`)).
		WithArgs("alice", int64(1), entity.StatusConfirmed).
		WillReturnRows(sqlxmock.NewRows([]string{
			"booking_id", "username", "train_id", "train_name", "seats", "total_fare", "status", "created_at", "cancelled_at",
		}).AddRow(1, "alice", 101, "Express A", 5, 7500, entity.StatusConfirmed, createdAt, nil))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE bookings SET status = ?, cancelled_at = ?`)).
		WithArgs(entity.StatusCancelled, at, "alice", int64(1), entity.StatusConfirmed).
		WillReturnResult(sqlxmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE trains SET available_seats = available_seats + ?`)).
		WithArgs(5, int64(101), 5).
		WillReturnResult(sqlxmock.NewResult(0, 0))
	mock.ExpectRollback()

	_, err = repo.CancelBooking(context.Background(), "alice", 1, at)
	assert.Equal(t, errors.Persistence, errors.TypeOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
