package repositories

import (
	"context"
	"time"

	"railway-reservation/internal/module/booking/models/entity"
	catalogEntity "railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/pkg/memstore"
)

type memoryRepositories struct {
	store *memstore.Store
}

func NewMemory(store *memstore.Store) Repositories {
	return &memoryRepositories{store: store}
}

func (r *memoryRepositories) FindTrainByID(ctx context.Context, trainID int64) (catalogEntity.Train, error) {
	train, _ := r.store.Train(trainID)
	return train, nil
}

func (r *memoryRepositories) ReserveSeats(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	return r.store.ReserveSeats(booking)
}

func (r *memoryRepositories) CancelBooking(ctx context.Context, username string, bookingID int64, at time.Time) (entity.Booking, error) {
	return r.store.CancelBooking(username, bookingID, at)
}

func (r *memoryRepositories) FindBookingsByUsername(ctx context.Context, username string) ([]entity.Booking, error) {
	return r.store.Bookings(username), nil
}
