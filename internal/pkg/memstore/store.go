package memstore

import (
	"sync"
	"time"

	accountEntity "railway-reservation/internal/module/account/models/entity"
	bookingEntity "railway-reservation/internal/module/booking/models/entity"
	catalogEntity "railway-reservation/internal/module/catalog/models/entity"
	"railway-reservation/internal/pkg/errors"
)

// Store holds accounts, trains and bookings in memory. Every method takes the
// store mutex, so a read-check-write sequence inside one method is atomic.
type Store struct {
	mutex      sync.RWMutex
	accounts   map[string]accountEntity.Account
	trains     map[int64]catalogEntity.Train
	trainOrder []int64
	bookings   map[string][]bookingEntity.Booking
}

func New() *Store {
	return &Store{
		accounts: make(map[string]accountEntity.Account),
		trains:   make(map[int64]catalogEntity.Train),
		bookings: make(map[string][]bookingEntity.Booking),
	}
}

// InsertAccount stores the account and opens its empty booking list.
func (s *Store) InsertAccount(account accountEntity.Account) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.accounts[account.Username]; exists {
		return errors.ErrDuplicateUsername
	}
	s.accounts[account.Username] = account
	if _, ok := s.bookings[account.Username]; !ok {
		s.bookings[account.Username] = []bookingEntity.Booking{}
	}
	return nil
}

func (s *Store) FindAccount(username string) (accountEntity.Account, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	account, exists := s.accounts[username]
	return account, exists
}

func (s *Store) CountAccounts() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.accounts)
}

func (s *Store) InsertTrain(train catalogEntity.Train) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if _, exists := s.trains[train.ID]; exists {
		return errors.BadRequest("train id already exists")
	}
	if !train.Valid() {
		return errors.BadRequest("invalid train seat counters or fare")
	}
	s.trains[train.ID] = train
	s.trainOrder = append(s.trainOrder, train.ID)
	return nil
}

// Trains returns the trains in insertion order.
func (s *Store) Trains() []catalogEntity.Train {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	trains := make([]catalogEntity.Train, 0, len(s.trainOrder))
	for _, id := range s.trainOrder {
		trains = append(trains, s.trains[id])
	}
	return trains
}

func (s *Store) Train(id int64) (catalogEntity.Train, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	train, exists := s.trains[id]
	return train, exists
}

// ReserveSeats re-checks availability, decrements the train and appends the
// booking with the next per-account id. The stored booking is returned.
func (s *Store) ReserveSeats(booking bookingEntity.Booking) (bookingEntity.Booking, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	train, exists := s.trains[booking.TrainID]
	if !exists {
		return bookingEntity.Booking{}, errors.ErrUnknownTrain
	}
	if booking.Seats > train.AvailableSeats {
		return bookingEntity.Booking{}, errors.InsufficientSeats(train.AvailableSeats)
	}

	var maxID int64
	for _, b := range s.bookings[booking.Username] {
		if b.ID > maxID {
			maxID = b.ID
		}
	}

	train.AvailableSeats -= booking.Seats
	s.trains[train.ID] = train

	booking.ID = maxID + 1
	booking.TrainName = train.Name
	booking.TotalFare = int64(booking.Seats) * train.Fare
	booking.Status = bookingEntity.StatusConfirmed
	s.bookings[booking.Username] = append(s.bookings[booking.Username], booking)

	return booking, nil
}

// CancelBooking flips a confirmed booking to cancelled and gives its seats
// back to the train it was made on.
func (s *Store) CancelBooking(username string, bookingID int64, at time.Time) (bookingEntity.Booking, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	list := s.bookings[username]
	for i := range list {
		if list[i].ID != bookingID || !list[i].Active() {
			continue
		}

		train, exists := s.trains[list[i].TrainID]
		if !exists {
			return bookingEntity.Booking{}, errors.ErrUnknownTrain
		}
		if train.AvailableSeats+list[i].Seats > train.TotalSeats {
			return bookingEntity.Booking{}, errors.InternalServerError("seat counter would exceed train capacity")
		}
		train.AvailableSeats += list[i].Seats
		s.trains[train.ID] = train

		list[i].Status = bookingEntity.StatusCancelled
		list[i].CancelledAt.Time = at
		list[i].CancelledAt.Valid = true
		return list[i], nil
	}

	return bookingEntity.Booking{}, errors.ErrBookingNotFound
}

// Bookings returns a copy of the account's bookings in insertion order.
func (s *Store) Bookings(username string) []bookingEntity.Booking {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	list := s.bookings[username]
	out := make([]bookingEntity.Booking, len(list))
	copy(out, list)
	return out
}
