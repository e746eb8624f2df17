package usecases

import (
	"context"
	"fmt"
	"time"

	accountEntity "railway-reservation/internal/module/account/models/entity"
	"railway-reservation/internal/module/booking/models/entity"
	"railway-reservation/internal/module/booking/models/request"
	"railway-reservation/internal/module/booking/models/response"
	"railway-reservation/internal/module/booking/repositories"
	"railway-reservation/internal/pkg/errors"
	"railway-reservation/internal/pkg/lock"
	"railway-reservation/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const (
	EventBookingConfirmed = "booking.confirmed"
	EventBookingCancelled = "booking.cancelled"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	locker  lock.Locker
	topic   string
	now     func() time.Time
}

type Usecase interface {
	Quote(ctx context.Context, trainID int64, seats int) (response.Quote, error)
	Book(ctx context.Context, account accountEntity.AccountHandle, trainID int64, seats int) (entity.Booking, error)
	Cancel(ctx context.Context, account accountEntity.AccountHandle, bookingID int64) (response.CancellationReceipt, error)
	ListBookings(ctx context.Context, account accountEntity.AccountHandle) ([]entity.Booking, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, locker lock.Locker, topic string) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		locker:  locker,
		topic:   topic,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Quote prices seats on a train against the current availability. Book
// checks again, a quote reserves nothing.
func (u *usecase) Quote(ctx context.Context, trainID int64, seats int) (response.Quote, error) {
	if seats <= 0 {
		return response.Quote{}, errors.ErrInvalidSeatCount
	}

	train, err := u.repo.FindTrainByID(ctx, trainID)
	if err != nil {
		return response.Quote{}, err
	}
	if train.ID == 0 {
		return response.Quote{}, errors.ErrUnknownTrain
	}
	if seats > train.AvailableSeats {
		return response.Quote{}, errors.InsufficientSeats(train.AvailableSeats)
	}

	return response.Quote{
		TrainID:     train.ID,
		TrainName:   train.Name,
		Route:       train.Route,
		Seats:       seats,
		FarePerSeat: train.Fare,
		TotalFare:   int64(seats) * train.Fare,
		Available:   train.AvailableSeats,
	}, nil
}

func (u *usecase) Book(ctx context.Context, account accountEntity.AccountHandle, trainID int64, seats int) (entity.Booking, error) {
	if account.Username == "" {
		return entity.Booking{}, errors.UnauthorizedError("login required")
	}
	if seats <= 0 {
		return entity.Booking{}, errors.ErrInvalidSeatCount
	}

	unlock, err := u.locker.Lock(ctx, lock.AccountKey(account.Username), lock.TrainKey(trainID))
	if err != nil {
		return entity.Booking{}, errors.Wrap(err, "error acquire booking lock")
	}
	defer unlock()

	booking, err := u.repo.ReserveSeats(ctx, entity.Booking{
		Username:  account.Username,
		TrainID:   trainID,
		Seats:     seats,
		CreatedAt: u.now(),
	})
	if err != nil {
		return entity.Booking{}, err
	}

	u.log.Info(ctx, fmt.Sprintf("booking %d confirmed for %s on train %d, %d seats", booking.ID, booking.Username, booking.TrainID, booking.Seats))
	u.publishEvent(ctx, request.BookingEvent{
		Event:     EventBookingConfirmed,
		Username:  booking.Username,
		BookingID: booking.ID,
		TrainID:   booking.TrainID,
		Seats:     booking.Seats,
		Amount:    booking.TotalFare,
	})

	return booking, nil
}

// Cancel rejects unknown and already cancelled bookings alike.
func (u *usecase) Cancel(ctx context.Context, account accountEntity.AccountHandle, bookingID int64) (response.CancellationReceipt, error) {
	if account.Username == "" {
		return response.CancellationReceipt{}, errors.UnauthorizedError("login required")
	}

	bookings, err := u.repo.FindBookingsByUsername(ctx, account.Username)
	if err != nil {
		return response.CancellationReceipt{}, err
	}
	var target *entity.Booking
	for i := range bookings {
		if bookings[i].ID == bookingID && bookings[i].Active() {
			target = &bookings[i]
			break
		}
	}
	if target == nil {
		return response.CancellationReceipt{}, errors.ErrBookingNotFound
	}

	unlock, err := u.locker.Lock(ctx, lock.AccountKey(account.Username), lock.TrainKey(target.TrainID))
	if err != nil {
		return response.CancellationReceipt{}, errors.Wrap(err, "error acquire booking lock")
	}
	defer unlock()

	cancelled, err := u.repo.CancelBooking(ctx, account.Username, bookingID, u.now())
	if err != nil {
		return response.CancellationReceipt{}, err
	}

	refund, fee := entity.Refund(cancelled.TotalFare)
	receipt := response.CancellationReceipt{
		BookingID:       cancelled.ID,
		TrainName:       cancelled.TrainName,
		OriginalAmount:  cancelled.TotalFare,
		CancellationFee: fee,
		RefundAmount:    refund,
		Status:          cancelled.Status,
	}

	u.log.Info(ctx, fmt.Sprintf("booking %d cancelled for %s on train %d, refund %d", cancelled.ID, cancelled.Username, cancelled.TrainID, refund))
	u.publishEvent(ctx, request.BookingEvent{
		Event:     EventBookingCancelled,
		Username:  cancelled.Username,
		BookingID: cancelled.ID,
		TrainID:   cancelled.TrainID,
		Seats:     cancelled.Seats,
		Amount:    cancelled.TotalFare,
		Refund:    refund,
	})

	return receipt, nil
}

func (u *usecase) ListBookings(ctx context.Context, account accountEntity.AccountHandle) ([]entity.Booking, error) {
	if account.Username == "" {
		return nil, errors.UnauthorizedError("login required")
	}
	return u.repo.FindBookingsByUsername(ctx, account.Username)
}

// publishEvent never fails the caller: the booking is already committed.
func (u *usecase) publishEvent(ctx context.Context, event request.BookingEvent) {
	if u.publish == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		u.log.Error(ctx, "error marshal booking event", err)
		return
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event", event.Event)
	if err := u.publish.Publish(u.topic, msg); err != nil {
		u.log.Error(ctx, "error publish booking event", err)
	}
}
