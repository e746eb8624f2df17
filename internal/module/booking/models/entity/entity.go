package entity

import (
	"database/sql"
	"time"
)

const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
)

// Booking ID is a sequence number scoped to the owning account.
type Booking struct {
	ID          int64        `db:"booking_id"`
	Username    string       `db:"username"`
	TrainID     int64        `db:"train_id"`
	TrainName   string       `db:"train_name"`
	Seats       int          `db:"seats"`
	TotalFare   int64        `db:"total_fare"`
	Status      string       `db:"status"`
	CreatedAt   time.Time    `db:"created_at"`
	CancelledAt sql.NullTime `db:"cancelled_at"`
}

func (b Booking) Active() bool {
	return b.Status == StatusConfirmed
}

// Refund keeps 90% of the fare, rounded down, so the fee rounds in the
// operator's favour.
func Refund(totalFare int64) (refund, fee int64) {
	refund = totalFare * 9 / 10
	return refund, totalFare - refund
}
