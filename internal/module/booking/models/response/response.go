package response

import "railway-reservation/internal/module/booking/models/entity"

type Quote struct {
	TrainID     int64  `json:"train_id"`
	TrainName   string `json:"train_name"`
	Route       string `json:"route"`
	Seats       int    `json:"seats"`
	FarePerSeat int64  `json:"fare_per_seat"`
	TotalFare   int64  `json:"total_fare"`
	Available   int    `json:"available"`
}

type BookedTicket struct {
	BookingID   int64  `json:"booking_id"`
	TrainID     int64  `json:"train_id"`
	TrainName   string `json:"train_name"`
	Seats       int    `json:"seats"`
	TotalFare   int64  `json:"total_fare"`
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
}

type CancellationReceipt struct {
	BookingID       int64  `json:"booking_id"`
	TrainName       string `json:"train_name"`
	OriginalAmount  int64  `json:"original_amount"`
	CancellationFee int64  `json:"cancellation_fee"`
	RefundAmount    int64  `json:"refund_amount"`
	Status          string `json:"status"`
}

// DateLayout renders booking timestamps as day-month-year hour:minute.
const DateLayout = "02-01-2006 15:04"

func FromBooking(b entity.Booking) BookedTicket {
	return BookedTicket{
		BookingID:   b.ID,
		TrainID:     b.TrainID,
		TrainName:   b.TrainName,
		Seats:       b.Seats,
		TotalFare:   b.TotalFare,
		BookingDate: b.CreatedAt.Format(DateLayout),
		Status:      b.Status,
	}
}
