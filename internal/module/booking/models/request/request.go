package request

type BookTicket struct {
	TrainID int64 `json:"train_id" validate:"required"`
	Seats   int   `json:"seats"`
}

type CancelBooking struct {
	BookingID int64 `json:"booking_id" validate:"required,gt=0"`
}

// BookingEvent is published on the message stream after a booking changes.
type BookingEvent struct {
	Event     string `json:"event" validate:"required"`
	Username  string `json:"username" validate:"required"`
	BookingID int64  `json:"booking_id" validate:"required"`
	TrainID   int64  `json:"train_id" validate:"required"`
	Seats     int    `json:"seats" validate:"required"`
	Amount    int64  `json:"amount"`
	Refund    int64  `json:"refund"`
}
