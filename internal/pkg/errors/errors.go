package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	Validation   ErrorType = "VALIDATION_ERROR"
	NotFound     ErrorType = "NOT_FOUND"
	Capacity     ErrorType = "CAPACITY_ERROR"
	Persistence  ErrorType = "PERSISTENCE_ERROR"
	Unauthorized ErrorType = "UNAUTHORIZED"
)

// CustomError is the error value returned by usecases and repositories.
// Reason identifies the specific failure inside a Type, Available is only
// set for CAPACITY_ERROR.
type CustomError struct {
	Type      ErrorType
	Reason    string
	Message   string
	Available int
	cause     error
}

func (e CustomError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e CustomError) Unwrap() error {
	return e.cause
}

// Is matches on Type and Reason so sentinels compare equal to errors that
// carry extra detail.
func (e CustomError) Is(target error) bool {
	t, ok := target.(CustomError)
	if !ok {
		return false
	}
	return e.Type == t.Type && e.Reason == t.Reason
}

var (
	ErrDuplicateUsername  = CustomError{Type: Validation, Reason: "DUPLICATE_USERNAME", Message: "username already exists"}
	ErrPasswordMismatch   = CustomError{Type: Validation, Reason: "PASSWORD_MISMATCH", Message: "passwords do not match"}
	ErrPasswordTooShort   = CustomError{Type: Validation, Reason: "PASSWORD_TOO_SHORT", Message: "password must be at least 6 characters long"}
	ErrInvalidSeatCount   = CustomError{Type: Validation, Reason: "INVALID_SEAT_COUNT", Message: "invalid number of seats"}
	ErrUnknownTrain       = CustomError{Type: NotFound, Reason: "UNKNOWN_TRAIN", Message: "invalid train id"}
	ErrBookingNotFound    = CustomError{Type: NotFound, Reason: "BOOKING_NOT_FOUND", Message: "booking id not found or already cancelled"}
	ErrInsufficientSeats  = CustomError{Type: Capacity, Reason: "INSUFFICIENT_SEATS", Message: "not enough seats available"}
	ErrInvalidCredentials = CustomError{Type: Unauthorized, Reason: "INVALID_CREDENTIALS", Message: "invalid username or password"}
)

func BadRequest(msg string) error {
	return CustomError{Type: Validation, Reason: "BAD_REQUEST", Message: msg}
}

func NotFoundError(msg string) error {
	return CustomError{Type: NotFound, Reason: "NOT_FOUND", Message: msg}
}

func UnauthorizedError(msg string) error {
	return CustomError{Type: Unauthorized, Reason: "UNAUTHORIZED", Message: msg}
}

func InternalServerError(msg string) error {
	return CustomError{Type: Persistence, Reason: "INTERNAL", Message: msg}
}

// Wrap reports a storage failure, keeping the driver error text.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	var ce CustomError
	if stderrors.As(err, &ce) {
		return err
	}
	return CustomError{Type: Persistence, Reason: "INTERNAL", Message: msg, cause: err}
}

func InsufficientSeats(available int) error {
	e := ErrInsufficientSeats
	e.Available = available
	e.Message = fmt.Sprintf("not enough seats available, only %d seats available", available)
	return e
}

// TypeOf returns the category of err, Persistence for foreign errors.
func TypeOf(err error) ErrorType {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce.Type
	}
	return Persistence
}

func As(err error) (CustomError, bool) {
	var ce CustomError
	ok := stderrors.As(err, &ce)
	return ce, ok
}

func IsReason(err error, target CustomError) bool {
	return stderrors.Is(err, target)
}

// AvailableSeats extracts the seat count carried by a capacity error.
func AvailableSeats(err error) (int, bool) {
	var ce CustomError
	if stderrors.As(err, &ce) && ce.Type == Capacity {
		return ce.Available, true
	}
	return 0, false
}

func HTTPStatus(err error) int {
	switch TypeOf(err) {
	case Validation:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Capacity:
		return http.StatusConflict
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
