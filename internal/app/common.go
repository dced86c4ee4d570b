package app

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrInvalidProfile  ErrorCode = "INVALID_PROFILE"
	ErrInvalidDuration ErrorCode = "INVALID_DURATION"
	ErrInvalidCalories ErrorCode = "INVALID_CALORIES"
	ErrInvalidMood     ErrorCode = "INVALID_MOOD"
	ErrInvalidActivity ErrorCode = "INVALID_ACTIVITY"
	ErrInvalidPincode  ErrorCode = "INVALID_PINCODE"
	ErrProfileRequired ErrorCode = "PROFILE_REQUIRED"
	ErrQuizComplete    ErrorCode = "QUIZ_COMPLETE"
	ErrInvalidCycle    ErrorCode = "INVALID_CYCLE"
	ErrEmptyMessage    ErrorCode = "EMPTY_MESSAGE"
)

// Error is a user-correctable failure. Hosts show Message as-is.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the first *Error in err's chain.
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}
