package contract

import "github.com/alexanderramin/aura/internal/app"

type ErrorCode = app.ErrorCode

const (
	ErrInvalidProfile  ErrorCode = app.ErrInvalidProfile
	ErrInvalidDuration ErrorCode = app.ErrInvalidDuration
	ErrInvalidCalories ErrorCode = app.ErrInvalidCalories
	ErrInvalidMood     ErrorCode = app.ErrInvalidMood
	ErrInvalidActivity ErrorCode = app.ErrInvalidActivity
	ErrInvalidPincode  ErrorCode = app.ErrInvalidPincode
	ErrProfileRequired ErrorCode = app.ErrProfileRequired
	ErrQuizComplete    ErrorCode = app.ErrQuizComplete
	ErrInvalidCycle    ErrorCode = app.ErrInvalidCycle
	ErrEmptyMessage    ErrorCode = app.ErrEmptyMessage
)

type Error = app.Error

func NewError(code ErrorCode, format string, args ...any) *Error {
	return app.NewError(code, format, args...)
}

func CodeOf(err error) (ErrorCode, bool) {
	return app.CodeOf(err)
}

const RecentLogLimit = app.RecentLogLimit
