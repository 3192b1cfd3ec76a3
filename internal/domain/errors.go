package domain

import "errors"

var (
	ErrRequiredField    = errors.New("required field is missing")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM")
	ErrInvalidDuration  = errors.New("duration is not allowed")
	ErrInvalidTimeRange = errors.New("end_time must be after start_time on the same day")
	ErrInvalidStatus    = errors.New("invalid booking status")
)
