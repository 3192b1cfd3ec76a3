package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// BookingInput данные бронирования от клиента до проверки
type BookingInput struct {
	ServiceName     string
	CustomerName    string
	CustomerContact *string
	BookingDate     string  // YYYY-MM-DD
	StartTime       string  // HH:MM
	EndTime         *string // HH:MM, если не задано - start_time + duration
	DurationMinutes int
	Status          *string // pending или confirmed, по умолчанию pending
}

// ToBooking проверяет ввод и собирает бронирование сайта
func (in BookingInput) ToBooking(websiteID int64, allowedDurations []int) (*Booking, error) {
	if err := checkText("service_name", in.ServiceName, true); err != nil {
		return nil, err
	}
	if err := checkText("customer_name", in.CustomerName, true); err != nil {
		return nil, err
	}
	if in.CustomerContact != nil {
		if err := checkText("customer_contact", *in.CustomerContact, false); err != nil {
			return nil, err
		}
	}

	if !containsInt(allowedDurations, in.DurationMinutes) {
		return nil, fmt.Errorf("%w: duration_minutes=%d, allowed %v", ErrInvalidDuration, in.DurationMinutes, allowedDurations)
	}

	date, err := time.Parse(DateFormat, in.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("%w: booking_date=%q", ErrInvalidDate, in.BookingDate)
	}

	start, err := types.NewTimeStringFromString(in.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: start_time=%q", ErrInvalidTime, in.StartTime)
	}

	var end types.TimeString
	if in.EndTime != nil && *in.EndTime != "" {
		end, err = types.NewTimeStringFromString(*in.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: end_time=%q", ErrInvalidTime, *in.EndTime)
		}
	} else {
		end, err = start.AddMinutes(in.DurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("%w: start_time=%s, duration_minutes=%d", ErrInvalidTimeRange, start, in.DurationMinutes)
		}
	}
	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, start, end)
	}

	status := StatusPending
	if in.Status != nil && *in.Status != "" {
		status = BookingStatus(*in.Status)
		if status != StatusPending && status != StatusConfirmed {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *in.Status)
		}
	}

	return &Booking{
		WebsiteID:       websiteID,
		ServiceName:     in.ServiceName,
		CustomerName:    in.CustomerName,
		CustomerContact: in.CustomerContact,
		BookingDate:     date,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: in.DurationMinutes,
		Status:          status,
	}, nil
}

func checkText(field, value string, required bool) error {
	if required && value == "" {
		return fmt.Errorf("%w: %s", ErrRequiredField, field)
	}
	if len([]rune(value)) > MaxNameLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrFieldTooLong, field, MaxNameLength)
	}
	return nil
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
