package handlers

import (
	"errors"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// BookingFieldErrors переводит ошибку проверки бронирования в ошибки по полям
func BookingFieldErrors(err error) map[string]string {
	switch {
	case errors.Is(err, domain.ErrInvalidDuration):
		return map[string]string{"duration_minutes": "недопустимая длительность"}
	case errors.Is(err, domain.ErrInvalidDate):
		return map[string]string{"booking_date": "ожидается формат YYYY-MM-DD"}
	case errors.Is(err, domain.ErrInvalidTime):
		return map[string]string{"start_time": "ожидается формат HH:MM"}
	case errors.Is(err, domain.ErrInvalidTimeRange):
		return map[string]string{"end_time": "должно быть позже start_time в тот же день"}
	case errors.Is(err, domain.ErrInvalidStatus):
		return map[string]string{"status": "допустимые значения: pending confirmed"}
	}
	return map[string]string{"_": err.Error()}
}
