package update_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено у сайта
	ErrBookingNotFound = errors.New("update_booking: booking not found")

	// ErrBookingDeleted возвращается при попытке изменить удаленное бронирование
	ErrBookingDeleted = errors.New("update_booking: booking is deleted")

	// ErrSlotNotAvailable возвращается, когда новый интервал пересекается с другим бронированием
	ErrSlotNotAvailable = errors.New("update_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_booking: internal error")
)
