package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или удалено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings.service: internal error")
)
