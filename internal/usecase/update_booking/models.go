package update_booking

import "github.com/m04kA/SMC-SiteBookings/internal/domain"

// Request модель запроса на полное обновление бронирования
// Если статус не передан, сохраняется текущий
type Request struct {
	WebsiteID int64
	BookingID int64
	Input     domain.BookingInput
}

// Response модель ответа с обновленным бронированием
type Response struct {
	Booking *domain.Booking
}
