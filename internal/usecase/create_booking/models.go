package create_booking

import "github.com/m04kA/SMC-SiteBookings/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	WebsiteID int64 // сайт, от имени которого создается бронирование
	Input     domain.BookingInput
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
