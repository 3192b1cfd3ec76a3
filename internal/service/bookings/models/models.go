package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// ListRequest запрос на постраничный список бронирований сайта
type ListRequest struct {
	WebsiteID int64
	Page      int     // начиная с 1
	PerPage   int     // приводится к [1, 100]
	Status    *string // pending, confirmed или deleted
	Date      *string // YYYY-MM-DD
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              int64     `json:"id"`
	WebsiteID       int64     `json:"website_id"`
	ServiceName     string    `json:"service_name"`
	CustomerName    string    `json:"customer_name"`
	CustomerContact *string   `json:"customer_contact"`
	BookingDate     string    `json:"booking_date"` // "2025-10-15"
	StartTime       string    `json:"start_time"`   // "10:00"
	EndTime         string    `json:"end_time"`     // "11:00"
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// BookingListResponse страница бронирований
type BookingListResponse struct {
	Bookings    []BookingResponse
	TotalCount  int
	PageCount   int
	CurrentPage int
	PerPage     int
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:              b.ID,
		WebsiteID:       b.WebsiteID,
		ServiceName:     b.ServiceName,
		CustomerName:    b.CustomerName,
		CustomerContact: b.CustomerContact,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookings конвертирует список domain моделей в DTO
func FromDomainBookings(bookings []*domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		if resp := FromDomainBooking(booking); resp != nil {
			result = append(result, *resp)
		}
	}
	return result
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
