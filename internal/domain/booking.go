package domain

import (
	"time"

	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusDeleted   BookingStatus = "deleted" // soft delete marker
)

// IsValid returns true if the status is one of the known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusDeleted:
		return true
	}
	return false
}

// Booking represents a booking made by a registered website
type Booking struct {
	ID              int64
	WebsiteID       int64
	ServiceName     string
	CustomerName    string
	CustomerContact *string
	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	Status          BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsDeleted returns true if the booking was soft deleted
func (b *Booking) IsDeleted() bool {
	return b.Status == StatusDeleted
}

// CanBeUpdated returns true if the booking can be updated
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps returns true if [start, end) intersects the booking interval
// Touching intervals (one ends where the other starts) do not overlap
func (b *Booking) Overlaps(start, end types.TimeString) bool {
	return b.StartTime.IsBefore(end) && b.EndTime.IsAfter(start)
}

// Contact returns customer contact or empty string when it is not set
func (b *Booking) Contact() string {
	if b.CustomerContact == nil {
		return ""
	}
	return *b.CustomerContact
}

// BookingsFilter фильтр для выборки бронирований сайта
type BookingsFilter struct {
	WebsiteID      int64          // Обязательный параметр
	StartDate      *time.Time     // Начало периода включительно (опционально)
	EndDate        *time.Time     // Конец периода включительно (опционально)
	Status         *BookingStatus // Фильтр по статусу (опционально)
	IncludeDeleted bool           // Включать ли удаленные бронирования
	ExcludeID      *int64         // Исключить бронирование (при проверке пересечений на обновлении)
}

// IsSingleDate returns true if the filter targets exactly one calendar day
func (f BookingsFilter) IsSingleDate() bool {
	return f.StartDate != nil && f.EndDate != nil && f.StartDate.Equal(*f.EndDate)
}

// Page параметры постраничной выборки
type Page struct {
	Number  int // начиная с 1
	PerPage int
}

// Offset смещение для SQL запроса
// Номер страницы ограничен MaxPageNumber, поэтому произведение не переполняется
func (p Page) Offset() uint64 {
	if p.Number <= 1 || p.PerPage <= 0 {
		return 0
	}
	number := min(p.Number, MaxPageNumber)
	return uint64(number-1) * uint64(p.PerPage)
}
