package bookings

import (
	"context"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, websiteID, id int64) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter, page domain.Page) ([]*domain.Booking, int, error)
	UpdateStatus(ctx context.Context, websiteID, id int64, status domain.BookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события бронирований после коммита
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, booking *domain.Booking)
}

// Metrics бизнес-метрики операций с бронированиями
type Metrics interface {
	IncBookingOperation(operation, outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
