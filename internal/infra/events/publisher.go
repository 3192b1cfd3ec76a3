package events

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

const publishTimeout = 3 * time.Second

// MessagePublisher транспорт для публикации сообщений (pkg/mq)
type MessagePublisher interface {
	PublishJSON(ctx context.Context, routingKey string, v any) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// BookingPublisher публикует события изменений бронирований
// Ошибки публикации только логируются, запрос клиента не падает
type BookingPublisher struct {
	transport MessagePublisher
	logger    Logger
}

// NewBookingPublisher создает публикатор событий
func NewBookingPublisher(transport MessagePublisher, logger Logger) *BookingPublisher {
	return &BookingPublisher{transport: transport, logger: logger}
}

// Publish отправляет событие eventType по бронированию
func (p *BookingPublisher) Publish(ctx context.Context, eventType string, booking *domain.Booking) {
	if p == nil || p.transport == nil || booking == nil {
		return
	}

	// запрос клиента может быть уже завершен, публикуем с собственным таймаутом
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := domain.NewBookingEvent(eventType, booking, time.Now())
	if err := p.transport.PublishJSON(pubCtx, eventType, event); err != nil {
		p.logger.Error("BookingPublisher: failed to publish %s for booking id=%d: %v", eventType, booking.ID, err)
		return
	}
	p.logger.Info("BookingPublisher: published %s for booking id=%d", eventType, booking.ID)
}
