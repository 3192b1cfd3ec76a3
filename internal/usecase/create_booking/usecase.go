package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SiteBookings/internal/infra/storage/booking"
)

const operation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	txManager        TransactionManager
	publisher        EventPublisher
	metrics          Metrics
	allowedDurations []int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	allowedDurations []int,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		txManager:        txManager,
		publisher:        publisher,
		metrics:          metrics,
		allowedDurations: allowedDurations,
		logger:           logger,
	}
}

type nopMetrics struct{}

func (nopMetrics) IncBookingOperation(string, string) {}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	booking, err := validateRequest(req, uc.allowedDurations)
	if err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.IncBookingOperation(operation, "invalid")
		return nil, err
	}

	uc.logger.Info("CreateBooking: website=%d, date=%s, time=%s-%s",
		booking.WebsiteID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime, booking.EndTime)

	var created *domain.Booking

	// 2. Блокируем бронирования дня, проверяем пересечения и создаем
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		date := booking.BookingDate
		existing, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			WebsiteID: booking.WebsiteID,
			StartDate: &date,
			EndDate:   &date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if conflict := findOverlap(existing, booking); conflict != nil {
			uc.logger.Warn("CreateBooking: %s-%s overlaps booking id=%d (%s-%s)",
				booking.StartTime, booking.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotNotAvailable
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("CreateBooking: rejected by overlap constraint: %v", err)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrSlotNotAvailable):
			uc.metrics.IncBookingOperation(operation, "conflict")
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.metrics.IncBookingOperation(operation, "error")
			return nil, err
		default:
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			uc.metrics.IncBookingOperation(operation, "error")
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncBookingOperation(operation, "ok")
	uc.publisher.Publish(ctx, domain.EventBookingCreated, created)
	uc.logger.Info("CreateBooking: created booking id=%d for website=%d", created.ID, created.WebsiteID)

	return &Response{Booking: created}, nil
}
