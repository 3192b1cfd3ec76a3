package update_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SiteBookings/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SiteBookings/pkg/ptr"
)

const operation = "update"

// UseCase use case для обновления бронирования
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

// Execute выполняет use case обновления бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	booking, err := validateRequest(req, uc.allowedDurations)
	if err != nil {
		uc.logger.Warn("UpdateBooking: validation failed: %v", err)
		uc.metrics.IncBookingOperation(operation, "invalid")
		return nil, err
	}

	uc.logger.Info("UpdateBooking: website=%d, id=%d, date=%s, time=%s-%s",
		req.WebsiteID, req.BookingID, booking.BookingDate.Format(domain.DateFormat), booking.StartTime, booking.EndTime)

	var updated *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Текущее состояние, строка блокируется до конца транзакции
		current, err := uc.bookingRepo.GetByID(txCtx, req.WebsiteID, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("UpdateBooking: booking id=%d not found for website=%d", req.BookingID, req.WebsiteID)
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateBooking: booking id=%d has status=%s", current.ID, current.Status)
			return ErrBookingDeleted
		}

		if req.Input.Status == nil || *req.Input.Status == "" {
			booking.Status = current.Status
		}

		// 2. Пересечения с остальными бронированиями новой даты
		date := booking.BookingDate
		existing, err := uc.bookingRepo.GetWithFilter(txCtx, domain.BookingsFilter{
			WebsiteID: req.WebsiteID,
			StartDate: &date,
			EndDate:   &date,
			ExcludeID: ptr.Ptr(req.BookingID),
		})
		if err != nil {
			uc.logger.Error("UpdateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrInternal, err)
		}

		if conflict := findOverlap(existing, booking); conflict != nil {
			uc.logger.Warn("UpdateBooking: %s-%s overlaps booking id=%d (%s-%s)",
				booking.StartTime, booking.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotNotAvailable
		}

		// 3. Сохраняем
		booking.CreatedAt = current.CreatedAt
		updated, err = uc.bookingRepo.Update(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrSlotNotAvailable):
				uc.logger.Warn("UpdateBooking: rejected by overlap constraint: %v", err)
				return ErrSlotNotAvailable
			case errors.Is(err, bookingRepo.ErrBookingNotFound):
				return ErrBookingNotFound
			}
			uc.logger.Error("UpdateBooking: failed to update booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrBookingDeleted):
			uc.metrics.IncBookingOperation(operation, "not_found")
			return nil, err
		case errors.Is(err, ErrSlotNotAvailable):
			uc.metrics.IncBookingOperation(operation, "conflict")
			return nil, err
		case errors.Is(err, ErrInternal):
			uc.metrics.IncBookingOperation(operation, "error")
			return nil, err
		default:
			uc.logger.Error("UpdateBooking: transaction failed: %v", err)
			uc.metrics.IncBookingOperation(operation, "error")
			return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncBookingOperation(operation, "ok")
	uc.publisher.Publish(ctx, domain.EventBookingUpdated, updated)
	uc.logger.Info("UpdateBooking: updated booking id=%d for website=%d", updated.ID, updated.WebsiteID)

	return &Response{Booking: updated}, nil
}
