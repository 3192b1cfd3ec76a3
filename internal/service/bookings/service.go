package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SiteBookings/internal/infra/storage/booking"
	"github.com/m04kA/SMC-SiteBookings/internal/service/bookings/models"
)

// Service сервис для чтения и удаления бронирований сайта
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	publisher   EventPublisher
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	metrics Metrics,
	logger Logger,
) *Service {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		publisher:   publisher,
		metrics:     metrics,
		logger:      logger,
	}
}

type nopMetrics struct{}

func (nopMetrics) IncBookingOperation(string, string) {}

// GetByID получает бронирование сайта по ID
// Удаленные бронирования и бронирования других сайтов не отдаются
func (s *Service) GetByID(ctx context.Context, websiteID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for website=%d", id, websiteID)

	booking, err := s.bookingRepo.GetByID(ctx, websiteID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found for website=%d", id, websiteID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.IsDeleted() {
		s.logger.Warn("GetByID: booking id=%d is deleted", id)
		return nil, ErrBookingNotFound
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает страницу бронирований сайта, новые первыми
// Удаленные бронирования видны только при явном status=deleted
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.BookingListResponse, error) {
	page := normalizePage(req.Page, req.PerPage)

	filter := domain.BookingsFilter{WebsiteID: req.WebsiteID}

	if req.Status != nil && *req.Status != "" {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s for website=%d", *req.Status, req.WebsiteID)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		filter.Status = &status
	}

	if req.Date != nil && *req.Date != "" {
		date, err := time.Parse(domain.DateFormat, *req.Date)
		if err != nil {
			s.logger.Warn("List: invalid date=%s for website=%d", *req.Date, req.WebsiteID)
			return nil, fmt.Errorf("%w: invalid date %q", ErrInvalidInput, *req.Date)
		}
		filter.StartDate = &date
		filter.EndDate = &date
	}

	s.logger.Info("List: website=%d, page=%d, per_page=%d", req.WebsiteID, page.Number, page.PerPage)

	bookings, total, err := s.bookingRepo.List(ctx, filter, page)
	if err != nil {
		s.logger.Error("List: repository error for website=%d: %v", req.WebsiteID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return &models.BookingListResponse{
		Bookings:    models.FromDomainBookings(bookings),
		TotalCount:  total,
		PageCount:   pageCount(total, page.PerPage),
		CurrentPage: page.Number,
		PerPage:     page.PerPage,
	}, nil
}

// Delete мягко удаляет бронирование (status = deleted)
func (s *Service) Delete(ctx context.Context, websiteID, id int64) error {
	s.logger.Info("Delete: deleting booking id=%d for website=%d", id, websiteID)

	var deleted *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, websiteID, id)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - get booking: %v", ErrInternal, err)
		}
		if booking.IsDeleted() {
			return ErrBookingNotFound
		}

		if err := s.bookingRepo.UpdateStatus(txCtx, websiteID, id, domain.StatusDeleted); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Delete - update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusDeleted
		deleted = booking
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%d not found for website=%d", id, websiteID)
			s.metrics.IncBookingOperation("delete", "not_found")
			return err
		}
		s.logger.Error("Delete: failed to delete booking id=%d: %v", id, err)
		s.metrics.IncBookingOperation("delete", "error")
		if errors.Is(err, ErrInternal) {
			return err
		}
		return fmt.Errorf("%w: Delete - transaction failed: %v", ErrInternal, err)
	}

	s.metrics.IncBookingOperation("delete", "ok")
	s.publisher.Publish(ctx, domain.EventBookingDeleted, deleted)
	s.logger.Info("Delete: booking id=%d marked as deleted", id)
	return nil
}

func normalizePage(number, perPage int) domain.Page {
	if number < 1 {
		number = 1
	}
	if perPage < domain.MinPerPage {
		perPage = domain.MinPerPage
	}
	if perPage > domain.MaxPerPage {
		perPage = domain.MaxPerPage
	}
	return domain.Page{Number: number, PerPage: perPage}
}

func pageCount(total, perPage int) int {
	if total == 0 {
		return 0
	}
	return (total + perPage - 1) / perPage
}
