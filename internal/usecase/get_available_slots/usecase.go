package get_available_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// UseCase use case для получения доступных слотов для бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settings     domain.SlotsSettings
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settings domain.SlotsSettings,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		settings:     settings,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

type nopMetrics struct{}

func (nopMetrics) ObserveSlotsReturned(int) {}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: website=%d, date=%s, duration=%d",
		req.WebsiteID, req.Date, req.DurationMinutes)

	website := domain.Website{Timezone: req.Timezone}
	loc := website.Location(uc.settings.DefaultLocation)

	// 1. Валидация входных данных до обращения к репозиторию
	date, err := validateRequest(req, &uc.settings, loc)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now().In(loc)

	response := &Response{
		Date:            date,
		DurationMinutes: req.DurationMinutes,
		Timezone:        loc.String(),
		Slots:           []types.TimeString{},
	}

	// 2. Прошедшие даты не имеют свободных слотов
	if isDateInPast(date, now) {
		uc.logger.Info("GetAvailableSlots: date %s is in the past for website=%d", req.Date, req.WebsiteID)
		uc.metrics.ObserveSlotsReturned(0)
		return response, nil
	}

	// 3. Бронирования на дату, кроме удаленных
	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		WebsiteID: req.WebsiteID,
		StartDate: &date,
		EndDate:   &date,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 4. Считаем слоты
	workStart, workEnd := uc.settings.WorkingMinutes()
	minutes := computeSlots(dayWindow{
		workStart: workStart,
		workEnd:   workEnd,
		duration:  req.DurationMinutes,
		isToday:   isSameDay(date, now),
		now:       minutesOfDay(now),
		lead:      uc.settings.MinLeadMinutes,
	}, toIntervals(bookings))

	slots, err := formatSlots(minutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to format slots: %v", err)
		return nil, fmt.Errorf("%w: failed to format slots: %v", ErrInternal, err)
	}
	response.Slots = slots

	uc.metrics.ObserveSlotsReturned(len(slots))
	uc.logger.Info("GetAvailableSlots: found %d slots for website=%d, date=%s, duration=%d",
		len(slots), req.WebsiteID, req.Date, req.DurationMinutes)

	return response, nil
}
