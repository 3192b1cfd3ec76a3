package get_statistics

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// UseCase use case расчета статистики бронирований сайта
type UseCase struct {
	bookingRepo     BookingRepository
	windowDays      int
	defaultLocation *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	windowDays int,
	defaultLocation *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		windowDays:      windowDays,
		defaultLocation: defaultLocation,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute выполняет расчет статистики
// Бронирования обоих окон читаются одним запросом и делятся в памяти
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.WebsiteID <= 0 {
		uc.logger.Warn("GetStatistics: invalid website id=%d", req.WebsiteID)
		return nil, fmt.Errorf("%w: websiteID must be positive", ErrInvalidInput)
	}

	website := domain.Website{Timezone: req.Timezone}
	loc := website.Location(uc.defaultLocation)

	asOf := uc.timeProvider.Now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}
	asOf = asOf.In(loc)

	w := newWindows(asOf, uc.windowDays)

	uc.logger.Info("GetStatistics: website=%d, asOf=%s, window=%d days",
		req.WebsiteID, asOf.Format(time.RFC3339), uc.windowDays)

	startDate := dateOnly(w.prevStart)
	endDate := dateOnly(w.today)

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		WebsiteID: req.WebsiteID,
		StartDate: &startDate,
		EndDate:   &endDate,
	})
	if err != nil {
		uc.logger.Error("GetStatistics: failed to get bookings for website=%d: %v", req.WebsiteID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	last, previous := w.partition(bookings)
	report := buildReport(last, previous)

	uc.logger.Info("GetStatistics: website=%d, last=%d, previous=%d, returnClients=%d",
		req.WebsiteID, len(last), previous, report.ReturnClients.Count)

	return &Response{
		AsOf:        asOf,
		WindowStart: w.lastStart,
		Report:      report,
	}, nil
}

// dateOnly календарная дата в UTC для параметра запроса
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
