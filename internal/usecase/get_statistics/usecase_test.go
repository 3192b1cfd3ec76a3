package get_statistics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/pkg/logger"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	filter   domain.BookingsFilter
	calls    int
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	f.calls++
	f.filter = filter
	return f.bookings, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func TestExecute_UsesClockWhenAsOfMissing(t *testing.T) {
	repo := &fakeBookingRepo{bookings: []*domain.Booking{
		booking("2025-02-27", "10:00", 60, "Cut", "A", nil),
		booking("2025-01-20", "10:00", 60, "Cut", "A", nil),
		booking("2025-01-10", "10:00", 60, "Cut", "A", nil),
	}}
	uc := NewUseCase(repo, 30, time.UTC, logger.NewNop()).WithTimeProvider(fixedTime{now: asOf})

	resp, err := uc.Execute(context.Background(), &Request{WebsiteID: 3})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, int64(3), repo.filter.WebsiteID)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), *repo.filter.StartDate)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *repo.filter.EndDate)
	assert.False(t, repo.filter.IncludeDeleted)

	assert.Equal(t, 1, resp.Report.TotalBookings.Count)
	assert.Equal(t, -50.0, resp.Report.TotalBookings.Percentage)
	assert.Equal(t, time.Date(2025, 1, 30, 0, 0, 0, 0, time.UTC), resp.WindowStart)
}

func TestExecute_ExplicitAsOf(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, 30, time.UTC, logger.NewNop()).WithTimeProvider(fixedTime{now: asOf})
	custom := time.Date(2024, 6, 15, 8, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), &Request{WebsiteID: 3, AsOf: &custom})

	require.NoError(t, err)
	assert.True(t, custom.Equal(resp.AsOf))
	assert.Equal(t, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), *repo.filter.EndDate)
	assert.Nil(t, resp.Report.MostSellingTime.Hour)
}

func TestExecute_InvalidWebsite(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := NewUseCase(repo, 30, time.UTC, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.calls)
}

func TestExecute_RepositoryError(t *testing.T) {
	repo := &fakeBookingRepo{err: errors.New("timeout")}
	uc := NewUseCase(repo, 30, time.UTC, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{WebsiteID: 3})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
