package booking

import (
	"context"
	"math"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/pkg/dbmetrics"
	"github.com/m04kA/SMC-SiteBookings/pkg/ptr"
)

var testDate = time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)

func newMockRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WithArgs(int64(7), "Haircut", "Ali", nil, testDate, "10:00", "11:00", 60, "pending").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(15), now, now))

	created, err := repo.Create(context.Background(), &domain.Booking{
		WebsiteID:       7,
		ServiceName:     "Haircut",
		CustomerName:    "Ali",
		BookingDate:     testDate,
		StartTime:       "10:00",
		EndTime:         "11:00",
		DurationMinutes: 60,
		Status:          domain.StatusPending,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(15), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Overlap(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: pgExclusionViolation})

	_, err := repo.Create(context.Background(), &domain.Booking{WebsiteID: 7, Status: domain.StatusPending})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, website_id, service_name")).
		WithArgs(int64(3), int64(7)).
		WillReturnRows(bookingRows().AddRow(
			int64(3), int64(7), "Massage", "Olga", "+998901234567",
			testDate, "09:00:00", "10:30:00", 90, "confirmed", now, now,
		))

	b, err := repo.GetByID(context.Background(), 7, 3)

	require.NoError(t, err)
	assert.Equal(t, "Massage", b.ServiceName)
	assert.Equal(t, ptr.Ptr("+998901234567"), b.CustomerContact)
	assert.Equal(t, "09:00", b.StartTime.String())
	assert.Equal(t, "10:30", b.EndTime.String())
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1 AND website_id = $2")).
		WithArgs(int64(3), int64(8)).
		WillReturnRows(bookingRows())

	_, err := repo.GetByID(context.Background(), 8, 3)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetWithFilter_LocksSingleDateInTx(t *testing.T) {
	repo, wrapped, mock := newMockRepo(t)
	ctx := context.Background()

	mock.ExpectBegin()
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)
	txCtx := dbmetrics.WithTx(ctx, tx)

	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE website_id = $1 AND booking_date >= $2 AND booking_date <= $3 AND status <> $4 ORDER BY start_time ASC FOR UPDATE")).
		WithArgs(int64(7), testDate, testDate, "deleted").
		WillReturnRows(bookingRows().AddRow(
			int64(1), int64(7), "Haircut", "Ali", nil,
			testDate, "11:00:00", "12:00:00", 60, "pending", time.Now(), time.Now(),
		))

	bookings, err := repo.GetWithFilter(txCtx, domain.BookingsFilter{
		WebsiteID: 7,
		StartDate: &testDate,
		EndDate:   &testDate,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Nil(t, bookings[0].CustomerContact)
	assert.Equal(t, 660, bookings[0].StartTime.Minutes())

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetWithFilter_RangeWithoutLock(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	end := testDate.AddDate(0, 0, 30)

	mock.ExpectQuery(regexp.QuoteMeta(
		"status <> $4 AND id <> $5 ORDER BY booking_date ASC, start_time ASC")).
		WithArgs(int64(7), testDate, end, "deleted", int64(9)).
		WillReturnRows(bookingRows())

	bookings, err := repo.GetWithFilter(context.Background(), domain.BookingsFilter{
		WebsiteID: 7,
		StartDate: &testDate,
		EndDate:   &end,
		ExcludeID: ptr.Ptr(int64(9)),
	})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE website_id = $1 AND status <> $2")).
		WithArgs(int64(7), "deleted").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC LIMIT 5 OFFSET 5")).
		WithArgs(int64(7), "deleted").
		WillReturnRows(bookingRows().AddRow(
			int64(7), int64(7), "Haircut", "Ali", nil,
			testDate, "11:00:00", "12:00:00", 60, "pending", time.Now(), time.Now(),
		))

	bookings, total, err := repo.List(context.Background(), domain.BookingsFilter{WebsiteID: 7}, domain.Page{Number: 2, PerPage: 5})

	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, bookings, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_HugePage(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY id DESC LIMIT 100 OFFSET 99999900")).
		WithArgs(int64(7), "deleted").
		WillReturnRows(bookingRows())

	bookings, total, err := repo.List(context.Background(), domain.BookingsFilter{WebsiteID: 7},
		domain.Page{Number: math.MaxInt, PerPage: 100})

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_Empty(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	bookings, total, err := repo.List(context.Background(), domain.BookingsFilter{WebsiteID: 7}, domain.Page{Number: 1, PerPage: 10})

	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = $2 AND website_id = $3")).
		WithArgs("deleted", int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs("deleted", int64(4), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.UpdateStatus(context.Background(), 7, 3, domain.StatusDeleted))
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 7, 4, domain.StatusDeleted), ErrBookingNotFound)
	assert.ErrorIs(t, repo.UpdateStatus(context.Background(), 7, 4, "archived"), ErrInvalidStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE bookings SET service_name = $1")).
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	_, err := repo.Update(context.Background(), &domain.Booking{ID: 3, WebsiteID: 7, Status: domain.StatusPending})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}
