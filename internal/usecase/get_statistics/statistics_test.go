package get_statistics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/pkg/percent"
	"github.com/m04kA/SMC-SiteBookings/pkg/ptr"
	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// 2025-03-01 суббота
var asOf = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func booking(date string, start string, duration int, service, name string, contact *string) *domain.Booking {
	d, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		panic(err)
	}
	st := types.TimeString(start)
	end, err := st.AddMinutes(duration)
	if err != nil {
		panic(err)
	}
	return &domain.Booking{
		ServiceName:     service,
		CustomerName:    name,
		CustomerContact: contact,
		BookingDate:     d,
		StartTime:       st,
		EndTime:         end,
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	}
}

func TestWindows_Partition(t *testing.T) {
	w := newWindows(asOf, 30)
	deleted := booking("2025-02-20", "10:00", 60, "Cut", "A", nil)
	deleted.Status = domain.StatusDeleted

	bookings := []*domain.Booking{
		booking("2025-03-01", "10:00", 60, "Cut", "A", nil), // дата asOf, последнее окно
		booking("2025-03-02", "10:00", 60, "Cut", "A", nil), // будущее
		booking("2025-01-30", "10:00", 60, "Cut", "A", nil), // ровно 30 дней назад, последнее окно
		booking("2025-01-31", "10:00", 60, "Cut", "A", nil), // последнее окно
		booking("2024-12-31", "10:00", 60, "Cut", "A", nil), // ровно 60 дней назад, предыдущее окно
		booking("2024-12-30", "10:00", 60, "Cut", "A", nil), // вне окон
		booking("2025-01-01", "10:00", 60, "Cut", "A", nil), // предыдущее окно
		deleted,
	}

	last, previous := w.partition(bookings)

	assert.Len(t, last, 3)
	assert.Equal(t, 2, previous)
}

func TestWindows_PartitionIgnoresTimeOfDay(t *testing.T) {
	bookings := []*domain.Booking{
		booking("2025-01-30", "10:00", 60, "Cut", "A", nil),
		booking("2025-01-29", "10:00", 60, "Cut", "A", nil),
		booking("2025-03-01", "10:00", 60, "Cut", "A", nil),
	}

	tests := []struct {
		name string
		asOf time.Time
	}{
		{name: "midnight", asOf: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "one second after midnight", asOf: time.Date(2025, 3, 1, 0, 0, 1, 0, time.UTC)},
		{name: "noon", asOf: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)},
		{name: "end of day", asOf: time.Date(2025, 3, 1, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last, previous := newWindows(tt.asOf, 30).partition(bookings)

			assert.Len(t, last, 2)
			assert.Equal(t, 1, previous)
		})
	}
}

func TestWindows_UsesTenantLocalDate(t *testing.T) {
	tashkent := time.FixedZone("UTC+5", 5*60*60)

	// 2025-02-28 22:00 UTC это уже 2025-03-01 в Ташкенте
	w := newWindows(time.Date(2025, 2, 28, 22, 0, 0, 0, time.UTC).In(tashkent), 30)

	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, tashkent), w.today)
	assert.Equal(t, time.Date(2025, 1, 30, 0, 0, 0, 0, tashkent), w.lastStart)
	assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, tashkent), w.prevStart)
}

func TestBuildReport_Empty(t *testing.T) {
	report := buildReport(nil, 0)

	assert.Equal(t, domain.TotalBookings{Count: 0, Percentage: 0}, report.TotalBookings)
	assert.Equal(t, domain.MostSellingTime{}, report.MostSellingTime)
	assert.Nil(t, report.MostSellingTime.Hour)
	assert.Nil(t, report.MostSellingDay.Day)
	assert.Nil(t, report.MostSellingDuration.DurationMinutes)
	assert.Nil(t, report.MostSellingService.ServiceName)
	assert.Zero(t, report.MostSellingService.Count)
	assert.Zero(t, report.MostSellingService.Percentage)
	assert.Equal(t, 0, report.ReturnClients.Count)
	assert.NotNil(t, report.ReturnClients.Details)
}

func TestBuildReport_PreviousZero(t *testing.T) {
	last := []*domain.Booking{
		booking("2025-02-24", "10:00", 60, "Cut", "A", nil),
		booking("2025-02-24", "11:00", 60, "Cut", "B", nil),
		booking("2025-02-25", "10:00", 60, "Cut", "C", nil),
		booking("2025-02-25", "12:00", 60, "Cut", "D", nil),
		booking("2025-02-26", "10:00", 60, "Cut", "E", nil),
	}

	report := buildReport(last, 0)

	assert.Equal(t, 5, report.TotalBookings.Count)
	assert.Equal(t, 100.0, report.TotalBookings.Percentage)
}

func TestBuildReport_Categories(t *testing.T) {
	last := []*domain.Booking{
		booking("2025-02-24", "10:00", 60, "Massage", "Ali", ptr.Ptr("+998")), // понедельник
		booking("2025-02-24", "14:30", 30, "Cut", "Ali", ptr.Ptr("+998")),
		booking("2025-02-25", "10:15", 60, "Massage", "Olga", nil), // вторник
		booking("2025-02-26", "14:00", 90, "Cut", "Olga", ptr.Ptr("")),
		booking("2025-02-27", "09:00", 60, "Nails", "Ivan", nil), // четверг
		booking("2025-02-24", "16:00", 45, "Nails", "Ivan", ptr.Ptr("ivan@example.com")),
	}

	report := buildReport(last, 4)

	assert.Equal(t, 6, report.TotalBookings.Count)
	assert.Equal(t, 50.0, report.TotalBookings.Percentage)

	// 10 и 14 встречаются по два раза, выигрывает меньший час
	require.NotNil(t, report.MostSellingTime.Hour)
	assert.Equal(t, 10, *report.MostSellingTime.Hour)
	assert.Equal(t, 2, report.MostSellingTime.Count)
	assert.Equal(t, 33.33, report.MostSellingTime.Percentage)

	require.NotNil(t, report.MostSellingDay.Day)
	assert.Equal(t, "Monday", *report.MostSellingDay.Day)
	assert.Equal(t, 3, report.MostSellingDay.Count)
	assert.Equal(t, 50.0, report.MostSellingDay.Percentage)

	require.NotNil(t, report.MostSellingDuration.DurationMinutes)
	assert.Equal(t, 60, *report.MostSellingDuration.DurationMinutes)
	assert.Equal(t, 3, report.MostSellingDuration.Count)

	// Cut, Massage, Nails по два раза, выигрывает лексикографически меньшее
	require.NotNil(t, report.MostSellingService.ServiceName)
	assert.Equal(t, "Cut", *report.MostSellingService.ServiceName)
	assert.Equal(t, 2, report.MostSellingService.Count)
	assert.Equal(t, 33.33, report.MostSellingService.Percentage)

	// Ali(+998) x2, Olga(nil и "") x2, Ivan с разными контактами не повторный
	assert.Equal(t, 2, report.ReturnClients.Count)
	assert.Equal(t, []domain.ReturnClient{
		{CustomerContact: "+998", CustomerName: "Ali", BookingsCount: 2},
		{CustomerContact: "", CustomerName: "Olga", BookingsCount: 2},
	}, report.ReturnClients.Details)
}

func TestBuildReport_DayTieBreakUsesISOOrder(t *testing.T) {
	last := []*domain.Booking{
		booking("2025-02-23", "10:00", 60, "Cut", "A", nil), // воскресенье
		booking("2025-02-22", "10:00", 60, "Cut", "B", nil), // суббота
	}

	report := buildReport(last, 0)

	require.NotNil(t, report.MostSellingDay.Day)
	assert.Equal(t, "Saturday", *report.MostSellingDay.Day)
}

func TestReturnClients_CountsGroupsNotBookings(t *testing.T) {
	last := []*domain.Booking{
		booking("2025-02-24", "10:00", 60, "Cut", "Ali", nil),
		booking("2025-02-24", "11:00", 60, "Cut", "Ali", nil),
		booking("2025-02-24", "12:00", 60, "Cut", "Ali", nil),
		booking("2025-02-24", "13:00", 60, "Cut", "Bob", nil),
		booking("2025-02-24", "14:00", 60, "Cut", "Bob", nil),
		booking("2025-02-24", "15:00", 60, "Cut", "Eve", nil),
	}

	clients := returnClients(last)

	assert.Equal(t, 2, clients.Count)
	require.Len(t, clients.Details, 2)
	assert.Equal(t, "Ali", clients.Details[0].CustomerName)
	assert.Equal(t, 3, clients.Details[0].BookingsCount)
	assert.Equal(t, "Bob", clients.Details[1].CustomerName)
}

func TestBuildReport_PercentagesAreIdempotent(t *testing.T) {
	last := []*domain.Booking{
		booking("2025-02-24", "10:00", 60, "Cut", "A", nil),
		booking("2025-02-25", "11:00", 30, "Cut", "B", nil),
		booking("2025-02-26", "12:00", 45, "Nails", "C", nil),
		booking("2025-02-27", "13:00", 60, "Nails", "D", nil),
		booking("2025-02-28", "13:00", 60, "Massage", "E", nil),
		booking("2025-02-28", "13:00", 60, "Massage", "F", nil),
		booking("2025-02-28", "15:00", 90, "Massage", "G", nil),
	}

	report := buildReport(last, 3)

	assert.Equal(t, percent.Share(report.MostSellingService.Count, report.TotalBookings.Count), report.MostSellingService.Percentage)
	assert.Equal(t, percent.Share(report.MostSellingTime.Count, report.TotalBookings.Count), report.MostSellingTime.Percentage)
	assert.Equal(t, 42.86, report.MostSellingService.Percentage)
	assert.Equal(t, 133.33, report.TotalBookings.Percentage)
}
