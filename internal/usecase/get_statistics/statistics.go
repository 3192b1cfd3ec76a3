package get_statistics

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/pkg/percent"
)

// windows окна статистики по календарным датам в часовом поясе сайта
// Последнее окно [lastStart, today], предыдущее [prevStart, lastStart)
type windows struct {
	prevStart time.Time
	lastStart time.Time
	today     time.Time
}

// newWindows строит окна от календарной даты asOf, время суток не учитывается
func newWindows(asOf time.Time, days int) windows {
	today := startOfDay(asOf)
	return windows{
		prevStart: today.AddDate(0, 0, -2*days),
		lastStart: today.AddDate(0, 0, -days),
		today:     today,
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// bookingDay полночь даты бронирования в часовом поясе сайта
func bookingDay(b *domain.Booking, loc *time.Location) time.Time {
	y, m, d := b.BookingDate.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// partition делит бронирования на последнее окно и количество в предыдущем
// Удаленные бронирования и даты вне окон отбрасываются
func (w windows) partition(bookings []*domain.Booking) ([]*domain.Booking, int) {
	loc := w.today.Location()
	last := make([]*domain.Booking, 0, len(bookings))
	previous := 0

	for _, b := range bookings {
		if b.IsDeleted() {
			continue
		}
		day := bookingDay(b, loc)
		switch {
		case !day.Before(w.lastStart) && !day.After(w.today):
			last = append(last, b)
		case !day.Before(w.prevStart) && day.Before(w.lastStart):
			previous++
		}
	}

	return last, previous
}

// buildReport считает статистику по бронированиям последнего окна
func buildReport(last []*domain.Booking, previousCount int) domain.StatisticsReport {
	total := len(last)
	report := domain.StatisticsReport{
		TotalBookings: domain.TotalBookings{
			Count:      total,
			Percentage: percent.Change(total, previousCount),
		},
		ReturnClients: returnClients(last),
	}

	if hour, count, ok := mostFrequent(last,
		func(b *domain.Booking) int { return b.StartTime.Hour() },
		func(a, b int) bool { return a < b },
	); ok {
		report.MostSellingTime = domain.MostSellingTime{Hour: &hour, Count: count, Percentage: percent.Share(count, total)}
	}

	if day, count, ok := mostFrequent(last,
		func(b *domain.Booking) time.Weekday { return b.BookingDate.Weekday() },
		func(a, b time.Weekday) bool { return isoWeekday(a) < isoWeekday(b) },
	); ok {
		name := day.String()
		report.MostSellingDay = domain.MostSellingDay{Day: &name, Count: count, Percentage: percent.Share(count, total)}
	}

	if duration, count, ok := mostFrequent(last,
		func(b *domain.Booking) int { return b.DurationMinutes },
		func(a, b int) bool { return a < b },
	); ok {
		report.MostSellingDuration = domain.MostSellingDuration{DurationMinutes: &duration, Count: count, Percentage: percent.Share(count, total)}
	}

	if service, count, ok := mostFrequent(last,
		func(b *domain.Booking) string { return b.ServiceName },
		func(a, b string) bool { return a < b },
	); ok {
		report.MostSellingService = domain.MostSellingService{ServiceName: &service, Count: count, Percentage: percent.Share(count, total)}
	}

	return report
}

// mostFrequent возвращает самый частый ключ и его количество
// При равенстве выигрывает меньший по less ключ. ok=false для пустого списка
func mostFrequent[K comparable](bookings []*domain.Booking, key func(*domain.Booking) K, less func(a, b K) bool) (K, int, bool) {
	var best K
	if len(bookings) == 0 {
		return best, 0, false
	}

	counts := make(map[K]int)
	for _, b := range bookings {
		counts[key(b)]++
	}

	bestCount := 0
	for k, c := range counts {
		if c > bestCount || (c == bestCount && less(k, best)) {
			best, bestCount = k, c
		}
	}
	return best, bestCount, true
}

// isoWeekday номер дня недели, понедельник = 1, воскресенье = 7
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

type clientKey struct {
	contact string
	name    string
}

// returnClients клиенты с двумя и более бронированиями
// Пустой и отсутствующий контакт считаются одним значением
func returnClients(bookings []*domain.Booking) domain.ReturnClients {
	counts := make(map[clientKey]int)
	for _, b := range bookings {
		counts[clientKey{contact: b.Contact(), name: b.CustomerName}]++
	}

	details := make([]domain.ReturnClient, 0)
	for k, c := range counts {
		if c < 2 {
			continue
		}
		details = append(details, domain.ReturnClient{
			CustomerContact: k.contact,
			CustomerName:    k.name,
			BookingsCount:   c,
		})
	}

	sort.Slice(details, func(i, j int) bool {
		if details[i].BookingsCount != details[j].BookingsCount {
			return details[i].BookingsCount > details[j].BookingsCount
		}
		if details[i].CustomerName != details[j].CustomerName {
			return details[i].CustomerName < details[j].CustomerName
		}
		return details[i].CustomerContact < details[j].CustomerContact
	})

	return domain.ReturnClients{Count: len(details), Details: details}
}
