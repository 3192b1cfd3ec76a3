package get_available_slots

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// dayWindow параметры расчета слотов на один день, все значения в минутах от полуночи
type dayWindow struct {
	workStart int
	workEnd   int
	duration  int
	isToday   bool
	now       int // текущее время сайта, учитывается только для сегодняшней даты
	lead      int // минимальный запас до начала слота
}

// interval занятый промежуток [start, end)
type interval struct {
	start int
	end   int
}

// openBoundary возвращает время, с которого можно начинать слоты
// Для сегодняшней даты граница поднимается до now+lead и округляется вверх
// на сетку длительности, отсчитанную от начала рабочего дня.
// ok=false означает, что на этот день свободного времени нет
func (w dayWindow) openBoundary() (int, bool) {
	open := w.workStart
	if w.isToday {
		boundary := w.now + w.lead
		if boundary > w.workStart {
			steps := (boundary - w.workStart + w.duration - 1) / w.duration
			open = w.workStart + steps*w.duration
		}
	}
	if open > w.workEnd {
		return 0, false
	}
	return open, true
}

// computeSlots вычисляет свободные слоты вокруг существующих бронирований
//
// Проходит рабочий день слева направо: в каждом промежутке между курсором и
// началом следующего бронирования выдает слоты с шагом duration, пока слот
// целиком помещается в промежуток. После бронирования курсор переходит на
// его конец, поэтому сетка выравнивается заново от конца каждого бронирования.
func computeSlots(w dayWindow, bookings []interval) []int {
	slots := make([]int, 0)

	open, ok := w.openBoundary()
	if !ok {
		return slots
	}

	occupied := clampIntervals(bookings, w.workStart, w.workEnd)

	cursor := open
	emit := func(gapEnd int) {
		for cursor+w.duration <= gapEnd {
			slots = append(slots, cursor)
			cursor += w.duration
		}
	}

	for _, b := range occupied {
		emit(b.start)
		if b.end > cursor {
			cursor = b.end
		}
	}
	emit(w.workEnd)

	if !w.isToday {
		return slots
	}

	// Повторный фильтр по запасу времени
	minStart := w.now + w.lead
	filtered := slots[:0]
	for _, s := range slots {
		if s >= minStart {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// clampIntervals обрезает интервалы по рабочему дню, отбрасывает пустые и сортирует по началу
func clampIntervals(bookings []interval, workStart, workEnd int) []interval {
	result := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		start, end := b.start, b.end
		if start < workStart {
			start = workStart
		}
		if end > workEnd {
			end = workEnd
		}
		if start >= end {
			continue
		}
		result = append(result, interval{start: start, end: end})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].start == result[j].start {
			return result[i].end < result[j].end
		}
		return result[i].start < result[j].start
	})
	return result
}

// toIntervals переводит бронирования в занятые интервалы
func toIntervals(bookings []*domain.Booking) []interval {
	result := make([]interval, 0, len(bookings))
	for _, b := range bookings {
		if b.IsDeleted() {
			continue
		}
		end := b.EndTime.Minutes()
		if b.EndTime.IsZero() {
			end = b.StartTime.Minutes() + b.DurationMinutes
		}
		result = append(result, interval{start: b.StartTime.Minutes(), end: end})
	}
	return result
}

// formatSlots переводит минуты в HH:MM
func formatSlots(slots []int) ([]types.TimeString, error) {
	result := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		ts, err := types.NewTimeStringFromMinutes(s)
		if err != nil {
			return nil, err
		}
		result = append(result, ts)
	}
	return result, nil
}

// minutesOfDay количество минут с полуночи, неполная минута округляется вверх
func minutesOfDay(t time.Time) int {
	m := t.Hour()*60 + t.Minute()
	if t.Second() > 0 || t.Nanosecond() > 0 {
		m++
	}
	return m
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
