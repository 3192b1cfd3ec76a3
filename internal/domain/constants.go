package domain

// Default configuration values
const (
	DefaultWorkStart      = "09:00"
	DefaultWorkEnd        = "17:00"
	DefaultMinLeadMinutes = 120
	DefaultTimezone       = "Asia/Tashkent"
	DefaultPerPage        = 10
	DefaultStatsWindow    = 30 // days
)

// Business validation constants
const (
	MaxNameLength    = 255
	MaxContactLength = 255
	MinPerPage       = 1
	MaxPerPage       = 100
	MaxPageNumber    = 1_000_000 // дальше смещение не растет, страница просто пустая
	AccessTokenLen   = 40
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllowedDurations длительности бронирования в минутах
var AllowedDurations = []int{15, 30, 45, 60, 90, 120}

// ActiveStatuses статусы, которые занимают время в расписании
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
