package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// validateRequest валидирует входные данные запроса и парсит дату в часовом поясе сайта
func validateRequest(req *Request, settings *domain.SlotsSettings, loc *time.Location) (time.Time, error) {
	if req.WebsiteID <= 0 {
		return time.Time{}, fmt.Errorf("%w: websiteID must be positive", ErrInvalidInput)
	}

	if !settings.IsAllowedDuration(req.DurationMinutes) {
		return time.Time{}, fmt.Errorf("%w: %d minutes, allowed %v",
			ErrInvalidDuration, req.DurationMinutes, settings.AllowedDurations)
	}

	if req.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q, expected YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	return date, nil
}
