package create_booking

import (
	"fmt"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// validateRequest проверяет запрос и собирает бронирование
func validateRequest(req *Request, allowedDurations []int) (*domain.Booking, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.WebsiteID <= 0 {
		return nil, fmt.Errorf("%w: website_id must be positive", ErrInvalidInput)
	}

	booking, err := req.Input.ToBooking(req.WebsiteID, allowedDurations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return booking, nil
}

// findOverlap возвращает первое бронирование, пересекающееся с новым
func findOverlap(existing []*domain.Booking, candidate *domain.Booking) *domain.Booking {
	for _, b := range existing {
		if b.IsDeleted() {
			continue
		}
		if b.Overlaps(candidate.StartTime, candidate.EndTime) {
			return b
		}
	}
	return nil
}
