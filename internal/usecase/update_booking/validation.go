package update_booking

import (
	"fmt"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

func validateRequest(req *Request, allowedDurations []int) (*domain.Booking, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", ErrInvalidInput)
	}
	if req.WebsiteID <= 0 || req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: website_id and booking id must be positive", ErrInvalidInput)
	}

	booking, err := req.Input.ToBooking(req.WebsiteID, allowedDurations)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	booking.ID = req.BookingID
	return booking, nil
}

// findOverlap ищет пересечение среди остальных бронирований дня
func findOverlap(existing []*domain.Booking, candidate *domain.Booking) *domain.Booking {
	for _, b := range existing {
		if b.ID == candidate.ID || b.IsDeleted() {
			continue
		}
		if b.Overlaps(candidate.StartTime, candidate.EndTime) {
			return b
		}
	}
	return nil
}
