package domain

import (
	"time"

	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// AvailableSlots free start times for a date and duration
type AvailableSlots struct {
	Date            time.Time
	DurationMinutes int
	Timezone        string
	Slots           []types.TimeString
}

// IsEmpty returns true if there are no free slots
// An empty list does not tell fully booked, day over and past date apart
func (s *AvailableSlots) IsEmpty() bool {
	return len(s.Slots) == 0
}
