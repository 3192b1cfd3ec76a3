package domain

import (
	"time"

	"github.com/m04kA/SMC-SiteBookings/pkg/types"
)

// SlotsSettings booking rules shared by the slot engine and booking writes
type SlotsSettings struct {
	WorkStart        types.TimeString
	WorkEnd          types.TimeString
	MinLeadMinutes   int
	AllowedDurations []int
	DefaultLocation  *time.Location
}

// IsAllowedDuration returns true if minutes is one of the allowed durations
func (s *SlotsSettings) IsAllowedDuration(minutes int) bool {
	for _, d := range s.AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// WorkingMinutes returns working hours as minutes since midnight
func (s *SlotsSettings) WorkingMinutes() (int, int) {
	return s.WorkStart.Minutes(), s.WorkEnd.Minutes()
}
