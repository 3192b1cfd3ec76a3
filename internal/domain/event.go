package domain

import "time"

// Booking event types, used as routing keys
const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventBookingDeleted = "booking.deleted"
)

// BookingEvent is published after a booking change is committed
type BookingEvent struct {
	Type            string    `json:"type"`
	BookingID       int64     `json:"booking_id"`
	WebsiteID       int64     `json:"website_id"`
	ServiceName     string    `json:"service_name"`
	BookingDate     string    `json:"booking_date"`
	StartTime       string    `json:"start_time"`
	EndTime         string    `json:"end_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// NewBookingEvent builds an event snapshot of the booking
func NewBookingEvent(eventType string, b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:            eventType,
		BookingID:       b.ID,
		WebsiteID:       b.WebsiteID,
		ServiceName:     b.ServiceName,
		BookingDate:     b.BookingDate.Format(DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Status:          string(b.Status),
		OccurredAt:      at.UTC(),
	}
}
