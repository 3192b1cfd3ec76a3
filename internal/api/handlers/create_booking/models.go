package create_booking

import "github.com/m04kA/SMC-SiteBookings/internal/domain"

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ServiceName     string  `json:"service_name" validate:"required,max=255"`
	CustomerName    string  `json:"customer_name" validate:"required,max=255"`
	CustomerContact *string `json:"customer_contact,omitempty" validate:"omitempty,max=255"`
	BookingDate     string  `json:"booking_date" validate:"required,datetime=2006-01-02"`
	StartTime       string  `json:"start_time" validate:"required"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	Status          *string `json:"status,omitempty" validate:"omitempty,oneof=pending confirmed"`
}

// ToInput конвертирует HTTP запрос в доменный ввод
func (r *CreateBookingRequest) ToInput() domain.BookingInput {
	return domain.BookingInput{
		ServiceName:     r.ServiceName,
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		BookingDate:     r.BookingDate,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		DurationMinutes: r.DurationMinutes,
		Status:          r.Status,
	}
}
