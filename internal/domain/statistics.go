package domain

// StatisticsReport aggregated figures over the trailing window
type StatisticsReport struct {
	TotalBookings       TotalBookings
	MostSellingTime     MostSellingTime
	MostSellingDay      MostSellingDay
	MostSellingDuration MostSellingDuration
	MostSellingService  MostSellingService
	ReturnClients       ReturnClients
}

// TotalBookings count in the last window and change against the previous one
type TotalBookings struct {
	Count      int
	Percentage float64
}

// MostSellingTime hour of day (0-23), nil when the window is empty
type MostSellingTime struct {
	Hour       *int
	Count      int
	Percentage float64
}

// MostSellingDay weekday name, nil when the window is empty
type MostSellingDay struct {
	Day        *string
	Count      int
	Percentage float64
}

type MostSellingDuration struct {
	DurationMinutes *int
	Count           int
	Percentage      float64
}

type MostSellingService struct {
	ServiceName *string
	Count       int
	Percentage  float64
}

// ReturnClients customers with two or more bookings in the window
// Count is the number of customers, not the sum of their bookings
type ReturnClients struct {
	Count   int
	Details []ReturnClient
}

type ReturnClient struct {
	CustomerContact string
	CustomerName    string
	BookingsCount   int
}
