package get_statistics

import (
	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	getStatistics "github.com/m04kA/SMC-SiteBookings/internal/usecase/get_statistics"
)

// StatisticsResponse HTTP response model
type StatisticsResponse struct {
	TotalBookings       TotalBookings       `json:"totalBookings"`
	MostSellingTime     MostSellingTime     `json:"mostSellingTime"`
	MostSellingDay      MostSellingDay      `json:"mostSellingDay"`
	MostSellingDuration MostSellingDuration `json:"mostSellingDuration"`
	MostSellingService  MostSellingService  `json:"mostSellingService"`
	ReturnClients       ReturnClients       `json:"returnClients"`
}

type TotalBookings struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MostSellingTime struct {
	Hour       *int    `json:"hour"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MostSellingDay struct {
	Day        *string `json:"day"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MostSellingDuration struct {
	DurationMinutes *int    `json:"durationMinutes"`
	Count           int     `json:"count"`
	Percentage      float64 `json:"percentage"`
}

type MostSellingService struct {
	ServiceName *string `json:"serviceName"`
	Count       int     `json:"count"`
	Percentage  float64 `json:"percentage"`
}

type ReturnClients struct {
	Count   int            `json:"count"`
	Details []ReturnClient `json:"details"`
}

type ReturnClient struct {
	CustomerContact string `json:"customerContact"`
	CustomerName    string `json:"customerName"`
	BookingsCount   int    `json:"bookingsCount"`
}

// FromUseCaseResponse конвертирует отчет в HTTP response
func FromUseCaseResponse(resp *getStatistics.Response) *StatisticsResponse {
	return FromReport(resp.Report)
}

func FromReport(r domain.StatisticsReport) *StatisticsResponse {
	details := make([]ReturnClient, len(r.ReturnClients.Details))
	for i, d := range r.ReturnClients.Details {
		details[i] = ReturnClient{
			CustomerContact: d.CustomerContact,
			CustomerName:    d.CustomerName,
			BookingsCount:   d.BookingsCount,
		}
	}

	return &StatisticsResponse{
		TotalBookings: TotalBookings{
			Count:      r.TotalBookings.Count,
			Percentage: r.TotalBookings.Percentage,
		},
		MostSellingTime: MostSellingTime{
			Hour:       r.MostSellingTime.Hour,
			Count:      r.MostSellingTime.Count,
			Percentage: r.MostSellingTime.Percentage,
		},
		MostSellingDay: MostSellingDay{
			Day:        r.MostSellingDay.Day,
			Count:      r.MostSellingDay.Count,
			Percentage: r.MostSellingDay.Percentage,
		},
		MostSellingDuration: MostSellingDuration{
			DurationMinutes: r.MostSellingDuration.DurationMinutes,
			Count:           r.MostSellingDuration.Count,
			Percentage:      r.MostSellingDuration.Percentage,
		},
		MostSellingService: MostSellingService{
			ServiceName: r.MostSellingService.ServiceName,
			Count:       r.MostSellingService.Count,
			Percentage:  r.MostSellingService.Percentage,
		},
		ReturnClients: ReturnClients{
			Count:   r.ReturnClients.Count,
			Details: details,
		},
	}
}
