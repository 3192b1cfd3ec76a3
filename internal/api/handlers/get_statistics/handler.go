package get_statistics

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/api/handlers"
	"github.com/m04kA/SMC-SiteBookings/internal/api/middleware"
	getStatistics "github.com/m04kA/SMC-SiteBookings/internal/usecase/get_statistics"
)

const (
	msgInvalidAsOf  = "некорректный параметр as_of, ожидается RFC3339"
	msgUnauthorized = "сайт не аутентифицирован"
)

type Handler struct {
	useCase GetStatisticsUseCase
	logger  Logger
}

func NewHandler(useCase GetStatisticsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/statistics
// Query params: as_of (optional, RFC3339)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	website, ok := middleware.GetWebsite(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	req := &getStatistics.Request{
		WebsiteID: website.ID,
		Timezone:  website.Timezone,
	}

	if raw := r.URL.Query().Get("as_of"); raw != "" {
		asOf, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /bookings/statistics - Invalid as_of: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAsOf)
			return
		}
		req.AsOf = &asOf
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getStatistics.ErrInvalidInput):
			h.logger.Warn("GET /bookings/statistics - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings/statistics - Failed to compute statistics: website_id=%d, error=%v", website.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/statistics - Statistics computed: website_id=%d, total=%d",
		website.ID, result.Report.TotalBookings.Count)
	handlers.RespondSuccess(w, FromUseCaseResponse(result))
}
