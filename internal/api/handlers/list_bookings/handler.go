package list_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SiteBookings/internal/api/handlers"
	"github.com/m04kA/SMC-SiteBookings/internal/api/middleware"
	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/internal/service/bookings"
	"github.com/m04kA/SMC-SiteBookings/internal/service/bookings/models"
)

const (
	msgInvalidPage    = "некорректный номер страницы"
	msgInvalidPerPage = "некорректный размер страницы"
	msgInvalidFilter  = "некорректный фильтр: status = pending|confirmed|deleted, date = YYYY-MM-DD"
	msgUnauthorized   = "сайт не аутентифицирован"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: page, per-page (1..100, по умолчанию 10), status, date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	website, ok := middleware.GetWebsite(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	query := r.URL.Query()
	req := &models.ListRequest{
		WebsiteID: website.ID,
		Page:      1,
		PerPage:   domain.DefaultPerPage,
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPage)
			return
		}
		req.Page = page
	}

	if raw := query.Get("per-page"); raw != "" {
		perPage, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid per-page: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPerPage)
			return
		}
		req.PerPage = perPage
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}
	if raw := query.Get("date"); raw != "" {
		req.Date = &raw
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid filter: website_id=%d, error=%v", website.ID, err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: website_id=%d, error=%v", website.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Listed %d of %d bookings: website_id=%d, page=%d",
		len(result.Bookings), result.TotalCount, website.ID, result.CurrentPage)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(r, result))
}
