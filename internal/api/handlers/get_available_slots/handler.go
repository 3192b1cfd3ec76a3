package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SiteBookings/internal/api/handlers"
	"github.com/m04kA/SMC-SiteBookings/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-SiteBookings/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "дата обязательна"
	msgMissingDuration = "длительность обязательна"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDuration = "недопустимая длительность"
	msgUnauthorized    = "сайт не аутентифицирован"
)

type Handler struct {
	useCase            GetAvailableSlotsUseCase
	logger             Logger
	invalidDurationMsg string
}

// NewHandler allowedDurations используются только в тексте ошибки, проверку делает use case
func NewHandler(useCase GetAvailableSlotsUseCase, allowedDurations []int, logger Logger) *Handler {
	return &Handler{
		useCase:            useCase,
		logger:             logger,
		invalidDurationMsg: invalidDurationMessage(allowedDurations),
	}
}

func invalidDurationMessage(allowed []int) string {
	if len(allowed) == 0 {
		return msgInvalidDuration
	}
	values := make([]string, 0, len(allowed))
	for _, d := range allowed {
		values = append(values, strconv.Itoa(d))
	}
	return msgInvalidDuration + ", допустимые значения: " + strings.Join(values, ", ")
}

// Handle GET /api/v1/bookings/available-slots
// Query params: date (required, YYYY-MM-DD), duration (required, минуты)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	website, ok := middleware.GetWebsite(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /bookings/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	durationStr := r.URL.Query().Get("duration")
	if durationStr == "" {
		h.logger.Warn("GET /bookings/available-slots - Missing duration")
		handlers.RespondBadRequest(w, msgMissingDuration)
		return
	}

	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		h.logger.Warn("GET /bookings/available-slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, h.invalidDurationMsg)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		WebsiteID:       website.ID,
		Timezone:        website.Timezone,
		Date:            dateStr,
		DurationMinutes: duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /bookings/available-slots - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /bookings/available-slots - Invalid duration: %d", duration)
			handlers.RespondBadRequest(w, h.invalidDurationMsg)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /bookings/available-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /bookings/available-slots - Failed to get slots: website_id=%d, error=%v", website.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/available-slots - Found %d slots: website_id=%d, date=%s, duration=%d",
		len(result.Slots), website.ID, dateStr, duration)
	handlers.RespondSuccess(w, FromUseCaseResponse(result))
}
