package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SiteBookings/internal/api/handlers"
	"github.com/m04kA/SMC-SiteBookings/internal/api/middleware"
	"github.com/m04kA/SMC-SiteBookings/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-SiteBookings/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "сайт не аутентифицирован"
	msgSlotNotAvailable   = "выбранное время пересекается с другим бронированием"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	website, ok := middleware.GetWebsite(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fieldErrors := handlers.ValidateStruct(req); fieldErrors != nil {
		h.logger.Warn("POST /bookings - Validation failed: website_id=%d, errors=%v", website.ID, fieldErrors)
		handlers.RespondUnprocessableEntity(w, handlers.MsgValidationFailed, fieldErrors)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createBooking.Request{
		WebsiteID: website.ID,
		Input:     req.ToInput(),
	})
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: website_id=%d, error=%v", website.ID, err)
			handlers.RespondUnprocessableEntity(w, handlers.MsgValidationFailed, handlers.BookingFieldErrors(err))

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: website_id=%d, date=%s, start=%s",
				website.ID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: website_id=%d, error=%v", website.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, website_id=%d",
		result.Booking.ID, website.ID)
	handlers.RespondCreated(w, models.FromDomainBooking(result.Booking))
}
