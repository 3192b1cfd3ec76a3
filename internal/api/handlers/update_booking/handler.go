package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SiteBookings/internal/api/handlers"
	"github.com/m04kA/SMC-SiteBookings/internal/api/middleware"
	"github.com/m04kA/SMC-SiteBookings/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-SiteBookings/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnauthorized       = "сайт не аутентифицирован"
	msgNotFound           = "бронирование не найдено"
	msgDeleted            = "удаленное бронирование нельзя изменить"
	msgSlotNotAvailable   = "выбранное время пересекается с другим бронированием"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	website, ok := middleware.GetWebsite(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	bookingID, err := handlers.PathID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fieldErrors := handlers.ValidateStruct(req); fieldErrors != nil {
		h.logger.Warn("PUT /bookings/{id} - Validation failed: booking_id=%d, errors=%v", bookingID, fieldErrors)
		handlers.RespondUnprocessableEntity(w, handlers.MsgValidationFailed, fieldErrors)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &updateBooking.Request{
		WebsiteID: website.ID,
		BookingID: bookingID,
		Input:     req.ToInput(),
	})
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondUnprocessableEntity(w, handlers.MsgValidationFailed, handlers.BookingFieldErrors(err))

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%d, website_id=%d", bookingID, website.ID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrBookingDeleted):
			h.logger.Warn("PUT /bookings/{id} - Booking is deleted: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgDeleted)

		case errors.Is(err, updateBooking.ErrSlotNotAvailable):
			h.logger.Warn("PUT /bookings/{id} - Slot not available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%d", bookingID)
	handlers.RespondSuccess(w, models.FromDomainBooking(result.Booking))
}
