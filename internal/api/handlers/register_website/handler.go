package register_website

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SiteBookings/internal/api/handlers"
	"github.com/m04kA/SMC-SiteBookings/internal/service/websites"
	"github.com/m04kA/SMC-SiteBookings/internal/service/websites/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgDuplicate          = "сайт с таким именем или email уже зарегистрирован"
)

type Handler struct {
	service WebsiteService
	logger  Logger
}

func NewHandler(service WebsiteService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/websites/register
// Публичный маршрут, в ответе выдается токен доступа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /websites/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if fieldErrors := handlers.ValidateStruct(req); fieldErrors != nil {
		h.logger.Warn("POST /websites/register - Validation failed: %v", fieldErrors)
		handlers.RespondUnprocessableEntity(w, handlers.MsgValidationFailed, fieldErrors)
		return
	}

	website, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, websites.ErrInvalidInput):
			h.logger.Warn("POST /websites/register - Invalid input: %v", err)
			handlers.RespondUnprocessableEntity(w, handlers.MsgValidationFailed, nil)

		case errors.Is(err, websites.ErrDuplicate):
			h.logger.Warn("POST /websites/register - Duplicate website: name=%s", req.Name)
			handlers.RespondConflict(w, msgDuplicate)

		default:
			h.logger.Error("POST /websites/register - Failed to register website: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /websites/register - Website registered: website_id=%d", website.ID)
	handlers.RespondCreated(w, website)
}
