package register_website

import (
	"context"

	"github.com/m04kA/SMC-SiteBookings/internal/service/websites/models"
)

type WebsiteService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.WebsiteResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
