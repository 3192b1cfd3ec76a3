package websites

import (
	"context"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// WebsiteRepository интерфейс репозитория сайтов
type WebsiteRepository interface {
	Create(ctx context.Context, website *domain.Website) (*domain.Website, error)
	GetByToken(ctx context.Context, token string) (*domain.Website, error)
}

// WebsiteCache кэш сайтов по токену доступа (Redis)
type WebsiteCache interface {
	Get(ctx context.Context, token string) (*domain.Website, error)
	Set(ctx context.Context, website *domain.Website) error
}

// TokenGenerator генерирует токены доступа
type TokenGenerator interface {
	Generate() (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
