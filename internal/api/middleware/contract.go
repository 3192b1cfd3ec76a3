package middleware

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// Authenticator находит сайт по токену доступа
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.Website, error)
}

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route string, status int, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
