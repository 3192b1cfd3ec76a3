package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SiteBookings/internal/api/handlers"
	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/internal/service/websites"
)

type contextKey string

const websiteKey contextKey = "website"

const (
	msgMissingToken = "требуется заголовок Authorization: Bearer <token>"
	msgInvalidToken = "недействительный токен доступа"
)

// Auth проверяет Bearer токен и кладет сайт в контекст запроса
func Auth(authenticator Authenticator, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				logger.Warn("Auth: missing bearer token for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			website, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, websites.ErrUnauthorized) {
					logger.Warn("Auth: unknown token for %s %s", r.Method, r.URL.Path)
					handlers.RespondUnauthorized(w, msgInvalidToken)
					return
				}
				logger.Error("Auth: failed to authenticate: %v", err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithWebsite(r.Context(), website)))
		})
	}
}

// WithWebsite кладет сайт в контекст
func WithWebsite(ctx context.Context, website *domain.Website) context.Context {
	return context.WithValue(ctx, websiteKey, website)
}

// GetWebsite достает аутентифицированный сайт из контекста
func GetWebsite(ctx context.Context) (*domain.Website, bool) {
	website, ok := ctx.Value(websiteKey).(*domain.Website)
	return website, ok && website != nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
