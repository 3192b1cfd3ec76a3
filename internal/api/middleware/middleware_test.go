package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	"github.com/m04kA/SMC-SiteBookings/internal/service/websites"
	"github.com/m04kA/SMC-SiteBookings/pkg/logger"
)

type fakeAuthenticator struct {
	websites map[string]*domain.Website
	err      error
}

func (f *fakeAuthenticator) Authenticate(_ context.Context, token string) (*domain.Website, error) {
	if f.err != nil {
		return nil, f.err
	}
	if w, ok := f.websites[token]; ok {
		return w, nil
	}
	return nil, websites.ErrUnauthorized
}

func websiteEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		website, ok := GetWebsite(r.Context())
		if !ok {
			w.WriteHeader(http.StatusTeapot)
			return
		}
		_, _ = w.Write([]byte(website.Name))
	})
}

func TestAuth(t *testing.T) {
	auth := &fakeAuthenticator{websites: map[string]*domain.Website{"good": {ID: 1, Name: "salon"}}}
	h := Auth(auth, logger.NewNop())(websiteEcho())

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{name: "valid", header: "Bearer good", code: http.StatusOK},
		{name: "lowercase scheme", header: "bearer good", code: http.StatusOK},
		{name: "missing", header: "", code: http.StatusUnauthorized},
		{name: "basic scheme", header: "Basic good", code: http.StatusUnauthorized},
		{name: "unknown token", header: "Bearer bad", code: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, "salon", rec.Body.String())
			}
		})
	}
}

func TestAuth_InternalError(t *testing.T) {
	h := Auth(&fakeAuthenticator{err: errors.New("db down")}, logger.NewNop())(websiteEcho())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer x")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCORS_Preflight(t *testing.T) {
	called := false
	h := CORS(CORSConfig{AllowedOrigins: []string{"*"}, MaxAge: 3600})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/bookings", nil)
	req.Header.Set("Origin", "https://salon.uz")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Authorization, Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestCORS_RestrictedOrigins(t *testing.T) {
	h := CORS(CORSConfig{AllowedOrigins: []string{"https://salon.uz"}, MaxAge: 60})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://salon.uz")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "https://salon.uz", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogging_SetsRequestID(t *testing.T) {
	var seen string
	h := RequestLogging(logger.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
}

type recordingMetrics struct {
	route  string
	status int
}

func (m *recordingMetrics) ObserveHTTPRequest(_, route string, status int, _ time.Duration) {
	m.route = route
	m.status = status
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &recordingMetrics{}
	router := mux.NewRouter()
	router.Use(Metrics(m))
	router.HandleFunc("/api/v1/bookings/{id:[0-9]+}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/bookings/42", nil))

	assert.Equal(t, "/api/v1/bookings/{id:[0-9]+}", m.route)
	assert.Equal(t, http.StatusNotFound, m.status)
}
