package update_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SiteBookings/internal/api/middleware"
	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	updateBooking "github.com/m04kA/SMC-SiteBookings/internal/usecase/update_booking"
	"github.com/m04kA/SMC-SiteBookings/pkg/logger"
)

type fakeUseCase struct {
	req *updateBooking.Request
	err error
}

func (f *fakeUseCase) Execute(_ context.Context, req *updateBooking.Request) (*updateBooking.Response, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	b, err := req.Input.ToBooking(req.WebsiteID, domain.AllowedDurations)
	if err != nil {
		return nil, err
	}
	b.ID = req.BookingID
	return &updateBooking.Response{Booking: b}, nil
}

const validBody = `{"service_name":"Haircut","customer_name":"Ali","booking_date":"2025-01-21","start_time":"10:00","duration_minutes":30}`

func serve(uc *fakeUseCase, id, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, logger.NewNop())
	req := httptest.NewRequest(http.MethodPut, "/api/v1/bookings/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"id": id})
	req = req.WithContext(middleware.WithWebsite(req.Context(), &domain.Website{ID: 7}))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Updated(t *testing.T) {
	uc := &fakeUseCase{}

	rec := serve(uc, "5", validBody)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(5), uc.req.BookingID)
	assert.Contains(t, rec.Body.String(), `"end_time":"10:30"`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name string
		id   string
		err  error
		code int
	}{
		{name: "bad id", id: "abc", code: http.StatusBadRequest},
		{name: "not found", id: "5", err: updateBooking.ErrBookingNotFound, code: http.StatusNotFound},
		{name: "deleted", id: "5", err: updateBooking.ErrBookingDeleted, code: http.StatusConflict},
		{name: "overlap", id: "5", err: updateBooking.ErrSlotNotAvailable, code: http.StatusConflict},
		{name: "internal", id: "5", err: updateBooking.ErrInternal, code: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.id, validBody)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}
