package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	resp *models.BookingResponse
	err  error
}

func (f *fakeService) GetByID(_ context.Context, _ int64) (*models.BookingResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		svc        *fakeService
		wantStatus int
	}{
		{name: "found", bookingID: "5", svc: &fakeService{resp: &models.BookingResponse{ID: 5}}, wantStatus: http.StatusOK},
		{name: "bad id", bookingID: "abc", svc: &fakeService{}, wantStatus: http.StatusBadRequest},
		{name: "not found", bookingID: "5", svc: &fakeService{err: bookings.ErrBookingNotFound}, wantStatus: http.StatusNotFound},
		{name: "internal", bookingID: "5", svc: &fakeService{err: bookings.ErrInternal}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/bookings/{bookingId}", NewHandler(tt.svc, nopLogger{}).Handle)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/bookings/"+tt.bookingID, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
