package get_venue_schedule

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	resp *models.ScheduleResponse
	err  error
}

func (f *fakeService) GetSchedule(_ context.Context, _ *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svc        *fakeService
		wantStatus int
	}{
		{name: "ok", target: "/venues/7/schedule?date=2025-10-15", svc: &fakeService{resp: &models.ScheduleResponse{VenueID: 7}}, wantStatus: http.StatusOK},
		{name: "bad venue id", target: "/venues/x/schedule?date=2025-10-15", svc: &fakeService{}, wantStatus: http.StatusBadRequest},
		{name: "missing date", target: "/venues/7/schedule", svc: &fakeService{}, wantStatus: http.StatusBadRequest},
		{name: "invalid date", target: "/venues/7/schedule?date=oct", svc: &fakeService{err: venues.ErrInvalidInput}, wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/venues/7/schedule?date=2025-10-15", svc: &fakeService{err: venues.ErrVenueNotFound}, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/venues/7/schedule?date=2025-10-15", svc: &fakeService{err: venues.ErrInternal}, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := mux.NewRouter()
			router.HandleFunc("/venues/{venueId}/schedule", NewHandler(tt.svc, nopLogger{}).Handle)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
