package get_venue_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	gotReq *models.GetVenueBookingsRequest
	resp   *models.BookingListResponse
	err    error
}

func (f *fakeService) GetVenueBookings(_ context.Context, req *models.GetVenueBookingsRequest) (*models.BookingListResponse, error) {
	f.gotReq = req
	return f.resp, f.err
}

func serve(svc BookingService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/venues/{venueId}/bookings", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: &models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1}, {ID: 2}}}}

	w := serve(svc, "/venues/7/bookings?date=2025-10-15&includeInactive=true")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, &models.GetVenueBookingsRequest{VenueID: 7, Date: "2025-10-15", IncludeInactive: true}, svc.gotReq)
	assert.Contains(t, w.Body.String(), `"id":2`)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		svcErr     error
		wantStatus int
	}{
		{name: "bad venue id", target: "/venues/x/bookings?date=2025-10-15", wantStatus: http.StatusBadRequest},
		{name: "missing date", target: "/venues/7/bookings", wantStatus: http.StatusBadRequest},
		{name: "bad includeInactive", target: "/venues/7/bookings?date=2025-10-15&includeInactive=maybe", wantStatus: http.StatusBadRequest},
		{name: "bad date", target: "/venues/7/bookings?date=15.10.2025", svcErr: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "venue not found", target: "/venues/7/bookings?date=2025-10-15", svcErr: bookings.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/venues/7/bookings?date=2025-10-15", svcErr: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeService{err: tt.svcErr}, tt.target)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
