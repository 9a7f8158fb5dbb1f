package cancel_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeService struct {
	gotID  int64
	gotReq *models.CancelBookingRequest
	err    error
}

func (f *fakeService) Cancel(_ context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	f.gotID = bookingID
	f.gotReq = req
	return f.err
}

func serve(svc BookingService, bookingID string, userID int64, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/bookings/{bookingId}/cancel", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)

	r := httptest.NewRequest(http.MethodPatch, "/bookings/"+bookingID+"/cancel", strings.NewReader(body))
	if userID != 0 {
		r = r.WithContext(middleware.WithUserID(r.Context(), userID))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_Cancelled(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, "5", 100, `{"cancellationReason":"moved to another hall"}`)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, int64(5), svc.gotID)
	assert.Equal(t, &models.CancelBookingRequest{UserID: 100, CancellationReason: "moved to another hall"}, svc.gotReq)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &fakeService{}

	w := serve(svc, "5", 100, "")

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "", svc.gotReq.CancellationReason)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		bookingID  string
		userID     int64
		svcErr     error
		wantStatus int
	}{
		{name: "bad booking id", bookingID: "x", userID: 100, wantStatus: http.StatusBadRequest},
		{name: "no user", bookingID: "5", userID: 0, wantStatus: http.StatusUnauthorized},
		{name: "not found", bookingID: "5", userID: 100, svcErr: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "access denied", bookingID: "5", userID: 100, svcErr: bookings.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "already cancelled", bookingID: "5", userID: 100, svcErr: bookings.ErrCannotCancel, wantStatus: http.StatusConflict},
		{name: "reason too long", bookingID: "5", userID: 100, svcErr: bookings.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "internal", bookingID: "5", userID: 100, svcErr: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&fakeService{err: tt.svcErr}, tt.bookingID, tt.userID, `{}`)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
