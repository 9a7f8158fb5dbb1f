package check_conflicts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
	"github.com/m04kA/SMC-VenueBookingService/pkg/ptr"
)

var day = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
	filter   domain.VenueBookingsFilter
}

func (f *fakeBookingRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.bookings, f.err
}

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, f.err
}

type fakeMetrics struct {
	result      string
	suggestions int
}

func (f *fakeMetrics) ObserveConflictCheck(result string, suggestions int) {
	f.result = result
	f.suggestions = suggestions
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmed(id int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		VenueID:   7,
		GroupName: "Choir",
		StartTime: start,
		EndTime:   end,
		Status:    domain.StatusConfirmed,
	}
}

func newUseCase(bookings *fakeBookingRepo, venues *fakeVenueRepo, m *fakeMetrics) *UseCase {
	return NewUseCase(bookings, venues, domain.DefaultSchedulingPolicy(), m, nopLogger{})
}

func activeVenue() *fakeVenueRepo {
	return &fakeVenueRepo{venue: &domain.Venue{ID: 7, Name: "Main hall", IsActive: true}}
}

func TestUseCase_Execute_NoConflict(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{confirmed(1, at(9, 0), at(10, 0))}}
	m := &fakeMetrics{}
	uc := newUseCase(bookings, activeVenue(), m)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 7, StartTime: at(10, 0), EndTime: at(11, 0)})

	require.NoError(t, err)
	assert.False(t, resp.Result.HasConflict)
	assert.Empty(t, resp.Result.Conflicts)
	assert.Empty(t, resp.Result.SuggestedSlots)
	assert.Equal(t, metrics.ConflictResultFree, m.result)

	assert.Equal(t, int64(7), bookings.filter.VenueID)
	assert.Equal(t, day, bookings.filter.From)
	assert.Equal(t, day.AddDate(0, 0, 1), bookings.filter.To)
	assert.False(t, bookings.filter.IncludeInactive)
}

func TestUseCase_Execute_ConflictWithSuggestions(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{confirmed(1, at(10, 0), at(12, 0))}}
	m := &fakeMetrics{}
	uc := newUseCase(bookings, activeVenue(), m)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 7, StartTime: at(11, 0), EndTime: at(12, 0)})

	require.NoError(t, err)
	require.True(t, resp.Result.HasConflict)
	require.Len(t, resp.Result.Conflicts, 1)
	assert.Equal(t, "Choir", resp.Result.Conflicts[0].GroupName)
	assert.Equal(t, []domain.SuggestedSlot{
		{StartTime: at(9, 0), EndTime: at(10, 0), Available: true},
		{StartTime: at(12, 0), EndTime: at(13, 0), Available: true},
	}, resp.Result.SuggestedSlots)
	assert.Equal(t, at(9, 0), resp.Window.Start)
	assert.Equal(t, at(21, 0), resp.Window.End)
	assert.Equal(t, metrics.ConflictResultConflict, m.result)
	assert.Equal(t, 2, m.suggestions)
}

func TestUseCase_Execute_Infeasible(t *testing.T) {
	bookings := &fakeBookingRepo{bookings: []*domain.Booking{confirmed(1, at(9, 0), at(21, 0))}}
	m := &fakeMetrics{}
	uc := newUseCase(bookings, activeVenue(), m)

	resp, err := uc.Execute(context.Background(), &Request{VenueID: 7, StartTime: at(14, 0), EndTime: at(15, 0)})

	require.NoError(t, err)
	assert.True(t, resp.Result.IsInfeasible())
	assert.Equal(t, metrics.ConflictResultInfeasible, m.result)
}

func TestUseCase_Execute_PassesExcludeID(t *testing.T) {
	bookings := &fakeBookingRepo{}
	uc := newUseCase(bookings, activeVenue(), &fakeMetrics{})

	_, err := uc.Execute(context.Background(), &Request{
		VenueID:   7,
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
		ExcludeID: ptr.Ptr(int64(42)),
	})

	require.NoError(t, err)
	require.NotNil(t, bookings.filter.ExcludeID)
	assert.Equal(t, int64(42), *bookings.filter.ExcludeID)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      *Request
		venues   *fakeVenueRepo
		bookings *fakeBookingRepo
		wantErr  error
	}{
		{
			name:     "start after end",
			req:      &Request{VenueID: 7, StartTime: at(12, 0), EndTime: at(11, 0)},
			venues:   activeVenue(),
			bookings: &fakeBookingRepo{},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "missing venue id",
			req:      &Request{StartTime: at(10, 0), EndTime: at(11, 0)},
			venues:   activeVenue(),
			bookings: &fakeBookingRepo{},
			wantErr:  ErrInvalidInput,
		},
		{
			name:     "venue not found",
			req:      &Request{VenueID: 7, StartTime: at(10, 0), EndTime: at(11, 0)},
			venues:   &fakeVenueRepo{err: venueRepo.ErrVenueNotFound},
			bookings: &fakeBookingRepo{},
			wantErr:  ErrVenueNotFound,
		},
		{
			name:     "venue lookup failure",
			req:      &Request{VenueID: 7, StartTime: at(10, 0), EndTime: at(11, 0)},
			venues:   &fakeVenueRepo{err: errors.New("connection reset")},
			bookings: &fakeBookingRepo{},
			wantErr:  ErrInternal,
		},
		{
			name:     "inactive venue",
			req:      &Request{VenueID: 7, StartTime: at(10, 0), EndTime: at(11, 0)},
			venues:   &fakeVenueRepo{venue: &domain.Venue{ID: 7, IsActive: false}},
			bookings: &fakeBookingRepo{},
			wantErr:  ErrVenueInactive,
		},
		{
			name:     "multi-day request",
			req:      &Request{VenueID: 7, StartTime: at(22, 0), EndTime: at(26, 0)},
			venues:   activeVenue(),
			bookings: &fakeBookingRepo{},
			wantErr:  ErrMultiDayRequest,
		},
		{
			name:     "bookings unavailable",
			req:      &Request{VenueID: 7, StartTime: at(10, 0), EndTime: at(11, 0)},
			venues:   activeVenue(),
			bookings: &fakeBookingRepo{err: errors.New("connection reset")},
			wantErr:  ErrDataUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.bookings, tt.venues, &fakeMetrics{})

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_UnavailableIsCounted(t *testing.T) {
	m := &fakeMetrics{}
	uc := newUseCase(&fakeBookingRepo{err: errors.New("timeout")}, activeVenue(), m)

	_, err := uc.Execute(context.Background(), &Request{VenueID: 7, StartTime: at(10, 0), EndTime: at(11, 0)})

	require.Error(t, err)
	assert.Equal(t, metrics.ConflictResultUnavailable, m.result)
}
