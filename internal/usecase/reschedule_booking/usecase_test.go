package reschedule_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
)

var day = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type fakeBookingRepo struct {
	booking   *domain.Booking
	getErr    error
	others    []*domain.Booking
	listErr   error
	updateErr error

	filter  domain.VenueBookingsFilter
	updated bool
	allow   bool
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *f.booking
	return &copied, nil
}

func (f *fakeBookingRepo) GetByVenueWithFilter(_ context.Context, filter domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	f.filter = filter
	return f.others, f.listErr
}

func (f *fakeBookingRepo) UpdateTime(_ context.Context, _ int64, _, _ time.Time, allowOverlap bool) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = true
	f.allow = allowOverlap
	return nil
}

type fakeVenueRepo struct {
	venue *domain.Venue
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct{ writeConflicts int }

func (f *fakeMetrics) IncWriteConflict() { f.writeConflicts++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func existingBooking() *domain.Booking {
	return &domain.Booking{
		ID:        42,
		VenueID:   7,
		GroupName: "Choir",
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
		Status:    domain.StatusConfirmed,
		CreatedBy: 100,
	}
}

func newUseCase(repo *fakeBookingRepo, m *fakeMetrics) *UseCase {
	venues := &fakeVenueRepo{venue: &domain.Venue{ID: 7, IsActive: true}}
	uc := NewUseCase(repo, venues, fakeTxManager{}, domain.DefaultSchedulingPolicy(), m, nopLogger{})
	uc.timeProvider = fixedTime{now: at(7, 0)}
	return uc
}

func TestUseCase_Execute_ShiftWithinOwnInterval(t *testing.T) {
	repo := &fakeBookingRepo{booking: existingBooking()}
	uc := newUseCase(repo, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:    100,
		BookingID: 42,
		StartTime: at(10, 30),
		EndTime:   at(11, 30),
	})

	require.NoError(t, err)
	assert.True(t, repo.updated)
	assert.False(t, repo.allow)
	assert.Equal(t, at(10, 30), resp.Booking.StartTime)
	assert.Empty(t, resp.OverriddenConflicts)
	require.NotNil(t, repo.filter.ExcludeID)
	assert.Equal(t, int64(42), *repo.filter.ExcludeID)
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: existingBooking(),
		others: []*domain.Booking{
			{ID: 1, VenueID: 7, StartTime: at(13, 0), EndTime: at(15, 0), Status: domain.StatusConfirmed},
		},
	}
	uc := newUseCase(repo, &fakeMetrics{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 100, BookingID: 42, StartTime: at(14, 0), EndTime: at(15, 0)})

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Len(t, conflictErr.Result.Conflicts, 1)
	assert.Equal(t, []domain.SuggestedSlot{
		{StartTime: at(9, 0), EndTime: at(10, 0), Available: true},
		{StartTime: at(15, 0), EndTime: at(16, 0), Available: true},
	}, conflictErr.Result.SuggestedSlots)
	assert.False(t, repo.updated)
}

func TestUseCase_Execute_Override(t *testing.T) {
	repo := &fakeBookingRepo{
		booking: existingBooking(),
		others: []*domain.Booking{
			{ID: 1, VenueID: 7, StartTime: at(13, 0), EndTime: at(15, 0), Status: domain.StatusConfirmed},
		},
	}
	uc := newUseCase(repo, &fakeMetrics{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 100, BookingID: 42, StartTime: at(14, 0), EndTime: at(15, 0), Override: true})

	require.NoError(t, err)
	assert.True(t, repo.allow)
	assert.True(t, resp.Booking.AllowOverlap)
	assert.Len(t, resp.OverriddenConflicts, 1)
}

func TestUseCase_Execute_StorageOverlap(t *testing.T) {
	repo := &fakeBookingRepo{booking: existingBooking(), updateErr: bookingRepo.ErrOverlap}
	m := &fakeMetrics{}
	uc := newUseCase(repo, m)

	_, err := uc.Execute(context.Background(), &Request{UserID: 100, BookingID: 42, StartTime: at(16, 0), EndTime: at(17, 0)})

	assert.ErrorIs(t, err, ErrBookingConflict)
	assert.Equal(t, 1, m.writeConflicts)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	cancelled := existingBooking()
	cancelled.Status = domain.StatusCancelled

	tests := []struct {
		name    string
		repo    *fakeBookingRepo
		req     *Request
		wantErr error
	}{
		{
			name:    "invalid interval",
			repo:    &fakeBookingRepo{booking: existingBooking()},
			req:     &Request{UserID: 100, BookingID: 42, StartTime: at(12, 0), EndTime: at(12, 0)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "in the past",
			repo:    &fakeBookingRepo{booking: existingBooking()},
			req:     &Request{UserID: 100, BookingID: 42, StartTime: at(6, 0), EndTime: at(6, 30)},
			wantErr: ErrBookingInPast,
		},
		{
			name:    "not found",
			repo:    &fakeBookingRepo{booking: existingBooking()},
			req:     &Request{UserID: 100, BookingID: 43, StartTime: at(12, 0), EndTime: at(13, 0)},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "not the creator",
			repo:    &fakeBookingRepo{booking: existingBooking()},
			req:     &Request{UserID: 200, BookingID: 42, StartTime: at(12, 0), EndTime: at(13, 0)},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "cancelled",
			repo:    &fakeBookingRepo{booking: cancelled},
			req:     &Request{UserID: 100, BookingID: 42, StartTime: at(12, 0), EndTime: at(13, 0)},
			wantErr: ErrCannotReschedule,
		},
		{
			name:    "multi-day",
			repo:    &fakeBookingRepo{booking: existingBooking()},
			req:     &Request{UserID: 100, BookingID: 42, StartTime: at(23, 0), EndTime: at(25, 0)},
			wantErr: ErrMultiDayRequest,
		},
		{
			name:    "bookings unavailable",
			repo:    &fakeBookingRepo{booking: existingBooking(), listErr: errors.New("timeout")},
			req:     &Request{UserID: 100, BookingID: 42, StartTime: at(12, 0), EndTime: at(13, 0)},
			wantErr: ErrDataUnavailable,
		},
		{
			name:    "lookup failure",
			repo:    &fakeBookingRepo{getErr: bookingRepo.ErrScanRow},
			req:     &Request{UserID: 100, BookingID: 42, StartTime: at(12, 0), EndTime: at(13, 0)},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(tt.repo, &fakeMetrics{})

			resp, err := uc.Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, tt.repo.updated)
		})
	}
}
