package create_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/groupservice"
	"github.com/m04kA/SMC-VenueBookingService/pkg/ptr"
)

var day = time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

type fakeBookingRepo struct {
	existing  []*domain.Booking
	getErr    error
	createErr error
	created   *domain.Booking
	txReads   int
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	booking.ID = 100
	booking.CreatedAt = at(8, 0)
	booking.UpdatedAt = at(8, 0)
	f.created = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetByVenueWithFilter(ctx context.Context, _ domain.VenueBookingsFilter) ([]*domain.Booking, error) {
	if ctx.Value(txKey{}) != nil {
		f.txReads++
	}
	return f.existing, f.getErr
}

type fakeVenueRepo struct {
	venue *domain.Venue
	err   error
}

func (f *fakeVenueRepo) GetByID(_ context.Context, _ int64) (*domain.Venue, error) {
	return f.venue, f.err
}

type fakeGroupClient struct {
	group *groupservice.Group
	err   error
}

func (f *fakeGroupClient) GetGroupWithGracefulDegradation(_ context.Context, _ int64) (*groupservice.Group, error) {
	return f.group, f.err
}

type txKey struct{}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(context.WithValue(ctx, txKey{}, true))
}

type fakeMetrics struct {
	writeConflicts int
}

func (f *fakeMetrics) IncWriteConflict() {
	f.writeConflicts++
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings *fakeBookingRepo
	venues   *fakeVenueRepo
	groups   *fakeGroupClient
	metrics  *fakeMetrics
}

func newFixture() *fixture {
	return &fixture{
		bookings: &fakeBookingRepo{},
		venues:   &fakeVenueRepo{venue: &domain.Venue{ID: 7, Name: "Main hall", IsActive: true}},
		groups:   &fakeGroupClient{group: &groupservice.Group{ID: 3, Name: "Choir"}},
		metrics:  &fakeMetrics{},
	}
}

func (f *fixture) useCase() *UseCase {
	uc := NewUseCase(f.bookings, f.venues, f.groups, fakeTxManager{}, domain.DefaultSchedulingPolicy(), f.metrics, nopLogger{})
	uc.timeProvider = fixedTime{now: at(7, 0)}
	return uc
}

func confirmed(id int64, start, end time.Time) *domain.Booking {
	return &domain.Booking{ID: id, VenueID: 7, GroupName: "Chess club", StartTime: start, EndTime: end, Status: domain.StatusConfirmed}
}

func validRequest() *Request {
	return &Request{
		UserID:    100,
		VenueID:   7,
		GroupID:   3,
		Title:     "  Rehearsal ",
		StartTime: at(11, 0),
		EndTime:   at(12, 0),
		Notes:     ptr.Ptr("bring chairs"),
	}
}

func TestUseCase_Execute_Created(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{confirmed(1, at(9, 0), at(11, 0))}

	resp, err := f.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "Choir", resp.GroupName)
	assert.Equal(t, "Rehearsal", resp.Title)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.False(t, resp.AllowOverlap)
	assert.Empty(t, resp.OverriddenConflicts)
	assert.Equal(t, 1, f.bookings.txReads, "bookings must be read inside the transaction")
}

func TestUseCase_Execute_Conflict(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{confirmed(1, at(10, 0), at(12, 0))}

	_, err := f.useCase().Execute(context.Background(), validRequest())

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.ErrorIs(t, err, ErrBookingConflict)
	require.Len(t, conflictErr.Result.Conflicts, 1)
	assert.Equal(t, int64(1), conflictErr.Result.Conflicts[0].ID)
	assert.Equal(t, []domain.SuggestedSlot{
		{StartTime: at(9, 0), EndTime: at(10, 0), Available: true},
		{StartTime: at(12, 0), EndTime: at(13, 0), Available: true},
	}, conflictErr.Result.SuggestedSlots)
	assert.Nil(t, f.bookings.created)
}

func TestUseCase_Execute_Override(t *testing.T) {
	f := newFixture()
	f.bookings.existing = []*domain.Booking{confirmed(1, at(10, 0), at(12, 0))}
	req := validRequest()
	req.Override = true

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	assert.True(t, resp.AllowOverlap)
	require.Len(t, resp.OverriddenConflicts, 1)
	assert.True(t, f.bookings.created.AllowOverlap)
}

func TestUseCase_Execute_OverrideWithoutConflictIsGated(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Override = true

	resp, err := f.useCase().Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.AllowOverlap)
}

func TestUseCase_Execute_StorageOverlapIsReportedAsConflict(t *testing.T) {
	f := newFixture()
	f.bookings.createErr = fmt.Errorf("insert: %w", bookingRepo.ErrOverlap)

	_, err := f.useCase().Execute(context.Background(), validRequest())

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.True(t, conflictErr.Result.HasConflict)
	assert.Equal(t, 1, f.metrics.writeConflicts)
}

func TestUseCase_Execute_GroupServiceDegraded(t *testing.T) {
	f := newFixture()
	f.groups = &fakeGroupClient{err: fmt.Errorf("%w: timeout", groupservice.ErrServiceDegraded)}

	resp, err := f.useCase().Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, "Group #3", resp.GroupName)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(f *fixture, req *Request)
		wantErr error
	}{
		{
			name:    "missing title",
			setup:   func(_ *fixture, req *Request) { req.Title = "   " },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing user",
			setup:   func(_ *fixture, req *Request) { req.UserID = 0 },
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end before start",
			setup:   func(_ *fixture, req *Request) { req.EndTime = at(10, 0) },
			wantErr: ErrInvalidInput,
		},
		{
			name: "in the past",
			setup: func(_ *fixture, req *Request) {
				req.StartTime = at(6, 0)
				req.EndTime = at(6, 30)
			},
			wantErr: ErrBookingInPast,
		},
		{
			name:    "venue not found",
			setup:   func(f *fixture, _ *Request) { f.venues.err = venueRepo.ErrVenueNotFound },
			wantErr: ErrVenueNotFound,
		},
		{
			name:    "venue inactive",
			setup:   func(f *fixture, _ *Request) { f.venues.venue.IsActive = false },
			wantErr: ErrVenueInactive,
		},
		{
			name:    "multi-day",
			setup:   func(_ *fixture, req *Request) { req.EndTime = at(25, 0) },
			wantErr: ErrMultiDayRequest,
		},
		{
			name:    "group not found",
			setup:   func(f *fixture, _ *Request) { f.groups.err = groupservice.ErrGroupNotFound },
			wantErr: ErrGroupNotFound,
		},
		{
			name:    "bookings unavailable",
			setup:   func(f *fixture, _ *Request) { f.bookings.getErr = errors.New("connection reset") },
			wantErr: ErrDataUnavailable,
		},
		{
			name:    "insert failure",
			setup:   func(f *fixture, _ *Request) { f.bookings.createErr = bookingRepo.ErrExecQuery },
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.setup(f, req)

			resp, err := f.useCase().Execute(context.Background(), req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
