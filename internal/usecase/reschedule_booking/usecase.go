package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/conflicts"
)

// UseCase use case для переноса бронирования на другое время
type UseCase struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	txManager    TransactionManager
	policy       domain.SchedulingPolicy
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	txManager TransactionManager,
	policy domain.SchedulingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		txManager:    txManager,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет перенос бронирования
// Само бронирование исключается из проверки (ExcludeID), иначе сдвиг внутри собственного
// интервала давал бы конфликт с самим собой
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleBooking: user=%d, booking=%d, start=%s, end=%s, override=%t",
		req.UserID, req.BookingID,
		req.StartTime.UTC().Format(domain.DateTimeFormat), req.EndTime.UTC().Format(domain.DateTimeFormat), req.Override)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нельзя переносить на прошедшее время
	if err := validateNotInPast(req.StartTime, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("RescheduleBooking: %v", err)
		return nil, err
	}

	var (
		bookingReq domain.BookingRequest
		day        conflicts.Day
		updated    *domain.Booking
		overrides  []*domain.Booking
	)

	// 3. Проверка и перенос в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		// 3.2. Переносить может только автор
		if booking.CreatedBy != req.UserID {
			uc.logger.Warn("RescheduleBooking: user=%d is not the creator of booking id=%d", req.UserID, req.BookingID)
			return ErrAccessDenied
		}

		if !booking.CanBeRescheduled() {
			uc.logger.Warn("RescheduleBooking: booking id=%d has status=%s", req.BookingID, booking.Status)
			return ErrCannotReschedule
		}

		// 3.3. День площадки для нового интервала
		bookingReq = toBookingRequest(req, booking.VenueID)
		day, err = uc.resolveVenueDay(txCtx, bookingReq)
		if err != nil {
			return err
		}

		// 3.4. Проверяем конфликты без учета самого бронирования
		result, err := uc.evaluate(txCtx, bookingReq, day)
		if err != nil {
			return err
		}

		if result.HasConflict && !req.Override {
			uc.logger.Warn("RescheduleBooking: booking id=%d, %d conflicting booking(s), %d suggestion(s)",
				req.BookingID, len(result.Conflicts), len(result.SuggestedSlots))
			return &ConflictError{Result: result}
		}

		// 3.5. Сохраняем новый интервал
		if err := uc.bookingRepo.UpdateTime(txCtx, req.BookingID, bookingReq.StartTime, bookingReq.EndTime, result.HasConflict); err != nil {
			return err
		}

		booking.StartTime = bookingReq.StartTime
		booking.EndTime = bookingReq.EndTime
		booking.AllowOverlap = result.HasConflict

		updated = booking
		overrides = result.Conflicts
		return nil
	})

	if err != nil {
		return nil, uc.handleTxError(ctx, bookingReq, day, err)
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%d", updated.ID)

	if overrides == nil {
		overrides = []*domain.Booking{}
	}

	return &Response{
		Booking:             updated,
		OverriddenConflicts: overrides,
	}, nil
}

// resolveVenueDay получает площадку и определяет день площадки для нового интервала
func (uc *UseCase) resolveVenueDay(ctx context.Context, req domain.BookingRequest) (conflicts.Day, error) {
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Error("RescheduleBooking: venue id=%d of existing booking not found", req.VenueID)
			return conflicts.Day{}, ErrVenueNotFound
		}
		return conflicts.Day{}, fmt.Errorf("%w: failed to get venue: %w", ErrInternal, err)
	}

	if !venue.IsActive {
		uc.logger.Warn("RescheduleBooking: venue id=%d is not active", req.VenueID)
		return conflicts.Day{}, ErrVenueInactive
	}

	day, err := conflicts.ResolveDay(req, venue, uc.policy)
	if err != nil {
		if errors.Is(err, conflicts.ErrMultiDayRequest) {
			uc.logger.Warn("RescheduleBooking: %v", err)
			return conflicts.Day{}, fmt.Errorf("%w: %v", ErrMultiDayRequest, err)
		}
		return conflicts.Day{}, fmt.Errorf("%w: failed to resolve venue day: %v", ErrInternal, err)
	}

	return day, nil
}

// evaluate получает бронирования дня (кроме переносимого) и проверяет конфликты
func (uc *UseCase) evaluate(ctx context.Context, req domain.BookingRequest, day conflicts.Day) (*domain.ConflictResult, error) {
	bookings, err := uc.bookingRepo.GetByVenueWithFilter(ctx, domain.VenueBookingsFilter{
		VenueID:   req.VenueID,
		From:      day.Start,
		To:        day.End,
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get bookings for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	result, err := conflicts.Evaluate(req, bookings, day.Window, uc.policy.MaxSuggestions)
	if err != nil {
		return nil, fmt.Errorf("%w: evaluation failed: %v", ErrInternal, err)
	}

	return result, nil
}

// handleTxError приводит ошибку транзакции к ошибке usecase
func (uc *UseCase) handleTxError(ctx context.Context, req domain.BookingRequest, day conflicts.Day, err error) error {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr
	}

	if errors.Is(err, bookingRepo.ErrOverlap) {
		uc.metrics.IncWriteConflict()
		uc.logger.Warn("RescheduleBooking: concurrent booking detected by storage at venue=%d", req.VenueID)

		result, evalErr := uc.evaluate(ctx, req, day)
		if evalErr != nil || !result.HasConflict {
			result = &domain.ConflictResult{
				HasConflict:    true,
				Conflicts:      []*domain.Booking{},
				SuggestedSlots: []domain.SuggestedSlot{},
			}
		}
		return &ConflictError{Result: result}
	}

	if errors.Is(err, bookingRepo.ErrBookingNotFound) {
		return ErrBookingNotFound
	}

	for _, known := range []error{
		ErrBookingNotFound, ErrAccessDenied, ErrCannotReschedule, ErrVenueNotFound,
		ErrVenueInactive, ErrMultiDayRequest, ErrDataUnavailable, ErrInternal,
	} {
		if errors.Is(err, known) {
			return err
		}
	}

	uc.logger.Error("RescheduleBooking: transaction failed: %v", err)
	return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
}
