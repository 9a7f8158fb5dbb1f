package check_conflicts

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/conflicts"
	"github.com/m04kA/SMC-VenueBookingService/pkg/metrics"
)

// UseCase use case проверки предлагаемого бронирования на конфликты
type UseCase struct {
	bookingRepo BookingRepository
	venueRepo   VenueRepository
	policy      domain.SchedulingPolicy
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	venueRepo VenueRepository,
	policy domain.SchedulingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		policy:      policy,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет проверку конфликтов
// Только читает данные: слоты не резервируются, повторная проверка выполняется при записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflicts: venue=%d, start=%s, end=%s",
		req.VenueID, req.StartTime.UTC().Format(domain.DateTimeFormat), req.EndTime.UTC().Format(domain.DateTimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflicts: validation failed: %v", err)
		return nil, err
	}
	bookingReq := toBookingRequest(req)

	// 2. Получаем площадку
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CheckConflicts: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		uc.logger.Error("CheckConflicts: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsActive {
		uc.logger.Warn("CheckConflicts: venue id=%d is not active", req.VenueID)
		return nil, ErrVenueInactive
	}

	// 3. Определяем день площадки и рабочее окно
	day, err := conflicts.ResolveDay(bookingReq, venue, uc.policy)
	if err != nil {
		if errors.Is(err, conflicts.ErrMultiDayRequest) {
			uc.logger.Warn("CheckConflicts: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrMultiDayRequest, err)
		}
		uc.logger.Error("CheckConflicts: failed to resolve day for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: failed to resolve venue day: %v", ErrInternal, err)
	}

	// 4. Получаем активные бронирования этого дня
	// Ошибка чтения - это не "конфликтов нет"
	bookings, err := uc.bookingRepo.GetByVenueWithFilter(ctx, domain.VenueBookingsFilter{
		VenueID:   req.VenueID,
		From:      day.Start,
		To:        day.End,
		ExcludeID: req.ExcludeID,
	})
	if err != nil {
		uc.logger.Error("CheckConflicts: failed to get bookings for venue id=%d: %v", req.VenueID, err)
		uc.metrics.ObserveConflictCheck(metrics.ConflictResultUnavailable, 0)
		return nil, fmt.Errorf("%w: %v", ErrDataUnavailable, err)
	}

	// 5. Проверяем конфликты и подбираем альтернативы
	result, err := conflicts.Evaluate(bookingReq, bookings, day.Window, uc.policy.MaxSuggestions)
	if err != nil {
		uc.logger.Error("CheckConflicts: evaluation failed: %v", err)
		return nil, fmt.Errorf("%w: evaluation failed: %v", ErrInternal, err)
	}

	uc.metrics.ObserveConflictCheck(resultLabel(result), len(result.SuggestedSlots))
	uc.logger.Info("CheckConflicts: venue=%d, conflicts=%d, suggestions=%d",
		req.VenueID, len(result.Conflicts), len(result.SuggestedSlots))

	return &Response{
		VenueID: req.VenueID,
		Window:  day.Window,
		Result:  result,
	}, nil
}

// resultLabel метка исхода проверки для метрик
func resultLabel(result *domain.ConflictResult) string {
	switch {
	case result.IsInfeasible():
		return metrics.ConflictResultInfeasible
	case result.HasConflict:
		return metrics.ConflictResultConflict
	default:
		return metrics.ConflictResultFree
	}
}
