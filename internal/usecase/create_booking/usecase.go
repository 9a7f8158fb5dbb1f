package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/booking"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/integrations/groupservice"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/conflicts"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	venueRepo    VenueRepository
	groupClient  GroupServiceClient
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
	groupClient GroupServiceClient,
	txManager TransactionManager,
	policy domain.SchedulingPolicy,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		venueRepo:    venueRepo,
		groupClient:  groupClient,
		txManager:    txManager,
		policy:       policy,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции с блокировкой
// бронирований дня. Если параллельная запись все же проскочила, ограничение БД bookings_no_overlap
// отклоняет вставку, и клиент получает тот же ConflictError, что и при обычном конфликте
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, venue=%d, group=%d, start=%s, end=%s, override=%t",
		req.UserID, req.VenueID, req.GroupID,
		req.StartTime.UTC().Format(domain.DateTimeFormat), req.EndTime.UTC().Format(domain.DateTimeFormat), req.Override)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}
	bookingReq := toBookingRequest(req)

	// 2. Нельзя бронировать прошедшее время
	if err := validateNotInPast(bookingReq.StartTime, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, err
	}

	// 3. Получаем площадку и день площадки
	day, err := uc.resolveVenueDay(ctx, bookingReq)
	if err != nil {
		return nil, err
	}

	// 4. Получаем имя группы для денормализации
	groupName, err := uc.resolveGroupName(ctx, req.GroupID)
	if err != nil {
		return nil, err
	}

	// Переменная для хранения результата
	var (
		created   *domain.Booking
		overrides []*domain.Booking
	)

	// 5. Проверка конфликтов и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Бронирования дня с блокировкой (FOR UPDATE) и проверка конфликтов
		result, err := uc.evaluate(txCtx, bookingReq, day)
		if err != nil {
			return err
		}

		// 5.2. Конфликт без override - возвращаем альтернативы
		if result.HasConflict && !req.Override {
			uc.logger.Warn("CreateBooking: venue=%d, %d conflicting booking(s), %d suggestion(s)",
				req.VenueID, len(result.Conflicts), len(result.SuggestedSlots))
			return &ConflictError{Result: result}
		}

		if result.HasConflict {
			uc.logger.Warn("CreateBooking: user=%d overrides %d conflicting booking(s) at venue=%d",
				req.UserID, len(result.Conflicts), req.VenueID)
		}

		// 5.3. Сохраняем бронирование
		// allow_overlap выставляется только если override действительно обошел конфликт
		booking := &domain.Booking{
			VenueID:      req.VenueID,
			GroupID:      req.GroupID,
			GroupName:    groupName,
			Title:        strings.TrimSpace(req.Title),
			StartTime:    bookingReq.StartTime,
			EndTime:      bookingReq.EndTime,
			Status:       domain.StatusConfirmed,
			AllowOverlap: result.HasConflict,
			CreatedBy:    req.UserID,
			Notes:        req.Notes,
		}

		booking, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		created = booking
		overrides = result.Conflicts
		return nil
	})

	if err != nil {
		return nil, uc.handleTxError(ctx, bookingReq, day, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	return toResponse(created, overrides), nil
}

// resolveVenueDay получает площадку и определяет день площадки для запроса
func (uc *UseCase) resolveVenueDay(ctx context.Context, req domain.BookingRequest) (conflicts.Day, error) {
	venue, err := uc.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			uc.logger.Warn("CreateBooking: venue id=%d not found", req.VenueID)
			return conflicts.Day{}, ErrVenueNotFound
		}
		uc.logger.Error("CreateBooking: failed to get venue id=%d: %v", req.VenueID, err)
		return conflicts.Day{}, fmt.Errorf("%w: failed to get venue: %v", ErrInternal, err)
	}

	if !venue.IsActive {
		uc.logger.Warn("CreateBooking: venue id=%d is not active", req.VenueID)
		return conflicts.Day{}, ErrVenueInactive
	}

	day, err := conflicts.ResolveDay(req, venue, uc.policy)
	if err != nil {
		if errors.Is(err, conflicts.ErrMultiDayRequest) {
			uc.logger.Warn("CreateBooking: %v", err)
			return conflicts.Day{}, fmt.Errorf("%w: %v", ErrMultiDayRequest, err)
		}
		uc.logger.Error("CreateBooking: failed to resolve day for venue id=%d: %v", req.VenueID, err)
		return conflicts.Day{}, fmt.Errorf("%w: failed to resolve venue day: %v", ErrInternal, err)
	}

	return day, nil
}

// resolveGroupName получает отображаемое имя группы
// При недоступности GroupService используется заглушка, бронирование не блокируется
func (uc *UseCase) resolveGroupName(ctx context.Context, groupID int64) (string, error) {
	group, err := uc.groupClient.GetGroupWithGracefulDegradation(ctx, groupID)
	if err == nil {
		return group.Name, nil
	}

	if errors.Is(err, groupservice.ErrGroupNotFound) {
		uc.logger.Warn("CreateBooking: group id=%d not found", groupID)
		return "", ErrGroupNotFound
	}
	if errors.Is(err, groupservice.ErrServiceDegraded) {
		uc.logger.Warn("CreateBooking: using fallback name for group id=%d", groupID)
		return groupservice.FallbackName(groupID), nil
	}

	uc.logger.Error("CreateBooking: failed to get group id=%d: %v", groupID, err)
	return "", fmt.Errorf("%w: failed to get group: %v", ErrInternal, err)
}

// evaluate получает бронирования дня и проверяет запрос на конфликты
// Внутри транзакции строки блокируются репозиторием
func (uc *UseCase) evaluate(ctx context.Context, req domain.BookingRequest, day conflicts.Day) (*domain.ConflictResult, error) {
	bookings, err := uc.bookingRepo.GetByVenueWithFilter(ctx, domain.VenueBookingsFilter{
		VenueID: req.VenueID,
		From:    day.Start,
		To:      day.End,
	})
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get bookings for venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: %w", ErrDataUnavailable, err)
	}

	result, err := conflicts.Evaluate(req, bookings, day.Window, uc.policy.MaxSuggestions)
	if err != nil {
		uc.logger.Error("CreateBooking: evaluation failed: %v", err)
		return nil, fmt.Errorf("%w: evaluation failed: %v", ErrInternal, err)
	}

	return result, nil
}

// handleTxError приводит ошибку транзакции к ошибке usecase
// Нарушение ограничения bookings_no_overlap переоценивается вне транзакции
func (uc *UseCase) handleTxError(ctx context.Context, req domain.BookingRequest, day conflicts.Day, err error) error {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr
	}

	if errors.Is(err, bookingRepo.ErrOverlap) {
		uc.metrics.IncWriteConflict()
		uc.logger.Warn("CreateBooking: concurrent booking detected by storage at venue=%d", req.VenueID)

		result, evalErr := uc.evaluate(ctx, req, day)
		if evalErr != nil || !result.HasConflict {
			// Конфликтующее бронирование уже отменено или данные недоступны -
			// сообщаем о конфликте без подробностей, клиент может повторить запрос
			result = &domain.ConflictResult{
				HasConflict:    true,
				Conflicts:      []*domain.Booking{},
				SuggestedSlots: []domain.SuggestedSlot{},
			}
		}
		return &ConflictError{Result: result}
	}

	if errors.Is(err, ErrDataUnavailable) || errors.Is(err, ErrInternal) {
		return err
	}

	uc.logger.Error("CreateBooking: transaction failed: %v", err)
	return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
}

func toResponse(booking *domain.Booking, overrides []*domain.Booking) *Response {
	if overrides == nil {
		overrides = []*domain.Booking{}
	}

	return &Response{
		ID:                  booking.ID,
		VenueID:             booking.VenueID,
		GroupID:             booking.GroupID,
		GroupName:           booking.GroupName,
		Title:               booking.Title,
		StartTime:           booking.StartTime,
		EndTime:             booking.EndTime,
		Status:              string(booking.Status),
		AllowOverlap:        booking.AllowOverlap,
		CreatedBy:           booking.CreatedBy,
		Notes:               booking.Notes,
		OverriddenConflicts: overrides,
		CreatedAt:           booking.CreatedAt,
		UpdatedAt:           booking.UpdatedAt,
	}
}
