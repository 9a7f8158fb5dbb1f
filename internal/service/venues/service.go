package venues

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	venueRepo "github.com/m04kA/SMC-VenueBookingService/internal/infra/storage/venue"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/conflicts"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

// Service сервис для работы с расписанием площадок
type Service struct {
	venueRepo VenueRepository
	policy    domain.SchedulingPolicy
	logger    Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	venueRepo VenueRepository,
	policy domain.SchedulingPolicy,
	logger Logger,
) *Service {
	return &Service{
		venueRepo: venueRepo,
		policy:    policy,
		logger:    logger,
	}
}

// GetSchedule возвращает рабочее окно площадки на указанный день
// Неактивные площадки тоже возвращаются - с IsActive=false
func (s *Service) GetSchedule(ctx context.Context, req *models.GetScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("GetSchedule: venue=%d, date=%s", req.VenueID, req.Date)

	// 1. Валидируем входные данные
	if req.VenueID <= 0 {
		return nil, fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	// 2. Получаем площадку
	venue, err := s.venueRepo.GetByID(ctx, req.VenueID)
	if err != nil {
		if errors.Is(err, venueRepo.ErrVenueNotFound) {
			s.logger.Warn("GetSchedule: venue id=%d not found", req.VenueID)
			return nil, ErrVenueNotFound
		}
		s.logger.Error("GetSchedule: failed to get venue id=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetSchedule - venue error: %v", ErrInternal, err)
	}

	loc, err := venue.Location(s.policy.DefaultLocation)
	if err != nil {
		s.logger.Error("GetSchedule: %v", err)
		return nil, fmt.Errorf("%w: GetSchedule - %v", ErrInternal, err)
	}

	// 3. Разбираем дату в часовом поясе площадки
	date, err := time.ParseInLocation(domain.DateFormat, req.Date, loc)
	if err != nil {
		s.logger.Warn("GetSchedule: invalid date=%q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD format", ErrInvalidInput)
	}

	// 4. Рассчитываем окно (учитывает переходы на летнее время)
	window, err := conflicts.ResolveWindow(date, loc, s.policy.OpenTime, s.policy.CloseTime)
	if err != nil {
		s.logger.Error("GetSchedule: failed to resolve window for venue=%d: %v", req.VenueID, err)
		return nil, fmt.Errorf("%w: GetSchedule - %v", ErrInternal, err)
	}

	return &models.ScheduleResponse{
		VenueID:        venue.ID,
		Name:           venue.Name,
		Timezone:       loc.String(),
		IsActive:       venue.IsActive,
		Date:           req.Date,
		OpenTime:       s.policy.OpenTime.String(),
		CloseTime:      s.policy.CloseTime.String(),
		WindowStart:    window.Start.UTC().Format(time.RFC3339),
		WindowEnd:      window.End.UTC().Format(time.RFC3339),
		MaxSuggestions: s.policy.MaxSuggestions,
	}, nil
}
