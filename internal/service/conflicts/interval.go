package conflicts

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/pkg/types"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd)
// Интервалы, которые только касаются друг друга, НЕ пересекаются
//
// Примеры:
// - 10:00-12:00 и 11:00-13:00 → пересекаются
// - 10:00-12:00 и 12:00-13:00 → нет (граничат)
// - 10:00-12:00 и 10:30-11:00 → пересекаются (вложение)
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// DayBounds возвращает границы календарного дня [00:00, следующие 00:00) в часовом поясе loc
// для момента instant. Результат в UTC
func DayBounds(instant time.Time, loc *time.Location) (time.Time, time.Time) {
	local := instant.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1)
	return start.UTC(), end.UTC()
}

// ResolveWindow вычисляет рабочее окно [openTime, closeTime) календарного дня, в который попадает
// instant, в часовом поясе площадки. Результат в UTC
func ResolveWindow(instant time.Time, loc *time.Location, openTime, closeTime types.TimeString) (domain.TimeWindow, error) {
	if openTime.IsZero() || closeTime.IsZero() || !openTime.IsBefore(closeTime) {
		return domain.TimeWindow{}, fmt.Errorf("%w: %s-%s", ErrInvalidWindow, openTime, closeTime)
	}

	return domain.TimeWindow{
		Start: openTime.OnDate(instant, loc).UTC(),
		End:   closeTime.OnDate(instant, loc).UTC(),
	}, nil
}

// ValidateSingleDay проверяет, что запрос не выходит за пределы одного календарного дня площадки
// Окончание ровно в полночь следующего дня допускается
func ValidateSingleDay(req domain.BookingRequest, loc *time.Location) error {
	_, dayEnd := DayBounds(req.StartTime, loc)
	if req.EndTime.After(dayEnd) {
		return fmt.Errorf("%w: %s - %s", ErrMultiDayRequest,
			req.StartTime.In(loc).Format(time.RFC3339), req.EndTime.In(loc).Format(time.RFC3339))
	}
	return nil
}

// ValidateRequest валидирует входные данные запроса
func ValidateRequest(req domain.BookingRequest) error {
	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}

// validateWindow проверяет корректность рабочего окна
func validateWindow(window domain.TimeWindow) error {
	if !window.Start.Before(window.End) {
		return fmt.Errorf("%w: window start must be before window end", ErrInvalidWindow)
	}
	return nil
}

// Day календарный день площадки, в который попадает запрос
type Day struct {
	Location *time.Location
	Start    time.Time         // 00:00 дня площадки, UTC
	End      time.Time         // 00:00 следующего дня, UTC
	Window   domain.TimeWindow // рабочие часы дня, UTC
}

// ResolveDay определяет день площадки и рабочее окно для запроса
// Запрос, пересекающий полночь по времени площадки, отклоняется (ErrMultiDayRequest)
func ResolveDay(req domain.BookingRequest, venue *domain.Venue, policy domain.SchedulingPolicy) (Day, error) {
	fallback := policy.DefaultLocation
	if fallback == nil {
		fallback = time.UTC
	}

	loc, err := venue.Location(fallback)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %w", ErrInvalidTimezone, err)
	}

	if err := ValidateSingleDay(req, loc); err != nil {
		return Day{}, err
	}

	start, end := DayBounds(req.StartTime, loc)

	window, err := ResolveWindow(req.StartTime, loc, policy.OpenTime, policy.CloseTime)
	if err != nil {
		return Day{}, err
	}

	return Day{
		Location: loc,
		Start:    start,
		End:      end,
		Window:   window,
	}, nil
}
