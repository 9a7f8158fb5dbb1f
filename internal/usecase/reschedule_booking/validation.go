package reschedule_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return nil
}

// validateNotInPast проверяет, что новый интервал начинается не раньше текущего момента
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: start %s is before now %s", ErrBookingInPast,
			start.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}
	return nil
}

// toBookingRequest строит запрос проверки с исключением самого переносимого бронирования
func toBookingRequest(req *Request, venueID int64) domain.BookingRequest {
	bookingID := req.BookingID
	return domain.BookingRequest{
		VenueID:   venueID,
		StartTime: req.StartTime.UTC(),
		EndTime:   req.EndTime.UTC(),
		ExcludeID: &bookingID,
	}
}
