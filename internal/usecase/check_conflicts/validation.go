package check_conflicts

import (
	"fmt"

	"github.com/m04kA/SMC-VenueBookingService/internal/domain"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/conflicts"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ExcludeID != nil && *req.ExcludeID <= 0 {
		return fmt.Errorf("%w: excludeID must be positive", ErrInvalidInput)
	}

	if err := conflicts.ValidateRequest(toBookingRequest(req)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

func toBookingRequest(req *Request) domain.BookingRequest {
	return domain.BookingRequest{
		VenueID:   req.VenueID,
		StartTime: req.StartTime.UTC(),
		EndTime:   req.EndTime.UTC(),
		ExcludeID: req.ExcludeID,
	}
}
