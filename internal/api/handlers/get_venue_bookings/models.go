package get_venue_bookings

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(venueID int64, dateStr string, includeInactiveStr string) (*models.GetVenueBookingsRequest, error) {
	if dateStr == "" {
		return nil, errors.New("date is required")
	}

	req := &models.GetVenueBookingsRequest{
		VenueID:         venueID,
		Date:            dateStr,
		IncludeInactive: false, // По умолчанию только активные
	}

	if includeInactiveStr != "" {
		includeInactive, err := strconv.ParseBool(includeInactiveStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive value: %w", err)
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
