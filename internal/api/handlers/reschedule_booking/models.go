package reschedule_booking

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/bookings/models"
	rescheduleBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/reschedule_booking"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
	Override  bool   `json:"override,omitempty"`
}

// RescheduleBookingResponse HTTP response model
type RescheduleBookingResponse struct {
	*models.BookingResponse
	OverriddenConflicts []handlers.ConflictingBooking `json:"overriddenConflicts,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(userID, bookingID int64) (*rescheduleBooking.Request, error) {
	startTime, err := handlers.ParseInstant(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := handlers.ParseInstant(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		UserID:    userID,
		BookingID: bookingID,
		StartTime: startTime,
		EndTime:   endTime,
		Override:  r.Override,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *RescheduleBookingResponse {
	result := &RescheduleBookingResponse{
		BookingResponse: models.FromDomainBooking(resp.Booking),
	}

	if len(resp.OverriddenConflicts) > 0 {
		result.OverriddenConflicts = handlers.FromConflictingBookings(resp.OverriddenConflicts)
	}

	return result
}
