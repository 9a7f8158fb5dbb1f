package create_booking

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	VenueID   int64   `json:"venueId"`
	GroupID   int64   `json:"groupId"`
	Title     string  `json:"title"`
	StartTime string  `json:"startTime"` // RFC 3339, "2025-10-15T10:00:00+03:00"
	EndTime   string  `json:"endTime"`   // RFC 3339
	Notes     *string `json:"notes,omitempty"`
	Override  bool    `json:"override,omitempty"` // Создать несмотря на конфликты
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                  int64                         `json:"id"`
	VenueID             int64                         `json:"venueId"`
	GroupID             int64                         `json:"groupId"`
	GroupName           string                        `json:"groupName"`
	Title               string                        `json:"title"`
	StartTime           string                        `json:"startTime"`
	EndTime             string                        `json:"endTime"`
	Status              string                        `json:"status"`
	AllowOverlap        bool                          `json:"allowOverlap"`
	CreatedBy           int64                         `json:"createdBy"`
	Notes               *string                       `json:"notes,omitempty"`
	OverriddenConflicts []handlers.ConflictingBooking `json:"overriddenConflicts,omitempty"`
	CreatedAt           string                        `json:"createdAt"`
	UpdatedAt           string                        `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	startTime, err := handlers.ParseInstant(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := handlers.ParseInstant(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    userID,
		VenueID:   r.VenueID,
		GroupID:   r.GroupID,
		Title:     r.Title,
		StartTime: startTime,
		EndTime:   endTime,
		Notes:     r.Notes,
		Override:  r.Override,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	result := &BookingResponse{
		ID:           resp.ID,
		VenueID:      resp.VenueID,
		GroupID:      resp.GroupID,
		GroupName:    resp.GroupName,
		Title:        resp.Title,
		StartTime:    handlers.FormatInstant(resp.StartTime),
		EndTime:      handlers.FormatInstant(resp.EndTime),
		Status:       resp.Status,
		AllowOverlap: resp.AllowOverlap,
		CreatedBy:    resp.CreatedBy,
		Notes:        resp.Notes,
		CreatedAt:    handlers.FormatInstant(resp.CreatedAt),
		UpdatedAt:    handlers.FormatInstant(resp.UpdatedAt),
	}

	if len(resp.OverriddenConflicts) > 0 {
		result.OverriddenConflicts = handlers.FromConflictingBookings(resp.OverriddenConflicts)
	}

	return result
}
