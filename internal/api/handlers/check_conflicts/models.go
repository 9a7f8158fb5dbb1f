package check_conflicts

import (
	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	checkConflicts "github.com/m04kA/SMC-VenueBookingService/internal/usecase/check_conflicts"
)

// CheckConflictsRequest HTTP request model
type CheckConflictsRequest struct {
	StartTime string `json:"startTime"` // RFC 3339
	EndTime   string `json:"endTime"`   // RFC 3339
	ExcludeID *int64 `json:"excludeId,omitempty"`
}

// WindowResponse рабочее окно дня площадки
type WindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// CheckConflictsResponse HTTP response model
type CheckConflictsResponse struct {
	VenueID int64          `json:"venueId"`
	Window  WindowResponse `json:"window"`
	handlers.ConflictResultResponse
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckConflictsRequest) ToUseCaseRequest(venueID int64) (*checkConflicts.Request, error) {
	startTime, err := handlers.ParseInstant(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := handlers.ParseInstant(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &checkConflicts.Request{
		VenueID:   venueID,
		StartTime: startTime,
		EndTime:   endTime,
		ExcludeID: r.ExcludeID,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflicts.Response) *CheckConflictsResponse {
	return &CheckConflictsResponse{
		VenueID: resp.VenueID,
		Window: WindowResponse{
			StartTime: handlers.FormatInstant(resp.Window.Start),
			EndTime:   handlers.FormatInstant(resp.Window.End),
		},
		ConflictResultResponse: handlers.FromConflictResult(resp.Result),
	}
}
