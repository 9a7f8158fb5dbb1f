package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidInput       = "некорректные данные бронирования"
	msgMultiDay           = "бронирование должно укладываться в один календарный день площадки"
	msgBookingInPast      = "нельзя забронировать интервал в прошлом"
	msgVenueNotFound      = "площадка не найдена"
	msgVenueInactive      = "площадка недоступна для бронирования"
	msgGroupNotFound      = "группа не найдена"
	msgConflict           = "интервал пересекается с существующими бронированиями"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Conflict: user_id=%d, venue_id=%d, conflicts=%d, suggestions=%d",
				userID, req.VenueID, len(conflictErr.Result.Conflicts), len(conflictErr.Result.SuggestedSlots))
			handlers.RespondConflict(w, msgConflict, conflictErr.Result)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrMultiDayRequest):
			h.logger.Warn("POST /bookings - Multi-day request: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgMultiDay)

		case errors.Is(err, createBooking.ErrBookingInPast):
			h.logger.Warn("POST /bookings - Booking in past: user_id=%d, venue_id=%d", userID, req.VenueID)
			handlers.RespondBadRequest(w, msgBookingInPast)

		case errors.Is(err, createBooking.ErrVenueNotFound):
			h.logger.Warn("POST /bookings - Venue not found: venue_id=%d", req.VenueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, createBooking.ErrVenueInactive):
			h.logger.Warn("POST /bookings - Venue inactive: venue_id=%d", req.VenueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgVenueInactive)

		case errors.Is(err, createBooking.ErrGroupNotFound):
			h.logger.Warn("POST /bookings - Group not found: group_id=%d", req.GroupID)
			handlers.RespondNotFound(w, msgGroupNotFound)

		case errors.Is(err, createBooking.ErrDataUnavailable):
			h.logger.Error("POST /bookings - Bookings unavailable: venue_id=%d, error=%v", req.VenueID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, venue_id=%d, error=%v",
				userID, req.VenueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, venue_id=%d, allow_overlap=%t",
		result.ID, userID, req.VenueID, result.AllowOverlap)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
