package reschedule_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	rescheduleBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidInterval    = "некорректный интервал: начало должно быть раньше конца"
	msgMultiDay           = "бронирование должно укладываться в один календарный день площадки"
	msgBookingInPast      = "нельзя перенести бронирование в прошлое"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "перенести бронирование может только его автор"
	msgCannotReschedule   = "отмененное бронирование нельзя перенести"
	msgVenueNotFound      = "площадка не найдена"
	msgVenueInactive      = "площадка недоступна для бронирования"
	msgConflict           = "новый интервал пересекается с существующими бронированиями"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/time - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /bookings/{id}/time - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id}/time - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *rescheduleBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /bookings/{id}/time - Conflict: booking_id=%d, conflicts=%d, suggestions=%d",
				bookingID, len(conflictErr.Result.Conflicts), len(conflictErr.Result.SuggestedSlots))
			handlers.RespondConflict(w, msgConflict, conflictErr.Result)

		case errors.Is(err, rescheduleBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id}/time - Invalid input: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, rescheduleBooking.ErrMultiDayRequest):
			h.logger.Warn("PUT /bookings/{id}/time - Multi-day request: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgMultiDay)

		case errors.Is(err, rescheduleBooking.ErrBookingInPast):
			h.logger.Warn("PUT /bookings/{id}/time - Booking in past: booking_id=%d", bookingID)
			handlers.RespondBadRequest(w, msgBookingInPast)

		case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id}/time - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleBooking.ErrAccessDenied):
			h.logger.Warn("PUT /bookings/{id}/time - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
			h.logger.Warn("PUT /bookings/{id}/time - Cannot reschedule: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgCannotReschedule)

		case errors.Is(err, rescheduleBooking.ErrVenueNotFound):
			h.logger.Warn("PUT /bookings/{id}/time - Venue not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, rescheduleBooking.ErrVenueInactive):
			h.logger.Warn("PUT /bookings/{id}/time - Venue inactive: booking_id=%d", bookingID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgVenueInactive)

		case errors.Is(err, rescheduleBooking.ErrDataUnavailable):
			h.logger.Error("PUT /bookings/{id}/time - Bookings unavailable: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PUT /bookings/{id}/time - Failed to reschedule booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id}/time - Booking rescheduled successfully: booking_id=%d, user_id=%d, allow_overlap=%t",
		bookingID, userID, result.Booking.AllowOverlap)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
