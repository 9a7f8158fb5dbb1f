package check_conflicts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/handlers"
	checkConflicts "github.com/m04kA/SMC-VenueBookingService/internal/usecase/check_conflicts"
)

const (
	msgInvalidVenueID     = "некорректный ID площадки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC 3339"
	msgInvalidInterval    = "некорректный интервал: начало должно быть раньше конца"
	msgMultiDay           = "интервал должен укладываться в один календарный день площадки"
	msgVenueNotFound      = "площадка не найдена"
	msgVenueInactive      = "площадка недоступна для бронирования"
)

type Handler struct {
	useCase CheckConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/venues/{venueId}/conflicts/check
// Проверка ничего не резервирует: результат актуален только на момент ответа
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID, err := strconv.ParseInt(mux.Vars(r)["venueId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/conflicts/check - Invalid venue ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidVenueID)
		return
	}

	var req CheckConflictsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /venues/{id}/conflicts/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(venueID)
	if err != nil {
		h.logger.Warn("POST /venues/{id}/conflicts/check - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflicts.ErrInvalidInput):
			h.logger.Warn("POST /venues/{id}/conflicts/check - Invalid input: venue_id=%d, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, checkConflicts.ErrMultiDayRequest):
			h.logger.Warn("POST /venues/{id}/conflicts/check - Multi-day request: venue_id=%d", venueID)
			handlers.RespondBadRequest(w, msgMultiDay)

		case errors.Is(err, checkConflicts.ErrVenueNotFound):
			h.logger.Warn("POST /venues/{id}/conflicts/check - Venue not found: venue_id=%d", venueID)
			handlers.RespondNotFound(w, msgVenueNotFound)

		case errors.Is(err, checkConflicts.ErrVenueInactive):
			h.logger.Warn("POST /venues/{id}/conflicts/check - Venue inactive: venue_id=%d", venueID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgVenueInactive)

		case errors.Is(err, checkConflicts.ErrDataUnavailable):
			h.logger.Error("POST /venues/{id}/conflicts/check - Bookings unavailable: venue_id=%d, error=%v", venueID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /venues/{id}/conflicts/check - Failed to check conflicts: venue_id=%d, error=%v",
				venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /venues/{id}/conflicts/check - Checked: venue_id=%d, has_conflict=%t, conflicts=%d, suggestions=%d",
		venueID, result.Result.HasConflict, len(result.Result.Conflicts), len(result.Result.SuggestedSlots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
