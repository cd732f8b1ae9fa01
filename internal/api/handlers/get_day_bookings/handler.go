package get_day_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings"
)

const (
	msgMissingDate  = "не указана дата"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgRoomNotFound = "операционная не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query params: date (обязательно), roomId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	roomIDStr := r.URL.Query().Get("roomId")

	if dateStr == "" {
		h.logger.Warn("GET /bookings - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.service.ListByDate(r.Context(), ToServiceRequest(dateStr, roomIDStr))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, bookings.ErrRoomNotFound):
			h.logger.Warn("GET /bookings - Room not found: room=%s", roomIDStr)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: date=%s, count=%d",
		dateStr, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
