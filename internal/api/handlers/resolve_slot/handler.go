package resolve_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers"
	resolveSlot "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/resolve_slot"
)

const (
	msgMissingParams         = "параметры offset и date обязательны"
	msgInvalidOffset         = "некорректное смещение"
	msgInvalidParams         = "некорректные параметры запроса"
	msgRoomNotFound          = "операционная не найдена"
	msgOutsideOperatingHours = "позиция вне рабочего окна"
)

type Handler struct {
	useCase ResolveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ResolveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/slot-at
// Query params: offset (required, px от начала окна), date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]
	offsetStr := r.URL.Query().Get("offset")
	dateStr := r.URL.Query().Get("date")

	if offsetStr == "" || dateStr == "" {
		h.logger.Warn("GET /rooms/{id}/slot-at - Missing params")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	useCaseReq, err := ToUseCaseRequest(roomID, dateStr, offsetStr)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/slot-at - Invalid offset: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOffset)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveSlot.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/slot-at - Room not found: room=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, resolveSlot.ErrOutsideOperatingHours):
			h.logger.Warn("GET /rooms/{id}/slot-at - Outside operating hours: offset=%s", offsetStr)
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, resolveSlot.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/slot-at - Invalid params: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /rooms/{id}/slot-at - Failed to resolve slot: room=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/slot-at - Slot resolved: room=%s, start_time=%s", roomID, result.StartTime)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
