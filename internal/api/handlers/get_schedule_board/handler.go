package get_schedule_board

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers"
	getScheduleBoard "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/get_schedule_board"
)

const (
	msgMissingDate = "дата обязательна"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetScheduleBoardUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleBoardUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/board
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /board - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getScheduleBoard.Request{Date: dateStr})
	if err != nil {
		switch {
		case errors.Is(err, getScheduleBoard.ErrInvalidInput):
			h.logger.Warn("GET /board - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /board - Failed to build board: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /board - Board built successfully: date=%s, total=%d, urgent=%d",
		dateStr, result.Summary.Total, result.Summary.Urgent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
