package get_facility

import (
	"net/http"

	"github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

type Handler struct {
	response *FacilityResponse
	logger   Logger
}

// NewHandler конфигурация площадки неизменна за время работы процесса
func NewHandler(facility *domain.Facility, logger Logger) *Handler {
	return &Handler{
		response: FromDomainFacility(facility),
		logger:   logger,
	}
}

// Handle GET /api/v1/facility
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.logger.Info("GET /facility - Facility retrieved: rooms=%d", len(h.response.Rooms))
	handlers.RespondJSON(w, http.StatusOK, h.response)
}
