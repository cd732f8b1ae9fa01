package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgRoomNotFound          = "операционная не найдена"
	msgOutsideOperatingHours = "время начала вне рабочего окна"
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
	var req models.BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(&req))
	if err != nil {
		var conflictErr *createBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Conflict: room=%s, date=%s, conflicts=%d",
				req.RoomID, req.Date, len(conflictErr.Conflicts))
			handlers.RespondConflict(w, conflictErr.Error(), models.FromDomainBookings(conflictErr.Conflicts).Bookings)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: start_time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, room=%s",
		result.Booking.ID, result.Booking.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(result.Booking))
}
