package update_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SurgeryBoard/internal/api/handlers"
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/update_booking"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgNotFound              = "бронирование не найдено"
	msgRoomNotFound          = "операционная не найдена"
	msgOutsideOperatingHours = "время начала вне рабочего окна"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req models.BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(bookingID, &req))
	if err != nil {
		var conflictErr *updateBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("PUT /bookings/{id} - Conflict: booking_id=%s, conflicts=%d",
				bookingID, len(conflictErr.Conflicts))
			handlers.RespondConflict(w, conflictErr.Error(), models.FromDomainBookings(conflictErr.Conflicts).Bookings)

		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateBooking.ErrRoomNotFound):
			h.logger.Warn("PUT /bookings/{id} - Room not found: room=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, updateBooking.ErrOutsideOperatingHours):
			h.logger.Warn("PUT /bookings/{id} - Outside operating hours: start_time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgOutsideOperatingHours)

		case errors.Is(err, updateBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s", result.Booking.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(result.Booking))
}
