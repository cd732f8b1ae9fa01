package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, facility *domain.Facility) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if !facility.HasRoom(req.RoomID) {
		return fmt.Errorf("%w: roomId=%s", ErrRoomNotFound, req.RoomID)
	}

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD, got %q", ErrInvalidInput, req.Date)
	}

	return nil
}
