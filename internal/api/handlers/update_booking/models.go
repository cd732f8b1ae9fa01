package update_booking

import (
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"
	updateBooking "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/update_booking"
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// ID берётся из URL, запись заменяется целиком
func ToUseCaseRequest(id string, r *models.BookingRequest) *updateBooking.Request {
	return &updateBooking.Request{
		ID:                 id,
		RoomID:             domain.RoomID(r.RoomID),
		Date:               r.Date,
		StartTime:          r.StartTime,
		DurationMinutes:    r.DurationMinutes,
		CleanTimeMinutes:   r.CleanTimeMinutes,
		Patient:            r.DomainPatient(),
		Specialty:          r.Specialty,
		ProcedureType:      r.ProcedureType,
		Surgeon:            r.Surgeon,
		ProcedureMaterials: r.ProcedureMaterials,
		Equipment:          r.Equipment,
		NeedsRecovery:      r.NeedsRecovery,
		Observations:       r.Observations,
	}
}
