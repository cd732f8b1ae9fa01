package create_booking

import (
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/create_booking"
)

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func ToUseCaseRequest(r *models.BookingRequest) *createBooking.Request {
	return &createBooking.Request{
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
