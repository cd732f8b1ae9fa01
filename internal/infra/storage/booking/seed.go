package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
)

// DemoBookings две демонстрационные записи доски на дату date
func DemoBookings(date string) []*domain.Booking {
	return []*domain.Booking{
		{
			ID:               uuid.NewString(),
			RoomID:           domain.RoomQ1,
			Date:             date,
			StartTime:        "08:00",
			DurationMinutes:  90,
			CleanTimeMinutes: 30,
			Patient: domain.Patient{
				FirstName: "Roberto",
				LastName:  "Gomez",
				Insurance: "OSDE",
			},
			Specialty:          "Traumatología",
			ProcedureType:      domain.ProcedureScheduled,
			Surgeon:            "Dr. Martinez",
			ProcedureMaterials: "Clavos femorales",
			Equipment:          []string{"Arco en C"},
			NeedsRecovery:      true,
			Observations:       "Paciente alérgico al iodo",
		},
		{
			ID:               uuid.NewString(),
			RoomID:           domain.RoomQ3,
			Date:             date,
			StartTime:        "10:00",
			DurationMinutes:  60,
			CleanTimeMinutes: 15,
			Patient: domain.Patient{
				FirstName: "Maria",
				LastName:  "Lopez",
				Insurance: "Galeno",
			},
			Specialty:     "Cirugía General",
			ProcedureType: domain.ProcedureUrgent,
			Surgeon:       "Dra. Fernandez",
			Equipment:     []string{"Torre de Laparoscopía"},
			NeedsRecovery: true,
		},
	}
}

// Seed добавляет записи в рабочий набор в переданном порядке
func (r *Repository) Seed(ctx context.Context, bookings []*domain.Booking) error {
	for _, b := range bookings {
		if _, err := r.Create(ctx, b); err != nil {
			return fmt.Errorf("seed booking id=%s: %w", b.ID, err)
		}
	}
	return nil
}
