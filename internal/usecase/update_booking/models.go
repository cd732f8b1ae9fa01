package update_booking

import "github.com/m04kA/SMC-SurgeryBoard/internal/domain"

// Request модель запроса на полную замену бронирования
type Request struct {
	ID               string        // ID редактируемого бронирования
	RoomID           domain.RoomID // ID операционной (можно перенести в другую)
	Date             string        // Дата бронирования "YYYY-MM-DD"
	StartTime        string        // Время начала "HH:MM"
	DurationMinutes  *int          // Длительность процедуры (по умолчанию из конфигурации)
	CleanTimeMinutes *int          // Время уборки (по умолчанию из конфигурации)

	Patient            domain.Patient
	Specialty          string
	ProcedureType      string
	Surgeon            string
	ProcedureMaterials string
	Equipment          []string
	NeedsRecovery      bool
	Observations       string
}

// Response модель ответа с обновлённым бронированием
type Response struct {
	Booking *domain.Booking
}
