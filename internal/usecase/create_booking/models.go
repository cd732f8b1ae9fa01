package create_booking

import "github.com/m04kA/SMC-SurgeryBoard/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	RoomID           domain.RoomID // ID операционной
	Date             string        // Дата бронирования "YYYY-MM-DD"
	StartTime        string        // Время начала "HH:MM"
	DurationMinutes  *int          // Длительность процедуры (по умолчанию из конфигурации)
	CleanTimeMinutes *int          // Время уборки (по умолчанию из конфигурации)

	// Данные карточки, сохраняются без изменений
	Patient            domain.Patient
	Specialty          string
	ProcedureType      string // "Programado" | "Urgencia", по умолчанию "Programado"
	Surgeon            string
	ProcedureMaterials string
	Equipment          []string
	NeedsRecovery      bool
	Observations       string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking
}
