package get_available_slots

import "github.com/m04kA/SMC-SurgeryBoard/internal/domain"

// Request модель запроса на получение слотов выпадающего списка
type Request struct {
	RoomID    domain.RoomID // ID операционной
	Date      string        // Дата "YYYY-MM-DD"
	ExcludeID *string       // ID редактируемого бронирования (опционально)
}

// Response модель ответа со списком слотов
type Response struct {
	RoomID domain.RoomID
	Date   string
	Slots  []domain.Slot // Все кандидаты окна, занятые помечены Blocked
}
