package resolve_slot

import (
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/pkg/types"
)

// Request модель запроса: клик по колонке операционной
type Request struct {
	RoomID domain.RoomID // ID операционной
	Date   string        // Дата "YYYY-MM-DD"
	Offset float64       // Вертикальное смещение клика от начала окна
}

// Response модель ответа: время начала для предзаполнения формы
type Response struct {
	RoomID    domain.RoomID
	Date      string
	StartTime types.TimeString
	Blocked   bool // Момент начала уже занят (мгновенная проверка)
}
