package resolve_slot

import (
	"strconv"

	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	resolveSlot "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/resolve_slot"
)

// SlotAtResponse HTTP response model
type SlotAtResponse struct {
	RoomID    string `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Blocked   bool   `json:"blocked"`
}

// ToUseCaseRequest создает запрос use case из URL и query параметров
func ToUseCaseRequest(roomID, dateStr, offsetStr string) (*resolveSlot.Request, error) {
	offset, err := strconv.ParseFloat(offsetStr, 64)
	if err != nil {
		return nil, err
	}

	return &resolveSlot.Request{
		RoomID: domain.RoomID(roomID),
		Date:   dateStr,
		Offset: offset,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *resolveSlot.Response) *SlotAtResponse {
	return &SlotAtResponse{
		RoomID:    string(resp.RoomID),
		Date:      resp.Date,
		StartTime: resp.StartTime.String(),
		Blocked:   resp.Blocked,
	}
}
