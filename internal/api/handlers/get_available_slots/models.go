package get_available_slots

import (
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	RoomID string          `json:"roomId"`
	Date   string          `json:"date"`
	Slots  []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного слота выпадающего списка
type AvailableSlot struct {
	StartTime string `json:"startTime"`
	Blocked   bool   `json:"blocked"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.StartTime.String(),
			Blocked:   slot.Blocked,
		}
	}

	return &AvailableSlotsResponse{
		RoomID: string(resp.RoomID),
		Date:   resp.Date,
		Slots:  slots,
	}
}

// ToUseCaseRequest создает запрос use case из URL и query параметров
func ToUseCaseRequest(roomID, dateStr, excludeIDStr string) *getAvailableSlots.Request {
	req := &getAvailableSlots.Request{
		RoomID: domain.RoomID(roomID),
		Date:   dateStr,
	}

	// excludeId передаётся при редактировании
	if excludeIDStr != "" {
		req.ExcludeID = &excludeIDStr
	}

	return req
}
