package get_day_bookings

import "github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(dateStr, roomIDStr string) *models.ListByDateRequest {
	req := &models.ListByDateRequest{Date: dateStr}

	// Пустой roomId означает все операционные
	if roomIDStr != "" {
		req.RoomID = &roomIDStr
	}

	return req
}
