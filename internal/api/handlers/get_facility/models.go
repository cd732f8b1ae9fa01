package get_facility

import "github.com/m04kA/SMC-SurgeryBoard/internal/domain"

// FacilityResponse конфигурация площадки для доски и формы
type FacilityResponse struct {
	StartHour               int            `json:"startHour"`
	EndHour                 int            `json:"endHour"`
	StepMinutes             int            `json:"stepMinutes"`
	SnapMinutes             int            `json:"snapMinutes"`
	PixelsPerHour           float64        `json:"pixelsPerHour"`
	DefaultDurationMinutes  int            `json:"defaultDurationMinutes"`
	DefaultCleanTimeMinutes int            `json:"defaultCleanTimeMinutes"`
	Rooms                   []RoomResponse `json:"rooms"`
}

// RoomResponse операционная
type RoomResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FromDomainFacility конвертирует domain модель в DTO
func FromDomainFacility(f *domain.Facility) *FacilityResponse {
	rooms := make([]RoomResponse, len(f.Rooms))
	for i, r := range f.Rooms {
		rooms[i] = RoomResponse{ID: string(r.ID), Name: r.Name}
	}

	return &FacilityResponse{
		StartHour:               f.StartHour,
		EndHour:                 f.EndHour,
		StepMinutes:             f.StepMinutes,
		SnapMinutes:             f.SnapMinutes,
		PixelsPerHour:           f.PixelsPerHour,
		DefaultDurationMinutes:  f.DefaultDurationMinutes,
		DefaultCleanTimeMinutes: f.DefaultCleanTimeMinutes,
		Rooms:                   rooms,
	}
}
