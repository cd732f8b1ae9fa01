package models

import (
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
)

// Request модели

// ListByDateRequest запрос на получение бронирований на дату
type ListByDateRequest struct {
	Date   string  `json:"date"`             // "2024-05-01"
	RoomID *string `json:"roomId,omitempty"` // Фильтр по операционной (опционально)
}

// Response модели

// PatientResponse данные пациента
type PatientResponse struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DNI       string `json:"dni"`
	Insurance string `json:"insurance"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID               string `json:"id"`
	RoomID           string `json:"roomId"`
	Date             string `json:"date"`      // "2024-05-01"
	StartTime        string `json:"startTime"` // "08:00"
	EndTime          string `json:"endTime"`   // Окончание процедуры без уборки
	DurationMinutes  int    `json:"durationMinutes"`
	CleanTimeMinutes int    `json:"cleanTimeMinutes"`

	Patient            PatientResponse `json:"patient"`
	Specialty          string          `json:"specialty"`
	ProcedureType      string          `json:"procedureType"`
	Surgeon            string          `json:"surgeon"`
	ProcedureMaterials string          `json:"procedureMaterials"`
	Equipment          []string        `json:"equipment"`
	NeedsRecovery      bool            `json:"needsRecovery"`
	Observations       string          `json:"observations"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	equipment := b.Equipment
	if equipment == nil {
		equipment = []string{}
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		RoomID:             string(b.RoomID),
		Date:               b.Date,
		StartTime:          b.StartTime.String(),
		DurationMinutes:    b.DurationMinutes,
		CleanTimeMinutes:   b.CleanTimeMinutes,
		Patient:            PatientResponse(b.Patient),
		Specialty:          b.Specialty,
		ProcedureType:      string(b.ProcedureType),
		Surgeon:            b.Surgeon,
		ProcedureMaterials: b.ProcedureMaterials,
		Equipment:          equipment,
		NeedsRecovery:      b.NeedsRecovery,
		Observations:       b.Observations,
	}

	if start, err := b.StartTime.Minutes(); err == nil {
		resp.EndTime = scheduling.FormatClock(start + b.DurationMinutes)
	}

	return resp
}

// FromDomainBookings конвертирует список domain моделей в DTO
func FromDomainBookings(bookings []*domain.Booking) *BookingListResponse {
	result := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		result.Bookings = append(result.Bookings, *FromDomainBooking(b))
	}
	return result
}

// Request модели формы бронирования

// PatientRequest данные пациента в форме
type PatientRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DNI       string `json:"dni"`
	Insurance string `json:"insurance"`
}

// BookingRequest тело запроса создания и редактирования бронирования
// Не указанные durationMinutes и cleanTimeMinutes берутся из конфигурации
type BookingRequest struct {
	RoomID           string `json:"roomId"`
	Date             string `json:"date"`      // "2024-05-01"
	StartTime        string `json:"startTime"` // "08:00"
	DurationMinutes  *int   `json:"durationMinutes,omitempty"`
	CleanTimeMinutes *int   `json:"cleanTimeMinutes,omitempty"`

	Patient            PatientRequest `json:"patient"`
	Specialty          string         `json:"specialty"`
	ProcedureType      string         `json:"procedureType"`
	Surgeon            string         `json:"surgeon"`
	ProcedureMaterials string         `json:"procedureMaterials"`
	Equipment          []string       `json:"equipment"`
	NeedsRecovery      bool           `json:"needsRecovery"`
	Observations       string         `json:"observations"`
}

// DomainPatient конвертирует данные пациента в domain модель
func (r *BookingRequest) DomainPatient() domain.Patient {
	return domain.Patient(r.Patient)
}
