package get_schedule_board

import (
	"github.com/m04kA/SMC-SurgeryBoard/internal/service/bookings/models"
	getScheduleBoard "github.com/m04kA/SMC-SurgeryBoard/internal/usecase/get_schedule_board"
)

// BoardResponse HTTP response model
type BoardResponse struct {
	Date          string           `json:"date"`
	StartHour     int              `json:"startHour"`
	EndHour       int              `json:"endHour"`
	PixelsPerHour float64          `json:"pixelsPerHour"`
	TotalHeight   float64          `json:"totalHeight"`
	TimeAxis      []HourMark       `json:"timeAxis"`
	Columns       []ColumnResponse `json:"columns"`
	Summary       SummaryResponse  `json:"summary"`
}

// HourMark отметка часа
type HourMark struct {
	Label string  `json:"label"`
	Top   float64 `json:"top"`
}

// ColumnResponse колонка операционной
type ColumnResponse struct {
	RoomID           string          `json:"roomId"`
	RoomName         string          `json:"roomName"`
	OccupancyPercent int             `json:"occupancyPercent"`
	HighOccupancy    bool            `json:"highOccupancy"`
	Blocks           []BlockResponse `json:"blocks"`
}

// BlockResponse полоса процедуры и, при наличии, полоса уборки
type BlockResponse struct {
	Booking  models.BookingResponse `json:"booking"`
	Top      float64                `json:"top"`
	Height   float64                `json:"height"`
	Cleaning *BandResponse          `json:"cleaning,omitempty"`
}

// BandResponse положение полосы на сетке
type BandResponse struct {
	Top    float64 `json:"top"`
	Height float64 `json:"height"`
}

// SummaryResponse сводка по дате
type SummaryResponse struct {
	Total  int `json:"total"`
	Urgent int `json:"urgent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getScheduleBoard.Response) *BoardResponse {
	axis := make([]HourMark, len(resp.TimeAxis))
	for i, m := range resp.TimeAxis {
		axis[i] = HourMark{Label: m.Label, Top: m.Top}
	}

	columns := make([]ColumnResponse, len(resp.Columns))
	for i, c := range resp.Columns {
		blocks := make([]BlockResponse, len(c.Blocks))
		for j, b := range c.Blocks {
			blocks[j] = BlockResponse{
				Booking: *models.FromDomainBooking(b.Booking),
				Top:     b.Top,
				Height:  b.Height,
			}
			if b.HasCleaning {
				blocks[j].Cleaning = &BandResponse{Top: b.CleanTop, Height: b.CleanHeight}
			}
		}

		columns[i] = ColumnResponse{
			RoomID:           string(c.Room.ID),
			RoomName:         c.Room.Name,
			OccupancyPercent: c.OccupancyPercent,
			HighOccupancy:    c.HighOccupancy,
			Blocks:           blocks,
		}
	}

	return &BoardResponse{
		Date:          resp.Date,
		StartHour:     resp.StartHour,
		EndHour:       resp.EndHour,
		PixelsPerHour: resp.PixelsPerHour,
		TotalHeight:   resp.TotalHeight,
		TimeAxis:      axis,
		Columns:       columns,
		Summary:       SummaryResponse{Total: resp.Summary.Total, Urgent: resp.Summary.Urgent},
	}
}
