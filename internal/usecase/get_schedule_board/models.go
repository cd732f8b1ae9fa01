package get_schedule_board

import (
	"github.com/m04kA/SMC-SurgeryBoard/internal/domain"
	"github.com/m04kA/SMC-SurgeryBoard/internal/scheduling"
)

// Request модель запроса доски на дату
type Request struct {
	Date string // Дата "YYYY-MM-DD"
}

// Response модель доски: колонки операционных, шкала времени и сводка
type Response struct {
	Date          string
	StartHour     int
	EndHour       int
	PixelsPerHour float64
	TotalHeight   float64
	TimeAxis      []HourMark
	Columns       []Column
	Summary       Summary
}

// HourMark отметка часа на шкале времени
type HourMark struct {
	Label string  // "07:00"
	Top   float64 // Смещение от начала окна
}

// Column колонка одной операционной
type Column struct {
	Room             domain.Room
	OccupancyPercent int
	HighOccupancy    bool // Загрузка выше порога подсветки
	Blocks           []scheduling.Block
}

// Summary сводка по дате для заголовка доски
type Summary struct {
	Total  int // Всего бронирований на дату
	Urgent int // Из них срочных
}
