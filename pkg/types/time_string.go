package types

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const (
	// MinutesPerHour количество минут в часе
	MinutesPerHour = 60

	// MinutesPerDay количество минут в сутках, верхняя (исключённая) граница TimeString
	MinutesPerDay = 24 * MinutesPerHour
)

// timePattern два целых числа, разделённых двоеточием: часы (1-2 цифры) и минуты (2 цифры)
var timePattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// TimeString время суток в формате HH:MM (24 часа)
// Дата и часовой пояс не хранятся: используется семантика локального календарного дня
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку HH:MM и возвращает нормализованное значение
// ("8:05" -> "08:05")
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := TimeToMinutes(s)
	if err != nil {
		return "", err
	}
	return MinutesToTime(minutes)
}

// TimeToMinutes переводит HH:MM в количество минут от начала суток: hour*60 + minute
func TimeToMinutes(s string) (int, error) {
	parts := timePattern.FindStringSubmatch(s)
	if parts == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hour, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minute, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return hour*MinutesPerHour + minute, nil
}

// MinutesToTime обратное преобразование: минуты от начала суток -> HH:MM с ведущими нулями
// Значения вне [0, 1440) являются ошибкой вызывающей стороны
func MinutesToTime(minutes int) (TimeString, error) {
	if minutes < 0 || minutes >= MinutesPerDay {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, minutes)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/MinutesPerHour, minutes%MinutesPerHour)), nil
}

// Minutes возвращает количество минут от начала суток
func (t TimeString) Minutes() (int, error) {
	return TimeToMinutes(string(t))
}

// AddMinutes возвращает время, сдвинутое на n минут
// Переход через полночь считается ошибкой
func (t TimeString) AddMinutes(n int) (TimeString, error) {
	minutes, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return MinutesToTime(minutes + n)
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// String реализует fmt.Stringer
func (t TimeString) String() string {
	return string(t)
}
