package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrDuplicateID возвращается при попытке добавить бронирование с уже существующим ID
	ErrDuplicateID = errors.New("booking.repository: duplicate booking id")

	// ErrMissingID возвращается при попытке сохранить бронирование без ID
	ErrMissingID = errors.New("booking.repository: booking id is required")
)
