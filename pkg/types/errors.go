package types

import "errors"

var (
	// ErrInvalidFormat возвращается, когда строка не соответствует формату HH:MM
	ErrInvalidFormat = errors.New("types: invalid time string format")

	// ErrOutOfRange возвращается, когда количество минут выходит за пределы суток [0, 1440)
	ErrOutOfRange = errors.New("types: minutes out of day range")
)
