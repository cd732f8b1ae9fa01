package get_available_slots

import "errors"

var (
	// ErrRoomNotFound возвращается, когда операционная не входит в конфигурацию
	ErrRoomNotFound = errors.New("get_available_slots: room not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
