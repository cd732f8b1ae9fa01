package resolve_slot

import "errors"

var (
	// ErrRoomNotFound возвращается, когда операционная не входит в конфигурацию
	ErrRoomNotFound = errors.New("resolve_slot: room not found")

	// ErrOutsideOperatingHours возвращается, когда клик ниже конца рабочего окна
	ErrOutsideOperatingHours = errors.New("resolve_slot: position is outside operating hours")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("resolve_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("resolve_slot: internal error")
)
