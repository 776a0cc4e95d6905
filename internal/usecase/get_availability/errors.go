package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("invalid availability date")

	// ErrInvalidWindow возвращается, когда окно видимых часов некорректно
	// (начало не раньше конца)
	ErrInvalidWindow = errors.New("invalid visible hours window")

	// ErrInvalidSlotDuration возвращается при недопустимой длительности слота
	ErrInvalidSlotDuration = errors.New("invalid slot duration")

	// ErrSourceNotConfigured возвращается, когда внешний источник привязан
	// к объекту, но адаптер не сконфигурирован в production
	ErrSourceNotConfigured = errors.New("external calendar source is not configured")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
