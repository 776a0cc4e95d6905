package create_visit

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDate возвращается при некорректной дате визита (в том числе в прошлом)
	ErrInvalidDate = errors.New("invalid visit date")

	// ErrSlotOutsideVisibleHours возвращается, когда запрошенное время
	// не попадает в сетку слотов видимых часов объекта
	ErrSlotOutsideVisibleHours = errors.New("slot is outside visible hours")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят другим визитом
	ErrSlotAlreadyBooked = errors.New("slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
