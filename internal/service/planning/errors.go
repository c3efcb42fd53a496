package planning

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в реестре
	ErrServiceNotFound = errors.New("planning.service: service not found")

	// ErrPlanningNotFound возвращается, когда календарь услуги не найден
	ErrPlanningNotFound = errors.New("planning.service: planning not found")

	// ErrPlanningExists возвращается при попытке создать второй календарь для услуги
	ErrPlanningExists = errors.New("planning.service: planning already exists")

	// ErrDuplicateDate возвращается при попытке открыть уже открытую дату
	ErrDuplicateDate = errors.New("planning.service: slot for this date already exists")

	// ErrSlotNotFound возвращается, когда на дату нет слота
	ErrSlotNotFound = errors.New("planning.service: slot not found")

	// ErrSlotHasActiveHolds возвращается при попытке закрыть дату с занятыми местами
	ErrSlotHasActiveHolds = errors.New("planning.service: slot has active holds")

	// ErrCapacityBelowReserved возвращается при попытке уменьшить вместимость
	// ниже занятых мест
	ErrCapacityBelowReserved = errors.New("planning.service: capacity below reserved count")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("planning.service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("planning.service: internal error")
)
