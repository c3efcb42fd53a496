package domain

import "errors"

var (
	// ErrInvalidQuantity возвращается при неположительном количестве мест
	ErrInvalidQuantity = errors.New("domain: quantity must be positive")

	// ErrInvalidCapacity возвращается при неположительной вместимости слота
	ErrInvalidCapacity = errors.New("domain: capacity must be positive")

	// ErrInsufficientCapacity возвращается, когда на дату не хватает свободных мест
	// или дата уже в прошлом
	ErrInsufficientCapacity = errors.New("domain: insufficient capacity")

	// ErrOverRelease возвращается при попытке освободить больше мест, чем занято
	ErrOverRelease = errors.New("domain: release exceeds reserved count")

	// ErrDuplicateDate возвращается при попытке добавить второй слот на ту же дату
	ErrDuplicateDate = errors.New("domain: slot for this date already exists")

	// ErrSlotNotFound возвращается, когда в календаре нет слота на указанную дату
	ErrSlotNotFound = errors.New("domain: no slot for this date")

	// ErrSlotHasActiveHolds возвращается при попытке удалить слот с занятыми местами
	ErrSlotHasActiveHolds = errors.New("domain: slot has active holds")

	// ErrCapacityBelowReserved возвращается при попытке уменьшить вместимость
	// ниже текущего количества занятых мест
	ErrCapacityBelowReserved = errors.New("domain: capacity below reserved count")
)
