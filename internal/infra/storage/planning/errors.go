package planning

import "errors"

var (
	// ErrPlanningNotFound возвращается, когда календарь услуги не найден
	ErrPlanningNotFound = errors.New("planning.repository: planning not found")

	// ErrPlanningExists возвращается при попытке создать второй календарь для услуги
	ErrPlanningExists = errors.New("planning.repository: planning for this service already exists")

	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("planning.repository: slot not found")

	// ErrDuplicateDate возвращается при попытке создать второй слот на ту же дату
	ErrDuplicateDate = errors.New("planning.repository: slot for this date already exists")

	// ErrCapacityExceeded возвращается, когда условное обновление reserved_count
	// не прошло - на дату не хватает свободных мест
	ErrCapacityExceeded = errors.New("planning.repository: capacity exceeded")

	// ErrNothingReserved возвращается, когда освобождение превышает reserved_count
	ErrNothingReserved = errors.New("planning.repository: release exceeds reserved count")

	// ErrSlotHasHolds возвращается при попытке удалить слот с занятыми местами
	ErrSlotHasHolds = errors.New("planning.repository: slot has active holds")

	// ErrCapacityBelowReserved возвращается, когда условное обновление max_capacity
	// не прошло - новая вместимость меньше занятых мест
	ErrCapacityBelowReserved = errors.New("planning.repository: capacity below reserved count")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("planning.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("planning.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("planning.repository: failed to scan row")
)
