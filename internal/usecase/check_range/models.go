package check_range

import "time"

// Request модель запроса проверки доступности диапазона
type Request struct {
	ServiceID int64      // ID услуги
	StartDate time.Time  // Первая дата диапазона
	EndDate   *time.Time // Последняя дата диапазона (опционально, nil = один день)
	Quantity  int        // Количество мест на каждую дату (0 = по умолчанию 1)
}

// Response результат проверки
type Response struct {
	ServiceID        int64       // ID услуги
	StartDate        time.Time   // Первая дата диапазона
	EndDate          time.Time   // Последняя дата диапазона
	Quantity         int         // Проверенное количество мест
	Available        bool        // true, если весь диапазон доступен
	ConflictingDates []time.Time // Недоступные даты (пусто при Available = true)
}
