package reserve_range

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на диапазонное бронирование
type Request struct {
	ReservationID uuid.UUID  // Внешний идентификатор бронирования
	ServiceID     int64      // ID услуги
	StartDate     time.Time  // Первая дата диапазона
	EndDate       *time.Time // Последняя дата диапазона (опционально, nil = однодневное бронирование)
	Quantity      int        // Количество мест на каждую дату (0 = по умолчанию 1)
}

// ReservedDate одна удержанная дата бронирования
type ReservedDate struct {
	Date            time.Time // Дата
	AvailableSlotID int64     // ID слота вместимости
}

// Response модель ответа с удержанными датами
type Response struct {
	ReservationID uuid.UUID      // Идентификатор бронирования
	ServiceID     int64          // ID услуги
	StartDate     time.Time      // Первая дата диапазона
	EndDate       time.Time      // Последняя дата диапазона
	Quantity      int            // Количество мест на каждую дату
	Dates         []ReservedDate // Все удержанные даты в порядке возрастания
	ReservedAt    time.Time      // Момент удержания
}
