package get_reservation

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса состояния бронирования
type Request struct {
	ReservationID uuid.UUID // Внешний идентификатор бронирования
}

// Hold одно место, занятое бронированием
type Hold struct {
	AvailableSlotID int64      // ID слота вместимости
	ReservedAt      time.Time  // Момент удержания
	ReleasedAt      *time.Time // nil = место всё ещё занято
}

// Response состояние всех мест бронирования, включая освобождённые
type Response struct {
	ReservationID uuid.UUID // Идентификатор бронирования
	Holds         []Hold    // Все записи бронирования в порядке создания
	Active        int       // Количество ещё занятых мест
}
