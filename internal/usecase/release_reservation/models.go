package release_reservation

import "github.com/google/uuid"

// Request модель запроса на освобождение вместимости бронирования
type Request struct {
	ReservationID uuid.UUID // Внешний идентификатор бронирования
}

// Response итог освобождения
type Response struct {
	ReservationID uuid.UUID // Идентификатор бронирования
	Released      int       // Количество освобождённых audit-записей
	Unresolved    int       // Записи, чьё место вернуть не удалось (слот удалён и т.п.)
}
