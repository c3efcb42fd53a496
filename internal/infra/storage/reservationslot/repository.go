package reservationslot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

// Repository репозиторий для работы с audit-записями занятых мест
// Записи создаются при бронировании, помечаются released_at при отмене
// и никогда не удаляются физически
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория audit-записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает audit-записи для всех дат одного бронирования
// Вызывается в транзакции коммита диапазонного бронирования - записи
// и счётчики слотов сохраняются как единое целое
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.ReservationSlot) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("reservation_slots").
		Columns(
			"reservation_id",
			"available_slot_id",
			"reserved_at",
		)

	for _, rs := range slots {
		insertBuilder = insertBuilder.Values(
			rs.ReservationID,
			rs.AvailableSlotID,
			rs.ReservedAt,
		)
	}

	query, args, err := insertBuilder.
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateLink
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// RETURNING id отдаёт идентификаторы в порядке вставки
	i := 0
	for rows.Next() {
		if i >= len(slots) {
			break
		}
		if err := rows.Scan(&slots[i].ID); err != nil {
			return fmt.Errorf("%w: CreateBatch - scan id: %v", ErrScanRow, err)
		}
		i++
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: CreateBatch - rows error: %v", ErrScanRow, err)
	}

	return nil
}

// GetActiveByReservationID возвращает все ещё не освобождённые записи бронирования
func (r *Repository) GetActiveByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.ReservationSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"available_slot_id",
		"reserved_at",
		"released_at",
	).
		From("reservation_slots").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		Where(squirrel.Eq{"released_at": nil}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByReservationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// GetByReservationID возвращает все записи бронирования, включая освобождённые
// Используется для аудита и сверки
func (r *Repository) GetByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.ReservationSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"available_slot_id",
		"reserved_at",
		"released_at",
	).
		From("reservation_slots").
		Where(squirrel.Eq{"reservation_id": reservationID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByReservationID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// MarkReleased проставляет released_at на ещё активной записи
// Условие released_at IS NULL делает операцию идемпотентной: повторное
// освобождение возвращает false и не трогает уже проставленный штамп
func (r *Repository) MarkReleased(ctx context.Context, id int64, releasedAt time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservation_slots").
		Set("released_at", releasedAt).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"released_at": nil}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: MarkReleased - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: MarkReleased - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: MarkReleased - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

func (r *Repository) scanRows(rows *sql.Rows) ([]*domain.ReservationSlot, error) {
	result := make([]*domain.ReservationSlot, 0)

	for rows.Next() {
		var rs domain.ReservationSlot
		var releasedAt sql.NullTime

		err := rows.Scan(
			&rs.ID,
			&rs.ReservationID,
			&rs.AvailableSlotID,
			&rs.ReservedAt,
			&releasedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRows - scan row: %v", ErrScanRow, err)
		}

		if releasedAt.Valid {
			rs.ReleasedAt = &releasedAt.Time
		}

		result = append(result, &rs)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRows - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
