package planning

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-CapacityService/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникальности
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с календарями услуг и их слотами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый календарь для услуги
// На каждую услугу может существовать только один календарь (UNIQUE service_id)
func (r *Repository) Create(ctx context.Context, planning *domain.Planning) (*domain.Planning, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("plannings").
		Columns(
			"service_id",
			"label",
			"description",
			"active",
		).
		Values(
			planning.ServiceID,
			planning.Label,
			planning.Description,
			planning.Active,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&planning.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrPlanningExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	planning.CreatedAt = createdAt.Time
	planning.UpdatedAt = updatedAt.Time

	return planning, nil
}

// GetByServiceID загружает календарь услуги вместе со всеми его слотами
// Если в контексте активная транзакция, слоты блокируются FOR UPDATE -
// пре-проверка и коммит диапазонного бронирования становятся атомарными
// относительно конкурентных броней того же календаря
func (r *Repository) GetByServiceID(ctx context.Context, serviceID int64) (*domain.Planning, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"service_id",
		"label",
		"description",
		"active",
		"created_at",
		"updated_at",
	).
		From("plannings").
		Where(squirrel.Eq{"service_id": serviceID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceID - build select query: %v", ErrBuildQuery, err)
	}

	var planning domain.Planning
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&planning.ID,
		&planning.ServiceID,
		&planning.Label,
		&planning.Description,
		&planning.Active,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPlanningNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByServiceID - scan planning: %v", ErrScanRow, err)
	}

	planning.CreatedAt = createdAt.Time
	planning.UpdatedAt = updatedAt.Time

	slots, err := r.getSlotsByPlanningID(ctx, executor, planning.ID)
	if err != nil {
		return nil, err
	}
	planning.Slots = slots

	return &planning, nil
}

// SetActive включает или отключает приём новых бронирований в календаре
func (r *Repository) SetActive(ctx context.Context, planningID int64, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("plannings").
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": planningID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetActive - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPlanningNotFound
	}

	return nil
}

// CreateSlot открывает новую дату в календаре
func (r *Repository) CreateSlot(ctx context.Context, slot *domain.AvailableSlot) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("available_slots").
		Columns(
			"planning_id",
			"date",
			"max_capacity",
			"reserved_count",
		).
		Values(
			slot.PlanningID,
			slot.Date,
			slot.MaxCapacity,
			slot.ReservedCount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateSlot - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&slot.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: CreateSlot - execute insert: %v", ErrExecQuery, err)
	}

	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return slot, nil
}

// DeleteSlot закрывает дату в календаре
// Условие reserved_count = 0 закрывает гонку между проверкой в агрегате
// и физическим удалением: слот с занятыми местами удалён не будет
func (r *Repository) DeleteSlot(ctx context.Context, slotID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("available_slots").
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Eq{"reserved_count": 0}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteSlot - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// Либо слот не существует, либо в нём появились занятые места
		if _, err := r.GetSlotByID(ctx, slotID); err != nil {
			if errors.Is(err, ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		return ErrSlotHasHolds
	}

	return nil
}

// UpdateSlotCapacity изменяет максимальную вместимость слота
// Условие reserved_count <= new_max не даёт уменьшить вместимость ниже
// уже занятых мест даже при конкурентном бронировании
func (r *Repository) UpdateSlotCapacity(ctx context.Context, slotID int64, newMax int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("available_slots").
		Set("max_capacity", newMax).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.LtOrEq{"reserved_count": newMax}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateSlotCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateSlotCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetSlotByID(ctx, slotID); err != nil {
			if errors.Is(err, ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		return ErrCapacityBelowReserved
	}

	return nil
}

// ReserveSlotCapacity занимает qty мест в слоте условным обновлением:
// reserved_count увеличивается, только если не превысит max_capacity.
// Ноль затронутых строк означает нехватку мест - overbooking невозможен
// даже в обход пре-проверки агрегата
func (r *Repository) ReserveSlotCapacity(ctx context.Context, slotID int64, qty int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("available_slots").
		Set("reserved_count", squirrel.Expr("reserved_count + ?", qty)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.Expr("reserved_count + ? <= max_capacity", qty)).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReserveSlotCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveSlotCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveSlotCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrCapacityExceeded
	}

	return nil
}

// ReleaseSlotCapacity освобождает qty мест в слоте
// Условие reserved_count >= qty защищает от ухода счётчика в минус
func (r *Repository) ReleaseSlotCapacity(ctx context.Context, slotID int64, qty int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("available_slots").
		Set("reserved_count", squirrel.Expr("reserved_count - ?", qty)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": slotID}).
		Where(squirrel.GtOrEq{"reserved_count": qty}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: ReleaseSlotCapacity - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReleaseSlotCapacity - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReleaseSlotCapacity - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		if _, err := r.GetSlotByID(ctx, slotID); err != nil {
			if errors.Is(err, ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return err
		}
		return ErrNothingReserved
	}

	return nil
}

// GetSlotByID получает слот по ID
func (r *Repository) GetSlotByID(ctx context.Context, slotID int64) (*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := slotSelect().
		Where(squirrel.Eq{"id": slotID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := r.scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// GetSlotsForMonth возвращает слоты услуги, попадающие в указанный месяц,
// отсортированные по дате по возрастанию
func (r *Repository) GetSlotsForMonth(ctx context.Context, serviceID int64, year int, month time.Month) ([]*domain.AvailableSlot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.planning_id",
		"s.date",
		"s.max_capacity",
		"s.reserved_count",
		"s.created_at",
		"s.updated_at",
	).
		From("available_slots s").
		Join("plannings p ON p.id = s.planning_id").
		Where(squirrel.Eq{"p.service_id": serviceID}).
		Where(squirrel.GtOrEq{"s.date": monthStart}).
		Where(squirrel.Lt{"s.date": monthEnd}).
		OrderBy("s.date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsForMonth - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSlotsForMonth - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// getSlotsByPlanningID загружает все слоты календаря
// В транзакции добавляет FOR UPDATE - блокировка на время диапазонного бронирования
func (r *Repository) getSlotsByPlanningID(ctx context.Context, executor DBExecutor, planningID int64) ([]*domain.AvailableSlot, error) {
	selectBuilder := slotSelect().
		Where(squirrel.Eq{"planning_id": planningID}).
		OrderBy("date ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getSlotsByPlanningID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSlotsByPlanningID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

func slotSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"planning_id",
		"date",
		"max_capacity",
		"reserved_count",
		"created_at",
		"updated_at",
	).From("available_slots")
}

func (r *Repository) scanSlot(row *sql.Row) (*domain.AvailableSlot, error) {
	var slot domain.AvailableSlot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&slot.ID,
		&slot.PlanningID,
		&slot.Date,
		&slot.MaxCapacity,
		&slot.ReservedCount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	slot.Date = domain.DateOnly(slot.Date)
	slot.CreatedAt = createdAt.Time
	slot.UpdatedAt = updatedAt.Time

	return &slot, nil
}

func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.AvailableSlot, error) {
	slots := make([]*domain.AvailableSlot, 0)

	for rows.Next() {
		var slot domain.AvailableSlot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&slot.ID,
			&slot.PlanningID,
			&slot.Date,
			&slot.MaxCapacity,
			&slot.ReservedCount,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		slot.Date = domain.DateOnly(slot.Date)
		slot.CreatedAt = createdAt.Time
		slot.UpdatedAt = updatedAt.Time

		slots = append(slots, &slot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation
}
