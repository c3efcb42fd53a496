package release_reservation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

// fakePlanningRepo хранит счётчики занятых мест по слотам
type fakePlanningRepo struct {
	reserved map[int64]int // slotID -> reservedCount; отсутствие ключа = слот удалён
	errs     map[int64]error
	calls    []int64
}

func (f *fakePlanningRepo) ReleaseSlotCapacity(ctx context.Context, slotID int64, qty int) error {
	f.calls = append(f.calls, slotID)

	if err, ok := f.errs[slotID]; ok {
		return err
	}

	count, ok := f.reserved[slotID]
	if !ok {
		return planningRepo.ErrSlotNotFound
	}
	if count < qty {
		return planningRepo.ErrNothingReserved
	}
	f.reserved[slotID] = count - qty
	return nil
}

type fakeAuditRepo struct {
	rows    []*domain.ReservationSlot
	loadErr error
	markErr map[int64]error
}

func (f *fakeAuditRepo) GetActiveByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*domain.ReservationSlot, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}

	active := make([]*domain.ReservationSlot, 0)
	for _, row := range f.rows {
		if row.ReservationID == reservationID && row.IsActive() {
			active = append(active, row)
		}
	}
	return active, nil
}

func (f *fakeAuditRepo) MarkReleased(ctx context.Context, id int64, releasedAt time.Time) (bool, error) {
	if err, ok := f.markErr[id]; ok {
		return false, err
	}

	for _, row := range f.rows {
		if row.ID != id {
			continue
		}
		if !row.IsActive() {
			return false, nil
		}
		row.ReleasedAt = &releasedAt
		return true, nil
	}
	return false, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func newTestUseCase(repo *fakePlanningRepo, audit *fakeAuditRepo) *UseCase {
	uc := NewUseCase(repo, audit, passthroughTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func auditRow(id int64, reservationID uuid.UUID, slotID int64) *domain.ReservationSlot {
	row := domain.NewReservationSlot(reservationID, slotID, testNow.Add(-time.Hour))
	row.ID = id
	return row
}

func TestUseCase_Execute_ReleasesAllHolds(t *testing.T) {
	reservationID := uuid.New()

	repo := &fakePlanningRepo{reserved: map[int64]int{1: 2, 2: 1, 3: 1}}
	audit := &fakeAuditRepo{rows: []*domain.ReservationSlot{
		auditRow(10, reservationID, 1),
		auditRow(11, reservationID, 2),
		auditRow(12, reservationID, 3),
	}}
	uc := newTestUseCase(repo, audit)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: reservationID})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Released)
	assert.Equal(t, 0, resp.Unresolved)

	// Счётчики слотов уменьшены, записи проштампованы
	assert.Equal(t, map[int64]int{1: 1, 2: 0, 3: 0}, repo.reserved)
	for _, row := range audit.rows {
		assert.False(t, row.IsActive())
		assert.Equal(t, testNow, *row.ReleasedAt)
	}
}

func TestUseCase_Execute_SecondCallIsNoop(t *testing.T) {
	reservationID := uuid.New()

	repo := &fakePlanningRepo{reserved: map[int64]int{1: 1}}
	audit := &fakeAuditRepo{rows: []*domain.ReservationSlot{auditRow(10, reservationID, 1)}}
	uc := newTestUseCase(repo, audit)

	first, err := uc.Execute(context.Background(), &Request{ReservationID: reservationID})
	require.NoError(t, err)
	require.Equal(t, 1, first.Released)

	second, err := uc.Execute(context.Background(), &Request{ReservationID: reservationID})
	require.NoError(t, err)

	assert.Equal(t, 0, second.Released)
	assert.Equal(t, 0, second.Unresolved)

	// Счётчик не уменьшен второй раз
	assert.Equal(t, 0, repo.reserved[1])
}

func TestUseCase_Execute_UnknownReservationIsNoop(t *testing.T) {
	repo := &fakePlanningRepo{reserved: map[int64]int{}}
	uc := newTestUseCase(repo, &fakeAuditRepo{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: uuid.New()})
	require.NoError(t, err)

	assert.Equal(t, 0, resp.Released)
	assert.Empty(t, repo.calls)
}

func TestUseCase_Execute_MissingSlotStillClosesRow(t *testing.T) {
	reservationID := uuid.New()

	// Слот 2 удалён из календаря, вернуть место некуда
	repo := &fakePlanningRepo{reserved: map[int64]int{1: 1}}
	audit := &fakeAuditRepo{rows: []*domain.ReservationSlot{
		auditRow(10, reservationID, 1),
		auditRow(11, reservationID, 2),
	}}
	uc := newTestUseCase(repo, audit)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: reservationID})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Released)
	assert.Equal(t, 1, resp.Unresolved)

	// Обе записи закрыты - активная запись без слота была бы вечной утечкой
	for _, row := range audit.rows {
		assert.False(t, row.IsActive())
	}
}

func TestUseCase_Execute_RowFailureDoesNotBlockOthers(t *testing.T) {
	reservationID := uuid.New()

	repo := &fakePlanningRepo{reserved: map[int64]int{1: 1, 2: 1}}
	audit := &fakeAuditRepo{
		rows: []*domain.ReservationSlot{
			auditRow(10, reservationID, 1),
			auditRow(11, reservationID, 2),
		},
		markErr: map[int64]error{10: errors.New("db down")},
	}
	uc := newTestUseCase(repo, audit)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: reservationID})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Released)
	assert.Equal(t, 1, resp.Unresolved)

	// Проблемная запись осталась активной на сверку, вторая освобождена
	assert.True(t, audit.rows[0].IsActive())
	assert.False(t, audit.rows[1].IsActive())
	assert.Equal(t, 1, repo.reserved[1])
	assert.Equal(t, 0, repo.reserved[2])
}

func TestUseCase_Execute_LoadFailure(t *testing.T) {
	audit := &fakeAuditRepo{loadErr: errors.New("db down")}
	uc := newTestUseCase(&fakePlanningRepo{}, audit)

	_, err := uc.Execute(context.Background(), &Request{ReservationID: uuid.New()})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_MissingReservationID(t *testing.T) {
	uc := newTestUseCase(&fakePlanningRepo{}, &fakeAuditRepo{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
