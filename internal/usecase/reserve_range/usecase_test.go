package reserve_range

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
	"github.com/m04kA/SMC-CapacityService/pkg/ptr"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testDate(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

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

// fakePlanningRepo in-memory репозиторий: GetByServiceID отдаёт копию
// состояния (как чтение из БД), ReserveSlotCapacity применяет условный
// инкремент к общему состоянию
type fakePlanningRepo struct {
	mu       sync.Mutex
	planning *domain.Planning
	getErr   error
}

func (f *fakePlanningRepo) GetByServiceID(ctx context.Context, serviceID int64) (*domain.Planning, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.planning == nil || f.planning.ServiceID != serviceID {
		return nil, planningRepo.ErrPlanningNotFound
	}

	snapshot := *f.planning
	snapshot.Slots = make([]*domain.AvailableSlot, len(f.planning.Slots))
	for i, slot := range f.planning.Slots {
		copied := *slot
		snapshot.Slots[i] = &copied
	}
	return &snapshot, nil
}

func (f *fakePlanningRepo) ReserveSlotCapacity(ctx context.Context, slotID int64, qty int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, slot := range f.planning.Slots {
		if slot.ID != slotID {
			continue
		}
		if slot.ReservedCount+qty > slot.MaxCapacity {
			return planningRepo.ErrCapacityExceeded
		}
		slot.ReservedCount += qty
		return nil
	}
	return planningRepo.ErrSlotNotFound
}

func (f *fakePlanningRepo) reservedCount(slotID int64) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, slot := range f.planning.Slots {
		if slot.ID == slotID {
			return slot.ReservedCount
		}
	}
	return -1
}

type fakeAuditRepo struct {
	mu      sync.Mutex
	batches [][]*domain.ReservationSlot
	err     error
}

func (f *fakeAuditRepo) CreateBatch(ctx context.Context, slots []*domain.ReservationSlot) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return f.err
	}
	f.batches = append(f.batches, slots)
	return nil
}

func (f *fakeAuditRepo) totalRows() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	total := 0
	for _, b := range f.batches {
		total += len(b)
	}
	return total
}

// fakeTxManager сериализует транзакции мьютексом - модель SERIALIZABLE
// изоляции для конкурентных тестов
type fakeTxManager struct {
	mu sync.Mutex
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(ctx)
}

func newTestPlanning(slotCapacities map[int]int) *domain.Planning {
	planning := domain.NewPlanning(42, "Детейлинг", ptr.Ptr("Полировка кузова"), testNow)
	planning.ID = 1

	var nextID int64 = 1
	for day := 1; day <= 30; day++ {
		capacity, ok := slotCapacities[day]
		if !ok {
			continue
		}
		slot, err := planning.AddSlot(testDate(day), capacity, testNow)
		if err != nil {
			panic(fmt.Sprintf("test planning setup: %v", err))
		}
		slot.ID = nextID
		nextID++
	}
	return planning
}

func newTestUseCase(repo *fakePlanningRepo, audit *fakeAuditRepo) *UseCase {
	uc := NewUseCase(repo, audit, &fakeTxManager{}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_ReservesWholeRange(t *testing.T) {
	repo := &fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 5, 11: 5, 12: 5})}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(repo, audit)

	reservationID := uuid.New()
	endDate := testDate(12)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: reservationID,
		ServiceID:     42,
		StartDate:     testDate(10),
		EndDate:       &endDate,
		Quantity:      2,
	})
	require.NoError(t, err)

	assert.Equal(t, reservationID, resp.ReservationID)
	assert.Equal(t, 2, resp.Quantity)
	require.Len(t, resp.Dates, 3)
	assert.Equal(t, testDate(10), resp.Dates[0].Date)
	assert.Equal(t, testDate(12), resp.Dates[2].Date)

	// Места удержаны на каждую дату, audit-записи созданы одним батчем
	for _, d := range resp.Dates {
		assert.Equal(t, 2, repo.reservedCount(d.AvailableSlotID))
	}
	require.Len(t, audit.batches, 1)
	assert.Len(t, audit.batches[0], 3)
}

func TestUseCase_Execute_SingleDayWhenEndDateOmitted(t *testing.T) {
	repo := &fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 5})}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(repo, audit)

	resp, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		ServiceID:     42,
		StartDate:     testDate(10),
	})
	require.NoError(t, err)

	assert.Equal(t, testDate(10), resp.StartDate)
	assert.Equal(t, testDate(10), resp.EndDate)
	require.Len(t, resp.Dates, 1)

	// Нулевое количество означает одно место
	assert.Equal(t, domain.DefaultQuantity, resp.Quantity)
	assert.Equal(t, 1, repo.reservedCount(resp.Dates[0].AvailableSlotID))
}

func TestUseCase_Execute_AllOrNothing(t *testing.T) {
	// Средняя дата диапазона почти заполнена: на неё остаётся одно место
	planning := newTestPlanning(map[int]int{10: 5, 11: 5, 12: 5})
	planning.Slots[1].ReservedCount = 4

	repo := &fakePlanningRepo{planning: planning}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(repo, audit)

	endDate := testDate(12)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		ServiceID:     42,
		StartDate:     testDate(10),
		EndDate:       &endDate,
		Quantity:      2,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCapacityConflict)

	var conflict *CapacityConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Dates, 1)
	assert.Equal(t, testDate(11), conflict.Dates[0])

	// Ни одна дата диапазона не тронута, audit-записей нет
	assert.Equal(t, 0, repo.reservedCount(1))
	assert.Equal(t, 4, repo.reservedCount(2))
	assert.Equal(t, 0, repo.reservedCount(3))
	assert.Equal(t, 0, audit.totalRows())
}

func TestUseCase_Execute_MissingSlotIsConflict(t *testing.T) {
	// Дата 11 не открыта - диапазон 10..12 должен провалиться целиком
	repo := &fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 5, 12: 5})}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(repo, audit)

	endDate := testDate(12)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		ServiceID:     42,
		StartDate:     testDate(10),
		EndDate:       &endDate,
		Quantity:      1,
	})

	var conflict *CapacityConflictError
	require.ErrorAs(t, err, &conflict)
	require.Len(t, conflict.Dates, 1)
	assert.Equal(t, testDate(11), conflict.Dates[0])
	assert.Equal(t, 0, audit.totalRows())
}

func TestUseCase_Execute_PlanningNotFound(t *testing.T) {
	repo := &fakePlanningRepo{}
	uc := newTestUseCase(repo, &fakeAuditRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		ServiceID:     42,
		StartDate:     testDate(10),
	})

	assert.ErrorIs(t, err, ErrPlanningNotFound)
}

func TestUseCase_Execute_PlanningInactive(t *testing.T) {
	planning := newTestPlanning(map[int]int{10: 5})
	planning.Disable(testNow)

	repo := &fakePlanningRepo{planning: planning}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(repo, audit)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		ServiceID:     42,
		StartDate:     testDate(10),
	})

	assert.ErrorIs(t, err, ErrPlanningInactive)
	assert.Equal(t, 0, repo.reservedCount(1))
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 5})}, &fakeAuditRepo{})

	pastEnd := testDate(9)
	farEnd := testDate(10).AddDate(0, 0, domain.MaxRangeDays)

	tests := []struct {
		name string
		req  *Request
	}{
		{
			name: "missing_reservation_id",
			req:  &Request{ServiceID: 42, StartDate: testDate(10)},
		},
		{
			name: "non_positive_service_id",
			req:  &Request{ReservationID: uuid.New(), ServiceID: 0, StartDate: testDate(10)},
		},
		{
			name: "missing_start_date",
			req:  &Request{ReservationID: uuid.New(), ServiceID: 42},
		},
		{
			name: "negative_quantity",
			req:  &Request{ReservationID: uuid.New(), ServiceID: 42, StartDate: testDate(10), Quantity: -1},
		},
		{
			name: "end_before_start",
			req:  &Request{ReservationID: uuid.New(), ServiceID: 42, StartDate: testDate(10), EndDate: &pastEnd},
		},
		{
			name: "range_too_long",
			req:  &Request{ReservationID: uuid.New(), ServiceID: 42, StartDate: testDate(10), EndDate: &farEnd},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUseCase_Execute_ContextCancelledBeforeCommit(t *testing.T) {
	repo := &fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 5})}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(repo, audit)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.Execute(ctx, &Request{
		ReservationID: uuid.New(),
		ServiceID:     42,
		StartDate:     testDate(10),
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, repo.reservedCount(1))
	assert.Equal(t, 0, audit.totalRows())
}

func TestUseCase_Execute_AuditFailureAborts(t *testing.T) {
	repo := &fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 5})}
	audit := &fakeAuditRepo{err: errors.New("db down")}
	uc := newTestUseCase(repo, audit)

	_, err := uc.Execute(context.Background(), &Request{
		ReservationID: uuid.New(),
		ServiceID:     42,
		StartDate:     testDate(10),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_ConcurrentNoOverbooking(t *testing.T) {
	// Два места на дату, десять конкурентных бронирований по одному месту:
	// ровно два должны пройти, остальные получить конфликт вместимости
	repo := &fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 2})}
	audit := &fakeAuditRepo{}
	uc := newTestUseCase(repo, audit)

	const attempts = 10

	var wg sync.WaitGroup
	results := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{
				ReservationID: uuid.New(),
				ServiceID:     42,
				StartDate:     testDate(10),
				Quantity:      1,
			})
			results[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	conflicts := 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrCapacityConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, attempts-2, conflicts)
	assert.Equal(t, 2, repo.reservedCount(1))
	assert.Equal(t, 2, audit.totalRows())
}
