package check_range

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	planningRepo "github.com/m04kA/SMC-CapacityService/internal/infra/storage/planning"
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

type fakePlanningRepo struct {
	planning *domain.Planning
	err      error
}

func (f *fakePlanningRepo) GetByServiceID(ctx context.Context, serviceID int64) (*domain.Planning, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.planning == nil || f.planning.ServiceID != serviceID {
		return nil, planningRepo.ErrPlanningNotFound
	}
	return f.planning, nil
}

func newTestPlanning(slotCapacities map[int]int) *domain.Planning {
	planning := domain.NewPlanning(42, "Шиномонтаж", nil, testNow)
	planning.ID = 1

	for day := 1; day <= 30; day++ {
		capacity, ok := slotCapacities[day]
		if !ok {
			continue
		}
		if _, err := planning.AddSlot(testDate(day), capacity, testNow); err != nil {
			panic(fmt.Sprintf("test planning setup: %v", err))
		}
	}
	return planning
}

func newTestUseCase(repo *fakePlanningRepo) *UseCase {
	uc := NewUseCase(repo, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_WholeRangeAvailable(t *testing.T) {
	uc := newTestUseCase(&fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 3, 11: 3, 12: 3})})

	endDate := testDate(12)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		StartDate: testDate(10),
		EndDate:   &endDate,
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Empty(t, resp.ConflictingDates)
	assert.Equal(t, 2, resp.Quantity)
}

func TestUseCase_Execute_ReportsConflictingDates(t *testing.T) {
	// Дата 11 заполнена, дата 13 не открыта
	planning := newTestPlanning(map[int]int{10: 3, 11: 1, 12: 3})
	planning.Slots[1].ReservedCount = 1

	uc := newTestUseCase(&fakePlanningRepo{planning: planning})

	endDate := testDate(13)

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		StartDate: testDate(10),
		EndDate:   &endDate,
		Quantity:  1,
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.Len(t, resp.ConflictingDates, 2)
	assert.Equal(t, testDate(11), resp.ConflictingDates[0])
	assert.Equal(t, testDate(13), resp.ConflictingDates[1])
}

func TestUseCase_Execute_SingleDayDefaultQuantity(t *testing.T) {
	uc := newTestUseCase(&fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 1})})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		StartDate: testDate(10),
	})
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Equal(t, domain.DefaultQuantity, resp.Quantity)
	assert.Equal(t, testDate(10), resp.EndDate)
}

func TestUseCase_Execute_InactivePlanningIsUnavailable(t *testing.T) {
	planning := newTestPlanning(map[int]int{10: 3})
	planning.Disable(testNow)

	uc := newTestUseCase(&fakePlanningRepo{planning: planning})

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		StartDate: testDate(10),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
	require.Len(t, resp.ConflictingDates, 1)
}

func TestUseCase_Execute_PastDateIsUnavailable(t *testing.T) {
	planning := newTestPlanning(map[int]int{10: 3})

	uc := NewUseCase(&fakePlanningRepo{planning: planning}, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)}

	resp, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		StartDate: testDate(10),
	})
	require.NoError(t, err)

	assert.False(t, resp.Available)
}

func TestUseCase_Execute_PlanningNotFound(t *testing.T) {
	uc := newTestUseCase(&fakePlanningRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		StartDate: testDate(10),
	})

	assert.ErrorIs(t, err, ErrPlanningNotFound)
}

func TestUseCase_Execute_RepositoryFailure(t *testing.T) {
	uc := newTestUseCase(&fakePlanningRepo{err: errors.New("db down")})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 42,
		StartDate: testDate(10),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakePlanningRepo{planning: newTestPlanning(map[int]int{10: 3})})

	pastEnd := testDate(9)

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "non_positive_service_id", req: &Request{ServiceID: 0, StartDate: testDate(10)}},
		{name: "missing_start_date", req: &Request{ServiceID: 42}},
		{name: "negative_quantity", req: &Request{ServiceID: 42, StartDate: testDate(10), Quantity: -1}},
		{name: "end_before_start", req: &Request{ServiceID: 42, StartDate: testDate(10), EndDate: &pastEnd}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
