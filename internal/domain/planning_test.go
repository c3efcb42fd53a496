package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
	"github.com/m04kA/SMC-CapacityService/pkg/ptr"
)

func newTestPlanning(t *testing.T) *domain.Planning {
	t.Helper()
	return domain.NewPlanning(42, "Детейлинг", ptr.Ptr("Полировка кузова"), testNow)
}

func TestNewPlanning(t *testing.T) {
	planning := newTestPlanning(t)

	assert.Equal(t, int64(42), planning.ServiceID)
	assert.True(t, planning.Active)
	assert.Empty(t, planning.Slots)
}

func TestPlanning_AddSlot(t *testing.T) {
	t.Run("adds_slot_for_new_date", func(t *testing.T) {
		planning := newTestPlanning(t)

		slot, err := planning.AddSlot(testDate(10), 5, testNow)
		require.NoError(t, err)

		assert.Len(t, planning.Slots, 1)
		assert.Same(t, slot, planning.SlotForDate(testDate(10)))
	})

	t.Run("rejects_duplicate_date", func(t *testing.T) {
		planning := newTestPlanning(t)
		_, err := planning.AddSlot(testDate(10), 5, testNow)
		require.NoError(t, err)

		_, err = planning.AddSlot(testDate(10), 3, testNow)

		assert.ErrorIs(t, err, domain.ErrDuplicateDate)
		assert.Len(t, planning.Slots, 1)
	})

	t.Run("same_day_different_time_is_duplicate", func(t *testing.T) {
		planning := newTestPlanning(t)
		_, err := planning.AddSlot(testDate(10), 5, testNow)
		require.NoError(t, err)

		evening := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
		_, err = planning.AddSlot(evening, 3, testNow)

		assert.ErrorIs(t, err, domain.ErrDuplicateDate)
	})
}

func TestPlanning_RemoveSlot(t *testing.T) {
	t.Run("removes_empty_slot", func(t *testing.T) {
		planning := newTestPlanning(t)
		_, err := planning.AddSlot(testDate(10), 5, testNow)
		require.NoError(t, err)

		require.NoError(t, planning.RemoveSlot(testDate(10), testNow))

		assert.Nil(t, planning.SlotForDate(testDate(10)))
	})

	t.Run("absent_date_is_noop", func(t *testing.T) {
		planning := newTestPlanning(t)

		assert.NoError(t, planning.RemoveSlot(testDate(10), testNow))
	})

	t.Run("rejects_slot_with_active_holds", func(t *testing.T) {
		planning := newTestPlanning(t)
		_, err := planning.AddSlot(testDate(10), 5, testNow)
		require.NoError(t, err)
		require.NoError(t, planning.ReserveSlot(testDate(10), 2, testNow))

		err = planning.RemoveSlot(testDate(10), testNow)

		assert.ErrorIs(t, err, domain.ErrSlotHasActiveHolds)
		assert.NotNil(t, planning.SlotForDate(testDate(10)))
	})
}

func TestPlanning_ReserveAndCancel(t *testing.T) {
	t.Run("reserve_then_cancel_restores_capacity", func(t *testing.T) {
		planning := newTestPlanning(t)
		_, err := planning.AddSlot(testDate(10), 5, testNow)
		require.NoError(t, err)

		require.NoError(t, planning.ReserveSlot(testDate(10), 3, testNow))
		require.NoError(t, planning.CancelSlotReservation(testDate(10), 3, testNow))

		slot := planning.SlotForDate(testDate(10))
		assert.Equal(t, 0, slot.ReservedCount)
		assert.Equal(t, 5, slot.AvailableCapacity())
	})

	t.Run("reserve_unknown_date_fails", func(t *testing.T) {
		planning := newTestPlanning(t)

		err := planning.ReserveSlot(testDate(10), 1, testNow)

		assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	})

	t.Run("cancel_unknown_date_fails", func(t *testing.T) {
		planning := newTestPlanning(t)

		err := planning.CancelSlotReservation(testDate(10), 1, testNow)

		assert.ErrorIs(t, err, domain.ErrSlotNotFound)
	})
}

func TestPlanning_IsAvailableForDate(t *testing.T) {
	t.Run("available_when_active_and_capacity_left", func(t *testing.T) {
		planning := newTestPlanning(t)
		_, err := planning.AddSlot(testDate(10), 2, testNow)
		require.NoError(t, err)

		assert.True(t, planning.IsAvailableForDate(testDate(10), 2, testNow))
		assert.False(t, planning.IsAvailableForDate(testDate(10), 3, testNow))
	})

	t.Run("unopened_date_is_unavailable", func(t *testing.T) {
		planning := newTestPlanning(t)

		assert.False(t, planning.IsAvailableForDate(testDate(10), 1, testNow))
	})

	t.Run("disabled_planning_is_unavailable", func(t *testing.T) {
		planning := newTestPlanning(t)
		_, err := planning.AddSlot(testDate(10), 5, testNow)
		require.NoError(t, err)

		planning.Disable(testNow)
		assert.False(t, planning.IsAvailableForDate(testDate(10), 1, testNow))

		planning.Enable(testNow)
		assert.True(t, planning.IsAvailableForDate(testDate(10), 1, testNow))
	})
}

func TestPlanning_SlotsForMonth(t *testing.T) {
	planning := newTestPlanning(t)

	// Добавляем вразнобой: июнь, июль, снова июнь
	_, err := planning.AddSlot(testDate(20), 5, testNow)
	require.NoError(t, err)
	_, err = planning.AddSlot(time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), 5, testNow)
	require.NoError(t, err)
	_, err = planning.AddSlot(testDate(5), 5, testNow)
	require.NoError(t, err)

	slots := planning.SlotsForMonth(2025, time.June)

	require.Len(t, slots, 2)
	assert.Equal(t, testDate(5), slots[0].Date)
	assert.Equal(t, testDate(20), slots[1].Date)

	// Возвращаются копии - изменение снимка не трогает агрегат
	slots[0].ReservedCount = 99
	assert.Equal(t, 0, planning.SlotForDate(testDate(5)).ReservedCount)
}
