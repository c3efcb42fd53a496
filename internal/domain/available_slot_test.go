package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testDate(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func TestNewAvailableSlot(t *testing.T) {
	t.Run("creates_slot_with_normalized_date", func(t *testing.T) {
		noon := time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC)

		slot, err := domain.NewAvailableSlot(1, noon, 5, testNow)
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), slot.Date)
		assert.Equal(t, 5, slot.MaxCapacity)
		assert.Equal(t, 0, slot.ReservedCount)
		assert.Equal(t, 5, slot.AvailableCapacity())
	})

	t.Run("rejects_non_positive_capacity", func(t *testing.T) {
		for _, capacity := range []int{0, -1} {
			_, err := domain.NewAvailableSlot(1, testDate(10), capacity, testNow)
			assert.ErrorIs(t, err, domain.ErrInvalidCapacity)
		}
	})
}

func TestAvailableSlot_Reserve(t *testing.T) {
	t.Run("decrements_available_capacity", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)

		require.NoError(t, slot.Reserve(3, testNow))

		assert.Equal(t, 3, slot.ReservedCount)
		assert.Equal(t, 2, slot.AvailableCapacity())
		assert.True(t, slot.HasActiveHolds())
	})

	t.Run("rejects_more_than_available", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 2, testNow)
		require.NoError(t, err)
		require.NoError(t, slot.Reserve(2, testNow))

		err = slot.Reserve(1, testNow)

		assert.ErrorIs(t, err, domain.ErrInsufficientCapacity)
		assert.Equal(t, 2, slot.ReservedCount)
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)

		assert.ErrorIs(t, slot.Reserve(0, testNow), domain.ErrInvalidQuantity)
		assert.ErrorIs(t, slot.Reserve(-1, testNow), domain.ErrInvalidQuantity)
	})

	t.Run("rejects_past_date_even_with_capacity", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)

		later := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

		assert.False(t, slot.IsAvailable(1, later))
		assert.ErrorIs(t, slot.Reserve(1, later), domain.ErrInsufficientCapacity)
	})

	t.Run("same_day_is_still_available", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)

		sameDayEvening := time.Date(2025, 6, 10, 23, 0, 0, 0, time.UTC)

		assert.True(t, slot.IsAvailable(1, sameDayEvening))
	})
}

func TestAvailableSlot_CancelReservation(t *testing.T) {
	t.Run("restores_capacity", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)
		require.NoError(t, slot.Reserve(3, testNow))

		require.NoError(t, slot.CancelReservation(2, testNow))

		assert.Equal(t, 1, slot.ReservedCount)
		assert.Equal(t, 4, slot.AvailableCapacity())
	})

	t.Run("rejects_over_release", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)
		require.NoError(t, slot.Reserve(1, testNow))

		err = slot.CancelReservation(2, testNow)

		assert.ErrorIs(t, err, domain.ErrOverRelease)
		assert.Equal(t, 1, slot.ReservedCount)
	})

	t.Run("allowed_for_past_dates", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)
		require.NoError(t, slot.Reserve(2, testNow))

		later := time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC)

		assert.NoError(t, slot.CancelReservation(2, later))
		assert.Equal(t, 0, slot.ReservedCount)
	})
}

func TestAvailableSlot_UpdateCapacity(t *testing.T) {
	t.Run("updates_capacity", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)

		require.NoError(t, slot.UpdateCapacity(10, testNow))

		assert.Equal(t, 10, slot.MaxCapacity)
		assert.Equal(t, 10, slot.AvailableCapacity())
	})

	t.Run("rejects_below_reserved_count", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)
		require.NoError(t, slot.Reserve(3, testNow))

		err = slot.UpdateCapacity(2, testNow)

		assert.ErrorIs(t, err, domain.ErrCapacityBelowReserved)
		assert.Equal(t, 5, slot.MaxCapacity)
	})

	t.Run("allows_exactly_reserved_count", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)
		require.NoError(t, slot.Reserve(3, testNow))

		require.NoError(t, slot.UpdateCapacity(3, testNow))

		assert.Equal(t, 3, slot.MaxCapacity)
		assert.Equal(t, 0, slot.AvailableCapacity())
	})

	t.Run("rejects_non_positive_capacity", func(t *testing.T) {
		slot, err := domain.NewAvailableSlot(1, testDate(10), 5, testNow)
		require.NoError(t, err)

		assert.ErrorIs(t, slot.UpdateCapacity(0, testNow), domain.ErrInvalidCapacity)
	})
}
