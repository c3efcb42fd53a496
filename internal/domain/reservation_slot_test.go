package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CapacityService/internal/domain"
)

func TestReservationSlot_Release(t *testing.T) {
	reservationID := uuid.New()

	t.Run("marks_released_once", func(t *testing.T) {
		rs := domain.NewReservationSlot(reservationID, 7, testNow)
		require.True(t, rs.IsActive())

		assert.True(t, rs.Release(testNow))
		assert.False(t, rs.IsActive())
		require.NotNil(t, rs.ReleasedAt)
		assert.Equal(t, testNow, *rs.ReleasedAt)
	})

	t.Run("second_release_is_noop", func(t *testing.T) {
		rs := domain.NewReservationSlot(reservationID, 7, testNow)
		require.True(t, rs.Release(testNow))

		later := testNow.Add(time.Hour)
		assert.False(t, rs.Release(later))

		// Первый releasedAt не перезаписывается
		assert.Equal(t, testNow, *rs.ReleasedAt)
	})
}
