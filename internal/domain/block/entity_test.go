//go:build unit

package block_test

import (
	"testing"
	"time"

	"hotelbooking/internal/domain/block"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPeriod(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		p, err := block.NewPeriod(date(2026, 6, 1), date(2026, 6, 5))
		require.NoError(t, err)
		assert.Equal(t, date(2026, 6, 1), p.Start)
		assert.Equal(t, date(2026, 6, 5), p.End)
	})

	t.Run("single day range", func(t *testing.T) {
		_, err := block.NewPeriod(date(2026, 6, 1), date(2026, 6, 1))
		require.NoError(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := block.NewPeriod(date(2026, 6, 5), date(2026, 6, 1))
		assert.ErrorIs(t, err, block.ErrInvalidPeriod)
	})

	t.Run("time component is dropped", func(t *testing.T) {
		p, err := block.NewPeriod(
			time.Date(2026, 6, 1, 15, 30, 0, 0, time.UTC),
			time.Date(2026, 6, 5, 9, 0, 0, 0, time.UTC),
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 6, 1), p.Start)
		assert.Equal(t, date(2026, 6, 5), p.End)
	})
}

func TestPeriodOverlaps(t *testing.T) {
	base, err := block.NewPeriod(date(2026, 6, 1), date(2026, 6, 5))
	require.NoError(t, err)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"partial overlap at the tail", date(2026, 6, 3), date(2026, 6, 7), true},
		{"fully contained", date(2026, 6, 2), date(2026, 6, 4), true},
		{"containing the base", date(2026, 5, 30), date(2026, 6, 10), true},
		{"shared boundary day counts", date(2026, 6, 5), date(2026, 6, 9), true},
		{"adjacent day after does not", date(2026, 6, 6), date(2026, 6, 10), false},
		{"adjacent day before does not", date(2026, 5, 28), date(2026, 5, 31), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other, err := block.NewPeriod(tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.overlaps, base.Overlaps(other))
			assert.Equal(t, tt.overlaps, other.Overlaps(base))
		})
	}
}

func TestPeriodCovers(t *testing.T) {
	p, err := block.NewPeriod(date(2026, 6, 1), date(2026, 6, 5))
	require.NoError(t, err)

	assert.True(t, p.Covers(date(2026, 6, 1)))
	assert.True(t, p.Covers(date(2026, 6, 3)))
	assert.True(t, p.Covers(date(2026, 6, 5)))
	assert.False(t, p.Covers(date(2026, 5, 31)))
	assert.False(t, p.Covers(date(2026, 6, 6)))
}

func TestBlockConfirm(t *testing.T) {
	period, err := block.NewPeriod(date(2026, 6, 1), date(2026, 6, 5))
	require.NoError(t, err)

	t.Run("pending block confirms", func(t *testing.T) {
		b := block.NewPending(uuid.New(), uuid.New(), uuid.New(), period, time.Now())
		require.Equal(t, block.StatusPending, b.Status)

		require.NoError(t, b.Confirm())
		assert.Equal(t, block.StatusConfirmed, b.Status)
	})

	t.Run("confirming twice reports already confirmed", func(t *testing.T) {
		b := block.NewPending(uuid.New(), uuid.New(), uuid.New(), period, time.Now())
		require.NoError(t, b.Confirm())

		err := b.Confirm()
		assert.ErrorIs(t, err, block.ErrAlreadyConfirmed)
		assert.Equal(t, block.StatusConfirmed, b.Status)
	})
}

func TestNewPending(t *testing.T) {
	period, err := block.NewPeriod(date(2026, 6, 1), date(2026, 6, 5))
	require.NoError(t, err)

	roomID, bookingID, requestID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()
	b := block.NewPending(roomID, bookingID, requestID, period, now)

	assert.NotEqual(t, uuid.Nil, b.ID)
	assert.Equal(t, roomID, b.RoomID)
	assert.Equal(t, bookingID, b.BookingID)
	assert.Equal(t, requestID, b.RequestID)
	assert.Equal(t, block.StatusPending, b.Status)
	assert.Equal(t, now, b.CreatedAt)
	assert.Nil(t, b.ExpiresAt)
}

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "CONFIRMED"} {
		s, err := block.ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, block.Status(valid), s)
	}

	_, err := block.ParseStatus("CANCELLED")
	assert.ErrorIs(t, err, block.ErrInvalidStatus)
}
