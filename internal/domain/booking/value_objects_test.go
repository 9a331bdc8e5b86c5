//go:build unit

package booking_test

import (
	"testing"
	"time"

	"hotelbooking/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewStayRange(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		errIs error
	}{
		{name: "valid future range", start: date(2026, 6, 10), end: date(2026, 6, 15)},
		{name: "starting today is allowed", start: date(2026, 6, 1), end: date(2026, 6, 3)},
		{name: "same-day range is allowed", start: date(2026, 6, 10), end: date(2026, 6, 10)},
		{name: "start in the past", start: date(2026, 5, 31), end: date(2026, 6, 3), errIs: booking.ErrStartInPast},
		{name: "start after end", start: date(2026, 6, 15), end: date(2026, 6, 10), errIs: booking.ErrStartAfterEnd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := booking.NewStayRange(tt.start, tt.end, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
		})
	}

	t.Run("dates are truncated to midnight UTC", func(t *testing.T) {
		s, err := booking.NewStayRange(
			time.Date(2026, 6, 10, 23, 59, 0, 0, time.UTC),
			time.Date(2026, 6, 15, 0, 30, 0, 0, time.UTC),
			now,
		)
		require.NoError(t, err)
		assert.Equal(t, date(2026, 6, 10), s.Start())
		assert.Equal(t, date(2026, 6, 15), s.End())
	})
}

func TestStayRangeNights(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		end    time.Time
		nights int
	}{
		{"five nights", date(2026, 6, 10), date(2026, 6, 15), 5},
		{"one night", date(2026, 6, 10), date(2026, 6, 11), 1},
		{"same-day stay has zero nights", date(2026, 6, 10), date(2026, 6, 10), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := booking.NewStayRange(tt.start, tt.end, now)
			require.NoError(t, err)
			assert.Equal(t, tt.nights, s.Nights())
		})
	}
}

func TestReconstructStayRange(t *testing.T) {
	// Reconstruction must accept past dates; the not-in-the-past rule
	// only applies when a booking is created.
	s := booking.ReconstructStayRange(date(2020, 1, 1), date(2020, 1, 5))
	assert.Equal(t, date(2020, 1, 1), s.Start())
	assert.Equal(t, 4, s.Nights())
}

func TestMoney(t *testing.T) {
	t.Run("non-negative amounts", func(t *testing.T) {
		m, err := booking.NewMoney(12500)
		require.NoError(t, err)
		assert.Equal(t, int64(12500), m.Cents())

		zero, err := booking.NewMoney(0)
		require.NoError(t, err)
		assert.Equal(t, int64(0), zero.Cents())
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := booking.NewMoney(-1)
		assert.ErrorIs(t, err, booking.ErrNegativePrice)
	})
}

func TestTotalPrice(t *testing.T) {
	t.Run("price per night times nights", func(t *testing.T) {
		s, err := booking.NewStayRange(date(2026, 6, 10), date(2026, 6, 15), now)
		require.NoError(t, err)

		total, err := booking.TotalPrice(10000, s)
		require.NoError(t, err)
		assert.Equal(t, int64(50000), total.Cents())
	})

	t.Run("zero-night stay costs nothing", func(t *testing.T) {
		s, err := booking.NewStayRange(date(2026, 6, 10), date(2026, 6, 10), now)
		require.NoError(t, err)

		total, err := booking.TotalPrice(10000, s)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total.Cents())
	})
}
