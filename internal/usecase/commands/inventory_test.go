//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"hotelbooking/internal/domain/block"
	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedRoom(store *fakeStore, available bool, timesBooked int) room.Room {
	rm := room.Room{
		ID:                 uuid.New(),
		HotelID:            uuid.New(),
		Number:             "101",
		Available:          available,
		TimesBooked:        timesBooked,
		RoomType:           "double",
		PricePerNightCents: 10000,
		Capacity:           2,
	}
	store.rooms[rm.ID] = rm
	return rm
}

func seedBlock(store *fakeStore, roomID uuid.UUID, status block.Status, start, end time.Time) block.Block {
	period, err := block.NewPeriod(start, end)
	if err != nil {
		panic(err)
	}
	b := block.NewPending(roomID, uuid.New(), uuid.New(), period, testNow)
	b.Status = status
	store.blocks[b.ID] = b
	return b
}

func newInventoryEnv() (*fakeStore, *fakeRoomCache, commands.InventoryCommands) {
	store := newFakeStore()
	cache := &fakeRoomCache{}
	uc := commands.NewInventoryUseCase(&fakeUoW{store: store}, cache, clock.NewMockClock(testNow))
	return store, cache, uc
}

func TestConfirmAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending hold", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)

		result, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		require.NoError(t, err)

		assert.Equal(t, block.StatusPending, result.Status)
		assert.False(t, result.Replayed)

		stored, ok := store.blocks[result.BlockID]
		require.True(t, ok)
		assert.Equal(t, rm.ID, stored.RoomID)
		assert.Equal(t, block.StatusPending, stored.Status)
	})

	t.Run("replay promotes a pending hold to confirmed", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		bookingID, requestID := uuid.New(), uuid.New()

		first, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), bookingID, requestID)
		require.NoError(t, err)

		second, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), bookingID, requestID)
		require.NoError(t, err)

		assert.True(t, second.Replayed)
		assert.Equal(t, first.BlockID, second.BlockID)
		assert.Equal(t, block.StatusConfirmed, second.Status)
		assert.Equal(t, block.StatusConfirmed, store.blocks[first.BlockID].Status)
		assert.Len(t, store.blocks, 1)
	})

	t.Run("replay of a confirmed hold is a no-op", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		bookingID, requestID := uuid.New(), uuid.New()

		_, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), bookingID, requestID)
		require.NoError(t, err)
		_, err = uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), bookingID, requestID)
		require.NoError(t, err)

		third, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), bookingID, requestID)
		require.NoError(t, err)
		assert.True(t, third.Replayed)
		assert.Equal(t, block.StatusConfirmed, third.Status)
		assert.Len(t, store.blocks, 1)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, _, uc := newInventoryEnv()

		_, err := uc.ConfirmAvailability(ctx, uuid.New(), date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("room closed for booking", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, false, 0)

		_, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)
	})

	t.Run("confirmed overlap is a conflict", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		seedBlock(store, rm.ID, block.StatusConfirmed, date(2026, 6, 12), date(2026, 6, 20))

		_, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrDateRangeConflict)
	})

	t.Run("boundary day overlap is a conflict", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		seedBlock(store, rm.ID, block.StatusConfirmed, date(2026, 6, 15), date(2026, 6, 20))

		_, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrDateRangeConflict)
	})

	t.Run("pending overlap is tolerated", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		seedBlock(store, rm.ID, block.StatusPending, date(2026, 6, 12), date(2026, 6, 20))

		result, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		require.NoError(t, err)
		assert.Equal(t, block.StatusPending, result.Status)
		assert.Len(t, store.blocks, 2)
	})

	t.Run("adjacent confirmed block does not conflict", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		seedBlock(store, rm.ID, block.StatusConfirmed, date(2026, 6, 16), date(2026, 6, 20))

		_, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		assert.NoError(t, err)
	})

	t.Run("confirmed block on another room does not conflict", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		other := seedRoom(store, true, 0)
		seedBlock(store, other.ID, block.StatusConfirmed, date(2026, 6, 10), date(2026, 6, 15))

		_, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 10), date(2026, 6, 15), uuid.New(), uuid.New())
		assert.NoError(t, err)
	})

	t.Run("start after end", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)

		_, err := uc.ConfirmAvailability(ctx, rm.ID, date(2026, 6, 15), date(2026, 6, 10), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, commands.ErrInvalidRequest)
	})
}

func TestReleaseRoom(t *testing.T) {
	ctx := context.Background()

	t.Run("releasing an unknown request id succeeds", func(t *testing.T) {
		_, _, uc := newInventoryEnv()
		assert.NoError(t, uc.ReleaseRoom(ctx, uuid.New(), uuid.New()))
	})

	t.Run("pending hold is deleted without touching the counter", func(t *testing.T) {
		store, cache, uc := newInventoryEnv()
		rm := seedRoom(store, true, 3)
		b := seedBlock(store, rm.ID, block.StatusPending, date(2026, 6, 10), date(2026, 6, 15))

		require.NoError(t, uc.ReleaseRoom(ctx, rm.ID, b.RequestID))

		assert.Empty(t, store.blocks)
		assert.Equal(t, 3, store.rooms[rm.ID].TimesBooked)
		assert.Empty(t, cache.invalidated)
	})

	t.Run("confirmed hold is deleted and the counter decremented", func(t *testing.T) {
		store, cache, uc := newInventoryEnv()
		rm := seedRoom(store, true, 3)
		b := seedBlock(store, rm.ID, block.StatusConfirmed, date(2026, 6, 10), date(2026, 6, 15))

		require.NoError(t, uc.ReleaseRoom(ctx, rm.ID, b.RequestID))

		assert.Empty(t, store.blocks)
		assert.Equal(t, 2, store.rooms[rm.ID].TimesBooked)
		assert.Equal(t, []uuid.UUID{rm.ID}, cache.invalidated)
	})

	t.Run("decrement floors at zero", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 0)
		b := seedBlock(store, rm.ID, block.StatusConfirmed, date(2026, 6, 10), date(2026, 6, 15))

		require.NoError(t, uc.ReleaseRoom(ctx, rm.ID, b.RequestID))
		assert.Equal(t, 0, store.rooms[rm.ID].TimesBooked)
	})

	t.Run("releasing twice is a no-op", func(t *testing.T) {
		store, _, uc := newInventoryEnv()
		rm := seedRoom(store, true, 3)
		b := seedBlock(store, rm.ID, block.StatusConfirmed, date(2026, 6, 10), date(2026, 6, 15))

		require.NoError(t, uc.ReleaseRoom(ctx, rm.ID, b.RequestID))
		require.NoError(t, uc.ReleaseRoom(ctx, rm.ID, b.RequestID))
		assert.Equal(t, 2, store.rooms[rm.ID].TimesBooked)
	})
}

func TestIncrementTimesBooked(t *testing.T) {
	ctx := context.Background()

	t.Run("bumps the counter and drops the cache entry", func(t *testing.T) {
		store, cache, uc := newInventoryEnv()
		rm := seedRoom(store, true, 5)

		require.NoError(t, uc.IncrementTimesBooked(ctx, rm.ID))
		assert.Equal(t, 6, store.rooms[rm.ID].TimesBooked)
		assert.Equal(t, []uuid.UUID{rm.ID}, cache.invalidated)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, _, uc := newInventoryEnv()
		assert.ErrorIs(t, uc.IncrementTimesBooked(ctx, uuid.New()), commands.ErrRoomNotFound)
	})
}
