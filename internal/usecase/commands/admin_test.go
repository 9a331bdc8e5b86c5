//go:build unit

package commands_test

import (
	"context"
	"testing"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminEnv() (*fakeStore, *fakeRoomCache, commands.AdminCommands) {
	store := newFakeStore()
	cache := &fakeRoomCache{}
	uc := commands.NewAdminUseCase(&fakeUoW{store: store}, cache, clock.NewMockClock(testNow))
	return store, cache, uc
}

func seedHotel(store *fakeStore) room.Hotel {
	h := room.Hotel{
		ID:        uuid.New(),
		Name:      "Grand Plaza",
		Address:   "1 Main St",
		CreatedAt: testNow,
	}
	store.hotels[h.ID] = h
	return h
}

func TestCreateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the hotel", func(t *testing.T) {
		store, _, uc := newAdminEnv()

		h, err := uc.CreateHotel(ctx, commands.CreateHotelCommand{Name: "Grand Plaza", Address: "1 Main St"})
		require.NoError(t, err)

		stored, ok := store.hotels[h.ID]
		require.True(t, ok)
		assert.Equal(t, "Grand Plaza", stored.Name)
		assert.Equal(t, testNow, stored.CreatedAt)
	})

	t.Run("name is required", func(t *testing.T) {
		_, _, uc := newAdminEnv()

		_, err := uc.CreateHotel(ctx, commands.CreateHotelCommand{Address: "1 Main St"})
		assert.ErrorIs(t, err, commands.ErrInvalidRequest)
	})
}

func TestUpdateHotel(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and address", func(t *testing.T) {
		store, _, uc := newAdminEnv()
		h := seedHotel(store)

		err := uc.UpdateHotel(ctx, commands.UpdateHotelCommand{
			ID:      h.ID,
			Name:    "Grand Plaza Renovated",
			Address: "2 Main St",
		})
		require.NoError(t, err)

		stored := store.hotels[h.ID]
		assert.Equal(t, "Grand Plaza Renovated", stored.Name)
		assert.Equal(t, "2 Main St", stored.Address)
		assert.Equal(t, h.CreatedAt, stored.CreatedAt)
	})

	t.Run("unknown hotel", func(t *testing.T) {
		_, _, uc := newAdminEnv()

		err := uc.UpdateHotel(ctx, commands.UpdateHotelCommand{ID: uuid.New(), Name: "Nowhere Inn"})
		assert.ErrorIs(t, err, commands.ErrHotelNotFound)
	})

	t.Run("name is required", func(t *testing.T) {
		store, _, uc := newAdminEnv()
		h := seedHotel(store)

		err := uc.UpdateHotel(ctx, commands.UpdateHotelCommand{ID: h.ID})
		assert.ErrorIs(t, err, commands.ErrInvalidRequest)
	})
}
