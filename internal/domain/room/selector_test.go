//go:build unit

package room_test

import (
	"testing"

	"hotelbooking/internal/domain/room"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRoom(timesBooked int) room.Room {
	return room.Room{
		ID:          uuid.New(),
		HotelID:     uuid.New(),
		Available:   true,
		TimesBooked: timesBooked,
	}
}

func TestSelectLeastBooked(t *testing.T) {
	t.Run("picks the room with the lowest counter", func(t *testing.T) {
		rooms := []room.Room{makeRoom(10), makeRoom(5), makeRoom(2)}

		selected, err := room.SelectLeastBooked(rooms)
		require.NoError(t, err)
		assert.Equal(t, rooms[2].ID, selected.ID)
	})

	t.Run("ties broken by ascending id", func(t *testing.T) {
		a, b := makeRoom(3), makeRoom(3)
		want := a
		if b.ID.String() < a.ID.String() {
			want = b
		}

		selected, err := room.SelectLeastBooked([]room.Room{a, b})
		require.NoError(t, err)
		assert.Equal(t, want.ID, selected.ID)
	})

	t.Run("empty candidate set", func(t *testing.T) {
		_, err := room.SelectLeastBooked(nil)
		assert.ErrorIs(t, err, room.ErrNoAvailableRoom)
	})

	t.Run("input slice is not reordered", func(t *testing.T) {
		rooms := []room.Room{makeRoom(9), makeRoom(1), makeRoom(4)}
		first, second, third := rooms[0].ID, rooms[1].ID, rooms[2].ID

		_, err := room.SelectLeastBooked(rooms)
		require.NoError(t, err)
		assert.Equal(t, first, rooms[0].ID)
		assert.Equal(t, second, rooms[1].ID)
		assert.Equal(t, third, rooms[2].ID)
	})

	t.Run("deterministic across calls", func(t *testing.T) {
		rooms := []room.Room{makeRoom(2), makeRoom(2), makeRoom(2)}

		first, err := room.SelectLeastBooked(rooms)
		require.NoError(t, err)
		for range 5 {
			again, err := room.SelectLeastBooked(rooms)
			require.NoError(t, err)
			assert.Equal(t, first.ID, again.ID)
		}
	})
}
