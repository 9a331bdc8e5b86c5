package room

import (
	"errors"
	"sort"
)

var ErrNoAvailableRoom = errors.New("no available room")

// SelectLeastBooked picks one room from a candidate set: the room with
// the lowest TimesBooked, ties broken by ascending id. Pure function;
// the input slice is not modified.
func SelectLeastBooked(rooms []Room) (Room, error) {
	if len(rooms) == 0 {
		return Room{}, ErrNoAvailableRoom
	}

	sorted := make([]Room, len(rooms))
	copy(sorted, rooms)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].TimesBooked != sorted[j].TimesBooked {
			return sorted[i].TimesBooked < sorted[j].TimesBooked
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	return sorted[0], nil
}
