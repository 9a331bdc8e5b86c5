package room

import (
	"time"

	"github.com/google/uuid"
)

// Room is the inventory holder's view of a bookable room. TimesBooked
// is a popularity counter maintained by the saga; Version is the
// optimistic-concurrency token bumped on every update.
type Room struct {
	ID                 uuid.UUID
	HotelID            uuid.UUID
	Number             string
	Available          bool
	TimesBooked        int
	RoomType           string
	PricePerNightCents int64
	Capacity           int
	Version            int64
	CreatedAt          time.Time
}
