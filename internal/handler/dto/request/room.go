package request

import (
	"time"

	"github.com/google/uuid"
)

type ConfirmAvailabilityRequest struct {
	StartDate string    `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string    `json:"end_date" binding:"required,datetime=2006-01-02"`
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	RequestID uuid.UUID `json:"request_id" binding:"required"`
}

func (r ConfirmAvailabilityRequest) Dates() (start, end time.Time, err error) {
	start, err = time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

type ReleaseRoomRequest struct {
	RequestID uuid.UUID `json:"request_id" binding:"required"`
}

type CreateHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type UpdateHotelRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type CreateRoomRequest struct {
	HotelID            uuid.UUID `json:"hotel_id" binding:"required"`
	Number             string    `json:"number" binding:"required"`
	Available          bool      `json:"available"`
	RoomType           string    `json:"room_type" binding:"required"`
	PricePerNightCents int64     `json:"price_per_night_cents" binding:"min=0"`
	Capacity           int32     `json:"capacity" binding:"required,min=1"`
}

// UpdateRoomRequest includes the version the caller last read so a
// concurrent change is detected instead of overwritten.
type UpdateRoomRequest struct {
	Number             string `json:"number" binding:"required"`
	Available          bool   `json:"available"`
	RoomType           string `json:"room_type" binding:"required"`
	PricePerNightCents int64  `json:"price_per_night_cents" binding:"min=0"`
	Capacity           int32  `json:"capacity" binding:"required,min=1"`
	Version            int64  `json:"version" binding:"min=0"`
}
