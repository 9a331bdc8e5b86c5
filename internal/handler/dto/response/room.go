package response

import (
	"time"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/usecase/commands"
	"hotelbooking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID                 uuid.UUID `json:"id"`
	HotelID            uuid.UUID `json:"hotel_id"`
	Number             string    `json:"number"`
	Available          bool      `json:"available"`
	TimesBooked        int64     `json:"times_booked"`
	RoomType           string    `json:"room_type"`
	PricePerNightCents int64     `json:"price_per_night_cents"`
	Capacity           int32     `json:"capacity"`
	Version            int64     `json:"version"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromRoomViews(views []*queries.RoomView) []*RoomResponse {
	result := make([]*RoomResponse, len(views))
	for i, v := range views {
		result[i] = FromRoomView(v)
	}
	return result
}

func FromRoom(r *room.Room) *RoomResponse {
	var resp RoomResponse
	_ = copier.Copy(&resp, r)
	return &resp
}

type ConfirmAvailabilityResponse struct {
	BlockID  uuid.UUID `json:"block_id"`
	Status   string    `json:"status"`
	Replayed bool      `json:"replayed"`
}

func FromConfirmResult(r *commands.ConfirmResult) *ConfirmAvailabilityResponse {
	return &ConfirmAvailabilityResponse{
		BlockID:  r.BlockID,
		Status:   string(r.Status),
		Replayed: r.Replayed,
	}
}

type HotelResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

func FromHotel(h *room.Hotel) *HotelResponse {
	return &HotelResponse{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		CreatedAt: h.CreatedAt,
	}
}

func FromHotelView(v *queries.HotelView) *HotelResponse {
	var resp HotelResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromHotelViews(views []*queries.HotelView) []*HotelResponse {
	result := make([]*HotelResponse, len(views))
	for i, v := range views {
		result[i] = FromHotelView(v)
	}
	return result
}
