package response

import (
	"time"

	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"userId"`
	RoomID          uuid.UUID `json:"roomId"`
	HotelID         uuid.UUID `json:"hotelId"`
	StartDate       string    `json:"startDate"`
	EndDate         string    `json:"endDate"`
	Status          string    `json:"status"`
	RequestID       uuid.UUID `json:"requestId"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	return &BookingResponse{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RoomID:          b.RoomID(),
		HotelID:         b.HotelID(),
		StartDate:       b.Stay().Start().Format(dateLayout),
		EndDate:         b.Stay().End().Format(dateLayout),
		Status:          string(b.Status()),
		RequestID:       b.RequestID(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:              v.ID,
		UserID:          v.UserID,
		RoomID:          v.RoomID,
		HotelID:         v.HotelID,
		StartDate:       v.StartDate.Format(dateLayout),
		EndDate:         v.EndDate.Format(dateLayout),
		Status:          v.Status,
		RequestID:       v.RequestID,
		TotalPriceCents: v.TotalPriceCents,
		CreatedAt:       v.CreatedAt,
		UpdatedAt:       v.UpdatedAt,
	}
}
