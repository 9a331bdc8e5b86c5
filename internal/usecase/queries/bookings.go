package queries

import (
	"context"
	"time"

	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/domain/user"
	"hotelbooking/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrNotOwned = errs.New("booking does not belong to the requester")

type BookingView struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	RoomID          uuid.UUID `json:"room_id"`
	HotelID         uuid.UUID `json:"hotel_id"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
	Status          string    `json:"status"`
	RequestID       uuid.UUID `json:"request_id"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type BookingQueries interface {
	// GetByID enforces ownership: guests may only read their own
	// bookings, operators and admins may read any.
	GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, actorID uuid.UUID, actorRole user.Role, id uuid.UUID) (*BookingView, error) {
	b, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if actorRole == user.RoleGuest && !b.IsOwnedBy(actorID) {
		return nil, errs.Mark(errs.New("booking owned by another user"), ErrNotOwned)
	}
	return toBookingView(b), nil
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	bookings, err := q.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*BookingView, len(bookings))
	for i, b := range bookings {
		result[i] = toBookingView(b)
	}
	return result, nil
}

func toBookingView(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:              b.ID(),
		UserID:          b.UserID(),
		RoomID:          b.RoomID(),
		HotelID:         b.HotelID(),
		StartDate:       b.Stay().Start(),
		EndDate:         b.Stay().End(),
		Status:          string(b.Status()),
		RequestID:       b.RequestID(),
		TotalPriceCents: b.TotalPrice().Cents(),
		CreatedAt:       b.CreatedAt(),
		UpdatedAt:       b.UpdatedAt(),
	}
}
