package queries

import (
	"context"
	"time"

	"hotelbooking/internal/domain/room"

	"github.com/google/uuid"
)

type HotelView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

type HotelQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error)
	List(ctx context.Context) ([]*HotelView, error)
}

type HotelViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Hotel, error)
	FindAll(ctx context.Context) ([]room.Hotel, error)
}

type hotelQueriesImpl struct {
	repo HotelViewRepo
}

func NewHotelQueries(repo HotelViewRepo) HotelQueries {
	return &hotelQueriesImpl{repo: repo}
}

func (q *hotelQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelView, error) {
	h, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toHotelView(*h), nil
}

func (q *hotelQueriesImpl) List(ctx context.Context) ([]*HotelView, error) {
	hotels, err := q.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*HotelView, len(hotels))
	for i, h := range hotels {
		result[i] = toHotelView(h)
	}
	return result, nil
}

func toHotelView(h room.Hotel) *HotelView {
	return &HotelView{
		ID:        h.ID,
		Name:      h.Name,
		Address:   h.Address,
		CreatedAt: h.CreatedAt,
	}
}
