package queries

import (
	"context"
	"log/slog"
	"time"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RoomView struct {
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

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// ListRecommended returns available rooms with no confirmed block
	// covering today, least-booked first.
	ListRecommended(ctx context.Context) ([]*RoomView, error)
	ListAvailable(ctx context.Context) ([]*RoomView, error)
	ListPopular(ctx context.Context, limit int) ([]*RoomView, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	FindRecommended(ctx context.Context, day time.Time) ([]room.Room, error)
	FindAvailable(ctx context.Context) ([]room.Room, error)
	FindPopular(ctx context.Context, limit int32) ([]room.Room, error)
}

type roomQueriesImpl struct {
	repo  RoomViewRepo
	cache shared.RoomCache
	clk   clock.Clock
}

func NewRoomQueries(repo RoomViewRepo, cache shared.RoomCache, clk clock.Clock) RoomQueries {
	return &roomQueriesImpl{repo: repo, cache: cache, clk: clk}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	if cached, err := q.cache.Get(ctx, id); err != nil {
		slog.Warn("room cache read failed", "room_id", id, "error", err)
	} else if cached != nil {
		return toRoomView(*cached), nil
	}

	rm, err := q.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := q.cache.Set(ctx, *rm); err != nil {
		slog.Warn("room cache write failed", "room_id", id, "error", err)
	}
	return toRoomView(*rm), nil
}

func (q *roomQueriesImpl) ListRecommended(ctx context.Context) ([]*RoomView, error) {
	today := q.clk.Now().UTC().Truncate(24 * time.Hour)
	rooms, err := q.repo.FindRecommended(ctx, today)
	if err != nil {
		return nil, err
	}
	return toRoomViews(rooms), nil
}

func (q *roomQueriesImpl) ListAvailable(ctx context.Context) ([]*RoomView, error) {
	rooms, err := q.repo.FindAvailable(ctx)
	if err != nil {
		return nil, err
	}
	return toRoomViews(rooms), nil
}

func (q *roomQueriesImpl) ListPopular(ctx context.Context, limit int) ([]*RoomView, error) {
	if limit <= 0 {
		limit = 10
	}
	rooms, err := q.repo.FindPopular(ctx, int32(limit))
	if err != nil {
		return nil, err
	}
	return toRoomViews(rooms), nil
}

func toRoomView(r room.Room) *RoomView {
	return &RoomView{
		ID:                 r.ID,
		HotelID:            r.HotelID,
		Number:             r.Number,
		Available:          r.Available,
		TimesBooked:        int64(r.TimesBooked),
		RoomType:           r.RoomType,
		PricePerNightCents: r.PricePerNightCents,
		Capacity:           int32(r.Capacity),
		Version:            r.Version,
		CreatedAt:          r.CreatedAt,
	}
}

func toRoomViews(rooms []room.Room) []*RoomView {
	result := make([]*RoomView, len(rooms))
	for i, r := range rooms {
		result[i] = toRoomView(r)
	}
	return result
}
