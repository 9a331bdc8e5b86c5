package readrepo

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const roomColumns = `id, hotel_id, number, available, times_booked, room_type, price_per_night_cents, capacity, version, created_at`

type RoomViewRepository struct {
	db db.DBTX
}

func NewRoomViewRepository(dbtx db.DBTX) *RoomViewRepository {
	return &RoomViewRepository{db: dbtx}
}

func (r *RoomViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	rm, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find room", err)
	}
	return rm, nil
}

// FindRecommended lists bookable rooms for the given day, least-booked
// first. A room is excluded when a confirmed block covers the day.
func (r *RoomViewRepository) FindRecommended(ctx context.Context, day time.Time) ([]room.Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms r
WHERE r.available = TRUE
  AND NOT EXISTS (
    SELECT 1 FROM room_blocks b
    WHERE b.room_id = r.id
      AND b.status = 'CONFIRMED'
      AND b.start_date <= $1 AND b.end_date >= $1
  )
ORDER BY r.times_booked ASC, r.id ASC`

	return r.queryRooms(ctx, query, day)
}

func (r *RoomViewRepository) FindAvailable(ctx context.Context) ([]room.Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms
WHERE available = TRUE
ORDER BY number ASC`

	return r.queryRooms(ctx, query)
}

func (r *RoomViewRepository) FindPopular(ctx context.Context, limit int32) ([]room.Room, error) {
	const query = `
SELECT ` + roomColumns + `
FROM rooms
ORDER BY times_booked DESC, id ASC
LIMIT $1`

	return r.queryRooms(ctx, query, limit)
}

func (r *RoomViewRepository) queryRooms(ctx context.Context, query string, args ...any) ([]room.Room, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query rooms", err)
	}
	defer rows.Close()

	var rooms []room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan room", err)
		}
		rooms = append(rooms, *rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate rooms", err)
	}
	return rooms, nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var rm room.Room
	err := row.Scan(
		&rm.ID, &rm.HotelID, &rm.Number, &rm.Available, &rm.TimesBooked,
		&rm.RoomType, &rm.PricePerNightCents, &rm.Capacity, &rm.Version, &rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
