package repository

import (
	"context"
	"errors"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type RoomRepository struct {
	db db.DBTX
}

func NewRoomRepository(dbtx db.DBTX) *RoomRepository {
	return &RoomRepository{db: dbtx}
}

func (r *RoomRepository) Create(ctx context.Context, rm room.Room) error {
	const stmt = `
INSERT INTO rooms (id, hotel_id, number, available, times_booked, room_type, price_per_night_cents, capacity, version, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, stmt,
		rm.ID, rm.HotelID, rm.Number, rm.Available, rm.TimesBooked,
		rm.RoomType, rm.PricePerNightCents, rm.Capacity, rm.Version, rm.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "room already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	const query = `
SELECT id, hotel_id, number, available, times_booked, room_type, price_per_night_cents, capacity, version, created_at
FROM rooms
WHERE id = $1`

	var rm room.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rm.ID, &rm.HotelID, &rm.Number, &rm.Available, &rm.TimesBooked,
		&rm.RoomType, &rm.PricePerNightCents, &rm.Capacity, &rm.Version, &rm.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "room not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find room", err)
	}
	return &rm, nil
}

// Update writes all mutable fields guarded by the version token.
func (r *RoomRepository) Update(ctx context.Context, rm room.Room) error {
	const stmt = `
UPDATE rooms
SET hotel_id = $2, number = $3, available = $4, room_type = $5,
    price_per_night_cents = $6, capacity = $7, version = version + 1
WHERE id = $1 AND version = $8`

	tag, err := r.db.Exec(ctx, stmt,
		rm.ID, rm.HotelID, rm.Number, rm.Available,
		rm.RoomType, rm.PricePerNightCents, rm.Capacity, rm.Version,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindVersionConflict, "room was modified concurrently", nil)
	}
	return nil
}

func (r *RoomRepository) IncrementTimesBooked(ctx context.Context, id uuid.UUID) error {
	const stmt = `
UPDATE rooms SET times_booked = times_booked + 1, version = version + 1 WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to increment times_booked", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	return nil
}

// Floors at zero; releasing more holds than were counted never drives
// the counter negative.
func (r *RoomRepository) DecrementTimesBooked(ctx context.Context, id uuid.UUID) error {
	const stmt = `
UPDATE rooms SET times_booked = GREATEST(times_booked - 1, 0), version = version + 1 WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to decrement times_booked", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "room not found", nil)
	}
	return nil
}
