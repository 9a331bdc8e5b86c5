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

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) Create(ctx context.Context, h room.Hotel) error {
	const stmt = `INSERT INTO hotels (id, name, address, created_at) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, stmt, h.ID, h.Name, h.Address, h.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "hotel already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) Update(ctx context.Context, h room.Hotel) error {
	const stmt = `UPDATE hotels SET name = $2, address = $3 WHERE id = $1`

	tag, err := r.db.Exec(ctx, stmt, h.ID, h.Name, h.Address)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "hotel not found", nil)
	}
	return nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Hotel, error) {
	const query = `SELECT id, name, address, created_at FROM hotels WHERE id = $1`

	var h room.Hotel
	err := r.db.QueryRow(ctx, query, id).Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "hotel not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find hotel", err)
	}
	return &h, nil
}
