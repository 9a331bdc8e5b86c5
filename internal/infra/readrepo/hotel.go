package readrepo

import (
	"context"
	"errors"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HotelViewRepository struct {
	db db.DBTX
}

func NewHotelViewRepository(dbtx db.DBTX) *HotelViewRepository {
	return &HotelViewRepository{db: dbtx}
}

func (r *HotelViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Hotel, error) {
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

func (r *HotelViewRepository) FindAll(ctx context.Context) ([]room.Hotel, error) {
	const query = `SELECT id, name, address, created_at FROM hotels ORDER BY name ASC, id ASC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query hotels", err)
	}
	defer rows.Close()

	var hotels []room.Hotel
	for rows.Next() {
		var h room.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan hotel", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate hotels", err)
	}
	return hotels, nil
}
