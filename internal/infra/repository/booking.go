package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain/booking"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const stmt = `
INSERT INTO bookings (id, user_id, room_id, hotel_id, start_date, end_date, status, request_id, total_price_cents, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.db.Exec(ctx, stmt,
		b.ID(), b.UserID(), b.RoomID(), b.HotelID(),
		b.Stay().Start(), b.Stay().End(), b.Status(), b.RequestID(),
		b.TotalPrice().Cents(), b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "booking already exists for request id", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `
SELECT id, user_id, room_id, hotel_id, start_date, end_date, status, request_id, total_price_cents, created_at, updated_at
FROM bookings
WHERE id = $1`

	return scanBooking(r.db.QueryRow(ctx, query, id))
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status, updatedAt time.Time) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		id, status, updatedAt,
	)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID, roomID, hotelID, requestID uuid.UUID
		start, end, createdAt, updatedAt       time.Time
		statusStr                              string
		totalPriceCents                        int64
	)
	err := row.Scan(&id, &userID, &roomID, &hotelID, &start, &end, &statusStr, &requestID, &totalPriceCents, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
	}

	status, err := booking.ParseStatus(statusStr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid booking status in storage", err)
	}

	price, err := booking.NewMoney(totalPriceCents)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "invalid booking price in storage", err)
	}

	return booking.Reconstruct(
		id, userID, roomID, hotelID,
		booking.ReconstructStayRange(start, end),
		status, requestID, price, createdAt, updatedAt,
	), nil
}
