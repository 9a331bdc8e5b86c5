package readrepo

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

const bookingColumns = `id, user_id, room_id, hotel_id, start_date, end_date, status, request_id, total_price_cents, created_at, updated_at`

type BookingViewRepository struct {
	db db.DBTX
}

func NewBookingViewRepository(dbtx db.DBTX) *BookingViewRepository {
	return &BookingViewRepository{db: dbtx}
}

func (r *BookingViewRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	b, err := scanBookingRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}
	return b, nil
}

func (r *BookingViewRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*booking.Booking, error) {
	const query = `
SELECT ` + bookingColumns + `
FROM bookings
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query bookings", err)
	}
	defer rows.Close()

	var bookings []*booking.Booking
	for rows.Next() {
		b, err := scanBookingRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return bookings, nil
}

func scanBookingRow(row pgx.Row) (*booking.Booking, error) {
	var (
		id, userID, roomID, hotelID, requestID uuid.UUID
		start, end, createdAt, updatedAt       time.Time
		statusStr                              string
		totalPriceCents                        int64
	)
	err := row.Scan(&id, &userID, &roomID, &hotelID, &start, &end, &statusStr, &requestID, &totalPriceCents, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	status, err := booking.ParseStatus(statusStr)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(totalPriceCents)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		id, userID, roomID, hotelID,
		booking.ReconstructStayRange(start, end),
		status, requestID, price, createdAt, updatedAt,
	), nil
}
