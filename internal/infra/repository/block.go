package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain/block"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BlockRepository struct {
	db db.DBTX
}

func NewBlockRepository(dbtx db.DBTX) *BlockRepository {
	return &BlockRepository{db: dbtx}
}

const blockColumns = `id, room_id, start_date, end_date, booking_id, request_id, status, created_at, expires_at`

func (r *BlockRepository) FindByRequestID(ctx context.Context, requestID uuid.UUID) (*block.Block, error) {
	const query = `
SELECT ` + blockColumns + `
FROM room_blocks
WHERE request_id = $1`

	b, err := scanBlock(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find block by request id", err)
	}
	return b, nil
}

// Inclusive overlap on both endpoints: start <= $3 AND end >= $2.
func (r *BlockRepository) FindConflicting(ctx context.Context, roomID uuid.UUID, period block.Period) ([]block.Block, error) {
	const query = `
SELECT ` + blockColumns + `
FROM room_blocks
WHERE room_id = $1 AND status IN ('PENDING', 'CONFIRMED')
  AND start_date <= $3 AND end_date >= $2
ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, roomID, period.Start, period.End)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query conflicting blocks", err)
	}
	defer rows.Close()

	var blocks []block.Block
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan block", err)
		}
		blocks = append(blocks, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate blocks", err)
	}
	return blocks, nil
}

func (r *BlockRepository) Create(ctx context.Context, b block.Block) error {
	const stmt = `
INSERT INTO room_blocks (id, room_id, start_date, end_date, booking_id, request_id, status, created_at, expires_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, stmt,
		b.ID, b.RoomID, b.Period.Start, b.Period.End,
		b.BookingID, b.RequestID, b.Status, b.CreatedAt, b.ExpiresAt,
	)
	if err != nil {
		// The unique request_id index is the storage-level guarantee
		// behind "at most one block per idempotency key".
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "block already exists for request id", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create block", err)
	}
	return nil
}

func (r *BlockRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status block.Status) error {
	tag, err := r.db.Exec(ctx, `UPDATE room_blocks SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update block status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "block not found", nil)
	}
	return nil
}

// Hard delete: a released hold must not be visible to future conflict
// checks.
func (r *BlockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM room_blocks WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete block", err)
	}
	return nil
}

func (r *BlockRepository) DeleteAllForRoom(ctx context.Context, roomID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM room_blocks WHERE room_id = $1`, roomID)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete blocks for room", err)
	}
	return nil
}

func scanBlock(row pgx.Row) (*block.Block, error) {
	var (
		b          block.Block
		start, end time.Time
		status     string
	)
	if err := row.Scan(&b.ID, &b.RoomID, &start, &end, &b.BookingID, &b.RequestID, &status, &b.CreatedAt, &b.ExpiresAt); err != nil {
		return nil, err
	}

	period, err := block.NewPeriod(start, end)
	if err != nil {
		return nil, err
	}
	b.Period = period

	st, err := block.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	b.Status = st

	return &b, nil
}
