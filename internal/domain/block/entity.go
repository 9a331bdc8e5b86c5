package block

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid block status")
	ErrInvalidPeriod    = errors.New("start date must not be after end date")
	ErrAlreadyConfirmed = errors.New("block already confirmed")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Period is an inclusive date range held by a block. Both endpoints
// count: two blocks sharing only a boundary day overlap.
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	start = truncate(start)
	end = truncate(end)
	if start.After(end) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{Start: start, End: end}, nil
}

// Overlaps implements the inclusive overlap test used by the conflict
// check: start <= other.end AND end >= other.start.
func (p Period) Overlaps(other Period) bool {
	return !p.Start.After(other.End) && !p.End.Before(other.Start)
}

// Covers reports whether a single day falls inside the period.
func (p Period) Covers(day time.Time) bool {
	day = truncate(day)
	return !day.Before(p.Start) && !day.After(p.End)
}

func truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Block is a hold on a room for a date range, keyed by the caller's
// request id (idempotency key). At most one block per request id ever
// exists. ExpiresAt is carried but never populated: stale PENDING
// blocks are a known, unresolved gap in the design and no TTL sweep
// exists.
type Block struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	Period    Period
	BookingID uuid.UUID
	RequestID uuid.UUID
	Status    Status
	CreatedAt time.Time
	ExpiresAt *time.Time
}

func NewPending(roomID, bookingID, requestID uuid.UUID, period Period, now time.Time) Block {
	return Block{
		ID:        uuid.New(),
		RoomID:    roomID,
		Period:    period,
		BookingID: bookingID,
		RequestID: requestID,
		Status:    StatusPending,
		CreatedAt: now,
		ExpiresAt: nil,
	}
}

// Confirm promotes a PENDING block. Confirming a CONFIRMED block is the
// idempotent replay case and reports ErrAlreadyConfirmed so callers can
// treat it as a no-op.
func (b *Block) Confirm() error {
	if b.Status == StatusConfirmed {
		return ErrAlreadyConfirmed
	}
	b.Status = StatusConfirmed
	return nil
}
