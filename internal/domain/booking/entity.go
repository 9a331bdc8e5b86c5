package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrNotPending       = errors.New("booking is not pending")
	ErrAlreadyFinalized = errors.New("booking is already finalized")
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrInvalidStatus
}

// Booking is the orchestrator-owned side of the saga. RequestID is the
// idempotency key shared with the hotel service's room block, tying
// both halves of the saga together.
type Booking struct {
	id         uuid.UUID
	userID     uuid.UUID
	roomID     uuid.UUID
	hotelID    uuid.UUID
	stay       StayRange
	status     Status
	requestID  uuid.UUID
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

func NewBooking(userID, roomID, hotelID uuid.UUID, stay StayRange, totalPrice Money, now time.Time) *Booking {
	return &Booking{
		id:         uuid.New(),
		userID:     userID,
		roomID:     roomID,
		hotelID:    hotelID,
		stay:       stay,
		status:     StatusPending,
		requestID:  uuid.New(),
		totalPrice: totalPrice,
		createdAt:  now,
		updatedAt:  now,
	}
}

func Reconstruct(
	id, userID, roomID, hotelID uuid.UUID,
	stay StayRange,
	status Status,
	requestID uuid.UUID,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		userID:     userID,
		roomID:     roomID,
		hotelID:    hotelID,
		stay:       stay,
		status:     status,
		requestID:  requestID,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

// Confirm finalizes the saga's success path. Only a PENDING booking can
// be confirmed.
func (b *Booking) Confirm(now time.Time) error {
	if b.status != StatusPending {
		return ErrNotPending
	}
	b.status = StatusConfirmed
	b.updatedAt = now
	return nil
}

// Cancel is idempotent: cancelling a CANCELLED booking is a no-op and
// reports false. CANCELLED is terminal.
func (b *Booking) Cancel(now time.Time) bool {
	if b.status == StatusCancelled {
		return false
	}
	b.status = StatusCancelled
	b.updatedAt = now
	return true
}

func (b *Booking) IsOwnedBy(userID uuid.UUID) bool {
	return b.userID == userID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) UserID() uuid.UUID    { return b.userID }
func (b *Booking) RoomID() uuid.UUID    { return b.roomID }
func (b *Booking) HotelID() uuid.UUID   { return b.hotelID }
func (b *Booking) Stay() StayRange      { return b.stay }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) RequestID() uuid.UUID { return b.requestID }
func (b *Booking) TotalPrice() Money    { return b.totalPrice }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
