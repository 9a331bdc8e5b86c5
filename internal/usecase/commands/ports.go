package commands

import (
	"context"
	"time"

	"hotelbooking/internal/domain/room"
	"hotelbooking/internal/pkg/errs"

	"github.com/google/uuid"
)

// Gateway-level outcomes. The transport maps its own failures onto
// these; only ErrGatewayUnavailable is retryable.
var (
	ErrGatewayConflict    = errs.New("room dates conflict with an existing hold")
	ErrGatewayNotFound    = errs.New("room not found upstream")
	ErrGatewayUnavailable = errs.New("hotel service unavailable")
)

// ConfirmAvailabilityRequest carries the idempotency key that ties a
// booking to its room block across services.
type ConfirmAvailabilityRequest struct {
	StartDate time.Time
	EndDate   time.Time
	BookingID uuid.UUID
	RequestID uuid.UUID
}

// HotelGateway is the booking orchestrator's view of the hotel service.
type HotelGateway interface {
	RecommendedRooms(ctx context.Context) ([]room.Room, error)
	RoomByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	// ConfirmAvailability places (or idempotently replays) a hold on the
	// room for the date range.
	ConfirmAvailability(ctx context.Context, roomID uuid.UUID, req ConfirmAvailabilityRequest) error
	// ReleaseRoom removes the hold identified by the request id.
	ReleaseRoom(ctx context.Context, roomID, requestID uuid.UUID) error
	IncrementTimesBooked(ctx context.Context, roomID uuid.UUID) error
}
