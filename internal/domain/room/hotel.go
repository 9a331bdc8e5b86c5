package room

import (
	"time"

	"github.com/google/uuid"
)

type Hotel struct {
	ID        uuid.UUID
	Name      string
	Address   string
	CreatedAt time.Time
}
