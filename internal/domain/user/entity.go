package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleGuest    Role = "guest"
	RoleOperator Role = "operator"
	RoleAdmin    Role = "admin"
	// RoleService identifies service-to-service callers (the booking
	// orchestrator calling the hotel service).
	RoleService Role = "service"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) Valid() bool {
	switch r {
	case RoleGuest, RoleOperator, RoleAdmin, RoleService:
		return true
	}
	return false
}

type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	LastLoginAt  *time.Time
}
