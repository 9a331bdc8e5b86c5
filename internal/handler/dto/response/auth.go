package response

import (
	"hotelbooking/internal/usecase/commands"

	"github.com/google/uuid"
)

type LoginResponse struct {
	Token  string    `json:"token"`
	UserID uuid.UUID `json:"userId"`
	Role   string    `json:"role"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	return &LoginResponse{
		Token:  r.Token,
		UserID: r.UserID,
		Role:   r.Role.String(),
	}
}
