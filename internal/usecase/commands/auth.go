package commands

import (
	"context"
	"log/slog"

	"hotelbooking/internal/domain/user"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/pkg/config"
	"hotelbooking/internal/pkg/errs"
	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/password"
	"hotelbooking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrEmailTaken         = errs.New("email already registered")
)

type LoginResult struct {
	Token  string
	UserID uuid.UUID
	Role   user.Role
}

type AuthCommands interface {
	// Register creates a guest account and signs it in. Elevated roles
	// are never self-service: operators and admins are provisioned by an
	// existing admin (or the seed).
	Register(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
	// SeedAdmin upserts the configured admin identity. A blank email
	// disables seeding.
	SeedAdmin(ctx context.Context, cfg config.AdminSeedConfig) error
}

type authUseCaseImpl struct {
	uow   shared.UnitOfWork
	jwt   *jwt.Service
	clock clock.Clock
}

func NewAuthUseCase(uow shared.UnitOfWork, jwtSvc *jwt.Service, clock clock.Clock) AuthCommands {
	return &authUseCaseImpl{uow: uow, jwt: jwtSvc, clock: clock}
}

func (u *authUseCaseImpl) Register(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	newUser := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleGuest,
		CreatedAt:    u.clock.Now(),
	}
	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().Create(ctx, newUser)
	})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrEmailTaken)
		}
		return nil, err
	}

	token, err := u.jwt.GenerateToken(newUser.ID, newUser.Role)
	if err != nil {
		return nil, errs.Wrap(err, "failed to issue token")
	}
	return &LoginResult{Token: token, UserID: newUser.ID, Role: newUser.Role}, nil
}

func (u *authUseCaseImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	var result *LoginResult
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Users().FindByEmail(ctx, email)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, ErrInvalidCredentials)
			}
			return err
		}
		if err := password.ComparePassword(found.PasswordHash, plainPassword); err != nil {
			return errs.Mark(err, ErrInvalidCredentials)
		}

		token, err := u.jwt.GenerateToken(found.ID, found.Role)
		if err != nil {
			return errs.Wrap(err, "failed to issue token")
		}

		if err := tx.Users().UpdateLastLogin(ctx, found.ID, u.clock.Now()); err != nil {
			// Login still succeeds; the timestamp is bookkeeping.
			slog.Warn("failed to update last login", "user_id", found.ID, "error", err.Error())
		}

		result = &LoginResult{Token: token, UserID: found.ID, Role: found.Role}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (u *authUseCaseImpl) SeedAdmin(ctx context.Context, cfg config.AdminSeedConfig) error {
	if cfg.Email == "" {
		return nil
	}
	if cfg.Password == "" {
		return errs.New("admin seed requires a password")
	}

	hash, err := password.HashPassword(cfg.Password)
	if err != nil {
		return errs.Wrap(err, "failed to hash admin password")
	}

	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpsertByEmail(ctx, user.User{
			ID:           uuid.New(),
			Email:        cfg.Email,
			PasswordHash: hash,
			Role:         user.RoleAdmin,
			CreatedAt:    u.clock.Now(),
		})
	})
}
