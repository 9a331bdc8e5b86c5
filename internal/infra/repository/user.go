package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain/user"
	"hotelbooking/internal/infra"
	"hotelbooking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	const stmt = `
INSERT INTO users (id, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, stmt, u.ID, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr(infra.KindDuplicateKey, "user already exists", err)
		}
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to create user", err)
	}
	return nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	const query = `
SELECT id, email, password_hash, role, created_at, last_login_at
FROM users
WHERE email = $1`

	var u user.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.LastLoginAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}
	return &u, nil
}

// UpsertByEmail keeps the admin seed idempotent across restarts.
func (r *UserRepository) UpsertByEmail(ctx context.Context, u user.User) error {
	const stmt = `
INSERT INTO users (id, email, password_hash, role, created_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (email) DO UPDATE SET password_hash = EXCLUDED.password_hash, role = EXCLUDED.role`

	_, err := r.db.Exec(ctx, stmt, u.ID, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to upsert user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET last_login_at = $2 WHERE id = $1`, id, at)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to update last login", err)
	}
	return nil
}
