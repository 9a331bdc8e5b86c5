package bootstrap

import (
	"context"

	"hotelbooking/internal/infra/db"
	"hotelbooking/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

func NewBookingDB(lc fx.Lifecycle, cfg config.BookingConfig) (*pgxpool.Pool, error) {
	return newDB(lc, cfg.DB)
}

func NewHotelDB(lc fx.Lifecycle, cfg config.HotelConfig) (*pgxpool.Pool, error) {
	return newDB(lc, cfg.DB)
}

func newDB(lc fx.Lifecycle, cfg config.DBConfig) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return pool, nil
}

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
