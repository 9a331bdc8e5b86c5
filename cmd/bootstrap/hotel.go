package bootstrap

import (
	"context"

	"hotelbooking/internal/handler"
	"hotelbooking/internal/handler/api"
	"hotelbooking/internal/handler/middleware"
	"hotelbooking/internal/infra/readrepo"
	"hotelbooking/internal/infra/redisx"
	"hotelbooking/internal/infra/uow"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/pkg/config"
	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/usecase/commands"
	"hotelbooking/internal/usecase/queries"
	"hotelbooking/internal/usecase/shared"

	"go.uber.org/fx"
)

// HotelModule assembles the hotel inventory binary.
var HotelModule = fx.Options(
	fx.Provide(
		config.LoadHotelConfig,
		NewHotelDB,
		NewDBTX,
		NewHotelJWT,
		clock.NewRealClock,
		uow.NewPostgresUoW,
	),
	fx.Provide(
		NewRoomCache,
		commands.NewInventoryUseCase,
		commands.NewAdminUseCase,
		fx.Annotate(
			readrepo.NewRoomViewRepository,
			fx.As(new(queries.RoomViewRepo)),
		),
		fx.Annotate(
			readrepo.NewHotelViewRepository,
			fx.As(new(queries.HotelViewRepo)),
		),
		queries.NewRoomQueries,
		queries.NewHotelQueries,
	),
	fx.Provide(
		api.NewHotelHandler,
		api.NewRoomHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewHotelRouter),
)

func NewHotelJWT(cfg config.HotelConfig) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}

// NewRoomCache is best-effort: with Redis disabled the service runs on
// a no-op cache rather than refusing to start.
func NewRoomCache(lc fx.Lifecycle, cfg config.HotelConfig) (shared.RoomCache, error) {
	if cfg.Redis.Disabled {
		return redisx.NopRoomCache{}, nil
	}

	rdb, err := redisx.New(cfg.Redis)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return redisx.NewRoomCache(rdb, cfg.Redis.RoomTTL), nil
}
