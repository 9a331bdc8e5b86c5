package bootstrap

import (
	"context"

	"hotelbooking/internal/domain/user"
	"hotelbooking/internal/handler"
	"hotelbooking/internal/handler/api"
	"hotelbooking/internal/handler/middleware"
	"hotelbooking/internal/infra/hotelapi"
	"hotelbooking/internal/infra/readrepo"
	"hotelbooking/internal/infra/uow"
	"hotelbooking/internal/pkg/clock"
	"hotelbooking/internal/pkg/config"
	"hotelbooking/internal/pkg/errs"
	"hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/pkg/resilience"
	"hotelbooking/internal/usecase/commands"
	"hotelbooking/internal/usecase/queries"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// BookingModule assembles the booking orchestrator binary.
var BookingModule = fx.Options(
	fx.Provide(
		config.LoadBookingConfig,
		NewBookingDB,
		NewDBTX,
		NewBookingJWT,
		clock.NewRealClock,
		uow.NewPostgresUoW,
	),
	fx.Provide(
		NewHotelGateway,
		NewSagaRetryer,
		NewSagaBreaker,
		commands.NewBookingUseCase,
		commands.NewAuthUseCase,
		fx.Annotate(
			readrepo.NewBookingViewRepository,
			fx.As(new(queries.BookingViewRepo)),
		),
		queries.NewBookingQueries,
	),
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewBookingRouter),
	fx.Invoke(seedAdmin),
)

func NewBookingJWT(cfg config.BookingConfig) *jwt.Service {
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
}

// NewHotelGateway mints a long-lived service credential and hands the
// orchestrator its HTTP client for the hotel service.
func NewHotelGateway(cfg config.BookingConfig, jwtSvc *jwt.Service) (commands.HotelGateway, error) {
	token, err := jwtSvc.GenerateToken(uuid.New(), user.RoleService)
	if err != nil {
		return nil, errs.Wrap(err, "failed to mint service token")
	}
	return hotelapi.NewClient(cfg.Hotel, token), nil
}

func NewSagaRetryer(cfg config.BookingConfig) *resilience.Retryer {
	return resilience.NewRetryer(cfg.Saga.MaxAttempts, cfg.Saga.InitialBackoff, cfg.Saga.BackoffMultiplier)
}

func NewSagaBreaker(cfg config.BookingConfig, clk clock.Clock) *resilience.Breaker {
	return resilience.NewBreaker(cfg.Saga.BreakerThreshold, cfg.Saga.BreakerCooldown, clk)
}

func seedAdmin(lc fx.Lifecycle, authCommands commands.AuthCommands, cfg config.BookingConfig) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return authCommands.SeedAdmin(ctx, cfg.Admin)
		},
	})
}
