package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timeouts, policy knobs, etc.), standard settings
// -----------------------------------------------------------------------------

// BookingConfig is the configuration of the booking orchestrator service.
type BookingConfig struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Hotel  HotelClientConfig
	Saga   SagaConfig
	Admin  AdminSeedConfig
}

// HotelConfig is the configuration of the hotel inventory service.
type HotelConfig struct {
	Server ServerConfig
	DB     DBConfig
	Redis  RedisConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RoomTTL  time.Duration `envconfig:"REDIS_ROOM_TTL" default:"5m"`
	Disabled bool          `envconfig:"REDIS_DISABLED" default:"false"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

// HotelClientConfig configures the orchestrator's HTTP client for the
// hotel inventory service.
type HotelClientConfig struct {
	BaseURL string        `envconfig:"HOTEL_SERVICE_URL" required:"true"`
	Timeout time.Duration `envconfig:"HOTEL_SERVICE_TIMEOUT" default:"5s"`
}

// SagaConfig holds the retry and circuit-breaker policy for the
// confirm-availability call.
type SagaConfig struct {
	MaxAttempts       int           `envconfig:"SAGA_MAX_ATTEMPTS" default:"3"`
	InitialBackoff    time.Duration `envconfig:"SAGA_INITIAL_BACKOFF" default:"1s"`
	BackoffMultiplier float64       `envconfig:"SAGA_BACKOFF_MULTIPLIER" default:"2"`
	BreakerThreshold  int           `envconfig:"SAGA_BREAKER_THRESHOLD" default:"5"`
	BreakerCooldown   time.Duration `envconfig:"SAGA_BREAKER_COOLDOWN" default:"30s"`
}

// AdminSeedConfig describes the admin identity upserted once at process
// start. Seeding is skipped when the email is empty.
type AdminSeedConfig struct {
	Email    string `envconfig:"ADMIN_EMAIL" default:""`
	Password string `envconfig:"ADMIN_PASSWORD" default:""`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadBookingConfig() (BookingConfig, error) {
	var cfg BookingConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return BookingConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func LoadHotelConfig() (HotelConfig, error) {
	var cfg HotelConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return HotelConfig{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestHotelConfig() HotelConfig {
	return HotelConfig{
		Server: ServerConfig{Port: "8890"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "hotel_test",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{Disabled: true},
		Log:   LogConfig{Level: "error", TimeFormat: "2006-01-02 15:04:05.000"},
		JWT:   JWTConfig{Secret: "test-secret", Duration: time.Hour},
	}
}

func NewTestBookingConfig() BookingConfig {
	return BookingConfig{
		Server: ServerConfig{Port: "8889"},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "booking_test",
			SSLMode:  "disable",
		},
		Log: LogConfig{Level: "error", TimeFormat: "2006-01-02 15:04:05.000"},
		JWT: JWTConfig{Secret: "test-secret", Duration: time.Hour},
		Saga: SagaConfig{
			MaxAttempts:       3,
			InitialBackoff:    time.Second,
			BackoffMultiplier: 2,
			BreakerThreshold:  5,
			BreakerCooldown:   30 * time.Second,
		},
	}
}
