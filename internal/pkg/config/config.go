package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// - optional integrations (Redis, AMQP, tracing) are disabled when their address is empty
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Booking BookingConfig
	Redis   RedisConfig
	AMQP    AMQPConfig
	Tracing TracingConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

// Tokens are issued by the identity provider; this service only verifies them.
type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	PendingTimeoutMinutes int           `envconfig:"AUTO_CANCEL_PENDING_MINUTES" default:"10"`
	SweepInterval         time.Duration `envconfig:"AUTO_CANCEL_SWEEP_INTERVAL" default:"60s"`
	SweepBatchSize        int           `envconfig:"AUTO_CANCEL_BATCH_SIZE" default:"100"`
	DefaultCurrency       string        `envconfig:"BOOKING_DEFAULT_CURRENCY" default:"VND"`
	TimeZone              string        `envconfig:"BOOKING_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	ReferenceCacheTTL     time.Duration `envconfig:"REFERENCE_CACHE_TTL" default:"60s"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Prefix   string `envconfig:"REDIS_KEY_PREFIX" default:"court-booking"`
}

type AMQPConfig struct {
	URL      string `envconfig:"AMQP_URL"`
	Exchange string `envconfig:"AMQP_EXCHANGE" default:"booking.events"`
}

type TracingConfig struct {
	Endpoint    string `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName string `envconfig:"OTEL_SERVICE_NAME" default:"court-booking"`
	Environment string `envconfig:"ENV" default:"dev"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// SweeperEnabled reports whether stale pending bookings should be auto-cancelled.
func (c BookingConfig) SweeperEnabled() bool {
	return c.PendingTimeoutMinutes > 0 && c.SweepInterval > 0
}

func (c BookingConfig) PendingTimeout() time.Duration {
	return time.Duration(c.PendingTimeoutMinutes) * time.Minute
}

// Location falls back to UTC when the configured zone is unknown to the host.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// Validate catches settings that envconfig accepts but the service cannot run with.
func (c Config) Validate() error {
	if _, err := time.ParseDuration(c.JWT.Duration); err != nil {
		return fmt.Errorf("JWT_DURATION: %w", err)
	}
	if len(c.Booking.DefaultCurrency) != 3 {
		return fmt.Errorf("BOOKING_DEFAULT_CURRENCY must be a 3-letter code, got %q", c.Booking.DefaultCurrency)
	}
	if c.Booking.PendingTimeoutMinutes < 0 {
		return errors.New("AUTO_CANCEL_PENDING_MINUTES must not be negative")
	}
	if c.Booking.SweeperEnabled() && c.Booking.SweepBatchSize <= 0 {
		return errors.New("AUTO_CANCEL_BATCH_SIZE must be positive when auto-cancel is enabled")
	}
	if c.Booking.ReferenceCacheTTL < 0 {
		return errors.New("REFERENCE_CACHE_TTL must not be negative")
	}
	if c.DB.MaxConns < 0 {
		return errors.New("DB_MAX_CONNS must not be negative")
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 10,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			PendingTimeoutMinutes: 10,
			SweepInterval:         time.Minute,
			SweepBatchSize:        100,
			DefaultCurrency:       "VND",
			TimeZone:              "UTC",
			ReferenceCacheTTL:     time.Minute,
		},
		Tracing: TracingConfig{
			ServiceName: "court-booking-test",
			Environment: "test",
		},
	}
}
