package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   secrets) and anything security sensitive
// - default: Values common across all environments (timeouts, cadences)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	SMTP     SMTPConfig
	Recovery RecoveryConfig
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
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type SMTPConfig struct {
	Host     string `envconfig:"SMTP_HOST" required:"true"`
	Port     string `envconfig:"SMTP_PORT" default:"587"`
	User     string `envconfig:"SMTP_USER" default:""`
	Password string `envconfig:"SMTP_PASSWORD" default:""`
	From     string `envconfig:"SMTP_FROM" required:"true"`
}

// RecoveryConfig carries the static ends of the recovery workflow: the
// secret the restore key is derived from and the URLs baked into emails and
// redirects. Tunables (abandon delay, steps, ...) live in the options store.
type RecoveryConfig struct {
	Secret            string        `envconfig:"RECOVERY_SECRET" required:"true"`
	BaseURL           string        `envconfig:"RECOVERY_BASE_URL" required:"true"`
	CartURL           string        `envconfig:"RECOVERY_CART_URL" required:"true"`
	CheckoutURL       string        `envconfig:"RECOVERY_CHECKOUT_URL" required:"true"`
	StoreName         string        `envconfig:"RECOVERY_STORE_NAME" default:"Our store"`
	StoreURL          string        `envconfig:"RECOVERY_STORE_URL" default:""`
	SweepInterval     time.Duration `envconfig:"RECOVERY_SWEEP_INTERVAL" default:"1h"`
	SweepStartupDelay time.Duration `envconfig:"RECOVERY_SWEEP_STARTUP_DELAY" default:"10m"`
	AdminEmail        string        `envconfig:"ADMIN_EMAIL" required:"true"`
	AdminPasswordHash string        `envconfig:"ADMIN_PASSWORD_HASH" required:"true"`
	LookupCacheTTL    time.Duration `envconfig:"RECOVERY_LOOKUP_CACHE_TTL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
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
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Recovery: RecoveryConfig{
			Secret:      "test-secret",
			BaseURL:     "http://localhost:8889",
			CartURL:     "http://localhost:3000/cart",
			CheckoutURL: "http://localhost:3000/checkout",
			StoreName:   "Test Store",
			StoreURL:    "http://localhost:3000",
		},
	}
}
