package cmd

import (
	"fmt"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment. A .env file, when present, is loaded first.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST" env-default:"localhost"`
	DBPort     string `env:"DB_PORT" env-default:"5432"`
	DBUser     string `env:"DB_USER" env-required:"true"`
	DBPassword string `env:"DB_PASSWORD" env-required:"true"`
	DBName     string `env:"DB_NAME" env-required:"true"`
	DBSslMode  string `env:"DB_SSLMODE" env-default:"disable"`
	// DBDriver selects the database/sql driver behind gorm: pgx or postgres (lib/pq).
	DBDriver string `env:"DB_DRIVER" env-default:"pgx"`

	JWTSecret   string        `env:"JWT_SECRET" env-required:"true"`
	JWTIssuer   string        `env:"JWT_ISSUER" env-default:"parcels"`
	JWTAudience string        `env:"JWT_AUDIENCE" env-default:"parcels-api"`
	JWTTTL      time.Duration `env:"JWT_TTL" env-default:"1h"`
	BcryptCost  int           `env:"BCRYPT_COST" env-default:"10"`

	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" env-default:"0"`
	StatusesTTL   time.Duration `env:"STATUSES_CACHE_TTL" env-default:"1h"`

	ArchiveSchedule  string        `env:"ARCHIVE_SCHEDULE"`
	ArchiveRetention time.Duration `env:"ARCHIVE_RETENTION" env-default:"720h"`
	ArchiveBatchSize int           `env:"ARCHIVE_BATCH_SIZE" env-default:"100"`

	LogEnv   string `env:"LOG_ENV" env-default:"production"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// LoadConfig reads the environment into a Config and checks the values cleanenv cannot.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "pgx", "postgres":
	default:
		return fmt.Errorf("DB_DRIVER must be pgx or postgres, got %q", c.DBDriver)
	}
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 bytes")
	}
	if c.JWTTTL <= 0 {
		return fmt.Errorf("JWT_TTL must be positive")
	}
	return nil
}

// DSN is the database URL understood by pgx, lib/pq and golang-migrate alike.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.DBSslMode}}.Encode(),
	}
	return u.String()
}

// Usage describes every supported variable.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return err.Error()
	}
	return text
}
