package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Notifier  NotifierConfig  `yaml:"notifier"`
	Retention RetentionConfig `yaml:"retention"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Scan-Token,X-Request-Id,Retry-After"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400" validate:"gte=0"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080" validate:"gte=1,lte=65535"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"  validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"  validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"  validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"  validate:"gt=0"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true" validate:"required"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"    validate:"gte=1"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"     validate:"gte=0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	// StatementTimeout bounds every statement server-side. Zero disables it.
	StatementTimeout time.Duration `yaml:"statement_timeout" env:"DATABASE_STATEMENT_TIMEOUT" env-default:"30s" validate:"gte=0"`
	// TxAttempts is how often a transaction that hit a deadlock or a
	// serialization failure runs in total.
	TxAttempts int `yaml:"tx_attempts" env:"DATABASE_TX_ATTEMPTS" env-default:"3" validate:"gte=1,lte=10"`
}

// AuthConfig holds bearer token settings. Tokens are issued by the identity
// provider with the shared HS256 secret.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true" validate:"required"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"volunteer" validate:"required"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"       validate:"gt=0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json" validate:"omitempty,oneof=json text"`
}

// RateLimitConfig holds per-caller request budgets.
type RateLimitConfig struct {
	// ScanPerMinute limits the attendance endpoints (scan, sign-in, sign-out).
	// Zero disables the limit.
	ScanPerMinute   int           `yaml:"scan_per_minute"  env:"RATE_LIMIT_SCAN_PER_MINUTE" env-default:"30" validate:"gte=0"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m" validate:"gt=0"`
}

// NotifierConfig sizes the asynchronous notification dispatcher.
type NotifierConfig struct {
	QueueSize       int           `yaml:"queue_size"       env:"NOTIFIER_QUEUE_SIZE"       env-default:"1024" validate:"gte=1"`
	Workers         int           `yaml:"workers"          env:"NOTIFIER_WORKERS"          env-default:"2"    validate:"gte=1,lte=64"`
	DeliveryTimeout time.Duration `yaml:"delivery_timeout" env:"NOTIFIER_DELIVERY_TIMEOUT" env-default:"5s"   validate:"gt=0"`
}

// RetentionConfig holds data retention settings used by the cleanup job.
type RetentionConfig struct {
	NotificationRetentionDays int `yaml:"notification_retention_days" env:"RETENTION_NOTIFICATION_DAYS" env-default:"90" validate:"gte=1"`
}

// NotificationRetention returns the notification retention as a duration.
func (r RetentionConfig) NotificationRetention() time.Duration {
	return time.Duration(r.NotificationRetentionDays) * 24 * time.Hour
}
