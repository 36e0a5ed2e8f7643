package config

import (
	"fmt"
	"time"

	"github.com/heartmarshall/assetledger/pkg/retry"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	Retry     RetryConfig     `yaml:"retry"`
	Cascade   CascadeConfig   `yaml:"cascade"`
	Inventory InventoryConfig `yaml:"inventory"`
	Followup  FollowupConfig  `yaml:"followup"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MetricsPath     string        `yaml:"metrics_path"     env:"SERVER_METRICS_PATH"     env-default:"/metrics"`
}

// Addr returns host:port for net/http.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	QueryTimeout    time.Duration `yaml:"query_timeout"      env:"DATABASE_QUERY_TIMEOUT"      env-default:"5s"`
}

// CORSConfig holds Cross-Origin Resource Sharing settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:3000"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id,X-Actor-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// RateLimitConfig caps requests that start cascades. Zero disables a limit.
type RateLimitConfig struct {
	CascadePerMinute int           `yaml:"cascade_per_minute" env:"RATE_LIMIT_CASCADE_PER_MINUTE" env-default:"30"`
	ImportPerMinute  int           `yaml:"import_per_minute"  env:"RATE_LIMIT_IMPORT_PER_MINUTE"  env-default:"10"`
	CleanupInterval  time.Duration `yaml:"cleanup_interval"   env:"RATE_LIMIT_CLEANUP_INTERVAL"   env-default:"5m"`
}

// RedisConfig holds the followup queue connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
	QueueKey string `yaml:"queue_key" env:"REDIS_QUEUE_KEY" env-default:"assetledger:followups"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RetryConfig controls retries of read-modify-write operations that lose an
// optimistic version check.
type RetryConfig struct {
	MaxAttempts  int           `yaml:"max_attempts"  env:"RETRY_MAX_ATTEMPTS"  env-default:"4"`
	InitialDelay time.Duration `yaml:"initial_delay" env:"RETRY_INITIAL_DELAY" env-default:"20ms"`
	MaxDelay     time.Duration `yaml:"max_delay"     env:"RETRY_MAX_DELAY"     env-default:"500ms"`
	Multiplier   float64       `yaml:"multiplier"    env:"RETRY_MULTIPLIER"    env-default:"2.0"`
}

// Policy converts the configuration to a retry policy.
func (r RetryConfig) Policy() retry.Config {
	return retry.Config{
		MaxAttempts:       r.MaxAttempts,
		InitialBackoff:    r.InitialDelay,
		MaxBackoff:        r.MaxDelay,
		BackoffMultiplier: r.Multiplier,
	}
}

// CascadeConfig holds cascade coordinator settings.
type CascadeConfig struct {
	StepTimeout    time.Duration `yaml:"step_timeout"     env:"CASCADE_STEP_TIMEOUT"     env-default:"10s"`
	MaxBulkDelete  int           `yaml:"max_bulk_delete"  env:"CASCADE_MAX_BULK_DELETE"  env-default:"200"`
	MaxMassUpdate  int           `yaml:"max_mass_update"  env:"CASCADE_MAX_MASS_UPDATE"  env-default:"500"`
	ResumeBatch    int           `yaml:"resume_batch"     env:"CASCADE_RESUME_BATCH"     env-default:"50"`
	ResumeInterval time.Duration `yaml:"resume_interval"  env:"CASCADE_RESUME_INTERVAL"  env-default:"1m"`
	// Runs untouched for this long are considered abandoned by their process.
	ResumeStaleAfter time.Duration `yaml:"resume_stale_after" env:"CASCADE_RESUME_STALE_AFTER" env-default:"2m"`
}

// InventoryConfig holds consumable and asset import settings.
type InventoryConfig struct {
	LowStockThreshold int `yaml:"low_stock_threshold" env:"INVENTORY_LOW_STOCK_THRESHOLD" env-default:"5"`
	MaxImportRows     int `yaml:"max_import_rows"     env:"INVENTORY_MAX_IMPORT_ROWS"     env-default:"1000"`
	FeedLimit         int `yaml:"feed_limit"          env:"INVENTORY_FEED_LIMIT"          env-default:"20"`
}

// FollowupConfig controls replay of failed best-effort employee writes.
type FollowupConfig struct {
	ReplayInterval time.Duration `yaml:"replay_interval" env:"FOLLOWUP_REPLAY_INTERVAL" env-default:"30s"`
	ReplayBatch    int           `yaml:"replay_batch"    env:"FOLLOWUP_REPLAY_BATCH"    env-default:"100"`
	MaxAttempts    int           `yaml:"max_attempts"    env:"FOLLOWUP_MAX_ATTEMPTS"    env-default:"10"`
}

// TracingConfig holds OpenTelemetry settings. An empty endpoint disables export.
type TracingConfig struct {
	OTLPEndpoint string  `yaml:"otlp_endpoint" env:"TRACING_OTLP_ENDPOINT"`
	ServiceName  string  `yaml:"service_name"  env:"TRACING_SERVICE_NAME"  env-default:"assetledger"`
	SampleRatio  float64 `yaml:"sample_ratio"  env:"TRACING_SAMPLE_RATIO"  env-default:"1.0"`
	Insecure     bool    `yaml:"insecure"      env:"TRACING_INSECURE"      env-default:"true"`
}

func (t TracingConfig) Enabled() bool { return t.OTLPEndpoint != "" }
