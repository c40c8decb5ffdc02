package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Discovery strategies for the implementation tenant scanner.
const (
	StrategyEarlyStop  = "early-stop"
	StrategyExhaustive = "exhaustive"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// the prober and discovery engine, background workers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment (debug, info, warn, error).
	LogLevel string `env:"LOG_LEVEL" env-default:"" yaml:"logLevel"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request.
		// Synchronous production lookups must fit in it.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		// Username for database authentication
		Username string `env:"DATABASE_USERNAME" env-default:"myuser" yaml:"username"`
		// Password for database authentication
		Password string `env:"DATABASE_PASSWORD" env-default:"mypassword" yaml:"password"`
		// Host is the database server hostname or IP address
		Host string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		// Port is the database server port number
		Port int `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		// SslMode defines the SSL mode for the database connection
		SslMode string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"tenantfinder" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Prober configures the HTTP client used to probe candidate URLs.
	Prober struct {
		// Timeout bounds every single probe attempt
		Timeout time.Duration `env:"PROBER_TIMEOUT" env-default:"2s" yaml:"timeout"`
		// MaxAttempts is the retry budget for transient failures (at most 3)
		MaxAttempts int `env:"PROBER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// InitialBackoff is the wait before the first retry
		InitialBackoff time.Duration `env:"PROBER_INITIAL_BACKOFF" env-default:"300ms" yaml:"initialBackoff"`
		// MaxBackoff caps the wait between retries
		MaxBackoff time.Duration `env:"PROBER_MAX_BACKOFF" env-default:"2s" yaml:"maxBackoff"`
		// MaxRedirects is the number of redirects followed per request
		MaxRedirects int `env:"PROBER_MAX_REDIRECTS" env-default:"10" yaml:"maxRedirects"`
		// UserAgent is sent with every probe
		UserAgent string `env:"PROBER_USER_AGENT" env-default:"TenantFinder/1.0" yaml:"userAgent"`
		// MaxBodyBytes caps how much of a response body is inspected
		MaxBodyBytes int64 `env:"PROBER_MAX_BODY_BYTES" env-default:"65536" yaml:"maxBodyBytes"`
		// RateLimit is the number of probe requests per second; 0 disables limiting
		RateLimit float64 `env:"PROBER_RATE_LIMIT" env-default:"0" yaml:"rateLimit"`
		// RateBurst is the token bucket size used with RateLimit
		RateBurst int `env:"PROBER_RATE_BURST" env-default:"10" yaml:"rateBurst"`
	} `yaml:"prober"`

	// Discovery configures the discovery engine.
	Discovery struct {
		// LocatorWorkers bounds concurrent production probes
		LocatorWorkers int `env:"DISCOVERY_LOCATOR_WORKERS" env-default:"8" yaml:"locatorWorkers"`
		// ScannerWorkers bounds concurrent implementation tenant probes
		ScannerWorkers int `env:"DISCOVERY_SCANNER_WORKERS" env-default:"10" yaml:"scannerWorkers"`
		// MaxIndex is the default highest implementation tenant index
		MaxIndex int `env:"DISCOVERY_MAX_INDEX" env-default:"10" yaml:"maxIndex"`
		// MaxIndexLimit is the highest MaxIndex a caller may ask for
		MaxIndexLimit int `env:"DISCOVERY_MAX_INDEX_LIMIT" env-default:"50" yaml:"maxIndexLimit"`
		// Strategy selects the implementation tenant scan strategy (early-stop or exhaustive)
		Strategy string `env:"DISCOVERY_STRATEGY" env-default:"early-stop" yaml:"strategy"`
		// EarlyStopThreshold is the number of consecutive misses that abandon an early-stop scan
		EarlyStopThreshold int `env:"DISCOVERY_EARLY_STOP_THRESHOLD" env-default:"3" yaml:"earlyStopThreshold"`
	} `yaml:"discovery"`

	// Registry points to an optional data center registry file replacing the built-in one.
	Registry struct {
		// Path of the YAML registry file; empty uses the built-in registry
		Path string `env:"REGISTRY_PATH" env-default:"" yaml:"path"`
	} `yaml:"registry"`

	// Worker configures background discovery jobs.
	Worker struct {
		// MaxWorkers is the number of discovery jobs processed concurrently
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"5" yaml:"maxWorkers"`
		// MaxAttempts is the number of times a discovery job is tried before it is marked failed
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"3" yaml:"maxAttempts"`
		// ResultCacheTTL is how long a completed discovery is reused for identical requests
		ResultCacheTTL time.Duration `env:"WORKER_RESULT_CACHE_TTL" env-default:"1h" yaml:"resultCacheTTL"`
	} `yaml:"worker"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// ErrInvalidConfig is returned by Validate for out of range settings.
var ErrInvalidConfig = errors.New("invalid config")

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadEnv fills a Config from defaults and environment variables only.
func LoadEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("could not read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings the prober and the discovery engine cannot honor.
func (c *Config) Validate() error {
	switch {
	case c.Prober.Timeout <= 0:
		return fmt.Errorf("%w: prober.timeout must be positive", ErrInvalidConfig)
	case c.Prober.MaxAttempts < 1 || c.Prober.MaxAttempts > 3:
		return fmt.Errorf("%w: prober.maxAttempts must be between 1 and 3", ErrInvalidConfig)
	case c.Prober.RateLimit < 0:
		return fmt.Errorf("%w: prober.rateLimit must not be negative", ErrInvalidConfig)
	case c.Discovery.LocatorWorkers < 1:
		return fmt.Errorf("%w: discovery.locatorWorkers must be at least 1", ErrInvalidConfig)
	case c.Discovery.ScannerWorkers < 1:
		return fmt.Errorf("%w: discovery.scannerWorkers must be at least 1", ErrInvalidConfig)
	case c.Discovery.MaxIndexLimit < 1:
		return fmt.Errorf("%w: discovery.maxIndexLimit must be at least 1", ErrInvalidConfig)
	case c.Discovery.MaxIndex < 1 || c.Discovery.MaxIndex > c.Discovery.MaxIndexLimit:
		return fmt.Errorf("%w: discovery.maxIndex must be between 1 and maxIndexLimit", ErrInvalidConfig)
	case c.Discovery.Strategy != StrategyEarlyStop && c.Discovery.Strategy != StrategyExhaustive:
		return fmt.Errorf("%w: unknown discovery.strategy %q", ErrInvalidConfig, c.Discovery.Strategy)
	case c.Discovery.EarlyStopThreshold < 1:
		return fmt.Errorf("%w: discovery.earlyStopThreshold must be at least 1", ErrInvalidConfig)
	case c.Worker.MaxWorkers < 1:
		return fmt.Errorf("%w: worker.maxWorkers must be at least 1", ErrInvalidConfig)
	case c.Worker.MaxAttempts < 1:
		return fmt.Errorf("%w: worker.maxAttempts must be at least 1", ErrInvalidConfig)
	}

	return nil
}
