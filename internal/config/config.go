package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the MCP transport, the ops HTTP
// server, the database connection, the upstream provider, the curve service,
// and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// MCP contains the client-protocol transport configuration
	MCP struct {
		// Transport selects how MCP clients connect: "stdio" or "http"
		Transport string `env:"MCP_TRANSPORT" env-default:"stdio" yaml:"transport"`
		// Addr is the address the streamable HTTP transport listens on (http only)
		Addr string `env:"MCP_ADDR" env-default:":8081" yaml:"addr"`
		// RequireAuth enables RS256 bearer-token verification on the HTTP transport
		RequireAuth bool `env:"MCP_REQUIRE_AUTH" env-default:"false" yaml:"requireAuth"`
	} `yaml:"mcp"`

	// HTTP contains the ops server (metrics, health, pprof) configurations
	HTTP struct {
		// Addr is the address and port the ops HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"bonddata" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// ChinaBond contains the upstream provider client configurations
	ChinaBond struct {
		// BaseURL overrides the provider endpoint (mainly for tests)
		BaseURL string `env:"CHINABOND_BASE_URL" env-default:"" yaml:"baseURL"`
		// UserAgent overrides the User-Agent header sent to the provider
		UserAgent string `env:"CHINABOND_USER_AGENT" env-default:"" yaml:"userAgent"`
		// Timeout bounds every HTTP request to the provider
		Timeout time.Duration `env:"CHINABOND_TIMEOUT" env-default:"30s" yaml:"timeout"`
	} `yaml:"chinaBond"`

	// Curve contains the curve service tunables
	Curve struct {
		// CacheTTL is the duration during which cached observations are served
		// without consulting the provider again
		CacheTTL time.Duration `env:"CURVE_CACHE_TTL" env-default:"12h" yaml:"cacheTTL"`
		// MaxRangeDays caps the inclusive query range; each day in range costs
		// one provider request on a cache miss
		MaxRangeDays int `env:"CURVE_MAX_RANGE_DAYS" env-default:"366" yaml:"maxRangeDays"`
		// MaxAttempts is the maximum number of attempts for refresh jobs
		MaxAttempts int `env:"CURVE_MAX_ATTEMPTS" env-default:"5" yaml:"maxAttempts"`
		// RefreshWindowDays is the trailing window the periodic refresh keeps warm
		RefreshWindowDays int `env:"CURVE_REFRESH_WINDOW_DAYS" env-default:"30" yaml:"refreshWindowDays"`
		// RefreshInterval is how often the periodic refresh runs
		RefreshInterval time.Duration `env:"CURVE_REFRESH_INTERVAL" env-default:"6h" yaml:"refreshInterval"`
	} `yaml:"curve"`

	// JWT contains the RS256 keys used by the HTTP transport auth
	JWT struct {
		// PrivateKey is the PEM-encoded RSA private key used to mint tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" env-default:"" yaml:"privateKey"`
		// PublicKey is the PEM-encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" env-default:"" yaml:"publicKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
