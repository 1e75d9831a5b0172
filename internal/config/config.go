package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, database connection,
// auth, the supporting infrastructure (redis, object storage, kafka, gemini),
// background workers and graceful shutdown behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the environment's default log level (debug, info, warn, error)
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

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
		// RequestTimeout is the maximum time allowed for processing a single request
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"10s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// AllowedOrigins lists the origins allowed by CORS. Empty allows any origin.
		AllowedOrigins []string `env:"HTTP_ALLOWED_ORIGINS" env-separator:"," yaml:"allowedOrigins"`
		// SecureCookies marks the auth-token cookie as Secure.
		SecureCookies bool `env:"HTTP_SECURE_COOKIES" env-default:"false" yaml:"secureCookies"`
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
		DatabaseName string `env:"DATABASE_NAME" env-default:"vantage" yaml:"name"`
		// MaxOpenConnections limits the number of open connections to the database
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections limits the number of connections in the idle connection pool
		MaxIdleConnections int `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"8" yaml:"maxIdleConnections"`
		// ConnMaxLifetime is the maximum amount of time a connection may be reused
		ConnMaxLifetime time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		// ConnMaxIdleTime is the maximum amount of time a connection may be idle
		ConnMaxIdleTime time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// JWT contains the RSA key pair and lifetime of access tokens
	JWT struct {
		// PrivateKey is the PEM encoded RSA private key used to sign tokens
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
		// PublicKey is the PEM encoded RSA public key used to verify tokens
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// AccessTokenTTL is the lifetime of issued access tokens
		AccessTokenTTL time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"192h" yaml:"accessTokenTTL"`
	} `yaml:"jwt"`

	// Redis configures the cache used for lookups and the token denylist
	Redis struct {
		// Addr is the redis host:port. Empty disables redis and uses an in-process no-op cache
		Addr string `env:"REDIS_ADDR" yaml:"addr"`
		// Password for redis authentication
		Password string `env:"REDIS_PASSWORD" yaml:"password"`
		// DB is the redis logical database
		DB int `env:"REDIS_DB" env-default:"0" yaml:"db"`
		// LookupTTL is how long lookup lists stay cached
		LookupTTL time.Duration `env:"REDIS_LOOKUP_TTL" env-default:"10m" yaml:"lookupTTL"`
	} `yaml:"redis"`

	// ObjectStorage configures the S3 compatible bucket holding MOV files
	ObjectStorage struct {
		// Endpoint overrides the S3 endpoint (e.g. minio). Empty uses AWS
		Endpoint string `env:"OBJECT_STORAGE_ENDPOINT" yaml:"endpoint"`
		// Region of the bucket
		Region string `env:"OBJECT_STORAGE_REGION" env-default:"us-east-1" yaml:"region"`
		// AccessKeyID for static credentials
		AccessKeyID string `env:"OBJECT_STORAGE_ACCESS_KEY_ID" yaml:"accessKeyID"`
		// SecretAccessKey for static credentials
		SecretAccessKey string `env:"OBJECT_STORAGE_SECRET_ACCESS_KEY" yaml:"secretAccessKey"`
		// Bucket stores MOV files
		Bucket string `env:"OBJECT_STORAGE_BUCKET" env-default:"movs" yaml:"bucket"`
		// UsePathStyle is required by most self-hosted S3 implementations
		UsePathStyle bool `env:"OBJECT_STORAGE_USE_PATH_STYLE" env-default:"true" yaml:"usePathStyle"`
		// PresignExpiry is the lifetime of presigned upload and download URLs
		PresignExpiry time.Duration `env:"OBJECT_STORAGE_PRESIGN_EXPIRY" env-default:"15m" yaml:"presignExpiry"`
		// MaxFileSize is the largest accepted MOV in bytes
		MaxFileSize int64 `env:"OBJECT_STORAGE_MAX_FILE_SIZE" env-default:"104857600" yaml:"maxFileSize"`
		// AllowedExtensions lists accepted MOV file extensions
		AllowedExtensions []string `env:"OBJECT_STORAGE_ALLOWED_EXTENSIONS" env-default:".pdf,.docx,.xlsx,.jpg,.jpeg,.png,.mp4" env-separator:"," yaml:"allowedExtensions"` //nolint: lll
	} `yaml:"objectStorage"`

	// Kafka configures the assessment lifecycle event stream
	Kafka struct {
		// Brokers lists kafka bootstrap brokers. Empty disables publishing
		Brokers []string `env:"KAFKA_BROKERS" env-separator:"," yaml:"brokers"`
		// Topic receives assessment events
		Topic string `env:"KAFKA_TOPIC" env-default:"assessment-events" yaml:"topic"`
	} `yaml:"kafka"`

	// Gemini configures the insight generator
	Gemini struct {
		// APIKey for the Gemini API. Empty disables insight generation
		APIKey string `env:"GEMINI_API_KEY" yaml:"apiKey"`
		// Model used for insights
		Model string `env:"GEMINI_MODEL" env-default:"gemini-2.5-flash" yaml:"model"`
	} `yaml:"gemini"`

	// Worker configures background job processing
	Worker struct {
		// MaxWorkers is the concurrency of the default queue
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"20" yaml:"maxWorkers"`
		// InsightMaxAttempts bounds attempts of insight generation jobs
		InsightMaxAttempts int `env:"WORKER_INSIGHT_MAX_ATTEMPTS" env-default:"4" yaml:"insightMaxAttempts"`
		// RetryBase is the first retry delay, doubled on each attempt
		RetryBase time.Duration `env:"WORKER_RETRY_BASE" env-default:"60s" yaml:"retryBase"`
	} `yaml:"worker"`

	// Seed configures the seed command
	Seed struct {
		// SuperuserEmail is the email of the first system admin
		SuperuserEmail string `env:"SEED_SUPERUSER_EMAIL" env-default:"admin@vantage.local" yaml:"superuserEmail"`
		// SuperuserPassword is the initial password of the first system admin
		SuperuserPassword string `env:"SEED_SUPERUSER_PASSWORD" yaml:"superuserPassword"`
	} `yaml:"seed"`

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
