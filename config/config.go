package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const VERSION = "1.4"

type Config struct {
	Server          ServerConfig
	Database        DatabaseConfig
	ClickHouse      ClickHouseConfig
	Redis           RedisConfig
	Security        SecurityConfig
	DNS             DNSConfig
	Facebook        FacebookConfig
	GeoIP           GeoIPConfig
	SMTP            SMTPConfig
	Tracing         TracingConfig
	Monitoring      MonitoringConfig
	CORSAllowOrigin string
	Environment     string
	APIEndpoint     string
	LogLevel        string
	Version         string
}

type ServerConfig struct {
	Port int
	Host string
	SSL  SSLConfig
}

type SSLConfig struct {
	Enabled  bool
	CertFile string
	KeyFile  string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ClickHouseConfig points at the column store holding leads and events
type ClickHouseConfig struct {
	Addr        []string
	Database    string
	User        string
	Password    string
	DialTimeout time.Duration
	Secure      bool
}

// RedisConfig is optional. When Addr is empty lead upserts are serialised in process only.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	LeaseTTL time.Duration
}

func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type SecurityConfig struct {
	JWTSecret       []byte
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	ResetTokenTTL   time.Duration
}

type DNSConfig struct {
	// ProxyTarget is the host every pxt.<domain> CNAME must point to
	ProxyTarget string
	// RecordPrefix is prepended to the customer domain to build the CNAME record name
	RecordPrefix string
	// Nameserver answers the CNAME queries, /etc/resolv.conf when empty
	Nameserver string
}

type FacebookConfig struct {
	GraphBaseURL string
	APIVersion   string
	Timeout      time.Duration
	DNSCacheTTL  time.Duration
}

type GeoIPConfig struct {
	DBPath string
}

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type TracingConfig struct {
	Enabled             bool
	ServiceName         string
	SamplingProbability float64

	// "jaeger", "zipkin", "stackdriver", "datadog", "xray", "none"
	TraceExporter string

	JaegerEndpoint       string
	ZipkinEndpoint       string
	StackdriverProjectID string
	DatadogAgentAddress  string
	DatadogAPIKey        string
	XRayRegion           string

	// "prometheus", "stackdriver", "datadog", "none" or a comma-separated list
	MetricsExporter string
	PrometheusPort  int
}

type MonitoringConfig struct {
	DatabaseCheckInterval time.Duration
	SystemMetricsInterval time.Duration
	TokenSweepInterval    time.Duration
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // optional env file, e.g. ".env" or ".env.test"
}

// Load loads the configuration from .env (if present) and the environment
func Load() (*Config, error) {
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "pixeltrack")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_OPEN_CONNS", 25)
	v.SetDefault("DB_MAX_IDLE_CONNS", 10)
	v.SetDefault("DB_CONN_MAX_LIFETIME", "10m")

	v.SetDefault("CLICKHOUSE_ADDR", "localhost:9000")
	v.SetDefault("CLICKHOUSE_DB", "pixeltrack")
	v.SetDefault("CLICKHOUSE_USER", "default")
	v.SetDefault("CLICKHOUSE_PASSWORD", "")
	v.SetDefault("CLICKHOUSE_DIAL_TIMEOUT", "10s")
	v.SetDefault("CLICKHOUSE_SECURE", false)

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_LEASE_TTL", "10s")

	v.SetDefault("JWT_ACCESS_TTL", "24h")
	v.SetDefault("JWT_REFRESH_TTL", "168h")
	v.SetDefault("RESET_TOKEN_TTL", "1h")

	v.SetDefault("DNS_RECORD_PREFIX", "pxt")
	v.SetDefault("DNS_NAMESERVER", "")

	v.SetDefault("FACEBOOK_GRAPH_URL", "https://graph.facebook.com")
	v.SetDefault("FACEBOOK_API_VERSION", "v20.0")
	v.SetDefault("FACEBOOK_TIMEOUT", "30s")
	v.SetDefault("FACEBOOK_DNS_CACHE_TTL", "5m")

	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("SMTP_FROM_NAME", "PixelTrack")

	v.SetDefault("TRACING_ENABLED", false)
	v.SetDefault("TRACING_SERVICE_NAME", "pixeltrack-api")
	v.SetDefault("TRACING_SAMPLING_PROBABILITY", 0.1)
	v.SetDefault("TRACING_TRACE_EXPORTER", "none")
	v.SetDefault("TRACING_JAEGER_ENDPOINT", "http://localhost:14268/api/traces")
	v.SetDefault("TRACING_ZIPKIN_ENDPOINT", "http://localhost:9411/api/v2/spans")
	v.SetDefault("TRACING_DATADOG_AGENT_ADDRESS", "localhost:8126")
	v.SetDefault("TRACING_XRAY_REGION", "us-west-2")
	v.SetDefault("TRACING_METRICS_EXPORTER", "none")
	v.SetDefault("TRACING_PROMETHEUS_PORT", 9464)

	v.SetDefault("MONITOR_DB_INTERVAL", "1m")
	v.SetDefault("MONITOR_SYSTEM_INTERVAL", "5m")
	v.SetDefault("TOKEN_SWEEP_INTERVAL", "15m")

	v.SetDefault("CORS_ALLOW_ORIGIN", "*")
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")

		currentPath, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("error getting current directory: %w", err)
		}
		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// a missing env file is fine, the environment may carry everything
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	jwtSecret := v.GetString("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}

	proxyTarget := v.GetString("PROXY_CNAME_TARGET")
	if proxyTarget == "" {
		return nil, fmt.Errorf("PROXY_CNAME_TARGET is required")
	}

	accessTTL := v.GetDuration("JWT_ACCESS_TTL")
	if accessTTL < time.Hour || accessTTL > 7*24*time.Hour {
		return nil, fmt.Errorf("JWT_ACCESS_TTL must be between 1h and 168h, got %s", accessTTL)
	}

	config := &Config{
		Server: ServerConfig{
			Port: v.GetInt("SERVER_PORT"),
			Host: v.GetString("SERVER_HOST"),
			SSL: SSLConfig{
				Enabled:  v.GetBool("SSL_ENABLED"),
				CertFile: v.GetString("SSL_CERT_FILE"),
				KeyFile:  v.GetString("SSL_KEY_FILE"),
			},
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		ClickHouse: ClickHouseConfig{
			Addr:        splitList(v.GetString("CLICKHOUSE_ADDR")),
			Database:    v.GetString("CLICKHOUSE_DB"),
			User:        v.GetString("CLICKHOUSE_USER"),
			Password:    v.GetString("CLICKHOUSE_PASSWORD"),
			DialTimeout: v.GetDuration("CLICKHOUSE_DIAL_TIMEOUT"),
			Secure:      v.GetBool("CLICKHOUSE_SECURE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
			LeaseTTL: v.GetDuration("REDIS_LEASE_TTL"),
		},
		Security: SecurityConfig{
			JWTSecret:       []byte(jwtSecret),
			AccessTokenTTL:  accessTTL,
			RefreshTokenTTL: v.GetDuration("JWT_REFRESH_TTL"),
			ResetTokenTTL:   v.GetDuration("RESET_TOKEN_TTL"),
		},
		DNS: DNSConfig{
			ProxyTarget:  strings.TrimSuffix(proxyTarget, "."),
			RecordPrefix: v.GetString("DNS_RECORD_PREFIX"),
			Nameserver:   v.GetString("DNS_NAMESERVER"),
		},
		Facebook: FacebookConfig{
			GraphBaseURL: strings.TrimSuffix(v.GetString("FACEBOOK_GRAPH_URL"), "/"),
			APIVersion:   v.GetString("FACEBOOK_API_VERSION"),
			Timeout:      v.GetDuration("FACEBOOK_TIMEOUT"),
			DNSCacheTTL:  v.GetDuration("FACEBOOK_DNS_CACHE_TTL"),
		},
		GeoIP: GeoIPConfig{
			DBPath: v.GetString("GEOIP_DB_PATH"),
		},
		SMTP: SMTPConfig{
			Host:      v.GetString("SMTP_HOST"),
			Port:      v.GetInt("SMTP_PORT"),
			Username:  v.GetString("SMTP_USERNAME"),
			Password:  v.GetString("SMTP_PASSWORD"),
			FromEmail: v.GetString("SMTP_FROM_EMAIL"),
			FromName:  v.GetString("SMTP_FROM_NAME"),
		},
		Tracing: TracingConfig{
			Enabled:              v.GetBool("TRACING_ENABLED"),
			ServiceName:          v.GetString("TRACING_SERVICE_NAME"),
			SamplingProbability:  v.GetFloat64("TRACING_SAMPLING_PROBABILITY"),
			TraceExporter:        v.GetString("TRACING_TRACE_EXPORTER"),
			JaegerEndpoint:       v.GetString("TRACING_JAEGER_ENDPOINT"),
			ZipkinEndpoint:       v.GetString("TRACING_ZIPKIN_ENDPOINT"),
			StackdriverProjectID: v.GetString("TRACING_STACKDRIVER_PROJECT_ID"),
			DatadogAgentAddress:  v.GetString("TRACING_DATADOG_AGENT_ADDRESS"),
			DatadogAPIKey:        v.GetString("TRACING_DATADOG_API_KEY"),
			XRayRegion:           v.GetString("TRACING_XRAY_REGION"),
			MetricsExporter:      v.GetString("TRACING_METRICS_EXPORTER"),
			PrometheusPort:       v.GetInt("TRACING_PROMETHEUS_PORT"),
		},
		Monitoring: MonitoringConfig{
			DatabaseCheckInterval: v.GetDuration("MONITOR_DB_INTERVAL"),
			SystemMetricsInterval: v.GetDuration("MONITOR_SYSTEM_INTERVAL"),
			TokenSweepInterval:    v.GetDuration("TOKEN_SWEEP_INTERVAL"),
		},
		CORSAllowOrigin: v.GetString("CORS_ALLOW_ORIGIN"),
		Environment:     v.GetString("ENVIRONMENT"),
		APIEndpoint:     strings.TrimSuffix(v.GetString("API_ENDPOINT"), "/"),
		LogLevel:        v.GetString("LOG_LEVEL"),
		Version:         v.GetString("VERSION"),
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
