package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Roblox    RobloxConfig    `yaml:"roblox"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Link      LinkConfig      `yaml:"link"`
	Notify    NotifyConfig    `yaml:"notify"`
	Refresh   RefreshConfig   `yaml:"refresh"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// RedisConfig holds the connection URL of the link-state store.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL" env-default:"redis://localhost:6379/0"`
}

// AuthConfig holds local session and social login settings.
type AuthConfig struct {
	JWTSecret          string        `yaml:"jwt_secret"           env:"AUTH_JWT_SECRET"           env-required:"true"`
	JWTIssuer          string        `yaml:"jwt_issuer"           env:"AUTH_JWT_ISSUER"           env-default:"rotection"`
	AccessTokenTTL     time.Duration `yaml:"access_token_ttl"     env:"AUTH_ACCESS_TOKEN_TTL"     env-default:"15m"`
	RefreshTokenTTL    time.Duration `yaml:"refresh_token_ttl"    env:"AUTH_REFRESH_TOKEN_TTL"    env-default:"720h"`
	GoogleClientID     string        `yaml:"google_client_id"     env:"AUTH_GOOGLE_CLIENT_ID"`
	GoogleClientSecret string        `yaml:"google_client_secret" env:"AUTH_GOOGLE_CLIENT_SECRET"`
	GoogleRedirectURI  string        `yaml:"google_redirect_uri"  env:"AUTH_GOOGLE_REDIRECT_URI"`
}

// RobloxConfig holds the Roblox OAuth application credentials.
type RobloxConfig struct {
	ClientID     string        `yaml:"client_id"     env:"ROBLOX_CLIENT_ID"`
	ClientSecret string        `yaml:"client_secret" env:"ROBLOX_CLIENT_SECRET"`
	RedirectURI  string        `yaml:"redirect_uri"  env:"ROBLOX_REDIRECT_URI"`
	StateTTL     time.Duration `yaml:"state_ttl"     env:"ROBLOX_STATE_TTL"     env-default:"10m"`
	Timeout      time.Duration `yaml:"timeout"       env:"ROBLOX_TIMEOUT"       env-default:"10s"`
}

// DefaultProxyPrefix is the CORS relay used when catalog.proxy_prefix is absent.
const DefaultProxyPrefix = "https://api.allorigins.win/raw?url="

// CatalogConfig holds settings for the public game catalog client.
// An explicitly empty ProxyPrefix calls the Roblox APIs directly.
type CatalogConfig struct {
	ProxyPrefix   string        `yaml:"proxy_prefix"   env:"CATALOG_PROXY_PREFIX"`
	Timeout       time.Duration `yaml:"timeout"        env:"CATALOG_TIMEOUT"        env-default:"10s"`
	ThumbnailSize string        `yaml:"thumbnail_size" env:"CATALOG_THUMBNAIL_SIZE" env-default:"768x432"`
}

// LinkConfig holds the manual verification path settings.
type LinkConfig struct {
	ManualNonce  bool          `yaml:"manual_nonce"  env:"LINK_MANUAL_NONCE"  env-default:"false"`
	ChallengeTTL time.Duration `yaml:"challenge_ttl" env:"LINK_CHALLENGE_TTL" env-default:"15m"`
}

// NotifyConfig holds the moderation notification webhook.
// An empty WebhookURL logs notifications instead of sending them.
type NotifyConfig struct {
	WebhookURL string        `yaml:"webhook_url" env:"NOTIFY_WEBHOOK_URL"`
	Timeout    time.Duration `yaml:"timeout"     env:"NOTIFY_TIMEOUT"     env-default:"5s"`
}

// RefreshConfig holds settings for the metadata refresh job.
type RefreshConfig struct {
	Delay time.Duration `yaml:"delay" env:"REFRESH_DELAY" env-default:"500ms"`
}

// RateLimitConfig holds per-IP limits for write endpoints.
type RateLimitConfig struct {
	WritesPerMinute int `yaml:"writes_per_minute" env:"RATE_LIMIT_WRITES_PER_MINUTE" env-default:"30"`
	AuthPerMinute   int `yaml:"auth_per_minute"   env:"RATE_LIMIT_AUTH_PER_MINUTE"   env-default:"10"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
