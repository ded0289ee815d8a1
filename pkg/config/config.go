package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Storage backends for the transaction snapshot.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
)

// Provider names known to the server.
const (
	ProviderYellowCard = "yellowcard"
	ProviderCashramp   = "cashramp"
	ProviderBitmama    = "bitmama"
)

// Config is the ramp server configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server"`
	Logging      LoggingConfig      `yaml:"logging"`
	Database     DatabaseConfig     `yaml:"database"`
	Redis        RedisConfig        `yaml:"redis"`
	Kafka        KafkaConfig        `yaml:"kafka"`
	Storage      StorageConfig      `yaml:"storage"`
	Transactions TransactionsConfig `yaml:"transactions"`
	Aggregator   AggregatorConfig   `yaml:"aggregator"`
	Auth         AuthConfig         `yaml:"auth"`
	KYC          KYCConfig          `yaml:"kyc"`
	Monitoring   MonitoringConfig   `yaml:"monitoring"`
	Providers    ProvidersConfig    `yaml:"providers"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host               string        `yaml:"host" default:"0.0.0.0"`
	Port               int           `yaml:"port" default:"8080" validate:"gt=0,lte=65535"`
	ReadTimeout        time.Duration `yaml:"read_timeout" default:"15s"`
	WriteTimeout       time.Duration `yaml:"write_timeout" default:"90s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout" default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" default:"30s"`
	RequestTimeout     time.Duration `yaml:"request_timeout" default:"60s"`
	CORSAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	PublicURL          string        `yaml:"public_url"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host" default:"localhost"`
	Port     int    `yaml:"port" default:"5432"`
	User     string `yaml:"user" default:"postgres"`
	Password string `yaml:"password"`
	Database string `yaml:"database" default:"ramp"`
	SSLMode  string `yaml:"ssl_mode" default:"disable"`
	MaxConns int    `yaml:"max_conns" default:"10"`
}

// GetConnectionString returns a postgres DSN for the configured database.
func (c *DatabaseConfig) GetConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, c.SSLMode)
}

// RedisConfig contains the redis connection used by the redis snapshot backend.
type RedisConfig struct {
	Addr     string `yaml:"addr" default:"localhost:6379"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	Key      string `yaml:"key" default:"seems_transactions"`
}

// KafkaConfig configures the transaction event publisher.
type KafkaConfig struct {
	Enabled bool     `yaml:"enabled"`
	Brokers []string `yaml:"brokers"`
	Topic   string   `yaml:"topic" default:"ramp.transactions"`
	// BatchTimeout bounds how long a publish waits for a batch to fill.
	BatchTimeout time.Duration `yaml:"batch_timeout" default:"10ms"`
}

// StorageConfig selects where transaction snapshots are kept.
type StorageConfig struct {
	Backend         string        `yaml:"backend" default:"memory" validate:"oneof=memory redis postgres"`
	Retention       time.Duration `yaml:"retention" default:"720h"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" default:"1h"`
}

// TransactionsConfig tunes the transaction lifecycle store.
type TransactionsConfig struct {
	MaxRetries int `yaml:"max_retries" default:"3" validate:"gte=1"`
	// RetryDelays overrides the store's backoff schedule when set.
	RetryDelays []time.Duration `yaml:"retry_delays"`
}

// AggregatorConfig tunes provider fan-out.
type AggregatorConfig struct {
	ProviderTimeout time.Duration `yaml:"provider_timeout" default:"10s"`
	RateLimitRPS    int           `yaml:"rate_limit_rps" default:"20" validate:"gte=0"`
}

// KYCConfig holds the fiat limits reported to verified users.
type KYCConfig struct {
	DailyLimit   int64 `yaml:"daily_limit" default:"10000000" validate:"gt=0"`
	MonthlyLimit int64 `yaml:"monthly_limit" default:"100000000" validate:"gtefield=DailyLimit"`
}

// AuthConfig configures wallet authentication.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" default:"24h"`
	NonceTTL  time.Duration `yaml:"nonce_ttl" default:"5m"`
	Issuer    string        `yaml:"issuer" default:"jahpay"`
}

// MonitoringConfig contains monitoring settings
type MonitoringConfig struct {
	Enabled     bool   `yaml:"enabled"`
	MetricsPath string `yaml:"metrics_path" default:"/metrics"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level      string `yaml:"level" default:"info"`
	Format     string `yaml:"format" default:"json" validate:"oneof=json console"`
	OutputPath string `yaml:"output_path" default:"stdout"`
}

// ProvidersConfig holds per-provider settings.
type ProvidersConfig struct {
	YellowCard ProviderConfig `yaml:"yellowcard"`
	Cashramp   ProviderConfig `yaml:"cashramp"`
	Bitmama    ProviderConfig `yaml:"bitmama"`
}

// ProviderConfig describes one payment provider. Zero fields are filled from
// the built-in provider catalogue.
type ProviderConfig struct {
	Disabled       bool     `yaml:"disabled"`
	BaseURL        string   `yaml:"base_url" validate:"omitempty,url"`
	APIKey         string   `yaml:"api_key"`
	WebhookSecret  string   `yaml:"webhook_secret"`
	FeePercentage  float64  `yaml:"fee_percentage" validate:"gte=0,lt=100"`
	NetworkFee     string   `yaml:"network_fee"`
	MinAmount      string   `yaml:"min_amount"`
	MaxAmount      string   `yaml:"max_amount"`
	QuoteMinAmount string   `yaml:"quote_min_amount"`
	QuoteMaxAmount string   `yaml:"quote_max_amount"`
	Countries      []string `yaml:"countries"`
	CompletionTime int      `yaml:"completion_time"`
	EstimatedTime  string   `yaml:"estimated_time"`
	FromCurrencies []string `yaml:"from_currencies"`
	ToCurrencies   []string `yaml:"to_currencies"`
}

// ByName returns the provider configs keyed by provider name, in the order
// providers are registered.
func (p *ProvidersConfig) ByName() []NamedProvider {
	return []NamedProvider{
		{Name: ProviderYellowCard, Config: p.YellowCard},
		{Name: ProviderCashramp, Config: p.Cashramp},
		{Name: ProviderBitmama, Config: p.Bitmama},
	}
}

// NamedProvider pairs a provider name with its config.
type NamedProvider struct {
	Name   string
	Config ProviderConfig
}

// Load reads the YAML file at path, expands ${ENV} references, applies
// defaults and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(raw)
}

// Parse builds a Config from YAML bytes.
func Parse(raw []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.setDefaults(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	_ = cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() error {
	if err := defaults.Set(c); err != nil {
		return fmt.Errorf("failed to apply config defaults: %w", err)
	}
	mergeProvider(&c.Providers.YellowCard, catalogue[ProviderYellowCard])
	mergeProvider(&c.Providers.Cashramp, catalogue[ProviderCashramp])
	mergeProvider(&c.Providers.Bitmama, catalogue[ProviderBitmama])
	return nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Storage.Backend == StorageRedis && c.Redis.Addr == "" {
		return fmt.Errorf("invalid config: redis.addr is required for the redis backend")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("invalid config: kafka.brokers is required when kafka is enabled")
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("invalid config: auth.jwt_secret must be at least 32 bytes")
	}
	return nil
}
