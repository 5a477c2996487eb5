package config

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix scopes environment overrides: FWL_DATABASE_HOST, FWL_FEES_RATE, ...
const EnvPrefix = "FWL"

// DefaultAllowedWebhookIPs are the card issuer's published webhook sources.
var DefaultAllowedWebhookIPs = []string{
	"54.216.8.72",
	"54.173.54.49",
	"52.215.16.239",
	"52.55.123.25",
	"52.6.93.106",
	"63.33.109.123",
	"44.228.126.217",
	"50.112.21.217",
	"52.24.126.164",
	"54.148.139.208",
}

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Log       LogConfig       `mapstructure:"log"`
	FX        FXConfig        `mapstructure:"fx"`
	Fees      FeeConfig       `mapstructure:"fees"`
	Card      CardConfig      `mapstructure:"card"`
	CardVault CardVaultConfig `mapstructure:"card_vault"`
	Maplerad  ProviderConfig  `mapstructure:"maplerad"`
	Paystack  PaystackConfig  `mapstructure:"paystack"`
	Webhook   WebhookConfig   `mapstructure:"webhook"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Sweeper   SweeperConfig   `mapstructure:"sweeper"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test

	// TrustedProxies lists the IPs or CIDRs whose forwarding headers are
	// believed. Empty trusts none and uses the connection address.
	TrustedProxies []string `mapstructure:"trusted_proxies"`
	// TrustedPlatform names a header set by the hosting platform, such as
	// gin.PlatformCloudflare. Empty disables it.
	TrustedPlatform string `mapstructure:"trusted_platform"`
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// FXConfig controls quote issuance.
type FXConfig struct {
	QuoteTTL time.Duration `mapstructure:"quote_ttl"`
	// DefaultMargin applies when the pricing table has no fx_margin row.
	DefaultMargin decimal.Decimal `mapstructure:"default_margin"`
}

// FeeConfig is the collection provider's fee model: min(rate*gross+flat, cap).
type FeeConfig struct {
	Rate          decimal.Decimal `mapstructure:"rate"`
	Flat          decimal.Decimal `mapstructure:"flat"`
	Cap           decimal.Decimal `mapstructure:"cap"`
	MaxIterations int             `mapstructure:"max_iterations"`
}

type CardConfig struct {
	CreationFee         decimal.Decimal `mapstructure:"creation_fee"`
	CreationFeeCurrency string          `mapstructure:"creation_fee_currency"`
}

type CardVaultConfig struct {
	MasterKey string `mapstructure:"master_key"` // hex; data keys are derived from it
}

// ProviderConfig describes an outbound provider API.
type ProviderConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	SecretKey string        `mapstructure:"secret_key"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

type PaystackConfig struct {
	ProviderConfig `mapstructure:",squash"`
	CallbackURL    string   `mapstructure:"callback_url"`
	Channels       []string `mapstructure:"channels"` // offered on the hosted page
}

type WebhookConfig struct {
	AllowedIPs []string `mapstructure:"allowed_ips"`
	// VerifyPaystackSignature enables HMAC-SHA512 checks on collection events.
	VerifyPaystackSignature bool          `mapstructure:"verify_paystack_signature"`
	MarkerTTL               time.Duration `mapstructure:"marker_ttl"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"` // empty disables publishing
	Topic   string   `mapstructure:"topic"`
}

type TracingConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
	Environment string `mapstructure:"environment"`
}

type SweeperConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	Grace     time.Duration `mapstructure:"grace"`
	BatchSize int           `mapstructure:"batch_size"`
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: FWL_.
// Nested keys use underscore: FWL_DATABASE_HOST, FWL_FEES_CAP, etc.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	hooks := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		stringToDecimalHook(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(&cfg, hooks); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.trusted_proxies", []string{})
	v.SetDefault("server.trusted_platform", "")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "fx_wallet_ledger")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "24h")
	v.SetDefault("jwt.issuer", "fx-wallet-ledger")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	v.SetDefault("fx.quote_ttl", "180s")
	v.SetDefault("fx.default_margin", "0.1")
	v.SetDefault("fees.rate", "0.015")
	v.SetDefault("fees.flat", "100")
	v.SetDefault("fees.cap", "2000")
	v.SetDefault("fees.max_iterations", 100)
	v.SetDefault("card.creation_fee", "5")
	v.SetDefault("card.creation_fee_currency", "USD")
	v.SetDefault("card_vault.master_key", "")

	v.SetDefault("maplerad.base_url", "https://sandbox.api.maplerad.com/v1")
	v.SetDefault("maplerad.secret_key", "")
	v.SetDefault("maplerad.timeout", "15s")
	v.SetDefault("paystack.base_url", "https://api.paystack.co")
	v.SetDefault("paystack.secret_key", "")
	v.SetDefault("paystack.timeout", "15s")
	v.SetDefault("paystack.callback_url", "")
	v.SetDefault("paystack.channels", []string{"bank_transfer", "card"})

	v.SetDefault("webhook.allowed_ips", DefaultAllowedWebhookIPs)
	v.SetDefault("webhook.verify_paystack_signature", false)
	v.SetDefault("webhook.marker_ttl", "24h")

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "ledger-events")
	v.SetDefault("tracing.endpoint", "")
	v.SetDefault("tracing.service_name", "fx-wallet-ledger")
	v.SetDefault("tracing.environment", "local")
	v.SetDefault("sweeper.interval", "1m")
	v.SetDefault("sweeper.grace", "2m")
	v.SetDefault("sweeper.batch_size", 100)
}

// Validate rejects settings the settlement engine cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.FX.QuoteTTL <= 0 {
		errs = append(errs, errors.New("fx.quote_ttl must be positive"))
	}
	if c.FX.DefaultMargin.IsNegative() || c.FX.DefaultMargin.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		errs = append(errs, errors.New("fx.default_margin must be in [0, 1)"))
	}
	if c.Fees.Rate.IsNegative() || c.Fees.Flat.IsNegative() || c.Fees.Cap.IsNegative() {
		errs = append(errs, errors.New("fees must not be negative"))
	}
	if c.Fees.MaxIterations <= 0 {
		errs = append(errs, errors.New("fees.max_iterations must be positive"))
	}
	if c.Sweeper.BatchSize <= 0 {
		errs = append(errs, errors.New("sweeper.batch_size must be positive"))
	}
	for _, proxy := range c.Server.TrustedProxies {
		if net.ParseIP(proxy) != nil {
			continue
		}
		if _, _, err := net.ParseCIDR(proxy); err != nil {
			errs = append(errs, fmt.Errorf("server.trusted_proxies: %q is not an IP or CIDR", proxy))
		}
	}
	return errors.Join(errs...)
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// stringToDecimalHook lets YAML and env values populate decimal.Decimal fields.
func stringToDecimalHook() mapstructure.DecodeHookFuncType {
	return func(_ reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if to != decimalType {
			return data, nil
		}
		switch v := data.(type) {
		case string:
			return decimal.NewFromString(strings.TrimSpace(v))
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case float64:
			return decimal.NewFromString(fmt.Sprintf("%v", v))
		}
		return data, nil
	}
}
