package config

import (
	"errors"
	"fmt"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	StrategyDestructive = "destructive"
	StrategyIncremental = "incremental"

	EncodingPlain  = "plain"
	EncodingArgon2 = "argon2"

	ProviderLog  = "log"
	ProviderSNS  = "sns"
	ProviderHTTP = "http"
)

// Config holds runtime settings for the StockKeeper CLI.
type Config struct {
	DatabaseDriver    string
	DatabaseDSN       string
	MigrationStrategy string

	PasswordEncoding string
	PasswordPepper   string

	SMSProvider        string
	SMSGatewayURL      string
	SMSGatewaySecret   string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	SendTimeout        time.Duration

	// AlertSchedule is a robfig/cron spec; empty disables the background job.
	AlertSchedule string

	LogLevel  string
	LogFormat string
}

// LoadDefaults populates c with defaults suitable for a local single-user setup.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "inventory.db"
	c.MigrationStrategy = StrategyDestructive
	c.PasswordEncoding = EncodingPlain
	c.SMSProvider = ProviderLog
	c.AWSRegion = "us-east-1"
	c.SendTimeout = 10 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports settings that would only fail later, deep inside a command.
func (c *Config) Validate() error {
	var errs []error

	if !oneOf(c.DatabaseDriver, DriverSQLite, DriverPostgres) {
		errs = append(errs, fmt.Errorf("unknown database driver %q", c.DatabaseDriver))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database DSN is empty"))
	}
	if !oneOf(c.MigrationStrategy, StrategyDestructive, StrategyIncremental) {
		errs = append(errs, fmt.Errorf("unknown migration strategy %q", c.MigrationStrategy))
	}
	if !oneOf(c.PasswordEncoding, EncodingPlain, EncodingArgon2) {
		errs = append(errs, fmt.Errorf("unknown password encoding %q", c.PasswordEncoding))
	}
	if c.PasswordEncoding == EncodingArgon2 && c.PasswordPepper == "" {
		errs = append(errs, errors.New("argon2 password encoding requires a pepper"))
	}
	if !oneOf(c.SMSProvider, ProviderLog, ProviderSNS, ProviderHTTP) {
		errs = append(errs, fmt.Errorf("unknown sms provider %q", c.SMSProvider))
	}
	if c.SMSProvider == ProviderHTTP && c.SMSGatewayURL == "" {
		errs = append(errs, errors.New("http sms provider requires a gateway url"))
	}
	if c.SendTimeout <= 0 {
		errs = append(errs, errors.New("send timeout must be positive"))
	}

	return errors.Join(errs...)
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
