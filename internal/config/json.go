package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/stockkeeper/internal/flagx"
	"github.com/dmitrijs2005/stockkeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	DatabaseDriver     string         `json:"database_driver"`
	DatabaseDSN        string         `json:"database_dsn"`
	MigrationStrategy  string         `json:"migration_strategy"`
	PasswordEncoding   string         `json:"password_encoding"`
	PasswordPepper     string         `json:"password_pepper"`
	SMSProvider        string         `json:"sms_provider"`
	SMSGatewayURL      string         `json:"sms_gateway_url"`
	SMSGatewaySecret   string         `json:"sms_gateway_secret"`
	AWSRegion          string         `json:"aws_region"`
	AWSAccessKeyID     string         `json:"aws_access_key_id"`
	AWSSecretAccessKey string         `json:"aws_secret_access_key"`
	SendTimeout        timex.Duration `json:"send_timeout"`
	AlertSchedule      string         `json:"alert_schedule"`
	LogLevel           string         `json:"log_level"`
	LogFormat          string         `json:"log_format"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
// Read and unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfNotEmpty(&cfg.DatabaseDriver, jc.DatabaseDriver)
	setIfNotEmpty(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setIfNotEmpty(&cfg.MigrationStrategy, jc.MigrationStrategy)
	setIfNotEmpty(&cfg.PasswordEncoding, jc.PasswordEncoding)
	setIfNotEmpty(&cfg.PasswordPepper, jc.PasswordPepper)
	setIfNotEmpty(&cfg.SMSProvider, jc.SMSProvider)
	setIfNotEmpty(&cfg.SMSGatewayURL, jc.SMSGatewayURL)
	setIfNotEmpty(&cfg.SMSGatewaySecret, jc.SMSGatewaySecret)
	setIfNotEmpty(&cfg.AWSRegion, jc.AWSRegion)
	setIfNotEmpty(&cfg.AWSAccessKeyID, jc.AWSAccessKeyID)
	setIfNotEmpty(&cfg.AWSSecretAccessKey, jc.AWSSecretAccessKey)
	setIfNotEmpty(&cfg.AlertSchedule, jc.AlertSchedule)
	setIfNotEmpty(&cfg.LogLevel, jc.LogLevel)
	setIfNotEmpty(&cfg.LogFormat, jc.LogFormat)
	if jc.SendTimeout.Duration > 0 {
		cfg.SendTimeout = jc.SendTimeout.Duration
	}
}

func setIfNotEmpty(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
