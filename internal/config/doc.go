// Package config loads runtime configuration for StockKeeper.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-k string   database driver: sqlite | postgres
//	-d string   database DSN (file path for sqlite)
//	-m string   schema migration strategy: destructive | incremental
//	-p string   password encoding: plain | argon2
//	-x string   pepper used by the argon2 password encoding
//	-s string   SMS provider: log | sns | http
//	-g string   SMS gateway URL (http provider)
//	-t string   SMS gateway signing secret (http provider)
//	-r string   AWS region (sns provider)
//	-e string   low-stock alert schedule in cron syntax, e.g. "@every 1h" (empty disables)
//	-w int      SMS send timeout (seconds)
//	-l string   log level: debug | info | warn | error
//
// # JSON schema
//
//	{
//	  "database_driver": "sqlite",
//	  "database_dsn": "inventory.db",
//	  "migration_strategy": "destructive",
//	  "password_encoding": "plain",
//	  "sms_provider": "sns",
//	  "aws_region": "eu-west-1",
//	  "alert_schedule": "@every 1h",
//	  "send_timeout": "10s",
//	  "log_level": "info",
//	  "log_format": "text"
//	}
//
// AWS access keys and the log format can only be set from JSON.
package config
