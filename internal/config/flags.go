package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/stockkeeper/internal/flagx"
)

// parseFlags overlays cfg with the flags listed in the package doc. Only the
// flags handled here are kept from os.Args (see flagx.FilterArgs); a parse
// error panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-k", "-d", "-m", "-p", "-x", "-s", "-g", "-t", "-r", "-e", "-w", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDriver, "k", cfg.DatabaseDriver, "database driver (sqlite|postgres)")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.MigrationStrategy, "m", cfg.MigrationStrategy, "schema migration strategy (destructive|incremental)")
	fs.StringVar(&cfg.PasswordEncoding, "p", cfg.PasswordEncoding, "password encoding (plain|argon2)")
	fs.StringVar(&cfg.PasswordPepper, "x", cfg.PasswordPepper, "password pepper for argon2")
	fs.StringVar(&cfg.SMSProvider, "s", cfg.SMSProvider, "sms provider (log|sns|http)")
	fs.StringVar(&cfg.SMSGatewayURL, "g", cfg.SMSGatewayURL, "sms gateway url")
	fs.StringVar(&cfg.SMSGatewaySecret, "t", cfg.SMSGatewaySecret, "sms gateway signing secret")
	fs.StringVar(&cfg.AWSRegion, "r", cfg.AWSRegion, "aws region")
	fs.StringVar(&cfg.AlertSchedule, "e", cfg.AlertSchedule, "low-stock alert schedule (cron spec)")
	sendTimeout := fs.Int("w", int(cfg.SendTimeout.Seconds()), "sms send timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.SendTimeout = time.Duration(*sendTimeout) * time.Second
}
