package main

import (
	"os"

	"github.com/georgemunganga/zenith-zap/internal/platform/database"
	"github.com/georgemunganga/zenith-zap/internal/platform/logging"
	"github.com/spf13/pflag"
)

const databaseURLFlag = "database-url"

func main() {
	databaseURL := pflag.StringP(databaseURLFlag, "d", os.Getenv("DATABASE_URL"), "Postgres DSN, defaults to $DATABASE_URL")
	logLevel := pflag.String("log-level", "info", "logrus level")
	pflag.Parse()

	logger := logging.New(os.Stderr, *logLevel)
	if *databaseURL == "" {
		logger.Errorf("--%s flag: required", databaseURLFlag)
		os.Exit(2)
	}
	if err := database.Migrate(*databaseURL, logger); err != nil {
		logger.WithError(err).Error("Failed to migrate")
		os.Exit(2)
	}
}
