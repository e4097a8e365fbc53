package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const logLevelEnv = "DECCALC_LOG_LEVEL"

func prepLogging() {
	logLevel := os.Getenv(logLevelEnv)
	if logLevel == "" {
		logLevel = "info"
	}

	badParse := false
	lvl, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
		badParse = true
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05.999"})

	if badParse {
		log.Error().
			Msgf("Bad value for %s: %s", logLevelEnv, os.Getenv(logLevelEnv))
	}
}

func main() {
	prepLogging()
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
