package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var Logger *logrus.Logger

// InitLogger configures the process logger. JSON output is used outside development
// or when logFormat is "json".
func InitLogger(logLevel string, logFormat string, isDevelopment bool) *logrus.Logger {
	log := logrus.New()

	if logLevel == "" {
		if isDevelopment {
			logLevel = "debug"
		} else {
			logLevel = "info"
		}
	}

	if level, err := logrus.ParseLevel(strings.ToLower(logLevel)); err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.WithField("invalid_level", logLevel).Warn("Invalid LOG_LEVEL, using INFO")
	}

	if !isDevelopment || strings.ToLower(logFormat) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
	log.SetOutput(os.Stdout)

	Logger = log
	return log
}

func GetLogger() *logrus.Logger {
	if Logger == nil {
		return InitLogger("info", "json", false)
	}
	return Logger
}

func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

func WithTournament(tournamentId int) *logrus.Entry {
	return GetLogger().WithField("tournament_id", tournamentId)
}
