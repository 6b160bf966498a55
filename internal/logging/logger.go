package logging

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// Setup configures the standard logrus logger and returns it, so packages
// logging through the logrus package functions share the same settings.
func Setup(level string, production bool) *logrus.Logger {
	log := logrus.StandardLogger()
	if production {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL '%s', using default 'info'", level)
		lvl = logrus.InfoLevel
	}
	log.SetLevel(lvl)
	log.SetOutput(os.Stdout)
	return log
}
