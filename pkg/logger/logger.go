package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// log is usable before Init so packages can log from tests without setup.
var log = logrus.New()

func Init() {
	InitWithOutput(os.Stdout, os.Getenv("ENVIRONMENT"))
}

// InitWithOutput configures the process logger for the given environment.
func InitWithOutput(out io.Writer, environment string) {
	log = logrus.New()
	log.SetOutput(out)

	if environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
		log.SetLevel(logrus.DebugLevel)
	}
}

// Get returns the underlying logrus logger.
func Get() *logrus.Logger {
	return log
}

func WithFields(fields logrus.Fields) *logrus.Entry {
	return log.WithFields(fields)
}

func WithError(err error) *logrus.Entry {
	return log.WithError(err)
}

func Info(args ...interface{}) {
	log.Info(args...)
}

func Error(args ...interface{}) {
	log.Error(args...)
}

func Debug(args ...interface{}) {
	log.Debug(args...)
}

func Warn(args ...interface{}) {
	log.Warn(args...)
}

func Fatal(args ...interface{}) {
	log.Fatal(args...)
}
