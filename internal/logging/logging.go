package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// SetupLogging configures JSON logging at the given level. The standard
// logger is configured too so package-level logrus calls agree with the
// returned instance. Unknown levels fall back to info.
func SetupLogging(level string) *logrus.Logger {
	parsedLevel, err := logrus.ParseLevel(level)
	if err != nil {
		parsedLevel = logrus.InfoLevel
	}

	formatter := &logrus.JSONFormatter{
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyLevel: "loglevel",
		},
	}

	logrus.SetFormatter(formatter)
	logrus.SetLevel(parsedLevel)

	logger := logrus.Logger{
		Formatter: formatter,
		Out:       os.Stdout,
		Level:     parsedLevel,
	}

	return &logger
}
