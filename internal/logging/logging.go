// Package logging builds the logrus logger shared by the server, the access log
// middleware, and GORM.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a logger writing to stderr at the given level.
// Production logs are JSON so the log shipper can index fields like request_id;
// everywhere else a human-readable text format is used.
func New(level string, production bool) (*logrus.Logger, error) {
	return NewWithOutput(os.Stderr, level, production)
}

// NewWithOutput is New with an explicit destination, used by tests.
func NewWithOutput(out io.Writer, level string, production bool) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(lvl)
	if production {
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}

// GormLogger routes GORM's slow-query and error reports through log.
// logrus.Logger already has the Printf method GORM's writer interface needs.
func GormLogger(log *logrus.Logger) gormlogger.Interface {
	level := gormlogger.Warn
	if log.IsLevelEnabled(logrus.DebugLevel) {
		level = gormlogger.Info // Echo every SQL statement when debugging
	}
	return gormlogger.New(log, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
