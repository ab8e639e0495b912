// Package log writes facetwall diagnostics to one logrus file per day.
package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/facetwall/facetwall/filesystem"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fields is a set of structured key/value pairs attached to an entry.
type Fields = logrus.Fields

// Retention is how long dated log files are kept.
const Retention = 7 * 24 * time.Hour

const dateLayout = "2006-01-02"

var enabled bool

// prune removes dated log files from before cutoff. Other files are left alone.
func prune(dir string, cutoff time.Time) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		day, err := time.ParseInLocation(dateLayout, strings.TrimSuffix(entry.Name(), ".log"), time.Local)
		if err != nil || entry.IsDir() || !strings.HasSuffix(entry.Name(), ".log") {
			continue
		}
		if day.Before(cutoff) {
			_ = filesystem.API().Remove(filepath.Join(dir, entry.Name()))
		}
	}
}

// Setup opens today's log file and drops files older than Retention.
// When logs.write is off every emission is discarded.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		// the wall owns the terminal, nothing may leak to stderr
		logrus.SetOutput(io.Discard)
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	prune(dir, time.Now().Add(-Retention))

	filename := fmt.Sprintf("%s.log", time.Now().Format(dateLayout))
	path := filepath.Join(dir, filename)

	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	parsed, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	return nil
}

// Enabled reports whether log output is being persisted.
func Enabled() bool {
	return enabled
}

// With returns an entry carrying the given fields. Entries created while
// logging is disabled write to the discarded sink.
func With(fields Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

func Error(args ...interface{}) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...interface{}) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warnf(format string, args ...interface{}) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...interface{}) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...interface{}) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debugf(format string, args ...interface{}) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}
