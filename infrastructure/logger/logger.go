package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

var logger = log.New()

func init() {
	layout := "2006-01-02"
	env := os.Getenv("ENV")
	formatTime := time.Now().Format(layout)

	// stdout carries the exporter's progress lines, so logs default to stderr.
	// LOG_TO_FILE=true routes them to logs/<date><env>.log instead.
	logger.Out = os.Stderr
	if os.Getenv("LOG_TO_FILE") == "true" {
		cwd, err := os.Getwd()
		if err != nil {
			log.Warnf("Failed get current working directory: %v, falling back to stderr", err)
		} else {
			logsDir := filepath.Join(cwd, "logs")
			if mkErr := os.MkdirAll(logsDir, 0o755); mkErr != nil {
				log.Warnf("Failed to create logs directory %s: %v, falling back to stderr", logsDir, mkErr)
			} else {
				filePath := filepath.Join(logsDir, fmt.Sprintf("%s%s.log", formatTime, env))
				f, openErr := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
				if openErr != nil {
					log.Warnf("Failed to open log file %s: %v, falling back to stderr", filePath, openErr)
				} else {
					logger.Out = f
				}
			}
		}
	}

	logger.Formatter = &log.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
	}
	logger.SetLevel(log.InfoLevel)
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := log.ParseLevel(lvl); err == nil {
			logger.SetLevel(parsed)
		}
	}
}

// SetOutput redirects every entry, mostly useful in tests.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel changes the minimum level that gets written.
func SetLevel(level log.Level) {
	logger.SetLevel(level)
}

func GetLogger() *log.Entry {
	function, file, line, _ := runtime.Caller(1)

	functionObject := runtime.FuncForPC(function)
	entry := logger.WithFields(log.Fields{
		"function": functionObject.Name(),
		"file":     file,
		"line":     line,
	})

	return entry
}
