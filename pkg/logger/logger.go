// Package logger wires the go-logging backends used by the command line tools:
// a colored console backend and, optionally, a size rotated log file.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/natefinch/lumberjack"
	"github.com/op/go-logging"
)

const (
	defaultLevel      = "info"
	defaultMaxSize    = 10 // megabytes
	defaultMaxBackups = 3
	defaultMaxAge     = 30 // days
)

var consoleFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

var fileFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} [%{module}] [%{shortfunc}] [%{level}] %{message}`,
)

// Config holds the logging settings
type Config struct {
	Level      string `yaml:"level"`       // debug, info, notice, warning, error, critical
	File       string `yaml:"file"`        // optional log file, ~ is expanded
	MaxSize    int    `yaml:"max_size"`    // megabytes before the file is rotated
	MaxBackups int    `yaml:"max_backups"` // rotated files to keep
	MaxAge     int    `yaml:"max_age"`     // days to keep rotated files
	NoColor    bool   `yaml:"no_color"`    // plain console output
}

// checkConfig fills in missing options
func checkConfig(conf *Config) *Config {
	if conf == nil {
		conf = new(Config)
	}
	if conf.Level == "" {
		conf.Level = defaultLevel
	}
	if conf.MaxSize <= 0 {
		conf.MaxSize = defaultMaxSize
	}
	if conf.MaxBackups <= 0 {
		conf.MaxBackups = defaultMaxBackups
	}
	if conf.MaxAge <= 0 {
		conf.MaxAge = defaultMaxAge
	}
	return conf
}

// ParseLevel maps a level name to a go-logging level
func ParseLevel(name string) (logging.Level, error) {
	return logging.LogLevel(strings.ToUpper(strings.TrimSpace(name)))
}

// Setup installs the console backend writing to out (stderr when nil) and,
// when conf names a file, a rotating file backend. The returned closer
// releases the log file and must be closed on shutdown.
func Setup(out io.Writer, conf *Config) (io.Closer, error) {
	conf = checkConfig(conf)
	level, err := ParseLevel(conf.Level)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = os.Stderr
	}
	format := consoleFormat
	if conf.NoColor {
		format = fileFormat
	}
	console := logging.NewBackendFormatter(logging.NewLogBackend(out, "", 0), format)
	backends := []logging.Backend{console}

	var closer io.Closer = nopCloser{}
	if conf.File != "" {
		path, err := homedir.Expand(conf.File)
		if err != nil {
			return nil, err
		}
		w := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    conf.MaxSize,
			MaxBackups: conf.MaxBackups,
			MaxAge:     conf.MaxAge,
		}
		closer = w
		backends = append(backends, logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), fileFormat))
	}

	leveled := logging.SetBackend(backends...)
	leveled.SetLevel(level, "")
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
