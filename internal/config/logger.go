package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "komenco.log"

type LogConfig struct {
	Path       string `yaml:"path"`
	Filename   string `yaml:"filename"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
	Debug      bool   `yaml:"debug"`
}

// CreateLogger builds the process logger. Without a logger section it logs to
// stderr with zap's stock production or development config.
func (c *Config) CreateLogger() (*zap.Logger, io.Closer, error) {
	if c.Logger == nil || c.Logger.Path == "" {
		debug := c.Logger != nil && c.Logger.Debug

		var logger *zap.Logger
		var err error
		if debug {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}

		return logger, io.NopCloser(nil), errors.Wrap(err, "create logger")
	}

	logger, closer, err := newRotatingFileLogger(*c.Logger)
	return logger, closer, errors.Wrap(err, "create logger")
}

func newRotatingFileLogger(lc LogConfig) (*zap.Logger, io.Closer, error) {
	if err := os.MkdirAll(lc.Path, 0o755); err != nil {
		return nil, nil, err
	}

	filename := lc.Filename
	if filename == "" {
		filename = defaultLogFile
	}

	rot := &lumberjack.Logger{
		Filename:   filepath.Join(lc.Path, filename),
		MaxSize:    orDefault(lc.MaxSize, 50),
		MaxBackups: orDefault(lc.MaxBackups, 5),
		MaxAge:     orDefault(lc.MaxAge, 14),
		Compress:   lc.Compress,
	}

	encCfg := zap.NewProductionEncoderConfig()
	level := zap.InfoLevel
	if lc.Debug {
		encCfg = zap.NewDevelopmentEncoderConfig()
		level = zap.DebugLevel
	}
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.RFC3339)

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rot), level)
	logger := zap.New(core, zap.AddCaller(), zap.Fields(zap.String("service", "komenco-gateway")))

	return logger, rot, nil
}

func orDefault(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
