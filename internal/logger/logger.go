package logger

import (
	"io"
	"os"

	"github.com/google/wire"
	"github.com/rs/zerolog"
	"github.com/tjjh89017/trafficlight-go/internal/config"
)

const App = "trafficlight"

var DefaultSet = wire.NewSet(
	NewLogger,
)

var LevelMap = map[string]zerolog.Level{
	"debug": zerolog.DebugLevel,
	"info":  zerolog.InfoLevel,
	"warn":  zerolog.WarnLevel,
	"error": zerolog.ErrorLevel,
}

func NewLogger(config *config.Config) *zerolog.Logger {
	return newLogger(config, os.Stdout)
}

func newLogger(config *config.Config, out io.Writer) *zerolog.Logger {
	if config.Log.Format != "json" {
		out = zerolog.ConsoleWriter{Out: out, NoColor: config.Log.NoColor}
	}

	logger := zerolog.New(out).With().Timestamp().Str("app", App).Logger()

	if level, ok := LevelMap[config.Log.Level]; ok {
		logger = logger.Level(level)
	}

	return &logger
}
