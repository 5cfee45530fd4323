package providers

import (
	"fmt"
	"io"
	"ntd/internal/structures"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

type TypeEnum int

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

type LogProvider struct {
	app     zerolog.Logger
	access  zerolog.Logger
	closers []io.Closer
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(conf.Logger.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", conf.Logger.Level, err)
	}

	mode := os.FileMode(conf.Logger.Mode)
	appFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "app.log"), mode)
	if err != nil {
		return nil, err
	}
	accessFile, err := openLogFile(filepath.Join(conf.Logger.Dir, "access.log"), mode)
	if err != nil {
		appFile.Close()
		return nil, err
	}

	appOut := io.Writer(appFile)
	if conf.Debug {
		appOut = zerolog.MultiLevelWriter(appFile, zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return &LogProvider{
		app:     zerolog.New(appOut).Level(level).With().Timestamp().Logger(),
		access:  zerolog.New(accessFile).Level(level).With().Timestamp().Logger(),
		closers: []io.Closer{appFile, accessFile},
	}, nil
}

func openLogFile(path string, mode os.FileMode) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file %s: %w", path, err)
	}
	return f, nil
}

func (lp *LogProvider) byType(t TypeEnum) *zerolog.Logger {
	if t == TypeApp {
		return &lp.app
	}
	return &lp.access
}

func (lp *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Error().Msgf(format, args...)
}

func (lp *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Warn().Msgf(format, args...)
}

func (lp *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Info().Msgf(format, args...)
}

func (lp *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Debug().Msgf(format, args...)
}

func (lp *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	lp.byType(t).Fatal().Msgf(format, args...)
}

func (lp *LogProvider) Close() {
	for _, c := range lp.closers {
		_ = c.Close()
	}
}
