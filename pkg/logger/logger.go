package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is a no-op logger until InitLogger replaces it.
var Log = zap.NewNop()

const (
	FormatJSON    = "json"
	FormatConsole = "console"

	OutputStdout = "stdout"
	OutputFile   = "file"
	OutputBoth   = "both"
)

type Config struct {
	Level  string
	Format string
	Output string

	// Rotation, used when Output writes to a file.
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool

	// Fields are attached to every entry, e.g. service name and Revolut environment.
	Fields map[string]string
}

// InitLogger initializes the global logger
func InitLogger(cfg *Config) error {
	return initLogger(cfg, os.Stdout)
}

func initLogger(cfg *Config, stdout io.Writer) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return err
	}

	encoder, err := newEncoder(cfg.Format)
	if err != nil {
		return err
	}

	writer, err := newWriter(cfg, stdout)
	if err != nil {
		return err
	}

	fields := make([]zap.Field, 0, len(cfg.Fields))
	for k, v := range cfg.Fields {
		fields = append(fields, zap.String(k, v))
	}

	Log = zap.New(zapcore.NewCore(encoder, writer, level), zap.AddCaller()).With(fields...)
	zap.ReplaceGlobals(Log)
	return nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	switch strings.ToLower(format) {
	case "", FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig), nil
	case FormatConsole:
		return zapcore.NewConsoleEncoder(encoderConfig), nil
	}
	return nil, fmt.Errorf("unknown log format %q", format)
}

func newWriter(cfg *Config, stdout io.Writer) (zapcore.WriteSyncer, error) {
	console := zapcore.AddSync(stdout)

	switch strings.ToLower(cfg.Output) {
	case "", OutputStdout:
		return console, nil
	case OutputFile:
		return fileWriter(cfg), nil
	case OutputBoth:
		return zapcore.NewMultiWriteSyncer(console, fileWriter(cfg)), nil
	}
	return nil, fmt.Errorf("unknown log output %q", cfg.Output)
}

func fileWriter(cfg *Config) zapcore.WriteSyncer {
	return &zapcore.BufferedWriteSyncer{
		WS: zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}),
		Size:          256 * 1024,
		FlushInterval: 5 * time.Second,
	}
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Log.Sync()
}

// Named returns a child of the global logger for one component.
func Named(name string) *zap.Logger {
	return Log.Named(name)
}
