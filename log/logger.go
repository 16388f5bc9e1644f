package log

import (
	"errors"
	"os"
	"sort"

	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/exp/maps"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Error will add the error fields as log fields and log the error message
	// at the Error level.
	Error(err error)

	With(args ...interface{}) Logger
	WithError(err error) Logger

	// Config gets the config values that can be used to re-create this logger
	Config() NewInput

	Sync() error
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

// errorFields flattens the fields attached to a stackerr into key/value pairs,
// sorted by key so the output is stable.
func errorFields(err error) []any {
	var serr stackerr.Error
	if !errors.As(err, &serr) {
		return nil
	}
	fields := serr.Fields()
	keys := maps.Keys(fields)
	sort.Strings(keys)
	kvp := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		kvp = append(kvp, k, fields[k])
	}
	return kvp
}

func (l logger) Error(err error) {
	if err == nil {
		return
	}
	l.SugaredLogger.WithOptions(zap.AddCallerSkip(1)).Errorw(err.Error(), errorFields(err)...)
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone()}
}

func (l logger) WithError(err error) Logger {
	if err == nil {
		return l
	}
	return l.With(zap.Error(err))
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	InitialFields map[string]any
	SkippedFrames int
	// Core, when set, replaces the encoder and sink that New would otherwise
	// build. Level filtering still applies.
	Core zapcore.Core
}

func (ni *NewInput) Clone() NewInput {
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		InitialFields: maps.Clone(ni.InitialFields),
		SkippedFrames: ni.SkippedFrames,
		Core:          ni.Core,
	}
}

func New(input NewInput) Logger {
	levelEnabler := zap.NewAtomicLevelAt(input.Level)

	var zcore zapcore.Core
	if input.Core != nil {
		zcore = &levelFilter{Core: input.Core, level: levelEnabler}
	} else {
		encoderConfig := zapcore.EncoderConfig{
			TimeKey:        "ts",
			LevelKey:       "level",
			NameKey:        "logger",
			CallerKey:      "caller",
			FunctionKey:    zapcore.OmitKey,
			MessageKey:     "msg",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.SecondsDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}

		var encoder zapcore.Encoder
		if input.IsDevelopment {
			// If it's development mode, modify some settings
			encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
			encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
			encoder = zapcore.NewConsoleEncoder(encoderConfig)
		} else {
			encoder = zapcore.NewJSONEncoder(encoderConfig)
		}
		zcore = zapcore.NewCore(encoder, zapcore.Lock(os.Stderr), levelEnabler)
	}

	buildOpts := []zap.Option{
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	}
	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	}

	// Add any initial field as a build option
	if len(input.InitialFields) > 0 {
		keys := maps.Keys(input.InitialFields)
		sort.Strings(keys)
		fs := make([]zap.Field, 0, len(keys))
		for _, k := range keys {
			if f, ok := input.InitialFields[k].(zap.Field); ok {
				f.Key = k
				fs = append(fs, f)
			} else {
				fs = append(fs, zap.Any(k, input.InitialFields[k]))
			}
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	if input.SkippedFrames != 0 {
		buildOpts = append(buildOpts, zap.AddCallerSkip(input.SkippedFrames))
	}

	zapLogger := zap.New(zcore, buildOpts...)
	if input.Name != "" {
		zapLogger = zapLogger.Named(input.Name)
	}

	return logger{zapLogger.Sugar(), input.Clone()}
}

// levelFilter applies the configured level to a caller-supplied core.
type levelFilter struct {
	zapcore.Core
	level zapcore.LevelEnabler
}

func (lf *levelFilter) Enabled(lvl zapcore.Level) bool {
	return lf.level.Enabled(lvl) && lf.Core.Enabled(lvl)
}

func (lf *levelFilter) With(fields []zapcore.Field) zapcore.Core {
	return &levelFilter{Core: lf.Core.With(fields), level: lf.level}
}

func (lf *levelFilter) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !lf.level.Enabled(ent.Level) {
		return ce
	}
	return lf.Core.Check(ent, ce)
}
