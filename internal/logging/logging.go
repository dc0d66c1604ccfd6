// Package logging configures the process-wide logger. The PROFILE switch
// selects between verbose console output for development and a rotating
// JSON log file for production.
package logging

import (
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	mu     sync.Mutex
	once   sync.Once
	global *zap.Logger
)

// New builds a logger for the given profile. "prod" writes JSON entries
// at info level through a rotating file at path; any other profile
// returns a console development logger at debug level.
func New(profile, path string) *zap.Logger {
	if strings.ToLower(profile) != "prod" {
		return zap.Must(zap.NewDevelopment())
	}
	if path == "" {
		path = "app.log"
	}
	sink := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    100, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	})
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		sink,
		zap.InfoLevel,
	)
	return zap.New(core)
}

// Init builds the global logger once and returns it. Later calls return
// the logger from the first call regardless of arguments.
func Init(profile, path string) *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	once.Do(func() {
		global = New(profile, path)
	})
	return global
}

// L returns the global logger, or a no-op logger before Init.
func L() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	if global == nil {
		return zap.NewNop()
	}
	return global
}
