package logger

import "gitlab.com/toeic-drill.net/internal/adapter/logging"

// Logger is the process-wide logger for code without an injected one
var Logger = logging.NewZapLogger(false)

// Use replaces the process-wide logger
func Use(l *logging.ZapLogger) {
	Logger = l
}

func Info(msg string, args ...interface{}) {
	Logger.Info(msg, args...)
}

func Error(msg string, args ...interface{}) {
	Logger.Error(msg, args...)
}

func Debug(msg string, args ...interface{}) {
	Logger.Debug(msg, args...)
}

func Warn(msg string, args ...interface{}) {
	Logger.Warn(msg, args...)
}
