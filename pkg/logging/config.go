package logging

import "go.uber.org/zap/zapcore"

const TimeFormat = "2006-01-02 15:04:05"

const (
	colorReset   = "\033[0m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorWhite   = "\033[37m"
)

type ProcessName string

const (
	SDKProcess     ProcessName = "sdk"
	CLIProcess     ProcessName = "cli"
	MockAPIProcess ProcessName = "mockapi"
	TestProcess    ProcessName = "test"
)

// LoggerConfig selects the encoder and level of a ZapLogger.
// Development mode logs debug and above with a colored console encoder,
// production mode logs info and above as JSON.
type LoggerConfig struct {
	ProcessName   ProcessName
	IsDevelopment bool
	// OutputPaths defaults to stderr, so SDK logs never mix with command output.
	OutputPaths []string
}

func getLogLevel(isDevelopment bool) zapcore.Level {
	if isDevelopment {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

func customColorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var color, label string
	switch level {
	case zapcore.DebugLevel:
		color, label = colorBlue, "DBG"
	case zapcore.InfoLevel:
		color, label = colorGreen, "INF"
	case zapcore.WarnLevel:
		color, label = colorYellow, "WRN"
	case zapcore.ErrorLevel:
		color, label = colorRed, "ERR"
	case zapcore.FatalLevel:
		color, label = colorMagenta, "FTL"
	default:
		color, label = colorWhite, "???"
	}
	enc.AppendString(color + label + colorReset)
}
