package logger

import (
	"fmt"
	"io"
	"log"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current = LevelInfo

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// SetLevel drops messages below l.
func SetLevel(l Level) { current = l }

// SetOutput redirects log output, e.g. away from a terminal UI.
func SetOutput(w io.Writer) { log.SetOutput(w) }

func logMessage(level Level, format string, v ...interface{}) {
	if level < current {
		return
	}
	prefix := fmt.Sprintf("[%5s] ", level.String())
	log.Printf(prefix+format, v...)
}

func Debug(format string, v ...interface{}) { logMessage(LevelDebug, format, v...) }
func Info(format string, v ...interface{})  { logMessage(LevelInfo, format, v...) }
func Warn(format string, v ...interface{})  { logMessage(LevelWarn, format, v...) }
func Error(format string, v ...interface{}) { logMessage(LevelError, format, v...) }
