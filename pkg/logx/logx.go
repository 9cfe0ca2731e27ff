// Package logx is a small leveled logging facade over the standard logger.
package logx

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync/atomic"
)

type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var current atomic.Int32

func init() {
	current.Store(int32(LevelInfo))
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
}

// SetLevel sets the minimum level that will be emitted.
func SetLevel(l Level) {
	current.Store(int32(l))
}

// ParseLevel maps a config string to a Level, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func enabled(l Level) bool {
	return l >= Level(current.Load())
}

func emit(l Level, tag, msg string) {
	if enabled(l) {
		log.Printf("[%s] %s", tag, msg)
	}
}

func Debug(msg string)                 { emit(LevelDebug, "DEBUG", msg) }
func Debugf(format string, args ...any) { emit(LevelDebug, "DEBUG", fmt.Sprintf(format, args...)) }

func Info(msg string)                 { emit(LevelInfo, "INFO", msg) }
func Infof(format string, args ...any) { emit(LevelInfo, "INFO", fmt.Sprintf(format, args...)) }

func Warn(msg string)                 { emit(LevelWarn, "WARN", msg) }
func Warnf(format string, args ...any) { emit(LevelWarn, "WARN", fmt.Sprintf(format, args...)) }

func Error(msg string)                 { emit(LevelError, "ERROR", msg) }
func Errorf(format string, args ...any) { emit(LevelError, "ERROR", fmt.Sprintf(format, args...)) }

// Fatalf logs at error level and exits.
func Fatalf(format string, args ...any) {
	log.Printf("[FATAL] %s", fmt.Sprintf(format, args...))
	os.Exit(1)
}
