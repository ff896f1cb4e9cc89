// Package base
package base

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aviodesk/charterops/internal/interfaces/global"
	"github.com/fatih/color"
)

const logFileName = "charterops.log"

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgCyan),
	slog.LevelInfo:  color.New(color.FgGreen),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed),
}

// consoleHandler writes colored single-line records to stdout and, when a
// log file is open, the same line uncolored to the file.
type consoleHandler struct {
	level *slog.LevelVar
	file  *os.File
	attrs []slog.Attr
	group string
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	tag := record.Level.String()
	line := record.Message
	appendAttr := func(attr slog.Attr) bool {
		key := attr.Key
		if h.group != "" {
			key = h.group + "." + key
		}
		line += fmt.Sprintf(" %s=%v", key, attr.Value)
		return true
	}
	for _, attr := range h.attrs {
		appendAttr(attr)
	}
	record.Attrs(appendAttr)

	timestamp := record.Time.Format(time.DateTime)
	if c, ok := levelColors[record.Level]; ok {
		tag = c.Sprint(tag)
	}
	if _, err := fmt.Fprintf(os.Stdout, "%s [%s] %s\n", timestamp, tag, line); err != nil {
		return err
	}
	if h.file != nil {
		if _, err := fmt.Fprintf(h.file, "%s [%s] %s\n", timestamp, record.Level.String(), line); err != nil {
			return err
		}
	}
	return nil
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	clone := *h
	clone.group = name
	return &clone
}

type LoggerShutdownCallback struct {
	file *os.File
}

func (lc *LoggerShutdownCallback) Invoke(_ context.Context) error {
	if lc.file == nil {
		return nil
	}
	if err := lc.file.Sync(); err != nil {
		return err
	}
	return lc.file.Close()
}

type Logger struct {
	logger  *slog.Logger
	handler *consoleHandler
	level   *slog.LevelVar
}

func NewLogger() *Logger {
	level := &slog.LevelVar{}
	handler := &consoleHandler{level: level}
	return &Logger{
		logger:  slog.New(handler),
		handler: handler,
		level:   level,
	}
}

func (l *Logger) Init(debug bool) {
	if debug {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
	file, err := os.OpenFile(logFileName, os.O_WRONLY|os.O_CREATE|os.O_APPEND, global.DefaultFilePermissions)
	if err != nil {
		l.WarnF("Unable to open log file %s: %v", logFileName, err)
	} else {
		l.handler.file = file
	}
	slog.SetDefault(l.logger)
}

func (l *Logger) ShutdownCallback() global.Callable {
	return &LoggerShutdownCallback{file: l.handler.file}
}

func (l *Logger) Debug(msg string, v ...interface{}) { l.logger.Debug(msg, v...) }

func (l *Logger) DebugF(msg string, v ...interface{}) { l.logger.Debug(fmt.Sprintf(msg, v...)) }

func (l *Logger) Info(msg string, v ...interface{}) { l.logger.Info(msg, v...) }

func (l *Logger) InfoF(msg string, v ...interface{}) { l.logger.Info(fmt.Sprintf(msg, v...)) }

func (l *Logger) Warn(msg string, v ...interface{}) { l.logger.Warn(msg, v...) }

func (l *Logger) WarnF(msg string, v ...interface{}) { l.logger.Warn(fmt.Sprintf(msg, v...)) }

func (l *Logger) Error(msg string, v ...interface{}) { l.logger.Error(msg, v...) }

func (l *Logger) ErrorF(msg string, v ...interface{}) { l.logger.Error(fmt.Sprintf(msg, v...)) }

func (l *Logger) Fatal(msg string, v ...interface{}) {
	l.logger.Error(msg, v...)
	os.Exit(1)
}

func (l *Logger) FatalF(msg string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(msg, v...))
	os.Exit(1)
}
