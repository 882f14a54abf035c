package argio

import (
	"fmt"
	"io"
	"strings"
)

// LogLevel represents the severity level of a log message
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarning
	LevelError
)

// String returns the string representation of the log level
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// LogFormat defines the output format for log messages
type LogFormat int

const (
	LogFormatTagged LogFormat = iota // [error]: message
	LogFormatPlain                   // message
	LogFormatCustom                  // user-defined template
)

// Logger writes levelled diagnostics through an IOManager. Warnings and
// errors go to the diagnostic stream, everything else to the output stream.
type Logger struct {
	io       *IOManager
	format   LogFormat
	template string
	minLevel LogLevel
	theme    *Theme // nil picks a default per writer
}

// NewLogger creates a tagged-format logger bound to the given IOManager.
func NewLogger(io *IOManager) *Logger {
	return &Logger{
		io:     io,
		format: LogFormatTagged,
	}
}

// WithFormat sets the log format and returns the logger for chaining
func (l *Logger) WithFormat(format LogFormat) *Logger {
	l.format = format
	return l
}

// WithTemplate sets a custom template and switches to LogFormatCustom.
// Template variables: {{.Level}}, {{.Message}}
func (l *Logger) WithTemplate(template string) *Logger {
	l.template = template
	l.format = LogFormatCustom
	return l
}

// WithLevel drops messages below level.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.minLevel = level
	return l
}

// WithTheme sets a custom theme for semantic colors
func (l *Logger) WithTheme(theme Theme) *Logger {
	l.theme = &theme
	return l
}

// Log outputs a log message at the specified level
func (l *Logger) Log(level LogLevel, format string, args ...any) {
	if level < l.minLevel {
		return
	}
	msg := fmt.Sprintf(format, args...)
	w, colorLevel := l.selectWriter(level)
	fmt.Fprintln(w, l.colorizeByLevel(level, colorLevel, l.formatMessage(level, msg)))
}

func (l *Logger) formatMessage(level LogLevel, msg string) string {
	var out string
	switch l.format {
	case LogFormatCustom:
		out = strings.ReplaceAll(l.template, "{{.Level}}", level.String())
		out = strings.ReplaceAll(out, "{{.Message}}", msg)
	case LogFormatPlain:
		out = msg
	default:
		out = "[" + level.String() + "]: " + msg
	}
	return out
}

// colorizeByLevel styles text for a writer at the given colour level.
func (l *Logger) colorizeByLevel(level LogLevel, colorLevel int, text string) string {
	if colorLevel == 0 {
		return text
	}
	theme := defaultTheme(colorLevel)
	if l.theme != nil {
		theme = *l.theme
	}
	var color ColorSpec
	switch level {
	case LevelDebug:
		color = theme.Debug
	case LevelInfo:
		color = theme.Info
	case LevelWarning:
		color = theme.Warning
	case LevelError:
		color = theme.Error
	default:
		return text
	}
	return NewStyle().Fg(color).sprint(colorLevel, text)
}

// selectWriter returns the stream for level and that stream's colour level.
func (l *Logger) selectWriter(level LogLevel) (io.Writer, int) {
	if level >= LevelWarning {
		return l.io.Err(), l.io.ErrColorLevel()
	}
	return l.io.Out(), l.io.ColorLevel()
}

func (l *Logger) Debug(format string, args ...any)   { l.Log(LevelDebug, format, args...) }
func (l *Logger) Info(format string, args ...any)    { l.Log(LevelInfo, format, args...) }
func (l *Logger) Warning(format string, args ...any) { l.Log(LevelWarning, format, args...) }
func (l *Logger) Error(format string, args ...any)   { l.Log(LevelError, format, args...) }
