// Package logging is the levelled logger shared by the chart core, the page helpers and the
// viewer. Output goes through a single stdlib log.Logger so tests can capture it.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync/atomic"
	"time"
)

// Level represents severity.
type Level int32

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelTags = [...]string{LevelDebug: "DEBUG", LevelInfo: "INFO", LevelWarn: "WARN", LevelError: "ERROR"}

func (l Level) String() string {
	if l < LevelDebug || l > LevelError {
		return "INFO"
	}
	return levelTags[l]
}

// ParseLevel maps a level name (case-insensitive, "warning" accepted) to a Level.
func ParseLevel(s string) (Level, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		return LevelWarn, true
	}
	for l, tag := range levelTags {
		if strings.ToLower(tag) == name {
			return Level(l), true
		}
	}
	return LevelDebug, false
}

// Logger writes "[LEVEL] message" lines at or above its threshold.
type Logger struct {
	min atomic.Int32
	out *log.Logger
}

func New(w io.Writer) *Logger {
	l := &Logger{out: log.New(w, "", log.Ldate|log.Ltime|log.Lmicroseconds)}
	l.min.Store(int32(LevelInfo))
	return l
}

// Enabled reports whether messages at lvl are written.
func (l *Logger) Enabled(lvl Level) bool { return lvl >= Level(l.min.Load()) }

// Log writes one line. Without args the message is taken literally, so a '%' in a chart
// label is not read as a verb.
func (l *Logger) Log(lvl Level, msg string, args ...any) {
	if !l.Enabled(lvl) {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.out.Print("[" + lvl.String() + "] " + msg)
}

var std = New(os.Stderr)

// SetLevel parses and sets the global level; unknown names leave it unchanged.
func SetLevel(s string) {
	if lvl, ok := ParseLevel(s); ok {
		std.min.Store(int32(lvl))
	}
}

func GetLevel() Level { return Level(std.min.Load()) }

// SetOutput redirects log output, e.g. to a file chosen on the command line.
func SetOutput(w io.Writer) { std.out.SetOutput(w) }

func Debugf(format string, args ...any) { std.Log(LevelDebug, format, args...) }
func Infof(format string, args ...any)  { std.Log(LevelInfo, format, args...) }
func Warnf(format string, args ...any)  { std.Log(LevelWarn, format, args...) }
func Errorf(format string, args ...any) { std.Log(LevelError, format, args...) }

// Track starts timing label and returns the func that logs the elapsed time at debug level:
//
//	defer logging.Track("screenshots")()
func Track(label string) func() {
	start := time.Now()
	return func() { std.Log(LevelDebug, "%s took %s", label, time.Since(start).Round(time.Microsecond)) }
}
