package utillog

import (
	"bytes"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

const (
	callerField     = "caller"
	callerWidth     = 30
	levelWidth      = 5
	timestampLayout = "2006-01-02 15:04:05.000"

	defMaxSizeMb  = 50
	defMaxAgeDays = 7
	defMaxBackups = 3
)

var (
	logger = newLogger()

	bufPool = sync.Pool{
		New: func() any {
			return new(bytes.Buffer)
		},
	}

	pcPool = sync.Pool{
		New: func() any {
			p := make([]uintptr, 2)
			return &p
		},
	}
)

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&LineFormatter{})
	l.SetOutput(os.Stdout)
	l.SetLevel(logrus.InfoLevel)
	return l
}

// LineFormatter writes one line per entry:
//
//	2024-01-31 10:20:30.456 DEBUG dial.Moment.Add                : Clamped day 31 -> 29
type LineFormatter struct{}

func (f *LineFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	caller, _ := entry.Data[callerField].(string)

	b := bufPool.Get().(*bytes.Buffer)
	b.Reset()
	defer bufPool.Put(b)

	b.WriteString(entry.Time.Format(timestampLayout))
	b.WriteByte(' ')
	writePadded(b, levelName(entry.Level), levelWidth)
	b.WriteByte(' ')
	writePadded(b, caller, callerWidth)
	b.WriteString(" : ")
	b.WriteString(entry.Message)
	b.WriteByte('\n')

	// the buffer is reused once returned to the pool
	return bytes.Clone(b.Bytes()), nil
}

func writePadded(b *bytes.Buffer, s string, width int) {
	b.WriteString(s)
	for i := len(s); i < width; i++ {
		b.WriteByte(' ')
	}
}

func levelName(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

// Parse log level name, e.g., "debug", "WARN" or "warning".
//
// Returns false for unknown names, fatal and panic levels are not configurable.
func ParseLogLevel(name string) (logrus.Level, bool) {
	lv, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil || lv < logrus.ErrorLevel {
		return logrus.InfoLevel, false
	}
	return lv, true
}

// Change log level, returns false if the level name is not recognized.
func SetLogLevel(name string) bool {
	lv, ok := ParseLogLevel(name)
	if ok {
		logger.SetLevel(lv)
	}
	return ok
}

func IsDebugLevel() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

type RollingLogFileParam struct {
	Filename   string
	MaxSize    int // mb, 50 by default
	MaxAge     int // days, 7 by default
	MaxBackups int // 3 by default
}

// Redirect logs to a lumberjack rolling file, zero fields fall back to the defaults.
func SetLogFile(p RollingLogFileParam) *lumberjack.Logger {
	w := &lumberjack.Logger{
		Filename:   p.Filename,
		MaxSize:    positiveOr(p.MaxSize, defMaxSizeMb),
		MaxAge:     positiveOr(p.MaxAge, defMaxAgeDays),
		MaxBackups: positiveOr(p.MaxBackups, defMaxBackups),
		LocalTime:  true,
	}
	logger.SetOutput(w)
	return w
}

func positiveOr(v int, def int) int {
	if v > 0 {
		return v
	}
	return def
}

func Debugf(pat string, args ...any) {
	logf(logrus.DebugLevel, pat, args...)
}

func Infof(pat string, args ...any) {
	logf(logrus.InfoLevel, pat, args...)
}

func Warnf(pat string, args ...any) {
	logf(logrus.WarnLevel, pat, args...)
}

func Errorf(pat string, args ...any) {
	logf(logrus.ErrorLevel, pat, args...)
}

func logf(lv logrus.Level, pat string, args ...any) {
	if !logger.IsLevelEnabled(lv) {
		return
	}
	logger.WithField(callerField, callerFn(3)).Logf(lv, pat, args...)
}

// Short name of the function skip frames above callerFn, e.g., dial.Moment.Add.
func callerFn(skip int) string {
	pcs := pcPool.Get().(*[]uintptr)
	defer pcPool.Put(pcs)

	n := runtime.Callers(skip+1, *pcs)
	if n < 1 {
		return ""
	}
	f, _ := runtime.CallersFrames((*pcs)[:n]).Next()
	return shortFnName(f.Function)
}

func shortFnName(fn string) string {
	if j := strings.LastIndexByte(fn, '/'); j > -1 {
		return fn[j+1:]
	}
	return fn
}
